package twm

import (
	"maps"
	"regexp"
	"slices"
	"strings"
)

// ClassPart is a node in the class-map trie. A node may be a terminal
// class, carry validators and branch further, all at once.
type ClassPart struct {
	NextPart     map[string]*ClassPart
	Validators   []ClassGroupValidator
	ClassGroupID string
}

// ClassGroupValidator is a validator installed on a trie node together
// with the group it classifies into.
type ClassGroupValidator struct {
	Fn           func(string) bool
	ClassGroupID string
}

// buildClassMap turns the configured class groups into the trie the
// classifier walks. The trie is built once per configuration and never
// mutated afterwards.
func buildClassMap(conf *Config) *ClassPart {
	root := &ClassPart{NextPart: map[string]*ClassPart{}}
	for _, group := range conf.ClassGroups {
		addToClassPart(root, group.ID, group.Defs, conf, string(conf.ClassSeparator))
	}
	return root
}

func addToClassPart(node *ClassPart, groupID string, defs []ClassDef, conf *Config, separator string) {
	for _, def := range defs {
		switch d := def.(type) {
		case Literal:
			if d == "" {
				node.ClassGroupID = groupID
				continue
			}
			getPart(node, string(d), separator).ClassGroupID = groupID
		case Validator:
			node.Validators = append(node.Validators, ClassGroupValidator{
				Fn:           d.Fn,
				ClassGroupID: groupID,
			})
		case ThemeRef:
			addToClassPart(node, groupID, conf.Theme[d.Key], conf, separator)
		case Group:
			// Sorted keys keep the build deterministic; sibling
			// branches never compete, so sorting is safe.
			for _, key := range slices.Sorted(maps.Keys(d)) {
				addToClassPart(getPart(node, key, separator), groupID, d[key], conf, separator)
			}
		}
	}
}

// getPart descends to (and creates) the node for a hyphenated path. A
// leading separator denotes a negative-value class and is dropped.
func getPart(node *ClassPart, path, separator string) *ClassPart {
	parts := strings.Split(path, separator)
	if parts[0] == "" && len(parts) > 1 {
		parts = parts[1:]
	}
	current := node
	for _, part := range parts {
		if current.NextPart == nil {
			current.NextPart = map[string]*ClassPart{}
		}
		next := current.NextPart[part]
		if next == nil {
			next = &ClassPart{}
			current.NextPart[part] = next
		}
		current = next
	}
	return current
}

var arbitraryPropertyRegex = regexp.MustCompile(`^\[(.+)\]$`)

// getClassGroupIDFn returns the class group id for a base class.
type getClassGroupIDFn func(baseClass string) (isKnown bool, groupID string)

// makeGetClassGroupID builds the classifier over a finished class map.
func makeGetClassGroupID(conf *Config, classMap *ClassPart) getClassGroupIDFn {
	separator := string(conf.ClassSeparator)

	var recurse func(classParts []string, node *ClassPart) (bool, string)
	recurse = func(classParts []string, node *ClassPart) (bool, string) {
		if len(classParts) == 0 {
			if node.ClassGroupID != "" {
				return true, node.ClassGroupID
			}
			return false, ""
		}

		if next := node.NextPart[classParts[0]]; next != nil {
			if ok, id := recurse(classParts[1:], next); ok {
				return ok, id
			}
		}

		// The literal descent dead-ended here; fall back to the
		// validators of the deepest node reached, applied to the
		// rejoined remainder.
		if len(node.Validators) > 0 {
			remainingClass := strings.Join(classParts, separator)
			for _, validator := range node.Validators {
				if validator.Fn(remainingClass) {
					return true, validator.ClassGroupID
				}
			}
		}
		return false, ""
	}

	getGroupIDForArbitraryProperty := func(class string) (bool, string) {
		match := arbitraryPropertyRegex.FindStringSubmatch(class)
		if match == nil {
			return false, ""
		}
		property, _, found := strings.Cut(match[1], ":")
		if !found || property == "" {
			return false, ""
		}
		// Two dots so the synthetic id cannot collide with a
		// configured group id.
		return true, "arbitrary.." + property
	}

	return func(baseClass string) (bool, string) {
		classParts := strings.Split(baseClass, separator)
		// remove first element if empty for things like -px-4
		if len(classParts) > 1 && classParts[0] == "" {
			classParts = classParts[1:]
		}
		if isKnown, groupID := recurse(classParts, classMap); isKnown {
			return isKnown, groupID
		}
		return getGroupIDForArbitraryProperty(baseClass)
	}
}

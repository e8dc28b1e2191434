package twm

import (
	"fmt"
	"maps"
	"slices"
)

// ClassDef is one entry in a class-group or theme-scale definition. The
// concrete types are Literal, Validator, ThemeRef and Group.
type ClassDef interface {
	classDef()
}

// Literal is a dotted class path like "space-x-1", a plain class like
// "block", or "" to mark the current trie node itself as a class.
type Literal string

func (Literal) classDef() {}

// Validator matches the remainder of a class against a predicate.
type Validator struct {
	// Name identifies the validator in configuration dumps and errors.
	Name string
	Fn   func(string) bool
}

func (Validator) classDef() {}

// ThemeRef resolves to the definitions registered under a theme key.
type ThemeRef struct {
	Key string
}

func (ThemeRef) classDef() {}

// Group nests definitions under further hyphen segments.
type Group map[string][]ClassDef

func (Group) classDef() {}

// ClassGroup binds a group id to its class definitions. Groups are kept in
// a slice because declaration order decides validator precedence when two
// groups install validators on the same trie node.
type ClassGroup struct {
	ID   string
	Defs []ClassDef
}

// ParseClassNameFn is the signature of the class-name parser. An
// experimental replacement receives the class name and the default parser
// and may call it recursively.
type ParseClassNameFn func(className string) ParsedClass

// Config is the configuration for the class merger.
type Config struct {
	// hover:bg-red-500 -> :
	ModifierSeparator rune
	// bg-red-500 -> -
	ClassSeparator rune
	// !bg-red-500 / bg-red-500! -> !
	ImportantModifier rune
	// used for bg-red-500/50 (50% opacity) -> /
	PostfixModifier rune

	// Prefix gates which classes the merger touches. When set, only
	// classes starting with Prefix + ModifierSeparator take part in
	// conflict resolution; everything else passes through verbatim.
	Prefix string

	MaxCacheSize int

	// Theme maps scale names to the definitions a ThemeRef expands to.
	Theme map[string][]ClassDef

	// ClassGroups declares every known class group, in precedence order.
	ClassGroups []ClassGroup

	// ConflictingClassGroups maps a group to the groups it displaces.
	// p: ['px', 'py', 'ps', 'pe', 'pt', 'pr', 'pb', 'pl']
	ConflictingClassGroups map[string][]string

	// ConflictingClassGroupModifiers maps a group to the groups it
	// additionally displaces when the class carries a postfix modifier
	// (text-lg/7 also claims the leading slot).
	ConflictingClassGroupModifiers map[string][]string

	// OrderSensitiveModifiers are variants whose position in the
	// modifier list is meaningful and must survive canonicalization.
	OrderSensitiveModifiers []string

	// ExperimentalParseClassName replaces the built-in parser.
	ExperimentalParseClassName func(className string, parseClassName ParseClassNameFn) ParsedClass
}

// PartialConfig carries the pieces of a configuration that Extend can
// override or extend.
type PartialConfig struct {
	Theme                          map[string][]ClassDef
	ClassGroups                    []ClassGroup
	ConflictingClassGroups         map[string][]string
	ConflictingClassGroupModifiers map[string][]string
	OrderSensitiveModifiers        []string
}

// ExtendOptions configures a merger derived from the default
// configuration. Override replaces leaves, Extend appends to them.
type ExtendOptions struct {
	// CacheSize overrides the cache bound when non-nil; 0 disables
	// caching entirely.
	CacheSize *int
	Prefix    string
	Override  PartialConfig
	Extend    PartialConfig
}

// Validate checks a configuration for construction-time mistakes: theme
// references without a matching theme key, validators without a function
// and groups without an id. The merge path assumes a validated
// configuration and never re-checks.
func (c *Config) Validate() error {
	var walk func(owner string, defs []ClassDef) error
	walk = func(owner string, defs []ClassDef) error {
		for _, def := range defs {
			switch d := def.(type) {
			case Literal:
			case Validator:
				if d.Fn == nil {
					return fmt.Errorf("class group %q: validator %q has no function", owner, d.Name)
				}
			case ThemeRef:
				if _, ok := c.Theme[d.Key]; !ok {
					return fmt.Errorf("class group %q: unknown theme key %q", owner, d.Key)
				}
			case Group:
				for _, sub := range d {
					if err := walk(owner, sub); err != nil {
						return err
					}
				}
			default:
				return fmt.Errorf("class group %q: unsupported class definition %T", owner, def)
			}
		}
		return nil
	}

	seen := make(map[string]bool, len(c.ClassGroups))
	for _, group := range c.ClassGroups {
		if group.ID == "" {
			return fmt.Errorf("class group with empty id")
		}
		if seen[group.ID] {
			return fmt.Errorf("duplicate class group %q", group.ID)
		}
		seen[group.ID] = true
		if err := walk(group.ID, group.Defs); err != nil {
			return err
		}
	}
	for key, defs := range c.Theme {
		if err := walk("theme."+key, defs); err != nil {
			return err
		}
	}
	return nil
}

// clone returns a copy of the configuration that shares no mutable maps
// or slices with the original, so Extend and Create transformers can
// rewrite it freely.
func (c *Config) clone() *Config {
	dup := *c
	dup.Theme = cloneDefMap(c.Theme)
	dup.ClassGroups = make([]ClassGroup, len(c.ClassGroups))
	for i, group := range c.ClassGroups {
		dup.ClassGroups[i] = ClassGroup{ID: group.ID, Defs: slices.Clone(group.Defs)}
	}
	dup.ConflictingClassGroups = cloneConflicts(c.ConflictingClassGroups)
	dup.ConflictingClassGroupModifiers = cloneConflicts(c.ConflictingClassGroupModifiers)
	dup.OrderSensitiveModifiers = slices.Clone(c.OrderSensitiveModifiers)
	return &dup
}

func cloneDefMap(m map[string][]ClassDef) map[string][]ClassDef {
	dup := make(map[string][]ClassDef, len(m))
	for k, v := range m {
		dup[k] = slices.Clone(v)
	}
	return dup
}

func cloneConflicts(m map[string][]string) map[string][]string {
	dup := make(map[string][]string, len(m))
	for k, v := range m {
		dup[k] = slices.Clone(v)
	}
	return dup
}

// withExtendOptions applies ExtendOptions to a copy of the configuration.
func (c *Config) withExtendOptions(opts ExtendOptions) *Config {
	conf := c.clone()
	if opts.CacheSize != nil {
		conf.MaxCacheSize = *opts.CacheSize
	}
	if opts.Prefix != "" {
		conf.Prefix = opts.Prefix
	}

	// Override replaces whole leaves.
	maps.Copy(conf.Theme, cloneDefMap(opts.Override.Theme))
	for _, group := range opts.Override.ClassGroups {
		conf.setClassGroup(group.ID, slices.Clone(group.Defs))
	}
	maps.Copy(conf.ConflictingClassGroups, cloneConflicts(opts.Override.ConflictingClassGroups))
	maps.Copy(conf.ConflictingClassGroupModifiers, cloneConflicts(opts.Override.ConflictingClassGroupModifiers))
	if opts.Override.OrderSensitiveModifiers != nil {
		conf.OrderSensitiveModifiers = slices.Clone(opts.Override.OrderSensitiveModifiers)
	}

	// Extend appends.
	for key, defs := range opts.Extend.Theme {
		conf.Theme[key] = append(conf.Theme[key], defs...)
	}
	for _, group := range opts.Extend.ClassGroups {
		if existing := conf.classGroup(group.ID); existing != nil {
			existing.Defs = append(existing.Defs, group.Defs...)
		} else {
			conf.ClassGroups = append(conf.ClassGroups, ClassGroup{ID: group.ID, Defs: slices.Clone(group.Defs)})
		}
	}
	for key, ids := range opts.Extend.ConflictingClassGroups {
		conf.ConflictingClassGroups[key] = append(conf.ConflictingClassGroups[key], ids...)
	}
	for key, ids := range opts.Extend.ConflictingClassGroupModifiers {
		conf.ConflictingClassGroupModifiers[key] = append(conf.ConflictingClassGroupModifiers[key], ids...)
	}
	conf.OrderSensitiveModifiers = append(conf.OrderSensitiveModifiers, opts.Extend.OrderSensitiveModifiers...)

	return conf
}

func (c *Config) classGroup(id string) *ClassGroup {
	for i := range c.ClassGroups {
		if c.ClassGroups[i].ID == id {
			return &c.ClassGroups[i]
		}
	}
	return nil
}

func (c *Config) setClassGroup(id string, defs []ClassDef) {
	if existing := c.classGroup(id); existing != nil {
		existing.Defs = defs
		return
	}
	c.ClassGroups = append(c.ClassGroups, ClassGroup{ID: id, Defs: defs})
}

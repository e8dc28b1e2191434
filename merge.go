package twm

import (
	"slices"
	"strings"
	"sync"
)

// MergeFn merges class lists. Arguments may be strings, nested string or
// any slices, nil and bools; everything except non-empty strings is
// discarded during flattening.
type MergeFn func(args ...any) string

// CreateTwMerge creates a merger over the given configuration and cache.
// A nil config selects the default configuration, a nil cache a fresh
// cache sized by the configuration (a no-op cache for a size of zero or
// less). A caller-supplied configuration is validated, and the class map
// built, lazily on first use, then shared by all calls.
func CreateTwMerge(config *Config, cache Cache) MergeFn {
	var (
		once           sync.Once
		mergeClassList func(classList string) string
	)

	setup := func() {
		if config == nil {
			config = DefaultConfig()
		} else if err := config.Validate(); err != nil {
			panic("twm: invalid configuration: " + err.Error())
		}
		if cache == nil {
			cache = newCache(config.MaxCacheSize)
		}
		mergeClassList = makeMergeClassList(config)
	}

	return func(args ...any) string {
		classList := JoinClasses(args...)
		if classList == "" {
			return ""
		}
		once.Do(setup)

		if cached, ok := cache.Get(classList); ok {
			return cached
		}
		merged := mergeClassList(classList)
		cache.Set(classList, merged)
		return merged
	}
}

// JoinClasses flattens the facade's argument shape into one
// space-delimited class list. Strings, []string and arbitrarily nested
// []any are accepted; nil, bools and empty strings are dropped.
func JoinClasses(args ...any) string {
	var sb strings.Builder
	appendArgs(&sb, args)
	return sb.String()
}

func appendArgs(sb *strings.Builder, args []any) {
	for _, arg := range args {
		switch v := arg.(type) {
		case string:
			if v == "" {
				continue
			}
			if sb.Len() > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(v)
		case []string:
			for _, s := range v {
				if s == "" {
					continue
				}
				if sb.Len() > 0 {
					sb.WriteByte(' ')
				}
				sb.WriteString(s)
			}
		case []any:
			appendArgs(sb, v)
		}
	}
}

// mergedClass is one accumulator entry of the conflict engine.
type mergedClass struct {
	text  string
	alive bool
}

// makeMergeClassList builds the conflict engine over a configuration.
func makeMergeClassList(conf *Config) func(classList string) string {
	parseClassName := makeParseClassName(conf)
	defaultParse := parseClassName
	if conf.ExperimentalParseClassName != nil {
		experimental := conf.ExperimentalParseClassName
		parseClassName = func(className string) ParsedClass {
			return experimental(className, defaultParse)
		}
	}
	getClassGroupID := makeGetClassGroupID(conf, buildClassMap(conf))
	sortModifiers := makeSortModifiers(conf)
	modifierSeparator := string(conf.ModifierSeparator)
	importantSuffix := string(conf.ImportantModifier)

	return func(classList string) string {
		classes := strings.Fields(classList)
		// Entries stay in input order; conflicts flip earlier entries
		// dead instead of reshuffling.
		entries := make([]*mergedClass, 0, len(classes))
		byKey := make(map[string]*mergedClass, len(classes))

		evict := func(key string) {
			if entry := byKey[key]; entry != nil {
				entry.alive = false
				delete(byKey, key)
			}
		}

		for _, class := range classes {
			parsed := parseClassName(class)

			if parsed.IsExternal {
				entries = append(entries, &mergedClass{text: class, alive: true})
				continue
			}

			hasPostfixModifier := parsed.PostfixModifierPosition != -1
			baseClass := parsed.Base
			if hasPostfixModifier {
				baseClass = parsed.Base[:parsed.PostfixModifierPosition]
			}
			isKnown, groupID := getClassGroupID(baseClass)
			if !isKnown && hasPostfixModifier {
				// text-lg/none classifies with the postfix cut
				// off, aspect-16/9 only with the full base.
				isKnown, groupID = getClassGroupID(parsed.Base)
				hasPostfixModifier = false
			}
			if !isKnown {
				// Unknown classes still collapse exact duplicates,
				// keyed by their base text.
				groupID = parsed.Base
			}

			modifierID := strings.Join(sortModifiers(parsed.Modifiers), modifierSeparator)
			if parsed.HasImportant {
				modifierID += importantSuffix
			}

			evict(modifierID + " " + groupID)
			if isKnown {
				for _, conflict := range conf.ConflictingClassGroups[groupID] {
					evict(modifierID + " " + conflict)
				}
				if hasPostfixModifier {
					for _, conflict := range conf.ConflictingClassGroupModifiers[groupID] {
						evict(modifierID + " " + conflict)
					}
				}
			}

			text := class
			if conf.ExperimentalParseClassName != nil {
				if original := defaultParse(class); !parsedEqual(parsed, original) {
					text = reconstructClassName(conf, parsed)
				}
			}
			entry := &mergedClass{text: text, alive: true}
			entries = append(entries, entry)
			byKey[modifierID+" "+groupID] = entry
		}

		var sb strings.Builder
		for _, entry := range entries {
			if !entry.alive {
				continue
			}
			if sb.Len() > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(entry.text)
		}
		return sb.String()
	}
}

func parsedEqual(a, b ParsedClass) bool {
	return a.Base == b.Base &&
		a.HasImportant == b.HasImportant &&
		a.PostfixModifierPosition == b.PostfixModifierPosition &&
		a.IsExternal == b.IsExternal &&
		slices.Equal(a.Modifiers, b.Modifiers)
}

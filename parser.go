package twm

import "strings"

// ParsedClass is the decomposition of a single whitespace-free class.
type ParsedClass struct {
	// Modifiers are the variant prefixes in source order.
	Modifiers []string
	// HasImportant is set when the base carried a leading or trailing
	// important marker.
	HasImportant bool
	// Base is the class without modifiers and important marker. It
	// still contains a postfix modifier, if any.
	Base string
	// PostfixModifierPosition is the offset of the postfix separator
	// inside Base, or -1.
	PostfixModifierPosition int
	// IsExternal marks classes that do not carry the configured
	// prefix. They pass through the merge untouched.
	IsExternal bool
}

// makeParseClassName builds the class-name parser. The scan keeps
// bracket and parenthesis depth so that : and / inside [...] or (...)
// lose their meta meaning.
func makeParseClassName(conf *Config) ParseClassNameFn {
	separator := byte(conf.ModifierSeparator)
	important := byte(conf.ImportantModifier)
	postfix := byte(conf.PostfixModifier)
	fullPrefix := ""
	if conf.Prefix != "" {
		fullPrefix = conf.Prefix + string(conf.ModifierSeparator)
	}

	parse := func(className string) ParsedClass {
		var modifiers []string
		modifierStart := 0
		bracketDepth := 0
		parenDepth := 0
		// used for bg-red-500/50 (50% opacity)
		postfixModifierPosition := -1

		for i := 0; i < len(className); i++ {
			switch char := className[i]; char {
			case '[':
				bracketDepth++
			case ']':
				bracketDepth--
			case '(':
				parenDepth++
			case ')':
				parenDepth--
			default:
				if bracketDepth != 0 || parenDepth != 0 {
					continue
				}
				if char == separator {
					modifiers = append(modifiers, className[modifierStart:i])
					modifierStart = i + 1
				} else if char == postfix {
					postfixModifierPosition = i
				}
			}
		}

		baseWithImportant := className[modifierStart:]
		base := baseWithImportant
		hasImportant := false
		importantShift := 0
		if len(base) > 0 && base[0] == important {
			base = base[1:]
			hasImportant = true
			importantShift = 1
		} else if len(base) > 0 && base[len(base)-1] == important {
			base = base[:len(base)-1]
			hasImportant = true
		}

		// A recorded separator inside a modifier (group/name:block), or
		// one displaced by a stripped leading marker so it no longer
		// points at the separator, is not a postfix modifier. The slash
		// of a fraction (w-1/2) is recorded; the merge decides later
		// how to classify it.
		if postfixModifierPosition != -1 {
			postfixModifierPosition -= modifierStart + importantShift
			if postfixModifierPosition < 0 || postfixModifierPosition >= len(base) || base[postfixModifierPosition] != postfix {
				postfixModifierPosition = -1
			}
		}

		return ParsedClass{
			Modifiers:               modifiers,
			HasImportant:            hasImportant,
			Base:                    base,
			PostfixModifierPosition: postfixModifierPosition,
		}
	}

	if fullPrefix == "" {
		return parse
	}
	return func(className string) ParsedClass {
		if !strings.HasPrefix(className, fullPrefix) {
			return ParsedClass{
				Base:                    className,
				PostfixModifierPosition: -1,
				IsExternal:              true,
			}
		}
		return parse(className[len(fullPrefix):])
	}
}

// reconstructClassName renders a parsed class back into class-name
// syntax. It is used when an experimental parser materially changed the
// parse, so the emitted class reflects what was actually merged.
func reconstructClassName(conf *Config, parsed ParsedClass) string {
	var sb strings.Builder
	if conf.Prefix != "" && !parsed.IsExternal {
		sb.WriteString(conf.Prefix)
		sb.WriteRune(conf.ModifierSeparator)
	}
	for _, modifier := range parsed.Modifiers {
		sb.WriteString(modifier)
		sb.WriteRune(conf.ModifierSeparator)
	}
	if parsed.HasImportant {
		sb.WriteRune(conf.ImportantModifier)
	}
	sb.WriteString(parsed.Base)
	return sb.String()
}

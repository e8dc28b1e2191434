package twm

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	stringLengths = map[string]bool{
		"px":     true,
		"full":   true,
		"screen": true,
	}
	lengthUnitRegex   = regexp.MustCompile(`\d+(%|px|r?em|[sdl]?v([hwib]|min|max)|pt|pc|in|cm|mm|cap|ch|ex|r?lh|cq(w|h|i|b|min|max))|\b(calc|min|max|clamp)\(.+\)|^0$`)
	colorFnRegex      = regexp.MustCompile(`^(rgba?|hsla?|hwb|(ok)?(lab|lch))\(.+\)$`)
	arbitraryRegex    = regexp.MustCompile(`(?i)^\[(?:([a-z][a-z-]*):)?(.+)\]$`)
	arbitraryVarRegex = regexp.MustCompile(`(?i)^\((?:([a-z][a-z-]*):)?(.+)\)$`)
	fractionRegex     = regexp.MustCompile(`^\d+/\d+$`)
	shirtRegex        = regexp.MustCompile(`^(\d+(\.\d+)?)?(xs|sm|md|lg|xl)$`)
	shadowRegex       = regexp.MustCompile(`^(inset_)?-?((\d+)?\.?(\d+)[a-z]+|0)_-?((\d+)?\.?(\d+)[a-z]+|0)`)
	imageRegex        = regexp.MustCompile(`^(url|image|image-set|cross-fade|element|(repeating-)?(linear|radial|conic)-gradient)\(.+\)$`)

	sizeLabels  = map[string]bool{"length": true, "size": true, "percentage": true}
	imageLabels = map[string]bool{"image": true, "url": true}
)

// IsAny accepts every value.
func IsAny(_ string) bool {
	return true
}

// IsAnyNonArbitrary accepts every value that is not an arbitrary value or
// an arbitrary variable.
func IsAnyNonArbitrary(val string) bool {
	return !IsArbitraryValue(val) && !IsArbitraryVariable(val)
}

func isNever(_ string) bool {
	return false
}

// IsInteger reports whether the value is a base-10 integer.
func IsInteger(val string) bool {
	_, err := strconv.Atoi(val)
	return err == nil
}

// IsNumber reports whether the value is an integer or a float.
func IsNumber(val string) bool {
	if IsInteger(val) {
		return true
	}
	_, err := strconv.ParseFloat(val, 64)
	return err == nil
}

// IsFraction matches values like 1/2 or 11/12.
func IsFraction(val string) bool {
	return fractionRegex.MatchString(val)
}

// IsPercent matches a number with a trailing percent sign.
func IsPercent(val string) bool {
	return strings.HasSuffix(val, "%") && IsNumber(val[:len(val)-1])
}

// IsTshirtSize matches sizes like sm, xl, 2xl and 2.5xl.
func IsTshirtSize(val string) bool {
	return shirtRegex.MatchString(val)
}

// IsLength matches numbers, fractions and the keyword lengths px, full
// and screen.
func IsLength(val string) bool {
	return IsNumber(val) || stringLengths[val] || IsFraction(val)
}

func isLengthOnly(val string) bool {
	return lengthUnitRegex.MatchString(val) && !colorFnRegex.MatchString(val)
}

func isShadow(val string) bool {
	return shadowRegex.MatchString(val)
}

func isImage(val string) bool {
	return imageRegex.MatchString(val)
}

// IsArbitraryValue matches any bracketed value like [2px] or
// [length:var(--x)].
func IsArbitraryValue(val string) bool {
	return arbitraryRegex.MatchString(val)
}

// IsArbitraryVariable matches any parenthesized variable shorthand like
// (--spacing) or (color:--brand).
func IsArbitraryVariable(val string) bool {
	return arbitraryVarRegex.MatchString(val)
}

// IsArbitraryLength matches [2px], [length:...] and friends.
func IsArbitraryLength(val string) bool {
	return getIsArbitraryValue(val, "length", isLengthOnly)
}

// IsArbitraryNumber matches [42], [number:...] and friends.
func IsArbitraryNumber(val string) bool {
	return getIsArbitraryValue(val, "number", IsNumber)
}

// IsArbitraryPosition matches only labelled positions like
// [position:200px_100px].
func IsArbitraryPosition(val string) bool {
	return getIsArbitraryValue(val, "position", isNever)
}

// IsArbitrarySize matches only labelled sizes like [size:200px_100px],
// [length:...] and [percentage:...].
func IsArbitrarySize(val string) bool {
	return getIsArbitraryValue(val, sizeLabels, isNever)
}

// IsArbitraryImage matches [url('...')], [image:...] and gradient
// functions.
func IsArbitraryImage(val string) bool {
	return getIsArbitraryValue(val, imageLabels, isImage)
}

// IsArbitraryShadow matches unlabelled shadow shorthands like
// [0_35px_60px_-15px_rgba(0,0,0,0.3)].
func IsArbitraryShadow(val string) bool {
	return getIsArbitraryValue(val, "shadow", isShadow)
}

// IsArbitraryVariableLength matches (length:--x).
func IsArbitraryVariableLength(val string) bool {
	return getIsArbitraryVariable(val, "length", false)
}

// IsArbitraryVariableSize matches (size:--x) and (length:--x).
func IsArbitraryVariableSize(val string) bool {
	return getIsArbitraryVariable(val, sizeLabels, false)
}

// IsArbitraryVariablePosition matches (position:--x).
func IsArbitraryVariablePosition(val string) bool {
	return getIsArbitraryVariable(val, "position", false)
}

// IsArbitraryVariableShadow matches (shadow:--x) and unlabelled
// variables.
func IsArbitraryVariableShadow(val string) bool {
	return getIsArbitraryVariable(val, "shadow", true)
}

// IsArbitraryVariableImage matches (image:--x) and (url:--x).
func IsArbitraryVariableImage(val string) bool {
	return getIsArbitraryVariable(val, imageLabels, false)
}

// IsArbitraryVariableFamilyName matches (family-name:--x).
func IsArbitraryVariableFamilyName(val string) bool {
	return getIsArbitraryVariable(val, "family-name", false)
}

// getIsArbitraryValue matches a bracketed value whose label satisfies
// label (a string, a label set, or nothing) or whose unlabelled content
// satisfies testValue. The label may be a string or a map[string]bool.
func getIsArbitraryValue(val string, label any, testValue func(string) bool) bool {
	res := arbitraryRegex.FindStringSubmatch(val)
	if res == nil {
		return false
	}
	if res[1] != "" {
		switch t := label.(type) {
		case string:
			return res[1] == t
		case map[string]bool:
			return t[res[1]]
		}
		return false
	}
	return testValue(res[2])
}

// getIsArbitraryVariable matches a parenthesized variable whose label
// satisfies label; shouldMatchNoLabel decides whether an unlabelled
// variable counts.
func getIsArbitraryVariable(val string, label any, shouldMatchNoLabel bool) bool {
	res := arbitraryVarRegex.FindStringSubmatch(val)
	if res == nil {
		return false
	}
	if res[1] != "" {
		switch t := label.(type) {
		case string:
			return res[1] == t
		case map[string]bool:
			return t[res[1]]
		}
		return false
	}
	return shouldMatchNoLabel
}

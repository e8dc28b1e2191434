package twm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMergeClassGroupConflicts(t *testing.T) {
	assert.Equal(t, "px-4", Merge("px-2 px-4"))
	assert.Equal(t, "pt-4 pb-3", Merge("pt-2 pt-4 pb-3"))
	assert.Equal(t, "inset-1", Merge("inset-x-1 inset-1"))
	assert.Equal(t, "inset-x-1 top-1", Merge("inset-x-1 top-1"))
	assert.Equal(t, "p-4", Merge("px-2 py-3 p-4"))
	assert.Equal(t, "p-4 px-2 py-3", Merge("p-4 px-2 py-3"))
	assert.Equal(t, "bg-blue-500 text-blue-700", Merge("text-red-500 bg-blue-500 text-blue-700"))
}

func TestMergeKeepsUnrelatedClasses(t *testing.T) {
	assert.Equal(t, "block px-4 text-lg", Merge("block px-4 text-lg"))
	assert.Equal(t, "flex items-center justify-between", Merge("flex items-center justify-between"))
}

func TestMergeArbitraryProperties(t *testing.T) {
	assert.Equal(t,
		"hover:[paint-order:normal]",
		Merge("hover:[paint-order:markers] hover:[paint-order:normal]"),
	)
	// Different properties do not conflict.
	assert.Equal(t,
		"[paint-order:markers] [mask-type:luminance]",
		Merge("[paint-order:markers] [mask-type:luminance]"),
	)
	// Different modifier contexts do not conflict.
	assert.Equal(t,
		"[paint-order:markers] hover:[paint-order:normal]",
		Merge("[paint-order:markers] hover:[paint-order:normal]"),
	)
}

func TestMergeModifierCanonicalization(t *testing.T) {
	assert.Equal(t, "d:c:e:inline", Merge("c:d:e:block d:c:e:inline"))
	assert.Equal(t, "focus:hover:bg-blue-500", Merge("hover:focus:bg-red-500 focus:hover:bg-blue-500"))
	// Distinct modifier stacks keep both classes.
	assert.Equal(t, "hover:bg-red-500 focus:bg-blue-500", Merge("hover:bg-red-500 focus:bg-blue-500"))
}

func TestMergeOrderSensitiveModifiers(t *testing.T) {
	assert.Equal(t, "*:before:block before:*:inline", Merge("*:before:block before:*:inline"))
	assert.Equal(t, "before:*:inline", Merge("before:*:block before:*:inline"))
	// Arbitrary variants anchor the modifiers around them.
	assert.Equal(t,
		"hover:[&>*]:focus:block focus:[&>*]:hover:inline",
		Merge("hover:[&>*]:focus:block focus:[&>*]:hover:inline"),
	)
	assert.Equal(t, "[&>*]:focus:hover:inline", Merge("[&>*]:hover:focus:block [&>*]:focus:hover:inline"))
}

func TestMergePostfixModifiers(t *testing.T) {
	assert.Equal(t, "text-lg/8", Merge("text-lg/7 text-lg/8"))
	assert.Equal(t, "text-lg/none leading-9", Merge("text-lg/none leading-9"))
	assert.Equal(t, "text-lg/none", Merge("leading-9 text-lg/none"))
	assert.Equal(t, "text-lg leading-9", Merge("text-lg leading-9"))
	// A fraction's numerator classifies on its own (w-1), so both
	// fractions land in the w slot.
	assert.Equal(t, "w-1/2", Merge("w-1/3 w-1/2"))
	assert.Equal(t, "bg-red-500/50", Merge("bg-red-500/40 bg-red-500/50"))
}

func TestMergeImportantIndependence(t *testing.T) {
	assert.Equal(t, "!p-4 p-2", Merge("!p-4 p-2"))
	assert.Equal(t, "p-2 !p-4", Merge("p-2 !p-4"))
	assert.Equal(t, "!p-4", Merge("!p-2 !p-4"))
	// Trailing important markers count too, and share the slot with
	// leading ones.
	assert.Equal(t, "p-4!", Merge("!p-2 p-4!"))
}

func TestMergeUnknownClasses(t *testing.T) {
	assert.Equal(t, "something-unknown", Merge("something-unknown"))
	assert.Equal(t, "something-unknown", Merge("something-unknown something-unknown"))
	assert.Equal(t, "other something-unknown", Merge("something-unknown other something-unknown"))
	assert.Equal(t, "hover:foo foo", Merge("hover:foo foo"))
	// Malformed brackets classify as unknown and pass through.
	assert.Equal(t, "px-4 [foo", Merge("[foo px-4 [foo"))
}

func TestMergeValidatorFallback(t *testing.T) {
	assert.Equal(t, "w-[12px]", Merge("w-4 w-[12px]"))
	assert.Equal(t, "m-[2px]", Merge("m-1 m-[2px]"))
	assert.Equal(t, "-mt-2", Merge("-mt-4 -mt-2"))
	assert.Equal(t, "text-[2rem]", Merge("text-lg text-[2rem]"))
	// An arbitrary length is a font size, not a text color.
	assert.Equal(t, "text-[2rem] text-red-500", Merge("text-[2rem] text-red-500"))
}

func TestMergeWhitespace(t *testing.T) {
	assert.Equal(t, "px-4", Merge("  px-2   px-4 "))
	assert.Equal(t, "", Merge(""))
	assert.Equal(t, "", Merge("   "))
}

func TestMergeIdempotence(t *testing.T) {
	inputs := []string{
		"px-2 px-4 pt-2 pb-3",
		"hover:focus:bg-red-500 focus:hover:bg-blue-500 block inline",
		"text-lg/7 text-lg/8 leading-9 unknown-class",
		"*:before:block before:*:inline",
	}
	for _, input := range inputs {
		merged := Merge(input)
		assert.Equal(t, merged, Merge(merged), "merge should be idempotent for %q", input)
	}
}

func TestMergeExperimentalParseClassName(t *testing.T) {
	config := DefaultConfig()
	config.ExperimentalParseClassName = func(className string, parseClassName ParseClassNameFn) ParsedClass {
		if className == "btn" {
			return ParsedClass{Base: "p-2", PostfixModifierPosition: -1}
		}
		return parseClassName(className)
	}
	merge := CreateTwMerge(config, nil)

	// btn resolves to the padding group and loses against the later p-4.
	assert.Equal(t, "p-4", merge("btn p-4"))
	// A materially changed parse is emitted in canonical form.
	assert.Equal(t, "p-2", merge("p-4 btn"))
	// Untouched classes keep their original text.
	assert.Equal(t, "hover:px-4", merge("hover:px-2 hover:px-4"))
}

func TestMergePrefix(t *testing.T) {
	merge := Extend(ExtendOptions{Prefix: "tw"})

	// Unprefixed classes pass through verbatim and never conflict.
	assert.Equal(t, "tw:px-4 px-2", merge("tw:px-2 tw:px-4 px-2"))
	assert.Equal(t, "px-2 px-4", merge("px-2 px-4"))
	// Prefixed classes behave as if the prefix were absent, prefix
	// reattached on output.
	assert.Equal(t, "tw:hover:p-4", merge("tw:hover:p-2 tw:hover:p-4"))
	assert.Equal(t, "tw:p-4 tw:!p-2", merge("tw:!p-4 tw:p-4 tw:!p-2"))
}

func TestMergeConflictsAcrossGroups(t *testing.T) {
	assert.Equal(t, "line-clamp-3", Merge("block overflow-hidden line-clamp-3"))
	assert.Equal(t, "flex-1", Merge("grow shrink basis-4 flex-1"))
	assert.Equal(t, "size-10", Merge("w-4 h-6 size-10"))
	assert.Equal(t, "size-10 w-4", Merge("size-10 w-4"))
}

package twm

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestParseClassName(t *testing.T) {
	parse := makeParseClassName(DefaultConfig())

	tests := []struct {
		name  string
		input string
		want  ParsedClass
	}{
		{
			name:  "plain class",
			input: "block",
			want:  ParsedClass{Base: "block", PostfixModifierPosition: -1},
		},
		{
			name:  "empty class",
			input: "",
			want:  ParsedClass{Base: "", PostfixModifierPosition: -1},
		},
		{
			name:  "single modifier",
			input: "hover:bg-red-500",
			want: ParsedClass{
				Modifiers:               []string{"hover"},
				Base:                    "bg-red-500",
				PostfixModifierPosition: -1,
			},
		},
		{
			name:  "stacked modifiers",
			input: "dark:hover:focus:bg-red-500",
			want: ParsedClass{
				Modifiers:               []string{"dark", "hover", "focus"},
				Base:                    "bg-red-500",
				PostfixModifierPosition: -1,
			},
		},
		{
			name:  "leading important",
			input: "!font-bold",
			want: ParsedClass{
				HasImportant:            true,
				Base:                    "font-bold",
				PostfixModifierPosition: -1,
			},
		},
		{
			name:  "trailing important",
			input: "font-bold!",
			want: ParsedClass{
				HasImportant:            true,
				Base:                    "font-bold",
				PostfixModifierPosition: -1,
			},
		},
		{
			name:  "important after modifiers",
			input: "hover:!font-bold",
			want: ParsedClass{
				Modifiers:               []string{"hover"},
				HasImportant:            true,
				Base:                    "font-bold",
				PostfixModifierPosition: -1,
			},
		},
		{
			name:  "postfix modifier",
			input: "text-lg/7",
			want: ParsedClass{
				Base:                    "text-lg/7",
				PostfixModifierPosition: 7,
			},
		},
		{
			name:  "postfix modifier with leading important",
			input: "!text-lg/7",
			want: ParsedClass{
				HasImportant:            true,
				Base:                    "text-lg/7",
				PostfixModifierPosition: 7,
			},
		},
		{
			name:  "last slash wins",
			input: "bg-red-500/50/70",
			want: ParsedClass{
				Base:                    "bg-red-500/50/70",
				PostfixModifierPosition: 13,
			},
		},
		{
			name:  "colon inside brackets is not a modifier",
			input: "[paint-order:markers]",
			want: ParsedClass{
				Base:                    "[paint-order:markers]",
				PostfixModifierPosition: -1,
			},
		},
		{
			name:  "modifier before arbitrary property",
			input: "hover:[paint-order:markers]",
			want: ParsedClass{
				Modifiers:               []string{"hover"},
				Base:                    "[paint-order:markers]",
				PostfixModifierPosition: -1,
			},
		},
		{
			name:  "arbitrary variant with colon stays whole",
			input: "[&:nth-child(3)]:underline",
			want: ParsedClass{
				Modifiers:               []string{"[&:nth-child(3)]"},
				Base:                    "underline",
				PostfixModifierPosition: -1,
			},
		},
		{
			name:  "slash inside brackets is not a postfix",
			input: "bg-[url(/image.png)]",
			want: ParsedClass{
				Base:                    "bg-[url(/image.png)]",
				PostfixModifierPosition: -1,
			},
		},
		{
			name:  "slash inside parens is not a postfix",
			input: "bg-(--my/var)",
			want: ParsedClass{
				Base:                    "bg-(--my/var)",
				PostfixModifierPosition: -1,
			},
		},
		{
			name:  "slash inside a modifier is not a postfix",
			input: "group/name:block",
			want: ParsedClass{
				Modifiers:               []string{"group/name"},
				Base:                    "block",
				PostfixModifierPosition: -1,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parse(tt.input)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("parse(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestParseClassNamePostfixInsideBase(t *testing.T) {
	parse := makeParseClassName(DefaultConfig())

	// The parser records the slash of a fraction; classification decides
	// later whether it is a real postfix modifier.
	got := parse("w-1/2")
	assert.Equal(t, "w-1/2", got.Base)
	assert.Equal(t, 3, got.PostfixModifierPosition)
	assert.Equal(t, byte('/'), got.Base[got.PostfixModifierPosition])
}

func TestParseClassNameWithPrefix(t *testing.T) {
	config := DefaultConfig()
	config.Prefix = "tw"
	parse := makeParseClassName(config)

	got := parse("tw:hover:px-4")
	want := ParsedClass{
		Modifiers:               []string{"hover"},
		Base:                    "px-4",
		PostfixModifierPosition: -1,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("prefixed parse mismatch (-want +got):\n%s", diff)
	}

	external := parse("px-4")
	assert.True(t, external.IsExternal)
	assert.Equal(t, "px-4", external.Base)
	assert.Empty(t, external.Modifiers)
	assert.False(t, external.HasImportant)
}

func TestReconstructClassName(t *testing.T) {
	config := DefaultConfig()

	parsed := ParsedClass{
		Modifiers:               []string{"dark", "hover"},
		HasImportant:            true,
		Base:                    "text-lg/7",
		PostfixModifierPosition: 7,
	}
	assert.Equal(t, "dark:hover:!text-lg/7", reconstructClassName(config, parsed))

	config.Prefix = "tw"
	assert.Equal(t, "tw:dark:hover:!text-lg/7", reconstructClassName(config, parsed))
}

// Package twm merges TailwindCSS-style utility class lists without style
// conflicts.
//
// It performs three key functions:
// 1. Parses each class into variants, important marker, base and postfix
// 2. Classifies the base against a trie of class groups and validators
// 3. Resolves conflicts so that for competing classes the last one wins
//
// Basic usage:
//
//	import "github.com/meldui/twm"
//
//	// Merge classes from a space-delimited string
//	merged := twm.Merge("px-2 py-1 px-4")
//	// Returns: "py-1 px-4"
//
//	// Arguments may be nested lists; nil, bools and empty strings
//	// are dropped
//	merged = twm.Merge([]any{"p-4", nil, []string{"hover:p-2", ""}})
//	// Returns: "p-4 hover:p-2"
//
// Custom configurations:
//
//	tailwindMerge := twm.Extend(twm.ExtendOptions{
//		Prefix: "tw",
//		Extend: twm.PartialConfig{
//			ClassGroups: []twm.ClassGroup{
//				{ID: "shadow", Defs: []twm.ClassDef{
//					twm.Literal("shadow-elevated"),
//				}},
//			},
//		},
//	})
//	merged = tailwindMerge("tw:shadow-md tw:shadow-elevated other-lib-class")
//
// Deterministic short class names for templates:
//
//	className := twm.Generate("text-red-500 bg-blue-500")
//	// Returns something like: "tw-Ab3F5g7"
//
// Merges are cached in a bounded LRU keyed by the raw class list; the
// cache is the only shared mutable state and mergers are safe for
// concurrent use.
package twm

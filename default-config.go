package twm

import "slices"

const defaultMaxCacheSize = 1000

// defs is shorthand for a class definition list.
func defs(d ...ClassDef) []ClassDef { return d }

func validator(name string, fn func(string) bool) Validator {
	return Validator{Name: name, Fn: fn}
}

func literals(names ...string) []ClassDef {
	out := make([]ClassDef, len(names))
	for i, name := range names {
		out[i] = Literal(name)
	}
	return out
}

// DefaultConfig builds the default configuration: the theme scales, the
// class-group table, both conflict tables and the order-sensitive
// modifier set. Each call returns a fresh configuration that the caller
// may mutate.
func DefaultConfig() *Config {
	var (
		anyValue     = validator("any", IsAny)
		number       = validator("number", IsNumber)
		integer      = validator("integer", IsInteger)
		fraction     = validator("fraction", IsFraction)
		percent      = validator("percent", IsPercent)
		tshirtSize   = validator("tshirt-size", IsTshirtSize)
		length       = validator("length", IsLength)
		arbitrary    = validator("arbitrary-value", IsArbitraryValue)
		arbitraryVar = validator("arbitrary-variable", IsArbitraryVariable)
		arbLength    = validator("arbitrary-length", IsArbitraryLength)
		arbNumber    = validator("arbitrary-number", IsArbitraryNumber)
		arbPosition  = validator("arbitrary-position", IsArbitraryPosition)
		arbSize      = validator("arbitrary-size", IsArbitrarySize)
		arbImage     = validator("arbitrary-image", IsArbitraryImage)
		arbShadow    = validator("arbitrary-shadow", IsArbitraryShadow)
	)

	theme := map[string][]ClassDef{
		"colors":  defs(anyValue),
		"spacing": defs(length, arbLength),
		"blur": defs(Literal("none"), tshirtSize, arbitrary, arbitraryVar),
		"radius": defs(Literal("none"), Literal("full"), tshirtSize, arbitrary, arbitraryVar),
		"shadow": defs(Literal(""), Literal("inner"), Literal("none"), tshirtSize, arbShadow),
		"tracking": defs(
			Literal("tighter"), Literal("tight"), Literal("normal"),
			Literal("wide"), Literal("wider"), Literal("widest"),
			arbitrary, arbitraryVar,
		),
		"leading": defs(
			Literal("none"), Literal("tight"), Literal("snug"), Literal("normal"),
			Literal("relaxed"), Literal("loose"),
			length, arbitrary, arbitraryVar,
		),
		"font-weight": defs(
			Literal("thin"), Literal("extralight"), Literal("light"), Literal("normal"),
			Literal("medium"), Literal("semibold"), Literal("bold"), Literal("extrabold"),
			Literal("black"), arbNumber,
		),
		"border-width": defs(Literal(""), length, arbLength),
		"opacity":      defs(number, arbNumber, arbitraryVar),
		"inset": defs(Literal("auto"), fraction, ThemeRef{Key: "spacing"}),
		"margin":    defs(Literal("auto"), ThemeRef{Key: "spacing"}),
		"padding":   defs(ThemeRef{Key: "spacing"}),
		"gap":       defs(ThemeRef{Key: "spacing"}),
		"translate": defs(Literal("full"), fraction, ThemeRef{Key: "spacing"}),
		"gradient-positions": defs(percent, arbitrary, arbitraryVar),
		"animate": defs(
			Literal("none"), Literal("spin"), Literal("ping"), Literal("pulse"),
			Literal("bounce"), arbitrary, arbitraryVar,
		),
		"ease": defs(
			Literal("linear"), Literal("in"), Literal("out"), Literal("in-out"),
			arbitrary, arbitraryVar,
		),
	}

	spacing := defs(ThemeRef{Key: "spacing"})
	colors := defs(ThemeRef{Key: "colors"})
	margin := defs(ThemeRef{Key: "margin"})
	inset := defs(ThemeRef{Key: "inset"})
	gradientPositions := defs(ThemeRef{Key: "gradient-positions"})
	sizing := defs(
		Literal("auto"), Literal("full"), Literal("screen"),
		Literal("min"), Literal("max"), Literal("fit"),
		fraction, ThemeRef{Key: "spacing"},
	)
	maxSizing := defs(
		Literal("none"), Literal("full"), Literal("min"), Literal("max"),
		Literal("fit"), Literal("prose"),
		Group{"screen": defs(tshirtSize)},
		tshirtSize, ThemeRef{Key: "spacing"},
	)
	breaks := literals("auto", "avoid", "all", "avoid-page", "page", "left", "right", "column")
	positions := defs(
		Literal("bottom"), Literal("center"), Literal("left"), Literal("right"), Literal("top"),
		Group{
			"left":  defs(Literal("bottom"), Literal("top")),
			"right": defs(Literal("bottom"), Literal("top")),
		},
		arbPosition,
	)
	lineStyles := literals("solid", "dashed", "dotted", "double", "none")
	blendModes := defs(
		Literal("normal"), Literal("multiply"), Literal("screen"), Literal("overlay"),
		Literal("darken"), Literal("lighten"), Literal("color-dodge"), Literal("color-burn"),
		Literal("hard-light"), Literal("soft-light"), Literal("difference"), Literal("exclusion"),
		Literal("hue"), Literal("saturation"), Literal("color"), Literal("luminosity"),
		Literal("plus-darker"), Literal("plus-lighter"),
	)
	align := literals("start", "end", "center", "between", "around", "evenly", "stretch")
	rotate := defs(number, arbitrary, arbitraryVar)
	skew := defs(number, arbitrary, arbitraryVar)
	overflow := literals("auto", "hidden", "clip", "visible", "scroll")
	overscroll := literals("auto", "contain", "none")

	groups := []ClassGroup{
		// -------------------- Layout --------------------
		{ID: "aspect", Defs: defs(Group{"aspect": defs(
			Literal("auto"), Literal("square"), Literal("video"), fraction, arbitrary, arbitraryVar,
		)})},
		{ID: "container", Defs: defs(Literal("container"))},
		{ID: "columns", Defs: defs(Group{"columns": defs(integer, tshirtSize, arbitrary, arbitraryVar)})},
		{ID: "break-after", Defs: defs(Group{"break-after": breaks})},
		{ID: "break-before", Defs: defs(Group{"break-before": breaks})},
		{ID: "break-inside", Defs: defs(Group{"break-inside": literals("auto", "avoid", "avoid-page", "avoid-column")})},
		{ID: "box-decoration", Defs: defs(Group{"box-decoration": literals("slice", "clone")})},
		{ID: "box", Defs: defs(Group{"box": literals("border", "content")})},
		{ID: "display", Defs: literals(
			"block", "inline-block", "inline", "flex", "inline-flex", "table",
			"inline-table", "table-caption", "table-cell", "table-column",
			"table-column-group", "table-footer-group", "table-header-group",
			"table-row-group", "table-row", "flow-root", "grid", "inline-grid",
			"contents", "list-item", "hidden",
		)},
		{ID: "float", Defs: defs(Group{"float": literals("right", "left", "none", "start", "end")})},
		{ID: "clear", Defs: defs(Group{"clear": literals("left", "right", "both", "none", "start", "end")})},
		{ID: "isolation", Defs: literals("isolate", "isolation-auto")},
		{ID: "object-fit", Defs: defs(Group{"object": literals("contain", "cover", "fill", "none", "scale-down")})},
		{ID: "object-position", Defs: defs(Group{"object": positions})},
		{ID: "overflow", Defs: defs(Group{"overflow": overflow})},
		{ID: "overflow-x", Defs: defs(Group{"overflow-x": overflow})},
		{ID: "overflow-y", Defs: defs(Group{"overflow-y": overflow})},
		{ID: "overscroll", Defs: defs(Group{"overscroll": overscroll})},
		{ID: "overscroll-x", Defs: defs(Group{"overscroll-x": overscroll})},
		{ID: "overscroll-y", Defs: defs(Group{"overscroll-y": overscroll})},
		{ID: "position", Defs: literals("static", "fixed", "absolute", "relative", "sticky")},
		{ID: "inset", Defs: defs(Group{"inset": inset})},
		{ID: "inset-x", Defs: defs(Group{"inset-x": inset})},
		{ID: "inset-y", Defs: defs(Group{"inset-y": inset})},
		{ID: "start", Defs: defs(Group{"start": inset})},
		{ID: "end", Defs: defs(Group{"end": inset})},
		{ID: "top", Defs: defs(Group{"top": inset})},
		{ID: "right", Defs: defs(Group{"right": inset})},
		{ID: "bottom", Defs: defs(Group{"bottom": inset})},
		{ID: "left", Defs: defs(Group{"left": inset})},
		{ID: "visibility", Defs: literals("visible", "invisible", "collapse")},
		{ID: "z", Defs: defs(Group{"z": defs(Literal("auto"), integer, arbitrary, arbitraryVar)})},

		// -------------------- Flexbox & Grid --------------------
		{ID: "basis", Defs: defs(Group{"basis": sizing})},
		{ID: "flex-direction", Defs: defs(Group{"flex": literals("row", "row-reverse", "col", "col-reverse")})},
		{ID: "flex-wrap", Defs: defs(Group{"flex": literals("wrap", "wrap-reverse", "nowrap")})},
		{ID: "flex", Defs: defs(Group{"flex": defs(
			Literal("1"), Literal("auto"), Literal("initial"), Literal("none"), arbitrary,
		)})},
		{ID: "grow", Defs: defs(Group{"grow": defs(Literal(""), number, arbitrary, arbitraryVar)})},
		{ID: "shrink", Defs: defs(Group{"shrink": defs(Literal(""), number, arbitrary, arbitraryVar)})},
		{ID: "order", Defs: defs(Group{"order": defs(
			Literal("first"), Literal("last"), Literal("none"), integer, arbitrary, arbitraryVar,
		)})},
		{ID: "grid-cols", Defs: defs(Group{"grid-cols": defs(
			Literal("none"), Literal("subgrid"), integer, arbitrary, arbitraryVar,
		)})},
		{ID: "col-start-end", Defs: defs(Group{"col": defs(
			Literal("auto"),
			Group{"span": defs(Literal("full"), integer, arbitrary)},
			arbitrary,
		)})},
		{ID: "col-start", Defs: defs(Group{"col-start": defs(Literal("auto"), integer, arbitrary, arbitraryVar)})},
		{ID: "col-end", Defs: defs(Group{"col-end": defs(Literal("auto"), integer, arbitrary, arbitraryVar)})},
		{ID: "grid-rows", Defs: defs(Group{"grid-rows": defs(
			Literal("none"), Literal("subgrid"), integer, arbitrary, arbitraryVar,
		)})},
		{ID: "row-start-end", Defs: defs(Group{"row": defs(
			Literal("auto"),
			Group{"span": defs(Literal("full"), integer, arbitrary)},
			arbitrary,
		)})},
		{ID: "row-start", Defs: defs(Group{"row-start": defs(Literal("auto"), integer, arbitrary, arbitraryVar)})},
		{ID: "row-end", Defs: defs(Group{"row-end": defs(Literal("auto"), integer, arbitrary, arbitraryVar)})},
		{ID: "grid-flow", Defs: defs(Group{"grid-flow": literals("row", "col", "dense", "row-dense", "col-dense")})},
		{ID: "auto-cols", Defs: defs(Group{"auto-cols": defs(
			Literal("auto"), Literal("min"), Literal("max"), Literal("fr"), arbitrary, arbitraryVar,
		)})},
		{ID: "auto-rows", Defs: defs(Group{"auto-rows": defs(
			Literal("auto"), Literal("min"), Literal("max"), Literal("fr"), arbitrary, arbitraryVar,
		)})},
		{ID: "gap", Defs: defs(Group{"gap": defs(ThemeRef{Key: "gap"})})},
		{ID: "gap-x", Defs: defs(Group{"gap-x": defs(ThemeRef{Key: "gap"})})},
		{ID: "gap-y", Defs: defs(Group{"gap-y": defs(ThemeRef{Key: "gap"})})},
		{ID: "justify-content", Defs: defs(Group{"justify": slices.Concat(defs(Literal("normal")), align)})},
		{ID: "justify-items", Defs: defs(Group{"justify-items": literals("start", "end", "center", "stretch")})},
		{ID: "justify-self", Defs: defs(Group{"justify-self": literals("auto", "start", "end", "center", "stretch")})},
		{ID: "align-content", Defs: defs(Group{"content": slices.Concat(defs(Literal("normal"), Literal("baseline")), align)})},
		{ID: "align-items", Defs: defs(Group{"items": literals("start", "end", "center", "baseline", "stretch")})},
		{ID: "align-self", Defs: defs(Group{"self": literals("auto", "start", "end", "center", "stretch", "baseline")})},
		{ID: "place-content", Defs: defs(Group{"place-content": slices.Concat(defs(Literal("baseline")), align)})},
		{ID: "place-items", Defs: defs(Group{"place-items": literals("start", "end", "center", "baseline", "stretch")})},
		{ID: "place-self", Defs: defs(Group{"place-self": literals("auto", "start", "end", "center", "stretch")})},

		// -------------------- Spacing --------------------
		{ID: "p", Defs: defs(Group{"p": defs(ThemeRef{Key: "padding"})})},
		{ID: "px", Defs: defs(Group{"px": defs(ThemeRef{Key: "padding"})})},
		{ID: "py", Defs: defs(Group{"py": defs(ThemeRef{Key: "padding"})})},
		{ID: "ps", Defs: defs(Group{"ps": defs(ThemeRef{Key: "padding"})})},
		{ID: "pe", Defs: defs(Group{"pe": defs(ThemeRef{Key: "padding"})})},
		{ID: "pt", Defs: defs(Group{"pt": defs(ThemeRef{Key: "padding"})})},
		{ID: "pr", Defs: defs(Group{"pr": defs(ThemeRef{Key: "padding"})})},
		{ID: "pb", Defs: defs(Group{"pb": defs(ThemeRef{Key: "padding"})})},
		{ID: "pl", Defs: defs(Group{"pl": defs(ThemeRef{Key: "padding"})})},
		{ID: "m", Defs: defs(Group{"m": margin})},
		{ID: "mx", Defs: defs(Group{"mx": margin})},
		{ID: "my", Defs: defs(Group{"my": margin})},
		{ID: "ms", Defs: defs(Group{"ms": margin})},
		{ID: "me", Defs: defs(Group{"me": margin})},
		{ID: "mt", Defs: defs(Group{"mt": margin})},
		{ID: "mr", Defs: defs(Group{"mr": margin})},
		{ID: "mb", Defs: defs(Group{"mb": margin})},
		{ID: "ml", Defs: defs(Group{"ml": margin})},
		{ID: "space-x", Defs: defs(Group{"space-x": spacing})},
		{ID: "space-x-reverse", Defs: defs(Literal("space-x-reverse"))},
		{ID: "space-y", Defs: defs(Group{"space-y": spacing})},
		{ID: "space-y-reverse", Defs: defs(Literal("space-y-reverse"))},

		// -------------------- Sizing --------------------
		{ID: "size", Defs: defs(Group{"size": sizing})},
		{ID: "w", Defs: defs(Group{"w": slices.Concat(defs(Literal("svw"), Literal("lvw"), Literal("dvw")), sizing)})},
		{ID: "min-w", Defs: defs(Group{"min-w": sizing})},
		{ID: "max-w", Defs: defs(Group{"max-w": maxSizing})},
		{ID: "h", Defs: defs(Group{"h": slices.Concat(defs(Literal("svh"), Literal("lvh"), Literal("dvh")), sizing)})},
		{ID: "min-h", Defs: defs(Group{"min-h": sizing})},
		{ID: "max-h", Defs: defs(Group{"max-h": sizing})},

		// -------------------- Typography --------------------
		{ID: "font-size", Defs: defs(Group{"text": defs(
			Literal("base"), tshirtSize, arbLength, Validator{Name: "arbitrary-variable-length", Fn: IsArbitraryVariableLength},
		)})},
		{ID: "font-smoothing", Defs: literals("antialiased", "subpixel-antialiased")},
		{ID: "font-style", Defs: literals("italic", "not-italic")},
		{ID: "font-weight", Defs: defs(Group{"font": defs(ThemeRef{Key: "font-weight"})})},
		{ID: "font-family", Defs: defs(Group{"font": defs(
			Literal("sans"), Literal("serif"), Literal("mono"),
			Validator{Name: "arbitrary-variable-family-name", Fn: IsArbitraryVariableFamilyName},
			arbitrary,
		)})},
		{ID: "fvn-normal", Defs: defs(Literal("normal-nums"))},
		{ID: "fvn-ordinal", Defs: defs(Literal("ordinal"))},
		{ID: "fvn-slashed-zero", Defs: defs(Literal("slashed-zero"))},
		{ID: "fvn-figure", Defs: literals("lining-nums", "oldstyle-nums")},
		{ID: "fvn-spacing", Defs: literals("proportional-nums", "tabular-nums")},
		{ID: "fvn-fraction", Defs: literals("diagonal-fractions", "stacked-fractions")},
		{ID: "tracking", Defs: defs(Group{"tracking": defs(ThemeRef{Key: "tracking"})})},
		{ID: "line-clamp", Defs: defs(Group{"line-clamp": defs(Literal("none"), number, arbNumber)})},
		{ID: "leading", Defs: defs(Group{"leading": defs(ThemeRef{Key: "leading"})})},
		{ID: "list-image", Defs: defs(Group{"list-image": defs(Literal("none"), arbitrary, arbitraryVar)})},
		{ID: "list-style-type", Defs: defs(Group{"list": defs(
			Literal("none"), Literal("disc"), Literal("decimal"), arbitrary, arbitraryVar,
		)})},
		{ID: "list-style-position", Defs: defs(Group{"list": literals("inside", "outside")})},
		{ID: "placeholder-color", Defs: defs(Group{"placeholder": colors})},
		{ID: "text-alignment", Defs: defs(Group{"text": literals("left", "center", "right", "justify", "start", "end")})},
		{ID: "text-color", Defs: defs(Group{"text": colors})},
		{ID: "text-decoration", Defs: literals("underline", "overline", "line-through", "no-underline")},
		{ID: "text-decoration-style", Defs: defs(Group{"decoration": slices.Concat(lineStyles, defs(Literal("wavy")))})},
		{ID: "text-decoration-thickness", Defs: defs(Group{"decoration": defs(
			Literal("auto"), Literal("from-font"), length, arbLength,
		)})},
		{ID: "text-decoration-color", Defs: defs(Group{"decoration": colors})},
		{ID: "underline-offset", Defs: defs(Group{"underline-offset": defs(Literal("auto"), length, arbitrary)})},
		{ID: "text-transform", Defs: literals("uppercase", "lowercase", "capitalize", "normal-case")},
		{ID: "text-overflow", Defs: literals("truncate", "text-ellipsis", "text-clip")},
		{ID: "text-wrap", Defs: defs(Group{"text": literals("wrap", "nowrap", "balance", "pretty")})},
		{ID: "indent", Defs: defs(Group{"indent": spacing})},
		{ID: "vertical-align", Defs: defs(Group{"align": defs(
			Literal("baseline"), Literal("top"), Literal("middle"), Literal("bottom"),
			Literal("text-top"), Literal("text-bottom"), Literal("sub"), Literal("super"),
			arbitrary, arbitraryVar,
		)})},
		{ID: "whitespace", Defs: defs(Group{"whitespace": literals(
			"normal", "nowrap", "pre", "pre-line", "pre-wrap", "break-spaces",
		)})},
		{ID: "break", Defs: defs(Group{"break": literals("normal", "words", "all", "keep")})},
		{ID: "hyphens", Defs: defs(Group{"hyphens": literals("none", "manual", "auto")})},
		{ID: "content", Defs: defs(Group{"content": defs(Literal("none"), arbitrary, arbitraryVar)})},

		// -------------------- Backgrounds --------------------
		{ID: "bg-attachment", Defs: defs(Group{"bg": literals("fixed", "local", "scroll")})},
		{ID: "bg-clip", Defs: defs(Group{"bg-clip": literals("border", "padding", "content", "text")})},
		{ID: "bg-origin", Defs: defs(Group{"bg-origin": literals("border", "padding", "content")})},
		{ID: "bg-position", Defs: defs(Group{"bg": positions})},
		{ID: "bg-repeat", Defs: defs(Group{"bg": defs(
			Literal("no-repeat"),
			Group{"repeat": defs(Literal(""), Literal("x"), Literal("y"), Literal("round"), Literal("space"))},
		)})},
		{ID: "bg-size", Defs: defs(Group{"bg": defs(Literal("auto"), Literal("cover"), Literal("contain"), arbSize)})},
		{ID: "bg-image", Defs: defs(Group{"bg": defs(
			Literal("none"),
			Group{"gradient-to": literals("t", "tr", "r", "br", "b", "bl", "l", "tl")},
			arbImage,
		)})},
		{ID: "bg-color", Defs: defs(Group{"bg": colors})},
		{ID: "gradient-from-pos", Defs: defs(Group{"from": gradientPositions})},
		{ID: "gradient-via-pos", Defs: defs(Group{"via": gradientPositions})},
		{ID: "gradient-to-pos", Defs: defs(Group{"to": gradientPositions})},
		{ID: "gradient-from", Defs: defs(Group{"from": colors})},
		{ID: "gradient-via", Defs: defs(Group{"via": colors})},
		{ID: "gradient-to", Defs: defs(Group{"to": colors})},

		// -------------------- Borders --------------------
		{ID: "rounded", Defs: defs(Group{"rounded": defs(ThemeRef{Key: "radius"})})},
		{ID: "rounded-s", Defs: defs(Group{"rounded-s": defs(ThemeRef{Key: "radius"})})},
		{ID: "rounded-e", Defs: defs(Group{"rounded-e": defs(ThemeRef{Key: "radius"})})},
		{ID: "rounded-t", Defs: defs(Group{"rounded-t": defs(ThemeRef{Key: "radius"})})},
		{ID: "rounded-r", Defs: defs(Group{"rounded-r": defs(ThemeRef{Key: "radius"})})},
		{ID: "rounded-b", Defs: defs(Group{"rounded-b": defs(ThemeRef{Key: "radius"})})},
		{ID: "rounded-l", Defs: defs(Group{"rounded-l": defs(ThemeRef{Key: "radius"})})},
		{ID: "rounded-ss", Defs: defs(Group{"rounded-ss": defs(ThemeRef{Key: "radius"})})},
		{ID: "rounded-se", Defs: defs(Group{"rounded-se": defs(ThemeRef{Key: "radius"})})},
		{ID: "rounded-ee", Defs: defs(Group{"rounded-ee": defs(ThemeRef{Key: "radius"})})},
		{ID: "rounded-es", Defs: defs(Group{"rounded-es": defs(ThemeRef{Key: "radius"})})},
		{ID: "rounded-tl", Defs: defs(Group{"rounded-tl": defs(ThemeRef{Key: "radius"})})},
		{ID: "rounded-tr", Defs: defs(Group{"rounded-tr": defs(ThemeRef{Key: "radius"})})},
		{ID: "rounded-br", Defs: defs(Group{"rounded-br": defs(ThemeRef{Key: "radius"})})},
		{ID: "rounded-bl", Defs: defs(Group{"rounded-bl": defs(ThemeRef{Key: "radius"})})},
		{ID: "border-w", Defs: defs(Group{"border": defs(ThemeRef{Key: "border-width"})})},
		{ID: "border-w-x", Defs: defs(Group{"border-x": defs(ThemeRef{Key: "border-width"})})},
		{ID: "border-w-y", Defs: defs(Group{"border-y": defs(ThemeRef{Key: "border-width"})})},
		{ID: "border-w-s", Defs: defs(Group{"border-s": defs(ThemeRef{Key: "border-width"})})},
		{ID: "border-w-e", Defs: defs(Group{"border-e": defs(ThemeRef{Key: "border-width"})})},
		{ID: "border-w-t", Defs: defs(Group{"border-t": defs(ThemeRef{Key: "border-width"})})},
		{ID: "border-w-r", Defs: defs(Group{"border-r": defs(ThemeRef{Key: "border-width"})})},
		{ID: "border-w-b", Defs: defs(Group{"border-b": defs(ThemeRef{Key: "border-width"})})},
		{ID: "border-w-l", Defs: defs(Group{"border-l": defs(ThemeRef{Key: "border-width"})})},
		{ID: "border-style", Defs: defs(Group{"border": slices.Concat(lineStyles, defs(Literal("hidden")))})},
		{ID: "divide-x", Defs: defs(Group{"divide-x": defs(ThemeRef{Key: "border-width"})})},
		{ID: "divide-x-reverse", Defs: defs(Literal("divide-x-reverse"))},
		{ID: "divide-y", Defs: defs(Group{"divide-y": defs(ThemeRef{Key: "border-width"})})},
		{ID: "divide-y-reverse", Defs: defs(Literal("divide-y-reverse"))},
		{ID: "divide-style", Defs: defs(Group{"divide": lineStyles})},
		{ID: "border-color", Defs: defs(Group{"border": colors})},
		{ID: "border-color-x", Defs: defs(Group{"border-x": colors})},
		{ID: "border-color-y", Defs: defs(Group{"border-y": colors})},
		{ID: "border-color-t", Defs: defs(Group{"border-t": colors})},
		{ID: "border-color-r", Defs: defs(Group{"border-r": colors})},
		{ID: "border-color-b", Defs: defs(Group{"border-b": colors})},
		{ID: "border-color-l", Defs: defs(Group{"border-l": colors})},
		{ID: "divide-color", Defs: defs(Group{"divide": colors})},
		{ID: "outline-style", Defs: defs(Group{"outline": slices.Concat(defs(Literal("")), lineStyles)})},
		{ID: "outline-offset", Defs: defs(Group{"outline-offset": defs(length, arbitrary)})},
		{ID: "outline-w", Defs: defs(Group{"outline": defs(length, arbLength)})},
		{ID: "outline-color", Defs: defs(Group{"outline": colors})},
		{ID: "ring-w", Defs: defs(Group{"ring": defs(Literal(""), length, arbLength)})},
		{ID: "ring-w-inset", Defs: defs(Literal("ring-inset"))},
		{ID: "ring-color", Defs: defs(Group{"ring": colors})},
		{ID: "ring-offset-w", Defs: defs(Group{"ring-offset": defs(length, arbLength)})},
		{ID: "ring-offset-color", Defs: defs(Group{"ring-offset": colors})},

		// -------------------- Effects --------------------
		{ID: "shadow", Defs: defs(Group{"shadow": defs(ThemeRef{Key: "shadow"})})},
		{ID: "shadow-color", Defs: defs(Group{"shadow": defs(validator("any-non-arbitrary", IsAnyNonArbitrary))})},
		{ID: "opacity", Defs: defs(Group{"opacity": defs(ThemeRef{Key: "opacity"})})},
		{ID: "mix-blend", Defs: defs(Group{"mix-blend": blendModes})},
		{ID: "bg-blend", Defs: defs(Group{"bg-blend": blendModes})},

		// -------------------- Filters --------------------
		{ID: "blur", Defs: defs(Group{"blur": defs(Literal(""), ThemeRef{Key: "blur"})})},
		{ID: "brightness", Defs: defs(Group{"brightness": defs(number, arbitrary, arbitraryVar)})},
		{ID: "contrast", Defs: defs(Group{"contrast": defs(number, arbitrary, arbitraryVar)})},
		{ID: "drop-shadow", Defs: defs(Group{"drop-shadow": defs(
			Literal(""), Literal("none"), tshirtSize, arbitrary, arbitraryVar,
		)})},
		{ID: "grayscale", Defs: defs(Group{"grayscale": defs(Literal(""), number, arbitrary, arbitraryVar)})},
		{ID: "hue-rotate", Defs: defs(Group{"hue-rotate": defs(number, arbitrary, arbitraryVar)})},
		{ID: "invert", Defs: defs(Group{"invert": defs(Literal(""), number, arbitrary, arbitraryVar)})},
		{ID: "saturate", Defs: defs(Group{"saturate": defs(number, arbitrary, arbitraryVar)})},
		{ID: "sepia", Defs: defs(Group{"sepia": defs(Literal(""), number, arbitrary, arbitraryVar)})},
		{ID: "backdrop-blur", Defs: defs(Group{"backdrop-blur": defs(Literal(""), ThemeRef{Key: "blur"})})},
		{ID: "backdrop-brightness", Defs: defs(Group{"backdrop-brightness": defs(number, arbitrary, arbitraryVar)})},
		{ID: "backdrop-contrast", Defs: defs(Group{"backdrop-contrast": defs(number, arbitrary, arbitraryVar)})},
		{ID: "backdrop-grayscale", Defs: defs(Group{"backdrop-grayscale": defs(Literal(""), number, arbitrary, arbitraryVar)})},
		{ID: "backdrop-hue-rotate", Defs: defs(Group{"backdrop-hue-rotate": defs(number, arbitrary, arbitraryVar)})},
		{ID: "backdrop-invert", Defs: defs(Group{"backdrop-invert": defs(Literal(""), number, arbitrary, arbitraryVar)})},
		{ID: "backdrop-opacity", Defs: defs(Group{"backdrop-opacity": defs(ThemeRef{Key: "opacity"})})},
		{ID: "backdrop-saturate", Defs: defs(Group{"backdrop-saturate": defs(number, arbitrary, arbitraryVar)})},
		{ID: "backdrop-sepia", Defs: defs(Group{"backdrop-sepia": defs(Literal(""), number, arbitrary, arbitraryVar)})},

		// -------------------- Tables --------------------
		{ID: "border-collapse", Defs: defs(Group{"border": literals("collapse", "separate")})},
		{ID: "border-spacing", Defs: defs(Group{"border-spacing": spacing})},
		{ID: "border-spacing-x", Defs: defs(Group{"border-spacing-x": spacing})},
		{ID: "border-spacing-y", Defs: defs(Group{"border-spacing-y": spacing})},
		{ID: "table-layout", Defs: defs(Group{"table": literals("auto", "fixed")})},
		{ID: "caption", Defs: defs(Group{"caption": literals("top", "bottom")})},

		// -------------------- Transitions & Animation --------------------
		{ID: "transition", Defs: defs(Group{"transition": defs(
			Literal(""), Literal("all"), Literal("colors"), Literal("opacity"),
			Literal("shadow"), Literal("transform"), Literal("none"), arbitrary,
		)})},
		{ID: "duration", Defs: defs(Group{"duration": defs(number, arbitrary, arbitraryVar)})},
		{ID: "ease", Defs: defs(Group{"ease": defs(ThemeRef{Key: "ease"})})},
		{ID: "delay", Defs: defs(Group{"delay": defs(number, arbitrary, arbitraryVar)})},
		{ID: "animate", Defs: defs(Group{"animate": defs(ThemeRef{Key: "animate"})})},

		// -------------------- Transforms --------------------
		{ID: "transform", Defs: defs(Group{"transform": defs(Literal(""), Literal("gpu"), Literal("none"))})},
		{ID: "scale", Defs: defs(Group{"scale": defs(number, arbitrary, arbitraryVar)})},
		{ID: "scale-x", Defs: defs(Group{"scale-x": defs(number, arbitrary, arbitraryVar)})},
		{ID: "scale-y", Defs: defs(Group{"scale-y": defs(number, arbitrary, arbitraryVar)})},
		{ID: "rotate", Defs: defs(Group{"rotate": rotate})},
		{ID: "translate", Defs: defs(Group{"translate": defs(ThemeRef{Key: "translate"})})},
		{ID: "translate-x", Defs: defs(Group{"translate-x": defs(ThemeRef{Key: "translate"})})},
		{ID: "translate-y", Defs: defs(Group{"translate-y": defs(ThemeRef{Key: "translate"})})},
		{ID: "skew-x", Defs: defs(Group{"skew-x": skew})},
		{ID: "skew-y", Defs: defs(Group{"skew-y": skew})},
		{ID: "transform-origin", Defs: defs(Group{"origin": defs(
			Literal("center"), Literal("top"), Literal("top-right"), Literal("right"),
			Literal("bottom-right"), Literal("bottom"), Literal("bottom-left"),
			Literal("left"), Literal("top-left"), arbitrary, arbitraryVar,
		)})},

		// -------------------- Interactivity --------------------
		{ID: "accent", Defs: defs(Group{"accent": slices.Concat(defs(Literal("auto")), colors)})},
		{ID: "appearance", Defs: defs(Group{"appearance": literals("none", "auto")})},
		{ID: "cursor", Defs: defs(Group{"cursor": defs(
			Literal("auto"), Literal("default"), Literal("pointer"), Literal("wait"),
			Literal("text"), Literal("move"), Literal("help"), Literal("not-allowed"),
			Literal("none"), Literal("context-menu"), Literal("progress"), Literal("cell"),
			Literal("crosshair"), Literal("vertical-text"), Literal("alias"), Literal("copy"),
			Literal("no-drop"), Literal("grab"), Literal("grabbing"), Literal("all-scroll"),
			Literal("col-resize"), Literal("row-resize"), Literal("n-resize"), Literal("e-resize"),
			Literal("s-resize"), Literal("w-resize"), Literal("ne-resize"), Literal("nw-resize"),
			Literal("se-resize"), Literal("sw-resize"), Literal("ew-resize"), Literal("ns-resize"),
			Literal("nesw-resize"), Literal("nwse-resize"), Literal("zoom-in"), Literal("zoom-out"),
			arbitrary, arbitraryVar,
		)})},
		{ID: "caret-color", Defs: defs(Group{"caret": colors})},
		{ID: "pointer-events", Defs: defs(Group{"pointer-events": literals("none", "auto")})},
		{ID: "resize", Defs: defs(Group{"resize": defs(Literal(""), Literal("none"), Literal("y"), Literal("x"))})},
		{ID: "scroll-behavior", Defs: defs(Group{"scroll": literals("auto", "smooth")})},
		{ID: "scroll-m", Defs: defs(Group{"scroll-m": spacing})},
		{ID: "scroll-mx", Defs: defs(Group{"scroll-mx": spacing})},
		{ID: "scroll-my", Defs: defs(Group{"scroll-my": spacing})},
		{ID: "scroll-ms", Defs: defs(Group{"scroll-ms": spacing})},
		{ID: "scroll-me", Defs: defs(Group{"scroll-me": spacing})},
		{ID: "scroll-mt", Defs: defs(Group{"scroll-mt": spacing})},
		{ID: "scroll-mr", Defs: defs(Group{"scroll-mr": spacing})},
		{ID: "scroll-mb", Defs: defs(Group{"scroll-mb": spacing})},
		{ID: "scroll-ml", Defs: defs(Group{"scroll-ml": spacing})},
		{ID: "scroll-p", Defs: defs(Group{"scroll-p": spacing})},
		{ID: "scroll-px", Defs: defs(Group{"scroll-px": spacing})},
		{ID: "scroll-py", Defs: defs(Group{"scroll-py": spacing})},
		{ID: "scroll-ps", Defs: defs(Group{"scroll-ps": spacing})},
		{ID: "scroll-pe", Defs: defs(Group{"scroll-pe": spacing})},
		{ID: "scroll-pt", Defs: defs(Group{"scroll-pt": spacing})},
		{ID: "scroll-pr", Defs: defs(Group{"scroll-pr": spacing})},
		{ID: "scroll-pb", Defs: defs(Group{"scroll-pb": spacing})},
		{ID: "scroll-pl", Defs: defs(Group{"scroll-pl": spacing})},
		{ID: "snap-align", Defs: defs(Group{"snap": literals("start", "end", "center", "align-none")})},
		{ID: "snap-stop", Defs: defs(Group{"snap": literals("normal", "always")})},
		{ID: "snap-type", Defs: defs(Group{"snap": literals("none", "x", "y", "both")})},
		{ID: "snap-strictness", Defs: defs(Group{"snap": literals("mandatory", "proximity")})},
		{ID: "touch", Defs: defs(Group{"touch": literals("auto", "none", "manipulation")})},
		{ID: "touch-x", Defs: defs(Group{"touch-pan": literals("x", "left", "right")})},
		{ID: "touch-y", Defs: defs(Group{"touch-pan": literals("y", "up", "down")})},
		{ID: "touch-pz", Defs: defs(Literal("touch-pinch-zoom"))},
		{ID: "select", Defs: defs(Group{"select": literals("none", "text", "all", "auto")})},
		{ID: "will-change", Defs: defs(Group{"will-change": defs(
			Literal("auto"), Literal("scroll"), Literal("contents"), Literal("transform"), arbitrary,
		)})},

		// -------------------- SVG --------------------
		{ID: "fill", Defs: defs(Group{"fill": slices.Concat(defs(Literal("none")), colors)})},
		{ID: "stroke-w", Defs: defs(Group{"stroke": defs(length, arbLength, arbNumber)})},
		{ID: "stroke", Defs: defs(Group{"stroke": slices.Concat(defs(Literal("none")), colors)})},

		// -------------------- Accessibility --------------------
		{ID: "sr", Defs: literals("sr-only", "not-sr-only")},
		{ID: "forced-color-adjust", Defs: defs(Group{"forced-color-adjust": literals("auto", "none")})},
	}

	conflictingClassGroups := map[string][]string{
		"overflow":         {"overflow-x", "overflow-y"},
		"overscroll":       {"overscroll-x", "overscroll-y"},
		"inset":            {"inset-x", "inset-y", "start", "end", "top", "right", "bottom", "left"},
		"inset-x":          {"right", "left"},
		"inset-y":          {"top", "bottom"},
		"flex":             {"basis", "grow", "shrink"},
		"gap":              {"gap-x", "gap-y"},
		"p":                {"px", "py", "ps", "pe", "pt", "pr", "pb", "pl"},
		"px":               {"pr", "pl"},
		"py":               {"pt", "pb"},
		"m":                {"mx", "my", "ms", "me", "mt", "mr", "mb", "ml"},
		"mx":               {"mr", "ml"},
		"my":               {"mt", "mb"},
		"size":             {"w", "h"},
		"col-start-end":    {"col-start", "col-end"},
		"row-start-end":    {"row-start", "row-end"},
		"fvn-normal":       {"fvn-ordinal", "fvn-slashed-zero", "fvn-figure", "fvn-spacing", "fvn-fraction"},
		"fvn-ordinal":      {"fvn-normal"},
		"fvn-slashed-zero": {"fvn-normal"},
		"fvn-figure":       {"fvn-normal"},
		"fvn-spacing":      {"fvn-normal"},
		"fvn-fraction":     {"fvn-normal"},
		"line-clamp":       {"display", "overflow"},
		"rounded":          {"rounded-s", "rounded-e", "rounded-t", "rounded-r", "rounded-b", "rounded-l", "rounded-ss", "rounded-se", "rounded-ee", "rounded-es", "rounded-tl", "rounded-tr", "rounded-br", "rounded-bl"},
		"rounded-s":        {"rounded-ss", "rounded-es"},
		"rounded-e":        {"rounded-se", "rounded-ee"},
		"rounded-t":        {"rounded-tl", "rounded-tr"},
		"rounded-r":        {"rounded-tr", "rounded-br"},
		"rounded-b":        {"rounded-br", "rounded-bl"},
		"rounded-l":        {"rounded-tl", "rounded-bl"},
		"border-spacing":   {"border-spacing-x", "border-spacing-y"},
		"border-w":         {"border-w-x", "border-w-y", "border-w-s", "border-w-e", "border-w-t", "border-w-r", "border-w-b", "border-w-l"},
		"border-w-x":       {"border-w-r", "border-w-l"},
		"border-w-y":       {"border-w-t", "border-w-b"},
		"border-color":     {"border-color-x", "border-color-y", "border-color-t", "border-color-r", "border-color-b", "border-color-l"},
		"border-color-x":   {"border-color-r", "border-color-l"},
		"border-color-y":   {"border-color-t", "border-color-b"},
		"translate":        {"translate-x", "translate-y"},
		"scroll-m":         {"scroll-mx", "scroll-my", "scroll-ms", "scroll-me", "scroll-mt", "scroll-mr", "scroll-mb", "scroll-ml"},
		"scroll-mx":        {"scroll-mr", "scroll-ml"},
		"scroll-my":        {"scroll-mt", "scroll-mb"},
		"scroll-p":         {"scroll-px", "scroll-py", "scroll-ps", "scroll-pe", "scroll-pt", "scroll-pr", "scroll-pb", "scroll-pl"},
		"scroll-px":        {"scroll-pr", "scroll-pl"},
		"scroll-py":        {"scroll-pt", "scroll-pb"},
		"scale":            {"scale-x", "scale-y"},
		"touch":            {"touch-x", "touch-y", "touch-pz"},
		"touch-x":          {"touch"},
		"touch-y":          {"touch"},
		"touch-pz":         {"touch"},
	}

	conflictingClassGroupModifiers := map[string][]string{
		"font-size": {"leading"},
	}

	return &Config{
		ModifierSeparator: ':',
		ClassSeparator:    '-',
		ImportantModifier: '!',
		PostfixModifier:   '/',
		MaxCacheSize:      defaultMaxCacheSize,
		Theme:             theme,
		ClassGroups:       groups,
		ConflictingClassGroups:         conflictingClassGroups,
		ConflictingClassGroupModifiers: conflictingClassGroupModifiers,
		OrderSensitiveModifiers: []string{
			"*", "**", "after", "backdrop", "before", "details-content",
			"file", "first-letter", "first-line", "marker", "placeholder",
			"selection",
		},
	}
}

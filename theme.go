package sapling

// Style is a fill/text/border color triple for one visual role.
type Style struct {
	Fill   Color
	Text   Color
	Border Color
}

// Theme holds the fonts and color roles passed into every layout and draw
// call. Treat a Theme as immutable for the duration of a frame; after
// swapping the active theme call Scene.InvalidateTheme.
type Theme struct {
	Name     string
	Font     Font
	BoldFont Font

	Standard Style // default widgets and page text
	Selected Style // highlighted rows, pressed toggles
	Accent   Style // links, focus rings
	Panel    Style // container backgrounds
}

// LightTheme returns black-on-white styles with an orange-red highlight.
func LightTheme() *Theme {
	return &Theme{
		Name:     "light",
		Font:     MediumFont,
		BoldFont: BoldFont,
		Standard: Style{Fill: ColorWhite, Text: ColorBlack, Border: ColorBlack},
		Selected: Style{Fill: ColorBlack, Text: ColorWhite, Border: ColorBlack},
		Accent:   Style{Fill: ColorOrangeRed, Text: ColorBlue, Border: ColorOrangeRed},
		Panel:    Style{Fill: ColorLightGray, Text: ColorBlack, Border: ColorBlack},
	}
}

// DarkTheme returns white-on-black styles with an orange highlight.
func DarkTheme() *Theme {
	return &Theme{
		Name:     "dark",
		Font:     MediumFont,
		BoldFont: BoldFont,
		Standard: Style{Fill: ColorBlack, Text: ColorWhite, Border: ColorWhite},
		Selected: Style{Fill: ColorWhite, Text: ColorBlack, Border: ColorWhite},
		Accent:   Style{Fill: ColorOrange, Text: ColorOrange, Border: ColorOrange},
		Panel:    Style{Fill: ColorDarkGray, Text: ColorWhite, Border: ColorWhite},
	}
}

// ThemeByName returns the built-in theme for name ("light" or "dark").
// Unknown names fall back to the light theme.
func ThemeByName(name string) *Theme {
	if name == "dark" {
		return DarkTheme()
	}
	return LightTheme()
}

// WithFonts returns a copy of t using the given regular and bold fonts.
func (t *Theme) WithFonts(regular, bold Font) *Theme {
	cp := *t
	cp.Font = regular
	cp.BoldFont = bold
	return &cp
}

// fontOrDefault guards against a zero Theme in tests and tools.
func (t *Theme) fontOrDefault() Font {
	if t == nil || t.Font == nil {
		return MediumFont
	}
	return t.Font
}

func (t *Theme) boldOrDefault() Font {
	if t == nil || t.BoldFont == nil {
		return t.fontOrDefault()
	}
	return t.BoldFont
}

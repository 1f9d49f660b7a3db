package sapling

// NewLabel creates a static text view. The title is the text; the bounds are
// fitted to it with the theme font on every layout pass, keeping the origin.
func NewLabel(name, text string) *View {
	v := NewView(name, Rect{})
	v.Title = text
	v.Bounds.W, v.Bounds.H = MediumFont.MeasureString(text)
	v.Layout = layoutLabel
	v.Draw = drawLabel
	return v
}

func layoutLabel(s *Scene, name string, theme *Theme) {
	v := s.GetView(name)
	v.Bounds.W, v.Bounds.H = theme.fontOrDefault().MeasureString(v.Title)
}

func drawLabel(v *View, ctx DrawingContext, theme *Theme) {
	ctx.FillText(v.Bounds, v.Title, TextStyle{
		Color: theme.Standard.Text,
		Align: AlignLeft,
		Font:  theme.fontOrDefault(),
	})
}

// NewOverlayLabel creates an inverted status strip: the standard text color
// fills the bounds and the title is drawn right-aligned on top in the
// standard fill color. Used for transient status lines over the page.
func NewOverlayLabel(name, text string) *View {
	v := NewView(name, NewRect(0, 0, 100, 20))
	v.Title = text
	v.Draw = func(v *View, ctx DrawingContext, theme *Theme) {
		ctx.FillRect(v.Bounds, theme.Standard.Text)
		ctx.FillText(v.Bounds.Inset(2), v.Title, TextStyle{
			Color: theme.Standard.Fill,
			Align: AlignRight,
			Font:  theme.fontOrDefault(),
		})
	}
	return v
}

// SetTitle replaces a view's title and schedules layout so text-fitted
// views resize. Missing names log a warning.
func SetTitle(s *Scene, name, title string) {
	if !s.HasView(name) {
		s.log.Warn().Str("view", name).Msg("set title: no view found")
		return
	}
	s.MutateView(name, func(v *View) {
		v.Title = title
	})
	s.layoutDirty = true
}

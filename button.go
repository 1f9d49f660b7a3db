package sapling

// ButtonPadding is the total padding added around a button's text, in both
// axes.
const ButtonPadding = 20

// NewButton creates a push button captioned title. Its bounds fit the text
// plus ButtonPadding. A tap, or a hardware click while focused, bubbles
// Generic.
func NewButton(name, title string) *View {
	v := NewView(name, Rect{})
	v.Title = title
	v.Bounds.W, v.Bounds.H = buttonSize(MediumFont, title)
	v.Layout = layoutButton
	v.Draw = drawButton
	v.Input = inputButton
	return v
}

func buttonSize(f Font, title string) (int, int) {
	w, h := f.MeasureString(title)
	return w + ButtonPadding, h + ButtonPadding
}

func layoutButton(s *Scene, name string, theme *Theme) {
	v := s.GetView(name)
	v.Bounds.W, v.Bounds.H = buttonSize(theme.fontOrDefault(), v.Title)
}

func drawButton(v *View, ctx DrawingContext, theme *Theme) {
	ctx.FillRect(v.Bounds, theme.Standard.Fill)
	border := theme.Standard.Border
	if v.Focused() {
		border = theme.Accent.Border
	}
	ctx.StrokeRect(v.Bounds, border)
	ctx.FillText(v.Bounds, v.Title, TextStyle{
		Color: theme.Standard.Text,
		Align: AlignCenter,
		Font:  theme.fontOrDefault(),
	})
}

func inputButton(ctx InputContext) Action {
	switch ev := ctx.Event.(type) {
	case TapEvent, ActionEvent:
		return Generic{}
	case KeyEvent:
		if ev.Key == KeyEnter {
			return Generic{}
		}
	}
	return nil
}

// --- Toggle button ---

// ToggleState is the state of a toggle button.
type ToggleState struct {
	Selected bool
}

// NewToggleButton creates an 80x30 button that flips its selected state on
// tap or click. It never bubbles an action; read the state with
// GetViewState[ToggleState].
func NewToggleButton(name, title string) *View {
	v := NewView(name, NewRect(0, 0, 80, 30))
	v.Title = title
	v.State = &ToggleState{}
	v.Draw = drawToggleButton
	v.Input = inputToggleButton
	return v
}

func drawToggleButton(v *View, ctx DrawingContext, theme *Theme) {
	style := theme.Standard
	if st := ViewState[ToggleState](v); st != nil && st.Selected {
		style = theme.Selected
	}
	ctx.FillRect(v.Bounds, style.Fill)
	ctx.StrokeRect(v.Bounds, theme.Standard.Border)
	ctx.FillText(v.Bounds, v.Title, TextStyle{
		Color: style.Text,
		Align: AlignCenter,
		Font:  theme.fontOrDefault(),
	})
}

func inputToggleButton(ctx InputContext) Action {
	switch ctx.Event.(type) {
	case TapEvent, ActionEvent:
		if st := GetViewState[ToggleState](ctx.Scene, ctx.Target); st != nil {
			st.Selected = !st.Selected
		}
	}
	return nil
}

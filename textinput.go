package sapling

import "unicode/utf8"

// NewTextInput creates a single-line text field. The title holds the current
// text. Printable keys append, backspace removes the last character, and
// enter bubbles Command(text). A tap focuses the field.
func NewTextInput(name, text string, width int) *View {
	v := NewView(name, NewRect(0, 0, width, 30))
	v.Title = text
	v.Draw = drawTextInput
	v.Input = inputTextInput
	return v
}

func drawTextInput(v *View, ctx DrawingContext, theme *Theme) {
	ctx.FillRect(v.Bounds, theme.Standard.Fill)
	border := theme.Standard.Border
	text := v.Title
	if v.Focused() {
		border = theme.Accent.Border
		text += "_"
	}
	ctx.StrokeRect(v.Bounds, border)
	ctx.FillText(v.Bounds.Inset(4), text, TextStyle{
		Color: theme.Standard.Text,
		Align: AlignLeft,
		Font:  theme.fontOrDefault(),
	})
}

func inputTextInput(ctx InputContext) Action {
	s, name := ctx.Scene, ctx.Target
	switch ev := ctx.Event.(type) {
	case TapEvent:
		s.SetFocused(name)
	case KeyEvent:
		v := ctx.View()
		switch {
		case IsPrintable(ev.Key):
			v.Title += string(rune(ev.Key))
		case ev.Key == KeyBackspace || ev.Key == KeyDelete:
			_, size := utf8.DecodeLastRuneInString(v.Title)
			v.Title = v.Title[:len(v.Title)-size]
		case ev.Key == KeyEnter:
			return Command(v.Title)
		default:
			s.log.Debug().Str("view", name).Uint8("key", ev.Key).Msg("text input: unprintable key")
		}
	}
	return nil
}

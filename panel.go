package sapling

// NewPanel creates a container that paints a background and border. Panels
// do not draw their children; children are ordinary views connected with
// AddViewToParent so that RemoveParentAndChildren tears the group down.
func NewPanel(name string, bounds Rect) *View {
	v := NewView(name, bounds)
	v.Draw = drawPanel
	return v
}

func drawPanel(v *View, ctx DrawingContext, theme *Theme) {
	ctx.FillRect(v.Bounds, theme.Panel.Fill)
	ctx.StrokeRect(v.Bounds, theme.Panel.Border)
}

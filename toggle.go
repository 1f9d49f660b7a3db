package sapling

// ToggleGroupCellWidth is the width of one toggle group cell.
const ToggleGroupCellWidth = 60

// ToggleGroupState holds the items of a toggle group and the index of the
// selected one.
type ToggleGroupState struct {
	Items    []string
	Selected int
}

// SelectedItem returns the text of the selected item.
func (st *ToggleGroupState) SelectedItem() string {
	return st.Items[st.Selected]
}

// NewToggleGroup creates a one-of-many selector laid out as a row of
// ToggleGroupCellWidth cells, 30 pixels high. A tap selects the cell under
// the pointer and bubbles Command(item). Panics if items is empty.
func NewToggleGroup(name string, items []string, selected int) *View {
	if len(items) == 0 {
		panic("sapling: toggle group " + name + " needs at least one item")
	}
	v := NewView(name, NewRect(0, 0, len(items)*ToggleGroupCellWidth, 30))
	v.State = &ToggleGroupState{
		Items:    append([]string(nil), items...),
		Selected: clampInt(selected, 0, len(items)-1),
	}
	v.Draw = drawToggleGroup
	v.Input = inputToggleGroup
	return v
}

func inputToggleGroup(ctx InputContext) Action {
	tap, ok := ctx.Event.(TapEvent)
	if !ok {
		return nil
	}
	v := ctx.View()
	st := ViewState[ToggleGroupState](v)
	if st == nil {
		return nil
	}
	cell := v.Bounds.W / len(st.Items)
	if cell <= 0 {
		return nil
	}
	st.Selected = clampInt((tap.Point.X-v.Bounds.X)/cell, 0, len(st.Items)-1)
	return Command(st.SelectedItem())
}

func drawToggleGroup(v *View, ctx DrawingContext, theme *Theme) {
	st := ViewState[ToggleGroupState](v)
	ctx.FillRect(v.Bounds, theme.Standard.Fill)
	ctx.StrokeRect(v.Bounds, theme.Standard.Border)
	if st == nil {
		return
	}
	cell := v.Bounds.W / len(st.Items)
	for i, item := range st.Items {
		style := theme.Standard
		if i == st.Selected {
			style = theme.Selected
		}
		b := Rect{X: v.Bounds.X + i*cell, Y: v.Bounds.Y, W: cell, H: v.Bounds.H}
		ctx.FillRect(b, style.Fill)
		ctx.StrokeRect(b, theme.Standard.Border)
		ctx.FillText(b, item, TextStyle{
			Color: style.Text,
			Align: AlignCenter,
			Font:  theme.fontOrDefault(),
		})
	}
}

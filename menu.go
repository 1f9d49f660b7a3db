package sapling

// Menu geometry.
const (
	MenuRowHeight = 20
	MenuMinWidth  = 100
	menuTextInset = 4
)

// MenuState holds a menu's items and the selected row. Selected is a plain
// int so that navigation can use (selected + delta + len) % len and wrap in
// both directions.
type MenuState struct {
	Items    []string
	Selected int
}

// SelectedItem returns the text of the selected row.
func (st *MenuState) SelectedItem() string {
	return st.Items[st.Selected]
}

// Move shifts the selection by delta rows with wraparound at both ends.
func (st *MenuState) Move(delta int) {
	n := len(st.Items)
	st.Selected = ((st.Selected+delta)%n + n) % n
}

// NewMenu creates a vertical list of items, one MenuRowHeight row each.
//
// Input: j / down / scroll down select the next row, k / up / scroll up the
// previous one, both wrapping. Enter or a hardware click bubbles
// Command(selected item). A tap focuses the menu, selects the row under the
// pointer and bubbles Command(item). Panics if items is empty.
func NewMenu(name string, items []string) *View {
	if len(items) == 0 {
		panic("sapling: menu " + name + " needs at least one item")
	}
	v := NewView(name, NewRect(0, 0, MenuMinWidth, len(items)*MenuRowHeight))
	v.State = &MenuState{Items: append([]string(nil), items...)}
	v.Layout = layoutMenu
	v.Draw = drawMenu
	v.Input = inputMenu
	return v
}

// MenuScrollBy moves the named menu's selection by delta rows and marks the
// menu dirty.
func MenuScrollBy(s *Scene, name string, delta int) {
	st := GetViewState[MenuState](s, name)
	if st == nil {
		s.log.Warn().Str("view", name).Msg("menu scroll: no menu found")
		return
	}
	st.Move(delta)
	s.MarkDirtyView(name)
}

func layoutMenu(s *Scene, name string, theme *Theme) {
	v := s.GetView(name)
	st := ViewState[MenuState](v)
	if st == nil {
		return
	}
	f := theme.fontOrDefault()
	w := MenuMinWidth
	for _, item := range st.Items {
		iw, _ := f.MeasureString(item)
		w = max(w, iw+2*menuTextInset)
	}
	v.Bounds.W = w
	v.Bounds.H = len(st.Items) * MenuRowHeight
}

func drawMenu(v *View, ctx DrawingContext, theme *Theme) {
	ctx.FillRect(v.Bounds, theme.Standard.Fill)
	ctx.StrokeRect(v.Bounds, theme.Standard.Border)
	st := ViewState[MenuState](v)
	if st == nil {
		return
	}
	for i, item := range st.Items {
		row := Rect{X: v.Bounds.X, Y: v.Bounds.Y + i*MenuRowHeight, W: v.Bounds.W, H: MenuRowHeight - 1}
		color := theme.Standard.Text
		if i == st.Selected {
			ctx.FillRect(row, theme.Selected.Fill)
			color = theme.Selected.Text
		}
		ctx.FillText(Rect{X: row.X + menuTextInset, Y: row.Y, W: row.W - menuTextInset, H: row.H}, item, TextStyle{
			Color: color,
			Align: AlignLeft,
			Font:  theme.fontOrDefault(),
		})
	}
}

func inputMenu(ctx InputContext) Action {
	s, name := ctx.Scene, ctx.Target
	switch ev := ctx.Event.(type) {
	case TapEvent:
		s.SetFocused(name)
		v := s.GetView(name)
		st := ViewState[MenuState](v)
		if st == nil || !v.Bounds.Contains(ev.Point) {
			return nil
		}
		row := (ev.Point.Y - v.Bounds.Y) / MenuRowHeight
		if row < 0 || row >= len(st.Items) {
			return nil
		}
		st.Selected = row
		return Command(st.SelectedItem())
	case ScrollEvent:
		switch {
		case ev.DY > 0:
			MenuScrollBy(s, name, 1)
		case ev.DY < 0:
			MenuScrollBy(s, name, -1)
		}
	case KeyEvent:
		switch ev.Key {
		case 'j', KeyDown:
			MenuScrollBy(s, name, 1)
		case 'k', KeyUp:
			MenuScrollBy(s, name, -1)
		case KeyEnter:
			if st := GetViewState[MenuState](s, name); st != nil {
				return Command(st.SelectedItem())
			}
		}
	case ActionEvent:
		if st := GetViewState[MenuState](s, name); st != nil {
			return Command(st.SelectedItem())
		}
	}
	return nil
}

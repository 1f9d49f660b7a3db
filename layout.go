package sapling

import "time"

// LayoutScene runs every view's Layout closure once, children before their
// parents, if a layout pass is due, then clears the layout-dirty flag. Any
// view whose bounds changed during the pass has its old and new bounds
// marked dirty.
//
// Ordering: each top-level view's subtree is walked post-order, and the
// subtrees follow the draw order. A container therefore sizes itself from
// children whose own layouts have already run. Containers move a child with
// placeView so that the child's descendants follow it.
func LayoutScene(s *Scene, theme *Theme) {
	if !s.layoutDirty {
		return
	}
	start := time.Now()

	before := make(map[string]Rect, len(s.views))
	for name, v := range s.views {
		before[name] = v.Bounds
	}

	for _, name := range s.layoutOrder() {
		v := s.views[name]
		if v == nil || v.Layout == nil {
			continue
		}
		v.Layout(s, name, theme)
	}

	for name, old := range before {
		v := s.views[name]
		if v == nil || v.Bounds == old {
			continue
		}
		s.MarkDirty(old)
		s.MarkDirty(v.Bounds)
	}

	s.layoutDirty = false
	s.stats.LayoutTime = time.Since(start)
	if s.debug {
		s.debugCheckEdges()
	}
}

// layoutOrder lists every view post-order over the parent/child edges. Top
// ancestors are taken in draw order; children in connection order.
func (s *Scene) layoutOrder() []string {
	order := make([]string, 0, len(s.views))
	seen := make(map[string]bool, len(s.views))
	var visit func(name string)
	visit = func(name string) {
		if seen[name] {
			return
		}
		seen[name] = true
		for _, kid := range s.children[name] {
			visit(kid)
		}
		if _, ok := s.views[name]; ok {
			order = append(order, name)
		}
	}
	for _, name := range s.drawOrder {
		top := name
		for {
			p, ok := s.parents[top]
			if !ok || p == RootName || s.views[p] == nil {
				break
			}
			top = p
		}
		visit(top)
	}
	return order
}

// placeView moves name's origin to (x, y) and shifts its descendants by the
// same offset.
func placeView(s *Scene, name string, x, y int) {
	v := s.views[name]
	if v == nil {
		return
	}
	dx, dy := x-v.Bounds.X, y-v.Bounds.Y
	if dx == 0 && dy == 0 {
		return
	}
	v.Bounds.X, v.Bounds.Y = x, y
	for _, kid := range s.children[name] {
		if k := s.views[kid]; k != nil {
			placeView(s, kid, k.Bounds.X+dx, k.Bounds.Y+dy)
		}
	}
}

// --- Form (grid) container ---

// FormState configures a grid container. Children are placed by the cell
// recorded for them with SetFormCell; children without a cell are left
// where they are.
type FormState struct {
	Cols, Rows          int
	ColWidth, RowHeight int
	Cells               map[string]FormCell
}

// FormCell is a child's grid position.
type FormCell struct {
	Col, Row         int
	ColSpan, RowSpan int
}

// NewForm creates a grid container of cols x rows cells, each colWidth x
// rowHeight pixels. The form paints a panel background; its children are
// independent views connected with AddViewToParent.
func NewForm(name string, cols, rows, colWidth, rowHeight int) *View {
	if cols <= 0 || rows <= 0 {
		panic("sapling: form needs at least one column and one row")
	}
	v := NewView(name, NewRect(0, 0, cols*colWidth, rows*rowHeight))
	v.State = &FormState{
		Cols:      cols,
		Rows:      rows,
		ColWidth:  colWidth,
		RowHeight: rowHeight,
		Cells:     make(map[string]FormCell),
	}
	v.Layout = layoutForm
	v.Draw = drawPanel
	return v
}

// SetFormCell places child at (col, row) in form. Out-of-range cells are
// clamped into the grid. Missing forms log a warning.
func SetFormCell(s *Scene, form, child string, col, row int) {
	st := GetViewState[FormState](s, form)
	if st == nil {
		s.log.Warn().Str("view", form).Str("child", child).Msg("form cell: no form found")
		return
	}
	st.Cells[child] = FormCell{
		Col:     clampInt(col, 0, st.Cols-1),
		Row:     clampInt(row, 0, st.Rows-1),
		ColSpan: 1,
		RowSpan: 1,
	}
	s.layoutDirty = true
}

func layoutForm(s *Scene, name string, _ *Theme) {
	form := s.GetView(name)
	st := ViewState[FormState](form)
	if st == nil {
		return
	}
	form.Bounds.W = st.Cols * st.ColWidth
	form.Bounds.H = st.Rows * st.RowHeight
	for _, kid := range s.FindChildren(name) {
		v := s.GetView(kid)
		if v == nil {
			continue
		}
		cell, ok := st.Cells[kid]
		if !ok {
			continue
		}
		placeView(s, kid, form.Bounds.X+cell.Col*st.ColWidth, form.Bounds.Y+cell.Row*st.RowHeight)
		v.Bounds.W = cell.ColSpan * st.ColWidth
		v.Bounds.H = cell.RowSpan * st.RowHeight
	}
}

// --- Vertical box container ---

// VBoxState configures a vertical stack.
type VBoxState struct {
	Padding int
	Gap     int
}

// NewVBox creates a container that stacks its children top to bottom,
// inset by padding with gap pixels between them. The box keeps its own
// width and grows its height to fit.
func NewVBox(name string, bounds Rect, padding, gap int) *View {
	v := NewView(name, bounds)
	v.State = &VBoxState{Padding: padding, Gap: gap}
	v.Layout = layoutVBox
	v.Draw = drawPanel
	return v
}

func layoutVBox(s *Scene, name string, _ *Theme) {
	box := s.GetView(name)
	st := ViewState[VBoxState](box)
	if st == nil {
		return
	}
	y := box.Bounds.Y + st.Padding
	for _, kid := range s.FindChildren(name) {
		v := s.GetView(kid)
		if v == nil || !v.Visible {
			continue
		}
		placeView(s, kid, box.Bounds.X+st.Padding, y)
		y += v.Bounds.H + st.Gap
	}
	if y > box.Bounds.Y+st.Padding {
		y -= st.Gap
	}
	box.Bounds.H = max(box.Bounds.H, y+st.Padding-box.Bounds.Y)
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return min(max(v, lo), hi)
}

package sapling

import "github.com/mattn/go-runewidth"

// Page view geometry.
const (
	PageScrollStep = 10 // lines moved by j / k
	pageInsetX     = 8
	pageInsetY     = 5
	pageLineGap    = 2
)

// RenderedPage is a page after word wrapping, with its own scroll position.
type RenderedPage struct {
	Page        Page
	Lines       []TextLine
	LinkCount   int
	ScrollIndex int
}

// RenderPage wraps every block of p to columns cells.
func RenderPage(p Page, columns int) RenderedPage {
	if p.Links == nil {
		p.Links = p.collectLinks()
	}
	rp := RenderedPage{Page: p}
	rp.rewrap(columns)
	return rp
}

func (rp *RenderedPage) rewrap(columns int) {
	rp.Lines = nil
	links := 0
	for _, b := range rp.Page.Blocks {
		var lines []TextLine
		lines, links = BreakLines(b, columns, links)
		rp.Lines = append(rp.Lines, lines...)
	}
	rp.LinkCount = links
	rp.ScrollIndex = clampInt(rp.ScrollIndex, 0, len(rp.Lines)-1)
}

// HrefAt returns the href of the link with the given index.
func (rp *RenderedPage) HrefAt(index int) (string, bool) {
	for _, line := range rp.Lines {
		for _, run := range line.Runs {
			if run.Link == index {
				return run.Href, true
			}
		}
	}
	return "", false
}

// PageViewState is a page view's navigation history. Each entry keeps its
// wrapped lines, link selection and scroll position, so moving through the
// history never re-wraps.
type PageViewState struct {
	History []RenderedPage
	Cursor  int
	Columns int

	lastFont Font // font of the last layout, for tap hit-testing
}

func (st *PageViewState) font() Font {
	if st.lastFont == nil {
		return MediumFont
	}
	return st.lastFont
}

// Current returns the page at the history cursor.
func (st *PageViewState) Current() *RenderedPage {
	return &st.History[st.Cursor]
}

// LoadPage wraps p and pushes it onto the history, moving the cursor to it.
// Entries after the cursor are kept, so Forward can still reach them.
func (st *PageViewState) LoadPage(p Page) {
	st.History = append(st.History, RenderPage(p, st.Columns))
	st.Cursor = len(st.History) - 1
}

// PrevPage moves the cursor back one entry. No-op at the first entry.
func (st *PageViewState) PrevPage() {
	if st.Cursor > 0 {
		st.Cursor--
	}
}

// NextPage moves the cursor forward one entry. No-op at the last entry.
func (st *PageViewState) NextPage() {
	if st.Cursor < len(st.History)-1 {
		st.Cursor++
	}
}

// PrevLink selects the previous link, wrapping to the last.
func (st *PageViewState) PrevLink() {
	rp := st.Current()
	if rp.LinkCount == 0 {
		return
	}
	rp.Page.Selection--
	if rp.Page.Selection < 0 {
		rp.Page.Selection = rp.LinkCount - 1
	}
}

// NextLink selects the next link, wrapping to the first.
func (st *PageViewState) NextLink() {
	rp := st.Current()
	if rp.LinkCount == 0 {
		return
	}
	rp.Page.Selection++
	if rp.Page.Selection >= rp.LinkCount {
		rp.Page.Selection = 0
	}
}

// CurrentLink returns the selected link resolved against the page URL.
func (st *PageViewState) CurrentLink() (string, bool) {
	rp := st.Current()
	href, ok := rp.HrefAt(rp.Page.Selection)
	if !ok {
		return "", false
	}
	return rp.Page.Resolve(href), true
}

// ScrollDown advances PageScrollStep lines, wrapping to the top past the end.
func (st *PageViewState) ScrollDown() {
	rp := st.Current()
	if n := len(rp.Lines); n > 0 {
		rp.ScrollIndex = (rp.ScrollIndex + PageScrollStep) % n
	}
}

// ScrollUp moves back PageScrollStep lines, stopping at the top.
func (st *PageViewState) ScrollUp() {
	rp := st.Current()
	rp.ScrollIndex = max(rp.ScrollIndex-PageScrollStep, 0)
}

// setColumns re-wraps every history entry when the column count changes.
func (st *PageViewState) setColumns(columns int) bool {
	if columns == st.Columns {
		return false
	}
	st.Columns = columns
	for i := range st.History {
		st.History[i].rewrap(columns)
	}
	return true
}

// NewPageView creates a rich-text view showing page, with a history of one.
//
// Keys: j / k scroll, a / s select the previous / next link, enter follows
// the selected link. Scroll deltas move the link selection. A tap on a link
// selects and follows it. Following a link bubbles LoadRequest(url); the view
// does not load anything itself, the host calls LoadPage when the page
// arrives.
func NewPageView(name string, bounds Rect, page Page) *View {
	v := NewView(name, bounds)
	st := &PageViewState{Columns: pageColumns(bounds, MediumFont)}
	st.History = []RenderedPage{RenderPage(page, st.Columns)}
	v.State = st
	v.Layout = layoutPageView
	v.Draw = drawPageView
	v.Input = inputPageView
	return v
}

// LoadPage pushes page onto the named page view's history and marks it dirty.
func LoadPage(s *Scene, name string, page Page) {
	st := GetViewState[PageViewState](s, name)
	if st == nil {
		s.log.Warn().Str("view", name).Str("url", page.URL).Msg("load page: no page view found")
		return
	}
	st.LoadPage(page)
	s.MarkDirtyView(name)
}

// PrevPage moves the named page view back in its history.
func PrevPage(s *Scene, name string) {
	withPageView(s, name, (*PageViewState).PrevPage)
}

// NextPage moves the named page view forward in its history.
func NextPage(s *Scene, name string) {
	withPageView(s, name, (*PageViewState).NextPage)
}

func withPageView(s *Scene, name string, fn func(*PageViewState)) {
	st := GetViewState[PageViewState](s, name)
	if st == nil {
		s.log.Warn().Str("view", name).Msg("page view: no page view found")
		return
	}
	fn(st)
	s.MarkDirtyView(name)
}

func pageColumns(bounds Rect, f Font) int {
	adv := max(f.Advance(), 1)
	return max((bounds.W-2*pageInsetX)/adv, 1)
}

func pageLineHeight(f Font) int {
	return f.LineHeight() + pageLineGap
}

func pageVisibleRows(bounds Rect, f Font) int {
	return max((bounds.H-pageInsetY)/pageLineHeight(f), 0)
}

func layoutPageView(s *Scene, name string, theme *Theme) {
	v := s.GetView(name)
	st := ViewState[PageViewState](v)
	if st == nil {
		return
	}
	st.lastFont = theme.fontOrDefault()
	if st.setColumns(pageColumns(v.Bounds, st.lastFont)) {
		s.MarkDirty(v.Bounds)
	}
}

// visibleLines returns the viewport slice of the current page.
func visibleLines(st *PageViewState, bounds Rect, f Font) []TextLine {
	rp := st.Current()
	start := clampInt(rp.ScrollIndex, 0, len(rp.Lines))
	end := min(start+pageVisibleRows(bounds, f), len(rp.Lines))
	return rp.Lines[start:end]
}

func drawPageView(v *View, ctx DrawingContext, theme *Theme) {
	ctx.FillRect(v.Bounds, theme.Standard.Fill)
	st := ViewState[PageViewState](v)
	if st == nil {
		return
	}
	f := theme.fontOrDefault()
	lh := pageLineHeight(f)
	adv := f.Advance()
	selected := st.Current().Page.Selection

	for j, line := range visibleLines(st, v.Bounds, f) {
		y := v.Bounds.Y + pageInsetY + j*lh
		if line.Type == BlockListItem {
			ctx.FillRect(Rect{X: v.Bounds.X + 2, Y: y + lh/2 - 1, W: 4, H: 3}, theme.Standard.Text)
		}
		col := 0
		for _, run := range line.Runs {
			w := runewidth.StringWidth(run.Text)
			style := TextStyle{Color: theme.Standard.Text, Align: AlignLeft, Font: f}
			if line.Type == BlockHeader || run.Style == RunBold {
				style.Font = theme.boldOrDefault()
			}
			if run.Style == RunLink {
				style.Color = theme.Accent.Text
				style.Underline = run.Link == selected
			}
			ctx.FillText(Rect{X: v.Bounds.X + pageInsetX + col*adv, Y: y, W: w * adv, H: lh}, run.Text, style)
			col += w
		}
	}
}

// linkAt returns the index of the link run under p, or -1.
func linkAt(st *PageViewState, bounds Rect, f Font, p Point) int {
	lh := pageLineHeight(f)
	adv := max(f.Advance(), 1)
	row := (p.Y - bounds.Y - pageInsetY) / lh
	lines := visibleLines(st, bounds, f)
	if p.Y < bounds.Y+pageInsetY || row >= len(lines) {
		return -1
	}
	col := (p.X - bounds.X - pageInsetX) / adv
	if p.X < bounds.X+pageInsetX {
		return -1
	}
	at := 0
	for _, run := range lines[row].Runs {
		w := runewidth.StringWidth(run.Text)
		if col >= at && col < at+w {
			return run.Link
		}
		at += w
	}
	return -1
}

func inputPageView(ctx InputContext) Action {
	s, name := ctx.Scene, ctx.Target
	v := ctx.View()
	st := ViewState[PageViewState](v)
	if st == nil {
		return nil
	}
	follow := func() Action {
		if href, ok := st.CurrentLink(); ok {
			return LoadRequest(href)
		}
		return nil
	}

	switch ev := ctx.Event.(type) {
	case KeyEvent:
		switch ev.Key {
		case 'j':
			st.ScrollDown()
		case 'k':
			st.ScrollUp()
		case 'a':
			st.PrevLink()
		case 's':
			st.NextLink()
		case KeyEnter:
			return follow()
		default:
			s.log.Debug().Str("view", name).Stringer("event", ev).Msg("page view: unhandled key")
		}
	case ScrollEvent:
		if ev.DX < 0 || ev.DY < 0 {
			st.PrevLink()
		}
		if ev.DX > 0 || ev.DY > 0 {
			st.NextLink()
		}
	case ActionEvent:
		return follow()
	case TapEvent:
		s.SetFocused(name)
		link := linkAt(st, v.Bounds, st.font(), ev.Point)
		if link < 0 {
			return nil
		}
		st.Current().Page.Selection = link
		return follow()
	}
	return nil
}

package sapling

import (
	"os"
	"slices"

	"github.com/rs/zerolog"
)

// RootName is the implicit parent used by AddViewToRoot. It is not a view.
const RootName = "root"

// Scene owns every View of one screen, keyed by name, plus the draw order,
// the parent/child edges, the focus pointer and the accumulated dirty
// rectangle. Views never hold references to each other; all relations are
// name lookups into the scene.
//
// A Scene is not safe for concurrent use. The host's frame loop is its only
// mutator.
type Scene struct {
	views     map[string]*View
	drawOrder []string
	children  map[string][]string
	parents   map[string]string

	focused      string
	hasFocus     bool
	defaultFocus string

	screen      Rect
	dirty       Rect
	layoutDirty bool
	autoRedraw  bool

	log   zerolog.Logger
	debug bool
	stats FrameStats

	hitBuf []*View

	injectQueue     []InputEvent
	testRunner      *TestRunner
	screenshotQueue []string
}

// NewScene creates an empty scene covering screen. The whole screen starts
// dirty and a layout pass is due.
func NewScene(screen Rect) *Scene {
	return &Scene{
		views:       make(map[string]*View),
		children:    make(map[string][]string),
		parents:     make(map[string]string),
		screen:      screen,
		dirty:       screen,
		layoutDirty: true,
		log: zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(zerolog.WarnLevel).With().Timestamp().Str("component", "scene").Logger(),
	}
}

// Screen returns the full-screen bounds the scene was created with.
func (s *Scene) Screen() Rect {
	return s.screen
}

// SetLogger replaces the scene's logger.
func (s *Scene) SetLogger(l zerolog.Logger) {
	s.log = l
}

// Logger returns the scene's logger so view closures can log consistently.
func (s *Scene) Logger() *zerolog.Logger {
	return &s.log
}

// SetDebugMode enables or disables debug mode. When enabled, inserting a
// duplicate view name panics and per-frame stats are logged at debug level.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
}

// SetAutoRedraw makes every draw pass leave the full screen dirty so the
// next frame repaints unconditionally. Used by animated views.
func (s *Scene) SetAutoRedraw(enabled bool) {
	s.autoRedraw = enabled
	s.MarkDirtyAll()
}

// --- Graph mutation ---

// AddView inserts v at the top of the draw order with no parent edge.
//
// If a view with the same name exists it is replaced in place: the old
// draw-order slot and edges are kept, both bounds are marked dirty, and a
// warning is logged. In debug mode a duplicate name panics instead.
func (s *Scene) AddView(v *View) {
	if v == nil {
		panic("sapling: cannot add nil view")
	}
	if old, ok := s.views[v.Name]; ok {
		if s.debug {
			panic("sapling: duplicate view name " + v.Name)
		}
		s.log.Warn().Str("view", v.Name).Msg("add: replacing existing view")
		v.focused = old.focused
		s.views[v.Name] = v
		s.MarkDirty(old.Bounds)
		s.MarkDirty(v.Bounds)
		s.layoutDirty = true
		return
	}
	s.views[v.Name] = v
	s.drawOrder = append(s.drawOrder, v.Name)
	s.MarkDirty(v.Bounds)
	s.layoutDirty = true
	if s.debug {
		s.debugCheckViewCount()
	}
}

// AddViewToRoot inserts v and records it as a child of RootName.
func (s *Scene) AddViewToRoot(v *View) {
	s.AddView(v)
	s.ConnectParentChild(RootName, v.Name)
}

// AddViewToParent inserts v and records it as a child of parent. The parent
// does not need to exist yet; construction order and hierarchy order may
// differ.
func (s *Scene) AddViewToParent(v *View, parent string) {
	s.AddView(v)
	s.ConnectParentChild(parent, v.Name)
}

// ConnectParentChild records a parent -> child edge without inserting or
// moving anything. A child has at most one parent; connecting it again
// moves the edge. Edges that would create a cycle are ignored.
func (s *Scene) ConnectParentChild(parent, child string) {
	if parent == child || s.isAncestor(child, parent) {
		s.log.Warn().Str("parent", parent).Str("view", child).Msg("connect: edge would create a cycle")
		return
	}
	if old, ok := s.parents[child]; ok {
		if old == parent {
			return
		}
		s.children[old] = removeName(s.children[old], child)
		if len(s.children[old]) == 0 {
			delete(s.children, old)
		}
	}
	s.parents[child] = parent
	s.children[parent] = append(s.children[parent], child)
	s.layoutDirty = true
}

// FindChildren returns the names of parent's children in connection order.
// The returned slice is a copy.
func FindChildren(s *Scene, parent string) []string {
	return slices.Clone(s.children[parent])
}

// FindChildren is the method form of the package-level FindChildren.
func (s *Scene) FindChildren(parent string) []string {
	return FindChildren(s, parent)
}

// ParentOf returns the recorded parent of name.
func (s *Scene) ParentOf(name string) (string, bool) {
	p, ok := s.parents[name]
	return p, ok
}

// RemoveView deletes one view. Its children stay in the scene but lose their
// parent edge. Removing a missing name logs a warning and does nothing.
func (s *Scene) RemoveView(name string) {
	if _, ok := s.views[name]; !ok {
		s.log.Warn().Str("view", name).Msg("remove: no view found")
		return
	}
	s.removeOne(name)
	s.repairFocus(map[string]bool{name: true})
}

// RemoveParentAndChildren deletes name and every view reachable below it
// through the child edges. Focus held by any removed view falls back to the
// default focus (if it survives) or to the unfocused state.
func (s *Scene) RemoveParentAndChildren(name string) {
	_, exists := s.views[name]
	if !exists && len(s.children[name]) == 0 {
		s.log.Warn().Str("view", name).Msg("remove subtree: no view found")
		return
	}
	removed := make(map[string]bool)
	stack := []string{name}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if removed[n] {
			continue
		}
		removed[n] = true
		stack = append(stack, s.children[n]...)
	}
	for n := range removed {
		if _, ok := s.views[n]; ok {
			s.removeOne(n)
		} else {
			s.dropEdges(n)
		}
	}
	s.repairFocus(removed)
}

func (s *Scene) removeOne(name string) {
	v := s.views[name]
	delete(s.views, name)
	s.drawOrder = removeName(s.drawOrder, name)
	s.dropEdges(name)
	v.focused = false
	s.MarkDirty(v.Bounds)
	s.layoutDirty = true
}

func (s *Scene) dropEdges(name string) {
	if p, ok := s.parents[name]; ok {
		s.children[p] = removeName(s.children[p], name)
		if len(s.children[p]) == 0 {
			delete(s.children, p)
		}
		delete(s.parents, name)
	}
	for _, c := range s.children[name] {
		delete(s.parents, c)
	}
	delete(s.children, name)
}

// repairFocus moves focus off removed views.
func (s *Scene) repairFocus(removed map[string]bool) {
	if !s.hasFocus || !removed[s.focused] {
		return
	}
	s.hasFocus = false
	s.focused = ""
	if s.defaultFocus != "" && !removed[s.defaultFocus] {
		if _, ok := s.views[s.defaultFocus]; ok {
			s.SetFocused(s.defaultFocus)
		}
	}
}

// isAncestor reports whether candidate is an ancestor of name.
func (s *Scene) isAncestor(candidate, name string) bool {
	seen := 0
	for p, ok := s.parents[name]; ok; p, ok = s.parents[p] {
		if p == candidate {
			return true
		}
		seen++
		if seen > len(s.parents) {
			return false
		}
	}
	return false
}

// --- Lookup ---

// GetView returns the named view, or nil. The pointer is a short-lived
// borrow: do not retain it across frames, the scene may replace or remove it.
func (s *Scene) GetView(name string) *View {
	return s.views[name]
}

// HasView reports whether name exists.
func (s *Scene) HasView(name string) bool {
	_, ok := s.views[name]
	return ok
}

// MutateView runs fn on the named view and marks both the old and the new
// bounds dirty. Missing names log a warning.
func (s *Scene) MutateView(name string, fn func(v *View)) {
	v, ok := s.views[name]
	if !ok {
		s.log.Warn().Str("view", name).Msg("mutate: no view found")
		return
	}
	before := v.Bounds
	fn(v)
	s.MarkDirty(before)
	s.MarkDirty(v.Bounds)
}

// GetViewState returns the named view's state as *T. It returns nil when the
// view is missing, has no state, or holds a different type.
func GetViewState[T any](s *Scene, name string) *T {
	return ViewState[T](s.views[name])
}

// DrawOrder returns a copy of the draw order; later names paint on top.
func (s *Scene) DrawOrder() []string {
	return slices.Clone(s.drawOrder)
}

// Len returns the number of views.
func (s *Scene) Len() int {
	return len(s.views)
}

// RaiseView moves name to the top of the draw order.
func (s *Scene) RaiseView(name string) {
	v, ok := s.views[name]
	if !ok {
		s.log.Warn().Str("view", name).Msg("raise: no view found")
		return
	}
	s.drawOrder = append(removeName(s.drawOrder, name), name)
	s.MarkDirty(v.Bounds)
}

// --- Visibility ---

// ShowView makes name visible and marks its bounds dirty.
func (s *Scene) ShowView(name string) {
	s.setVisible(name, true)
}

// HideView makes name invisible and marks its bounds dirty so whatever is
// underneath repaints.
func (s *Scene) HideView(name string) {
	s.setVisible(name, false)
}

func (s *Scene) setVisible(name string, visible bool) {
	v, ok := s.views[name]
	if !ok {
		s.log.Warn().Str("view", name).Bool("visible", visible).Msg("set visible: no view found")
		return
	}
	v.Visible = visible
	s.MarkDirty(v.Bounds)
}

// IsVisible reports whether name exists and is visible.
func (s *Scene) IsVisible(name string) bool {
	v, ok := s.views[name]
	return ok && v.Visible
}

// --- Focus ---

// SetFocused routes keyboard, scroll and action events to name. Both the
// previously and newly focused views are marked dirty. Unknown names log a
// warning and leave focus unchanged.
func (s *Scene) SetFocused(name string) {
	v, ok := s.views[name]
	if !ok {
		s.log.Warn().Str("view", name).Msg("focus: no view found")
		return
	}
	if s.hasFocus {
		if prev, ok := s.views[s.focused]; ok {
			prev.focused = false
			s.MarkDirty(prev.Bounds)
		}
	}
	s.focused = name
	s.hasFocus = true
	v.focused = true
	s.MarkDirty(v.Bounds)
}

// ClearFocus returns the scene to the unfocused state.
func (s *Scene) ClearFocus() {
	if !s.hasFocus {
		return
	}
	if prev, ok := s.views[s.focused]; ok {
		prev.focused = false
		s.MarkDirty(prev.Bounds)
	}
	s.focused = ""
	s.hasFocus = false
}

// Focused returns the focused view name, if any.
func (s *Scene) Focused() (string, bool) {
	return s.focused, s.hasFocus
}

// IsFocused reports whether name holds focus.
func (s *Scene) IsFocused(name string) bool {
	return s.hasFocus && s.focused == name
}

// SetDefaultFocus names the view that receives focus when the focused view
// is removed. An empty name means fall back to the unfocused state.
func (s *Scene) SetDefaultFocus(name string) {
	s.defaultFocus = name
}

// --- Invalidation ---

// MarkDirty unions r into the dirty rectangle.
func (s *Scene) MarkDirty(r Rect) {
	s.dirty = s.dirty.Union(r)
}

// MarkDirtyView unions the named view's current bounds into the dirty
// rectangle. Missing names log a warning.
func (s *Scene) MarkDirtyView(name string) {
	v, ok := s.views[name]
	if !ok {
		s.log.Warn().Str("view", name).Msg("mark dirty: no view found")
		return
	}
	s.MarkDirty(v.Bounds)
}

// MarkDirtyAll marks the full screen dirty.
func (s *Scene) MarkDirtyAll() {
	s.MarkDirty(s.screen)
}

// DirtyRect returns the region that must be repainted and flushed.
func (s *Scene) DirtyRect() Rect {
	return s.dirty
}

// IsDirty reports whether a draw pass would paint anything.
func (s *Scene) IsDirty() bool {
	return !s.dirty.IsEmpty()
}

// MarkLayoutDirty schedules a layout pass for the next frame.
func (s *Scene) MarkLayoutDirty() {
	s.layoutDirty = true
}

// LayoutDirty reports whether a layout pass is due.
func (s *Scene) LayoutDirty() bool {
	return s.layoutDirty
}

// InvalidateTheme marks everything dirty and schedules layout. Call it after
// the host swaps the active theme or fonts.
func (s *Scene) InvalidateTheme() {
	s.MarkDirtyAll()
	s.layoutDirty = true
}

// --- Helpers ---

// removeName removes the first occurrence of name, preserving order.
func removeName(list []string, name string) []string {
	if i := slices.Index(list, name); i >= 0 {
		return slices.Delete(list, i, i+1)
	}
	return list
}

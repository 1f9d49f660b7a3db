package sapling

// LayoutFunc recomputes a view's bounds. It is called with the scene so it
// can read children via FindChildren and resize or move them.
type LayoutFunc func(s *Scene, name string, theme *Theme)

// DrawFunc paints a view within its bounds. ctx is already clipped to the
// frame's dirty region.
type DrawFunc func(v *View, ctx DrawingContext, theme *Theme)

// InputFunc reacts to an event addressed to a view and may return an Action
// to bubble to the host. Returning nil bubbles nothing.
type InputFunc func(ctx InputContext) Action

// View is the fundamental scene element. A single flat struct is used for
// every kind of view; behavior lives in the optional function slots so that
// heterogeneous views share one container and most views set only one or
// two slots.
type View struct {
	// Name identifies the view within its Scene. All relations (focus,
	// parent/child, draw order) refer to views by name.
	Name string
	// Title is a convenience slot for simple views: label text, button
	// caption, text input contents.
	Title string

	Bounds  Rect
	Visible bool

	// State is an opaque payload owned by this view and read through
	// ViewState / GetViewState. Store a pointer so closures can mutate it.
	State any

	Layout LayoutFunc
	Draw   DrawFunc
	Input  InputFunc

	focused bool
}

// NewView creates a visible view whose title defaults to its name.
func NewView(name string, bounds Rect) *View {
	return &View{
		Name:    name,
		Title:   name,
		Bounds:  bounds,
		Visible: true,
	}
}

// Focused reports whether the owning scene currently routes keyed events to
// this view. Draw closures use it for focus rings.
func (v *View) Focused() bool {
	return v.focused
}

// PositionAt moves the view's origin, keeping its size, and returns v for
// chaining at construction time.
func (v *View) PositionAt(x, y int) *View {
	v.Bounds.X = x
	v.Bounds.Y = y
	return v
}

// Size sets the view's width and height and returns v.
func (v *View) Size(w, h int) *View {
	v.Bounds.W = max(w, 0)
	v.Bounds.H = max(h, 0)
	return v
}

// Hide marks the view invisible and returns v. Use it at construction time;
// on a view already in a scene call Scene.HideView so the area is redrawn.
func (v *View) Hide() *View {
	v.Visible = false
	return v
}

// WithState replaces the state payload and returns v.
func (v *View) WithState(state any) *View {
	v.State = state
	return v
}

// ViewState returns v's state as *T, or nil if v is nil, has no state, or
// holds a different type. A mismatch is indistinguishable from "no state".
func ViewState[T any](v *View) *T {
	if v == nil || v.State == nil {
		return nil
	}
	st, _ := v.State.(*T)
	return st
}

package sapling

import "fmt"

// --- Input events ---

// InputEvent is one of KeyEvent, TapEvent, ScrollEvent or ActionEvent.
type InputEvent interface {
	inputEvent()
	fmt.Stringer
}

// KeyEvent carries a raw key code: printable ASCII or one of the Key constants.
type KeyEvent struct {
	Key byte
}

// TapEvent is a pointer release at a screen coordinate. Hosts emit it on the
// release edge, never on press.
type TapEvent struct {
	Point Point
}

// ScrollEvent is a relative delta from a trackball or wheel.
type ScrollEvent struct {
	DX, DY int
}

// ActionEvent is a discrete hardware click, distinct from a tap.
type ActionEvent struct{}

func (KeyEvent) inputEvent()    {}
func (TapEvent) inputEvent()    {}
func (ScrollEvent) inputEvent() {}
func (ActionEvent) inputEvent() {}

func (e KeyEvent) String() string {
	if IsPrintable(e.Key) {
		return fmt.Sprintf("Key(%q)", rune(e.Key))
	}
	return fmt.Sprintf("Key(%d)", e.Key)
}

func (e TapEvent) String() string    { return fmt.Sprintf("Tap(%d,%d)", e.Point.X, e.Point.Y) }
func (e ScrollEvent) String() string { return fmt.Sprintf("Scroll(%d,%d)", e.DX, e.DY) }
func (ActionEvent) String() string   { return "Action" }

// --- Actions ---

// Action is an application-level intent bubbled out of an input closure.
// The core never interprets actions; it tags them with the originating view
// and hands them to the host.
type Action interface {
	action()
	fmt.Stringer
}

// Command is a named intent, e.g. the text of the chosen menu item.
type Command string

// Generic is a content-free "this was pressed" marker.
type Generic struct{}

// LoadRequest asks the host to load a URL, already resolved against the
// current page's base.
type LoadRequest string

func (Command) action()     {}
func (Generic) action()     {}
func (LoadRequest) action() {}

func (c Command) String() string     { return fmt.Sprintf("Command(%s)", string(c)) }
func (Generic) String() string       { return "Generic" }
func (l LoadRequest) String() string { return fmt.Sprintf("Load(%s)", string(l)) }

// TargetedAction pairs an Action with the name of the view that produced it.
type TargetedAction struct {
	Target string
	Action Action
}

// ActionHandler is the host's single entry point for bubbled actions.
type ActionHandler func(s *Scene, ta TargetedAction)

// InputContext is passed to a view's Input closure.
type InputContext struct {
	Scene  *Scene
	Target string
	Event  InputEvent
}

// View returns the target view. It may be nil if a previous step in the
// same handler removed it.
func (c InputContext) View() *View {
	return c.Scene.GetView(c.Target)
}

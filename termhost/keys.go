package termhost

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/phanxgames/sapling"
)

// keyMap binds terminal keys to scene key codes.
type keyMap struct {
	Quit      key.Binding
	Action    key.Binding
	Enter     key.Binding
	Backspace key.Binding
	Delete    key.Binding
	Escape    key.Binding
	Tab       key.Binding
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:      key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		Action:    key.NewBinding(key.WithKeys("ctrl+a"), key.WithHelp("ctrl+a", "action")),
		Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "activate")),
		Backspace: key.NewBinding(key.WithKeys("backspace")),
		Delete:    key.NewBinding(key.WithKeys("delete")),
		Escape:    key.NewBinding(key.WithKeys("esc")),
		Tab:       key.NewBinding(key.WithKeys("tab")),
		Up:        key.NewBinding(key.WithKeys("up")),
		Down:      key.NewBinding(key.WithKeys("down")),
		Left:      key.NewBinding(key.WithKeys("left")),
		Right:     key.NewBinding(key.WithKeys("right")),
	}
}

// translate converts a key message into scene events. Printable runes map
// one event per rune; the quit binding is handled by the caller.
func (km keyMap) translate(msg tea.KeyMsg) []sapling.InputEvent {
	switch {
	case key.Matches(msg, km.Action):
		return []sapling.InputEvent{sapling.ActionEvent{}}
	case key.Matches(msg, km.Enter):
		return keyEvents(sapling.KeyEnter)
	case key.Matches(msg, km.Backspace):
		return keyEvents(sapling.KeyBackspace)
	case key.Matches(msg, km.Delete):
		return keyEvents(sapling.KeyDelete)
	case key.Matches(msg, km.Escape):
		return keyEvents(sapling.KeyEscape)
	case key.Matches(msg, km.Tab):
		return keyEvents(sapling.KeyTab)
	case key.Matches(msg, km.Up):
		return keyEvents(sapling.KeyUp)
	case key.Matches(msg, km.Down):
		return keyEvents(sapling.KeyDown)
	case key.Matches(msg, km.Left):
		return keyEvents(sapling.KeyLeft)
	case key.Matches(msg, km.Right):
		return keyEvents(sapling.KeyRight)
	}

	switch msg.Type {
	case tea.KeySpace:
		return keyEvents(sapling.KeySpace)
	case tea.KeyRunes:
		var out []sapling.InputEvent
		for _, r := range msg.Runes {
			if r < 128 && sapling.IsPrintable(byte(r)) {
				out = append(out, sapling.KeyEvent{Key: byte(r)})
			}
		}
		return out
	}
	return nil
}

func keyEvents(k byte) []sapling.InputEvent {
	return []sapling.InputEvent{sapling.KeyEvent{Key: k}}
}

// translateMouse converts a mouse message into a scene event. A left release
// is a tap at the center of the cell; a right release is an action.
func translateMouse(msg tea.MouseMsg) (sapling.InputEvent, bool) {
	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		return sapling.ScrollEvent{DY: -1}, true
	case msg.Button == tea.MouseButtonWheelDown:
		return sapling.ScrollEvent{DY: 1}, true
	case msg.Action != tea.MouseActionRelease:
		return nil, false
	case msg.Button == tea.MouseButtonRight:
		return sapling.ActionEvent{}, true
	case msg.Button == tea.MouseButtonLeft, msg.Button == tea.MouseButtonNone:
		return sapling.TapEvent{Point: sapling.Point{
			X: msg.X*CellWidth + CellWidth/2,
			Y: msg.Y*CellHeight + CellHeight/2,
		}}, true
	}
	return nil, false
}

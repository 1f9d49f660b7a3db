package ebitenhost

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/sapling"
)

// controlKeys maps non-printing keys to sapling key codes. Printable input,
// space included, arrives through ebiten.AppendInputChars.
var controlKeys = map[ebiten.Key]byte{
	ebiten.KeyEnter:       sapling.KeyEnter,
	ebiten.KeyNumpadEnter: sapling.KeyEnter,
	ebiten.KeyBackspace:   sapling.KeyBackspace,
	ebiten.KeyDelete:      sapling.KeyDelete,
	ebiten.KeyEscape:      sapling.KeyEscape,
	ebiten.KeyTab:         sapling.KeyTab,
	ebiten.KeyArrowUp:     sapling.KeyUp,
	ebiten.KeyArrowDown:   sapling.KeyDown,
	ebiten.KeyArrowLeft:   sapling.KeyLeft,
	ebiten.KeyArrowRight:  sapling.KeyRight,
}

// tapTracker turns a pressed/released pointer into taps. A tap fires on the
// release edge, at the last position seen while pressed, so a press that
// drifts does not fire twice.
type tapTracker struct {
	down bool
	last sapling.Point
}

// update feeds one frame of pointer state and reports a tap on release.
func (t *tapTracker) update(pressed bool, p sapling.Point) (sapling.Point, bool) {
	switch {
	case pressed:
		t.down = true
		t.last = p
	case t.down:
		t.down = false
		return t.last, true
	}
	return sapling.Point{}, false
}

// poller reads Ebitengine input state into sapling events.
type poller struct {
	chars   []rune
	touches []ebiten.TouchID
	mouse   tapTracker
	touch   tapTracker
	touchID ebiten.TouchID
}

// poll appends this frame's events to q.
func (p *poller) poll(q *sapling.EventQueue) {
	p.chars = ebiten.AppendInputChars(p.chars[:0])
	for _, r := range p.chars {
		if r < 128 && sapling.IsPrintable(byte(r)) {
			q.Push(sapling.KeyEvent{Key: byte(r)})
		}
	}
	for k, code := range controlKeys {
		if inpututil.IsKeyJustPressed(k) {
			q.Push(sapling.KeyEvent{Key: code})
		}
	}

	if _, dy := ebiten.Wheel(); dy != 0 {
		// Wheel up is positive; the scene's scroll axis grows downward.
		q.Push(sapling.ScrollEvent{DY: -sign(dy)})
	}

	mx, my := ebiten.CursorPosition()
	if pt, ok := p.mouse.update(ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft), sapling.Point{X: mx, Y: my}); ok {
		q.Push(sapling.TapEvent{Point: pt})
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonRight) {
		q.Push(sapling.ActionEvent{})
	}

	// Single touch: follow the first finger down until it lifts.
	p.touches = ebiten.AppendTouchIDs(p.touches[:0])
	pressed := false
	var at sapling.Point
	for _, id := range p.touches {
		if !p.touch.down {
			p.touchID = id
		}
		if id == p.touchID {
			tx, ty := ebiten.TouchPosition(id)
			pressed, at = true, sapling.Point{X: tx, Y: ty}
			break
		}
	}
	if pt, ok := p.touch.update(pressed, at); ok {
		q.Push(sapling.TapEvent{Point: pt})
	}
}

func sign(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

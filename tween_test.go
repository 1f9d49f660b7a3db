package sapling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tanema/gween/ease"
)

func TestTweenPosition(t *testing.T) {
	s := newTestScene()
	s.AddView(NewView("box", Rect{0, 0, 10, 10}))
	s.dirty = Rect{}

	g := TweenPosition(s, "box", 100, 50, 1, ease.Linear)
	g.Update(0.5)
	assert.Equal(t, Rect{50, 25, 10, 10}, s.GetView("box").Bounds)
	assert.False(t, g.Done)
	assert.Equal(t, Rect{0, 0, 60, 35}, s.DirtyRect(), "old and new bounds dirty")

	g.Update(0.5)
	assert.Equal(t, Rect{100, 50, 10, 10}, s.GetView("box").Bounds)
	assert.True(t, g.Done)

	before := s.DirtyRect()
	g.Update(0.5)
	assert.Equal(t, before, s.DirtyRect(), "finished tween is inert")
}

func TestTweenSize(t *testing.T) {
	s := newTestScene()
	s.AddView(NewView("box", Rect{5, 5, 10, 10}))

	g := TweenSize(s, "box", 30, 0, 2, ease.Linear)
	g.Update(1)
	assert.Equal(t, Rect{5, 5, 20, 5}, s.GetView("box").Bounds)
	g.Update(1)
	assert.Equal(t, Rect{5, 5, 30, 0}, s.GetView("box").Bounds)
	assert.True(t, g.Done)
}

func TestTweenStopsWhenViewRemoved(t *testing.T) {
	s := newTestScene()
	s.AddView(NewView("box", Rect{0, 0, 10, 10}))
	g := TweenPosition(s, "box", 100, 0, 1, ease.Linear)
	s.RemoveView("box")
	g.Update(0.5)
	assert.True(t, g.Done)
}

func TestTweenMissingView(t *testing.T) {
	s := newTestScene()
	buf := captureLog(s)
	g := TweenSize(s, "ghost", 1, 1, 1, ease.Linear)
	assert.True(t, g.Done)
	g.Update(1)
	assert.Contains(t, buf.String(), "tween: no view found")
}

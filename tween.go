package sapling

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates two integer bound fields of a named view at once.
// Create one via TweenPosition or TweenSize and call Update(dt) each frame.
// The group writes the rounded values, marks the old and new bounds dirty,
// and stops immediately if the view has been removed.
//
// There is no global animation manager; hosts call Update themselves.
type TweenGroup struct {
	tweens [2]*gween.Tween
	apply  func(b *Rect, a, c int)
	scene  *Scene
	name   string
	Done   bool
}

// Update advances both tweens by dt seconds.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	v := g.scene.views[g.name]
	if v == nil {
		g.Done = true
		return
	}

	a, doneA := g.tweens[0].Update(dt)
	b, doneB := g.tweens[1].Update(dt)
	g.Done = doneA && doneB

	before := v.Bounds
	g.apply(&v.Bounds, roundInt(a), roundInt(b))
	if v.Bounds != before {
		g.scene.MarkDirty(before)
		g.scene.MarkDirty(v.Bounds)
	}
}

// TweenPosition animates the named view's origin to (toX, toY).
func TweenPosition(s *Scene, name string, toX, toY int, duration float32, fn ease.TweenFunc) *TweenGroup {
	v := s.views[name]
	if v == nil {
		s.log.Warn().Str("view", name).Msg("tween: no view found")
		return &TweenGroup{scene: s, name: name, Done: true}
	}
	g := &TweenGroup{scene: s, name: name}
	g.tweens[0] = gween.New(float32(v.Bounds.X), float32(toX), duration, fn)
	g.tweens[1] = gween.New(float32(v.Bounds.Y), float32(toY), duration, fn)
	g.apply = func(b *Rect, x, y int) {
		b.X, b.Y = x, y
	}
	return g
}

// TweenSize animates the named view's width and height to (toW, toH).
func TweenSize(s *Scene, name string, toW, toH int, duration float32, fn ease.TweenFunc) *TweenGroup {
	v := s.views[name]
	if v == nil {
		s.log.Warn().Str("view", name).Msg("tween: no view found")
		return &TweenGroup{scene: s, name: name, Done: true}
	}
	g := &TweenGroup{scene: s, name: name}
	g.tweens[0] = gween.New(float32(v.Bounds.W), float32(toW), duration, fn)
	g.tweens[1] = gween.New(float32(v.Bounds.H), float32(toH), duration, fn)
	g.apply = func(b *Rect, w, h int) {
		b.W, b.H = max(w, 0), max(h, 0)
	}
	return g
}

func roundInt(v float32) int {
	return int(math.Round(float64(v)))
}

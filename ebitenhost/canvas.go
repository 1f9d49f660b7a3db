// Package ebitenhost runs a sapling scene in an Ebitengine window. The scene
// paints into a retained back buffer; only the dirty region of each frame is
// copied to the panel image that is shown, the way a display driver flushes
// a partial framebuffer over a slow bus.
package ebitenhost

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"github.com/phanxgames/sapling"
)

// Canvas implements sapling.DrawingContext on an *ebiten.Image.
type Canvas struct {
	img   *ebiten.Image
	font  sapling.Font
	faces map[font.Face]*text.GoXFace
	clip  sapling.Rect // empty means unclipped
}

// NewCanvas creates a canvas of the given logical size. fallback is used for
// text styles that do not name a font.
func NewCanvas(w, h int, fallback sapling.Font) *Canvas {
	if fallback == nil {
		fallback = sapling.MediumFont
	}
	return &Canvas{
		img:   ebiten.NewImage(w, h),
		font:  fallback,
		faces: make(map[font.Face]*text.GoXFace),
	}
}

// Image returns the back buffer.
func (c *Canvas) Image() *ebiten.Image {
	return c.img
}

// SetClip restricts every following draw to r. An empty r lifts the clip.
func (c *Canvas) SetClip(r sapling.Rect) {
	c.clip = r
}

// target returns the part of the back buffer r may paint: r itself, cut
// down to the clip when one is set. ok is false when nothing is left.
func (c *Canvas) target(r sapling.Rect) (*ebiten.Image, bool) {
	r = clipRect(r, c.clip)
	if r.IsEmpty() {
		return nil, false
	}
	return c.img.SubImage(image.Rect(r.X, r.Y, r.Right(), r.Bottom())).(*ebiten.Image), true
}

func clipRect(r, clip sapling.Rect) sapling.Rect {
	if clip.IsEmpty() {
		return r
	}
	return r.Intersect(clip)
}

// FillRect fills r with col.
func (c *Canvas) FillRect(r sapling.Rect, col sapling.Color) {
	dst, ok := c.target(r)
	if !ok {
		return
	}
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), col.RGBA(), false)
}

// StrokeRect draws a one pixel outline just inside r.
func (c *Canvas) StrokeRect(r sapling.Rect, col sapling.Color) {
	dst, ok := c.target(r)
	if !ok {
		return
	}
	vector.StrokeRect(dst, float32(r.X)+0.5, float32(r.Y)+0.5, float32(r.W)-1, float32(r.H)-1, 1, col.RGBA(), false)
}

// FillText draws text clipped to r and the canvas clip, vertically centered
// and aligned per style.
func (c *Canvas) FillText(r sapling.Rect, s string, style sapling.TextStyle) {
	if s == "" {
		return
	}
	dst, ok := c.target(r)
	if !ok {
		return
	}
	f := style.Font
	if f == nil {
		f = c.font
	}
	face := c.face(f)
	lh := f.LineHeight()

	op := &text.DrawOptions{}
	x := float64(r.X)
	switch style.Align {
	case sapling.AlignCenter:
		x += float64(r.W) / 2
		op.PrimaryAlign = text.AlignCenter
	case sapling.AlignRight:
		x += float64(r.W)
		op.PrimaryAlign = text.AlignEnd
	}
	y := float64(r.Y + (r.H-lh)/2)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(style.Color.RGBA())

	text.Draw(dst, s, face, op)

	if style.Underline {
		w := int(text.Advance(s, face))
		ux := int(x)
		switch style.Align {
		case sapling.AlignCenter:
			ux -= w / 2
		case sapling.AlignRight:
			ux -= w
		}
		line := sapling.Rect{X: ux, Y: int(y) + f.Ascent() + 1, W: w, H: 1}.Intersect(r)
		c.FillRect(line, style.Color)
	}
}

// face returns the cached text/v2 face wrapping f.
func (c *Canvas) face(f sapling.Font) *text.GoXFace {
	xf := f.Face()
	if gf, ok := c.faces[xf]; ok {
		return gf
	}
	gf := text.NewGoXFace(xf)
	c.faces[xf] = gf
	return gf
}

package sapling

import (
	"fmt"
	"image/color"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// Named colors used by the built-in themes.
var (
	ColorWhite     = Color{1, 1, 1, 1}
	ColorBlack     = Color{0, 0, 0, 1}
	ColorLightGray = Color{0.83, 0.83, 0.83, 1}
	ColorDarkGray  = Color{0.25, 0.25, 0.25, 1}
	ColorBlue      = Color{0, 0, 1, 1}
	ColorDarkBlue  = Color{0, 0, 0.55, 1}
	ColorOrangeRed = Color{1, 0.27, 0, 1}
	ColorOrange    = Color{1, 0.55, 0, 1}
)

// RGBA converts the color to a straight-alpha color.NRGBA.
func (c Color) RGBA() color.NRGBA {
	return color.NRGBA{
		R: clampByte(c.R),
		G: clampByte(c.G),
		B: clampByte(c.B),
		A: clampByte(c.A),
	}
}

// Hex returns the color as a "#rrggbb" string. Alpha is ignored.
func (c Color) Hex() string {
	n := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
}

func clampByte(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

// Point is an integer screen coordinate. Origin is top-left, Y grows downward.
type Point struct {
	X, Y int
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Rect is an integer axis-aligned rectangle in scene coordinates.
// W and H are never negative. The zero Rect is the empty sentinel.
type Rect struct {
	X, Y, W, H int
}

// NewRect creates a rectangle, clamping negative sizes to zero.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: max(w, 0), H: max(h, 0)}
}

// IsEmpty reports whether the rectangle covers no pixels.
func (r Rect) IsEmpty() bool {
	return r.W <= 0 || r.H <= 0
}

// Right returns the exclusive right edge.
func (r Rect) Right() int { return r.X + r.W }

// Bottom returns the exclusive bottom edge.
func (r Rect) Bottom() int { return r.Y + r.H }

// Origin returns the top-left corner.
func (r Rect) Origin() Point { return Point{r.X, r.Y} }

// Center returns the center point, rounded toward the origin.
func (r Rect) Center() Point {
	return Point{r.X + r.W/2, r.Y + r.H/2}
}

// Contains reports whether p lies inside the rectangle.
// The right and bottom edges are exclusive.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.Right() &&
		p.Y >= r.Y && p.Y < r.Bottom()
}

// Intersects reports whether r and other share at least one pixel.
func (r Rect) Intersects(other Rect) bool {
	return !r.Intersect(other).IsEmpty()
}

// Intersect returns the overlapping region of r and other, or the empty
// Rect when they do not overlap.
func (r Rect) Intersect(other Rect) Rect {
	x1 := max(r.X, other.X)
	y1 := max(r.Y, other.Y)
	x2 := min(r.Right(), other.Right())
	y2 := min(r.Bottom(), other.Bottom())
	if x2 <= x1 || y2 <= y1 {
		return Rect{}
	}
	return Rect{X: x1, Y: y1, W: x2 - x1, H: y2 - y1}
}

// Union returns the smallest rectangle covering both r and other.
// An empty operand is the identity: Union(R, empty) == R.
func (r Rect) Union(other Rect) Rect {
	if r.IsEmpty() {
		if other.IsEmpty() {
			return Rect{}
		}
		return other
	}
	if other.IsEmpty() {
		return r
	}
	x1 := min(r.X, other.X)
	y1 := min(r.Y, other.Y)
	x2 := max(r.Right(), other.Right())
	y2 := max(r.Bottom(), other.Bottom())
	return Rect{X: x1, Y: y1, W: x2 - x1, H: y2 - y1}
}

// Translate returns r moved by (dx, dy).
func (r Rect) Translate(dx, dy int) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// Inset shrinks r by n pixels on every side. Sizes clamp at zero.
func (r Rect) Inset(n int) Rect {
	return NewRect(r.X+n, r.Y+n, r.W-2*n, r.H-2*n)
}

// Area returns W*H.
func (r Rect) Area() int {
	if r.IsEmpty() {
		return 0
	}
	return r.W * r.H
}

func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d %dx%d)", r.X, r.Y, r.W, r.H)
}

// HAlign controls horizontal text alignment within a rectangle.
type HAlign uint8

const (
	AlignLeft   HAlign = iota // align text to the left edge (default)
	AlignCenter               // center text horizontally
	AlignRight                // align text to the right edge
)

// Key codes delivered in KeyEvent. Printable ASCII passes through as-is.
const (
	KeyBackspace byte = 8
	KeyTab       byte = 9
	KeyEnter     byte = 13
	KeyEscape    byte = 27
	KeySpace     byte = ' '
	KeyDelete    byte = 127
	KeyUp        byte = 0x80
	KeyDown      byte = 0x81
	KeyLeft      byte = 0x82
	KeyRight     byte = 0x83
)

// IsPrintable reports whether key is in the printable ASCII range.
func IsPrintable(key byte) bool {
	return key >= 32 && key < 127
}

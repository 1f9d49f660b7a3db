package sapling

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// --- Rect.Contains ---

func TestRectContains(t *testing.T) {
	r := Rect{10, 20, 100, 50}
	tests := []struct {
		name   string
		p      Point
		expect bool
	}{
		{"inside", Point{50, 40}, true},
		{"top-left corner", Point{10, 20}, true},
		{"last pixel", Point{109, 69}, true},
		{"right edge exclusive", Point{110, 40}, false},
		{"bottom edge exclusive", Point{50, 70}, false},
		{"outside left", Point{9, 40}, false},
		{"outside above", Point{50, 19}, false},
		{"far outside", Point{999, 999}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, r.Contains(tt.p), "Rect%v.Contains(%v)", r, tt.p)
		})
	}
}

func TestRectContainsEmpty(t *testing.T) {
	assert.False(t, Rect{}.Contains(Point{0, 0}))
	assert.False(t, Rect{5, 5, 0, 10}.Contains(Point{5, 5}))
}

// --- Rect.Intersect / Intersects ---

func TestRectIntersect(t *testing.T) {
	base := Rect{10, 10, 100, 100}
	tests := []struct {
		name  string
		other Rect
		want  Rect
	}{
		{"overlapping", Rect{50, 50, 100, 100}, Rect{50, 50, 60, 60}},
		{"fully contained", Rect{20, 20, 10, 10}, Rect{20, 20, 10, 10}},
		{"containing", Rect{0, 0, 200, 200}, base},
		{"adjacent right", Rect{110, 10, 50, 50}, Rect{}},
		{"adjacent bottom", Rect{10, 110, 50, 50}, Rect{}},
		{"disjoint", Rect{300, 300, 5, 5}, Rect{}},
		{"empty operand", Rect{}, Rect{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := base.Intersect(tt.other)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, tt.other.Intersect(base), "intersect is symmetric")
			assert.Equal(t, !tt.want.IsEmpty(), base.Intersects(tt.other))
		})
	}
}

// --- Rect.Union ---

func TestRectUnion(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want Rect
	}{
		{"disjoint", Rect{0, 0, 10, 10}, Rect{20, 20, 10, 10}, Rect{0, 0, 30, 30}},
		{"nested", Rect{0, 0, 100, 100}, Rect{10, 10, 5, 5}, Rect{0, 0, 100, 100}},
		{"empty left identity", Rect{}, Rect{3, 4, 5, 6}, Rect{3, 4, 5, 6}},
		{"empty right identity", Rect{3, 4, 5, 6}, Rect{}, Rect{3, 4, 5, 6}},
		{"zero width is empty", Rect{100, 100, 0, 50}, Rect{3, 4, 5, 6}, Rect{3, 4, 5, 6}},
		{"both empty", Rect{}, Rect{}, Rect{}},
		{"negative origin", Rect{-10, -10, 5, 5}, Rect{0, 0, 5, 5}, Rect{-10, -10, 15, 15}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Union(tt.b))
			assert.Equal(t, tt.want, tt.b.Union(tt.a))
		})
	}
}

func TestRectUnionCovers(t *testing.T) {
	a := Rect{5, 7, 11, 13}
	b := Rect{40, 2, 3, 30}
	u := a.Union(b)
	assert.Equal(t, a, u.Intersect(a))
	assert.Equal(t, b, u.Intersect(b))
}

// --- Misc ---

func TestNewRectClampsNegative(t *testing.T) {
	r := NewRect(1, 2, -5, 7)
	assert.Equal(t, 0, r.W)
	assert.True(t, r.IsEmpty())
	assert.Equal(t, 0, r.Area())
}

func TestRectHelpers(t *testing.T) {
	r := Rect{10, 20, 30, 40}
	assert.Equal(t, 40, r.Right())
	assert.Equal(t, 60, r.Bottom())
	assert.Equal(t, Point{25, 40}, r.Center())
	assert.Equal(t, Point{10, 20}, r.Origin())
	assert.Equal(t, Rect{15, 15, 30, 40}, r.Translate(5, -5))
	assert.Equal(t, Rect{12, 22, 26, 36}, r.Inset(2))
	assert.True(t, r.Inset(20).IsEmpty())
	assert.Equal(t, 1200, r.Area())
	assert.Equal(t, "(10,20 30x40)", r.String())
}

func TestPointArithmetic(t *testing.T) {
	p := Point{3, 4}
	assert.Equal(t, Point{5, 10}, p.Add(Point{2, 6}))
	assert.Equal(t, Point{1, -2}, p.Sub(Point{2, 6}))
}

func TestColorConversion(t *testing.T) {
	c := Color{1, 0.5, 0, 1}
	n := c.RGBA()
	assert.Equal(t, uint8(255), n.R)
	assert.Equal(t, uint8(0), n.B)
	assert.Equal(t, "#ffffff", ColorWhite.Hex())
	assert.Equal(t, "#000000", ColorBlack.Hex())
}

func TestIsPrintable(t *testing.T) {
	assert.True(t, IsPrintable(' '))
	assert.True(t, IsPrintable('~'))
	assert.False(t, IsPrintable(KeyEnter))
	assert.False(t, IsPrintable(KeyDelete))
	assert.False(t, IsPrintable(KeyUp))
}

package ebitenhost

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phanxgames/sapling"
)

// --- tapTracker ---

func TestTapTrackerFiresOnRelease(t *testing.T) {
	var tr tapTracker
	steps := []struct {
		pressed bool
		p       sapling.Point
		tap     bool
		at      sapling.Point
	}{
		{false, sapling.Point{X: 1, Y: 1}, false, sapling.Point{}},
		{true, sapling.Point{X: 10, Y: 10}, false, sapling.Point{}},
		{true, sapling.Point{X: 12, Y: 14}, false, sapling.Point{}},
		{false, sapling.Point{}, true, sapling.Point{X: 12, Y: 14}},
		{false, sapling.Point{}, false, sapling.Point{}},
	}
	for i, st := range steps {
		at, tap := tr.update(st.pressed, st.p)
		assert.Equal(t, st.tap, tap, "frame %d", i)
		assert.Equal(t, st.at, at, "frame %d", i)
	}
}

func TestSign(t *testing.T) {
	assert.Equal(t, 1, sign(0.25))
	assert.Equal(t, -1, sign(-3))
	assert.Equal(t, 0, sign(0))
}

func TestControlKeysAreNotPrintable(t *testing.T) {
	for k, v := range controlKeys {
		assert.False(t, sapling.IsPrintable(v), "key %v", k)
	}
}

// --- Screenshots ---

func TestShotName(t *testing.T) {
	tests := []struct {
		seq  int
		in   string
		want string
	}{
		{1, "menu-open", "001-menu-open.png"},
		{2, "Page 2", "002-page-2.png"},
		{3, "a/b\\c", "003-a-b-c.png"},
		{4, "  settings  panel!! ", "004-settings-panel.png"},
		{12, "", "012-frame.png"},
		{5, "héllo", "005-h-llo.png"},
		{1000, "x", "1000-x.png"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, shotName(tt.seq, tt.in))
		})
	}
}

func TestEncodePNG(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 3))
	src.Pix[0], src.Pix[3] = 0xff, 0xff
	data, err := encodePNG(src)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 4, 3), img.Bounds())
	r, _, _, a := img.At(0, 0).RGBA()
	assert.Equal(t, uint32(0xffff), r)
	assert.Equal(t, uint32(0xffff), a)
}

func TestShooterSkipsEmptyQueue(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	sh := &shooter{dir: dir}
	sh.capture(nil, nil)
	_, err := os.Stat(dir)
	assert.True(t, os.IsNotExist(err), "no directory without labels")
	assert.Zero(t, sh.seq)
}

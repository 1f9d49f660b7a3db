package ebitenhost

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
)

// shooter saves the shown panel for labels queued with Scene.Screenshot.
// Files are numbered in capture order so a scripted run sorts naturally.
type shooter struct {
	dir string
	seq int
	log zerolog.Logger
}

// capture writes one PNG of panel per label. The panel is read once; every
// label queued in the same frame shares that snapshot.
func (sh *shooter) capture(panel *ebiten.Image, labels []string) {
	if len(labels) == 0 {
		return
	}
	if err := os.MkdirAll(sh.dir, 0o755); err != nil {
		sh.log.Error().Err(err).Str("dir", sh.dir).Msg("screenshot: mkdir")
		return
	}
	data, err := encodePanel(panel)
	if err != nil {
		sh.log.Error().Err(err).Msg("screenshot: encode")
		return
	}
	for _, label := range labels {
		sh.seq++
		path := filepath.Join(sh.dir, shotName(sh.seq, label))
		if err := os.WriteFile(path, data, 0o644); err != nil {
			sh.log.Error().Err(err).Str("label", label).Msg("screenshot: write")
			continue
		}
		sh.log.Info().Str("path", path).Str("label", label).Msg("screenshot")
	}
}

// encodePanel reads panel back and encodes it as PNG. The scene fills every
// pixel opaquely, so ebiten's premultiplied pixels are stored as is.
func encodePanel(panel *ebiten.Image) ([]byte, error) {
	b := panel.Bounds()
	img := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	panel.ReadPixels(img.Pix)
	return encodePNG(img)
}

func encodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("png: %w", err)
	}
	return buf.Bytes(), nil
}

// shotName builds "<seq>-<label>.png". The label is folded into the
// lower-case, dash-separated form used for view names; anything else
// collapses into a single dash.
func shotName(seq int, label string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(label) {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r)
			dash = false
			continue
		}
		dash = true
	}
	name := b.String()
	if name == "" {
		name = "frame"
	}
	return fmt.Sprintf("%03d-%s.png", seq, name)
}

package sapling

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/inconsolata"
	"golang.org/x/image/font/opentype"
)

// Font is the interface for text measurement. Hosts use Face to rasterize.
type Font interface {
	// MeasureString returns the pixel width and height of s on one line.
	MeasureString(s string) (width, height int)
	// Advance returns the horizontal advance of one character cell.
	Advance() int
	// LineHeight returns the vertical distance between baselines.
	LineHeight() int
	// Ascent returns the distance from the top of a line to its baseline.
	Ascent() int
	// Face returns the underlying x/image face.
	Face() font.Face
}

// FaceFont adapts a monospace-friendly font.Face to Font.
type FaceFont struct {
	name    string
	face    font.Face
	advance int
	height  int
	ascent  int
}

// NewFaceFont wraps face. The advance is taken from the glyph 'M'.
func NewFaceFont(name string, face font.Face) *FaceFont {
	m := face.Metrics()
	adv, ok := face.GlyphAdvance('M')
	if !ok {
		adv = font.MeasureString(face, "M")
	}
	return &FaceFont{
		name:    name,
		face:    face,
		advance: adv.Ceil(),
		height:  m.Height.Ceil(),
		ascent:  m.Ascent.Ceil(),
	}
}

// Name returns the label the font was registered with.
func (f *FaceFont) Name() string { return f.name }

// MeasureString returns the width and height of the rendered text.
func (f *FaceFont) MeasureString(s string) (width, height int) {
	if s == "" {
		return 0, f.height
	}
	return font.MeasureString(f.face, s).Ceil(), f.height
}

// Advance returns the width of one character cell.
func (f *FaceFont) Advance() int { return f.advance }

// LineHeight returns the vertical distance between baselines.
func (f *FaceFont) LineHeight() int { return f.height }

// Ascent returns the distance from the line top to the baseline.
func (f *FaceFont) Ascent() int { return f.ascent }

// Face returns the wrapped font.Face.
func (f *FaceFont) Face() font.Face { return f.face }

// Built-in fonts. Small and medium are bitmap faces; large is Go Mono.
var (
	SmallFont  Font = NewFaceFont("small", basicfont.Face7x13)
	MediumFont Font = NewFaceFont("medium", inconsolata.Regular8x16)
	LargeFont  Font = NewFaceFont("large", mustMonoFace(18))
	BoldFont   Font = NewFaceFont("bold", inconsolata.Bold8x16)
)

// FontByName returns one of the built-in fonts by its size label.
// Unknown names fall back to MediumFont.
func FontByName(name string) Font {
	switch name {
	case "small":
		return SmallFont
	case "large":
		return LargeFont
	default:
		return MediumFont
	}
}

// mustMonoFace rasterizes the embedded Go Mono font at size points.
// The font data is compiled in, so a parse failure is a build defect.
func mustMonoFace(size float64) font.Face {
	f, err := opentype.Parse(gomono.TTF)
	if err != nil {
		panic("sapling: parse gomono: " + err.Error())
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		panic("sapling: gomono face: " + err.Error())
	}
	return face
}

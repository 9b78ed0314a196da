package chalk

import (
	"io"

	"github.com/hajimehoshi/ebiten/v2"
	text "github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Font is the interface for text measurement. Geometry depends only on this,
// which keeps cell computation a pure function and testable without a display.
//
// MeasureString returns the horizontal advance of s and the cap height of the
// face at the given size. The cap height (the height of "0") is the metric all
// cell geometry derives from.
type Font interface {
	MeasureString(s string, size float64) (width, height float64)
	LineHeight(size float64) float64
}

// FaceFont wraps a text/v2 face source for both measurement and rendering.
type FaceFont struct {
	source *text.GoTextFaceSource
}

// NewFaceFont creates a FaceFont from TTF/OTF data.
func NewFaceFont(r io.Reader) (*FaceFont, error) {
	src, err := text.NewGoTextFaceSource(r)
	if err != nil {
		return nil, err
	}
	return &FaceFont{source: src}, nil
}

func (f *FaceFont) faceFor(size float64) *text.GoTextFace {
	return &text.GoTextFace{Source: f.source, Size: size}
}

// MeasureString implements Font.
func (f *FaceFont) MeasureString(s string, size float64) (float64, float64) {
	face := f.faceFor(size)
	w := text.Advance(s, face)
	return w, face.Metrics().CapHeight
}

// LineHeight implements Font.
func (f *FaceFont) LineHeight(size float64) float64 {
	m := f.faceFor(size).Metrics()
	return m.HAscent + m.HDescent + m.HLineGap
}

// draw renders s with its cap-height box's top-left at (x, y). Label nodes
// store cap-box coordinates; the ascent overshoot is compensated here.
func (f *FaceFont) draw(dst *ebiten.Image, s string, size float64, clr Color, x, y float64) {
	face := f.faceFor(size)
	m := face.Metrics()
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y-(m.HAscent-m.CapHeight))
	op.ColorScale.ScaleWithColor(clr.toRGBA())
	text.Draw(dst, s, face, op)
}

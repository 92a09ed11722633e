package render

import (
	"image"
	"image/color"
	"strings"

	"github.com/koki-develop/imglyph/internal/brightness"
)

type Option struct {
	Threshold   uint8
	DoubleWidth bool
}

type Renderer struct {
	threshold   uint8
	doubleWidth bool
}

func New(opt *Option) *Renderer {
	return &Renderer{
		threshold:   opt.Threshold,
		doubleWidth: opt.DoubleWidth,
	}
}

// Samples past the image edge read as transparent white, so partial cells
// fill out with light samples.
var outOfBounds = color.NRGBA{R: 255, G: 255, B: 255, A: 0}

func (r *Renderer) darkAt(img image.Image, x, y int) bool {
	c := outOfBounds
	if image.Pt(x, y).In(img.Bounds()) {
		c = color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
	}
	return brightness.Dark(c, r.threshold)
}

func (r *Renderer) writeGlyph(b *strings.Builder, glyph rune) {
	if r.doubleWidth {
		b.WriteRune(glyph)
	}
	b.WriteRune(glyph)
}

func cells(size, step int) int {
	return (size + step - 1) / step
}

package render

import (
	"image"
	"image/color"
	"strings"

	"github.com/koki-develop/imglyph/internal/brightness"
)

// asciiRamp runs from sparse to dense. A pixel's brightness level indexes it
// from the dense end, so black comes out as '@' and white as a space.
var asciiRamp = [8]rune{' ', '.', ',', '-', '/', 'O', '#', '@'}

func (r *Renderer) ASCII(img image.Image) []string {
	sz := img.Bounds()

	rows := make([]string, 0, sz.Dy())
	for y := sz.Min.Y; y < sz.Max.Y; y++ {
		b := new(strings.Builder)
		for x := sz.Min.X; x < sz.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			r.writeGlyph(b, asciiRamp[7-brightness.Level(c)])
		}
		rows = append(rows, b.String())
	}
	return rows
}

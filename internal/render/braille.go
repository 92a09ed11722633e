package render

import (
	"image"
	"strings"
)

const brailleBase = '\u2800'

// brailleDots holds the Unicode dot weight for each position of a 2x4 cell,
// indexed [row][column]. Dots 1-3 and 7 form the left column, dots 4-6 and 8
// the right.
var brailleDots = [4][2]rune{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

func (r *Renderer) Braille(img image.Image) []string {
	sz := img.Bounds()

	rows := make([]string, 0, cells(sz.Dy(), 4))
	for y := sz.Min.Y; y < sz.Max.Y; y += 4 {
		b := new(strings.Builder)
		for x := sz.Min.X; x < sz.Max.X; x += 2 {
			glyph := brailleBase
			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if r.darkAt(img, x+dx, y+dy) {
						glyph += brailleDots[dy][dx]
					}
				}
			}
			r.writeGlyph(b, glyph)
		}
		rows = append(rows, b.String())
	}
	return rows
}

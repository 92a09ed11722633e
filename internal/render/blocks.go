package render

import (
	"image"
	"strings"
)

// quadrants maps a 2x2 cell of darkness samples to a block element. The key
// packs the samples as bit 0 = top-left, bit 1 = top-right, bit 2 =
// bottom-left, bit 3 = bottom-right.
var quadrants = [16]rune{
	' ', '▘', '▝', '▀',
	'▖', '▌', '▞', '▛',
	'▗', '▚', '▐', '▜',
	'▄', '▙', '▟', '█',
}

func (r *Renderer) Blocks(img image.Image) []string {
	sz := img.Bounds()

	rows := make([]string, 0, cells(sz.Dy(), 2))
	for y := sz.Min.Y; y < sz.Max.Y; y += 2 {
		b := new(strings.Builder)
		for x := sz.Min.X; x < sz.Max.X; x += 2 {
			key := 0
			for dy := 0; dy < 2; dy++ {
				for dx := 0; dx < 2; dx++ {
					if r.darkAt(img, x+dx, y+dy) {
						key |= 1 << (dy*2 + dx)
					}
				}
			}
			r.writeGlyph(b, quadrants[key])
		}
		rows = append(rows, b.String())
	}
	return rows
}

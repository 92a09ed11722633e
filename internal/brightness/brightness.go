package brightness

import "image/color"

// Luminance weighs the color channels as 0.299*R + 0.587*G + 0.114*B and
// truncates the result to 8 bits. Alpha does not contribute.
func Luminance(c color.NRGBA) uint8 {
	return uint8((299*uint32(c.R) + 587*uint32(c.G) + 114*uint32(c.B)) / 1000)
}

func Dark(c color.NRGBA, threshold uint8) bool {
	return Luminance(c) < threshold
}

// Level buckets luminance into eight bands, 0 (darkest) through 7 (brightest).
func Level(c color.NRGBA) int {
	return int(Luminance(c) / 32)
}

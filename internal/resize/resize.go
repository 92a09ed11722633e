package resize

import (
	"image"
	"math"

	"github.com/nfnt/resize"
)

// Fit scales img so that neither dimension exceeds max, preserving aspect
// ratio. Smaller images are scaled up to fit. The bicubic kernel here is a
// Catmull-Rom spline.
func Fit(img image.Image, max uint) image.Image {
	sz := img.Bounds()
	neww, newh := fitSize(sz.Dx(), sz.Dy(), max)
	return resize.Resize(neww, newh, img, resize.Bicubic)
}

// fitSize keeps the aspect ratio and clamps both dimensions to at least 1,
// so max = 0 degenerates to a single pixel.
func fitSize(w, h int, max uint) (uint, uint) {
	ratio := math.Min(float64(max)/float64(w), float64(max)/float64(h))
	neww := math.Max(math.Round(float64(w)*ratio), 1)
	newh := math.Max(math.Round(float64(h)*ratio), 1)
	return uint(neww), uint(newh)
}

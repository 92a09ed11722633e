package resize

import (
	"image"
	"image/color"
	"testing"
)

func TestFitSize(t *testing.T) {
	tests := []struct {
		name  string
		w, h  int
		max   uint
		wantW uint
		wantH uint
	}{
		{"landscape down", 100, 50, 10, 10, 5},
		{"portrait down", 50, 100, 10, 5, 10},
		{"square down", 7, 7, 3, 3, 3},
		{"upscale", 2, 2, 8, 8, 8},
		{"exact fit", 10, 5, 10, 10, 5},
		{"rounds short side", 3, 2, 2, 2, 1},
		{"short side clamps to one", 1000, 1, 10, 10, 1},
		{"zero max degenerates to single pixel", 5, 5, 0, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotW, gotH := fitSize(tt.w, tt.h, tt.max)
			if gotW != tt.wantW || gotH != tt.wantH {
				t.Errorf("fitSize(%d, %d, %d) = (%d, %d), want (%d, %d)",
					tt.w, tt.h, tt.max, gotW, gotH, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestFit(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 100, 40))
	for y := 0; y < 40; y++ {
		for x := 0; x < 100; x++ {
			img.SetNRGBA(x, y, color.NRGBA{A: 255})
		}
	}

	got := Fit(img, 10)
	if w, h := got.Bounds().Dx(), got.Bounds().Dy(); w != 10 || h != 4 {
		t.Errorf("Fit() bounds = %dx%d, want 10x4", w, h)
	}

	// A solid image stays solid through resampling.
	c := color.NRGBAModel.Convert(got.At(5, 2)).(color.NRGBA)
	if c.R != 0 || c.G != 0 || c.B != 0 {
		t.Errorf("Fit() center pixel = %v, want black", c)
	}
}

func TestFitUpscales(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, G: 255, B: 255, A: 255})

	got := Fit(img, 4)
	if w, h := got.Bounds().Dx(), got.Bounds().Dy(); w != 4 || h != 4 {
		t.Errorf("Fit() bounds = %dx%d, want 4x4", w, h)
	}
}

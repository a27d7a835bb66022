package image

import (
	"image"
	"image/color"
	"testing"
)

func TestTargetSize(t *testing.T) {
	tests := []struct {
		name       string
		height     int
		width      int
		maxDim     int
		wantHeight int
		wantWidth  int
	}{
		{"tall image", 1000, 800, 500, 500, 400},
		{"wide image", 777, 1000, 500, 388, 500},
		{"tall narrow image", 1000, 500, 500, 500, 250},
		{"square at twice the bound", 500, 500, 250, 250, 250},
		{"square equal to bound", 500, 500, 500, 500, 500},
		{"tall thin image", 1000, 400, 500, 500, 200},
		{"already smaller", 400, 300, 500, 400, 300},
		{"default bound tall", 1600, 1200, 800, 800, 600},
		{"default bound small", 640, 480, 800, 640, 480},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotHeight, gotWidth := TargetSize(tt.height, tt.width, tt.maxDim)
			if gotHeight != tt.wantHeight || gotWidth != tt.wantWidth {
				t.Errorf("TargetSize(%d, %d, %d) = (%d, %d), want (%d, %d)",
					tt.height, tt.width, tt.maxDim, gotHeight, gotWidth, tt.wantHeight, tt.wantWidth)
			}
		})
	}
}

func TestTargetSizeNeverExceedsBound(t *testing.T) {
	sizes := [][2]int{{1000, 800}, {777, 1000}, {500, 500}, {1, 2000}, {2000, 1}}
	for _, s := range sizes {
		h, w := TargetSize(s[0], s[1], 500)
		if h > 500 || w > 500 {
			t.Errorf("TargetSize(%d, %d, 500) = (%d, %d), exceeds bound", s[0], s[1], h, w)
		}
		if h < 1 || w < 1 {
			t.Errorf("TargetSize(%d, %d, 500) = (%d, %d), non-positive dimension", s[0], s[1], h, w)
		}
	}
}

func TestTargetSizeSquareTieUsesWidth(t *testing.T) {
	// A square image follows the width-is-longer branch: the width maps
	// to the bound exactly.
	h, w := TargetSize(600, 600, 400)
	if w != 400 {
		t.Errorf("Expected width pinned to 400, got %d", w)
	}
	if h != 400 {
		t.Errorf("Expected proportional height 400, got %d", h)
	}
}

func TestNormalize(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1600, 1000))

	normalized := Normalize(img, 800)
	bounds := normalized.Bounds()
	if bounds.Dx() != 800 || bounds.Dy() != 500 {
		t.Errorf("Expected 800x500, got %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestNormalizeNoUpscale(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 300, 200))

	normalized := Normalize(img, 800)
	if normalized != image.Image(img) {
		bounds := normalized.Bounds()
		if bounds.Dx() != 300 || bounds.Dy() != 200 {
			t.Errorf("Expected unchanged 300x200, got %dx%d", bounds.Dx(), bounds.Dy())
		}
	}
}

func TestDownscalePreservesSolidColour(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 100, 60))
	for y := 0; y < 60; y++ {
		for x := 0; x < 100; x++ {
			img.SetRGBA(x, y, color.RGBA{R: 10, G: 200, B: 30, A: 255})
		}
	}

	small := Downscale(img, 30, 50)
	bounds := small.Bounds()
	if bounds.Dx() != 50 || bounds.Dy() != 30 {
		t.Fatalf("Expected 50x30, got %dx%d", bounds.Dx(), bounds.Dy())
	}

	for _, p := range Pixels(small) {
		if p.R != 10 || p.G != 200 || p.B != 30 {
			t.Fatalf("Expected uniform rgb(10, 200, 30), got %v", p)
		}
	}
}

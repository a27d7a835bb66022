package compose

import (
	"image"
	"image/color"
	"image/draw"
	"os"
	"path/filepath"
	"testing"

	"github.com/vimaki/colors-of-paintings/internal/colour"
)

func solidImage(w, h int, c color.RGBA) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	return img
}

func TestRendererRender(t *testing.T) {
	renderer, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer returned error: %v", err)
	}

	clusters := []colour.Cluster{
		{Centroid: colour.RGB{R: 255}, Count: 3},
		{Centroid: colour.RGB{B: 255}, Count: 1},
	}
	features := []Feature{
		{Proportion: 0.75, Hex: "#FF0000", Name: "Red"},
		{Proportion: 0.25, Hex: "#0000FF", Name: "Blue"},
	}

	out, err := renderer.Render(solidImage(400, 300, color.RGBA{R: 255, A: 255}), clusters, features)
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}

	bounds := out.Bounds()
	if bounds.Dx() != 1000 || bounds.Dy() != 1050 {
		t.Errorf("Expected 1000x1050 canvas, got %dx%d", bounds.Dx(), bounds.Dy())
	}

	// The bar region is centred at x=500; the first segment covers three
	// quarters of the 600px strip, so its midpoint is solid red.
	got := colour.ToRGB(out.At(400, 675))
	if got != (colour.RGB{R: 255}) {
		t.Errorf("Bar midpoint = %v, want rgb(255, 0, 0)", got)
	}
}

func TestRendererRenderManyColours(t *testing.T) {
	renderer, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer returned error: %v", err)
	}

	// Twelve clusters force the two-column legend layout.
	var (
		clusters []colour.Cluster
		features []Feature
	)
	for i := 0; i < 12; i++ {
		c := colour.RGB{R: uint8(i * 20), G: uint8(255 - i*20), B: 100}
		clusters = append(clusters, colour.Cluster{Centroid: c, Count: 10})
		features = append(features, Feature{Proportion: 1.0 / 12.0, Hex: c.Hex(), Name: "Colour"})
	}

	out, err := renderer.Render(solidImage(200, 200, color.RGBA{A: 255}), clusters, features)
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if out.Bounds().Dy() != 1050 {
		t.Errorf("Canvas height = %d, want 1050", out.Bounds().Dy())
	}
}

func TestRendererRenderErrors(t *testing.T) {
	renderer, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer returned error: %v", err)
	}

	img := solidImage(10, 10, color.RGBA{A: 255})
	if _, err := renderer.Render(img, nil, nil); err == nil {
		t.Error("Expected error for empty cluster list")
	}

	clusters := []colour.Cluster{{Centroid: colour.RGB{R: 255}, Count: 1}}
	if _, err := renderer.Render(img, clusters, nil); err == nil {
		t.Error("Expected error for cluster/feature length mismatch")
	}
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	img := solidImage(20, 10, color.RGBA{G: 255, A: 255})

	pngPath := filepath.Join(dir, "out.png")
	if err := Save(img, pngPath); err != nil {
		t.Fatalf("Save png returned error: %v", err)
	}
	if _, err := os.Stat(pngPath); err != nil {
		t.Errorf("Expected output file: %v", err)
	}

	jpegPath := filepath.Join(dir, "out.jpg")
	if err := Save(img, jpegPath); err != nil {
		t.Fatalf("Save jpeg returned error: %v", err)
	}
	if _, err := os.Stat(jpegPath); err != nil {
		t.Errorf("Expected output file: %v", err)
	}
}

func TestSaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	if err := os.WriteFile(path, []byte("stale"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := Save(solidImage(5, 5, color.RGBA{A: 255}), path); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() <= int64(len("stale")) {
		t.Error("Expected the stale file to be replaced with an encoded image")
	}
}

func TestSaveBadPath(t *testing.T) {
	img := solidImage(5, 5, color.RGBA{A: 255})
	if err := Save(img, filepath.Join(t.TempDir(), "no-such-dir", "out.png")); err == nil {
		t.Error("Expected error for unwritable path")
	}
}

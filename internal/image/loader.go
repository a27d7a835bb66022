// Package image provides image loading and size normalization for the
// colour-extraction pipeline.
package image

import (
	"fmt"
	"image"
	_ "image/jpeg" // Register JPEG format
	_ "image/png"  // Register PNG format
	"os"
	"path/filepath"
	"slices"
	"strings"

	_ "golang.org/x/image/bmp"  // Register BMP format
	_ "golang.org/x/image/tiff" // Register TIFF format
	_ "golang.org/x/image/webp" // Register WebP format

	"github.com/vimaki/colors-of-paintings/internal/colour"
)

// supportedExtensions is the fixed allow-list of raster formats accepted
// by the pipeline. Paths are validated against this list by filename
// pattern only; content sniffing happens later, at decode time.
var supportedExtensions = []string{
	".bmp", ".dib",
	".jpeg", ".jpg", ".jpe", ".jp2",
	".png",
	".webp",
	".pbm", ".pgm", ".ppm", ".pxm", ".pnm", ".pfm",
	".sr", ".ras",
	".tiff", ".tif",
	".exr", ".hdr", ".pic",
}

// SupportedExtensions returns the allow-list of image file extensions.
func SupportedExtensions() []string {
	return slices.Clone(supportedExtensions)
}

// IsSupportedPath reports whether the path carries a supported raster
// extension. The check is case-insensitive and purely lexical.
func IsSupportedPath(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return slices.Contains(supportedExtensions, ext)
}

// Loader handles loading images from a source.
type Loader interface {
	// Load loads an image from the given path.
	Load(path string) (image.Image, error)
}

// FileLoader loads images from the local filesystem.
type FileLoader struct{}

// NewFileLoader creates a new FileLoader instance.
func NewFileLoader() *FileLoader {
	return &FileLoader{}
}

// Load loads an image from a file path. Whatever the source encoding,
// pixels read from the returned image are consumed in RGB channel order
// throughout the pipeline.
func (l *FileLoader) Load(path string) (image.Image, error) {
	if path == "" {
		return nil, fmt.Errorf("image path cannot be empty")
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("image file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to stat image file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("path is a directory, not a file: %s", path)
	}

	file, err := os.Open(path) // #nosec G304 - User-specified image path, intended to be read
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	img, format, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image (format: %s): %w", format, err)
	}

	return img, nil
}

// Pixels flattens an image into a row-major pixel list in RGB channel
// order. All channel values are in [0, 255].
func Pixels(img image.Image) []colour.RGB {
	bounds := img.Bounds()
	pixels := make([]colour.RGB, 0, bounds.Dx()*bounds.Dy())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			pixels = append(pixels, colour.ToRGB(img.At(x, y)))
		}
	}
	return pixels
}

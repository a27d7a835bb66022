// Package primarycolors extracts a small set of representative colours
// from a raster image and optionally renders an infographic of the
// result: the original image, a proportional colour bar, and a legend
// with percentage, hex code, and colour name per cluster.
//
// This is the single entry point consumed by front ends; the pipeline
// behind it is synchronous and shares no mutable state between
// invocations except the lazily built, read-only colour-name index.
package primarycolors

import (
	"errors"
	"fmt"
	"image"

	"github.com/vimaki/colors-of-paintings/internal/colour"
	"github.com/vimaki/colors-of-paintings/internal/compose"
	imgutil "github.com/vimaki/colors-of-paintings/internal/image"
	"github.com/vimaki/colors-of-paintings/internal/naming"
)

// RGB is a colour as a triple of 8-bit channels.
type RGB = colour.RGB

// MaxColorCount is the largest accepted colour count per extraction.
const MaxColorCount = 20

// Options carries the optional knobs of an extraction. The zero value
// selects all defaults.
type Options struct {
	// MaxDimension bounds the longer image dimension before clustering.
	// Non-positive values select the default (800).
	MaxDimension int

	// OutputPath is where the visualization is written. Empty selects
	// compose.DefaultOutputPath. Only used when a visualization is
	// requested.
	OutputPath string

	// IndexPath points to a serialized name-index artifact produced by
	// the offline builder. Empty selects the shared in-process index
	// built from the bundled reference table.
	IndexPath string

	// Namer overrides colour-name resolution entirely. Takes precedence
	// over IndexPath.
	Namer *naming.Namer
}

// Extract returns the colorCount most representative colours of the
// image at imagePath, in the clusterer's label order. When
// produceVisualization is set, it also writes the composed infographic
// to outputPath (or a default path when outputPath is empty).
//
// Validation failures are reported before any clustering work begins:
// ErrInvalidInput for an unusable path, ErrInvalidFormat for an
// unsupported extension, ErrOutOfRange for a colour count outside
// [1, 20].
func Extract(imagePath string, colorCount int, produceVisualization bool, outputPath string) ([]RGB, error) {
	return ExtractWithOptions(imagePath, colorCount, produceVisualization, Options{OutputPath: outputPath})
}

// ExtractWithOptions is Extract with explicit pipeline options.
func ExtractWithOptions(imagePath string, colorCount int, produceVisualization bool, opts Options) ([]RGB, error) {
	if imagePath == "" {
		return nil, fmt.Errorf("%w: image path cannot be empty", ErrInvalidInput)
	}
	if !imgutil.IsSupportedPath(imagePath) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidFormat, imagePath)
	}
	if colorCount < 1 || colorCount > MaxColorCount {
		return nil, fmt.Errorf("%w: got %d", ErrOutOfRange, colorCount)
	}

	loader := imgutil.NewFileLoader()
	original, err := loader.Load(imagePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// Clustering runs on the size-normalized image; the original is kept
	// at full resolution for the visualization.
	normalized := imgutil.Normalize(original, opts.MaxDimension)
	pixels := imgutil.Pixels(normalized)

	palette, err := colour.NewKMeansClusterer().Cluster(pixels, colorCount)
	if err != nil {
		if errors.Is(err, colour.ErrInsufficientColors) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		return nil, err
	}

	if produceVisualization {
		if err := renderVisualization(original, palette, opts); err != nil {
			return nil, err
		}
	}

	return palette.Colors(), nil
}

func renderVisualization(original image.Image, palette *colour.Palette, opts Options) error {
	namer := opts.Namer
	if namer == nil {
		if opts.IndexPath != "" {
			namer = &naming.Namer{ArtifactPath: opts.IndexPath}
		} else {
			namer = sharedNamer
		}
	}

	features, err := compose.Features(palette.Clusters, namer.Name)
	if err != nil {
		return err
	}

	renderer, err := compose.NewRenderer()
	if err != nil {
		return err
	}
	img, err := renderer.Render(original, palette.Clusters, features)
	if err != nil {
		return err
	}

	return compose.Save(img, opts.OutputPath)
}

// sharedNamer is the process-wide namer backing default extractions. Its
// index is built once on first visualization and reused afterwards.
var sharedNamer = &naming.Namer{}

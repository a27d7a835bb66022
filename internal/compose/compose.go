package compose

import (
	"fmt"
	"image"
	"image/draw"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/vimaki/colors-of-paintings/internal/colour"
)

// DefaultOutputPath is used when the caller does not name an output file.
const DefaultOutputPath = "primary-colors.png"

// Canvas geometry. The three regions stack vertically in a fixed 4:1:2
// proportion: the original image on top, the colour bar strip in the
// middle, the legend at the bottom.
const (
	canvasWidth  = 1000
	canvasHeight = 1050

	imageRegionHeight = 600
	barRegionHeight   = 150
	legendRegionTop   = imageRegionHeight + barRegionHeight

	barScale = 2

	legendSwatchSize = 16
	legendRowHeight  = 26
	legendFontSize   = 16
)

// singleColumnLimit is the largest cluster count rendered as a single
// legend column; larger palettes switch to two columns.
const singleColumnLimit = 10

// Renderer composes output infographics. It carries the parsed legend
// font face, so one Renderer can serve many compositions.
type Renderer struct {
	face font.Face
}

// NewRenderer creates a Renderer with the bundled legend font.
func NewRenderer() (*Renderer, error) {
	parsed, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse legend font: %w", err)
	}
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    legendFontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create legend font face: %w", err)
	}
	return &Renderer{face: face}, nil
}

// Render assembles the final raster: the original full-resolution image
// scaled to fit the top region, the proportional colour bar in the
// middle, and the legend at the bottom. Clusters and features must be in
// the same order; that order determines both segment and label order.
func (r *Renderer) Render(original image.Image, clusters []colour.Cluster, features []Feature) (*image.RGBA, error) {
	if len(clusters) == 0 {
		return nil, fmt.Errorf("no clusters to render")
	}
	if len(clusters) != len(features) {
		return nil, fmt.Errorf("cluster/feature length mismatch: %d != %d", len(clusters), len(features))
	}

	canvas := image.NewRGBA(image.Rect(0, 0, canvasWidth, canvasHeight))
	draw.Draw(canvas, canvas.Bounds(), image.White, image.Point{}, draw.Src)

	r.drawOriginal(canvas, original)
	r.drawBar(canvas, clusters)
	if err := r.drawLegend(canvas, features); err != nil {
		return nil, err
	}

	return canvas, nil
}

// drawOriginal scales the source image to fit the top region, preserving
// aspect ratio, and centres it.
func (r *Renderer) drawOriginal(canvas *image.RGBA, original image.Image) {
	bounds := original.Bounds()
	srcW, srcH := bounds.Dx(), bounds.Dy()
	if srcW == 0 || srcH == 0 {
		return
	}

	scale := min(float64(canvasWidth)/float64(srcW), float64(imageRegionHeight)/float64(srcH))
	dstW := int(float64(srcW) * scale)
	dstH := int(float64(srcH) * scale)
	x0 := (canvasWidth - dstW) / 2
	y0 := (imageRegionHeight - dstH) / 2

	dst := image.Rect(x0, y0, x0+dstW, y0+dstH)
	xdraw.ApproxBiLinear.Scale(canvas, dst, original, bounds, xdraw.Src, nil)
}

// drawBar renders the 50x300 strip and scales it into the middle region
// with nearest-neighbour interpolation so segment boundaries stay crisp.
func (r *Renderer) drawBar(canvas *image.RGBA, clusters []colour.Cluster) {
	bar := ColorBar(clusters)

	dstW := BarWidth * barScale
	dstH := BarHeight * barScale
	x0 := (canvasWidth - dstW) / 2
	y0 := imageRegionHeight + (barRegionHeight-dstH)/2

	dst := image.Rect(x0, y0, x0+dstW, y0+dstH)
	xdraw.NearestNeighbor.Scale(canvas, dst, bar, bar.Bounds(), xdraw.Src, nil)
}

// drawLegend writes one swatch-and-label row per cluster. Up to ten
// clusters fit in a single centred column; larger palettes split into
// two columns.
func (r *Renderer) drawLegend(canvas *image.RGBA, features []Feature) error {
	columns := 1
	if len(features) > singleColumnLimit {
		columns = 2
	}

	rowsPerColumn := (len(features) + columns - 1) / columns
	columnX := []int{(canvasWidth - 360) / 2}
	if columns == 2 {
		columnX = []int{120, 540}
	}

	startY := legendRegionTop + 40
	for i, f := range features {
		col := i / rowsPerColumn
		row := i % rowsPerColumn
		x := columnX[col]
		y := startY + row*legendRowHeight

		swatch, err := colorful.Hex(strings.ToLower(f.Hex))
		if err != nil {
			return fmt.Errorf("invalid legend colour %q: %w", f.Hex, err)
		}
		sr, sg, sb := swatch.RGB255()
		swatchRect := image.Rect(x, y-legendSwatchSize+2, x+legendSwatchSize, y+2)
		draw.Draw(canvas, swatchRect, image.NewUniform(colour.RGB{R: sr, G: sg, B: sb}.ToColor()), image.Point{}, draw.Src)

		drawer := &font.Drawer{
			Dst:  canvas,
			Src:  image.Black,
			Face: r.face,
			Dot:  fixed.P(x+legendSwatchSize+10, y),
		}
		drawer.DrawString(f.Label())
	}

	return nil
}

// Save encodes an image to the given path, overwriting any existing
// file. The encoder follows the file extension: JPEG for .jpg/.jpeg,
// PNG otherwise.
func Save(img image.Image, path string) error {
	if path == "" {
		path = DefaultOutputPath
	}

	file, err := os.Create(path) // #nosec G304 - Caller-specified output path
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	var encodeErr error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		encodeErr = jpeg.Encode(file, img, &jpeg.Options{Quality: 90})
	default:
		encodeErr = png.Encode(file, img)
	}

	closeErr := file.Close()
	if encodeErr != nil {
		return fmt.Errorf("failed to encode output image: %w", encodeErr)
	}
	if closeErr != nil {
		return fmt.Errorf("failed to close output file: %w", closeErr)
	}
	return nil
}

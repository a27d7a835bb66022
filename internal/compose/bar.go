package compose

import (
	"image"
	"image/draw"

	"github.com/vimaki/colors-of-paintings/internal/colour"
)

// Bar strip dimensions, by convention.
const (
	BarWidth  = 300
	BarHeight = 50
)

// SegmentBounds computes the horizontal pixel boundaries of the bar
// segments for the given proportions. The result has len(proportions)+1
// entries: segment i spans [bounds[i], bounds[i+1]). Boundaries come
// from a running fractional accumulation rather than per-segment
// rounding, so consecutive segments tile the strip with no gaps or
// overlap, and the final boundary is pinned to the full width.
func SegmentBounds(proportions []float64, width int) []int {
	bounds := make([]int, len(proportions)+1)
	cumulative := 0.0
	for i, p := range proportions {
		cumulative += p * float64(width)
		bounds[i+1] = int(cumulative)
	}
	if len(proportions) > 0 {
		bounds[len(proportions)] = width
	}
	return bounds
}

// ColorBar renders the proportional colour strip: consecutive horizontal
// segments in cluster order, each segment's width proportional to its
// cluster's pixel share.
func ColorBar(clusters []colour.Cluster) *image.RGBA {
	bar := image.NewRGBA(image.Rect(0, 0, BarWidth, BarHeight))

	proportions := make([]float64, len(clusters))
	total := 0
	for _, c := range clusters {
		total += c.Count
	}
	if total > 0 {
		for i, c := range clusters {
			proportions[i] = float64(c.Count) / float64(total)
		}
	}

	bounds := SegmentBounds(proportions, BarWidth)
	for i, c := range clusters {
		segment := image.Rect(bounds[i], 0, bounds[i+1], BarHeight)
		draw.Draw(bar, segment, image.NewUniform(c.Centroid.ToColor()), image.Point{}, draw.Src)
	}

	return bar
}

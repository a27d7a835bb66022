// Package colour provides pixel clustering and palette types for
// primary-colour extraction.
package colour

import (
	"encoding/json"
	"fmt"
	"image/color"
)

// RGB represents a colour in RGB format with 8-bit channels.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// String returns the RGB colour as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the RGB colour as an uppercase hex string (e.g., "#1A2B3C").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", rgb.R, rgb.G, rgb.B)
}

// ToRGB converts a color.Color to RGB.
func ToRGB(c color.Color) RGB {
	r, g, b, _ := c.RGBA()
	// RGBA returns values in the range [0, 65535], convert to [0, 255]
	return RGB{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
	}
}

// ToColor converts an RGB value to an opaque color.Color.
func (rgb RGB) ToColor() color.Color {
	return color.RGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: 255}
}

// Cluster associates a representative colour (the cluster centroid) with
// the number of pixels assigned to it.
type Cluster struct {
	Centroid RGB `json:"centroid"`
	Count    int `json:"count"`
}

// Palette represents the ordered set of clusters produced by one
// clustering run. The order is the clusterer's native label order and is
// preserved through rendering, so that bar segments and legend entries
// line up across repeated runs on the same input.
type Palette struct {
	Clusters []Cluster
}

// NewPalette creates a new Palette with the given clusters.
func NewPalette(clusters []Cluster) *Palette {
	return &Palette{Clusters: clusters}
}

// Len returns the number of clusters in the palette.
func (p *Palette) Len() int {
	return len(p.Clusters)
}

// TotalPixels returns the sum of all cluster pixel counts.
func (p *Palette) TotalPixels() int {
	total := 0
	for _, c := range p.Clusters {
		total += c.Count
	}
	return total
}

// Proportions returns each cluster's share of the total pixel count, in
// cluster order. The shares sum to 1.0.
func (p *Palette) Proportions() []float64 {
	total := float64(p.TotalPixels())
	proportions := make([]float64, len(p.Clusters))
	if total == 0 {
		return proportions
	}
	for i, c := range p.Clusters {
		proportions[i] = float64(c.Count) / total
	}
	return proportions
}

// Colors returns the cluster centroids in cluster order.
func (p *Palette) Colors() []RGB {
	colors := make([]RGB, len(p.Clusters))
	for i, c := range p.Clusters {
		colors[i] = c.Centroid
	}
	return colors
}

// ToHex converts the palette centroids to hex strings.
func (p *Palette) ToHex() []string {
	hexColors := make([]string, len(p.Clusters))
	for i, c := range p.Clusters {
		hexColors[i] = c.Centroid.Hex()
	}
	return hexColors
}

// ColorJSON represents one cluster in JSON output format.
type ColorJSON struct {
	Hex        string  `json:"hex"`
	RGB        RGB     `json:"rgb"`
	Count      int     `json:"count"`
	Proportion float64 `json:"proportion"`
}

// PaletteJSON represents the palette in JSON format.
type PaletteJSON struct {
	Count  int         `json:"count"`
	Colors []ColorJSON `json:"colors"`
}

// ToJSON converts the palette to JSON format.
func (p *Palette) ToJSON() ([]byte, error) {
	proportions := p.Proportions()
	colors := make([]ColorJSON, len(p.Clusters))
	for i, c := range p.Clusters {
		colors[i] = ColorJSON{
			Hex:        c.Centroid.Hex(),
			RGB:        c.Centroid,
			Count:      c.Count,
			Proportion: proportions[i],
		}
	}

	paletteJSON := PaletteJSON{
		Count:  len(p.Clusters),
		Colors: colors,
	}

	return json.MarshalIndent(paletteJSON, "", "  ")
}

// String returns a human-readable string representation of the palette.
func (p *Palette) String() string {
	if len(p.Clusters) == 0 {
		return "Empty palette"
	}

	result := fmt.Sprintf("Palette with %d colours:\n", len(p.Clusters))
	proportions := p.Proportions()
	for i, c := range p.Clusters {
		result += fmt.Sprintf("  %2d: %s (%s) %.1f%%\n",
			i+1, c.Centroid.Hex(), c.Centroid.String(), proportions[i]*100)
	}
	return result
}

// Package compose assembles the output infographic: the original image,
// a proportional colour bar, and a labeled legend.
package compose

import (
	"fmt"

	"github.com/vimaki/colors-of-paintings/internal/colour"
)

// Feature holds the derived per-cluster values used for labelling: the
// cluster's share of the image, its hex code, and its resolved name.
type Feature struct {
	Proportion float64
	Hex        string
	Name       string
}

// Label formats a feature as a legend entry, e.g.
// "33.3% - #FF0000 - Red". Percentages are rounded to one decimal place.
func (f Feature) Label() string {
	return fmt.Sprintf("%.1f%% - %s - %s", f.Proportion*100, f.Hex, f.Name)
}

// Features derives the per-cluster feature set in cluster order. The
// name function resolves a centroid to its colour name; any resolution
// error aborts and is returned unchanged.
func Features(clusters []colour.Cluster, name func(colour.RGB) (string, error)) ([]Feature, error) {
	total := 0
	for _, c := range clusters {
		total += c.Count
	}
	if total == 0 {
		return nil, fmt.Errorf("clusters have no pixels")
	}

	features := make([]Feature, len(clusters))
	for i, c := range clusters {
		n, err := name(c.Centroid)
		if err != nil {
			return nil, err
		}
		features[i] = Feature{
			Proportion: float64(c.Count) / float64(total),
			Hex:        c.Centroid.Hex(),
			Name:       n,
		}
	}
	return features, nil
}

// Labels renders all features as legend entries in cluster order.
func Labels(features []Feature) []string {
	labels := make([]string, len(features))
	for i, f := range features {
		labels[i] = f.Label()
	}
	return labels
}

package colour

import (
	"fmt"
	"math"
	"math/rand"
)

// ErrInsufficientColors is returned when the requested cluster count
// exceeds the number of distinct pixel colours in the input.
var ErrInsufficientColors = fmt.Errorf("not enough distinct colours for requested cluster count")

// KMeansClusterer partitions pixels into K clusters using k-means
// clustering over raw RGB coordinates with Euclidean distance.
//
// The random source is seeded with a fixed value, so clustering the same
// pixel list with the same K always yields the same centroids in the same
// label order. Cluster indices are the algorithm's native labels; callers
// must not resort them by weight or colour.
type KMeansClusterer struct {
	maxIterations int
	convergence   float64
	seed          int64
}

// NewKMeansClusterer creates a new KMeansClusterer with default settings.
func NewKMeansClusterer() *KMeansClusterer {
	return &KMeansClusterer{
		maxIterations: 50,
		convergence:   0.5,
		seed:          0,
	}
}

// Cluster partitions pixels into exactly k clusters and returns the
// resulting palette: one centroid per cluster (channel values rounded to
// the nearest integer and clamped to [0, 255]) together with the exact
// number of pixels assigned to it. The counts sum to len(pixels).
func (c *KMeansClusterer) Cluster(pixels []RGB, k int) (*Palette, error) {
	if k < 1 {
		return nil, fmt.Errorf("cluster count must be at least 1, got %d", k)
	}
	if len(pixels) == 0 {
		return nil, fmt.Errorf("no pixels to cluster")
	}

	distinct := countDistinct(pixels)
	if k > distinct {
		return nil, fmt.Errorf("%w: requested %d, image has %d", ErrInsufficientColors, k, distinct)
	}

	points := make([]point3D, len(pixels))
	for i, p := range pixels {
		points[i] = point3D{R: float64(p.R), G: float64(p.G), B: float64(p.B)}
	}

	rng := rand.New(rand.NewSource(c.seed))
	centroids := initializeCentroids(points, k, rng)
	assignments := make([]int, len(points))

	for iter := 0; iter < c.maxIterations; iter++ {
		changed := 0
		for i, point := range points {
			nearest := nearestCentroid(point, centroids)
			if assignments[i] != nearest || iter == 0 {
				assignments[i] = nearest
				changed++
			}
		}
		if changed == 0 {
			break
		}

		newCentroids := recalculateCentroids(points, assignments, k, rng)

		totalMovement := 0.0
		for i := range centroids {
			totalMovement += centroids[i].distance(newCentroids[i])
		}
		centroids = newCentroids

		if totalMovement/float64(k) < c.convergence {
			break
		}
	}

	// Final assignment pass so labels match the centroids we report.
	counts := make([]int, k)
	for i, point := range points {
		assignments[i] = nearestCentroid(point, centroids)
		counts[assignments[i]]++
	}

	clusters := make([]Cluster, k)
	for i := 0; i < k; i++ {
		clusters[i] = Cluster{
			Centroid: roundCentroid(centroids[i]),
			Count:    counts[i],
		}
	}

	return NewPalette(clusters), nil
}

// point3D represents a point in 3D RGB colour space.
type point3D struct {
	R, G, B float64
}

// distance calculates the Euclidean distance between two points in RGB space.
func (p point3D) distance(other point3D) float64 {
	dr := p.R - other.R
	dg := p.G - other.G
	db := p.B - other.B
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

// countDistinct returns the number of distinct colours in the pixel list.
func countDistinct(pixels []RGB) int {
	seen := make(map[RGB]struct{}, len(pixels))
	for _, p := range pixels {
		seen[p] = struct{}{}
	}
	return len(seen)
}

// initializeCentroids chooses initial centroids using the k-means++
// strategy: the first centroid is drawn uniformly, each subsequent one
// with probability proportional to its squared distance from the nearest
// centroid chosen so far.
func initializeCentroids(points []point3D, k int, rng *rand.Rand) []point3D {
	centroids := make([]point3D, 0, k)
	centroids = append(centroids, points[rng.Intn(len(points))])

	distances := make([]float64, len(points))
	for len(centroids) < k {
		totalDistance := 0.0
		for i, point := range points {
			minDist := math.MaxFloat64
			for _, centroid := range centroids {
				if dist := point.distance(centroid); dist < minDist {
					minDist = dist
				}
			}
			distances[i] = minDist * minDist
			totalDistance += distances[i]
		}

		if totalDistance == 0 {
			// Every remaining point coincides with an existing centroid.
			// The distinct-colour precondition makes this unreachable for
			// valid inputs, but keep the loop finite regardless.
			last := centroids[len(centroids)-1]
			centroids = append(centroids, point3D{R: last.R + 0.1, G: last.G + 0.1, B: last.B + 0.1})
			continue
		}

		target := rng.Float64() * totalDistance
		cumulative := 0.0
		for i, dist := range distances {
			cumulative += dist
			if cumulative >= target {
				centroids = append(centroids, points[i])
				break
			}
		}
	}

	return centroids
}

// nearestCentroid finds the index of the nearest centroid to a point.
func nearestCentroid(point point3D, centroids []point3D) int {
	minDist := math.MaxFloat64
	nearest := 0

	for i, centroid := range centroids {
		if dist := point.distance(centroid); dist < minDist {
			minDist = dist
			nearest = i
		}
	}

	return nearest
}

// recalculateCentroids recalculates centroid positions as the mean of the
// points assigned to each cluster. Empty clusters are reseeded from the
// random source so every label keeps a representative.
func recalculateCentroids(points []point3D, assignments []int, k int, rng *rand.Rand) []point3D {
	sums := make([]point3D, k)
	counts := make([]int, k)

	for i, point := range points {
		cluster := assignments[i]
		sums[cluster].R += point.R
		sums[cluster].G += point.G
		sums[cluster].B += point.B
		counts[cluster]++
	}

	centroids := make([]point3D, k)
	for i := 0; i < k; i++ {
		if counts[i] > 0 {
			centroids[i] = point3D{
				R: sums[i].R / float64(counts[i]),
				G: sums[i].G / float64(counts[i]),
				B: sums[i].B / float64(counts[i]),
			}
		} else {
			centroids[i] = points[rng.Intn(len(points))]
		}
	}

	return centroids
}

// roundCentroid rounds a centroid's channel values to the nearest integer
// and clamps them to the valid channel range.
func roundCentroid(p point3D) RGB {
	return RGB{
		R: clampChannel(math.Round(p.R)),
		G: clampChannel(math.Round(p.G)),
		B: clampChannel(math.Round(p.B)),
	}
}

func clampChannel(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

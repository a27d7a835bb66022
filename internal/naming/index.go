package naming

import (
	"encoding/gob"
	"fmt"
	"io"
	"os"

	"github.com/ulikunitz/xz"
	"gonum.org/v1/gonum/spatial/kdtree"

	"github.com/vimaki/colors-of-paintings/internal/colour"
)

// Index is an immutable 1-nearest-neighbour lookup over a reference
// colour table. It is safe for concurrent reads once constructed and is
// never mutated afterwards.
type Index struct {
	entries []Entry
	tree    *kdtree.Tree
}

// NewIndex fits a nearest-neighbour index over the given table entries.
// The entries' row order is retained for tie-breaking.
func NewIndex(entries []Entry) (*Index, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("cannot build index from an empty table")
	}

	points := make(tablePoints, len(entries))
	for i, e := range entries {
		points[i] = tablePoint{
			rgb: [3]float64{float64(e.R), float64(e.G), float64(e.B)},
			row: i,
		}
	}

	return &Index{
		entries: append([]Entry(nil), entries...),
		tree:    kdtree.New(points, false),
	}, nil
}

// Len returns the number of table entries in the index.
func (ix *Index) Len() int {
	return len(ix.entries)
}

// Nearest returns the name of the table entry with minimum Euclidean RGB
// distance to c. Distance ties resolve to the earliest table row.
func (ix *Index) Nearest(c colour.RGB) string {
	q := tablePoint{rgb: [3]float64{float64(c.R), float64(c.G), float64(c.B)}}

	got, dist := ix.tree.Nearest(q)
	best := got.(tablePoint)

	// The tree returns an arbitrary point among equidistant candidates;
	// gather everything at the minimum distance and keep the earliest row.
	keep := kdtree.NewDistKeeper(dist)
	ix.tree.NearestSet(keep, q)
	for _, cd := range keep.Heap {
		p, ok := cd.Comparable.(tablePoint)
		if ok && cd.Dist == dist && p.row < best.row {
			best = p
		}
	}

	return ix.entries[best.row].Name
}

// artifact is the serialized form of a fitted Index. Row order is part
// of the fitted model (it drives tie-breaking), so entries are stored in
// their original order.
type artifact struct {
	Version int
	Entries []Entry
}

// artifactVersion guards against loading artifacts written by an
// incompatible builder.
const artifactVersion = 1

// Save serializes the fitted index to an xz-compressed gob artifact at
// the given path, overwriting any existing file.
func (ix *Index) Save(path string) error {
	file, err := os.Create(path) // #nosec G304 - Caller-specified artifact path
	if err != nil {
		return fmt.Errorf("failed to create index artifact: %w", err)
	}

	w, err := xz.NewWriter(file)
	if err != nil {
		file.Close()
		return fmt.Errorf("failed to create xz writer: %w", err)
	}

	encodeErr := gob.NewEncoder(w).Encode(artifact{
		Version: artifactVersion,
		Entries: ix.entries,
	})
	closeErr := w.Close()
	fileErr := file.Close()

	if encodeErr != nil {
		return fmt.Errorf("failed to encode index artifact: %w", encodeErr)
	}
	if closeErr != nil {
		return fmt.Errorf("failed to finish xz stream: %w", closeErr)
	}
	if fileErr != nil {
		return fmt.Errorf("failed to close index artifact: %w", fileErr)
	}
	return nil
}

// ReadIndex deserializes a fitted index from an artifact stream.
func ReadIndex(r io.Reader) (*Index, error) {
	xzr, err := xz.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open xz stream: %w", err)
	}

	var a artifact
	if err := gob.NewDecoder(xzr).Decode(&a); err != nil {
		return nil, fmt.Errorf("failed to decode index artifact: %w", err)
	}
	if a.Version != artifactVersion {
		return nil, fmt.Errorf("unsupported index artifact version %d", a.Version)
	}

	return NewIndex(a.Entries)
}

// LoadIndex deserializes a fitted index from an artifact file.
func LoadIndex(path string) (*Index, error) {
	file, err := os.Open(path) // #nosec G304 - Caller-specified artifact path, intended to be read
	if err != nil {
		return nil, fmt.Errorf("failed to open index artifact: %w", err)
	}
	defer file.Close()
	return ReadIndex(file)
}

// tablePoint adapts one table row to the k-d tree interfaces. Distances
// are squared Euclidean in RGB space; squaring preserves ordering and
// ties.
type tablePoint struct {
	rgb [3]float64
	row int
}

func (p tablePoint) Compare(c kdtree.Comparable, d kdtree.Dim) float64 {
	q := c.(tablePoint)
	return p.rgb[d] - q.rgb[d]
}

func (p tablePoint) Dims() int { return 3 }

func (p tablePoint) Distance(c kdtree.Comparable) float64 {
	q := c.(tablePoint)
	var sum float64
	for i := range p.rgb {
		d := p.rgb[i] - q.rgb[i]
		sum += d * d
	}
	return sum
}

type tablePoints []tablePoint

func (p tablePoints) Index(i int) kdtree.Comparable { return p[i] }
func (p tablePoints) Len() int                      { return len(p) }
func (p tablePoints) Slice(start, end int) kdtree.Interface {
	return p[start:end]
}
func (p tablePoints) Pivot(d kdtree.Dim) int {
	return tablePlane{tablePoints: p, Dim: d}.Pivot()
}

// tablePlane sorts tablePoints along a single dimension for pivoting.
type tablePlane struct {
	kdtree.Dim
	tablePoints
}

func (p tablePlane) Less(i, j int) bool {
	return p.tablePoints[i].rgb[p.Dim] < p.tablePoints[j].rgb[p.Dim]
}
func (p tablePlane) Pivot() int {
	return kdtree.Partition(p, kdtree.MedianOfMedians(p))
}
func (p tablePlane) Slice(start, end int) kdtree.SortSlicer {
	p.tablePoints = p.tablePoints[start:end]
	return p
}
func (p tablePlane) Swap(i, j int) {
	p.tablePoints[i], p.tablePoints[j] = p.tablePoints[j], p.tablePoints[i]
}

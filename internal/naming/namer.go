package naming

import (
	"errors"
	"fmt"
	"sync"

	"github.com/vimaki/colors-of-paintings/internal/colour"
)

// ErrIndexUnavailable is returned when the nearest-neighbour index can
// neither be loaded from an artifact nor built from a reference table.
// This is the only unrecoverable condition in the naming path.
var ErrIndexUnavailable = errors.New("colour name index unavailable")

// Namer resolves a colour to a human-readable name: exact CSS-palette
// lookup first, nearest-neighbour fallback second.
//
// The fallback index is constructed lazily on first use and shared by
// all subsequent calls; construction is synchronized so concurrent first
// use builds it exactly once. The zero value is usable and falls back to
// the bundled reference table.
type Namer struct {
	// ArtifactPath points to a serialized index produced by the offline
	// builder. When set, the table is never re-fitted here.
	ArtifactPath string

	// TablePath points to a reference CSV to fit in-memory. Only
	// consulted when ArtifactPath is empty.
	TablePath string

	once sync.Once
	idx  *Index
	err  error
}

// Name resolves a colour to its name. It fails only when the
// nearest-neighbour fallback is needed and the index cannot be obtained,
// in which case the error wraps ErrIndexUnavailable.
func (n *Namer) Name(c colour.RGB) (string, error) {
	if name, ok := ExactName(c); ok {
		return name, nil
	}

	n.once.Do(n.load)
	if n.err != nil {
		return "", n.err
	}
	return n.idx.Nearest(c), nil
}

// Index returns the underlying nearest-neighbour index, loading it if
// necessary.
func (n *Namer) Index() (*Index, error) {
	n.once.Do(n.load)
	return n.idx, n.err
}

func (n *Namer) load() {
	switch {
	case n.ArtifactPath != "":
		idx, err := LoadIndex(n.ArtifactPath)
		if err != nil {
			n.err = fmt.Errorf("%w: %v", ErrIndexUnavailable, err)
			return
		}
		n.idx = idx
	case n.TablePath != "":
		entries, err := LoadTable(n.TablePath)
		if err != nil {
			n.err = fmt.Errorf("%w: %v", ErrIndexUnavailable, err)
			return
		}
		n.idx, n.err = n.fit(entries)
	default:
		entries, err := BuiltinTable()
		if err != nil {
			n.err = fmt.Errorf("%w: %v", ErrIndexUnavailable, err)
			return
		}
		n.idx, n.err = n.fit(entries)
	}
}

func (n *Namer) fit(entries []Entry) (*Index, error) {
	idx, err := NewIndex(entries)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIndexUnavailable, err)
	}
	return idx, nil
}

// defaultNamer backs the package-level Name function. It is process-wide
// and read-only after its index is built.
var defaultNamer = &Namer{}

// Name resolves a colour using the shared process-wide Namer.
func Name(c colour.RGB) (string, error) {
	return defaultNamer.Name(c)
}

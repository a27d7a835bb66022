package primarycolors

import (
	"errors"

	"github.com/vimaki/colors-of-paintings/internal/naming"
)

var (
	// ErrInvalidInput reports an argument that cannot be used at all,
	// such as an empty image path or an image without enough distinct
	// colours for the requested cluster count.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidFormat reports an image path whose extension is not in
	// the supported raster format allow-list.
	ErrInvalidFormat = errors.New("unsupported image format")

	// ErrOutOfRange reports a colour count outside the range 1 to 20.
	ErrOutOfRange = errors.New("colour count must be in the range 1 to 20")

	// ErrIndexUnavailable reports that the colour-naming backend could
	// not be loaded. It is only possible when a visualization is
	// requested.
	ErrIndexUnavailable = naming.ErrIndexUnavailable
)

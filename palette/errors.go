package palette

import "errors"

var (
	// ErrBitDepth indicates a requested palette bit depth outside [1, 24].
	ErrBitDepth = errors.New("palette: bit depth must be between 1 and 24")
	// ErrUnknownMode indicates ParseMode was given a name that is not one
	// of morton, hilbert, or raw.
	ErrUnknownMode = errors.New("palette: unknown enumeration mode")
	// ErrUnknownOrder indicates ParseOrder was given a name that is not
	// one of none, hue, or random.
	ErrUnknownOrder = errors.New("palette: unknown ordering")
)

package canvas

import "errors"

var (
	// ErrBadDimensions indicates a non-positive canvas width or height.
	ErrBadDimensions = errors.New("canvas: width and height must be positive")
	// ErrPixelOutOfRange indicates the pixel iterator yielded a coordinate
	// outside the canvas.
	ErrPixelOutOfRange = errors.New("canvas: pixel coordinate out of range")
)

package canvas

import (
	"fmt"
	"image"
	stdcolor "image/color"
	"image/png"
	"io"

	"github.com/tavianator/kdforest/color"
)

// Pixels is a range-over-func iterator over filled pixels: each yielded
// triple is a grid coordinate plus the packed 0xRRGGBB value placed there.
type Pixels func(yield func(x, y int, srgb uint32) bool)

// Encode writes a width*height 8-bit RGB PNG of pixels to w. Every
// coordinate the iterator yields must lie inside the canvas; coordinates
// it never yields come out opaque black.
func Encode(w io.Writer, width, height int, pixels Pixels) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrBadDimensions, width, height)
	}

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 0xFF
	}

	var rangeErr error
	pixels(func(x, y int, srgb uint32) bool {
		if x < 0 || x >= width || y < 0 || y >= height {
			rangeErr = fmt.Errorf("%w: (%d, %d) on a %dx%d canvas", ErrPixelOutOfRange, x, y, width, height)
			return false
		}
		r, g, b := color.Unpack(srgb)
		img.SetNRGBA(x, y, stdcolor.NRGBA{R: r, G: g, B: b, A: 0xFF})
		return true
	})
	if rangeErr != nil {
		return rangeErr
	}

	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("canvas: %w", err)
	}
	return nil
}

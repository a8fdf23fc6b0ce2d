package canvas_test

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tavianator/kdforest/canvas"
)

func TestEncodeRoundTrip(t *testing.T) {
	colors := map[[2]int]uint32{
		{0, 0}: 0xFF0000,
		{1, 0}: 0x00FF00,
		{0, 1}: 0x0000FF,
		{1, 1}: 0x123456,
	}

	var buf bytes.Buffer
	err := canvas.Encode(&buf, 2, 2, func(yield func(x, y int, srgb uint32) bool) {
		for xy, c := range colors {
			if !yield(xy[0], xy[1], c) {
				return
			}
		}
	})
	require.NoError(t, err)

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	require.Equal(t, 2, img.Bounds().Dx())
	require.Equal(t, 2, img.Bounds().Dy())

	for xy, c := range colors {
		r, g, b, a := img.At(xy[0], xy[1]).RGBA()
		assert.Equal(t, uint32(c>>16&0xFF), r>>8, "red at %v", xy)
		assert.Equal(t, uint32(c>>8&0xFF), g>>8, "green at %v", xy)
		assert.Equal(t, uint32(c&0xFF), b>>8, "blue at %v", xy)
		assert.Equal(t, uint32(0xFF), a>>8, "alpha at %v", xy)
	}
}

func TestEncodeUnfilledPixelsAreBlack(t *testing.T) {
	var buf bytes.Buffer
	err := canvas.Encode(&buf, 2, 1, func(yield func(x, y int, srgb uint32) bool) {
		yield(0, 0, 0xFFFFFF)
	})
	require.NoError(t, err)

	img, err := png.Decode(&buf)
	require.NoError(t, err)

	r, g, b, a := img.At(1, 0).RGBA()
	assert.Zero(t, r)
	assert.Zero(t, g)
	assert.Zero(t, b)
	assert.Equal(t, uint32(0xFF), a>>8)
}

func TestEncodeRejectsBadDimensions(t *testing.T) {
	err := canvas.Encode(&bytes.Buffer{}, 0, 4, func(yield func(x, y int, srgb uint32) bool) {})
	assert.ErrorIs(t, err, canvas.ErrBadDimensions)
}

func TestEncodeRejectsOutOfRangePixel(t *testing.T) {
	err := canvas.Encode(&bytes.Buffer{}, 2, 2, func(yield func(x, y int, srgb uint32) bool) {
		yield(5, 0, 0xFFFFFF)
	})
	assert.ErrorIs(t, err, canvas.ErrPixelOutOfRange)
}

// Package canvas encodes a placement engine's output as a PNG image.
//
// The encoder never sees the engine or the forest: it consumes a
// caller-supplied iterator over (x, y, sRGB) triples — typically the
// engine's filled-pixel iterator joined with the sRGB value recorded at
// each placement — and writes an 8-bit RGB PNG. Pixels the iterator never
// yields stay opaque black, so a partially filled canvas still encodes.
//
// Errors:
//
//   - ErrBadDimensions: non-positive width or height.
//   - ErrPixelOutOfRange: the iterator yielded a coordinate outside the
//     canvas.
//
// Anything the underlying PNG encoder or writer reports is wrapped and
// passed through unchanged.
package canvas

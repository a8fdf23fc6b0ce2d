// Package palette enumerates every color of a given bit depth exactly once
// and hands the placement engine an ordered stream of 3-D points.
//
// What:
//
//   - Generate: bit-depth palette enumeration, ordering, and color-space
//     conversion in one call, returning the point stream plus the parallel
//     packed sRGB values for later encoding.
//   - Mode: how the bit-depth index maps onto the three channels — Morton
//     bit interleaving, a compact Hilbert curve walk, or raw per-channel
//     chunks.
//   - Order: the final arrangement of the enumerated colors — as
//     enumerated, sorted by hue angle, or Fisher-Yates shuffled.
//
// Bits are allocated to channels from most to least perceptually
// important: green first, then red, then blue, so a 16-bit palette gets
// 6/5/5 bits of green/red/blue.
//
// Determinism: the shuffle draws from a rand.Rand seeded with the caller's
// explicit seed, never an ambient source, mirroring the placement engine's
// RNG contract.
//
// Errors:
//
//   - ErrBitDepth: bit depth outside [1, 24].
//   - ErrUnknownMode, ErrUnknownOrder: ParseMode/ParseOrder given an
//     unrecognized name.
package palette

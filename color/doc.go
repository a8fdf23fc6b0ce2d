// Package color converts packed 24-bit sRGB values into the 3-D Euclidean
// points the placement engine consumes.
//
// What:
//
//   - Space: the one-method conversion interface (ToPoint).
//   - RGB: raw sRGB channels scaled to [0, 1] — fast, perceptually poor.
//   - Lab: CIE L*a*b* via linearized sRGB and the D65 white point.
//   - Luv: CIE L*u*v* via the same XYZ intermediate.
//
// Why:
//
//   - Nearest-neighbor placement in L*a*b*/L*u*v* makes "closest color"
//     track human perception; plain RGB is kept as a baseline and a cheap
//     debugging mode.
//
// Errors:
//
//   - ErrUnknownSpace: ParseSpace was given a name it does not recognize.
//
// The conversions here feed package placement only through core.Point;
// nothing in this package knows about pixels, forests, or palettes.
package color

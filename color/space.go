package color

import (
	"fmt"
	"math"
	"strings"

	"github.com/tavianator/kdforest/core"
)

// Space converts a packed 0xRRGGBB value into a point in some 3-D
// Euclidean color space. Implementations must be pure functions of their
// input so that the same palette always produces the same point stream.
type Space interface {
	// ToPoint converts srgb (0xRRGGBB, upper byte ignored) into a point.
	ToPoint(srgb uint32) core.Point

	// Name returns the space's canonical flag spelling (rgb, lab, luv).
	Name() string
}

// Unpack splits a packed 0xRRGGBB value into its three 8-bit channels.
func Unpack(srgb uint32) (r, g, b uint8) {
	return uint8(srgb >> 16), uint8(srgb >> 8), uint8(srgb)
}

// ParseSpace maps a flag spelling (rgb, lab, luv; case-insensitive) to its
// Space, or returns ErrUnknownSpace.
func ParseSpace(name string) (Space, error) {
	switch strings.ToLower(name) {
	case "rgb":
		return RGB{}, nil
	case "lab":
		return Lab{}, nil
	case "luv":
		return Luv{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSpace, name)
	}
}

// RGB is the identity space: each channel scaled to [0, 1], no gamma
// correction, no perceptual weighting.
type RGB struct{}

// ToPoint implements Space.
func (RGB) ToPoint(srgb uint32) core.Point {
	r, g, b := Unpack(srgb)
	return core.Point{float64(r) / 255, float64(g) / 255, float64(b) / 255}
}

// Name implements Space.
func (RGB) Name() string { return "rgb" }

// srgbInv is the inverse sRGB gamma ramp, mapping a [0, 1] channel to
// linear light.
func srgbInv(t float64) float64 {
	if t <= 0.040449936 {
		return t / 12.92
	}
	return math.Pow((t+0.055)/1.055, 2.4)
}

// white is the sRGB white point (CIE D65) in XYZ coordinates: toXYZ of
// 0xFFFFFF.
var white = [3]float64{0.9504060171449392, 0.9999085943425312, 1.089062231497274}

// toXYZ linearizes srgb and applies the sRGB-to-XYZ matrix.
func toXYZ(srgb uint32) (x, y, z float64) {
	ri, gi, bi := Unpack(srgb)
	r := srgbInv(float64(ri) / 255)
	g := srgbInv(float64(gi) / 255)
	b := srgbInv(float64(bi) / 255)

	x = 0.4123808838268995*r + 0.3575728355732478*g + 0.1804522977447919*b
	y = 0.2126198631048975*r + 0.7151387878413206*g + 0.0721499433963131*b
	z = 0.0193434956789248*r + 0.1192121694056356*g + 0.9505065664127130*b
	return x, y, z
}

// labF is the shared L*a*b*/L*u*v* lightness ramp.
func labF(t float64) float64 {
	if t > 216.0/24389.0 {
		return math.Cbrt(t)
	}
	return 841.0*t/108.0 + 4.0/29.0
}

// Lab is the CIE L*a*b* space relative to the D65 white point.
type Lab struct{}

// ToPoint implements Space.
func (Lab) ToPoint(srgb uint32) core.Point {
	x, y, z := toXYZ(srgb)

	fx := labF(x / white[0])
	fy := labF(y / white[1])
	fz := labF(z / white[2])

	return core.Point{
		116.0*fy - 16.0,
		500.0 * (fx - fy),
		200.0 * (fy - fz),
	}
}

// Name implements Space.
func (Lab) Name() string { return "lab" }

// Luv is the CIE L*u*v* space relative to the D65 white point.
type Luv struct{}

// ToPoint implements Space.
func (Luv) ToPoint(srgb uint32) core.Point {
	x, y, z := toXYZ(srgb)

	uvDenom := x + 15.0*y + 3.0*z
	if uvDenom == 0.0 {
		return core.Point{}
	}

	whiteUVDenom := white[0] + 16.0*white[1] + 3.0*white[2]

	fy := labF(y / white[1])
	uPrime := 4.0 * x / uvDenom
	unPrime := 4.0 * white[0] / whiteUVDenom
	vPrime := 9.0 * y / uvDenom
	vnPrime := 9.0 * white[1] / whiteUVDenom

	l := 116.0*fy - 16.0
	return core.Point{
		l,
		13.0 * l * (uPrime - unPrime),
		13.0 * l * (vPrime - vnPrime),
	}
}

// Name implements Space.
func (Luv) Name() string { return "luv" }

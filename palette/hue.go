package palette

import (
	"math"

	"github.com/tavianator/kdforest/color"
)

// hue returns the hue angle of a packed sRGB value in [0, 2*pi): the angle
// of the (R, G, B) triple projected onto the plane perpendicular to the
// gray axis. Grays (G == B, 2R == G + B) land at 0.
func hue(srgb uint32) float64 {
	r, g, b := color.Unpack(srgb)

	angle := math.Atan2(math.Sqrt(3)*float64(int(g)-int(b)), float64(2*int(r)-int(g)-int(b)))
	if angle < 0 {
		angle += 2 * math.Pi
	}
	return angle
}

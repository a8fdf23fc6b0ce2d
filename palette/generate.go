package palette

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"

	"github.com/tavianator/kdforest/color"
	"github.com/tavianator/kdforest/core"
)

// Mode selects how a palette index maps onto the green/red/blue channels.
type Mode int

const (
	// ModeMorton interleaves the index's bits across the channels,
	// lowest bit first.
	ModeMorton Mode = iota
	// ModeHilbert walks a compact Hilbert curve through the channel box.
	ModeHilbert
	// ModeRaw slices the index into contiguous per-channel chunks.
	ModeRaw
)

// String returns the mode's canonical flag spelling.
func (m Mode) String() string {
	switch m {
	case ModeMorton:
		return "morton"
	case ModeHilbert:
		return "hilbert"
	default:
		return "raw"
	}
}

// ParseMode maps a flag spelling (morton, hilbert, raw; case-insensitive)
// to its Mode, or returns ErrUnknownMode.
func ParseMode(name string) (Mode, error) {
	switch strings.ToLower(name) {
	case "morton":
		return ModeMorton, nil
	case "hilbert":
		return ModeHilbert, nil
	case "raw":
		return ModeRaw, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMode, name)
	}
}

// Order selects the final arrangement of the enumerated colors.
type Order int

const (
	// OrderNone keeps the enumeration order of the chosen Mode.
	OrderNone Order = iota
	// OrderHue sorts colors by hue angle, ascending.
	OrderHue
	// OrderRandom applies a seeded Fisher-Yates shuffle.
	OrderRandom
)

// String returns the order's canonical flag spelling.
func (o Order) String() string {
	switch o {
	case OrderHue:
		return "hue"
	case OrderRandom:
		return "random"
	default:
		return "none"
	}
}

// ParseOrder maps a flag spelling (none, hue, random; case-insensitive) to
// its Order, or returns ErrUnknownOrder.
func ParseOrder(name string) (Order, error) {
	switch strings.ToLower(name) {
	case "none":
		return OrderNone, nil
	case "hue":
		return OrderHue, nil
	case "random":
		return OrderRandom, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownOrder, name)
	}
}

// channelBits allocates bitDepth bits to the green, red, and blue channels
// in that priority order, so non-multiples of three favor the channels the
// eye weighs most.
func channelBits(bitDepth int) [3]int {
	var grb [3]int
	for i := range grb {
		grb[i] = (bitDepth + 2 - i) / 3
	}
	return grb
}

// pack widens a green/red/blue triple from its per-channel bit counts to 8
// bits each and packs it as 0xRRGGBB.
func pack(grb [3]uint32, bits [3]int) uint32 {
	g := grb[0] << (16 - bits[0])
	r := grb[1] << (24 - bits[1])
	b := grb[2] << (8 - bits[2])
	return r | g | b
}

// Generate enumerates all 2^bitDepth colors of the palette in the given
// mode, arranges them in the given order, and converts each to a point in
// space. It returns the ordered point stream and the parallel packed sRGB
// values (points[i] is space.ToPoint(srgb[i])), ready to feed a placement
// engine and later an image encoder.
//
// seed drives the OrderRandom shuffle and is ignored by the other orders;
// equal arguments always produce equal output.
func Generate(bitDepth int, mode Mode, order Order, space color.Space, seed uint32) (points []core.Point, srgb []uint32, err error) {
	if bitDepth < 1 || bitDepth > 24 {
		return nil, nil, fmt.Errorf("%w: %d", ErrBitDepth, bitDepth)
	}

	bits := channelBits(bitDepth)
	n := 1 << bitDepth

	srgb = make([]uint32, n)
	for i := 0; i < n; i++ {
		idx := uint32(i)
		var grb [3]uint32

		switch mode {
		case ModeMorton:
			for j := 0; j < bitDepth; j++ {
				grb[j%3] |= (idx & (1 << j)) >> (j - j/3)
			}
		case ModeHilbert:
			grb = hilbertPoint(bits, idx)
		default:
			rem := idx
			for j := 0; j < 3; j++ {
				grb[j] = rem & ((1 << bits[j]) - 1)
				rem >>= bits[j]
			}
		}

		srgb[i] = pack(grb, bits)
	}

	switch order {
	case OrderHue:
		sort.SliceStable(srgb, func(i, j int) bool {
			return hue(srgb[i]) < hue(srgb[j])
		})
	case OrderRandom:
		rng := rand.New(rand.NewSource(int64(seed)))
		for i := n - 1; i > 0; i-- {
			j := rng.Intn(i + 1)
			srgb[i], srgb[j] = srgb[j], srgb[i]
		}
	}

	points = make([]core.Point, n)
	for i, c := range srgb {
		points[i] = space.ToPoint(c)
	}
	return points, srgb, nil
}

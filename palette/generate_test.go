package palette

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tavianator/kdforest/color"
)

func TestChannelBits(t *testing.T) {
	assert.Equal(t, [3]int{8, 8, 8}, channelBits(24))
	assert.Equal(t, [3]int{6, 5, 5}, channelBits(16))
	assert.Equal(t, [3]int{3, 3, 3}, channelBits(9))
	assert.Equal(t, [3]int{1, 0, 0}, channelBits(1))
}

// Every mode enumerates the same color set: a bijection from indices onto
// the bit-depth box, just walked in a different order.
func TestModesEnumerateSameColorSet(t *testing.T) {
	const bitDepth = 9

	sets := make(map[Mode]map[uint32]bool)
	for _, mode := range []Mode{ModeMorton, ModeHilbert, ModeRaw} {
		_, srgb, err := Generate(bitDepth, mode, OrderNone, color.RGB{}, 0)
		require.NoError(t, err)
		require.Len(t, srgb, 1<<bitDepth)

		seen := make(map[uint32]bool, len(srgb))
		for _, c := range srgb {
			assert.False(t, seen[c], "mode %v repeats color %06x", mode, c)
			seen[c] = true
			assert.LessOrEqual(t, c, uint32(0xFFFFFF))
		}
		sets[mode] = seen
	}

	assert.Equal(t, sets[ModeMorton], sets[ModeHilbert])
	assert.Equal(t, sets[ModeMorton], sets[ModeRaw])
}

func TestRawModePacking(t *testing.T) {
	_, srgb, err := Generate(6, ModeRaw, OrderNone, color.RGB{}, 0)
	require.NoError(t, err)

	// Index bits are consumed green-first, so index 1 is the smallest
	// green step and index 4 (past green's 2 bits) the smallest red step.
	assert.Equal(t, uint32(0x000000), srgb[0])
	assert.Equal(t, uint32(0x004000), srgb[1])
	assert.Equal(t, uint32(0x400000), srgb[4])
	assert.Equal(t, uint32(0x000040), srgb[16])
}

// unpackChannels undoes pack: the green/red/blue values at their native
// bit widths.
func unpackChannels(c uint32, bits [3]int) [3]uint32 {
	return [3]uint32{
		(c >> 8 & 0xFF) >> (8 - bits[0]),
		(c >> 16) >> (8 - bits[1]),
		(c & 0xFF) >> (8 - bits[2]),
	}
}

// A Hilbert walk moves through the channel box one unit step at a time,
// even with unequal per-channel extents.
func TestHilbertConsecutiveColorsAreAdjacent(t *testing.T) {
	const bitDepth = 7
	bits := channelBits(bitDepth)

	_, srgb, err := Generate(bitDepth, ModeHilbert, OrderNone, color.RGB{}, 0)
	require.NoError(t, err)

	prev := unpackChannels(srgb[0], bits)
	for _, c := range srgb[1:] {
		cur := unpackChannels(c, bits)
		steps := 0
		for j := 0; j < 3; j++ {
			d := int(cur[j]) - int(prev[j])
			if d != 0 {
				steps++
				assert.True(t, d == 1 || d == -1, "channel %d jumped by %d", j, d)
			}
		}
		assert.Equal(t, 1, steps, "%v -> %v is not a unit step", prev, cur)
		prev = cur
	}
}

func TestHueOrderIsMonotone(t *testing.T) {
	_, srgb, err := Generate(9, ModeHilbert, OrderHue, color.RGB{}, 0)
	require.NoError(t, err)

	prev := -1.0
	for _, c := range srgb {
		h := hue(c)
		assert.GreaterOrEqual(t, h, prev)
		prev = h
	}
}

func TestRandomOrderIsSeededAndComplete(t *testing.T) {
	_, base, err := Generate(8, ModeMorton, OrderNone, color.RGB{}, 0)
	require.NoError(t, err)
	_, first, err := Generate(8, ModeMorton, OrderRandom, color.RGB{}, 42)
	require.NoError(t, err)
	_, second, err := Generate(8, ModeMorton, OrderRandom, color.RGB{}, 42)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.ElementsMatch(t, base, first)
}

func TestPointsParallelColors(t *testing.T) {
	space := color.Lab{}
	points, srgb, err := Generate(6, ModeHilbert, OrderHue, space, 0)
	require.NoError(t, err)
	require.Len(t, points, len(srgb))

	for i := range srgb {
		assert.Equal(t, space.ToPoint(srgb[i]), points[i])
	}
}

func TestGenerateRejectsBadBitDepth(t *testing.T) {
	for _, depth := range []int{0, -3, 25} {
		_, _, err := Generate(depth, ModeMorton, OrderNone, color.RGB{}, 0)
		assert.ErrorIs(t, err, ErrBitDepth)
	}
}

func TestParseModeAndOrder(t *testing.T) {
	for _, name := range []string{"morton", "hilbert", "raw"} {
		mode, err := ParseMode(name)
		require.NoError(t, err)
		assert.Equal(t, name, mode.String())
	}
	_, err := ParseMode("zigzag")
	assert.ErrorIs(t, err, ErrUnknownMode)

	for _, name := range []string{"none", "hue", "random"} {
		order, err := ParseOrder(name)
		require.NoError(t, err)
		assert.Equal(t, name, order.String())
	}
	_, err = ParseOrder("sorted")
	assert.ErrorIs(t, err, ErrUnknownOrder)
}

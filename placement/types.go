package placement

import (
	"math/rand"

	"github.com/tavianator/kdforest/core"
	"github.com/tavianator/kdforest/kdforest"
)

// pixelCoord identifies a pixel on the engine's grid. It is stored as the
// Payload of every handle the engine hands to its forest, so that given a
// handle returned by Forest.Nearest the engine can find the pixel it sits
// on.
type pixelCoord struct {
	x, y int
}

// pixel is one cell of the engine's W*H grid.
type pixel struct {
	filled bool
	// handle is non-nil from the moment this pixel is filled until the
	// forest marks its handle removed, at which point it reverts to nil
	// and stays that way: empty -> present -> absent, no further changes.
	handle *core.Handle
}

// ProgressFunc is an advisory callback the engine invokes every
// ProgressStride placements. It must not mutate engine or forest state and
// has no return value. filled is the number of pixels placed so far,
// liveCount is the forest's current live handle count, and liveCountMax is
// the running maximum of liveCount observed so far.
type ProgressFunc func(filled, liveCount, liveCountMax int)

// Options configures an Engine.
type Options struct {
	// ProgressStride is how many placements elapse between Progress calls.
	// Zero (the default) disables progress reporting entirely.
	ProgressStride int
	// Progress is invoked every ProgressStride placements, if non-nil.
	Progress ProgressFunc
}

// Option is a functional option for New.
type Option func(*Options)

// WithProgress installs fn as the progress callback.
func WithProgress(fn ProgressFunc) Option {
	return func(o *Options) {
		o.Progress = fn
	}
}

// WithProgressStride sets how many placements elapse between progress
// calls. A non-positive stride disables progress reporting.
func WithProgressStride(stride int) Option {
	return func(o *Options) {
		o.ProgressStride = stride
	}
}

// DefaultOptions returns an Options with progress reporting disabled.
func DefaultOptions() Options {
	return Options{ProgressStride: 0, Progress: nil}
}

// Engine owns a W*H pixel grid and the one forest that backs its
// nearest-neighbor queries. The zero value is not ready for use; call New.
type Engine struct {
	width, height int
	pixels        []pixel
	forest        *kdforest.Forest
	rng           *rand.Rand

	startX, startY int
	placed         int
	liveMax        int

	opts Options
}

// Width returns the grid's width in pixels.
func (e *Engine) Width() int {
	return e.width
}

// Height returns the grid's height in pixels.
func (e *Engine) Height() int {
	return e.height
}

// FillFraction returns the fraction of the grid's pixels placed so far, in
// [0, 1].
func (e *Engine) FillFraction() float64 {
	return float64(e.placed) / float64(len(e.pixels))
}

// LiveCountMax returns the largest value LiveCount has taken across every
// placement made so far (the forest's peak boundary size).
func (e *Engine) LiveCountMax() int {
	return e.liveMax
}

// LiveCount returns the forest's current live handle count.
func (e *Engine) LiveCount() int {
	return e.forest.LiveCount()
}

func (e *Engine) index(x, y int) int {
	return y*e.width + x
}

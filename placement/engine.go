package placement

import (
	"fmt"
	"math/rand"

	"github.com/tavianator/kdforest/core"
	"github.com/tavianator/kdforest/kdforest"
)

// New constructs an Engine over a width*height grid, with the first
// placement landing at (startX, startY). rng is the only source of
// randomness the engine will ever use: it is threaded explicitly, never
// read from an ambient global, so that a fixed seed and input stream
// reproduce a bit-identical placement map.
//
// Grid dimensions and the start pixel are programmer-supplied geometry,
// not runtime input: an invalid width, height, or start pixel is a caller
// bug checked only by core.DebugAssert in debug builds, not a returned
// error.
func New(width, height, startX, startY int, rng *rand.Rand, opts ...Option) *Engine {
	core.DebugAssert(width > 0 && height > 0, "placement.New: width and height must be positive")
	core.DebugAssert(startX >= 0 && startX < width, "placement.New: start pixel x out of grid")
	core.DebugAssert(startY >= 0 && startY < height, "placement.New: start pixel y out of grid")

	options := DefaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	return &Engine{
		width:  width,
		height: height,
		pixels: make([]pixel, width*height),
		forest: kdforest.New(),
		rng:    rng,
		startX: startX,
		startY: startY,
		opts:   options,
	}
}

// Place assigns target a grid pixel and returns the pixel it landed on and
// the handle now holding it in the forest. The very first call always
// lands on the engine's start pixel; every later call queries the forest
// for the nearest live handle to target and picks uniformly among the
// empty 8-neighbors of the pixel that handle sits on.
//
// The only error Place can return is ErrExhausted (the grid is full) or
// whatever Forest.Insert reports if a rebuild could not allocate; in the
// latter case the grid and forest are left exactly as before the call.
func (e *Engine) Place(target core.Point) (x, y int, handle *core.Handle, err error) {
	if e.placed >= len(e.pixels) {
		return 0, 0, nil, ErrExhausted
	}

	var qx, qy int
	if e.placed == 0 {
		qx, qy = e.startX, e.startY
	} else {
		nearest, ok := e.forest.Nearest(target)
		core.DebugAssert(ok, "placement: Nearest returned none while pixels remain unfilled")

		coord := nearest.Payload.(pixelCoord)
		nx, ny, found := e.randomEmptyNeighbor(coord.x, coord.y)
		core.DebugAssert(found, "placement: boundary handle has no empty neighbor while grid not exhausted")
		qx, qy = nx, ny
	}

	h := core.NewHandle(target, pixelCoord{x: qx, y: qy})
	if insertErr := e.forest.Insert(h); insertErr != nil {
		return 0, 0, nil, fmt.Errorf("placement: %w", insertErr)
	}

	idx := e.index(qx, qy)
	e.pixels[idx].filled = true
	e.pixels[idx].handle = h
	e.placed++

	e.pruneBoundary(qx, qy)
	e.debugCheckBoundary()

	if live := e.forest.LiveCount(); live > e.liveMax {
		e.liveMax = live
	}

	e.reportProgress()

	return qx, qy, h, nil
}

// pruneBoundary implements the "only-boundary-stays-in-forest" rule: every
// pixel in the closed 3x3 neighborhood of the pixel just filled (including
// that pixel itself) is removed from the forest once it is filled, still
// holds a live handle, and has no empty 8-neighbor of its own.
func (e *Engine) pruneBoundary(qx, qy int) {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			rx, ry := qx+dx, qy+dy
			if !e.inBounds(rx, ry) {
				continue
			}
			idx := e.index(rx, ry)
			px := &e.pixels[idx]
			if !px.filled || px.handle == nil {
				continue
			}
			if e.hasEmptyNeighbor(rx, ry) {
				continue
			}
			e.forest.MarkRemoved(px.handle)
			px.handle = nil
		}
	}
}

func (e *Engine) inBounds(x, y int) bool {
	return x >= 0 && x < e.width && y >= 0 && y < e.height
}

// hasEmptyNeighbor reports whether (x, y) has at least one 8-connected
// neighbor that has not yet been filled.
func (e *Engine) hasEmptyNeighbor(x, y int) bool {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if e.inBounds(nx, ny) && !e.pixels[e.index(nx, ny)].filled {
				return true
			}
		}
	}
	return false
}

// randomEmptyNeighbor enumerates the empty 8-neighbors of (x, y) in
// canonical scan order (dy from -1 to 1, dx from -1 to 1, skipping (0,0)),
// draws an index uniformly from [0, k) via e.rng, and returns the neighbor
// at that index. This canonicalize-then-sample order is what makes the
// engine's output deterministic given a fixed RNG and input stream,
// regardless of any implementation-specific iteration order.
func (e *Engine) randomEmptyNeighbor(x, y int) (nx, ny int, ok bool) {
	var candidates []pixelCoord
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			cx, cy := x+dx, y+dy
			if e.inBounds(cx, cy) && !e.pixels[e.index(cx, cy)].filled {
				candidates = append(candidates, pixelCoord{x: cx, y: cy})
			}
		}
	}
	if len(candidates) == 0 {
		return 0, 0, false
	}
	chosen := candidates[e.rng.Intn(len(candidates))]
	return chosen.x, chosen.y, true
}

func (e *Engine) reportProgress() {
	if e.opts.Progress == nil || e.opts.ProgressStride <= 0 {
		return
	}
	if e.placed%e.opts.ProgressStride == 0 {
		e.opts.Progress(e.placed, e.forest.LiveCount(), e.liveMax)
	}
}

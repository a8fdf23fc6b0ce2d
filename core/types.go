// Package core defines the Point and Handle types shared by kdtree,
// kdforest, and placement, plus the DebugAssert helper used to check
// caller-precondition invariants in debug builds.
//
// This file declares Dim, Point, Handle, and the Handle lifecycle methods
// (MarkInserted, MarkRemoved) that only kdforest is meant to call.
package core

// Dim is the fixed spatial dimension of every Point and Handle in this
// system. The placement engine works in sRGB/Lab/Luv color space, all of
// which are 3-dimensional; kdtree and kdforest never assume any particular
// meaning for the three coordinates.
const Dim = 3

// Point is a Dim-dimensional real-valued coordinate tuple. All geometry is
// Euclidean and distances are squared to avoid square roots, per the
// coordinate-access-only contract: Point exposes no operation beyond
// indexing and squared distance.
type Point [Dim]float64

// SquaredDistance returns the squared Euclidean distance between p and q.
// Squaring avoids a square root on every comparison; callers that need
// actual distances take the square root themselves.
func (p Point) SquaredDistance(q Point) float64 {
	var sum float64
	for i := 0; i < Dim; i++ {
		d := p[i] - q[i]
		sum += d * d
	}

	return sum
}

// Handle represents a point that has been offered to a forest. Its
// coordinates are fixed at construction; only its present and live bits
// change afterward, and only via MarkInserted/MarkRemoved. Handle identity
// is its address: nothing in this stack ever copies a *Handle once it has
// been constructed, so callers may safely hold a *Handle across forest
// rebuilds.
type Handle struct {
	coords Point

	// live is true once inserted and cleared by MarkRemoved; false again
	// once the handle is tombstoned.
	live bool

	// present is true once the handle has been inserted into any forest.
	// Unlike live, present is never cleared.
	present bool

	// Payload is uninterpreted by kdtree and kdforest. The placement
	// package stores pixel coordinates here.
	Payload any
}

// NewHandle constructs a Handle over coords with the given payload. The
// returned Handle is neither present nor live until a forest's Insert
// method marks it so.
func NewHandle(coords Point, payload any) *Handle {
	return &Handle{coords: coords, Payload: payload}
}

// Point returns the handle's immutable coordinates.
func (h *Handle) Point() Point {
	return h.coords
}

// Live reports whether h currently counts toward nearest-neighbor queries.
func (h *Handle) Live() bool {
	return h.live
}

// Present reports whether h has ever been inserted into a forest.
func (h *Handle) Present() bool {
	return h.present
}

// MarkInserted sets both the present and live bits. It is exported for use
// by kdforest.Forest.Insert and should not be called directly by other
// code: calling it twice on the same handle is a caller-precondition
// violation (checked via DebugAssert in debug builds).
func (h *Handle) MarkInserted() {
	DebugAssert(!h.present, "MarkInserted called on an already-present handle")
	h.present = true
	h.live = true
}

// MarkRemoved clears the live bit without touching present or the tree
// structure that holds h. It is exported for use by
// kdforest.Forest.MarkRemoved and should not be called directly: calling it
// on a handle that was never inserted, or twice in a row, is a
// caller-precondition violation (checked via DebugAssert in debug builds).
func (h *Handle) MarkRemoved() {
	DebugAssert(h.present, "MarkRemoved called on a handle that was never inserted")
	DebugAssert(h.live, "MarkRemoved called on an already-removed handle")
	h.live = false
}

// Package placement implements the boundary-pruning pixel placement
// engine: a state machine that consumes an ordered stream of 3-D color
// points and assigns each one a grid pixel adjacent to its nearest
// already-placed neighbor, using package kdforest to answer "nearest" and
// keeping the forest's live population bounded to the boundary of the
// filled region.
//
// The engine never touches color directly: its input is whatever 3-D
// points the caller already converted into some Euclidean color space (see
// package color), and its output is grid coordinates plus the handle each
// point landed on. A caller building a full image pairs each placement
// with the sRGB value that produced its input point (see package canvas).
//
// Determinism: every random choice the engine makes is drawn from the
// *rand.Rand passed to New — never an ambient source — and candidate sets
// are canonicalized into scan order before sampling, so a fixed seed and
// input stream always reproduce the same placement map.
package placement

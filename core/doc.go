// Package core defines the shared data model for the kd-forest nearest
// neighbor stack: the fixed-dimension Point type and the Handle type that
// the kdtree, kdforest, and placement packages all build on.
//
// A Handle wraps an immutable 3-D coordinate plus two mutable bits (present,
// live) and an opaque Payload that only the owning package interprets. Once
// constructed, a Handle's address is its identity: callers that hold a
// *Handle may keep using it across forest rebuilds, insertions, and
// removals, because the forest never copies or moves a Handle once built
// (see package kdforest's doc comment for why this matters).
//
// Why a shared package:
//
//   - kdtree builds static trees over []*Handle and needs Point/SquaredDistance.
//   - kdforest mutates the present/live bits via MarkInserted/MarkRemoved.
//   - placement stores pixel coordinates in Handle.Payload and reads them back.
//
// None of those three packages own Handle outright, so it lives here, one
// level below all of them.
//
// Determinism:
//
//   - Point and Handle carry no hidden state that could vary between runs;
//     all randomness in this stack is confined to the placement package's
//     explicit RNG parameter.
//
// Errors:
//
//	This package defines no sentinel errors: Point and Handle carry no
//	validated invariants of their own. Caller-precondition violations (e.g.
//	marking an already-removed handle as removed again) are checked with
//	DebugAssert, not returned errors — see that function's doc comment.
package core

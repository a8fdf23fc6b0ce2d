package kdforest

import (
	"fmt"
	"math"
	"math/bits"

	"github.com/tavianator/kdforest/core"
	"github.com/tavianator/kdforest/kdtree"
)

// Forest is a dynamic nearest-neighbor structure built from a cascade of
// static k-d trees. The zero value is not ready for use; call New.
type Forest struct {
	// roots[i] is the tree at slot i, or nil if that slot is empty. len(roots)
	// is the forest's current slot count, shrinking only on a forced rebuild.
	roots []*kdtree.Tree

	liveCount  int
	totalCount int
}

// New returns an empty Forest.
func New() *Forest {
	return &Forest{}
}

// LiveCount returns the number of handles across all slots with the live
// bit set.
func (f *Forest) LiveCount() int {
	return f.liveCount
}

// TotalCount returns the number of handles across all slots regardless of
// live bit. It is monotonically non-decreasing between global rebuilds and
// resets to LiveCount() whenever one occurs.
func (f *Forest) TotalCount() int {
	return f.totalCount
}

// Insert places handle into the forest, setting its present and live bits,
// and restores the forest's slot invariants. A global rebuild is forced
// when, after accounting for this insertion, dead handles would equal or
// outnumber live ones (total+1 >= 2*(live+1)); otherwise the handle joins
// the lowest empty slot's cascade, which may itself carry forward handles
// from every lower slot.
//
// The only failure mode is a rebuild that cannot allocate the trees it
// needs; on failure the forest is left exactly as it was before the call.
// Real Go allocation failures are not recoverable the way the rest of this
// package's error handling assumes, so this method recovers from any panic
// raised while building new trees and reports it as ErrAllocation, the
// same convention encoding/gob uses to turn internal panics into errors at
// its public boundary.
func (f *Forest) Insert(handle *core.Handle) (err error) {
	savedRoots := append([]*kdtree.Tree(nil), f.roots...)
	savedLive, savedTotal := f.liveCount, f.totalCount
	defer func() {
		if r := recover(); r != nil {
			f.roots, f.liveCount, f.totalCount = savedRoots, savedLive, savedTotal
			err = fmt.Errorf("%w: %v", ErrAllocation, r)
		}
	}()

	forced := (f.totalCount + 1) >= 2*(f.liveCount+1)
	f.liveCount++

	var slot, bufSize int
	if forced {
		bufSize = f.liveCount
		f.totalCount = f.liveCount
		slot = len(f.roots)
	} else {
		f.totalCount++
		for slot = 0; slot < len(f.roots); slot++ {
			if f.roots[slot] == nil {
				break
			}
		}
		bufSize = 1 << uint(slot)
	}

	buffer := make([]*core.Handle, 0, bufSize)
	buffer = append(buffer, handle)
	if forced {
		for _, tr := range f.roots {
			buffer = tr.Collect(buffer, false)
		}
	} else {
		for i := 0; i < slot; i++ {
			buffer = f.roots[i].Collect(buffer, true)
		}
	}

	numSlots := bits.Len(uint(bufSize))
	if len(f.roots) < numSlots {
		grown := make([]*kdtree.Tree, numSlots)
		copy(grown, f.roots)
		f.roots = grown
	}

	offset := 0
	for i := 0; i < numSlots; i++ {
		chunk := 1 << uint(i)
		if bufSize&chunk != 0 {
			f.roots[i] = kdtree.Build(buffer[offset : offset+chunk])
			offset += chunk
		} else {
			f.roots[i] = nil
		}
	}

	if forced {
		f.roots = f.roots[:numSlots]
	}

	handle.MarkInserted()
	return nil
}

// MarkRemoved clears handle's live bit and decrements LiveCount, without
// touching any tree structure; the handle's slot is rebuilt only by a
// future Insert. Calling MarkRemoved on a handle that was never inserted,
// or that has already been removed, is a caller bug checked only by
// core.DebugAssert in debug builds.
func (f *Forest) MarkRemoved(handle *core.Handle) {
	core.DebugAssert(handle.Present(), "MarkRemoved called on a handle never inserted into this forest")
	core.DebugAssert(handle.Live(), "MarkRemoved called on an already-removed handle")

	handle.MarkRemoved()
	f.liveCount--
}

// Nearest returns the live handle with the smallest squared Euclidean
// distance to target, querying every non-empty slot and keeping the
// overall best; ok is false if the forest has no live handle.
func (f *Forest) Nearest(target core.Point) (handle *core.Handle, ok bool) {
	limitSq := math.Inf(1)
	var best *core.Handle

	for _, tr := range f.roots {
		if tr == nil {
			continue
		}
		h, d := tr.Nearest(target, limitSq)
		if h != nil {
			best = h
			limitSq = d
		}
	}

	return best, best != nil
}

// SlotSizes returns the handle count (live and dead) of each slot, with 0
// for an empty slot. Exposed for tests that check the forest's slot
// invariants directly; the placement engine and Nearest never need it.
func (f *Forest) SlotSizes() []int {
	sizes := make([]int, len(f.roots))
	for i, tr := range f.roots {
		sizes[i] = tr.Size()
	}
	return sizes
}

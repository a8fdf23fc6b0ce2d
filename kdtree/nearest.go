package kdtree

import (
	"math"

	"github.com/tavianator/kdforest/core"
)

// Nearest returns the live handle in t closest to target by squared
// Euclidean distance, and that squared distance. limitSq bounds the search
// from above: only handles strictly closer than limitSq are considered, and
// if none is, Nearest returns nil and limitSq unchanged (an empty tree
// returns nil and +Inf whatever limitSq is). Callers
// combining several trees (see package kdforest) can thread a running best
// across calls instead of rescanning from +Inf each time.
//
// Traversal is branch-and-bound: at each node splitting on its axis, the
// child on the same side as the target is probed first, and the far child
// is probed only if it could still contain something closer than the
// current best. Dead handles are skipped when updating the best but their
// subtrees are still descended, since a live descendant may still be
// closer than anything found so far.
func (t *Tree) Nearest(target core.Point, limitSq float64) (*core.Handle, float64) {
	if t == nil || t.root == nil {
		return nil, math.Inf(1)
	}

	var best *core.Handle
	t.root.nearest(target, 0, &best, &limitSq)
	return best, limitSq
}

func (n *node) nearest(target core.Point, axis int, best **core.Handle, limitSq *float64) {
	if n == nil {
		return
	}

	diff := target[axis] - n.handle.Point()[axis]
	diffSq := diff * diff

	if n.handle.Live() {
		d := n.handle.Point().SquaredDistance(target)
		if d < *limitSq {
			*best = n.handle
			*limitSq = d
		}
	}

	nextAxis := core.NextAxis(axis)
	if diff <= 0 {
		n.left.nearest(target, nextAxis, best, limitSq)
		if diffSq <= *limitSq {
			n.right.nearest(target, nextAxis, best, limitSq)
		}
	} else {
		n.right.nearest(target, nextAxis, best, limitSq)
		if diffSq <= *limitSq {
			n.left.nearest(target, nextAxis, best, limitSq)
		}
	}
}

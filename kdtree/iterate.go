package kdtree

import "github.com/tavianator/kdforest/core"

// All returns a range-over-func iterator yielding a read-only HandleView for
// every handle in t, live or dead, in pre-order (each node before its left
// and then its right subtree). Ordering is deterministic for a fixed tree but is otherwise an
// implementation detail callers should not depend on.
func (t *Tree) All() func(yield func(core.HandleView) bool) {
	return func(yield func(core.HandleView) bool) {
		if t == nil {
			return
		}
		t.root.walk(yield)
	}
}

func (n *node) walk(yield func(core.HandleView) bool) bool {
	if n == nil {
		return true
	}
	if !yield(core.ViewOf(n.handle)) {
		return false
	}
	if !n.left.walk(yield) {
		return false
	}
	return n.right.walk(yield)
}

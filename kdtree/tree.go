package kdtree

import "github.com/tavianator/kdforest/core"

// Tree is a static binary space partition over a fixed set of handles,
// splitting on axis core.NextAxis(parent axis) as it descends, starting
// from axis 0 at the root.
type Tree struct {
	root *node
	size int
}

type node struct {
	handle      *core.Handle
	left, right *node
}

// Size returns the number of handles the tree was built with (live and
// dead combined); this never changes after Build.
func (t *Tree) Size() int {
	if t == nil {
		return 0
	}
	return t.size
}

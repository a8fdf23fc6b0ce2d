package kdtree

import "github.com/tavianator/kdforest/core"

// Collect appends every handle in t to out and returns the extended slice,
// optionally skipping dead handles. Used by package kdforest to gather the
// handles of one or more slots before building a replacement tree over
// them; out is expected to have spare capacity for t.Size() handles (or
// fewer, if includeDead is false).
func (t *Tree) Collect(out []*core.Handle, includeDead bool) []*core.Handle {
	if t == nil {
		return out
	}
	return t.root.collect(out, includeDead)
}

func (n *node) collect(out []*core.Handle, includeDead bool) []*core.Handle {
	if n == nil {
		return out
	}
	if includeDead || n.handle.Live() {
		out = append(out, n.handle)
	}
	out = n.left.collect(out, includeDead)
	out = n.right.collect(out, includeDead)
	return out
}

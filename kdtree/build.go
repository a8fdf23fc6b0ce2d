package kdtree

import (
	"sort"

	"github.com/tavianator/kdforest/core"
)

// Build constructs a Tree over handles, starting the axis cycle at 0. The
// tree's in-order enumeration yields exactly the input multiset; at every
// internal node splitting on axis a, every handle in the left subtree has
// coordinate a no greater than the node's, and every handle in the right
// subtree has coordinate a no less than it.
//
// Build sorts handles along each of the core.Dim axes (O(n log n) each) and
// then recursively partitions those sorted views in place using one shared
// scratch buffer, for O(n log n) total time and O(core.Dim * n) space.
func Build(handles []*core.Handle) *Tree {
	n := len(handles)
	if n == 0 {
		return &Tree{}
	}

	buffers := make([][]*core.Handle, core.Dim)
	for axis := range buffers {
		buf := make([]*core.Handle, n)
		copy(buf, handles)
		axis := axis
		sort.Slice(buf, func(i, j int) bool {
			return buf[i].Point()[axis] < buf[j].Point()[axis]
		})
		buffers[axis] = buf
	}

	scratch := make([]*core.Handle, n)
	root := buildRecursive(buffers, scratch, n, 0)
	return &Tree{root: root, size: n}
}

// buildRecursive partitions the pre-sorted buffers in place:
// buffers[axis] is already sorted on axis and is split at
// its median without being rewritten; every other axis's buffer is
// compacted left-in-place, with elements that fall on the right copied
// through the shared scratch buffer and then into the right subtree's view
// of that axis's buffer (which aliases the tail of the same backing
// array). Reusing one scratch buffer across the whole recursion keeps
// space at O(core.Dim * n) instead of O(core.Dim * n * log n).
func buildRecursive(buffers [][]*core.Handle, scratch []*core.Handle, size int, axis int) *node {
	if size == 0 {
		return nil
	}

	split := size / 2
	leftSize := split
	rightSize := size - leftSize - 1
	root := buffers[axis][split]

	leftSet := make(map[*core.Handle]struct{}, leftSize)
	for i := 0; i < leftSize; i++ {
		leftSet[buffers[axis][i]] = struct{}{}
	}

	rightBuffers := make([][]*core.Handle, core.Dim)
	for i := 0; i < core.Dim; i++ {
		rightBuffers[i] = buffers[i][leftSize+1:]
	}

	for i := 0; i < core.Dim; i++ {
		if i == axis {
			continue
		}

		buf := buffers[i]
		k, skip := 0, 0
		for j := 0; j < size; j++ {
			if _, isLeft := leftSet[buf[j]]; isLeft {
				buf[j-skip] = buf[j]
			} else {
				if buf[j] != root {
					scratch[k] = buf[j]
					k++
				}
				skip++
			}
		}
		copy(rightBuffers[i][:rightSize], scratch[:rightSize])
	}

	nextAxis := core.NextAxis(axis)
	return &node{
		handle: root,
		left:   buildRecursive(buffers, scratch, leftSize, nextAxis),
		right:  buildRecursive(rightBuffers, scratch, rightSize, nextAxis),
	}
}

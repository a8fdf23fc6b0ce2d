package kdtree_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tavianator/kdforest/core"
	"github.com/tavianator/kdforest/kdtree"
)

func handlesFrom(points []core.Point) []*core.Handle {
	handles := make([]*core.Handle, len(points))
	for i, p := range points {
		h := core.NewHandle(p, i)
		h.MarkInserted()
		handles[i] = h
	}
	return handles
}

func TestBuildEmpty(t *testing.T) {
	tree := kdtree.Build(nil)
	require.NotNil(t, tree)
	assert.Equal(t, 0, tree.Size())

	best, distSq := tree.Nearest(core.Point{0, 0, 0}, math.Inf(1))
	assert.Nil(t, best)
	assert.True(t, math.IsInf(distSq, 1))
}

func TestBuildInOrderYieldsInputMultiset(t *testing.T) {
	points := []core.Point{
		{0, 0, 0}, {1, 2, 3}, {-1, 5, 2}, {4, 4, 4}, {2, 0, -3}, {7, 1, 1},
	}
	handles := handlesFrom(points)
	tree := kdtree.Build(handles)
	require.Equal(t, len(points), tree.Size())

	seen := make(map[*core.Handle]bool, len(handles))
	for v := range tree.All() {
		seen[v.Handle()] = true
	}
	assert.Len(t, seen, len(handles))
	for _, h := range handles {
		assert.True(t, seen[h])
	}
}

func TestBuildOnSingleAndTwoHandles(t *testing.T) {
	one := handlesFrom([]core.Point{{5, 5, 5}})
	tree := kdtree.Build(one)
	assert.Equal(t, 1, tree.Size())
	got, _ := tree.Nearest(core.Point{0, 0, 0}, math.Inf(1))
	assert.Equal(t, one[0], got)

	two := handlesFrom([]core.Point{{0, 0, 0}, {10, 10, 10}})
	tree = kdtree.Build(two)
	assert.Equal(t, 2, tree.Size())
	got, _ = tree.Nearest(core.Point{1, 1, 1}, math.Inf(1))
	assert.Equal(t, two[0], got)
}

func bruteForceNearest(handles []*core.Handle, target core.Point) (*core.Handle, float64) {
	var best *core.Handle
	bestDistSq := math.Inf(1)
	for _, h := range handles {
		if !h.Live() {
			continue
		}
		d := h.Point().SquaredDistance(target)
		if d < bestDistSq {
			best = h
			bestDistSq = d
		}
	}
	return best, bestDistSq
}

func TestNearestMatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	points := make([]core.Point, 150)
	for i := range points {
		points[i] = core.Point{rng.Float64() * 50, rng.Float64() * 50, rng.Float64() * 50}
	}
	handles := handlesFrom(points)

	for i, h := range handles {
		if i%3 == 0 {
			h.MarkRemoved()
		}
	}

	tree := kdtree.Build(handles)

	for i := 0; i < 30; i++ {
		target := core.Point{rng.Float64() * 50, rng.Float64() * 50, rng.Float64() * 50}
		want, wantDistSq := bruteForceNearest(handles, target)
		got, gotDistSq := tree.Nearest(target, math.Inf(1))

		if want == nil {
			assert.Nil(t, got)
			continue
		}
		require.NotNil(t, got)
		assert.InDelta(t, wantDistSq, gotDistSq, 1e-9)
		assert.InDelta(t, wantDistSq, got.Point().SquaredDistance(target), 1e-9)
	}
}

func TestNearestSkipsDeadButDescendsSubtree(t *testing.T) {
	points := []core.Point{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}, {3, 0, 0}}
	handles := handlesFrom(points)
	tree := kdtree.Build(handles)

	for _, h := range handles {
		if h.Point() == (core.Point{0, 0, 0}) {
			h.MarkRemoved()
		}
	}

	got, _ := tree.Nearest(core.Point{0, 0, 0}, math.Inf(1))
	require.NotNil(t, got)
	assert.NotEqual(t, core.Point{0, 0, 0}, got.Point())
}

func TestCollectIncludeDead(t *testing.T) {
	points := []core.Point{{0, 0, 0}, {1, 1, 1}, {2, 2, 2}}
	handles := handlesFrom(points)
	handles[0].MarkRemoved()

	tree := kdtree.Build(handles)

	live := tree.Collect(nil, false)
	all := tree.Collect(nil, true)

	assert.Len(t, all, 3)
	assert.Len(t, live, 2)
}

package placement

import "github.com/tavianator/kdforest/core"

// BitPlaneOrder returns a permutation of 0..n-1 that visits every index
// exactly once, ordered to hide banding artifacts when the input stream is
// otherwise smoothly varying (e.g. hue-sorted): pass i = 1, 2, ... visits
// indices stripe/2-1, stripe/2-1+stripe, stripe/2-1+2*stripe, ... (less
// than n) where stripe = 2^i, until every index has been visited. Pass i
// thus holds exactly the indices j whose j+1 has i-1 trailing zero bits,
// in ascending order, and for n a power of two the walk takes exactly
// log2(n)+1 passes.
func BitPlaneOrder(n int) []int {
	if n <= 0 {
		return nil
	}

	order := make([]int, 0, n)
	for i := 1; len(order) < n; i++ {
		stripe := 1 << uint(i)
		start := stripe/2 - 1
		for j := start; j < n; j += stripe {
			order = append(order, j)
		}
	}
	return order
}

// Run feeds points through Place in BitPlaneOrder(len(points)) order,
// stopping at the first error. len(points) must equal the engine's grid
// size; a mismatch is a caller bug, not validated here (see New).
func (e *Engine) Run(points []core.Point) error {
	for _, j := range BitPlaneOrder(len(points)) {
		if _, _, _, err := e.Place(points[j]); err != nil {
			return err
		}
	}
	return nil
}

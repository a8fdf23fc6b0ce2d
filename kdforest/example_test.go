package kdforest_test

import (
	"fmt"

	"github.com/tavianator/kdforest/core"
	"github.com/tavianator/kdforest/kdforest"
)

// ExampleForest inserts three labeled points, queries for the nearest live
// one, then tombstones it and queries again: the removed handle never
// comes back, without any tree being rebuilt in between.
func ExampleForest() {
	f := kdforest.New()
	for _, entry := range []struct {
		label string
		p     core.Point
	}{
		{"origin", core.Point{0, 0, 0}},
		{"red", core.Point{10, 0, 0}},
		{"green", core.Point{0, 10, 0}},
	} {
		h := core.NewHandle(entry.p, entry.label)
		if err := f.Insert(h); err != nil {
			fmt.Println("insert failed:", err)
			return
		}
	}

	target := core.Point{2, 1, 0}

	h, _ := f.Nearest(target)
	fmt.Println(h.Payload)

	f.MarkRemoved(h)

	h, _ = f.Nearest(target)
	fmt.Println(h.Payload)

	// Output:
	// origin
	// red
}

//go:build kdforest_debug

package placement

import (
	set3 "github.com/TomTonic/Set3"

	"github.com/tavianator/kdforest/core"
)

// debugCheckBoundary builds a Set3 snapshot of every handle the grid
// currently shows as live and asserts each one sits on a pixel with an
// empty 8-neighbor — the boundary invariant (every live handle is on the
// boundary of the filled region) — independent of how pruneBoundary
// reached that state. Only compiled into kdforest_debug builds; never run
// in release.
func (e *Engine) debugCheckBoundary() {
	live := set3.Empty[*core.Handle]()
	for y := 0; y < e.height; y++ {
		for x := 0; x < e.width; x++ {
			px := e.pixels[e.index(x, y)]
			if px.filled && px.handle != nil {
				live.Add(px.handle)
				core.DebugAssert(e.hasEmptyNeighbor(x, y), "placement: live handle found on a fully-surrounded pixel")
			}
		}
	}
}

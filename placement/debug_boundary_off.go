//go:build !kdforest_debug

package placement

// debugCheckBoundary is a no-op outside kdforest_debug builds; see
// debug_boundary_on.go for the real check.
func (e *Engine) debugCheckBoundary() {}

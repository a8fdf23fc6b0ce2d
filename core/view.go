// File: view.go
// Role: a read-only accessor over a *Handle, for code that should observe a
// handle's coordinates and liveness without being able to call
// MarkInserted/MarkRemoved (which only kdforest should call).
package core

// HandleView is a read-only window onto a Handle: its coordinates and
// liveness, without access to the mutating lifecycle methods. kdtree's
// in-order enumeration and tests that inspect forest contents use HandleView
// instead of *Handle so that the capability to mutate liveness stays
// confined to kdforest.
type HandleView struct {
	h *Handle
}

// ViewOf wraps h in a read-only HandleView.
func ViewOf(h *Handle) HandleView {
	return HandleView{h: h}
}

// Point returns the viewed handle's coordinates.
func (v HandleView) Point() Point {
	return v.h.Point()
}

// Live reports whether the viewed handle currently counts toward queries.
func (v HandleView) Live() bool {
	return v.h.Live()
}

// Present reports whether the viewed handle has ever been inserted.
func (v HandleView) Present() bool {
	return v.h.Present()
}

// Handle returns the underlying *Handle, so that code holding a HandleView
// (typically a test) can compare identity against a *Handle obtained
// elsewhere, without being able to mutate it through the view itself.
func (v HandleView) Handle() *Handle {
	return v.h
}

//go:build !kdforest_debug

package core

// DebugAssert is a no-op in release builds. Build with the kdforest_debug
// tag to enable the panicking variant in debug_on.go.
func DebugAssert(cond bool, msg string) {}

// Package kdtree implements a static, median-split k-d tree over
// *core.Handle values: built once from a fixed set of handles, answering
// nearest-live-handle queries and in-order enumeration, and never mutated
// afterward.
//
// A Tree owns no state beyond its node links; the handles themselves carry
// their own liveness. Marking a handle removed after a tree is built does
// not touch the tree's shape — Nearest simply skips dead handles while
// still descending into their subtrees, which is what lets package
// kdforest layer lazy deletion on top without ever rebalancing a single
// tree.
//
// Build is O(n log n); Nearest is branch-and-bound with the
// probe-same-side-first pruning rule, expected O(log n) for well-distributed
// points and O(n) worst case.
package kdtree

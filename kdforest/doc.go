// Package kdforest implements a Bentley-Saxe cascade of static k-d trees
// (package kdtree) that together behave like one dynamic nearest-neighbor
// structure: insertions are O(log² n) amortized and deletions are lazy
// (tombstone only), at the cost of an occasional global rebuild when dead
// handles start to outnumber live ones.
//
// A Forest holds up to ⌊log₂ N⌋ + 1 slots. Slot i is either empty or holds a
// tree of exactly 2^i handles built the last time that slot changed.
// Insert either extends the cascade by one slot (collecting every handle
// below the lowest empty slot into a fresh tree there) or, once dead
// handles reach parity with live ones, collapses every live handle across
// every slot into a new minimal cascade. Either way, no existing tree is
// ever mutated in place — trees are only ever replaced wholesale.
//
// Forest never moves a *core.Handle once built into a tree: kdtree.Build
// copies pointers, not values, so a handle's address stays stable across
// every rebuild this package performs. That stability is what lets the
// placement package hold a *core.Handle across an arbitrary number of
// future inserts.
package kdforest

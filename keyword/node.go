package keyword

// nodeID indexes into Index.nodes. Using an integer handle instead of a
// pointer keeps the automaton's node graph (which is cyclic once failure
// links are built) out of Go's ownership/GC graph entirely: the arena is
// one contiguous slice, and freeing it is a single assignment.
type nodeID int32

// rootID is always the first node allocated by New.
const rootID nodeID = 0

// node is one state of the automaton. Before Fix, only children and
// output are meaningful (see Index invariants in spec.md §3); fail is
// populated by Fix and depth is fixed at creation time.
type node struct {
	children map[byte]nodeID
	fail     nodeID
	output   []any
	depth    int
}

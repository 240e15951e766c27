// Package keyword implements a multi-pattern exact-string matcher on the
// Aho–Corasick algorithm: given a set of byte-string keywords, each tagged
// with an opaque caller-supplied payload, it locates every occurrence of
// every keyword in a query string in one linear pass.
//
// An Index moves through two states: Open (entries accepted, queries
// rejected) and Frozen (the reverse), one-way, via Fix. This mirrors
// coregx-coregex's compile-then-search engines, except the keyword index
// builds its own automaton instead of delegating to an external one.
package keyword

import "sync/atomic"

// Match is one reported occurrence: text[Start:End] equals the keyword
// that produced Payload, using the half-open byte interval convention
// spec.md §6 specifies.
type Match struct {
	Start   int
	End     int
	Payload any
}

// FinalizerPolicy is invoked once per payload an Index retained, when
// Destroy runs. KeepPolicy and ReleasePolicy are the two defaults
// spec.md §9 calls for; callers may supply their own for payloads with
// other ownership disciplines.
type FinalizerPolicy func(payload any)

// KeepPolicy is a no-op FinalizerPolicy: the caller owns payloads
// elsewhere and the index must not touch them.
func KeepPolicy(any) {}

// releasable is satisfied by payloads that own a reference ReleasePolicy
// should drop.
type releasable interface {
	Release()
}

// ReleasePolicy calls Release on payloads that implement it, and is a
// no-op for payloads that don't. Use this when the index holds the only
// remaining reference to reference-counted or pooled payloads.
func ReleasePolicy(payload any) {
	if r, ok := payload.(releasable); ok {
		r.Release()
	}
}

// Index is an Aho–Corasick automaton over byte-string keywords. The zero
// value is not usable; construct with New.
//
// Index performs no internal synchronization (spec.md §5): construction
// (Enter, Fix) must happen on a single goroutine. Once frozen, concurrent
// calls to Query from multiple goroutines are safe, since Query only
// reads the automaton.
type Index struct {
	nodes    []node
	retained []any // every payload Enter has accepted, in insertion order
	frozen   bool
	counters counters
}

// New returns an empty, open Index containing only the root node.
func New() *Index {
	ix := &Index{
		nodes: make([]node, 1, 16),
	}
	ix.nodes[0] = node{fail: rootID}
	atomic.StoreUint64(&ix.counters.nodes, 1)
	return ix
}

// newNode appends a fresh node to the arena and returns its id.
func (ix *Index) newNode(depth int) nodeID {
	ix.nodes = append(ix.nodes, node{depth: depth})
	id := nodeID(len(ix.nodes) - 1)
	atomic.AddUint64(&ix.counters.nodes, 1)
	return id
}

// Enter appends payload to the output list of the node reached by
// walking keyword from the root, extending the goto tree as needed.
// Entering the same keyword twice appends two independent payload
// entries, in insertion order.
//
// Enter fails with ErrAlreadyFrozen if the index has been frozen, and
// ErrInvalidKeyword if keyword is empty.
func (ix *Index) Enter(keyword []byte, payload any) error {
	if ix.frozen {
		return &OpError{Op: "enter", Keyword: keyword, Err: ErrAlreadyFrozen}
	}
	if len(keyword) == 0 {
		return &OpError{Op: "enter", Keyword: keyword, Err: ErrInvalidKeyword}
	}

	cur := rootID
	for _, b := range keyword {
		n := &ix.nodes[cur]
		if n.children == nil {
			n.children = make(map[byte]nodeID)
		}
		next, ok := n.children[b]
		if !ok {
			next = ix.newNode(ix.nodes[cur].depth + 1)
			ix.nodes[cur].children[b] = next
		}
		cur = next
	}

	ix.nodes[cur].output = append(ix.nodes[cur].output, payload)
	ix.retained = append(ix.retained, payload)
	return nil
}

// Fix builds failure links by breadth-first traversal from the root and
// augments every node's output list with outputs reachable via failure
// links, then transitions the index to frozen (spec.md §4.1).
//
// Fix fails with ErrAlreadyFrozen if called a second time.
func (ix *Index) Fix() error {
	if ix.frozen {
		return &OpError{Op: "fix", Err: ErrAlreadyFrozen}
	}

	queue := make([]nodeID, 0, len(ix.nodes))
	queue = append(queue, rootID)

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for b, child := range ix.nodes[cur].children {
			queue = append(queue, child)

			f := ix.nodes[cur].fail
			for f != rootID {
				if _, ok := ix.nodes[f].children[b]; ok {
					break
				}
				f = ix.nodes[f].fail
			}

			failNode := rootID
			if target, ok := ix.nodes[f].children[b]; ok && target != child {
				failNode = target
			}

			ix.nodes[child].fail = failNode
			if len(ix.nodes[failNode].output) > 0 {
				ix.nodes[child].output = append(ix.nodes[child].output, ix.nodes[failNode].output...)
			}
		}
	}

	ix.frozen = true
	return nil
}

// Query scans text and returns every (position, payload) occurrence, in
// ascending end position; payloads sharing an end position are returned
// in the automaton's insertion/BFS order (spec.md §4.1, "Result
// ordering"). Query fails with ErrNotFrozen if the index has not been
// fixed.
func (ix *Index) Query(text []byte) ([]Match, error) {
	var results []Match
	err := ix.QueryFunc(text, func(m Match) bool {
		results = append(results, m)
		return true
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

// QueryFunc scans text like Query, but invokes visit for each match
// instead of building a slice, stopping early if visit returns false.
// This mirrors the single-step style of coregx-coregex/prefilter's
// Prefilter.Find, for callers that want to bail out after the first few
// matches without paying for the rest of the scan's allocations.
func (ix *Index) QueryFunc(text []byte, visit func(Match) bool) error {
	if !ix.frozen {
		return &OpError{Op: "query", Err: ErrNotFrozen}
	}

	cur := rootID
	for i, b := range text {
		for cur != rootID {
			if _, ok := ix.nodes[cur].children[b]; ok {
				break
			}
			cur = ix.nodes[cur].fail
		}
		if next, ok := ix.nodes[cur].children[b]; ok {
			cur = next
		}

		for _, p := range ix.nodes[cur].output {
			m := Match{Start: i - ix.nodes[cur].depth + 1, End: i + 1, Payload: p}
			if !visit(m) {
				return nil
			}
		}
	}

	atomic.AddUint64(&ix.counters.bytesScanned, uint64(len(text)))
	atomic.AddUint64(&ix.counters.queries, 1)
	return nil
}

// Stats returns a snapshot of the index's activity and the CPU features
// detected for this process (see stats.go).
func (ix *Index) Stats() Stats {
	return ix.counters.snapshot()
}

// Destroy releases automaton memory and invokes policy once per payload
// Enter ever accepted, in insertion order. After Destroy the Index must
// not be used again.
func (ix *Index) Destroy(policy FinalizerPolicy) {
	if policy == nil {
		policy = KeepPolicy
	}
	for _, p := range ix.retained {
		policy(p)
	}
	ix.nodes = nil
	ix.retained = nil
}

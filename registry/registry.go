// Package registry indexes regular expressions by a literal hint extracted
// from each one, so that scanning a piece of text against many regexes
// costs one multi-pattern keyword scan instead of running every regex in
// turn. A Registry only ever shortlists payloads: every one it returns for
// a given text is a candidate whose regex *might* match, never a guarantee
// that it does (see confirm.go for the optional layer that checks).
package registry

import (
	"sync"

	"github.com/coregx/esm/hint"
	"github.com/coregx/esm/keyword"
)

// candidate pairs a regex with the payload it was entered under, carried
// through the keyword index and the hintless bucket alike. id is an
// identity proxy assigned by Enter: payloads are opaque and need not be
// comparable or hashable (spec.md §6), so nothing may key a map or a
// dedup set on payload itself. id plays the role the original's
// id(obj)-based identity does.
type candidate struct {
	id      int
	regex   string
	payload any
}

// Registry is a clue-indexed set of regular expressions. It moves through
// two states, Open and Frozen, one-way: Enter is only valid before the
// first Query, and the first Query call freezes the registry for good.
//
// A single mutex serializes Enter calls and the freeze transition. Query
// holds it only while checking (or performing) the freeze and releases it
// before scanning, so concurrent readers do not contend during the scan.
type Registry struct {
	mu       sync.Mutex
	idx      *keyword.Index
	hintless []candidate
	frozen   bool
	nextID   int

	matcher  RegexMatcher
	trackers map[int]*Tracker
}

// New returns an empty, open Registry with no confirmation layer: Query
// returns every payload whose hint appears in the text, without checking
// whether the regex itself actually matches.
func New() *Registry {
	return &Registry{idx: keyword.New()}
}

// Enter extracts a hint from regex and files payload under it. A regex with
// no extractable hint goes into the hintless bucket and is returned by
// every Query, since there is nothing narrower to test it against.
//
// Enter returns a handle identifying this entry, for use with Tracker; the
// handle is the identity proxy candidates are tracked by internally, since
// payloads themselves need not be comparable (spec.md §6).
//
// Enter fails with ErrAlreadyFrozen once the registry has served a Query,
// and ErrInvalidPattern for an empty regex string.
func (r *Registry) Enter(regex string, payload any) (int, error) {
	if regex == "" {
		return -1, ErrInvalidPattern
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.frozen {
		return -1, ErrAlreadyFrozen
	}

	id := r.nextID
	r.nextID++

	c := candidate{id: id, regex: regex, payload: payload}
	shortlisted := hint.Shortlist(hint.Extract(regex))
	if len(shortlisted) == 0 {
		r.hintless = append(r.hintless, c)
	} else if err := r.idx.Enter([]byte(foldASCII(shortlisted[0])), c); err != nil {
		return -1, err
	}

	if r.matcher != nil {
		if r.trackers == nil {
			r.trackers = make(map[int]*Tracker)
		}
		r.trackers[id] = newTracker()
	}

	return id, nil
}

// Query returns every payload shortlisted against text: those whose hint
// occurs in text (case-insensitively, ASCII only), plus every hintless
// payload. A payload whose hint occurs at several positions is returned
// once per occurrence, in occurrence order; this mirrors the keyword
// index's own duplicate-preserving semantics rather than deduplicating at
// the registry layer. The first call to Query freezes the registry.
//
// When the registry was built with NewConfirming, a shortlisted candidate
// is only returned once its regex has actually matched text.
func (r *Registry) Query(text string) []any {
	r.freeze()

	folded := foldASCII(text)
	results := make([]any, 0, len(r.hintless))

	// spec order: the hintless bucket (insertion order) precedes matches
	// (ascending end position, then automaton insertion/BFS order).
	for _, c := range r.hintless {
		if r.confirm(c, text) {
			results = append(results, c.payload)
		}
	}
	matches, _ := r.idx.Query([]byte(folded)) // post-freeze, never errors
	for _, m := range matches {
		c := m.Payload.(candidate)
		if r.confirm(c, text) {
			results = append(results, c.payload)
		}
	}
	return results
}

// Tracker returns the effectiveness tracker for the entry identified by
// id (the handle Enter returned for it), if the registry was built with
// NewConfirming. See tracker.go.
func (r *Registry) Tracker(id int) (*Tracker, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.trackers[id]
	return t, ok
}

func (r *Registry) freeze() {
	r.mu.Lock()
	if !r.frozen {
		r.idx.Fix()
		r.frozen = true
	}
	r.mu.Unlock()
}

// confirm reports whether a shortlisted candidate should be returned from
// Query: always true for a plain Registry, or the matcher's verdict (and a
// tracker update) for a confirming one.
func (r *Registry) confirm(c candidate, text string) bool {
	if r.matcher == nil {
		return true
	}

	ok, err := r.matcher.MatchString(c.regex, text)

	// Safe without r.mu: the trackers map is only ever written by Enter,
	// and confirm is only reachable from Query, which freezes the
	// registry (and so forecloses further Enter calls) before doing
	// anything else.
	if t := r.trackers[c.id]; t != nil {
		t.recordShortlisted()
		if err == nil && ok {
			t.recordConfirmed()
		}
	}

	return err == nil && ok
}

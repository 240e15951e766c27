package hint

// Shortlist picks the single hint worth indexing from a candidate list: the
// longest one, since a longer guaranteed substring rejects more non-matching
// text before a regex needs to run. Ties go to the last-seen candidate,
// which for Extract's output means the candidate appearing latest in the
// pattern — the original esmre scanner instead kept the first; spec.md
// resolves the tie-break the other way (see DESIGN.md).
//
// Shortlist returns nil for an empty input, and a single-element slice
// otherwise.
func Shortlist(hints []string) []string {
	if len(hints) == 0 {
		return nil
	}
	best := hints[0]
	for _, h := range hints[1:] {
		if len(h) >= len(best) {
			best = h
		}
	}
	return []string{best}
}

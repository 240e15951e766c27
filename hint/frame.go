package hint

// frame tracks the literal runs collected for one level of grouping: the
// top-level pattern itself, or the content of one parenthesized group.
// Entering a group pushes a frame; leaving one pops it and, unless an
// alternation was seen inside it, splices its completed runs into the
// parent frame in place of the run that was open when the group started.
//
// hints holds a sequence of runs; every element but the last is sealed
// (complete and guaranteed), the last is still being appended to.
type frame struct {
	hints       []string
	alternation bool

	// lastGroupMark is the index in hints where the most recently closed
	// child group's contributed runs begin, or -1 if the most recent atom
	// was a literal byte (or nothing yet). A quantifier immediately
	// following a group needs to undo that whole group's contribution
	// rather than just the trailing byte of a string.
	lastGroupMark int
}

func newFrame() *frame {
	return &frame{hints: []string{""}, lastGroupMark: -1}
}

// open returns the index of the run currently being appended to.
func (f *frame) open() int { return len(f.hints) - 1 }

// appendLiteral extends the open run with a guaranteed literal byte.
func (f *frame) appendLiteral(b byte) {
	f.hints[f.open()] += string(b)
	f.lastGroupMark = -1
}

// seal closes the open run (it stays in hints, complete) and starts a new,
// empty one. Used whenever the following content is not a guaranteed
// continuation of the current run: entering a group, a character class, or
// an atom like '.' whose matched value isn't known.
func (f *frame) seal() {
	f.hints = append(f.hints, "")
	f.lastGroupMark = -1
}

// dropLastByte undoes the guarantee on the single byte most recently
// appended (the atom a '?', '*' or '{m,n}' quantifier applies to), sealing
// whatever remains and starting fresh.
func (f *frame) dropLastByte() {
	i := f.open()
	if n := len(f.hints[i]); n > 0 {
		f.hints[i] = f.hints[i][:n-1]
	}
	f.seal()
}

// dropLastGroup undoes the entire contribution of the most recently closed
// child group, for a quantifier that makes the group's occurrence uncertain.
func (f *frame) dropLastGroup() {
	if f.lastGroupMark < 0 {
		return
	}
	f.hints = append(f.hints[:f.lastGroupMark], "")
	f.lastGroupMark = -1
}

// markAlternation records a top-level '|' in this frame's content: none of
// the alternative branches is individually guaranteed, so everything
// collected so far in this frame is forgotten.
func (f *frame) markAlternation() {
	f.alternation = true
	f.hints = []string{""}
	f.lastGroupMark = -1
}

// absorb splices a closed child frame's contribution into f in place of
// f's currently open run, and records where it begins in lastGroupMark so
// a following quantifier can undo it. A child that saw an alternation
// contributes nothing: its content had no single guaranteed reading.
func (f *frame) absorb(child *frame) {
	if child.alternation {
		return
	}
	mark := f.open()
	f.hints = append(f.hints[:mark], append(append([]string{}, child.hints...), "")...)
	f.lastGroupMark = mark
}

// nonEmpty returns the runs in hints that aren't empty, in order.
func (f *frame) nonEmpty() []string {
	out := make([]string, 0, len(f.hints))
	for _, h := range f.hints {
		if h != "" {
			out = append(out, h)
		}
	}
	return out
}

// Package hint extracts literal substrings that are guaranteed to appear in
// any text a regular expression matches, without invoking a regex engine.
//
// The scanner walks the pattern byte by byte, the way the original esmre
// hint scanner does, keeping a stack of frames rather than an explicit
// state-object hierarchy: entering a group pushes a frame, an alternation
// clears the current frame's progress, and a quantifier retracts whichever
// atom it modifies. Because a hint is only useful if it is guaranteed,
// extraction is deliberately conservative: whenever the scanner cannot be
// sure a span of text will appear, it drops that span rather than guess.
package hint

// Extract returns every literal substring guaranteed to occur, in some
// order, in any text regex matches. An empty result means no such
// substring could be established (for example any pattern with a top-level
// alternation, or a pattern with no literal bytes at all).
func Extract(regex string) []string {
	return ExtractWithConfig(regex, DefaultConfig())
}

// ExtractWithConfig is Extract with an explicit Config.
func ExtractWithConfig(regex string, cfg Config) []string {
	pattern := []byte(regex)
	root := newFrame()
	stack := []*frame{root}
	n := len(pattern)

	top := func() *frame { return stack[len(stack)-1] }

	i := 0
	for i < n {
		b := pattern[i]
		switch b {
		case '\\':
			// An escape finalizes the current hint and contributes
			// nothing: the escaped byte might be a literal (\.), a
			// class shorthand (\d), or an assertion (\b), and telling
			// those apart isn't worth the risk of getting it wrong.
			top().seal()
			if i+1 >= n {
				i++
			} else {
				i += 2
			}
			continue

		case '[':
			top().seal()
			i = skipClass(pattern, i)
			continue

		case '(':
			if i+1 < n && pattern[i+1] == '?' {
				if isNamedGroupStart(pattern, i) {
					j := i + 3 // past "(?P"
					for j < n && pattern[j] != '>' {
						j++
					}
					if j < n {
						j++ // past '>'
					}
					top().seal()
					stack = append(stack, newFrame())
					i = j
					continue
				}
				top().seal()
				i = skipIgnoredGroup(pattern, i)
				continue
			}
			top().seal()
			stack = append(stack, newFrame())
			i++
			continue

		case ')':
			if len(stack) > 1 {
				child := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				top().absorb(child)
			}
			i++
			continue

		case '|':
			top().markAlternation()
			i++
			continue

		case '?', '*':
			f := top()
			if f.lastGroupMark >= 0 {
				f.dropLastGroup()
			} else {
				f.dropLastByte()
			}
			i++
			continue

		case '+':
			f := top()
			if f.lastGroupMark >= 0 {
				f.lastGroupMark = -1
			} else {
				f.seal()
			}
			i++
			continue

		case '{':
			j := i + 1
			for j < n && pattern[j] != '}' {
				j++
			}
			if j < n {
				j++
			}
			f := top()
			if f.lastGroupMark >= 0 {
				f.dropLastGroup()
			} else {
				f.dropLastByte()
			}
			i = j
			continue

		case '.', '^', '$':
			top().seal()
			i++
			continue

		default:
			top().appendLiteral(b)
			i++
			continue
		}
	}

	if root.alternation {
		return nil
	}

	hints := root.nonEmpty()
	if len(hints) == 0 {
		return nil
	}
	out := make([]string, len(hints))
	for idx, h := range hints {
		out[idx] = cfg.truncate(h)
	}
	return out
}

// isNamedGroupStart reports whether pattern[i:] begins a Python/PCRE-style
// named group, "(?P<name>...)", whose content participates in matching the
// same as an ordinary capturing group.
func isNamedGroupStart(pattern []byte, i int) bool {
	return i+2 < len(pattern) && pattern[i+1] == '?' && pattern[i+2] == 'P' &&
		i+3 < len(pattern) && pattern[i+3] == '<'
}

// skipClass advances past a "[...]" character class starting at pattern[i]
// ('[' itself), returning the index just past the matching ']'. A ']'
// immediately after '[' or after a leading '^' is a literal member, not the
// close, and a backslash escape inside the class is still honored.
func skipClass(pattern []byte, i int) int {
	n := len(pattern)
	j := i + 1
	if j < n && pattern[j] == '^' {
		j++
	}
	if j < n && pattern[j] == ']' {
		j++
	}
	for j < n && pattern[j] != ']' {
		if pattern[j] == '\\' && j+1 < n {
			j += 2
			continue
		}
		j++
	}
	if j < n {
		j++
	}
	return j
}

// skipIgnoredGroup advances past a "(?...)" extension group other than a
// named group (non-capturing groups, lookaround, inline flags, comments),
// starting at pattern[i] ('(' itself), returning the index just past the
// matching ')'. Its content is never scanned for hints: none of these
// forms are ordinary matched text in a way a simple byte scanner can
// safely reason about, and contributing nothing is always a safe
// (if less precise) answer.
func skipIgnoredGroup(pattern []byte, i int) int {
	n := len(pattern)
	depth := 1
	j := i + 2 // past "(?"
	for j < n && depth > 0 {
		switch pattern[j] {
		case '\\':
			j += 2
			continue
		case '[':
			j = skipClass(pattern, j)
			continue
		case '(':
			depth++
		case ')':
			depth--
		}
		j++
	}
	return j
}

package nfa

import "github.com/coregx/ibmatch/internal/fold"

// BoundedBacktracker executes an NFA with explicit backtracking over code
// points. A bit vector over (state, position) pairs prunes revisits, so
// the search is O(states * haystack) even with transliteration branching
// and heteronym fan-out.
//
// A BoundedBacktracker holds scratch state: create one per goroutine (the
// NFA itself is shareable).
type BoundedBacktracker struct {
	nfa *NFA

	visited  []uint64
	inputLen int
}

// NewBoundedBacktracker creates a backtracker for the given NFA.
func NewBoundedBacktracker(n *NFA) *BoundedBacktracker {
	return &BoundedBacktracker{nfa: n}
}

// reset prepares the visited bit vector for a haystack of inputLen code
// points.
func (b *BoundedBacktracker) reset(inputLen int) {
	b.inputLen = inputLen
	bitsNeeded := b.nfa.States() * (inputLen + 1)
	wordsNeeded := (bitsNeeded + 63) / 64
	if cap(b.visited) >= wordsNeeded {
		b.visited = b.visited[:wordsNeeded]
		for i := range b.visited {
			b.visited[i] = 0
		}
	} else {
		b.visited = make([]uint64, wordsNeeded)
	}
}

// shouldVisit marks (state, pos) and reports whether it was new.
func (b *BoundedBacktracker) shouldVisit(state StateID, pos int) bool {
	idx := int(state)*(b.inputLen+1) + pos
	word, bit := idx/64, uint64(1)<<(idx%64)
	if b.visited[word]&bit != 0 {
		return false
	}
	b.visited[word] |= bit
	return true
}

// IsMatch reports whether the pattern matches anywhere in the haystack.
func (b *BoundedBacktracker) IsMatch(rs []rune) bool {
	_, _, ok := b.Search(rs)
	return ok
}

// Search finds the leftmost match and returns its span in code point
// indices.
func (b *BoundedBacktracker) Search(rs []rune) (start, end int, ok bool) {
	b.reset(len(rs))

	for startPos := 0; startPos <= len(rs); startPos++ {
		if endPos := b.backtrack(rs, startPos, b.nfa.Start()); endPos >= 0 {
			return startPos, endPos, true
		}
		if b.nfa.IsAnchoredStart() {
			break
		}
		// The visited set carries over: a failed (state, position) pair
		// fails regardless of where the attempt started.
	}
	return 0, 0, false
}

// backtrack explores from (pos, state) and returns the end position of
// the first match found, or -1.
func (b *BoundedBacktracker) backtrack(rs []rune, pos int, state StateID) int {
	s := b.nfa.State(state)
	if s == nil {
		return -1
	}
	if !b.shouldVisit(state, pos) {
		return -1
	}

	switch s.Kind() {
	case StateMatch:
		return pos

	case StateRuneRange:
		lo, hi, next := s.RuneRange()
		if pos < len(rs) && b.runeIn(rs[pos], lo, hi) {
			return b.backtrack(rs, pos+1, next)
		}
		return -1

	case StateSparse:
		if pos >= len(rs) {
			return -1
		}
		for _, tr := range s.Transitions() {
			if b.runeIn(rs[pos], tr.Lo, tr.Hi) {
				if end := b.backtrack(rs, pos+1, tr.Next); end >= 0 {
					return end
				}
			}
		}
		return -1

	case StateSplit:
		left, right := s.Split()
		if end := b.backtrack(rs, pos, left); end >= 0 {
			return end
		}
		return b.backtrack(rs, pos, right)

	case StateEpsilon:
		return b.backtrack(rs, pos, s.Next())

	case StateTranslit:
		endPos := -1
		s.Atom().ExploreAt(rs, pos, func(nRunes int) bool {
			if end := b.backtrack(rs, pos+nRunes, s.Next()); end >= 0 {
				endPos = end
				return true
			}
			return false
		})
		return endPos

	case StateCallback:
		_, fn := s.Callback()
		for _, nRunes := range fn(rs, pos) {
			if nRunes < 0 || pos+nRunes > len(rs) {
				continue
			}
			if end := b.backtrack(rs, pos+nRunes, s.Next()); end >= 0 {
				return end
			}
		}
		return -1

	case StateLook:
		if b.lookHolds(s.LookKind(), rs, pos) {
			return b.backtrack(rs, pos, s.Next())
		}
		return -1

	case StateFail:
		return -1
	}

	return -1
}

// runeIn reports whether r falls in [lo, hi], consulting the fold orbit
// under case-insensitive execution.
func (b *BoundedBacktracker) runeIn(r rune, lo, hi rune) bool {
	if r >= lo && r <= hi {
		return true
	}
	if !b.nfa.caseInsensitive {
		return false
	}
	return fold.Orbit(r, func(f rune) bool { return f >= lo && f <= hi })
}

// lookHolds evaluates a zero-width assertion at pos. With a separator
// configured, component boundaries satisfy the text anchors too.
func (b *BoundedBacktracker) lookHolds(look Look, rs []rune, pos int) bool {
	switch look {
	case LookStart:
		if pos == 0 {
			return true
		}
		return b.nfa.separator != 0 && rs[pos-1] == b.nfa.separator
	case LookEnd:
		if pos == len(rs) {
			return true
		}
		return b.nfa.separator != 0 && rs[pos] == b.nfa.separator
	}
	return false
}

package ibmatch

import "unicode/utf16"

// Encoding adapters. Internal matching is defined over code points; the
// UTF-16 and UTF-32 entry points decode at the boundary and report
// offsets in the caller's units (16-bit units and code points
// respectively). Unpaired surrogates are kept as unmatchable code points,
// mirroring how the UTF-8 path treats ill-formed bytes.

// FindUTF16 returns the leftmost match with offsets in 16-bit units.
func (m *Matcher) FindUTF16(haystack []uint16) (Match, bool) {
	if len(m.chars) == 0 {
		return Match{}, true
	}
	rs, offs := decodeUTF16(haystack)
	return m.findRunes(rs, offs)
}

// IsMatchUTF16 reports whether the pattern matches the UTF-16 haystack.
func (m *Matcher) IsMatchUTF16(haystack []uint16) bool {
	_, ok := m.FindUTF16(haystack)
	return ok
}

// FindRunes returns the leftmost match with offsets in code points
// (the UTF-32 surface encoding).
func (m *Matcher) FindRunes(haystack []rune) (Match, bool) {
	if len(m.chars) == 0 {
		return Match{}, true
	}
	offs := make([]int, len(haystack)+1)
	for i := range offs {
		offs[i] = i
	}
	return m.findRunes(haystack, offs)
}

// IsMatchRunes reports whether the pattern matches the UTF-32 haystack.
func (m *Matcher) IsMatchRunes(haystack []rune) bool {
	_, ok := m.FindRunes(haystack)
	return ok
}

// decodeUTF16 decodes UTF-16 units into code points plus the unit offset
// of each (offs has one extra entry holding len(haystack)).
func decodeUTF16(h []uint16) (rs []rune, offs []int) {
	rs = make([]rune, 0, len(h))
	offs = make([]int, 0, len(h)+1)
	for i := 0; i < len(h); {
		offs = append(offs, i)
		c := h[i]
		if utf16.IsSurrogate(rune(c)) && i+1 < len(h) {
			if r := utf16.DecodeRune(rune(c), rune(h[i+1])); r != 0xFFFD {
				rs = append(rs, r)
				i += 2
				continue
			}
		}
		rs = append(rs, rune(c))
		i++
	}
	offs = append(offs, len(h))
	return rs, offs
}

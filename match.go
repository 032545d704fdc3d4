package ibmatch

// Match is a reported span into the haystack's surface encoding: bytes
// for the UTF-8 API, 16-bit units for UTF-16, code points for UTF-32.
// Both endpoints always lie on code-point boundaries; End is exclusive.
type Match struct {
	start, end int
	partial    bool
}

// Start returns the inclusive start offset of the match.
func (m Match) Start() int { return m.start }

// End returns the exclusive end offset of the match.
func (m Match) End() int { return m.end }

// Len returns the length of the match in surface units.
func (m Match) Len() int { return m.end - m.start }

// IsEmpty reports whether the match is empty.
func (m Match) IsEmpty() bool { return m.start >= m.end }

// IsPatternPartial reports whether the match ended mid-reading: the
// pattern was consumed entirely but the last reading was not. Only
// possible when MatchConfig.PatternPartial is set.
func (m Match) IsPatternPartial() bool { return m.partial }

// Offset returns a copy with off added to both endpoints.
func (m Match) Offset(off int) Match {
	m.start += off
	m.end += off
	return m
}

// noMatchStart signals no-match in the packed 64-bit result used by the
// simplified API: the lower 32 bits (start) are all ones.
const noMatchStart = 0xFFFFFFFF

// PackedNoMatch is the packed result value meaning "no match".
const PackedNoMatch uint64 = noMatchStart

// Packed packs the span into a 64-bit value: lower 32 bits start, upper
// 32 bits end.
func (m Match) Packed() uint64 {
	return uint64(uint32(m.start)) | uint64(uint32(m.end))<<32
}

// UnpackMatch decodes a packed result. ok is false for PackedNoMatch.
func UnpackMatch(v uint64) (start, end int, ok bool) {
	if uint32(v) == noMatchStart {
		return 0, 0, false
	}
	return int(uint32(v)), int(uint32(v >> 32)), true
}

package ibmatch

import "github.com/coregx/ibmatch/pinyin"

// One-shot entry points. For repeated searches against many haystacks,
// build a Matcher once with New and reuse it.

// IsMatch reports whether pattern matches haystack under cfg.
func IsMatch(pattern, haystack string, cfg MatchConfig) bool {
	return New(pattern, cfg).IsMatch(haystack)
}

// Find returns the leftmost match of pattern in haystack under cfg, with
// byte offsets into the UTF-8 haystack.
func Find(pattern, haystack string, cfg MatchConfig) (Match, bool) {
	return New(pattern, cfg).Find(haystack)
}

// Simplified pinyin-only surface: the notation bitmask carries the stable
// wire values (1=ascii, 2=ascii-tone, 4=unicode, 8=ascii-first-letter,
// 16..512=shuangpin variants) and results pack into a 64-bit value for
// host bindings.

// pinyinConfig is the fixed configuration of the simplified API.
func pinyinConfig(notations pinyin.Notation) MatchConfig {
	return DefaultConfig().WithPinyin(notations)
}

// IsPinyinMatch reports whether pattern matches haystack with pinyin
// expansion under the given notation bitmask.
func IsPinyinMatch(pattern, haystack string, notations pinyin.Notation) bool {
	return IsMatch(pattern, haystack, pinyinConfig(notations))
}

// FindPinyin returns the packed match result for a UTF-8 haystack: lower
// 32 bits start, upper 32 bits end, both in bytes. No match returns
// PackedNoMatch.
func FindPinyin(pattern, haystack string, notations pinyin.Notation) uint64 {
	m, ok := Find(pattern, haystack, pinyinConfig(notations))
	if !ok {
		return PackedNoMatch
	}
	return m.Packed()
}

// FindPinyinUTF16 is the host-binding form of FindPinyin: UTF-16 input,
// packed offsets in 16-bit units.
func FindPinyinUTF16(pattern, haystack []uint16, notations pinyin.Notation) uint64 {
	pat := string(utf16Decode(pattern))
	m, ok := New(pat, pinyinConfig(notations)).FindUTF16(haystack)
	if !ok {
		return PackedNoMatch
	}
	return m.Packed()
}

func utf16Decode(h []uint16) []rune {
	rs, _ := decodeUTF16(h)
	return rs
}

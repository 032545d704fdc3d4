package simd

import (
	"encoding/binary"
	"math/bits"
)

// Memchr returns the index of the first occurrence of needle in haystack,
// or -1 if needle is not present.
//
// Uses the SWAR zero-byte detection formula (Hacker's Delight): XOR turns
// matching bytes into 0x00, then (v-0x01..01) & ^v & 0x80..80 lights the
// high bit of every zero byte.
//
// The substring matcher uses this to locate candidate start positions for
// patterns with an ASCII first letter before entering the transliteration
// exploration.
func Memchr(haystack []byte, needle byte) int {
	haystackLen := len(haystack)
	if haystackLen < 8 {
		for idx := 0; idx < haystackLen; idx++ {
			if haystack[idx] == needle {
				return idx
			}
		}
		return -1
	}

	needleMask := uint64(needle) * 0x0101010101010101

	idx := 0
	for idx+8 <= haystackLen {
		chunk := binary.LittleEndian.Uint64(haystack[idx:])
		xor := chunk ^ needleMask
		if zero := (xor - 0x0101010101010101) & ^xor & hi8; zero != 0 {
			return idx + bits.TrailingZeros64(zero)/8
		}
		idx += 8
	}

	for ; idx < haystackLen; idx++ {
		if haystack[idx] == needle {
			return idx
		}
	}
	return -1
}

// MemchrFold returns the index of the first byte equal to needle under
// ASCII case folding, or -1. needle must be an ASCII letter in lower case;
// for non-letters this is equivalent to Memchr.
func MemchrFold(haystack []byte, needle byte) int {
	if needle < 'a' || needle > 'z' {
		return Memchr(haystack, needle)
	}
	upper := needle - 'a' + 'A'
	for idx := 0; idx < len(haystack); idx++ {
		if b := haystack[idx]; b == needle || b == upper {
			return idx
		}
	}
	return -1
}

package ibmatch

import (
	"unicode"
	"unicode/utf8"

	"github.com/coregx/ibmatch/internal/fold"
)

// Simple (1:1) case folding and boundary helpers. The matcher's case
// policy is: lowercase pattern letters match case-folded haystack
// letters; uppercase pattern letters can be made to match only exactly
// (UppercaseLiteral), which lets a user force literal ASCII matching.

// FoldRune returns the canonical simple case fold of r: the smallest rune
// in r's SimpleFold orbit. ASCII letters take a fast path.
func FoldRune(r rune) rune {
	return fold.Rune(r)
}

// LowerBMP returns the lowercase form of a BMP code point without
// allocating. Code points outside the BMP are returned unchanged by the
// fast path contract; callers needing full folding use FoldRune.
func LowerBMP(r rune) rune {
	if r < utf8.RuneSelf {
		if 'A' <= r && r <= 'Z' {
			return r + ('a' - 'A')
		}
		return r
	}
	if r > 0xFFFF {
		return r
	}
	return unicode.ToLower(r)
}

// foldString lowercases s using FoldRune. Returns s unchanged (no
// allocation) when folding is the identity.
func foldString(s string) string {
	for i, r := range s {
		if FoldRune(r) != r {
			out := make([]rune, 0, len(s))
			for _, r2 := range s[:i] {
				out = append(out, r2)
			}
			for _, r2 := range s[i:] {
				out = append(out, FoldRune(r2))
			}
			return string(out)
		}
	}
	return s
}

// FloorCharBoundary returns the largest byte offset <= i that lies on a
// UTF-8 code point boundary of b. Offsets beyond len(b) clamp to len(b).
func FloorCharBoundary(b []byte, i int) int {
	if i >= len(b) {
		return len(b)
	}
	for i > 0 && !utf8.RuneStart(b[i]) {
		i--
	}
	return i
}

// CeilCharBoundary returns the smallest byte offset >= i that lies on a
// UTF-8 code point boundary of b. Offsets beyond len(b) clamp to len(b).
func CeilCharBoundary(b []byte, i int) int {
	if i <= 0 {
		return 0
	}
	for i < len(b) && !utf8.RuneStart(b[i]) {
		i++
	}
	if i > len(b) {
		return len(b)
	}
	return i
}

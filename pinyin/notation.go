// Package pinyin provides the pinyin reading table and notation encoders
// used by the transliteration matcher.
//
// The dictionary maps a Han code point to its ordered readings (first
// reading preferred). Each reading can be spelled in several notations:
// plain ASCII, tone-digit ASCII, first-letter, Unicode tone marks, and ten
// two-key shuangpin keyboard layouts. Notations are combined as a bitmask
// and searched disjunctively by the matcher.
//
// The table is built once on first use from the go-pinyin dictionary and is
// immutable afterwards; lookups take no locks.
package pinyin

import "strings"

// Notation selects one pinyin spelling. Values are stable wire values
// shared with host bindings: combining them in a bitmask means "match any
// of these spellings".
type Notation uint32

const (
	// Ascii is the canonical spelling without tone, e.g. "pin".
	Ascii Notation = 1 << iota
	// AsciiTone is the canonical spelling with a tone digit suffix
	// (1-5, 5 = neutral), e.g. "pin1".
	AsciiTone
	// Unicode is the canonical spelling with the tone mark placed on the
	// conventional vowel, e.g. "pīn".
	Unicode
	// AsciiFirstLetter is the first ASCII letter of the spelling; digraph
	// initials (zh/ch/sh) contribute only their first letter.
	AsciiFirstLetter
	// ShuangpinABC is the two-letter Intelligent ABC layout.
	ShuangpinABC
	// ShuangpinJiajia is the two-letter Pinyin Jiajia layout.
	ShuangpinJiajia
	// ShuangpinMicrosoft is the two-letter Microsoft layout.
	ShuangpinMicrosoft
	// ShuangpinThunisoft is the two-letter Thunisoft (Ziguang) layout.
	ShuangpinThunisoft
	// ShuangpinXiaohe is the two-letter Xiaohe layout.
	ShuangpinXiaohe
	// ShuangpinZrm is the two-letter Ziranma layout.
	ShuangpinZrm

	notationCount = 10
)

// ShuangpinZiguang is an alias: Thunisoft's layout is commonly known by
// its product name Ziguang.
const ShuangpinZiguang = ShuangpinThunisoft

// All is every supported notation combined.
const All = Ascii | AsciiTone | Unicode | AsciiFirstLetter |
	ShuangpinABC | ShuangpinJiajia | ShuangpinMicrosoft |
	ShuangpinThunisoft | ShuangpinXiaohe | ShuangpinZrm

var notationNames = [notationCount]string{
	"ascii", "ascii-tone", "unicode", "ascii-first-letter",
	"shuangpin-abc", "shuangpin-jiajia", "shuangpin-microsoft",
	"shuangpin-thunisoft", "shuangpin-xiaohe", "shuangpin-zrm",
}

// String returns a human-readable form like "ascii|shuangpin-xiaohe".
func (n Notation) String() string {
	if n == 0 {
		return "none"
	}
	var parts []string
	for i := 0; i < notationCount; i++ {
		if n&(1<<i) != 0 {
			parts = append(parts, notationNames[i])
		}
	}
	if rest := n &^ All; rest != 0 {
		parts = append(parts, "unknown")
	}
	return strings.Join(parts, "|")
}

// index returns the dense index of a single-bit notation, or -1.
func (n Notation) index() int {
	for i := 0; i < notationCount; i++ {
		if n == 1<<i {
			return i
		}
	}
	return -1
}

// Split enumerates the single-bit notations contained in the mask, in wire
// value order.
func (n Notation) Split() []Notation {
	var out []Notation
	for i := 0; i < notationCount; i++ {
		if n&(1<<i) != 0 {
			out = append(out, 1<<i)
		}
	}
	return out
}

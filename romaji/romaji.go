// Package romaji provides the Hepburn reading table and romanizer used by
// the transliteration matcher.
//
// At a haystack position the romanizer reports every way the text there
// can be read in Hepburn romaji: the longest kana or compound key from the
// table, then per-kanji readings as fallback. Special marks are handled on
// the fly: the sokuon っ doubles the following consonant (chi -> tchi),
// the moraic nasal ん demands n'/nn disambiguation before vowels, the
// iteration mark 々 repeats the preceding kanji's readings, and ー extends
// the previous vowel. Half-width katakana is folded to full-width before
// lookup.
//
// The table is built once on first use and is immutable afterwards;
// lookups take no locks.
package romaji

import "sync"

// maxKeyRunes bounds the lookup window: the longest table key plus one
// voiced half-width pair.
const maxKeyRunes = 6

// Romanizer answers reading queries against the built table.
// It is safe for concurrent use.
type Romanizer struct {
	trie *runeTrie
}

var (
	romanizerOnce sync.Once
	romanizer     *Romanizer
)

// Load returns the process-wide romanizer, building the table on first
// call. The build is idempotent under concurrent first calls.
func Load() *Romanizer {
	romanizerOnce.Do(func() {
		t := newRuneTrie()
		addKanaRows(t)
		addCompoundRows(t)
		romanizer = &Romanizer{trie: t}
	})
	return romanizer
}

func isSokuon(c rune) bool { return c == 'っ' || c == 'ッ' }

const longVowelMark = 'ー'

// ForEachReading calls f with every reading of the text at rs[i], in
// preference order: table key hits (longest key, common reading first),
// then per-kanji readings. nRunes is the number of haystack runes the
// reading consumes; word marks readings from the compound word table.
// Iteration stops early when f returns true.
func (ro *Romanizer) ForEachReading(rs []rune, i int, f func(nRunes int, text string, word bool) bool) {
	if i >= len(rs) {
		return
	}

	folded, consumed := foldKana(rs[i:], maxKeyRunes)
	c := folded[0]

	switch {
	case isSokuon(c):
		// The sokuon itself produces no syllable: the following kana's
		// readings are emitted with their first consonant doubled. A
		// trailing sokuon has no reading at all.
		keyLen, readings, _ := ro.trie.lookupLongest(folded[1:])
		if keyLen == 0 {
			return
		}
		n := sum(consumed[:1+keyLen])
		for _, reading := range readings {
			if g := geminate(reading); g != "" && f(n, g, false) {
				return
			}
		}
		return

	case c == longVowelMark:
		// The long-vowel mark extends the previous vowel; a literal "-"
		// is accepted as well.
		if v := ro.prevVowel(rs, i); v != "" {
			if f(1, v, false) {
				return
			}
		}
		f(1, "-", false)
		return

	case c == Noma:
		// The iteration mark repeats the preceding kanji's readings
		// (the last kanji only, not a whole compound).
		if i > 0 {
			for _, reading := range kanjiReadings[rs[i-1]] {
				if f(1, reading, false) {
					return
				}
			}
		}
		f(1, nomaReading, false)
		return
	}

	if keyLen, readings, word := ro.trie.lookupLongest(folded); keyLen > 0 {
		n := sum(consumed[:keyLen])
		for _, reading := range readings {
			if f(n, reading, word) {
				return
			}
		}
	}

	for _, reading := range kanjiReadings[c] {
		if f(1, reading, false) {
			return
		}
	}
}

// Reading is one romanization of a haystack position.
type Reading struct {
	Runes int    // haystack runes consumed
	Text  string // Hepburn spelling (or IME-ASCII variant)
	Word  bool   // from the compound word table
}

// ReadingsAt collects every reading at rs[i]. Mainly for tests and the
// romanizer by-product API; the matcher uses ForEachReading.
func (ro *Romanizer) ReadingsAt(rs []rune, i int) []Reading {
	var out []Reading
	ro.ForEachReading(rs, i, func(n int, text string, word bool) bool {
		out = append(out, Reading{Runes: n, Text: text, Word: word})
		return false
	})
	return out
}

// prevVowel returns the final vowel of the preceding kana's first reading,
// or "" when there is none.
func (ro *Romanizer) prevVowel(rs []rune, i int) string {
	if i == 0 {
		return ""
	}
	folded, _ := foldKana(rs[i-1:i], 1)
	keyLen, readings, _ := ro.trie.lookupLongest(folded)
	if keyLen == 0 || len(readings) == 0 {
		return ""
	}
	first := readings[0]
	last := first[len(first)-1]
	switch last {
	case 'a', 'e', 'i', 'o', 'u':
		return string(last)
	}
	return ""
}

// RomanizeKana romanizes a pure kana string using each kana's first
// reading. ok is false when a non-kana character is encountered.
func (ro *Romanizer) RomanizeKana(s string) (string, bool) {
	rs := []rune(s)
	out := make([]byte, 0, len(rs)*3)
	prev := ""
	for i := 0; i < len(rs); {
		var text string
		var n int
		ro.ForEachReading(rs, i, func(nRunes int, t string, _ bool) bool {
			n, text = nRunes, t
			return true
		})
		if n == 0 {
			return "", false
		}
		if prev != "" && text != "" &&
			prev[len(prev)-1] == 'n' && isVowelOrY(text[0]) {
			// Keep the output unambiguous: n before a vowel gets the
			// apostrophe unless the reading already carries one.
			if text[0] != '\'' {
				out = append(out, '\'')
			}
		}
		out = append(out, text...)
		prev = text
		i += n
	}
	return string(out), true
}

// IsRomanizable reports whether the whole string can be read as Japanese
// text by the table.
func (ro *Romanizer) IsRomanizable(s string) bool {
	rs := []rune(s)
	return ro.romanizableFrom(rs, 0, make(map[int]bool))
}

func (ro *Romanizer) romanizableFrom(rs []rune, i int, seen map[int]bool) bool {
	if i >= len(rs) {
		return true
	}
	if seen[i] {
		return false
	}
	seen[i] = true

	found := false
	ro.ForEachReading(rs, i, func(n int, _ string, _ bool) bool {
		if ro.romanizableFrom(rs, i+n, seen) {
			found = true
			return true
		}
		return false
	})
	return found
}

func sum(xs []int) int {
	total := 0
	for _, x := range xs {
		total += x
	}
	return total
}

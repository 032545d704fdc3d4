package pinyin

import "strings"

// Syllable is one pinyin reading: a canonical base spelling (lowercase
// ASCII, ü written as v), a tone in 1..5 (5 = neutral), and the derived
// spelling for every notation, precomputed at table build time.
type Syllable struct {
	base string
	tone int

	// spellings indexed by dense notation index. Shuangpin entries may be
	// empty when the layout cannot express the syllable (non-standard
	// finals such as interjection readings).
	spellings [notationCount]string
}

// Base returns the canonical spelling without tone.
func (s *Syllable) Base() string { return s.base }

// Tone returns the tone in 1..5, where 5 is the neutral tone.
func (s *Syllable) Tone() int { return s.tone }

// Initial returns the initial of the syllable: one of the 21 standard
// initials (including the zh/ch/sh digraphs), "y" or "w" for glide
// spellings, or "" for zero-consonant syllables.
func (s *Syllable) Initial() string { return splitInitial(s.base) }

// Final returns the final (rhyme) of the syllable as spelled.
func (s *Syllable) Final() string { return strings.TrimPrefix(s.base, splitInitial(s.base)) }

// Notation returns the spelling of the syllable in the given single-bit
// notation. ok is false when the notation cannot express the syllable or
// more than one bit is set.
func (s *Syllable) Notation(n Notation) (spelling string, ok bool) {
	idx := n.index()
	if idx < 0 || s.spellings[idx] == "" {
		return "", false
	}
	return s.spellings[idx], true
}

// Standard initials, digraphs before their single-letter prefixes so that
// prefix scanning picks "zh" over "z". The glides y/w are included because
// shuangpin layouts treat them as initial keys.
var initials = []string{
	"b", "p", "m", "f", "d", "t", "n", "l",
	"g", "k", "h", "j", "q", "x", "r",
	"zh", "ch", "sh", "z", "c", "s",
	"y", "w",
}

func splitInitial(base string) string {
	// Digraphs first.
	for _, ini := range []string{"zh", "ch", "sh"} {
		if strings.HasPrefix(base, ini) {
			return ini
		}
	}
	for _, ini := range initials {
		if len(ini) == 1 && strings.HasPrefix(base, ini) {
			return ini
		}
	}
	return ""
}

// toneVowels maps a base vowel to its four tone-marked forms.
var toneVowels = map[byte][4]rune{
	'a': {'ā', 'á', 'ǎ', 'à'},
	'e': {'ē', 'é', 'ě', 'è'},
	'i': {'ī', 'í', 'ǐ', 'ì'},
	'o': {'ō', 'ó', 'ǒ', 'ò'},
	'u': {'ū', 'ú', 'ǔ', 'ù'},
	'v': {'ǖ', 'ǘ', 'ǚ', 'ǜ'},
}

// unicodeSpelling places the tone mark per the standard rules: a and e
// always carry it; in "ou" the o carries it; otherwise the last vowel
// does. v is rendered as ü.
func unicodeSpelling(base string, tone int) string {
	pos := -1
	if i := strings.IndexByte(base, 'a'); i >= 0 {
		pos = i
	} else if i := strings.IndexByte(base, 'e'); i >= 0 {
		pos = i
	} else if i := strings.Index(base, "ou"); i >= 0 {
		pos = i
	} else {
		for i := len(base) - 1; i >= 0; i-- {
			switch base[i] {
			case 'i', 'o', 'u', 'v':
				pos = i
			}
			if pos >= 0 {
				break
			}
		}
	}

	var b strings.Builder
	for i := 0; i < len(base); i++ {
		c := base[i]
		if i == pos && tone >= 1 && tone <= 4 {
			b.WriteRune(toneVowels[c][tone-1])
			continue
		}
		if c == 'v' {
			b.WriteRune('ü')
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

// newSyllable builds a syllable with every notation spelling precomputed.
func newSyllable(base string, tone int) *Syllable {
	s := &Syllable{base: base, tone: tone}
	s.spellings[Ascii.index()] = base
	s.spellings[AsciiTone.index()] = base + string(rune('0'+tone))
	s.spellings[Unicode.index()] = unicodeSpelling(base, tone)
	s.spellings[AsciiFirstLetter.index()] = base[:1]
	for _, n := range []Notation{
		ShuangpinABC, ShuangpinJiajia, ShuangpinMicrosoft,
		ShuangpinThunisoft, ShuangpinXiaohe, ShuangpinZrm,
	} {
		if sp, ok := shuangpinSpelling(n, base); ok {
			s.spellings[n.index()] = sp
		}
	}
	return s
}

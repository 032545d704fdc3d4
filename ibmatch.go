// Package ibmatch provides a multilingual substring, glob and regex
// matcher: a Latin-letter pattern can match a haystack containing Chinese
// Han characters through their pinyin readings and Japanese kana/kanji
// through their Hepburn romaji readings.
//
// Basic usage:
//
//	m := ibmatch.New("pysousuoeve", ibmatch.DefaultConfig().WithPinyin(
//		pinyin.Ascii|pinyin.AsciiFirstLetter))
//	match, ok := m.Find("拼音搜索Everything")
//	// ok == true, match spans the whole haystack in UTF-8 bytes
//
//	m = ibmatch.New("konosuba", ibmatch.DefaultConfig().WithRomaji())
//	m.IsMatch("この素晴らしい世界に祝福を") // true
//
// A Matcher is immutable after New and safe for concurrent use. Search
// scratch state lives on the call stack and in a per-call visited set, so
// no synchronization is needed to share one Matcher across goroutines.
//
// The search explores, at every haystack position, the set of possible
// readings of the characters there: a literal step, then pinyin
// transitions, then romaji transitions, memoized on (haystack position,
// pattern position) so heteronym branching stays linear.
package ibmatch

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/coregx/ahocorasick"

	"github.com/coregx/ibmatch/pinyin"
	"github.com/coregx/ibmatch/romaji"
	"github.com/coregx/ibmatch/simd"
)

// patternChar is one code point of the pattern with its precomputed
// folded form and the pattern tail starting at it, in both casings.
type patternChar struct {
	r, fold    rune
	suffix     string
	suffixFold string
}

// Matcher is a compiled substring pattern under a MatchConfig.
// It is immutable after New and safe for concurrent use.
type Matcher struct {
	pattern     string
	patternFold string
	chars       []patternChar
	cfg         MatchConfig

	// ascii is the pure-ASCII haystack fast path: when the pattern is
	// all ASCII an Aho-Corasick automaton replaces the exploration.
	ascii *ahocorasick.Automaton

	dict      *pinyin.Dict
	notations []pinyin.Notation
	rom       *romaji.Romanizer

	// requireTranslit disables the literal step: every pattern letter
	// must be consumed by a transliteration transition. Set by the
	// ";py" and ";rm" pattern postmodifiers.
	requireTranslit bool
}

// maxPatternPerRune bounds how many pattern code points one haystack code
// point can consume: the longest reading any table produces.
const maxPatternPerRune = 12

// New compiles a plain (non-regex) pattern under cfg. Building cannot
// fail: any string is a valid substring pattern.
func New(pattern string, cfg MatchConfig) *Matcher {
	m := &Matcher{
		pattern:     pattern,
		patternFold: foldString(pattern),
		cfg:         cfg,
	}

	runes := []rune(pattern)
	runesFold := []rune(m.patternFold)
	byteOff, byteOffFold := 0, 0
	m.chars = make([]patternChar, len(runes))
	for i := range runes {
		m.chars[i] = patternChar{
			r:          runes[i],
			fold:       runesFold[i],
			suffix:     pattern[byteOff:],
			suffixFold: m.patternFold[byteOffFold:],
		}
		byteOff += utf8.RuneLen(runes[i])
		byteOffFold += utf8.RuneLen(runesFold[i])
	}

	if notations, ok := cfg.pinyinNotations(); ok {
		m.dict = pinyin.Load()
		m.notations = notations.Split()
		// First-letter spellings are prefixes of the full ones; trying
		// them first prefers the longer haystack span when both apply.
		for i, nt := range m.notations {
			if nt == pinyin.AsciiFirstLetter && i > 0 {
				copy(m.notations[1:i+1], m.notations[:i])
				m.notations[0] = pinyin.AsciiFirstLetter
				break
			}
		}
	}
	m.rom = cfg.romanizer()

	m.buildASCII()
	return m
}

// buildASCII prepares the Aho-Corasick fast path for pure-ASCII
// haystacks. Skipped when the pattern has non-ASCII content (such a
// pattern cannot match an ASCII haystack at all), when anchors are
// requested (the automaton reports leftmost matches only), or when the
// uppercase-literal policy would need per-letter casing.
func (m *Matcher) buildASCII() {
	if len(m.pattern) == 0 || simd.IndexNonASCII([]byte(m.pattern)) >= 0 {
		return
	}
	if m.cfg.AnchoredStart || m.cfg.AnchoredEnd {
		return
	}
	if m.cfg.UppercaseLiteral && m.pattern != m.patternFold {
		return
	}

	pat := m.pattern
	if m.cfg.CaseInsensitive {
		pat = m.patternFold
	}
	builder := ahocorasick.NewBuilder()
	builder.AddPattern([]byte(pat))
	auto, err := builder.Build()
	if err != nil {
		return
	}
	m.ascii = auto
}

// Pattern returns the pattern string the matcher was built from.
func (m *Matcher) Pattern() string { return m.pattern }

// IsMatch reports whether the pattern matches anywhere in the haystack
// (or at the configured anchors).
func (m *Matcher) IsMatch(haystack string) bool {
	_, ok := m.Find(haystack)
	return ok
}

// Find returns the leftmost match with byte offsets into the UTF-8
// haystack. Ill-formed sequences are treated as unmatchable code points,
// never as errors.
func (m *Matcher) Find(haystack string) (Match, bool) {
	if len(m.chars) == 0 {
		return Match{}, true
	}

	if simd.IsASCII([]byte(haystack)) {
		return m.findASCII(haystack)
	}

	rs, offs := decodeString(haystack)
	return m.findRunes(rs, offs)
}

// findASCII is the pure-ASCII haystack path: no transliteration
// transition can fire, so the search degrades to a substring scan.
func (m *Matcher) findASCII(haystack string) (Match, bool) {
	if simd.IndexNonASCII([]byte(m.pattern)) >= 0 {
		// A pattern with non-ASCII content cannot match ASCII text.
		return Match{}, false
	}

	if m.ascii != nil {
		h := []byte(haystack)
		if m.cfg.CaseInsensitive {
			h = asciiFold(h)
		}
		am := m.ascii.Find(h, 0)
		if am == nil {
			return Match{}, false
		}
		return Match{start: am.Start, end: am.End}, true
	}

	// Anchored or uppercase-literal searches walk the general engine;
	// offsets over ASCII are the rune indices.
	rs, offs := decodeString(haystack)
	return m.findRunes(rs, offs)
}

// asciiFold lowercases ASCII bytes into a fresh buffer.
func asciiFold(b []byte) []byte {
	out := make([]byte, len(b))
	for i, c := range b {
		if 'A' <= c && c <= 'Z' {
			c += 'a' - 'A'
		}
		out[i] = c
	}
	return out
}

// decodeString decodes a UTF-8 haystack into code points plus the byte
// offset of each (offs has one extra entry holding len(haystack)).
func decodeString(s string) (rs []rune, offs []int) {
	rs = make([]rune, 0, len(s))
	offs = make([]int, 0, len(s)+1)
	for i, r := range s {
		rs = append(rs, r)
		offs = append(offs, i)
	}
	offs = append(offs, len(s))
	return rs, offs
}

// Language restriction of an exploration branch. Without MixLang a match
// sticks to the system of its first non-literal transition.
const (
	langAny = iota
	langPinyin
	langRomaji
	langCount
)

// search is the per-call scratch state: the decoded haystack and the
// visited set over (haystack position, pattern position, language).
type search struct {
	m    *Matcher
	rs   []rune
	offs []int

	visited []uint64
}

func (m *Matcher) newSearch(rs []rune, offs []int) *search {
	bits := (len(rs) + 1) * (len(m.chars) + 1) * langCount
	return &search{
		m:       m,
		rs:      rs,
		offs:    offs,
		visited: make([]uint64, (bits+63)/64),
	}
}

// shouldVisit marks (i, j, lang) and reports whether it was new. Failed
// explorations are start-independent, so the set is shared across start
// positions; this is what bounds the whole search to O(|P|*|H|).
func (s *search) shouldVisit(i, j, lang int) bool {
	idx := (i*(len(s.m.chars)+1)+j)*langCount + lang
	word, bit := idx/64, uint64(1)<<(idx%64)
	if s.visited[word]&bit != 0 {
		return false
	}
	s.visited[word] |= bit
	return true
}

// findRunes runs the exploration over decoded code points. offs maps a
// rune index to its surface offset (bytes, u16 units or rune index).
func (m *Matcher) findRunes(rs []rune, offs []int) (Match, bool) {
	if len(m.chars) == 0 {
		return Match{}, true
	}

	s := m.newSearch(rs, offs)

	firstASCII := byte(0)
	if c := m.chars[0].fold; c < utf8.RuneSelf {
		firstASCII = byte(c)
	}

	for start := 0; start <= len(rs)-1; start++ {
		if m.cfg.AnchoredStart && start > 0 {
			break
		}
		// ASCII pre-scan: an ASCII haystack rune can only begin a match
		// by the literal step, so mismatching starts are skipped without
		// touching the exploration.
		if hr := rs[start]; hr < utf8.RuneSelf && firstASCII != 0 {
			ok := byte(FoldRune(hr)) == firstASCII
			if !ok && !m.cfg.CaseInsensitive {
				ok = byte(hr) == byte(m.chars[0].r)
			}
			if !ok {
				continue
			}
		}

		if end, partial, ok := s.explore(start, 0, langAny); ok {
			return Match{
				start:   offs[start],
				end:     offs[end],
				partial: partial,
			}, true
		}
	}
	return Match{}, false
}

// explore advances from haystack rune i and pattern char j. It returns
// the haystack rune index one past the match when the rest of the pattern
// can be consumed.
func (s *search) explore(i, j, lang int) (end int, partial bool, ok bool) {
	m := s.m

	if j == len(m.chars) {
		if m.cfg.AnchoredEnd && i != len(s.rs) {
			return 0, false, false
		}
		return i, false, true
	}
	if i == len(s.rs) {
		return 0, false, false
	}
	// Length prune: one haystack code point consumes at most
	// maxPatternPerRune pattern code points.
	if (len(s.rs)-i)*maxPatternPerRune < len(m.chars)-j {
		return 0, false, false
	}
	if !s.shouldVisit(i, j, lang) {
		return 0, false, false
	}

	hr := s.rs[i]
	pc := &m.chars[j]

	// Literal step.
	if !m.requireTranslit && s.literalEq(hr, pc) {
		if end, partial, ok = s.explore(i+1, j+1, lang); ok {
			return end, partial, true
		}
	}

	// An ASCII haystack code point has no readings.
	if hr < utf8.RuneSelf || !m.cfg.translitEnabled() {
		return 0, false, false
	}

	if m.dict != nil && lang != langRomaji {
		if end, partial, ok = s.explorePinyin(i, j, lang, hr); ok {
			return end, partial, true
		}
	}

	if m.rom != nil && lang != langPinyin {
		if end, partial, ok = s.exploreRomaji(i, j, lang); ok {
			return end, partial, true
		}
	}

	return 0, false, false
}

// literalEq applies the case policy to one literal comparison.
func (s *search) literalEq(hr rune, pc *patternChar) bool {
	if !s.m.cfg.CaseInsensitive {
		return hr == pc.r
	}
	if s.m.cfg.UppercaseLiteral && unicode.IsUpper(pc.r) {
		return hr == pc.r
	}
	return FoldRune(hr) == pc.fold
}

// endsMora reports whether a romaji string ends where a mora can end: on
// a vowel or the moraic nasal.
func endsMora(s string) bool {
	if s == "" {
		return false
	}
	switch s[len(s)-1] {
	case 'a', 'e', 'i', 'o', 'u', 'n':
		return true
	}
	return false
}

// nextLang returns the language restriction after taking a transition of
// the given system.
func (s *search) nextLang(lang, system int) int {
	if s.m.cfg.MixLang {
		return langAny
	}
	if lang == langAny {
		return system
	}
	return lang
}

// translitPattern returns the remaining pattern used for reading
// comparisons. Readings are lowercase, so under the uppercase-literal
// policy the unfolded tail is compared: any uppercase pattern letter then
// refuses to be consumed by a transliteration.
func (s *search) translitPattern(j int) string {
	if s.m.cfg.CaseInsensitive && !s.m.cfg.UppercaseLiteral {
		return s.m.chars[j].suffixFold
	}
	return s.m.chars[j].suffix
}

// explorePinyin tries every reading of hr in every active notation
// against the remaining pattern.
func (s *search) explorePinyin(i, j, lang int, hr rune) (int, bool, bool) {
	m := s.m
	readings := m.dict.Readings(hr)
	if len(readings) == 0 {
		return 0, false, false
	}

	remaining := s.translitPattern(j)
	next := s.nextLang(lang, langPinyin)

	for _, syl := range readings {
		for _, nt := range m.notations {
			sp, ok := syl.Notation(nt)
			if !ok {
				continue
			}
			if strings.HasPrefix(remaining, sp) {
				jAdv := j + utf8.RuneCountInString(sp)
				if end, partial, ok := s.explore(i+1, jAdv, next); ok {
					return end, partial, true
				}
				continue
			}
			if m.cfg.PatternPartial &&
				len(remaining) < len(sp) && strings.HasPrefix(sp, remaining) {
				// Pattern exhausted inside this reading.
				if !m.cfg.AnchoredEnd || i+1 == len(s.rs) {
					return i + 1, true, true
				}
			}
		}
	}
	return 0, false, false
}

// exploreRomaji tries every romanization of the text at rs[i] against the
// remaining pattern, honoring the Hepburn IME equivalences.
func (s *search) exploreRomaji(i, j, lang int) (endOut int, partialOut, okOut bool) {
	m := s.m
	remaining := s.translitPattern(j)
	next := s.nextLang(lang, langRomaji)

	m.rom.ForEachReading(s.rs, i, func(nRunes int, text string, word bool) bool {
		if romaji.PatternStartsWith(remaining, text) {
			// Readings are ASCII plus the apostrophe, so byte length
			// equals pattern code points consumed.
			if end, partial, ok := s.explore(i+nRunes, j+len(text), next); ok {
				endOut, partialOut, okOut = end, partial, true
				return true
			}
			return false
		}

		// Word keys may be left mid-reading even outside partial-pattern
		// mode, but only on a mora boundary: "suba" can stop inside
		// "subarashii", "sub" cannot.
		partialAllowed := m.cfg.PatternPartial ||
			(word && m.cfg.Romaji.PartialWord && endsMora(remaining))
		if partialAllowed &&
			len(remaining) < len(text) && romaji.ReadingStartsWith(text, remaining) {
			if !m.cfg.AnchoredEnd || i+nRunes == len(s.rs) {
				endOut, partialOut, okOut = i+nRunes, true, true
				return true
			}
		}
		return false
	})
	return endOut, partialOut, okOut
}

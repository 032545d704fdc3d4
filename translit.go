package ibmatch

import (
	"strings"
	"unicode/utf8"

	"github.com/coregx/ibmatch/nfa"
	"github.com/coregx/ibmatch/romaji"
)

// The regex front-end lowers every literal atom into a transliteration
// meta-state: "match literal L, or any reading sequence that consumes
// L". The atom delegates back to the substring matcher's tables; unlike
// Find it enumerates every possible haystack length, because the atom's
// end feeds the surrounding automaton nondeterministically.

// atomCompiler implements nfa.AtomCompiler for a MatchConfig.
type atomCompiler struct {
	cfg MatchConfig
}

func (a atomCompiler) CompileAtom(literal string) nfa.TranslitAtom {
	cfg := a.cfg
	// Anchoring and partial-pattern are whole-match properties; inside
	// an automaton the atom must consume its literal exactly.
	cfg.AnchoredStart = false
	cfg.AnchoredEnd = false
	cfg.PatternPartial = false
	return &translitAtom{m: New(literal, cfg)}
}

// translitAtom adapts a compiled Matcher to the NFA meta-state contract.
type translitAtom struct {
	m *Matcher
}

// Literal returns the literal text the atom was built from.
func (t *translitAtom) Literal() string { return t.m.Pattern() }

// ExploreAt enumerates every haystack rune count that can consume the
// whole literal starting at rs[at]. Unlike the substring matcher's
// first-success search, the exploration continues past a success so the
// surrounding automaton can backtrack into alternative atom lengths.
func (t *translitAtom) ExploreAt(rs []rune, at int, yield func(nRunes int) bool) bool {
	m := t.m
	if len(m.chars) == 0 {
		return yield(0)
	}

	e := &atomSearch{search: m.newSearch(rs, nil), at: at, yield: yield}
	return e.run(at, 0, langAny)
}

// atomSearch enumerates atom consumptions. The visited set is reused
// from the substring matcher: a revisited (position, pattern, language)
// subtree reproduces ends already reported, so it is pruned, which keeps
// the enumeration O(|literal| * |haystack|).
type atomSearch struct {
	*search
	at    int
	yield func(nRunes int) bool
}

// run reports whether the yield callback stopped the enumeration.
func (e *atomSearch) run(i, j, lang int) bool {
	m := e.m

	if j == len(m.chars) {
		return e.yield(i - e.at)
	}
	if i == len(e.rs) {
		return false
	}
	if (len(e.rs)-i)*maxPatternPerRune < len(m.chars)-j {
		return false
	}
	if !e.shouldVisit(i, j, lang) {
		return false
	}

	hr := e.rs[i]
	pc := &m.chars[j]

	if !m.requireTranslit && e.literalEq(hr, pc) {
		if e.run(i+1, j+1, lang) {
			return true
		}
	}

	if hr < utf8.RuneSelf || !m.cfg.translitEnabled() {
		return false
	}

	if m.dict != nil && lang != langRomaji {
		remaining := e.translitPattern(j)
		next := e.nextLang(lang, langPinyin)
		for _, syl := range m.dict.Readings(hr) {
			for _, nt := range m.notations {
				sp, ok := syl.Notation(nt)
				if !ok || !strings.HasPrefix(remaining, sp) {
					continue
				}
				if e.run(i+1, j+utf8.RuneCountInString(sp), next) {
					return true
				}
			}
		}
	}

	if m.rom != nil && lang != langPinyin {
		remaining := e.translitPattern(j)
		next := e.nextLang(lang, langRomaji)
		stopped := false
		m.rom.ForEachReading(e.rs, i, func(nRunes int, text string, _ bool) bool {
			if !romaji.PatternStartsWith(remaining, text) {
				return false
			}
			if e.run(i+nRunes, j+len(text), next) {
				stopped = true
				return true
			}
			return false
		})
		if stopped {
			return true
		}
	}

	return false
}

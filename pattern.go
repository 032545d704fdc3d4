package ibmatch

import "strings"

// Pattern postmodifiers, the search-box syntax used by file-listing
// hosts: a trailing ";en", ";py" or ";rm" restricts how the pattern is
// matched. The modifiers are mutually exclusive; when several are
// present only the last one is treated as a modifier.

// LangOnly restricts a parsed pattern to one matching system.
type LangOnly int

const (
	// LangAuto applies no restriction.
	LangAuto LangOnly = iota
	// LangEnglish disables pinyin and romaji expansion (";en").
	LangEnglish
	// LangPinyin requires the pattern to match through pinyin readings
	// only, never as plain letters (";py").
	LangPinyin
	// LangRomaji requires the pattern to match through romaji readings
	// only, never as plain letters (";rm").
	LangRomaji
)

// ParsePattern strips a recognized postmodifier from pattern and returns
// the bare pattern text with the restriction it selects.
func ParsePattern(pattern string) (string, LangOnly) {
	switch {
	case strings.HasSuffix(pattern, ";en"):
		return pattern[:len(pattern)-3], LangEnglish
	case strings.HasSuffix(pattern, ";py"):
		return pattern[:len(pattern)-3], LangPinyin
	case strings.HasSuffix(pattern, ";rm"):
		return pattern[:len(pattern)-3], LangRomaji
	}
	return pattern, LangAuto
}

// NewParsed compiles a pattern after postmodifier parsing: the modifier
// narrows cfg before the matcher is built.
func NewParsed(pattern string, cfg MatchConfig) *Matcher {
	text, lang := ParsePattern(pattern)
	switch lang {
	case LangEnglish:
		cfg.Pinyin = nil
		cfg.Romaji = nil
	case LangPinyin:
		cfg.Romaji = nil
	case LangRomaji:
		cfg.Pinyin = nil
	}

	m := New(text, cfg)
	if lang == LangPinyin || lang == LangRomaji {
		m.requireTranslit = true
		m.ascii = nil
	}
	return m
}

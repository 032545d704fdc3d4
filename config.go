package ibmatch

import (
	"github.com/coregx/ibmatch/pinyin"
	"github.com/coregx/ibmatch/romaji"
)

// PinyinConfig enables pinyin expansion of pattern letters.
type PinyinConfig struct {
	// Notations is the bitmask of spellings searched disjunctively.
	// Zero means the common default, pinyin.Ascii|pinyin.AsciiFirstLetter.
	Notations pinyin.Notation
}

// RomajiConfig enables romaji expansion of pattern letters.
type RomajiConfig struct {
	// PartialWord allows a match to end inside a multi-kana word key
	// when the pattern is exhausted. Most users want this on: Japanese
	// word keys can be long. Enabled by DefaultConfig.
	PartialWord bool
}

// MatchConfig describes which transliterations are enabled and how the
// matcher treats case, anchoring and partial patterns.
//
// The zero value is a plain case-sensitive substring matcher. Use
// DefaultConfig for the common case-insensitive defaults. A MatchConfig
// is a value: copy it freely, share it across builds.
type MatchConfig struct {
	// Pinyin enables pinyin expansion when non-nil.
	Pinyin *PinyinConfig

	// Romaji enables romaji expansion when non-nil.
	Romaji *RomajiConfig

	// CaseInsensitive applies simple case folding to pattern and
	// haystack letters.
	CaseInsensitive bool

	// UppercaseLiteral makes an uppercase pattern letter match only the
	// exact letter even when CaseInsensitive is set. Used to force
	// literal matching against ASCII.
	UppercaseLiteral bool

	// AnchoredStart restricts matches to a prefix of the haystack.
	AnchoredStart bool

	// AnchoredEnd restricts matches to a suffix of the haystack.
	AnchoredEnd bool

	// PatternPartial allows the match to end mid-reading: the pattern is
	// consumed entirely but the last reading is not. "pinyi" then
	// matches 拼音, "konosuba" matches この素晴らしい.
	PatternPartial bool

	// MixLang allows a single match to alternate pinyin and romaji
	// segments. When off, one match sticks to the transliteration
	// system of its first non-literal transition.
	MixLang bool
}

// DefaultConfig returns the common configuration: case-insensitive with
// both transliterations off. Enable Pinyin/Romaji per call site.
func DefaultConfig() MatchConfig {
	return MatchConfig{CaseInsensitive: true}
}

// WithPinyin returns a copy with pinyin enabled for the given notations
// (zero mask means Ascii|AsciiFirstLetter).
func (c MatchConfig) WithPinyin(notations pinyin.Notation) MatchConfig {
	c.Pinyin = &PinyinConfig{Notations: notations}
	return c
}

// WithRomaji returns a copy with romaji enabled.
func (c MatchConfig) WithRomaji() MatchConfig {
	c.Romaji = &RomajiConfig{PartialWord: true}
	return c
}

// pinyinNotations reports whether pinyin expansion is on and returns the
// effective notation mask.
func (c *MatchConfig) pinyinNotations() (pinyin.Notation, bool) {
	if c.Pinyin == nil {
		return 0, false
	}
	n := c.Pinyin.Notations
	if n == 0 {
		n = pinyin.Ascii | pinyin.AsciiFirstLetter
	}
	return n, true
}

// translitEnabled reports whether any transliteration is configured.
func (c *MatchConfig) translitEnabled() bool {
	return c.Pinyin != nil || c.Romaji != nil
}

// romanizer returns the shared romanizer when romaji is enabled.
func (c *MatchConfig) romanizer() *romaji.Romanizer {
	if c.Romaji == nil {
		return nil
	}
	return romaji.Load()
}

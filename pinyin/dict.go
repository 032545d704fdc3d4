package pinyin

import (
	"strings"
	"sync"

	gopinyin "github.com/mozillazg/go-pinyin"
)

// Dict maps Han code points to their ordered pinyin readings. The first
// reading is the preferred one and wins ambiguity tiebreaks in the
// matcher.
//
// A Dict is immutable after construction and safe for concurrent use.
type Dict struct {
	readings map[rune][]*Syllable
}

var (
	dictOnce sync.Once
	dict     *Dict
)

// Load returns the process-wide dictionary, building it on first call.
// The build is idempotent: concurrent first calls observe the same
// published handle.
func Load() *Dict {
	dictOnce.Do(func() {
		dict = build()
	})
	return dict
}

// build assembles the reading table from the go-pinyin dictionary. The
// Tone2 style carries the tone as an inline digit, which we strip into the
// (base, tone) pair; readings without a digit are neutral tone.
func build() *Dict {
	args := gopinyin.NewArgs()
	args.Style = gopinyin.Tone2
	args.Heteronym = true

	// Distinct syllables are shared between code points: the dictionary
	// has tens of thousands of entries but only ~1500 distinct readings.
	cache := make(map[string]*Syllable)
	intern := func(raw string) *Syllable {
		if s, ok := cache[raw]; ok {
			return s
		}
		base, tone := splitTone(raw)
		s := newSyllable(base, tone)
		cache[raw] = s
		return s
	}

	readings := make(map[rune][]*Syllable, len(gopinyin.PinyinDict))
	for cp := range gopinyin.PinyinDict {
		r := rune(cp)
		raws := gopinyin.SinglePinyin(r, args)
		if len(raws) == 0 {
			continue
		}
		list := make([]*Syllable, 0, len(raws))
		for _, raw := range raws {
			raw = strings.ToLower(strings.TrimSpace(raw))
			if raw == "" {
				continue
			}
			list = append(list, intern(raw))
		}
		if len(list) > 0 {
			readings[r] = list
		}
	}
	return &Dict{readings: readings}
}

// splitTone separates the inline tone digit of a Tone2-style spelling,
// e.g. "zho1ng" -> ("zhong", 1). A missing digit means neutral tone (5).
func splitTone(raw string) (base string, tone int) {
	tone = 5
	var b strings.Builder
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if c >= '0' && c <= '5' {
			if c != '0' {
				tone = int(c - '0')
			}
			continue
		}
		b.WriteByte(c)
	}
	return b.String(), tone
}

// Readings returns the ordered reading list for a code point, or nil when
// the code point has no Chinese reading. The returned slice must not be
// modified.
func (d *Dict) Readings(r rune) []*Syllable {
	return d.readings[r]
}

// HasReading reports whether the code point has at least one pinyin
// reading.
func (d *Dict) HasReading(r rune) bool {
	_, ok := d.readings[r]
	return ok
}

// Syllables enumerates every distinct syllable in the dictionary, in
// unspecified order. Used by table-completeness tests.
func (d *Dict) Syllables() []*Syllable {
	seen := make(map[*Syllable]struct{})
	var out []*Syllable
	for _, list := range d.readings {
		for _, s := range list {
			if _, ok := seen[s]; ok {
				continue
			}
			seen[s] = struct{}{}
			out = append(out, s)
		}
	}
	return out
}

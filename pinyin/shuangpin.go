package pinyin

// Shuangpin layouts encode every syllable as exactly two ASCII letters:
// an initial key followed by a final key. Only the zh/ch/sh digraphs
// deviate from the identity mapping on initials; finals have a dedicated
// key per layout. Zero-consonant syllables (a, ai, ang, ...) follow the
// layout's own rule.
//
// Layout tables are fixed against each vendor's published reference chart
// rather than transcribed from any one implementation, since sources
// disagree on some zero-consonant rules.

type shuangpinLayout struct {
	// digraph initial keys
	zh, ch, sh byte

	// finals maps a spelled final to its key.
	finals map[string]byte

	// zero encodes a zero-consonant syllable (the full spelling is the
	// final). Returns "" when the layout cannot express it.
	zero func(l *shuangpinLayout, base string) string
}

// zeroDoubleOrKey is the rule shared by xiaohe, ziranma and jiajia:
// one-letter syllables double the vowel, two-letter syllables are typed
// as-is, three-letter syllables are the first letter plus the final key.
func zeroDoubleOrKey(l *shuangpinLayout, base string) string {
	switch len(base) {
	case 1:
		return base + base
	case 2:
		return base
	default:
		k, ok := l.finals[base]
		if !ok {
			return ""
		}
		return base[:1] + string(k)
	}
}

// zeroOMarker is the rule shared by the Microsoft, ABC and Thunisoft
// layouts: the marker key "o" acts as the initial and the final key
// follows.
func zeroOMarker(l *shuangpinLayout, base string) string {
	k, ok := l.finals[base]
	if !ok {
		return ""
	}
	return "o" + string(k)
}

var shuangpinLayouts = map[Notation]*shuangpinLayout{
	ShuangpinXiaohe: {
		zh: 'v', ch: 'i', sh: 'u',
		finals: map[string]byte{
			"a": 'a', "o": 'o', "e": 'e', "i": 'i', "u": 'u', "v": 'v',
			"ai": 'd', "ei": 'w', "ui": 'v', "ao": 'c', "ou": 'z',
			"iu": 'q', "ie": 'p', "ue": 't', "ve": 't', "er": 'e',
			"an": 'j', "en": 'f', "in": 'b', "un": 'y', "vn": 'y',
			"ang": 'h', "eng": 'g', "ing": 'k', "ong": 's',
			"ia": 'x', "ua": 'x', "uo": 'o', "uai": 'k', "uan": 'r',
			"ian": 'm', "iao": 'n', "iang": 'l', "uang": 'l', "iong": 's',
		},
		zero: zeroDoubleOrKey,
	},
	ShuangpinZrm: {
		zh: 'v', ch: 'i', sh: 'u',
		finals: map[string]byte{
			"a": 'a', "o": 'o', "e": 'e', "i": 'i', "u": 'u', "v": 'v',
			"ai": 'l', "ei": 'z', "ui": 'v', "ao": 'k', "ou": 'b',
			"iu": 'q', "ie": 'x', "ue": 't', "ve": 't', "er": 'e',
			"an": 'j', "en": 'f', "in": 'n', "un": 'p', "vn": 'p',
			"ang": 'h', "eng": 'g', "ing": 'y', "ong": 's',
			"ia": 'w', "ua": 'w', "uo": 'o', "uai": 'y', "uan": 'r',
			"ian": 'm', "iao": 'c', "iang": 'd', "uang": 'd', "iong": 's',
		},
		zero: zeroDoubleOrKey,
	},
	ShuangpinMicrosoft: {
		zh: 'v', ch: 'i', sh: 'u',
		finals: map[string]byte{
			"a": 'a', "o": 'o', "e": 'e', "i": 'i', "u": 'u', "v": 'y',
			"ai": 'l', "ei": 'z', "ui": 'v', "ao": 'k', "ou": 'b',
			"iu": 'q', "ie": 'x', "ue": 't', "ve": 't', "er": 'r',
			"an": 'j', "en": 'f', "in": 'n', "un": 'p', "vn": 'p',
			"ang": 'h', "eng": 'g', "ing": ';', "ong": 's',
			"ia": 'w', "ua": 'w', "uo": 'o', "uai": 'y', "uan": 'r',
			"ian": 'm', "iao": 'c', "iang": 'd', "uang": 'd', "iong": 's',
		},
		zero: zeroOMarker,
	},
	ShuangpinABC: {
		zh: 'a', ch: 'e', sh: 'v',
		finals: map[string]byte{
			"a": 'a', "o": 'o', "e": 'e', "i": 'i', "u": 'u', "v": 'v',
			"ai": 'l', "ei": 'q', "ui": 'm', "ao": 'k', "ou": 'b',
			"iu": 'r', "ie": 'x', "ue": 'm', "ve": 'm', "er": 'r',
			"an": 'j', "en": 'f', "in": 'c', "un": 'n', "vn": 'n',
			"ang": 'h', "eng": 'g', "ing": 'y', "ong": 's',
			"ia": 'd', "ua": 'd', "uo": 'o', "uai": 'c', "uan": 'p',
			"ian": 'w', "iao": 'z', "iang": 't', "uang": 't', "iong": 's',
		},
		zero: zeroOMarker,
	},
	ShuangpinJiajia: {
		zh: 'v', ch: 'u', sh: 'i',
		finals: map[string]byte{
			"a": 'a', "o": 'o', "e": 'e', "i": 'i', "u": 'u', "v": 'v',
			"ai": 's', "ei": 'w', "ui": 'v', "ao": 'd', "ou": 'p',
			"iu": 'n', "ie": 'm', "ue": 'x', "ve": 'x', "er": 'q',
			"an": 'f', "en": 'r', "in": 'l', "un": 'z', "vn": 'z',
			"ang": 'g', "eng": 't', "ing": 'q', "ong": 'y',
			"ia": 'b', "ua": 'b', "uo": 'o', "uai": 'x', "uan": 'c',
			"ian": 'j', "iao": 'k', "iang": 'h', "uang": 'h', "iong": 'y',
		},
		zero: zeroDoubleOrKey,
	},
	ShuangpinThunisoft: {
		zh: 'u', ch: 'a', sh: 'i',
		finals: map[string]byte{
			"a": 'a', "o": 'o', "e": 'e', "i": 'i', "u": 'u', "v": 'v',
			"ai": 'p', "ei": 'k', "ui": 'n', "ao": 'q', "ou": 'z',
			"iu": 'j', "ie": 'd', "ue": 'n', "ve": 'n', "er": 'j',
			"an": 'r', "en": 'w', "in": 'y', "un": 'm', "vn": 'm',
			"ang": 's', "eng": 't', "ing": ';', "ong": 'h',
			"ia": 'x', "ua": 'x', "uo": 'o', "uai": 'y', "uan": 'l',
			"ian": 'f', "iao": 'b', "iang": 'g', "uang": 'g', "iong": 'h',
		},
		zero: zeroOMarker,
	},
}

// shuangpinSpelling encodes base in the given layout. ok is false when the
// layout has no key for the syllable's final (non-standard readings).
func shuangpinSpelling(n Notation, base string) (string, bool) {
	l, ok := shuangpinLayouts[n]
	if !ok {
		return "", false
	}

	ini := splitInitial(base)
	if ini == "" {
		sp := l.zero(l, base)
		return sp, sp != ""
	}

	iniKey := ini[0]
	switch ini {
	case "zh":
		iniKey = l.zh
	case "ch":
		iniKey = l.ch
	case "sh":
		iniKey = l.sh
	}

	fin := base[len(ini):]
	finKey, ok := l.finals[fin]
	if !ok {
		return "", false
	}
	return string([]byte{iniKey, finKey}), true
}

package romaji

import "golang.org/x/text/width"

// Half-width katakana is normalized to full-width before trie lookup.
// The fold is done rune by rune so that haystack offsets stay exact: a
// voiced pair like ｶﾞ consumes two haystack runes but feeds the single
// rune ガ to the trie.

const (
	halfVoiced     = 'ﾞ' // U+FF9E half-width dakuten
	halfSemiVoiced = 'ﾟ' // U+FF9F half-width handakuten
)

// voiced maps a plain katakana to its dakuten form.
var voiced = map[rune]rune{
	'カ': 'ガ', 'キ': 'ギ', 'ク': 'グ', 'ケ': 'ゲ', 'コ': 'ゴ',
	'サ': 'ザ', 'シ': 'ジ', 'ス': 'ズ', 'セ': 'ゼ', 'ソ': 'ゾ',
	'タ': 'ダ', 'チ': 'ヂ', 'ツ': 'ヅ', 'テ': 'デ', 'ト': 'ド',
	'ハ': 'バ', 'ヒ': 'ビ', 'フ': 'ブ', 'ヘ': 'ベ', 'ホ': 'ボ',
	'ウ': 'ヴ',
}

// semiVoiced maps a plain katakana to its handakuten form.
var semiVoiced = map[rune]rune{
	'ハ': 'パ', 'ヒ': 'ピ', 'フ': 'プ', 'ヘ': 'ペ', 'ホ': 'ポ',
}

// foldRune normalizes one haystack rune for lookup: half-width katakana
// becomes full-width, everything else passes through.
func foldRune(c rune) rune {
	if c < 0xFF61 || c > 0xFF9F {
		return c
	}
	folded := []rune(width.Fold.String(string(c)))
	if len(folded) != 1 {
		return c
	}
	return folded[0]
}

// foldKana returns rs normalized for trie lookup together with, for each
// normalized rune, how many original runes it consumed. Voiced half-width
// pairs (ｶﾞ) collapse into one rune of consumed length two.
func foldKana(rs []rune, max int) (folded []rune, consumed []int) {
	for i := 0; i < len(rs) && len(folded) < max; {
		c := foldRune(rs[i])
		n := 1
		if i+1 < len(rs) {
			switch rs[i+1] {
			case halfVoiced:
				if v, ok := voiced[c]; ok {
					c, n = v, 2
				}
			case halfSemiVoiced:
				if v, ok := semiVoiced[c]; ok {
					c, n = v, 2
				}
			}
		}
		folded = append(folded, c)
		consumed = append(consumed, n)
		i += n
	}
	return folded, consumed
}

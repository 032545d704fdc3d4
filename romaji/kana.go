package romaji

// Kana to Hepburn table. Keys are hiragana; the katakana rows are derived
// at build time by the 0x60 code point shift (ぁ..ゖ -> ァ..ヶ), with the
// katakana-only rows appended afterwards.
//
// Readings list the Hepburn spelling first, then IME-ASCII variants
// (shi/si, tsu/tu, ...). The ん+vowel rows spell the moraic nasal as n'
// so that the matcher can demand disambiguation before vowels; the
// apostrophe also matches a second n (IME nn convention).

type kanaRow struct {
	kana     string
	readings []string
}

func row(kana string, readings ...string) kanaRow {
	return kanaRow{kana: kana, readings: readings}
}

var hiraganaRows = []kanaRow{
	row("あ", "a"), row("い", "i"), row("う", "u"), row("え", "e"), row("お", "o"),
	row("か", "ka"), row("き", "ki"), row("く", "ku"), row("け", "ke"), row("こ", "ko"),
	row("さ", "sa"), row("し", "shi", "si"), row("す", "su"), row("せ", "se"), row("そ", "so"),
	row("た", "ta"), row("ち", "chi", "ti"), row("つ", "tsu", "tu"), row("て", "te"), row("と", "to"),
	row("な", "na"), row("に", "ni"), row("ぬ", "nu"), row("ね", "ne"), row("の", "no"),
	row("は", "ha"), row("ひ", "hi"), row("ふ", "fu", "hu"), row("へ", "he"), row("ほ", "ho"),
	row("ま", "ma"), row("み", "mi"), row("む", "mu"), row("め", "me"), row("も", "mo"),
	row("や", "ya"), row("ゆ", "yu"), row("よ", "yo"),
	row("ら", "ra"), row("り", "ri"), row("る", "ru"), row("れ", "re"), row("ろ", "ro"),
	row("わ", "wa"), row("ゐ", "i", "wi"), row("ゑ", "e", "we"), row("を", "o", "wo"),
	row("ん", "n"),

	row("が", "ga"), row("ぎ", "gi"), row("ぐ", "gu"), row("げ", "ge"), row("ご", "go"),
	row("ざ", "za"), row("じ", "ji", "zi"), row("ず", "zu"), row("ぜ", "ze"), row("ぞ", "zo"),
	row("だ", "da"), row("ぢ", "ji", "di"), row("づ", "zu", "du"), row("で", "de"), row("ど", "do"),
	row("ば", "ba"), row("び", "bi"), row("ぶ", "bu"), row("べ", "be"), row("ぼ", "bo"),
	row("ぱ", "pa"), row("ぴ", "pi"), row("ぷ", "pu"), row("ぺ", "pe"), row("ぽ", "po"),

	// Small kana standing alone read as their plain vowels.
	row("ぁ", "a"), row("ぃ", "i"), row("ぅ", "u"), row("ぇ", "e"), row("ぉ", "o"),
	row("ゃ", "ya"), row("ゅ", "yu"), row("ょ", "yo"), row("ゎ", "wa"),

	// Yōon digraphs.
	row("きゃ", "kya"), row("きゅ", "kyu"), row("きょ", "kyo"),
	row("しゃ", "sha", "sya"), row("しゅ", "shu", "syu"), row("しょ", "sho", "syo"),
	row("ちゃ", "cha", "tya"), row("ちゅ", "chu", "tyu"), row("ちょ", "cho", "tyo"),
	row("にゃ", "nya"), row("にゅ", "nyu"), row("にょ", "nyo"),
	row("ひゃ", "hya"), row("ひゅ", "hyu"), row("ひょ", "hyo"),
	row("みゃ", "mya"), row("みゅ", "myu"), row("みょ", "myo"),
	row("りゃ", "rya"), row("りゅ", "ryu"), row("りょ", "ryo"),
	row("ぎゃ", "gya"), row("ぎゅ", "gyu"), row("ぎょ", "gyo"),
	row("じゃ", "ja", "jya", "zya"), row("じゅ", "ju", "jyu", "zyu"), row("じょ", "jo", "jyo", "zyo"),
	row("ぢゃ", "ja", "dya"), row("ぢゅ", "ju", "dyu"), row("ぢょ", "jo", "dyo"),
	row("びゃ", "bya"), row("びゅ", "byu"), row("びょ", "byo"),
	row("ぴゃ", "pya"), row("ぴゅ", "pyu"), row("ぴょ", "pyo"),

	// Moraic nasal before a vowel or y: the pattern must disambiguate
	// with n' (or nn, accepted by the IME equivalence).
	row("んあ", "n'a"), row("んい", "n'i"), row("んう", "n'u"), row("んえ", "n'e"), row("んお", "n'o"),
	row("んや", "n'ya"), row("んゆ", "n'yu"), row("んよ", "n'yo"),
	row("んゐ", "n'i"), row("んゑ", "n'e"),
}

// Katakana-only rows: ヴ and the extended combination kana used for
// loanwords.
var katakanaRows = []kanaRow{
	row("ヴ", "vu", "bu"),
	row("ヴァ", "va"), row("ヴィ", "vi"), row("ヴェ", "ve"), row("ヴォ", "vo"),
	row("ファ", "fa"), row("フィ", "fi"), row("フェ", "fe"), row("フォ", "fo"), row("フュ", "fyu"),
	row("ティ", "ti"), row("ディ", "di"), row("トゥ", "tu"), row("ドゥ", "du"),
	row("テュ", "tyu"), row("デュ", "dyu"),
	row("ウィ", "wi"), row("ウェ", "we"), row("ウォ", "wo"),
	row("チェ", "che"), row("シェ", "she"), row("ジェ", "je"), row("イェ", "ye"),
	row("ツァ", "tsa"), row("ツィ", "tsi"), row("ツェ", "tse"), row("ツォ", "tso"),
	row("クァ", "kwa"), row("グァ", "gwa"),
}

const (
	hiraganaLo = 'ぁ'
	hiraganaHi = 'ゖ'

	// katakanaShift maps ぁ..ゖ onto ァ..ヶ.
	katakanaShift = 0x60
)

// toKatakana shifts every hiragana rune of s into katakana. Runes outside
// the shiftable block (ん patches contain only shiftable runes) pass
// through unchanged.
func toKatakana(s string) string {
	out := make([]rune, 0, len(s))
	for _, c := range s {
		if c >= hiraganaLo && c <= hiraganaHi {
			c += katakanaShift
		}
		out = append(out, c)
	}
	return string(out)
}

// addKanaRows populates the trie with the hiragana table, its derived
// katakana form, and the katakana-only rows.
func addKanaRows(t *runeTrie) {
	for _, row := range hiraganaRows {
		t.addString(row.kana, row.readings...)
		t.addString(toKatakana(row.kana), row.readings...)
	}
	for _, row := range katakanaRows {
		t.addString(row.kana, row.readings...)
	}
}

package ibmatch

import (
	"testing"
	"unicode/utf16"

	"github.com/coregx/ibmatch/pinyin"
)

// span is a compact expectation: start and end offsets, or nil for
// no-match.
type span *[2]int

func at(start, end int) span { return &[2]int{start, end} }

func checkFind(t *testing.T, m *Matcher, haystack string, want span) {
	t.Helper()
	got, ok := m.Find(haystack)
	if want == nil {
		if ok {
			t.Errorf("Find(%q) = [%d, %d), want no match", haystack, got.Start(), got.End())
		}
		return
	}
	if !ok {
		t.Errorf("Find(%q) = no match, want [%d, %d)", haystack, want[0], want[1])
		return
	}
	if got.Start() != want[0] || got.End() != want[1] {
		t.Errorf("Find(%q) = [%d, %d), want [%d, %d)", haystack, got.Start(), got.End(), want[0], want[1])
	}
}

func pinyinMatcher(pattern string, notations pinyin.Notation) *Matcher {
	return New(pattern, DefaultConfig().WithPinyin(notations))
}

func romajiMatcher(pattern string) *Matcher {
	return New(pattern, DefaultConfig().WithRomaji())
}

func TestPlainSubstring(t *testing.T) {
	m := New("xing", DefaultConfig())
	checkFind(t, m, "xing", at(0, 4))
	checkFind(t, m, "XiNG", at(0, 4))
	checkFind(t, m, "buxing", at(2, 6))
	checkFind(t, m, "", nil)
	checkFind(t, m, "xin", nil)

	// Case-sensitive matching.
	m = New("xing", MatchConfig{})
	checkFind(t, m, "xing", at(0, 4))
	checkFind(t, m, "XiNG", nil)
}

func TestEmptyPattern(t *testing.T) {
	m := pinyinMatcher("", pinyin.Ascii)
	checkFind(t, m, "", at(0, 0))
	checkFind(t, m, "abc", at(0, 0))
}

func TestPinyinFind(t *testing.T) {
	m := pinyinMatcher("xing", pinyin.Ascii)
	checkFind(t, m, "", nil)
	checkFind(t, m, "buxing", at(2, 6))
	checkFind(t, m, "BuXiNG", at(2, 6))
	checkFind(t, m, "不行", at(3, 6))
	checkFind(t, m, "行", at(0, 3))

	m = pinyinMatcher("ke", pinyin.Ascii)
	checkFind(t, m, "ke", at(0, 2))
	checkFind(t, m, "科", at(0, 3))
	checkFind(t, m, "k鹅", at(0, 4))
	checkFind(t, m, "凯尔", nil)

	// With first-letter notation the initials alone match.
	m = pinyinMatcher("ke", pinyin.Ascii|pinyin.AsciiFirstLetter)
	checkFind(t, m, "凯尔", at(0, 6))
	checkFind(t, m, "柯尔", at(0, 6))
}

func TestPinyinEverything(t *testing.T) {
	m := pinyinMatcher("pysousuoeve", pinyin.Ascii|pinyin.AsciiFirstLetter)
	if !m.IsMatch("拼音搜索Everything") {
		t.Fatal("pysousuoeve should match 拼音搜索Everything")
	}
	got, ok := m.Find("拼音搜索Everything")
	if !ok || got.Start() != 0 {
		t.Fatalf("Find = %+v, %v; want start 0", got, ok)
	}

	// Default notations include first letters.
	m = New("pysousuoeve", DefaultConfig().WithPinyin(0))
	got, ok = m.Find("拼音搜索Everything")
	if !ok || got.Start() != 0 {
		t.Fatalf("default notations: Find = %+v, %v; want start 0", got, ok)
	}
}

func TestPinyinNotations(t *testing.T) {
	// Tone-digit spelling.
	m := pinyinMatcher("pin1yin1", pinyin.AsciiTone)
	checkFind(t, m, "拼音", at(0, 6))

	// Unicode tone spelling.
	m = pinyinMatcher("pīnyīn", pinyin.Unicode)
	checkFind(t, m, "拼音", at(0, 6))

	// Xiaohe shuangpin: pin = pb, yin = yb.
	m = pinyinMatcher("pbyb", pinyin.ShuangpinXiaohe)
	checkFind(t, m, "拼音", at(0, 6))
}

func TestNotationMonotonicity(t *testing.T) {
	// Adding a notation cannot turn a match into a non-match.
	pattern, haystack := "pysousuo", "拼音搜索"
	base := pinyin.Ascii | pinyin.AsciiFirstLetter
	if !pinyinMatcher(pattern, base).IsMatch(haystack) {
		t.Fatal("base notations should match")
	}
	for _, extra := range pinyin.All.Split() {
		if !pinyinMatcher(pattern, base|extra).IsMatch(haystack) {
			t.Errorf("adding notation %v broke the match", extra)
		}
	}
}

func TestPinyinPartial(t *testing.T) {
	cfg := DefaultConfig().WithPinyin(pinyin.Ascii)
	cfg.PatternPartial = true
	m := New("pinyi", cfg)
	got, ok := m.Find("拼音")
	if !ok {
		t.Fatal("pinyi should partially match 拼音")
	}
	if !got.IsPatternPartial() {
		t.Error("match should be flagged pattern-partial")
	}
	if got.Start() != 0 || got.End() != 6 {
		t.Errorf("partial span = [%d, %d), want [0, 6)", got.Start(), got.End())
	}

	// Without partial mode the same pair does not match.
	m = pinyinMatcher("pinyi", pinyin.Ascii)
	checkFind(t, m, "拼音", nil)
}

func TestRomajiFind(t *testing.T) {
	checkFind(t, romajiMatcher("ohayo"), "おはよう", at(0, 9))
	checkFind(t, romajiMatcher("jojo"), "おはよジョジョ", at(9, 21))
	checkFind(t, romajiMatcher("konosubarashiisekaini"), "この素晴らしい世界に祝福を", at(0, 30))
}

func TestRomajiPartialWord(t *testing.T) {
	// The word key 素晴ら can be left mid-reading even without
	// pattern-partial mode.
	checkFind(t, romajiMatcher("konosuba"), "この素晴らしい世界に祝福を", at(0, 15))

	cfg := DefaultConfig().WithRomaji()
	cfg.PatternPartial = true
	m := New("konosuba", cfg)
	checkFind(t, m, "この素晴らしい世界に祝福を", at(0, 15))

	// konosub stops mid-mora: word partials refuse it, but full
	// partial-pattern mode accepts it.
	checkFind(t, romajiMatcher("konosub"), "この素晴らしい世界に祝福を", nil)
	m = New("konosub", cfg)
	checkFind(t, m, "この素晴らしい世界に祝福を", at(0, 15))

	// Disabling word partials makes the bare pattern fail.
	cfg = DefaultConfig()
	cfg.Romaji = &RomajiConfig{PartialWord: false}
	m = New("konosuba", cfg)
	checkFind(t, m, "この素晴らしい世界に祝福を", nil)
}

func TestMoraicNasalDisambiguation(t *testing.T) {
	cfg := DefaultConfig().WithRomaji()
	cfg.AnchoredStart = true

	m := New("kan", cfg)
	checkFind(t, m, "かん", at(0, 6))
	checkFind(t, m, "かに", nil)

	m = New("kann", cfg)
	checkFind(t, m, "かんん", at(0, 9))
	checkFind(t, m, "かんに", nil)

	m = New("kanni", cfg)
	checkFind(t, m, "かんに", at(0, 9))
	checkFind(t, m, "かんんい", nil)

	m = New("kann'i", cfg)
	checkFind(t, m, "かんに", nil)
	checkFind(t, m, "かんんい", at(0, 12))

	m = New("botan'yuki", cfg)
	checkFind(t, m, "ボタン雪", at(0, 12))
}

func TestMoraicNasalPartial(t *testing.T) {
	cfg := DefaultConfig().WithRomaji()
	cfg.AnchoredStart = true
	cfg.PatternPartial = true

	m := New("kan", cfg)
	checkFind(t, m, "かん", at(0, 6))
	checkFind(t, m, "かに", at(0, 6)) // "kan" as prefix of "kani"

	m = New("kann'", cfg)
	checkFind(t, m, "かんん", nil)
	checkFind(t, m, "かんに", nil)
}

func TestRomajiIME(t *testing.T) {
	m := romajiMatcher("nisekainyonyo")
	checkFind(t, m, "キャンヰ世界ニョニョ", nil)

	m = romajiMatcher("n'isekainyonyo")
	checkFind(t, m, "キャンヰ世界ニョニョ", at(6, 30))

	// nn spelling and half-width katakana.
	m = romajiMatcher("nnisekainyonyo")
	checkFind(t, m, "キャンヰ世界ﾆｮﾆｮ", at(6, 30))
}

func TestSokuonGemination(t *testing.T) {
	checkFind(t, romajiMatcher("shuuseipatchi"), "修正パッチ", at(0, 15))
	checkFind(t, romajiMatcher("shuuseipacchi"), "集成パッチ", at(0, 15))
	checkFind(t, romajiMatcher("shuuseipacchi"), "終生パッチ", at(0, 15))
}

func TestIterationMarkMatching(t *testing.T) {
	m := romajiMatcher("shikanokonokonokokoshitantan")
	checkFind(t, m, "鹿乃子のこのこ虎視眈々", at(0, 33))

	cfg := DefaultConfig().WithRomaji()
	cfg.AnchoredStart = true
	checkFind(t, New("mizukina", cfg), "水樹奈々", at(0, 9))
	checkFind(t, New("mizukinana", cfg), "水樹奈々", at(0, 12))
}

func TestLongVowel(t *testing.T) {
	m := romajiMatcher("furi-ren")
	checkFind(t, m, "フリーレン", at(0, 15))

	// The vowel extension spelling works too.
	m = romajiMatcher("furiiren")
	checkFind(t, m, "フリーレン", at(0, 15))
}

func TestMixLang(t *testing.T) {
	pattern := "pysousuosousounofuri-ren"
	haystack := "拼音搜索葬送のフリーレン"

	cfg := DefaultConfig().
		WithPinyin(pinyin.Ascii | pinyin.AsciiFirstLetter).
		WithRomaji()
	checkFind(t, New(pattern, cfg), haystack, nil)

	cfg.MixLang = true
	checkFind(t, New(pattern, cfg), haystack, at(0, 36))
}

func TestAnchoring(t *testing.T) {
	cfg := DefaultConfig().WithPinyin(pinyin.Ascii)
	cfg.AnchoredStart = true
	m := New("xing", cfg)
	checkFind(t, m, "行不", at(0, 3))
	checkFind(t, m, "不行", nil)

	cfg = DefaultConfig().WithPinyin(pinyin.Ascii)
	cfg.AnchoredEnd = true
	m = New("xing", cfg)
	checkFind(t, m, "不行", at(3, 6))
	checkFind(t, m, "行不", nil)

	// Both anchors: whole-haystack match only.
	cfg.AnchoredStart = true
	m = New("buxing", cfg)
	checkFind(t, m, "不行", at(0, 6))
	checkFind(t, m, "x不行", nil)
	checkFind(t, m, "不行x", nil)
}

func TestUppercaseLiteral(t *testing.T) {
	cfg := DefaultConfig().WithPinyin(pinyin.Ascii)
	cfg.UppercaseLiteral = true

	// Lowercase letters still fold and transliterate.
	m := New("xing", cfg)
	checkFind(t, m, "XING", at(0, 4))
	checkFind(t, m, "行", at(0, 3))

	// Uppercase letters match exactly and never transliterate.
	m = New("XING", cfg)
	checkFind(t, m, "XING", at(0, 4))
	checkFind(t, m, "xing", nil)
	checkFind(t, m, "行", nil)
}

func TestPatternPostmodifiers(t *testing.T) {
	cfg := DefaultConfig().WithPinyin(pinyin.Ascii).WithRomaji()

	m := NewParsed("pinyin;py", cfg)
	if !m.IsMatch("拼音搜索") {
		t.Error(";py should still match through pinyin")
	}
	if m.IsMatch("pinyin") {
		t.Error(";py must not match plain letters")
	}

	m = NewParsed("pinyin;en", cfg)
	if !m.IsMatch("pinyin") {
		t.Error(";en should match plain letters")
	}
	if m.IsMatch("拼音搜索") {
		t.Error(";en must not transliterate")
	}

	m = NewParsed("kono;rm", cfg)
	if !m.IsMatch("この") {
		t.Error(";rm should match through romaji")
	}
	if m.IsMatch("kono") {
		t.Error(";rm must not match plain letters")
	}
}

func TestEncodingEquivalence(t *testing.T) {
	pattern := "pysousuo"
	haystack := "a拼音搜索b"
	m := pinyinMatcher(pattern, pinyin.Ascii|pinyin.AsciiFirstLetter)

	m8, ok8 := m.Find(haystack)
	m16, ok16 := m.FindUTF16(utf16.Encode([]rune(haystack)))
	m32, ok32 := m.FindRunes([]rune(haystack))

	if !ok8 || !ok16 || !ok32 {
		t.Fatalf("encodings disagree on match: %v %v %v", ok8, ok16, ok32)
	}

	// UTF-8 offsets are bytes: "a" + four 3-byte characters.
	if m8.Start() != 1 || m8.End() != 13 {
		t.Errorf("utf8 span = [%d, %d), want [1, 13)", m8.Start(), m8.End())
	}
	// UTF-16: every character here is one unit.
	if m16.Start() != 1 || m16.End() != 5 {
		t.Errorf("utf16 span = [%d, %d), want [1, 5)", m16.Start(), m16.End())
	}
	// UTF-32: code points.
	if m32.Start() != 1 || m32.End() != 5 {
		t.Errorf("utf32 span = [%d, %d), want [1, 5)", m32.Start(), m32.End())
	}
}

func TestSupplementaryPlane(t *testing.T) {
	// 𫓧 (U+2B4E7) is a supplementary-plane Han character; offsets must
	// stay on code point boundaries in every encoding.
	haystack := "x𫓧y"
	m := New("y", DefaultConfig())
	m8, _ := m.Find(haystack)
	if m8.Start() != 5 || m8.End() != 6 {
		t.Errorf("utf8 span = [%d, %d), want [5, 6)", m8.Start(), m8.End())
	}
	m16, _ := m.FindUTF16(utf16.Encode([]rune(haystack)))
	if m16.Start() != 3 || m16.End() != 4 {
		t.Errorf("utf16 span = [%d, %d), want [3, 4)", m16.Start(), m16.End())
	}
}

func TestPackedResult(t *testing.T) {
	v := FindPinyin("pysousuo", "拼音搜索", pinyin.Ascii|pinyin.AsciiFirstLetter)
	start, end, ok := UnpackMatch(v)
	if !ok || start != 0 || end != 12 {
		t.Fatalf("packed = (%d, %d, %v), want (0, 12, true)", start, end, ok)
	}

	v = FindPinyin("zzz", "拼音搜索", pinyin.Ascii)
	if _, _, ok := UnpackMatch(v); ok {
		t.Fatal("no-match must unpack as not ok")
	}
	if v != PackedNoMatch {
		t.Fatalf("no-match packed = %#x, want %#x", v, PackedNoMatch)
	}

	u16 := utf16.Encode([]rune("拼音搜索"))
	v = FindPinyinUTF16(utf16.Encode([]rune("pysousuo")), u16, pinyin.Ascii|pinyin.AsciiFirstLetter)
	start, end, ok = UnpackMatch(v)
	if !ok || start != 0 || end != 4 {
		t.Fatalf("packed utf16 = (%d, %d, %v), want (0, 4, true)", start, end, ok)
	}
}

func TestConcurrentUse(t *testing.T) {
	m := pinyinMatcher("pysousuo", pinyin.Ascii|pinyin.AsciiFirstLetter)
	done := make(chan bool)
	for g := 0; g < 8; g++ {
		go func() {
			for i := 0; i < 100; i++ {
				if !m.IsMatch("拼音搜索") {
					t.Error("concurrent search failed")
					break
				}
			}
			done <- true
		}()
	}
	for g := 0; g < 8; g++ {
		<-done
	}
}

func TestHeteronymExplosion(t *testing.T) {
	// A run of heteronym characters must stay fast: the visited set
	// prunes revisits of (position, pattern) pairs.
	haystack := ""
	for i := 0; i < 200; i++ {
		haystack += "行"
	}
	m := pinyinMatcher("zzzzzzzz", pinyin.Ascii|pinyin.AsciiFirstLetter)
	if m.IsMatch(haystack) {
		t.Fatal("pattern should not match")
	}
}

func TestBoundaryHelpers(t *testing.T) {
	b := []byte("a拼b")
	if got := FloorCharBoundary(b, 2); got != 1 {
		t.Errorf("FloorCharBoundary(2) = %d, want 1", got)
	}
	if got := CeilCharBoundary(b, 2); got != 4 {
		t.Errorf("CeilCharBoundary(2) = %d, want 4", got)
	}
	if got := FloorCharBoundary(b, 99); got != len(b) {
		t.Errorf("FloorCharBoundary(99) = %d, want %d", got, len(b))
	}
	if got := CeilCharBoundary(b, 0); got != 0 {
		t.Errorf("CeilCharBoundary(0) = %d, want 0", got)
	}
}

func TestFoldRune(t *testing.T) {
	tests := []struct {
		in, want rune
	}{
		{'A', 'a'},
		{'a', 'a'},
		{'Z', 'z'},
		{'0', '0'},
		{'Δ', 'δ'},
		{'δ', 'δ'},
		{'拼', '拼'},
	}
	for _, tt := range tests {
		if got := FoldRune(tt.in); got != tt.want {
			t.Errorf("FoldRune(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
	// The Kelvin sign folds into the same orbit as k.
	if FoldRune('K') != FoldRune('k') {
		t.Error("Kelvin sign should fold with k")
	}
}

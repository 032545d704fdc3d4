package ibmatch

import (
	"strings"
	"testing"

	"github.com/coregx/ibmatch/pinyin"
)

func BenchmarkFindASCIIFastPath(b *testing.B) {
	m := pinyinMatcher("needle", pinyin.Ascii)
	haystack := strings.Repeat("haystack without the word ", 100) + "needle"
	b.SetBytes(int64(len(haystack)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if !m.IsMatch(haystack) {
			b.Fatal("no match")
		}
	}
}

func BenchmarkFindPinyin(b *testing.B) {
	m := pinyinMatcher("pysousuo", pinyin.Ascii|pinyin.AsciiFirstLetter)
	haystack := strings.Repeat("文件列表里的一行 ", 50) + "拼音搜索"
	b.SetBytes(int64(len(haystack)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if !m.IsMatch(haystack) {
			b.Fatal("no match")
		}
	}
}

func BenchmarkFindRomaji(b *testing.B) {
	m := romajiMatcher("shuuseipatchi")
	haystack := strings.Repeat("リストの中のファイル名 ", 50) + "修正パッチ"
	b.SetBytes(int64(len(haystack)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if !m.IsMatch(haystack) {
			b.Fatal("no match")
		}
	}
}

func BenchmarkFindMiss(b *testing.B) {
	m := pinyinMatcher("zzzzzz", pinyin.Ascii|pinyin.AsciiFirstLetter)
	haystack := strings.Repeat("行行重行行，与君生别离。", 40)
	b.SetBytes(int64(len(haystack)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if m.IsMatch(haystack) {
			b.Fatal("unexpected match")
		}
	}
}

func BenchmarkRegexTranslit(b *testing.B) {
	re := MustCompileRegex("pysou.*?(any|every)thing", DefaultConfig().
		WithPinyin(pinyin.Ascii|pinyin.AsciiFirstLetter).WithRomaji())
	haystack := "拼音搜索Everything"
	b.SetBytes(int64(len(haystack)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if !re.IsMatch(haystack) {
			b.Fatal("no match")
		}
	}
}

package ibmatch_test

import (
	"fmt"

	ibmatch "github.com/coregx/ibmatch"
	"github.com/coregx/ibmatch/glob"
	"github.com/coregx/ibmatch/pinyin"
)

func ExampleNew() {
	cfg := ibmatch.DefaultConfig().WithPinyin(pinyin.Ascii | pinyin.AsciiFirstLetter)
	m := ibmatch.New("pysousuoeve", cfg)
	fmt.Println(m.IsMatch("拼音搜索Everything"))
	// Output: true
}

func ExampleNew_romaji() {
	cfg := ibmatch.DefaultConfig().WithRomaji()
	cfg.PatternPartial = true
	m := ibmatch.New("konosuba", cfg)
	fmt.Println(m.IsMatch("この素晴らしい世界に祝福を"))
	// Output: true
}

func ExampleMatcher_Find() {
	cfg := ibmatch.DefaultConfig().WithPinyin(pinyin.Ascii)
	m := ibmatch.New("xing", cfg)
	match, ok := m.Find("不行")
	fmt.Println(ok, match.Start(), match.End())
	// Output: true 3 6
}

func ExampleCompileRegex() {
	cfg := ibmatch.DefaultConfig().
		WithPinyin(pinyin.Ascii | pinyin.AsciiFirstLetter).
		WithRomaji()
	re := ibmatch.MustCompileRegex("pysou.*?(any|every)thing", cfg)
	match, ok := re.Find("拼音搜索Everything")
	fmt.Println(ok, match.Start(), match.End())
	// Output: true 0 22
}

func ExampleCompileGlob() {
	re, err := ibmatch.CompileGlob(
		"wifi**miku",
		ibmatch.DefaultConfig().WithRomaji(),
		glob.Config{Separator: glob.SeparatorWindows},
	)
	if err != nil {
		panic(err)
	}
	fmt.Println(re.IsMatch(`C:\Windows\System32\ja-jp\WiFiTask\ミク.exe`))
	// Output: true
}

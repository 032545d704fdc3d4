package romaji

// Compound keys: short kanji or mixed sequences whose reading is not the
// concatenation of per-character readings (jukujikun, rendaku stems and
// other irregulars). Keys are at most four code points; the trie prefers
// the longest key at a position, with per-kanji readings as fallback.

var compoundRows = []kanaRow{
	row("今日", "kyou", "konnichi"),
	row("明日", "ashita", "asu", "myounichi"),
	row("昨日", "kinou", "sakujitsu"),
	row("今朝", "kesa"),
	row("大人", "otona"),
	row("一人", "hitori"),
	row("二人", "futari"),
	row("一日", "tsuitachi", "ichinichi"),
	row("二十日", "hatsuka"),
	row("日本", "nihon", "nippon"),
	row("日本語", "nihongo", "nippongo"),
	row("大和", "yamato"),
	row("時計", "tokei"),
	row("眼鏡", "megane"),
	row("風邪", "kaze"),
	row("息子", "musuko"),
	row("田舎", "inaka"),
	row("部屋", "heya"),
	row("下手", "heta"),
	row("上手", "jouzu", "umai"),
	row("素晴ら", "subara"),
	row("ボタン雪", "botan'yuki"),
	row("牡丹雪", "botan'yuki"),
	row("素敵", "suteki"),
	row("流石", "sasuga"),
	row("お土産", "omiyage"),
	row("七夕", "tanabata"),
	row("紅葉", "momiji", "kouyou"),
	row("梅雨", "tsuyu", "baiu"),
}

func addCompoundRows(t *runeTrie) {
	for _, row := range compoundRows {
		t.addWord(row.kana, row.readings...)
	}
}

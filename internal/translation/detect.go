package translation

// Unicode ranges checked for script-based language detection, in priority
// order. First match wins.
var scriptRanges = []struct {
	lang   string
	ranges [][2]rune
}{
	{lang: "zh", ranges: [][2]rune{{0x4E00, 0x9FFF}}},
	{lang: "ja", ranges: [][2]rune{{0x3040, 0x309F}, {0x30A0, 0x30FF}}},
	{lang: "ko", ranges: [][2]rune{{0xAC00, 0xD7AF}}},
	{lang: "ar", ranges: [][2]rune{{0x0600, 0x06FF}}},
	{lang: "ru", ranges: [][2]rune{{0x0400, 0x04FF}}},
}

// DetectLanguage classifies text by the presence of CJK, Korean, Arabic or
// Cyrillic characters, defaulting to "en" for Latin script. Priority is
// fixed: Chinese, Japanese, Korean, Arabic, Russian.
func DetectLanguage(text string) string {
	for _, script := range scriptRanges {
		for _, r := range text {
			for _, span := range script.ranges {
				if r >= span[0] && r <= span[1] {
					return script.lang
				}
			}
		}
	}
	return "en"
}

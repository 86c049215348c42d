package text

import "unicode"

// Language is a coarse language tag used to select keyword tables.
type Language string

const (
	LanguageEnglish  Language = "en"
	LanguageJapanese Language = "ja"
	LanguageRussian  Language = "ru"
)

// cjkScripts covers the script families counted toward the CJK ratio.
var cjkScripts = []*unicode.RangeTable{unicode.Han, unicode.Hiragana, unicode.Katakana}

// DetectLanguage tags text by counting characters per script family:
// more than 30% CJK runes yields "ja", more than 30% Cyrillic yields "ru",
// anything else is "en". The tag only selects keyword lists; it never
// affects scoring weights.
func DetectLanguage(s string) Language {
	total := 0
	cjk := 0
	cyrillic := 0
	for _, r := range s {
		total++
		switch {
		case unicode.In(r, cjkScripts...):
			cjk++
		case unicode.Is(unicode.Cyrillic, r):
			cyrillic++
		}
	}
	if total == 0 {
		return LanguageEnglish
	}
	if float64(cjk) > float64(total)*0.3 {
		return LanguageJapanese
	}
	if float64(cyrillic) > float64(total)*0.3 {
		return LanguageRussian
	}
	return LanguageEnglish
}

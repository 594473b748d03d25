package identity

import "strings"

// ruToLatin is the phonetic table used for transliteration. Hard and soft
// signs map to the empty string; ё shares the transliteration of е.
var ruToLatin = map[rune]string{
	'а': "a",
	'б': "b",
	'в': "v",
	'г': "g",
	'д': "d",
	'е': "e",
	'ё': "e",
	'ж': "zh",
	'з': "z",
	'и': "i",
	'й': "y",
	'к': "k",
	'л': "l",
	'м': "m",
	'н': "n",
	'о': "o",
	'п': "p",
	'р': "r",
	'с': "s",
	'т': "t",
	'у': "u",
	'ф': "f",
	'х': "h",
	'ц': "ts",
	'ч': "ch",
	'ш': "sh",
	'щ': "sch",
	'ъ': "",
	'ы': "y",
	'ь': "",
	'э': "e",
	'ю': "yu",
	'я': "ya",
}

// Transliterate maps a normalized login to its ASCII skeleton.
//
// Runes found in the table are replaced by their Latin form, lower-case
// ASCII letters and digits pass through, and every other rune (spaces,
// punctuation, upper-case or non-Cyrillic letters) is dropped. The input is
// expected to be already lower-cased; see [Normalize]. An empty result is a
// valid output.
func Transliterate(normalized string) string {
	var b strings.Builder
	b.Grow(len(normalized))

	for _, r := range normalized {
		if latin, ok := ruToLatin[r]; ok {
			b.WriteString(latin)
			continue
		}
		if isStemRune(r) {
			b.WriteRune(r)
		}
	}

	return b.String()
}

func isStemRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
}

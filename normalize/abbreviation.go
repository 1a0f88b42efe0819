package normalize

import (
	"strings"
	"unicode"
)

// asWordDictionary lists Latin abbreviations that are conventionally
// pronounced as a single word rather than spelled out letter by letter.
// Lookup is case-insensitive; the stored value is the exact spoken
// form.
var asWordDictionary = map[string]string{
	"sql":   "сиквел",
	"css":   "си эс эс",
	"ram":   "рам",
	"rom":   "ром",
	"nasa":  "наса",
	"scuba": "скуба",
	"laser": "лазер",
	"radar": "радар",
	"wifi":  "вайфай",
	"gif":   "гиф",
	"jpeg":  "джипег",
	"json":  "джейсон",
	"rest":  "рест",
}

// latinLetterNames gives the Russian spoken name of each Latin letter,
// used to spell out an abbreviation that has no entry in
// asWordDictionary.
var latinLetterNames = map[rune]string{
	'a': "эй", 'b': "би", 'c': "си", 'd': "ди", 'e': "и", 'f': "эф",
	'g': "джи", 'h': "эйч", 'i': "ай", 'j': "джей", 'k': "кей", 'l': "эл",
	'm': "эм", 'n': "эн", 'o': "оу", 'p': "пи", 'q': "кью", 'r': "ар",
	's': "эс", 't': "ти", 'u': "ю", 'v': "ви", 'w': "дабл-ю", 'x': "экс",
	'y': "уай", 'z': "зед",
}

// digitNames gives the Russian digit name used when a digit appears inside
// an abbreviation that is spelled out letter by letter, e.g. "MP3".
var digitNames = [...]string{
	"ноль", "один", "два", "три", "четыре", "пять", "шесть", "семь", "восемь", "девять",
}

// Abbreviation spells a matched Abbreviation token: known words go through
// asWordDictionary, custom entries from config take priority over it, and
// anything else is spelled letter by letter (digits read as single
// digits).
func Abbreviation(text string, customAbbreviations map[string]string) string {
	if custom, ok := lookupCustom(text, customAbbreviations); ok {
		return custom
	}

	lower := strings.ToLower(text)
	if word, ok := asWordDictionary[lower]; ok {
		return word
	}

	return spellOut(text)
}

func lookupCustom(text string, custom map[string]string) (string, bool) {
	if custom == nil {
		return "", false
	}
	if v, ok := custom[text]; ok {
		return v, true
	}
	if v, ok := custom[strings.ToLower(text)]; ok {
		return v, true
	}
	return "", false
}

func spellOut(text string) string {
	var parts []string
	for _, r := range text {
		switch {
		case unicode.IsDigit(r) && r >= '0' && r <= '9':
			parts = append(parts, digitNames[r-'0'])
		default:
			lower := unicode.ToLower(r)
			if name, ok := latinLetterNames[lower]; ok {
				parts = append(parts, name)
			}
		}
	}
	return strings.Join(parts, " ")
}

package normalize

import (
	"strings"
	"unicode"

	"github.com/xilec/ruvox/core"
)

// SplitSnake splits a snake_case identifier into its underscore-delimited
// parts.
func SplitSnake(s string) []string {
	return strings.Split(s, "_")
}

// SplitKebab splits a kebab-case identifier into its hyphen-delimited
// parts.
func SplitKebab(s string) []string {
	return strings.Split(s, "-")
}

// SplitCamel splits a camelCase or PascalCase identifier into its
// constituent words, keeping an acronym run together up to the letter
// that starts the next word (so "HTTPServer" splits as "HTTP", "Server")
// and treating a transition into or out of a run of digits as a boundary
// too (so "Div2Round" splits as "Div", "2", "Round").
func SplitCamel(s string) []string {
	runes := []rune(s)
	if len(runes) == 0 {
		return nil
	}

	var words []string
	start := 0
	for i := 1; i < len(runes); i++ {
		prev, cur := runes[i-1], runes[i]
		boundary := false

		switch {
		case unicode.IsUpper(cur) && unicode.IsLower(prev):
			boundary = true
		case unicode.IsUpper(cur) && unicode.IsUpper(prev) && i+1 < len(runes) && unicode.IsLower(runes[i+1]):
			boundary = true
		case unicode.IsDigit(cur) != unicode.IsDigit(prev):
			boundary = true
		}

		if boundary {
			words = append(words, string(runes[start:i]))
			start = i
		}
	}
	words = append(words, string(runes[start:]))
	return words
}

// Identifier spells a CamelIdent, SnakeIdent, or KebabIdent token by
// splitting it into words with the splitter matching kind, then reading
// each word as a number if it is all digits, as an abbreviation if it is
// an all-uppercase run of two or more letters (so "HTTP" out of
// "HTTPServer" is spelled out letter by letter rather than
// transliterated), or as an English word otherwise.
func Identifier(text string, kind core.Kind, customTerms, customAbbreviations map[string]string, diag *core.Diagnostics) string {
	var parts []string
	switch kind {
	case core.SnakeIdent:
		parts = SplitSnake(text)
	case core.KebabIdent:
		parts = SplitKebab(text)
	default:
		parts = SplitCamel(text)
	}

	words := make([]string, 0, len(parts))
	for _, p := range parts {
		if p == "" {
			continue
		}
		words = append(words, readIdentifierPart(p, customTerms, customAbbreviations, diag))
	}
	return strings.Join(words, " ")
}

func readIdentifierPart(part string, customTerms, customAbbreviations map[string]string, diag *core.Diagnostics) string {
	switch {
	case isAllDigits(part):
		return Integer(part, diag)
	case isAllUpperRun(part):
		return Abbreviation(part, customAbbreviations)
	default:
		return EnglishWord(part, customTerms, diag)
	}
}

// isAllUpperRun reports whether part is an all-uppercase letter run of at
// least two runes, the shape SplitCamel carves out of an acronym prefix
// like "HTTP" in "HTTPServer".
func isAllUpperRun(s string) bool {
	runes := []rune(s)
	if len(runes) < 2 {
		return false
	}
	for _, r := range runes {
		if !unicode.IsUpper(r) {
			return false
		}
	}
	return true
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

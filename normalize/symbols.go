// Package normalize holds the normalizer battery: one normalizer per
// structured token kind, dispatched through a closed registry keyed by
// core.Kind. Each normalizer is a pure function of its matched text (plus
// config) to a spoken Russian replacement string; none of them touch the
// tracked buffer directly, so they stay trivially testable in isolation.
package normalize

import (
	"regexp"
	"strings"
)

// operatorWords gives the spoken form of each comparison/arithmetic
// operator token, read only when config.ReadOperatorsOrDefault() is
// true.
var operatorWords = map[string]string{
	"==": "равно",
	"!=": "не равно",
	">=": "больше или равно",
	"<=": "меньше или равно",
	"->": "стрелка",
	"=>": "толстая стрелка",
	"&&": "и",
	"||": "или",
	"+":  "плюс",
	"-":  "минус",
	"*":  "умножить на",
	"/":  "делить на",
	"%":  "процент",
	"=":  "равно",
	">":  "больше",
	"<":  "меньше",
	"&":  "амперсанд",
	"|":  "вертикальная черта",
	"^":  "крышка",
	"~":  "тильда",
	"(":  "открывающая скобка",
	")":  "закрывающая скобка",
	"{":  "открывающая фигурная скобка",
	"}":  "закрывающая фигурная скобка",
	"[":  "открывающая квадратная скобка",
	"]":  "закрывающая квадратная скобка",
}

// Operator spells an operator token, or returns its literal text unread
// when readOperators is false.
func Operator(text string, readOperators bool) string {
	if !readOperators {
		return text
	}
	if word, ok := operatorWords[text]; ok {
		return word
	}
	return text
}

// operatorTexts lists the operator tokens, kept longest first so a pattern
// built from it never splits "==" into two "=" matches.
var operatorTexts = []string{
	"==", "!=", ">=", "<=", "->", "=>", "&&", "||",
	"+", "-", "*", "/", "%", "=", ">", "<", "&", "|", "^", "~",
	"(", ")", "{", "}", "[", "]",
}

func init() {
	// Keep operatorTexts sorted longest-first so a scanner built from this
	// slice (scan's operatorPattern) tries two-rune operators before their one-rune
	// prefixes.
	sortByLengthDesc(operatorTexts)
}

func sortByLengthDesc(items []string) {
	for i := 1; i < len(items); i++ {
		for j := i; j > 0 && len(items[j]) > len(items[j-1]); j-- {
			items[j], items[j-1] = items[j-1], items[j]
		}
	}
}

// OperatorTexts returns the literal operator strings recognized by
// Operator, longest first, for use by the scanner's pattern table.
func OperatorTexts() []string {
	return operatorTexts
}

// EscapeForAlternation joins literal operator texts into a single
// alternation suitable for embedding in a larger regexp, quoting any
// regexp metacharacter each operator might contain.
func EscapeForAlternation(texts []string) string {
	quoted := make([]string, len(texts))
	for i, t := range texts {
		quoted[i] = regexp.QuoteMeta(t)
	}
	return strings.Join(quoted, "|")
}

// Package scan holds the compiled regular expression battery behind the
// token taxonomy: one pattern per structured token kind, applied in the
// kinds' fixed priority order so an earlier, higher priority kind's
// matches are rewritten (and so removed from the text) before a later
// kind's pattern ever runs over it.
package scan

import (
	"regexp"

	"github.com/xilec/ruvox/core"
	"github.com/xilec/ruvox/normalize"
)

var urlPattern = regexp.MustCompile(
	`https?://[^\s<>"'` + "`" + `)]+` +
		`|\b(?:[a-zA-Z0-9-]+\.)+(?:com|ru|org|net|io|dev|ai|co|info|app|me|gg)\b(?:/[^\s<>"'` + "`" + `)]*)?`)

var emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9-]+(?:\.[a-zA-Z0-9-]+)+`)

// ipv4Octet matches a single 0-255 decimal octet, rejecting anything a
// byte can't hold so a string like "999.999.999.999" never matches
// ipv4Pattern and falls through to Float+Integer instead.
const ipv4Octet = `(?:25[0-5]|2[0-4]\d|1\d\d|[1-9]?\d)`

var ipv4Pattern = regexp.MustCompile(`\b` + ipv4Octet + `(?:\.` + ipv4Octet + `){3}\b`)

var filePathPattern = regexp.MustCompile(
	`[A-Za-z]:\\(?:[\w.-]+\\)*[\w.-]+\.[A-Za-z0-9]{1,6}` +
		`|(?:\.{1,2}/|/)?(?:[\w.-]+/)+[\w.-]+\.[A-Za-z0-9]{1,6}`)

var versionPattern = regexp.MustCompile(`\bv\d+(?:\.\d+)*\b|\b\d+(?:\.\d+){2,}\b`)

var sizeUnitPattern = regexp.MustCompile(`(?i)\b\d+(?:[.,]\d+)?\s?(?:kb|mb|gb|tb|ms|sec|min|[bsh])\b`)

var percentagePattern = regexp.MustCompile(`-?\d+(?:[.,]\d+)?%`)

var rangePattern = regexp.MustCompile(`-?\d+(?:[.,]\d+)?\s*[-–—]\s*-?\d+(?:[.,]\d+)?`)

var datePattern = regexp.MustCompile(`\b\d{4}-\d{2}-\d{2}\b|\b\d{1,2}[./-]\d{1,2}[./-]\d{4}\b`)

var timePattern = regexp.MustCompile(`\b\d{1,2}:\d{2}\b`)

var abbreviationPattern = regexp.MustCompile(`\b[A-Z]{2,6}\d{0,2}\b`)

var camelIdentPattern = regexp.MustCompile(
	`\b[a-z][a-z0-9]*(?:[A-Z][a-z0-9]*)+\b|\b[A-Z][a-z0-9]*(?:[A-Z][a-z0-9]*)+\b`)

var snakeIdentPattern = regexp.MustCompile(`\b[a-zA-Z0-9]+(?:_[a-zA-Z0-9]+)+\b`)

var kebabIdentPattern = regexp.MustCompile(`\b[a-zA-Z0-9]+(?:-[a-zA-Z0-9]+)+\b`)

var floatPattern = regexp.MustCompile(`-?\d+[.,]\d+`)

var integerPattern = regexp.MustCompile(`-?\d+`)

var operatorPattern = regexp.MustCompile(normalize.EscapeForAlternation(normalize.OperatorTexts()))

var englishWordPattern = regexp.MustCompile(`\b[a-zA-Z]+\b`)

// patternFor maps a scan-relevant token kind to its compiled pattern.
// Kinds resolved by the structural parser instead of a flat regex pass
// (FencedCode, DiagramBlock, InlineCode) have no entry here, and neither
// do RussianWord and Other, which no scan pass rewrites.
var patternFor = map[core.Kind]*regexp.Regexp{
	core.URL:          urlPattern,
	core.Email:        emailPattern,
	core.IPv4:         ipv4Pattern,
	core.FilePath:     filePathPattern,
	core.Version:      versionPattern,
	core.SizeUnit:     sizeUnitPattern,
	core.Percentage:   percentagePattern,
	core.Range:        rangePattern,
	core.Date:         datePattern,
	core.Time:         timePattern,
	core.Abbreviation: abbreviationPattern,
	core.CamelIdent:   camelIdentPattern,
	core.SnakeIdent:   snakeIdentPattern,
	core.KebabIdent:   kebabIdentPattern,
	core.Float:        floatPattern,
	core.Integer:      integerPattern,
	core.Operator:     operatorPattern,
	core.EnglishWord:  englishWordPattern,
}

// StructuredFormatKinds lists the structured-format kinds in their fixed
// priority order (URL through Time), the first scan stage of the
// pipeline.
var StructuredFormatKinds = []core.Kind{
	core.URL, core.Email, core.IPv4, core.FilePath, core.Version,
	core.SizeUnit, core.Percentage, core.Range, core.Date, core.Time,
}

// WordFormatKinds lists the abbreviation/identifier kinds in their fixed
// priority order, the pipeline's second scan stage.
var WordFormatKinds = []core.Kind{
	core.Abbreviation, core.CamelIdent, core.SnakeIdent, core.KebabIdent,
}

// ScalarKinds lists the remaining scalar kinds in their fixed priority
// order, the pipeline's third scan stage.
var ScalarKinds = []core.Kind{
	core.Float, core.Integer, core.Operator, core.EnglishWord,
}

// Pattern returns the compiled pattern registered for kind, if any.
func Pattern(kind core.Kind) (*regexp.Regexp, bool) {
	p, ok := patternFor[kind]
	return p, ok
}

// allKindsInPriorityOrder concatenates the three scan stages, giving the
// full priority order Tokenize resolves overlaps against.
var allKindsInPriorityOrder = func() []core.Kind {
	var kinds []core.Kind
	kinds = append(kinds, StructuredFormatKinds...)
	kinds = append(kinds, WordFormatKinds...)
	kinds = append(kinds, ScalarKinds...)
	return kinds
}()

// Tokenize classifies text into a sequence of non-overlapping core.Token
// spans covering the whole input, for diagnostics and tests: it does not
// drive the pipeline itself (which applies one regex pass per kind instead,
// via scanStage in ruvox.go), but it materializes what that sequence of passes
// is equivalent to, which is otherwise only implicit in the pass order.
//
// At each code point not yet claimed by an earlier token, Tokenize prefers
// the highest-priority kind with a match starting there (core.Kind's
// declaration order is the priority order); a run of code points claimed by
// no pattern becomes a single core.Other token.
func Tokenize(text string) []core.Token {
	runes := []rune(text)
	starts := make(map[int]core.Token)
	for _, kind := range allKindsInPriorityOrder {
		pattern := patternFor[kind]
		for _, loc := range pattern.FindAllStringIndex(text, -1) {
			start := runeOffset(text, loc[0])
			end := runeOffset(text, loc[1])
			if existing, ok := starts[start]; ok && existing.Kind < kind {
				continue
			}
			starts[start] = core.Token{Kind: kind, Start: start, End: end, Text: text[loc[0]:loc[1]]}
		}
	}

	var tokens []core.Token
	pos := 0
	for pos < len(runes) {
		tok, ok := starts[pos]
		if !ok {
			gapStart := pos
			for pos < len(runes) {
				if _, ok := starts[pos]; ok {
					break
				}
				pos++
			}
			tokens = append(tokens, core.Token{
				Kind:  core.Other,
				Start: gapStart,
				End:   pos,
				Text:  string(runes[gapStart:pos]),
			})
			continue
		}
		tokens = append(tokens, tok)
		pos = tok.End
	}
	return tokens
}

// runeOffset converts a byte offset into s to a code-point offset.
func runeOffset(s string, byteIdx int) int {
	return len([]rune(s[:byteIdx]))
}

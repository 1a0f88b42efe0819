// Package postprocess implements the pipeline's final tidying stage:
// cleaning up the fully rewritten text before the final character map
// is built.
package postprocess

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"

	"github.com/xilec/ruvox/core"
)

var (
	htmlTagPattern   = regexp.MustCompile(`<[^>]+>`)
	markdownHeading  = regexp.MustCompile(`(?m)^#{1,6}[ \t]*`)
	markdownEmphasis = regexp.MustCompile(`\*\*|__|\*|_|~~`)
	strayBracket     = regexp.MustCompile(`[(){}\[\]]`)
	spaceBeforePunct = regexp.MustCompile(`[ \t]+([,.!?;:])`)
	multiSpace       = regexp.MustCompile(`[ \t]{2,}`)
	multiBlankLine   = regexp.MustCompile(`\n{3,}`)
)

// Run tidies buf in place: stray HTML tags and Markdown emphasis/heading
// markers are dropped, a space before punctuation is removed, runs of
// spaces and tabs collapse to one space, and three or more consecutive
// newlines collapse to two (at most one blank line). A
// bracket that survived the Operator scan stage unread (e.g. one left
// dangling by an earlier substitution) is dropped rather than leaking
// into the "fully Cyrillic" result. Every step goes through buf's tracked
// substitution machinery, so the final character map built from buf
// still reflects every surviving code point's original span.
func Run(buf *core.TrackedBuffer) {
	buf.SubRegex(htmlTagPattern, func([]string) string { return "" })
	buf.SubRegex(markdownHeading, func([]string) string { return "" })
	buf.SubRegex(markdownEmphasis, func([]string) string { return "" })
	buf.SubRegex(strayBracket, func([]string) string { return "" })
	buf.SubRegex(spaceBeforePunct, func(groups []string) string { return groups[1] })
	buf.SubRegex(multiSpace, func([]string) string { return " " })
	buf.SubRegex(multiBlankLine, func([]string) string { return "\n\n" })
}

// StripHTMLTags walks text as an HTML token stream and keeps only the
// text nodes. Unlike Run, this is untracked: it is meant for cleaning
// raw HTML-sourced text (e.g. a fetched web page in inputs.URLSource)
// before that text ever enters a TrackedBuffer, not for use inside the
// pipeline itself.
func StripHTMLTags(text string) string {
	if !strings.Contains(text, "<") {
		return text
	}

	var out strings.Builder
	tokenizer := html.NewTokenizer(strings.NewReader(text))
	for {
		tt := tokenizer.Next()
		switch tt {
		case html.ErrorToken:
			return out.String()
		case html.TextToken:
			out.Write(tokenizer.Text())
		}
	}
}

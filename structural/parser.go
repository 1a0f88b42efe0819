// Package structural implements the pipeline's first stage: locating
// fenced code blocks, diagram blocks, and inline code spans before the
// flat token scan runs, and deciding what (if anything) of their content
// survives into spoken output.
package structural

import (
	"regexp"
	"strings"

	"github.com/xilec/ruvox/config"
	"github.com/xilec/ruvox/core"
	"github.com/xilec/ruvox/normalize"
	"github.com/xilec/ruvox/scan"
)

// fencedPattern matches a ``` fenced block with an optional language tag,
// spanning newlines.
var fencedPattern = regexp.MustCompile("(?s)```([a-zA-Z0-9_+-]*)\\r?\\n(.*?)```")

// inlineCodePattern matches a single-backtick inline code span. Applied
// after fencedPattern has already consumed every triple-backtick block,
// so it never matches a fence delimiter.
var inlineCodePattern = regexp.MustCompile("`([^`\n]+)`")

// diagramLanguages are fence language tags treated as a diagram block
// regardless of config.CodeBlockMode.
var diagramLanguages = map[string]bool{
	"mermaid": true, "diagram": true, "plantuml": true, "dot": true, "graphviz": true,
}

// codeBlockLanguageWords gives the spoken name of a fence language tag,
// used by the brief-mode "далее следует пример кода на ..." phrase.
var codeBlockLanguageWords = map[string]string{
	"python":     "пайтон",
	"py":         "пайтон",
	"go":         "го",
	"golang":     "го",
	"javascript": "джаваскрипт",
	"js":         "джаваскрипт",
	"typescript": "тайпскрипт",
	"ts":         "тайпскрипт",
	"java":       "джава",
	"rust":       "раст",
	"ruby":       "рубі",
	"php":        "пхп",
	"c":          "си",
	"cpp":        "си плюс плюс",
	"c++":        "си плюс плюс",
	"csharp":     "си шарп",
	"cs":         "си шарп",
	"bash":       "баш",
	"sh":         "шелл",
	"sql":        "эскюэль",
	"html":       "эйчтиэмэль",
	"css":        "сиэсэс",
	"json":       "джейсон",
	"yaml":       "ямл",
	"yml":        "ямл",
	"kotlin":     "котлин",
	"swift":      "свифт",
}

// briefCodeBlockPhrase gives the brief-mode replacement phrase for a fence
// language tag: a known tag is named directly ("далее следует пример кода
// на пайтон"), an absent or unrecognized tag gets the generic fallback.
func briefCodeBlockPhrase(lang string) string {
	if lang == "" {
		return "далее следует пример кода"
	}
	if word, ok := codeBlockLanguageWords[lang]; ok {
		return "далее следует пример кода на " + word
	}
	return "далее следует пример кода на неизвестном языке"
}

// ProcessFencedBlocks rewrites every fenced code block in buf. A diagram
// block is always replaced by cfg.DiagramSentinel. An ordinary code block
// becomes the "далее следует пример кода на <язык>" phrase in brief mode,
// or has its content passed once through the structured-format,
// word-format, and scalar scan stages in full mode — capped at exactly
// one recursive pass; a fence nested inside the block is not unwrapped
// again.
func ProcessFencedBlocks(buf *core.TrackedBuffer, cfg config.Config, diag *core.Diagnostics) int {
	return buf.SubRegex(fencedPattern, func(groups []string) string {
		lang := strings.ToLower(strings.TrimSpace(groups[1]))
		content := groups[2]

		if diagramLanguages[lang] {
			return cfg.DiagramSentinel
		}
		if cfg.CodeBlockMode == config.CodeBlockBrief {
			return briefCodeBlockPhrase(lang)
		}
		return RewriteFlat(content, cfg, diag)
	})
}

// ProcessInlineCode rewrites every inline code span in buf, routing its
// content through the same flat scan stages as a full-mode code block.
func ProcessInlineCode(buf *core.TrackedBuffer, cfg config.Config, diag *core.Diagnostics) int {
	return buf.SubRegex(inlineCodePattern, func(groups []string) string {
		return RewriteFlat(groups[1], cfg, diag)
	})
}

// RewriteFlat applies the structured-format, word-format, and scalar scan
// stages to text in priority order, without position tracking. It is
// used both for full-mode fenced/inline code content (where the
// surrounding TrackedBuffer already owns a single record for the whole
// span) and is the one place recursive normalization happens, by
// construction never calling itself.
func RewriteFlat(text string, cfg config.Config, diag *core.Diagnostics) string {
	for _, kind := range scan.StructuredFormatKinds {
		text = applyKind(text, kind, cfg, diag)
	}
	for _, kind := range scan.WordFormatKinds {
		text = applyKind(text, kind, cfg, diag)
	}
	for _, kind := range scan.ScalarKinds {
		text = applyKind(text, kind, cfg, diag)
	}
	return text
}

func applyKind(text string, kind core.Kind, cfg config.Config, diag *core.Diagnostics) string {
	pattern, ok := scan.Pattern(kind)
	if !ok {
		return text
	}
	normalizer, ok := normalize.Lookup(kind)
	if !ok {
		return text
	}
	return pattern.ReplaceAllStringFunc(text, func(m string) string {
		return normalizer(m, cfg, diag)
	})
}

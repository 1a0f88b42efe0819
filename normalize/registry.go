package normalize

import (
	"github.com/xilec/ruvox/config"
	"github.com/xilec/ruvox/core"
)

// Normalizer spells a single matched token's text as Russian speech,
// given the active configuration and a diagnostics sink for recoverable
// parse failures.
type Normalizer func(text string, cfg config.Config, diag *core.Diagnostics) string

// dispatch is the closed, compile-time table mapping a structured token
// kind to its normalizer. Unlike an open plugin registry
// (map[string]Factory, populated by user-facing RegisterX/init() calls),
// the set of kinds here is fixed by the token taxonomy itself, not an
// open plugin surface, so the table is built once and never mutated at
// runtime.
var dispatch = map[core.Kind]Normalizer{
	core.URL: func(text string, cfg config.Config, diag *core.Diagnostics) string {
		return URL(text, cfg.URLDetailLevel, cfg.CustomEnglishTerms, diag)
	},
	core.Email: func(text string, cfg config.Config, diag *core.Diagnostics) string {
		return Email(text, cfg.CustomEnglishTerms, diag)
	},
	core.IPv4: func(text string, cfg config.Config, diag *core.Diagnostics) string {
		return IPv4(text, cfg.IPReadMode == config.IPReadDigits, diag)
	},
	core.FilePath: func(text string, cfg config.Config, diag *core.Diagnostics) string {
		return FilePath(text, cfg.CustomEnglishTerms, diag)
	},
	core.Version: func(text string, _ config.Config, diag *core.Diagnostics) string {
		return Version(text, diag)
	},
	core.SizeUnit: func(text string, _ config.Config, diag *core.Diagnostics) string {
		return SizeUnit(text, diag)
	},
	core.Percentage: func(text string, _ config.Config, diag *core.Diagnostics) string {
		return Percentage(text, diag)
	},
	core.Range: func(text string, _ config.Config, diag *core.Diagnostics) string {
		return Range(text, diag)
	},
	core.Date: func(text string, _ config.Config, diag *core.Diagnostics) string {
		return Date(text, diag)
	},
	core.Time: func(text string, _ config.Config, diag *core.Diagnostics) string {
		return Time(text, diag)
	},
	core.Abbreviation: func(text string, cfg config.Config, _ *core.Diagnostics) string {
		return Abbreviation(text, cfg.CustomAbbreviations)
	},
	core.CamelIdent: func(text string, cfg config.Config, diag *core.Diagnostics) string {
		return Identifier(text, core.CamelIdent, cfg.CustomEnglishTerms, cfg.CustomAbbreviations, diag)
	},
	core.SnakeIdent: func(text string, cfg config.Config, diag *core.Diagnostics) string {
		return Identifier(text, core.SnakeIdent, cfg.CustomEnglishTerms, cfg.CustomAbbreviations, diag)
	},
	core.KebabIdent: func(text string, cfg config.Config, diag *core.Diagnostics) string {
		return Identifier(text, core.KebabIdent, cfg.CustomEnglishTerms, cfg.CustomAbbreviations, diag)
	},
	core.Float: func(text string, _ config.Config, diag *core.Diagnostics) string {
		return Float(text, diag)
	},
	core.Integer: func(text string, _ config.Config, diag *core.Diagnostics) string {
		return Integer(text, diag)
	},
	core.Operator: func(text string, cfg config.Config, _ *core.Diagnostics) string {
		return Operator(text, cfg.ReadOperatorsOrDefault())
	},
	core.EnglishWord: func(text string, cfg config.Config, diag *core.Diagnostics) string {
		return EnglishWord(text, cfg.CustomEnglishTerms, diag)
	},
}

// Lookup returns the normalizer registered for kind, if any. Kinds
// handled directly by the structural parser or pipeline (FencedCode,
// DiagramBlock, InlineCode, RussianWord, Other) have no entry here.
func Lookup(kind core.Kind) (Normalizer, bool) {
	n, ok := dispatch[kind]
	return n, ok
}

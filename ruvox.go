// Package ruvox wires the configuration surface, structural parser, token
// scanner, and normalizer battery together into a ready-to-use Pipeline —
// the one piece of construction logic that needs all four packages at
// once, kept out of package core to avoid a dependency cycle (core is
// imported by every one of them).
package ruvox

import (
	"fmt"

	"github.com/xilec/ruvox/config"
	"github.com/xilec/ruvox/core"
	"github.com/xilec/ruvox/normalize"
	"github.com/xilec/ruvox/postprocess"
	"github.com/xilec/ruvox/scan"
	"github.com/xilec/ruvox/structural"
)

// New validates cfg and constructs a Pipeline ready for Process or
// ProcessWithMap.
func New(cfg config.Config) (*core.Pipeline, error) {
	cfg = cfg.Normalize()
	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	diag := core.NewDiagnostics()

	englishTerms := map[string]string{}
	diag.DictionaryMerge += config.MergeDictionary(englishTerms, cfg.CustomEnglishTerms)
	abbreviations := map[string]string{}
	diag.DictionaryMerge += config.MergeDictionary(abbreviations, cfg.CustomAbbreviations)
	cfg.CustomEnglishTerms, cfg.CustomAbbreviations = englishTerms, abbreviations

	stages := core.Stages{
		Preprocess: core.Preprocess,
		StructuralFenced: func(buf *core.TrackedBuffer, d *core.Diagnostics) {
			structural.ProcessFencedBlocks(buf, cfg, d)
		},
		StructuralInline: func(buf *core.TrackedBuffer, d *core.Diagnostics) {
			structural.ProcessInlineCode(buf, cfg, d)
		},
		ScanStructured: scanStage(scan.StructuredFormatKinds, cfg),
		ScanWords:      scanStage(scan.WordFormatKinds, cfg),
		ScanScalars:    scanStage(scan.ScalarKinds, cfg),
		Postprocess:    postprocess.Run,
	}

	return core.NewPipeline(stages, diag), nil
}

func validate(cfg config.Config) error {
	switch cfg.CodeBlockMode {
	case config.CodeBlockFull, config.CodeBlockBrief:
	default:
		return fmt.Errorf("unknown codeBlockMode %q", cfg.CodeBlockMode)
	}
	switch cfg.URLDetailLevel {
	case config.URLDetailFull, config.URLDetailDomainOnly, config.URLDetailMinimal:
	default:
		return fmt.Errorf("unknown urlDetailLevel %q", cfg.URLDetailLevel)
	}
	switch cfg.IPReadMode {
	case config.IPReadNumbers, config.IPReadDigits:
	default:
		return fmt.Errorf("unknown ipReadMode %q", cfg.IPReadMode)
	}
	return nil
}

// scanStage builds a Pipeline stage function that applies, in order, the
// pattern and normalizer registered for each of kinds.
func scanStage(kinds []core.Kind, cfg config.Config) func(*core.TrackedBuffer, *core.Diagnostics) {
	return func(buf *core.TrackedBuffer, diag *core.Diagnostics) {
		for _, kind := range kinds {
			pattern, ok := scan.Pattern(kind)
			if !ok {
				continue
			}
			normalizer, ok := normalize.Lookup(kind)
			if !ok {
				continue
			}
			buf.SubRegex(pattern, func(groups []string) string {
				return normalizer(groups[0], cfg, diag)
			})
		}
	}
}

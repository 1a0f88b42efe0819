// Package config defines the pipeline's configuration surface: the value
// object, a JSON loader for it, and the dictionary-merge validation
// behind the DictionaryMerge error kind.
package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
)

// Code-block handling modes (code_block_mode).
const (
	CodeBlockFull  = "full"
	CodeBlockBrief = "brief"
)

// URL detail levels (url_detail_level).
const (
	URLDetailFull       = "full"
	URLDetailDomainOnly = "domain_only"
	URLDetailMinimal    = "minimal"
)

// IPv4 reading modes (ip_read_mode).
const (
	IPReadNumbers = "numbers"
	IPReadDigits  = "digits"
)

// DefaultDiagramSentinel is the phrase substituted for a diagram block when
// no Config.DiagramSentinel is configured.
const DefaultDiagramSentinel = "Тут диаграмма"

// Config is the pipeline's configuration surface: every tunable option
// plus the ambient Debug and CollectUnknownWords additions.
type Config struct {
	CodeBlockMode  string `json:"codeBlockMode,omitempty"`
	URLDetailLevel string `json:"urlDetailLevel,omitempty"`
	IPReadMode     string `json:"ipReadMode,omitempty"`
	ReadOperators  *bool  `json:"readOperators,omitempty"`

	CustomEnglishTerms  map[string]string `json:"customEnglishTerms,omitempty"`
	CustomAbbreviations map[string]string `json:"customAbbreviations,omitempty"`
	DiagramSentinel     string            `json:"diagramSentinel,omitempty"`

	// Debug raises the ambient slog level.
	Debug bool `json:"debug,omitempty"`
	// CollectUnknownWords turns on the unknown-words diagnostic set.
	CollectUnknownWords bool `json:"collectUnknownWords,omitempty"`
}

// Default returns a Config with every option at its default value.
func Default() Config {
	readOperators := true
	return Config{
		CodeBlockMode:       CodeBlockFull,
		URLDetailLevel:      URLDetailFull,
		IPReadMode:          IPReadNumbers,
		ReadOperators:       &readOperators,
		DiagramSentinel:     DefaultDiagramSentinel,
		CustomEnglishTerms:  map[string]string{},
		CustomAbbreviations: map[string]string{},
	}
}

// ReadOperatorsOrDefault reports whether operators should be pronounced,
// defaulting to true when unset.
func (c Config) ReadOperatorsOrDefault() bool {
	if c.ReadOperators == nil {
		return true
	}
	return *c.ReadOperators
}

// Normalize fills in every unset option with its default value,
// returning a complete Config ready for pipeline construction.
func (c Config) Normalize() Config {
	out := c
	if out.CodeBlockMode == "" {
		out.CodeBlockMode = CodeBlockFull
	}
	if out.URLDetailLevel == "" {
		out.URLDetailLevel = URLDetailFull
	}
	if out.IPReadMode == "" {
		out.IPReadMode = IPReadNumbers
	}
	if out.ReadOperators == nil {
		readOperators := true
		out.ReadOperators = &readOperators
	}
	if out.DiagramSentinel == "" {
		out.DiagramSentinel = DefaultDiagramSentinel
	}
	return out
}

// Load reads a Config from a JSON file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from operator-supplied CLI flag
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg.Normalize(), nil
}

// MergeDictionary validates and merges additions into base in place,
// rejecting any key that is empty or contains a non-ASCII byte (the
// DictionaryMerge error kind). Rejected entries are skipped rather
// than failing the merge, and the rejection count is logged once via
// slog.Warn.
func MergeDictionary(base map[string]string, additions map[string]string) int {
	rejected := 0
	for key, value := range additions {
		if !validDictionaryKey(key) {
			rejected++
			continue
		}
		base[key] = value
	}

	if rejected > 0 {
		slog.Warn("rejected invalid dictionary entries", "count", rejected)
	}

	return rejected
}

func validDictionaryKey(key string) bool {
	if key == "" {
		return false
	}
	for i := 0; i < len(key); i++ {
		if key[i] > 0x7F {
			return false
		}
	}
	return true
}

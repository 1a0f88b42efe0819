package structural

import (
	"strings"
	"testing"

	"github.com/xilec/ruvox/config"
	"github.com/xilec/ruvox/core"
)

func TestProcessFencedBlocks_DiagramUsesSentinel(t *testing.T) {
	cfg := config.Default()
	buf := core.NewBuffer("before ```mermaid\ngraph TD\nA-->B\n``` after", nil)

	n := ProcessFencedBlocks(buf, cfg, nil)
	if n != 1 {
		t.Fatalf("ProcessFencedBlocks() applied = %d, want 1", n)
	}
	if got := buf.CurrentText(); got != "before "+cfg.DiagramSentinel+" after" {
		t.Errorf("CurrentText() = %q, want %q", got, "before "+cfg.DiagramSentinel+" after")
	}
}

func TestProcessFencedBlocks_BriefModeNamesKnownLanguage(t *testing.T) {
	cfg := config.Default()
	cfg.CodeBlockMode = config.CodeBlockBrief
	buf := core.NewBuffer("see ```python\nprint(1)\n``` here", nil)

	want := "see далее следует пример кода на пайтон here"
	ProcessFencedBlocks(buf, cfg, nil)
	if got := buf.CurrentText(); got != want {
		t.Errorf("CurrentText() = %q, want %q", got, want)
	}
}

func TestProcessFencedBlocks_BriefModeFallsBackForUnknownLanguage(t *testing.T) {
	cfg := config.Default()
	cfg.CodeBlockMode = config.CodeBlockBrief
	buf := core.NewBuffer("```brainfuck\n++++\n```", nil)

	ProcessFencedBlocks(buf, cfg, nil)
	want := "далее следует пример кода на неизвестном языке"
	if got := buf.CurrentText(); got != want {
		t.Errorf("CurrentText() = %q, want %q", got, want)
	}
}

func TestProcessFencedBlocks_BriefModeFallsBackForAbsentLanguage(t *testing.T) {
	cfg := config.Default()
	cfg.CodeBlockMode = config.CodeBlockBrief
	buf := core.NewBuffer("```\nplain\n```", nil)

	ProcessFencedBlocks(buf, cfg, nil)
	want := "далее следует пример кода"
	if got := buf.CurrentText(); got != want {
		t.Errorf("CurrentText() = %q, want %q", got, want)
	}
}

func TestProcessFencedBlocks_FullModeRewritesContent(t *testing.T) {
	cfg := config.Default()
	buf := core.NewBuffer("```go\ncount := 5\n```", nil)

	ProcessFencedBlocks(buf, cfg, nil)
	got := buf.CurrentText()
	if strings.Contains(got, "5") {
		t.Errorf("CurrentText() = %q, still contains a raw digit after full-mode rewrite", got)
	}
	if got == "" {
		t.Error("CurrentText() is empty after full-mode rewrite")
	}
}

func TestProcessInlineCode_RewritesContent(t *testing.T) {
	cfg := config.Default()
	buf := core.NewBuffer("run `x = 1` now", nil)

	n := ProcessInlineCode(buf, cfg, nil)
	if n != 1 {
		t.Fatalf("ProcessInlineCode() applied = %d, want 1", n)
	}
	got := buf.CurrentText()
	if strings.Contains(got, "`") {
		t.Errorf("CurrentText() = %q, still contains backticks", got)
	}
	if strings.Contains(got, "1") {
		t.Errorf("CurrentText() = %q, still contains a raw digit", got)
	}
}

func TestRewriteFlat_NeverRecurses(t *testing.T) {
	cfg := config.Default()
	// A fence delimiter embedded in code content must not be unwrapped a
	// second time: RewriteFlat treats it as ordinary text content, not as
	// a nested fenced block to recurse into.
	got := RewriteFlat("```nested``` block 3", cfg, nil)
	if strings.Contains(got, "3") {
		t.Errorf("RewriteFlat() = %q, still contains a raw digit", got)
	}
}

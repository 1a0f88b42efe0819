package scan

import (
	"testing"

	"github.com/xilec/ruvox/core"
)

func TestPattern_KnownKindsReturnOK(t *testing.T) {
	for _, kind := range allKindsInPriorityOrder {
		if _, ok := Pattern(kind); !ok {
			t.Errorf("Pattern(%s) ok = false, want true", kind)
		}
	}
}

func TestPattern_StructuralKindsHaveNoEntry(t *testing.T) {
	for _, kind := range []core.Kind{core.FencedCode, core.DiagramBlock, core.InlineCode, core.RussianWord, core.Other} {
		if _, ok := Pattern(kind); ok {
			t.Errorf("Pattern(%s) ok = true, want false (handled outside scan)", kind)
		}
	}
}

func TestTokenize_ClassifiesKnownSpans(t *testing.T) {
	text := "Check https://example.com or call 5 now"
	tokens := Tokenize(text)

	var gotURL, gotInteger bool
	for _, tok := range tokens {
		if tok.Kind == core.URL && tok.Text == "https://example.com" {
			gotURL = true
		}
		if tok.Kind == core.Integer && tok.Text == "5" {
			gotInteger = true
		}
	}
	if !gotURL {
		t.Error("Tokenize() did not classify the URL span")
	}
	if !gotInteger {
		t.Error("Tokenize() did not classify the integer span")
	}
}

func TestTokenize_CoversEntireInput(t *testing.T) {
	text := "a1 b2.5 100%"
	tokens := Tokenize(text)

	var rebuilt []rune
	for _, tok := range tokens {
		rebuilt = append(rebuilt, []rune(tok.Text)...)
	}
	if string(rebuilt) != text {
		t.Errorf("Tokenize() spans reassemble to %q, want %q", string(rebuilt), text)
	}
}

func TestDatePattern_MatchesBothISOAndEuropeanShapes(t *testing.T) {
	tests := []string{"2024-01-15", "15.01.2024", "15/01/2024", "15-01-2024"}
	for _, in := range tests {
		if !datePattern.MatchString(in) {
			t.Errorf("datePattern did not match %q", in)
		}
	}
}

func TestIPv4Pattern_RejectsOutOfRangeOctet(t *testing.T) {
	if ipv4Pattern.MatchString("999.999.999.999") {
		t.Error("ipv4Pattern matched an out-of-range octet")
	}
	if !ipv4Pattern.MatchString("255.255.255.255") {
		t.Error("ipv4Pattern did not match the maximum valid address")
	}
	if !ipv4Pattern.MatchString("192.168.1.1") {
		t.Error("ipv4Pattern did not match an ordinary address")
	}
}

func TestTokenize_HigherPriorityKindWinsAtSameStart(t *testing.T) {
	// "1.2.3" matches Version, Float ("1.2") and Integer ("1") all starting
	// at offset 0; Version has the highest priority and must win.
	tokens := Tokenize("1.2.3")
	if len(tokens) == 0 {
		t.Fatal("Tokenize() returned no tokens")
	}
	if tokens[0].Kind != core.Version {
		t.Errorf("Tokenize()[0].Kind = %s, want %s", tokens[0].Kind, core.Version)
	}
}

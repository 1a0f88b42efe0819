package core

import "testing"

func TestPipeline_ProcessWithMap_RunsStagesInOrder(t *testing.T) {
	var order []string
	stages := Stages{
		Preprocess: func(buf *TrackedBuffer) {
			order = append(order, "preprocess")
		},
		StructuralFenced: func(buf *TrackedBuffer, diag *Diagnostics) {
			order = append(order, "fenced")
		},
		StructuralInline: func(buf *TrackedBuffer, diag *Diagnostics) {
			order = append(order, "inline")
		},
		ScanStructured: func(buf *TrackedBuffer, diag *Diagnostics) {
			order = append(order, "structured")
		},
		ScanWords: func(buf *TrackedBuffer, diag *Diagnostics) {
			order = append(order, "words")
		},
		ScanScalars: func(buf *TrackedBuffer, diag *Diagnostics) {
			order = append(order, "scalars")
		},
		Postprocess: func(buf *TrackedBuffer) {
			order = append(order, "postprocess")
		},
	}

	p := NewPipeline(stages, NewDiagnostics())
	p.Process("irrelevant")

	want := []string{"preprocess", "fenced", "inline", "structured", "words", "scalars", "postprocess"}
	if len(order) != len(want) {
		t.Fatalf("stage order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("stage order[%d] = %q, want %q", i, order[i], want[i])
		}
	}
}

func TestPipeline_ProcessWithMap_NilStagesAreSkipped(t *testing.T) {
	p := NewPipeline(Stages{}, NewDiagnostics())
	text, charMap := p.ProcessWithMap("hello")
	if text != "hello" {
		t.Errorf("ProcessWithMap() text = %q, want %q", text, "hello")
	}
	if charMap.Len() != 5 {
		t.Errorf("CharMap.Len() = %d, want 5", charMap.Len())
	}
}

func TestPreprocess_StripsBOMUnifiesCRLFAndQuotes(t *testing.T) {
	input := "\xef\xbb\xbf“Hello”\r\nworld’s"
	buf := NewBuffer(input, nil)
	Preprocess(buf)

	got := buf.CurrentText()
	want := "\"Hello\"\nworld's"
	if got != want {
		t.Errorf("Preprocess() = %q, want %q", got, want)
	}
}

func TestPipeline_Diagnostics_ReturnsSharedCollector(t *testing.T) {
	diag := NewDiagnostics()
	p := NewPipeline(Stages{}, diag)
	if p.Diagnostics() != diag {
		t.Error("Diagnostics() did not return the collector passed to NewPipeline")
	}
}

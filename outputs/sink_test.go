package outputs

import (
	"testing"

	"github.com/xilec/ruvox/core"
)

func TestToResult_CopiesCharMapEntries(t *testing.T) {
	buf := core.NewBuffer("ab", nil)
	_, charMap := buf.BuildMapping()

	result := toResult("ab", charMap)
	if result.Text != "ab" {
		t.Errorf("Text = %q, want %q", result.Text, "ab")
	}
	if len(result.CharMap) != charMap.Len() {
		t.Fatalf("len(CharMap) = %d, want %d", len(result.CharMap), charMap.Len())
	}
	for i, entry := range result.CharMap {
		wantStart, wantEnd := charMap.At(i)
		if entry.Start != wantStart || entry.End != wantEnd {
			t.Errorf("CharMap[%d] = {%d,%d}, want {%d,%d}", i, entry.Start, entry.End, wantStart, wantEnd)
		}
	}
}

func TestToResult_EmptyCharMap(t *testing.T) {
	buf := core.NewBuffer("", nil)
	_, charMap := buf.BuildMapping()

	result := toResult("", charMap)
	if len(result.CharMap) != 0 {
		t.Errorf("len(CharMap) = %d, want 0", len(result.CharMap))
	}
}

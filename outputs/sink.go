// Package outputs provides the boundary collaborators that deliver a
// pipeline result (rewritten text plus its character map) to the outside
// world: a file, an HTTP endpoint, and a WebSocket broadcast.
package outputs

import "github.com/xilec/ruvox/core"

// Sink delivers one pipeline result to an external destination.
type Sink interface {
	Deliver(text string, charMap *core.CharMap) error
}

// CharMapEntry is one code point's original span, the JSON shape a Sink
// serializes a core.CharMap entry into.
type CharMapEntry struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Result is the JSON shape every Sink marshals a pipeline result into.
type Result struct {
	Text    string         `json:"text"`
	CharMap []CharMapEntry `json:"charMap"`
}

func toResult(text string, charMap *core.CharMap) Result {
	entries := make([]CharMapEntry, charMap.Len())
	for i := range entries {
		start, end := charMap.At(i)
		entries[i] = CharMapEntry{Start: start, End: end}
	}
	return Result{Text: text, CharMap: entries}
}

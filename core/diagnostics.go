package core

import "sync"

// Diagnostics collects the internal error-kind counters. None of these
// are surfaced as failures of Process: the
// caller always gets a string back. If a Diagnostics instance is shared
// across goroutines (e.g. reused for several Pipeline.Process calls in
// parallel) the caller must not do so without external synchronization —
// the counters below are not safe for concurrent use except through the
// guarded accessors.
type Diagnostics struct {
	mu sync.Mutex

	// MalformedNumber counts tokens classified as a number that could not
	// be parsed, e.g. a Version candidate that lost its leading "v" and
	// was reclassified as operator-separated integers.
	MalformedNumber int
	// UnknownUnit counts SizeUnit matches whose unit word was not in the
	// unit table and fell through to Integer+EnglishWord.
	UnknownUnit int
	// OverlapDropped counts substitutions skipped because their translated
	// original range intersected an already-logged record.
	OverlapDropped int
	// DictionaryMerge counts user-supplied dictionary entries rejected at
	// configure time for being non-ASCII or empty.
	DictionaryMerge int

	unknownWords map[string]struct{}
}

// NewDiagnostics creates an empty, ready-to-use Diagnostics collector.
func NewDiagnostics() *Diagnostics {
	return &Diagnostics{unknownWords: make(map[string]struct{})}
}

// RecordUnknownWord adds word to the optional "unknown words" diagnostic
// set, used to help users extend the English dictionary.
func (d *Diagnostics) RecordUnknownWord(word string) {
	if d == nil {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.unknownWords == nil {
		d.unknownWords = make(map[string]struct{})
	}
	d.unknownWords[word] = struct{}{}
}

// UnknownWords returns the accumulated set of words that fell through to
// letter-level transliteration, in no particular order.
func (d *Diagnostics) UnknownWords() []string {
	if d == nil {
		return nil
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	words := make([]string, 0, len(d.unknownWords))
	for w := range d.unknownWords {
		words = append(words, w)
	}
	return words
}

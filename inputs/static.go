package inputs

import "context"

// StaticSource emits one fixed piece of text once, at Start. It is the
// simplest Source: a single configured string handed to its emit
// callback on startup.
type StaticSource struct {
	text string
	emit TextFunc
}

// NewStaticSource creates a StaticSource that will hand text to emit.
func NewStaticSource(text string, emit TextFunc) *StaticSource {
	return &StaticSource{text: text, emit: emit}
}

// Start emits the configured text once and returns immediately.
func (s *StaticSource) Start(_ context.Context) error {
	s.emit(s.text)
	return nil
}

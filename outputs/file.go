package outputs

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/xilec/ruvox/core"
	"github.com/xilec/ruvox/utils"
)

// FileSink writes each pipeline result as JSON to a fixed path, skipping
// the write when the text is unchanged since the previous call.
type FileSink struct {
	path string
	last string
}

// NewFileSink creates a FileSink writing to path.
func NewFileSink(path string) *FileSink {
	return &FileSink{path: path}
}

// Deliver writes the result to the sink's file, or does nothing if text
// matches the last delivered value.
func (f *FileSink) Deliver(text string, charMap *core.CharMap) error {
	if text == f.last {
		return nil
	}

	data, err := json.MarshalIndent(toResult(text, charMap), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	if err := utils.WriteFile(f.path, data); err != nil {
		return fmt.Errorf("write %s: %w", f.path, err)
	}

	f.last = text
	slog.Debug("wrote pipeline result to file", "path", f.path)
	return nil
}

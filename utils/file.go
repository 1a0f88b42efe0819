package utils

import (
	"fmt"
	"os"
	"path/filepath"
)

// WriteFile writes content to a file atomically, creating directories as
// needed: it writes to a temporary file in the same directory, then
// renames it over filename. outputs.FileSink rewrites its path on every
// changed pipeline result, and a reader polling that path (e.g. a TTS
// engine tailing it) must never observe a half-written JSON document.
func WriteFile(filename string, content []byte) error {
	cleanPath := filepath.Clean(filename)
	dir := filepath.Dir(cleanPath)

	if dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return err
		}
	}

	tmp, err := os.CreateTemp(dir, ".tmp-"+filepath.Base(cleanPath)+"-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath) //nolint:errcheck // no-op once the rename below succeeds

	if _, err := tmp.Write(content); err != nil {
		tmp.Close() //nolint:errcheck
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, 0600); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmpPath, cleanPath); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

package sexp

import (
	"fmt"
	"os"
	"path/filepath"
)

// writeElement writes a serialized element into <outputDir>/<uuid>/ together
// with its format marker file. All files use UTF-8 with Unix line endings;
// the element body gets a trailing newline.
func writeElement(outputDir, uuid, marker, markerContent, filename, body string) error {
	dir := filepath.Join(outputDir, uuid)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating element directory: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, marker), []byte(markerContent), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", marker, err)
	}
	if err := os.WriteFile(filepath.Join(dir, filename), []byte(body+"\n"), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", filename, err)
	}
	return nil
}

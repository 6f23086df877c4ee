// Package output writes extracted markdown next to its source document.
package output

import (
	"os"
	"path/filepath"
	"strings"
)

// DerivePath returns the default output location for a source file:
// same directory, same stem, ".md" extension.
func DerivePath(inputPath string) string {
	ext := filepath.Ext(inputPath)
	return strings.TrimSuffix(inputPath, ext) + ".md"
}

// Write stores markdown at path, creating parent directories as needed.
func Write(path, markdown string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, []byte(markdown), 0o644)
}

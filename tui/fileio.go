package tui

import (
	"fmt"
	"os"
	"strings"
)

// loadFile reads a file into newline-delimited content for the editor. A
// missing file is not an error: the editor starts with an empty document
// that will be created on save.
func loadFile(path string) (content string, exists bool, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("load %s: %w", path, err)
	}
	return string(data), true, nil
}

// saveFile serializes the document lines to disk. Failures are reported via
// the message bar and never touch the in-memory document.
func saveFile(path string, lines []string) error {
	content := strings.Join(lines, "\n") + "\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

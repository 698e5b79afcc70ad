package tui

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFileMissing(t *testing.T) {
	content, exists, err := loadFile(filepath.Join(t.TempDir(), "nope.txt"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if exists {
		t.Fatal("missing file reported as existing")
	}
	if content != "" {
		t.Fatalf("content for missing file: %q", content)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.txt")
	lines := []string{"first", "", "héllo 🎉"}

	if err := saveFile(path, lines); err != nil {
		t.Fatalf("save: %v", err)
	}

	content, exists, err := loadFile(path)
	if err != nil || !exists {
		t.Fatalf("load: exists=%v err=%v", exists, err)
	}
	if got, want := content, "first\n\nhéllo 🎉\n"; got != want {
		t.Fatalf("round trip: got %q, want %q", got, want)
	}
}

func TestLoadFilePermissionError(t *testing.T) {
	if os.Getuid() == 0 {
		t.Skip("root bypasses file permissions")
	}
	path := filepath.Join(t.TempDir(), "locked.txt")
	if err := os.WriteFile(path, []byte("x"), 0o000); err != nil {
		t.Fatal(err)
	}
	if _, _, err := loadFile(path); err == nil {
		t.Fatal("unreadable file should error")
	}
}

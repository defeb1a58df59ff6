package deps

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestCheckWritableDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	if err := CheckWritableDir("log directory", dir); err != nil {
		t.Fatalf("expected writable dir, got %v", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Fatalf("check left files behind: %v", entries)
	}
}

func TestCheckWritableDirFailure(t *testing.T) {
	base := t.TempDir()
	file := filepath.Join(base, "not-a-dir")
	if err := os.WriteFile(file, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	err := CheckWritableDir("log directory", filepath.Join(file, "logs"))
	var depErr *DependencyError
	if !errors.As(err, &depErr) || depErr.Name != "log directory" {
		t.Fatalf("expected DependencyError, got %v", err)
	}
}

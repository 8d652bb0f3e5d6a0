package fileutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
)

func TestReadFileWithLimit(t *testing.T) {
	dir := t.TempDir()

	t.Run("small file", func(t *testing.T) {
		path := filepath.Join(dir, "small")
		if err := os.WriteFile(path, []byte("content"), 0644); err != nil {
			t.Fatal(err)
		}

		data, err := ReadFileWithLimit(path)
		if err != nil {
			t.Fatalf("ReadFileWithLimit: %v", err)
		}
		if string(data) != "content" {
			t.Errorf("data = %q, want %q", data, "content")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := ReadFileWithLimit(filepath.Join(dir, "missing"))
		if err == nil {
			t.Fatal("expected error for missing file")
		}
	})

	t.Run("oversized file", func(t *testing.T) {
		path := filepath.Join(dir, "big")
		if err := os.WriteFile(path, make([]byte, MaxFileSize+1), 0644); err != nil {
			t.Fatal(err)
		}

		_, err := ReadFileWithLimit(path)
		if !errors.Is(err, ErrFileTooLarge) {
			t.Errorf("err = %v, want ErrFileTooLarge", err)
		}
	})
}

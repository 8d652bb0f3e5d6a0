package fileutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestAtomicWriteFile(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		perm    os.FileMode
		wantErr bool
	}{
		{
			name:    "successful write",
			data:    []byte("hello world\n"),
			perm:    0644,
			wantErr: false,
		},
		{
			name:    "empty data",
			data:    []byte{},
			perm:    0644,
			wantErr: false,
		},
		{
			name:    "private permissions",
			data:    []byte("secret"),
			perm:    0600,
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			path := filepath.Join(dir, "test-file")

			err := AtomicWriteFile(path, tt.data, tt.perm)
			if (err != nil) != tt.wantErr {
				t.Fatalf("AtomicWriteFile() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				return
			}

			got, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("reading file: %v", err)
			}
			if string(got) != string(tt.data) {
				t.Errorf("content = %q, want %q", got, tt.data)
			}

			if runtime.GOOS != "windows" {
				info, err := os.Stat(path)
				if err != nil {
					t.Fatalf("stat: %v", err)
				}
				if info.Mode().Perm() != tt.perm {
					t.Errorf("perm = %v, want %v", info.Mode().Perm(), tt.perm)
				}
			}
		})
	}
}

func TestAtomicWriteFileOverwritesExisting(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	if err := AtomicWriteFile(path, []byte("old"), 0644); err != nil {
		t.Fatalf("first write: %v", err)
	}
	if err := AtomicWriteFile(path, []byte("new"), 0644); err != nil {
		t.Fatalf("second write: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading file: %v", err)
	}
	if string(got) != "new" {
		t.Errorf("content = %q, want %q", got, "new")
	}
}

func TestAtomicWriteFileLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out")

	if err := AtomicWriteFile(path, []byte("data"), 0644); err != nil {
		t.Fatalf("AtomicWriteFile: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".mcp-setup-atomic-") {
			t.Errorf("temp file left behind: %s", e.Name())
		}
	}
}

func TestAtomicWriteJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.json")

	v := map[string]any{"mcpServers": map[string]any{}}
	if err := AtomicWriteJSON(path, v); err != nil {
		t.Fatalf("AtomicWriteJSON: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading file: %v", err)
	}
	if data[len(data)-1] != '\n' {
		t.Error("missing trailing newline")
	}

	var round map[string]any
	if err := json.Unmarshal(data, &round); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
}

func TestAtomicWriteYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "state.yaml")

	v := map[string]any{"servers": []string{"memory", "filesystem"}}
	if err := AtomicWriteYAML(path, v); err != nil {
		t.Fatalf("AtomicWriteYAML: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading file: %v", err)
	}
	if !strings.Contains(string(data), "memory") {
		t.Errorf("unexpected content: %q", data)
	}
}

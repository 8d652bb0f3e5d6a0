package registry

import (
	"os"
	"path/filepath"
	"testing"
)

const testManifest = `
[[servers]]
id = "obsidian"
display_name = "Obsidian"
description = "Search and read an Obsidian vault"

[servers.launch]
command = "npx"
args = ["-y", "mcp-obsidian", "$PROJECT_DIR/vault"]

[[servers]]
id = "memory"
display_name = "Memory (custom)"
description = "Overridden memory server"

[servers.launch]
command = "node"
args = ["$PROJECT_DIR/custom/memory.js"]
`

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "servers.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadManifest(t *testing.T) {
	path := writeManifest(t, testManifest)

	r, err := LoadManifest(path)
	if err != nil {
		t.Fatalf("LoadManifest: %v", err)
	}

	// New entry appended after built-ins
	obsidian, ok := r.Lookup("obsidian")
	if !ok {
		t.Fatal("manifest entry not merged")
	}
	if obsidian.Launch.Command != "npx" {
		t.Errorf("Command = %q, want npx", obsidian.Launch.Command)
	}

	all := r.All()
	if all[len(all)-1].ID != "obsidian" {
		t.Errorf("new entry should be last, got %q", all[len(all)-1].ID)
	}

	// Overridden entry keeps its built-in position
	builtinPos := -1
	for i, s := range New().All() {
		if s.ID == "memory" {
			builtinPos = i
		}
	}
	if all[builtinPos].ID != "memory" {
		t.Errorf("overridden entry moved: position %d holds %q", builtinPos, all[builtinPos].ID)
	}
	mem, _ := r.Lookup("memory")
	if mem.DisplayName != "Memory (custom)" {
		t.Errorf("override not applied: DisplayName = %q", mem.DisplayName)
	}
}

func TestLoadManifestErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "duplicate id",
			content: `
[[servers]]
id = "dup"
[servers.launch]
command = "a"

[[servers]]
id = "dup"
[servers.launch]
command = "b"
`,
		},
		{
			name: "empty id",
			content: `
[[servers]]
display_name = "No ID"
[servers.launch]
command = "a"
`,
		},
		{
			name:    "invalid toml",
			content: `[[servers` ,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeManifest(t, tt.content)
			if _, err := LoadManifest(path); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoadManifestMissingFile(t *testing.T) {
	if _, err := LoadManifest(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("expected error for missing file")
	}
}

package registry

import (
	"os"

	"github.com/cockroachdb/errors"
	toml "github.com/pelletier/go-toml/v2"
)

// manifest is the on-disk shape of a registry overlay file.
type manifest struct {
	Servers []Spec `toml:"servers"`
}

// LoadManifest reads a TOML overlay file and returns the built-in registry
// extended with its entries. An entry whose ID matches a built-in replaces
// that built-in in place, keeping its position; new IDs are appended in
// manifest order. Duplicate IDs within the manifest are an error.
//
// Example manifest:
//
//	[[servers]]
//	id = "obsidian"
//	display_name = "Obsidian"
//	description = "Search and read an Obsidian vault"
//
//	[servers.launch]
//	command = "npx"
//	args = ["-y", "mcp-obsidian", "$PROJECT_DIR/vault"]
func LoadManifest(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading registry manifest")
	}

	var m manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrap(err, "parsing registry manifest")
	}

	return New().Merge(m.Servers)
}

// Merge returns a new registry with overlay specs applied on top of r.
// Matching IDs are replaced in place; new IDs are appended in overlay order.
func (r *Registry) Merge(overlay []Spec) (*Registry, error) {
	merged := &Registry{
		specs: make([]Spec, len(r.specs)),
		index: make(map[string]int, len(r.specs)+len(overlay)),
	}
	copy(merged.specs, r.specs)
	for id, i := range r.index {
		merged.index[id] = i
	}

	seen := make(map[string]bool, len(overlay))
	for _, s := range overlay {
		if s.ID == "" {
			return nil, errors.New("manifest entry has empty id")
		}
		if seen[s.ID] {
			return nil, errors.Newf("duplicate server id %q in manifest", s.ID)
		}
		seen[s.ID] = true

		if i, exists := merged.index[s.ID]; exists {
			merged.specs[i] = s
			continue
		}
		merged.index[s.ID] = len(merged.specs)
		merged.specs = append(merged.specs, s)
	}

	return merged, nil
}

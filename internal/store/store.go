// Package store reads and writes the host configuration document.
//
// Writes go through a Strategy so the wizard can either write the host
// path directly or keep the canonical document inside the project directory
// with a symlink from the host path, without the synthesizer knowing which.
package store

import (
	"encoding/json"
	"os"

	"github.com/cockroachdb/errors"

	"github.com/mcptools/mcp-setup/internal/synth"
	"github.com/mcptools/mcp-setup/pkg/fileutil"
)

// Load reads the configuration document at path. An absent file is treated
// as an empty document, not an error. Symlinks are followed.
func Load(path string) (*synth.Document, error) {
	data, err := fileutil.ReadFileWithLimit(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return synth.NewDocument(), nil
		}
		return nil, err
	}

	var doc synth.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrapf(err, "parsing %s", path)
	}

	return &doc, nil
}

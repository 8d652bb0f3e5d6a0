package wizard

import (
	"path/filepath"
	"time"

	"github.com/mcptools/mcp-setup/internal/synth"
	"github.com/mcptools/mcp-setup/pkg/fileutil"
)

// StateFileName is the run record written into the project directory.
const StateFileName = ".mcp-setup.yaml"

// State records what a wizard run configured. It is informational only;
// merging never reads it back.
type State struct {
	// Timestamp is when the run completed.
	Timestamp time.Time `yaml:"timestamp"`

	// ConfigPath is where the document was written.
	ConfigPath string `yaml:"config_path"`

	// Added, Skipped, and Overwritten mirror the synthesis result.
	Added       []string `yaml:"added,omitempty"`
	Skipped     []string `yaml:"skipped,omitempty"`
	Overwritten []string `yaml:"overwritten,omitempty"`
}

// writeState records the run in <projectDir>/.mcp-setup.yaml.
func writeState(projectDir, configPath string, result *synth.Result) error {
	state := State{
		Timestamp:   time.Now().UTC(),
		ConfigPath:  configPath,
		Added:       result.Added,
		Skipped:     result.Skipped,
		Overwritten: result.Overwritten,
	}
	return fileutil.AtomicWriteYAML(filepath.Join(projectDir, StateFileName), state)
}

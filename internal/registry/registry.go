// Package registry defines the catalog of capability servers the wizard
// can configure for the host application.
package registry

import "github.com/cockroachdb/errors"

// PlaceholderProjectDir is the literal token in launch descriptors that is
// replaced with the chosen project directory at synthesis time.
const PlaceholderProjectDir = "$PROJECT_DIR"

// Launch describes how the host application starts a capability server.
type Launch struct {
	// Command is the executable name.
	Command string `toml:"command"`

	// Args are command-line arguments. Elements may contain the
	// PlaceholderProjectDir token.
	Args []string `toml:"args"`

	// Env contains environment variables for the server process.
	// Values may contain the PlaceholderProjectDir token; keys may not.
	Env map[string]string `toml:"env"`
}

// Spec describes a single capability server known to the wizard.
type Spec struct {
	// ID is the unique key used in the host configuration document.
	ID string `toml:"id"`

	// DisplayName is the human-readable label shown in prompts.
	DisplayName string `toml:"display_name"`

	// Description is a one-line explanation shown in prompts.
	Description string `toml:"description"`

	// Launch is the launch descriptor, with placeholders unresolved.
	Launch Launch `toml:"launch"`

	// RequiresBootstrap marks servers that need a source clone and build
	// before first use.
	RequiresBootstrap bool `toml:"requires_bootstrap"`

	// BootstrapDir is the subdirectory of the cloned servers repository
	// containing this server's source. Only meaningful when
	// RequiresBootstrap is set.
	BootstrapDir string `toml:"bootstrap_dir"`
}

// builtins is the static catalog, in prompt display order.
var builtins = []Spec{
	{
		ID:          "filesystem",
		DisplayName: "Filesystem",
		Description: "Read and write files under the project directory",
		Launch: Launch{
			Command: "npx",
			Args:    []string{"-y", "@modelcontextprotocol/server-filesystem", PlaceholderProjectDir},
		},
	},
	{
		ID:          "memory",
		DisplayName: "Memory",
		Description: "Persistent knowledge-graph memory across conversations",
		Launch: Launch{
			Command: "npx",
			Args:    []string{"-y", "@modelcontextprotocol/server-memory"},
			Env: map[string]string{
				"MEMORY_PATH": PlaceholderProjectDir + "/memory/memory.json",
			},
		},
	},
	{
		ID:          "git",
		DisplayName: "Git",
		Description: "Inspect and search the project's git history",
		Launch: Launch{
			Command: "uvx",
			Args:    []string{"mcp-server-git", "--repository", PlaceholderProjectDir},
		},
	},
	{
		ID:          "fetch",
		DisplayName: "Fetch",
		Description: "Fetch web pages and convert them for model consumption",
		Launch: Launch{
			Command: "uvx",
			Args:    []string{"mcp-server-fetch"},
		},
	},
	{
		ID:          "sqlite",
		DisplayName: "SQLite",
		Description: "Query a SQLite database in the project directory",
		Launch: Launch{
			Command: "uvx",
			Args:    []string{"mcp-server-sqlite", "--db-path", PlaceholderProjectDir + "/data.db"},
		},
	},
	{
		ID:          "puppeteer",
		DisplayName: "Puppeteer",
		Description: "Drive a headless browser for web automation",
		Launch: Launch{
			Command: "npx",
			Args:    []string{"-y", "@modelcontextprotocol/server-puppeteer"},
		},
	},
	{
		ID:          "sequential-thinking",
		DisplayName: "Sequential Thinking",
		Description: "Structured step-by-step reasoning scratchpad",
		Launch: Launch{
			Command: "npx",
			Args:    []string{"-y", "@modelcontextprotocol/server-sequential-thinking"},
		},
	},
	{
		ID:          "everything",
		DisplayName: "Everything (built from source)",
		Description: "Reference server exercising every protocol feature",
		Launch: Launch{
			Command: "node",
			Args:    []string{PlaceholderProjectDir + "/servers/src/everything/dist/index.js"},
		},
		RequiresBootstrap: true,
		BootstrapDir:      "src/everything",
	},
}

// Registry is an ordered, immutable catalog of capability server specs.
type Registry struct {
	specs []Spec
	index map[string]int
}

// New returns the built-in registry.
func New() *Registry {
	r, err := fromSpecs(builtins)
	if err != nil {
		// The built-in catalog is compiled in; a duplicate ID is a bug.
		panic(err)
	}
	return r
}

func fromSpecs(specs []Spec) (*Registry, error) {
	r := &Registry{
		specs: make([]Spec, 0, len(specs)),
		index: make(map[string]int, len(specs)),
	}
	for _, s := range specs {
		if err := r.add(s); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *Registry) add(s Spec) error {
	if s.ID == "" {
		return errors.New("spec has empty id")
	}
	if _, exists := r.index[s.ID]; exists {
		return errors.Newf("duplicate server id %q", s.ID)
	}
	r.index[s.ID] = len(r.specs)
	r.specs = append(r.specs, s)
	return nil
}

// Lookup returns the spec for id, and whether it exists.
func (r *Registry) Lookup(id string) (Spec, bool) {
	i, ok := r.index[id]
	if !ok {
		return Spec{}, false
	}
	return r.specs[i], true
}

// All returns every spec in declaration order. The returned slice is a copy;
// callers may not mutate registry state through it.
func (r *Registry) All() []Spec {
	out := make([]Spec, len(r.specs))
	copy(out, r.specs)
	return out
}

// Len returns the number of registered specs.
func (r *Registry) Len() int {
	return len(r.specs)
}

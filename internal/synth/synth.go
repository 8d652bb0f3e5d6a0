// Package synth builds the host configuration document from the capability
// registry and the operator's selection.
package synth

import (
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/mcptools/mcp-setup/internal/registry"
)

// Sentinel errors for synthesis. Both indicate a broken invariant in the
// caller, not an environmental problem: selections are validated against the
// registry before synthesis, and the project directory is resolved to an
// absolute path by the wizard.
var (
	// ErrUnknownServer indicates a selected id is not in the registry.
	ErrUnknownServer = errors.New("unknown server id")

	// ErrInvalidProjectDir indicates the project directory is empty or
	// not absolute.
	ErrInvalidProjectDir = errors.New("project directory must be an absolute path")
)

// MergePolicy controls what happens when a selected server id already exists
// in the document.
type MergePolicy string

const (
	// PolicySkip leaves the existing entry untouched.
	PolicySkip MergePolicy = "skip"

	// PolicyOverwrite replaces the existing entry with a freshly
	// resolved descriptor.
	PolicyOverwrite MergePolicy = "overwrite"
)

// Valid reports whether p is a recognized merge policy.
func (p MergePolicy) Valid() bool {
	return p == PolicySkip || p == PolicyOverwrite
}

// Result reports what Synthesize did, for the wizard's summary.
type Result struct {
	// Doc is the merged document.
	Doc *Document

	// Added lists ids inserted this run, in registry order.
	Added []string

	// Skipped lists ids that were already present and left untouched
	// (PolicySkip only), in registry order.
	Skipped []string

	// Overwritten lists ids that were already present and replaced
	// (PolicyOverwrite only), in registry order.
	Overwritten []string
}

// Synthesize merges the selected servers' resolved launch descriptors into a
// copy of existing. A nil existing document is treated as empty. The input
// document is never mutated, and on error no partially merged document is
// returned.
//
// Selected ids are processed in registry declaration order regardless of
// input order, so output is deterministic for a fixed input triple. Entries
// in existing that are not selected are carried over unchanged.
func Synthesize(existing *Document, selected []string, projectDir string, reg *registry.Registry, policy MergePolicy) (*Result, error) {
	if projectDir == "" || !filepath.IsAbs(projectDir) {
		return nil, errors.Wrapf(ErrInvalidProjectDir, "got %q", projectDir)
	}
	if !policy.Valid() {
		return nil, errors.Newf("invalid merge policy %q", policy)
	}

	want := make(map[string]bool, len(selected))
	for _, id := range selected {
		if _, ok := reg.Lookup(id); !ok {
			return nil, errors.Wrapf(ErrUnknownServer, "%q", id)
		}
		want[id] = true
	}

	out := existing.Clone()
	if out == nil {
		out = NewDocument()
	}

	result := &Result{Doc: out}

	// Registry order, not selection order, keeps output deterministic.
	for _, spec := range reg.All() {
		if !want[spec.ID] {
			continue
		}

		_, exists := out.MCPServers[spec.ID]
		if exists && policy == PolicySkip {
			result.Skipped = append(result.Skipped, spec.ID)
			continue
		}

		out.MCPServers[spec.ID] = Resolve(spec.Launch, projectDir)
		if exists {
			result.Overwritten = append(result.Overwritten, spec.ID)
		} else {
			result.Added = append(result.Added, spec.ID)
		}
	}

	return result, nil
}

// Resolve substitutes every literal occurrence of the project directory
// placeholder in the launch descriptor's command, argument, and environment
// value strings. Environment keys are never substituted.
func Resolve(launch registry.Launch, projectDir string) *Server {
	s := &Server{
		Command: substitute(launch.Command, projectDir),
	}
	if launch.Args != nil {
		s.Args = make([]string, len(launch.Args))
		for i, a := range launch.Args {
			s.Args[i] = substitute(a, projectDir)
		}
	}
	if launch.Env != nil {
		s.Env = make(map[string]string, len(launch.Env))
		for k, v := range launch.Env {
			s.Env[k] = substitute(v, projectDir)
		}
	}
	return s
}

// substitute is a literal token replace. A plain string replace is
// deliberate: the replacement is a filesystem path that may contain
// characters a template engine would misinterpret.
func substitute(s, projectDir string) string {
	return strings.ReplaceAll(s, registry.PlaceholderProjectDir, projectDir)
}

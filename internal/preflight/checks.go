package preflight

import (
	"fmt"
	"os/exec"

	"github.com/cockroachdb/errors"

	setuperrors "github.com/mcptools/mcp-setup/internal/errors"
	"github.com/mcptools/mcp-setup/internal/hostapp"
)

// RequiredTools are the executables the wizard and the configured servers
// depend on: node and npx to launch npm-distributed servers, git for the
// source bootstrap.
var RequiredTools = []string{"node", "npx", "git"}

// HostAppCheck verifies the host application's support directory exists.
type HostAppCheck struct {
	Host hostapp.Host
}

var _ Check = (*HostAppCheck)(nil)

// Name returns the unique identifier for this check.
func (c *HostAppCheck) Name() string {
	return "host-app"
}

// Run executes the host application presence check.
func (c *HostAppCheck) Run() *Result {
	if !c.Host.Installed() {
		return &Result{
			Name:    c.Name(),
			OK:      false,
			Message: fmt.Sprintf("host application support directory not found: %s", c.Host.SupportDir),
			FixHint: "install the desktop application and launch it once, or rerun with --skip-checks",
			Err:     errors.Wrapf(setuperrors.ErrHostAppNotFound, "%s", c.Host.SupportDir),
		}
	}
	return &Result{
		Name:    c.Name(),
		OK:      true,
		Message: fmt.Sprintf("host application found at %s", c.Host.SupportDir),
	}
}

// ToolCheck verifies a named executable is on the search path.
type ToolCheck struct {
	Tool string

	// lookPath is overridable for tests; defaults to exec.LookPath.
	lookPath func(string) (string, error)
}

var _ Check = (*ToolCheck)(nil)

// Name returns the unique identifier for this check.
func (c *ToolCheck) Name() string {
	return "tool-" + c.Tool
}

// Run executes the tool presence check.
func (c *ToolCheck) Run() *Result {
	look := c.lookPath
	if look == nil {
		look = exec.LookPath
	}

	path, err := look(c.Tool)
	if err != nil {
		return &Result{
			Name:    c.Name(),
			OK:      false,
			Message: fmt.Sprintf("%s not found on PATH", c.Tool),
			FixHint: fmt.Sprintf("install %s, or rerun with --skip-checks", c.Tool),
			Err:     errors.Wrapf(setuperrors.ErrToolNotFound, "%s", c.Tool),
		}
	}
	return &Result{
		Name:    c.Name(),
		OK:      true,
		Message: fmt.Sprintf("%s found at %s", c.Tool, path),
	}
}

// DefaultRunner returns a runner with the standard wizard checks: the host
// application plus every required tool.
func DefaultRunner(host hostapp.Host) *Runner {
	r := NewRunner()
	r.AddCheck(&HostAppCheck{Host: host})
	for _, tool := range RequiredTools {
		r.AddCheck(&ToolCheck{Tool: tool})
	}
	return r
}

// Package bootstrap performs the one-time clone-and-build step for capability
// servers distributed as source.
package bootstrap

import (
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/cockroachdb/errors"

	"github.com/mcptools/mcp-setup/internal/git"
	"github.com/mcptools/mcp-setup/internal/registry"
)

// serversDirName is the subdirectory of the project directory that holds the
// cloned servers repository.
const serversDirName = "servers"

// Bootstrapper clones the servers repository and builds individual servers
// inside it.
type Bootstrapper struct {
	// RepoURL is the git URL of the servers repository.
	RepoURL string

	// ProjectDir is the operator-chosen project directory.
	ProjectDir string

	// clone and run are overridable for tests.
	clone func(url, dest string, depth int) error
	run   func(dir, name string, args ...string) error
}

// New creates a Bootstrapper for the given repository and project directory.
func New(repoURL, projectDir string) *Bootstrapper {
	return &Bootstrapper{
		RepoURL:    repoURL,
		ProjectDir: projectDir,
		clone:      git.Clone,
		run:        runCommand,
	}
}

// ServersDir returns the clone destination: <projectDir>/servers.
func (b *Bootstrapper) ServersDir() string {
	return filepath.Join(b.ProjectDir, serversDirName)
}

// Bootstrap prepares one source-distributed server: clones the servers
// repository if it is not already present, then runs npm install and
// npm run build in the server's source directory.
//
// Errors here are environmental (network, npm), not invariant violations;
// the caller decides whether they abort the run.
func (b *Bootstrapper) Bootstrap(spec registry.Spec, logger *slog.Logger) error {
	if !spec.RequiresBootstrap {
		return nil
	}
	if spec.BootstrapDir == "" {
		return errors.Newf("server %q requires bootstrap but has no bootstrap dir", spec.ID)
	}

	dest := b.ServersDir()
	if git.IsRepo(dest) {
		logger.Debug("servers repository already cloned", "path", dest)
	} else {
		logger.Info("cloning servers repository", "url", b.RepoURL, "path", dest)
		if err := b.clone(b.RepoURL, dest, 1); err != nil {
			return errors.Wrapf(err, "cloning %s", b.RepoURL)
		}
	}

	srcDir := filepath.Join(dest, filepath.FromSlash(spec.BootstrapDir))
	if _, err := os.Stat(srcDir); err != nil {
		return errors.Wrapf(err, "server source directory for %q", spec.ID)
	}

	logger.Info("building server from source", "server", spec.ID, "dir", srcDir)
	if err := b.run(srcDir, "npm", "install"); err != nil {
		return errors.Wrapf(err, "npm install for %q", spec.ID)
	}
	if err := b.run(srcDir, "npm", "run", "build"); err != nil {
		return errors.Wrapf(err, "npm run build for %q", spec.ID)
	}

	return nil
}

// runCommand runs name with args in dir, streaming output to the console.
func runCommand(dir, name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

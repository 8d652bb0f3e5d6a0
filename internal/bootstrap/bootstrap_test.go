package bootstrap

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"

	"github.com/mcptools/mcp-setup/internal/logging"
	"github.com/mcptools/mcp-setup/internal/registry"
)

func testSpec() registry.Spec {
	return registry.Spec{
		ID:                "everything",
		RequiresBootstrap: true,
		BootstrapDir:      "src/everything",
	}
}

// fakeBootstrapper returns a Bootstrapper whose clone creates the source
// tree on disk and whose command runner records invocations.
func fakeBootstrapper(t *testing.T, projectDir string, cloneErr, runErr error) (*Bootstrapper, *[][]string) {
	t.Helper()
	var commands [][]string

	b := New("https://example.com/servers.git", projectDir)
	b.clone = func(url, dest string, depth int) error {
		if cloneErr != nil {
			return cloneErr
		}
		if err := os.MkdirAll(filepath.Join(dest, ".git"), 0755); err != nil {
			return err
		}
		return os.MkdirAll(filepath.Join(dest, "src", "everything"), 0755)
	}
	b.run = func(dir, name string, args ...string) error {
		commands = append(commands, append([]string{dir, name}, args...))
		return runErr
	}
	return b, &commands
}

func TestBootstrapClonesAndBuilds(t *testing.T) {
	projectDir := t.TempDir()
	b, commands := fakeBootstrapper(t, projectDir, nil, nil)

	if err := b.Bootstrap(testSpec(), logging.ForTest(t)); err != nil {
		t.Fatalf("Bootstrap: %v", err)
	}

	if len(*commands) != 2 {
		t.Fatalf("got %d commands, want install + build", len(*commands))
	}
	wantDir := filepath.Join(projectDir, "servers", "src", "everything")
	for _, cmd := range *commands {
		if cmd[0] != wantDir {
			t.Errorf("command ran in %q, want %q", cmd[0], wantDir)
		}
		if cmd[1] != "npm" {
			t.Errorf("command = %v, want npm", cmd)
		}
	}
}

func TestBootstrapSkipsExistingClone(t *testing.T) {
	projectDir := t.TempDir()
	b, _ := fakeBootstrapper(t, projectDir, nil, nil)

	// Pre-populate the clone
	dest := b.ServersDir()
	if err := os.MkdirAll(filepath.Join(dest, ".git"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(dest, "src", "everything"), 0755); err != nil {
		t.Fatal(err)
	}

	cloned := false
	b.clone = func(url, dest string, depth int) error {
		cloned = true
		return nil
	}

	if err := b.Bootstrap(testSpec(), logging.ForTest(t)); err != nil {
		t.Fatalf("Bootstrap: %v", err)
	}
	if cloned {
		t.Error("existing clone should not be re-cloned")
	}
}

func TestBootstrapCloneFailure(t *testing.T) {
	b, commands := fakeBootstrapper(t, t.TempDir(), errors.New("network down"), nil)

	err := b.Bootstrap(testSpec(), logging.ForTest(t))
	if err == nil {
		t.Fatal("expected clone error")
	}
	if len(*commands) != 0 {
		t.Error("no build commands should run after a failed clone")
	}
}

func TestBootstrapBuildFailure(t *testing.T) {
	b, _ := fakeBootstrapper(t, t.TempDir(), nil, errors.New("npm exploded"))

	if err := b.Bootstrap(testSpec(), logging.ForTest(t)); err == nil {
		t.Fatal("expected build error")
	}
}

func TestBootstrapIgnoresNonBootstrapServers(t *testing.T) {
	b, commands := fakeBootstrapper(t, t.TempDir(), nil, nil)

	spec := registry.Spec{ID: "memory"}
	if err := b.Bootstrap(spec, logging.ForTest(t)); err != nil {
		t.Fatalf("Bootstrap: %v", err)
	}
	if len(*commands) != 0 {
		t.Error("non-bootstrap server should be a no-op")
	}
}

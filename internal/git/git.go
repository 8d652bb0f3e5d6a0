// Package git provides Git operation wrappers for cloning repositories.
package git

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/cockroachdb/errors"
)

// Clone clones a git repository from url to dest with the specified depth.
// Output is streamed to os.Stdout and os.Stderr. Stdin is connected to os.Stdin
// to support interactive authentication (e.g., SSH passphrase, credentials).
func Clone(url, dest string, depth int) error {
	depthArg := fmt.Sprintf("--depth=%d", depth)
	cmd := exec.Command("git", "clone", depthArg, url, dest)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return errors.Wrap(err, "git clone failed")
	}
	return nil
}

// IsRepo reports whether path is a git repository by checking for a .git
// directory.
func IsRepo(path string) bool {
	info, err := os.Stat(filepath.Join(path, ".git"))
	return err == nil && info.IsDir()
}

package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"

	"github.com/mcptools/mcp-setup/internal/hostapp"
	"github.com/mcptools/mcp-setup/internal/synth"
	"github.com/mcptools/mcp-setup/pkg/fileutil"
)

// ErrDeclined indicates the operator declined to replace an existing file
// or link. It is a graceful negative result, not a failure.
var ErrDeclined = errors.New("declined by operator")

// ConfirmFunc asks the operator a yes/no question.
type ConfirmFunc func(question string) (bool, error)

// Strategy persists a configuration document. Persist returns the path the
// document was written to.
type Strategy interface {
	Persist(doc *synth.Document) (string, error)
}

// Direct writes the document straight to the host path.
type Direct struct {
	// Path is the host-expected configuration file location.
	Path string
}

// Persist writes the document atomically at the host path.
func (d Direct) Persist(doc *synth.Document) (string, error) {
	if err := os.MkdirAll(filepath.Dir(d.Path), 0755); err != nil {
		return "", errors.Wrap(err, "creating config directory")
	}
	if err := fileutil.AtomicWriteJSON(d.Path, doc); err != nil {
		return "", err
	}
	return d.Path, nil
}

// Symlink keeps the canonical document inside the project directory and
// points the host path at it with a symbolic link. The host application
// still finds the file where it expects it, but the document travels with
// the project.
type Symlink struct {
	// LinkPath is the host-expected configuration file location.
	LinkPath string

	// ProjectDir is where the canonical document is written.
	ProjectDir string

	// Confirm is asked once before replacing an existing regular file or
	// a link pointing somewhere else. If nil, replacement is refused.
	Confirm ConfirmFunc
}

// CanonicalPath returns where the canonical document lives.
func (s Symlink) CanonicalPath() string {
	return filepath.Join(s.ProjectDir, hostapp.ConfigFileName)
}

// Persist writes the canonical document and ensures the host path links to
// it. Returns ErrDeclined if the host path is occupied and the operator
// declines to replace it; in that case nothing has been written.
func (s Symlink) Persist(doc *synth.Document) (string, error) {
	canonical := s.CanonicalPath()

	replace, err := s.needsReplace(canonical)
	if err != nil {
		return "", err
	}
	if replace {
		// Ask before touching anything so a decline leaves no changes.
		if s.Confirm == nil {
			return "", errors.Wrapf(ErrDeclined, "%s already exists", s.LinkPath)
		}
		ok, err := s.Confirm(fmt.Sprintf("%s already exists; replace it with a link to %s?", s.LinkPath, canonical))
		if err != nil {
			return "", errors.Wrap(err, "confirming link replacement")
		}
		if !ok {
			return "", ErrDeclined
		}
	}

	if err := fileutil.AtomicWriteJSON(canonical, doc); err != nil {
		return "", err
	}

	if replace {
		if err := os.Remove(s.LinkPath); err != nil {
			return "", errors.Wrap(err, "removing existing config")
		}
	}

	// Recheck instead of trusting needsReplace: the link may already be
	// correct, in which case there is nothing left to do.
	if _, err := os.Lstat(s.LinkPath); err == nil {
		return canonical, nil
	}

	if err := os.MkdirAll(filepath.Dir(s.LinkPath), 0755); err != nil {
		return "", errors.Wrap(err, "creating config directory")
	}
	if err := os.Symlink(canonical, s.LinkPath); err != nil {
		return "", errors.Wrap(err, "linking host config")
	}

	return canonical, nil
}

// needsReplace reports whether something other than a link to canonical
// occupies the host path.
func (s Symlink) needsReplace(canonical string) (bool, error) {
	info, err := os.Lstat(s.LinkPath)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, errors.Wrap(err, "checking host config path")
	}

	if info.Mode()&os.ModeSymlink != 0 {
		target, err := os.Readlink(s.LinkPath)
		if err != nil {
			return false, errors.Wrap(err, "reading existing link")
		}
		if target == canonical {
			return false, nil
		}
	}

	return true, nil
}

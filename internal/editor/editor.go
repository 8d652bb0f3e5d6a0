// Package editor opens files in the operator's preferred text editor.
package editor

import (
	"fmt"
	"io"
	"os"
	"os/exec"
)

// Open launches an editor on path, attached to this process's terminal, and
// blocks until it exits. The location line goes to out so callers control
// where status text lands.
func Open(out io.Writer, path string) error {
	fmt.Fprintf(out, "Opening %s\n", path)

	cmd := exec.Command(detectEditor(), path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("running editor: %w", err)
	}

	return nil
}

// detectEditor picks the editor command: $EDITOR, then $VISUAL, then nano if
// installed, then vi.
func detectEditor() string {
	if editor := os.Getenv("EDITOR"); editor != "" {
		return editor
	}
	if visual := os.Getenv("VISUAL"); visual != "" {
		return visual
	}
	if _, err := exec.LookPath("nano"); err == nil {
		return "nano"
	}
	return "vi"
}

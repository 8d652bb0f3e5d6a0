package logging

import (
	"io"
	"os"

	"golang.org/x/term"
)

// fdWriter is satisfied by os.File and wrappers that expose a descriptor.
type fdWriter interface {
	Fd() uintptr
}

// IsTTY reports whether w is attached to a terminal. Writers without a
// file descriptor are never terminals.
func IsTTY(w io.Writer) bool {
	f, ok := w.(fdWriter)
	return ok && term.IsTerminal(int(f.Fd()))
}

// SupportsColor reports whether ANSI escape sequences are safe on w: the
// writer must be a terminal, NO_COLOR must be unset, and TERM must not be
// "dumb".
func SupportsColor(w io.Writer) bool {
	return supportsColor(w, IsTTY(w))
}

func supportsColor(_ io.Writer, isTTY bool) bool {
	// https://no-color.org
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return isTTY
}

// Package prompt provides interactive CLI prompts for operator input.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/mcptools/mcp-setup/internal/registry"
)

// Sentinel errors for prompting.
var (
	// ErrCancelled indicates input ended (e.g., Ctrl+D) before an answer.
	ErrCancelled = errors.New("prompt cancelled")

	// ErrInvalidSelection indicates the selection could not be parsed or
	// is out of range.
	ErrInvalidSelection = errors.New("invalid selection")
)

// Prompter asks the operator for the wizard's inputs. It is an interface so
// wizard tests can substitute a mock.
type Prompter interface {
	// Input asks for a line of text, returning def if the answer is empty.
	Input(label, def string) (string, error)

	// Confirm asks a yes/no question.
	Confirm(question string) (bool, error)

	// SelectServers asks the operator to choose from the catalog,
	// returning the chosen ids. An empty result is a valid answer.
	SelectServers(specs []registry.Spec) ([]string, error)
}

// ConsolePrompter prompts on a reader/writer pair, normally stdin/stdout.
type ConsolePrompter struct {
	reader *bufio.Reader
	writer io.Writer

	// Fuzzy enables the full-screen fuzzy finder for server selection.
	// Only usable when the process controls a real terminal.
	Fuzzy bool
}

// New creates a ConsolePrompter on stdin/stdout.
func New() *ConsolePrompter {
	return NewWithIO(os.Stdin, os.Stdout)
}

// NewWithIO creates a ConsolePrompter with custom reader and writer for testing.
func NewWithIO(r io.Reader, w io.Writer) *ConsolePrompter {
	return &ConsolePrompter{
		reader: bufio.NewReader(r),
		writer: w,
	}
}

// Input asks for a line of text. An empty answer returns def.
func (p *ConsolePrompter) Input(label, def string) (string, error) {
	if def != "" {
		fmt.Fprintf(p.writer, "%s [%s]: ", label, def)
	} else {
		fmt.Fprintf(p.writer, "%s: ", label)
	}

	line, err := p.readLine()
	if err != nil {
		return "", err
	}
	if line == "" {
		return def, nil
	}
	return line, nil
}

// Confirm asks a yes/no question. Empty input means no.
func (p *ConsolePrompter) Confirm(question string) (bool, error) {
	fmt.Fprintf(p.writer, "%s [y/N]: ", question)

	line, err := p.readLine()
	if err != nil {
		return false, err
	}
	switch strings.ToLower(line) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// SelectServers asks the operator to choose servers from the catalog.
// On a terminal with Fuzzy enabled it opens a fuzzy finder; otherwise it
// falls back to a numbered prompt accepting comma-separated indexes,
// "all", or an empty answer for none.
func (p *ConsolePrompter) SelectServers(specs []registry.Spec) ([]string, error) {
	if len(specs) == 0 {
		return nil, nil
	}
	if p.Fuzzy {
		return selectServersFuzzy(specs)
	}
	return p.selectServersNumbered(specs)
}

func (p *ConsolePrompter) selectServersNumbered(specs []registry.Spec) ([]string, error) {
	fmt.Fprintln(p.writer, "Available capability servers:")
	for i, s := range specs {
		fmt.Fprintf(p.writer, "  [%d] %s — %s\n", i+1, s.DisplayName, s.Description)
	}
	fmt.Fprint(p.writer, "Select servers (comma-separated numbers, \"all\", or empty for none): ")

	line, err := p.readLine()
	if err != nil {
		return nil, err
	}
	if line == "" {
		return nil, nil
	}

	if strings.EqualFold(line, "all") {
		ids := make([]string, len(specs))
		for i, s := range specs {
			ids[i] = s.ID
		}
		return ids, nil
	}

	seen := make(map[int]bool)
	var ids []string
	for _, field := range strings.Split(line, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		n, err := strconv.Atoi(field)
		if err != nil {
			return nil, errors.Wrapf(ErrInvalidSelection, "%q is not a number", field)
		}
		if n < 1 || n > len(specs) {
			return nil, errors.Wrapf(ErrInvalidSelection, "%d is out of range [1-%d]", n, len(specs))
		}
		if seen[n] {
			continue
		}
		seen[n] = true
		ids = append(ids, specs[n-1].ID)
	}
	return ids, nil
}

func (p *ConsolePrompter) readLine() (string, error) {
	line, err := p.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			if strings.TrimSpace(line) != "" {
				return strings.TrimSpace(line), nil
			}
			return "", ErrCancelled
		}
		return "", errors.Wrap(err, "reading input")
	}
	return strings.TrimSpace(line), nil
}

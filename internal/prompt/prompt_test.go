package prompt

import (
	"bytes"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"

	"github.com/mcptools/mcp-setup/internal/registry"
)

func testSpecs() []registry.Spec {
	return []registry.Spec{
		{ID: "filesystem", DisplayName: "Filesystem", Description: "files"},
		{ID: "memory", DisplayName: "Memory", Description: "memory"},
		{ID: "git", DisplayName: "Git", Description: "git"},
	}
}

func TestInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
		def   string
		want  string
	}{
		{"answer given", "/srv/proj\n", "/home/u/mcp", "/srv/proj"},
		{"empty uses default", "\n", "/home/u/mcp", "/home/u/mcp"},
		{"whitespace trimmed", "  /srv/proj  \n", "", "/srv/proj"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			p := NewWithIO(strings.NewReader(tt.input), &out)

			got, err := p.Input("Project directory", tt.def)
			if err != nil {
				t.Fatalf("Input: %v", err)
			}
			if got != tt.want {
				t.Errorf("Input = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestInputEOF(t *testing.T) {
	p := NewWithIO(strings.NewReader(""), &bytes.Buffer{})

	_, err := p.Input("Project directory", "")
	if !errors.Is(err, ErrCancelled) {
		t.Errorf("err = %v, want ErrCancelled", err)
	}
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"Y\n", true},
		{"yes\n", true},
		{"n\n", false},
		{"no\n", false},
		{"\n", false},
		{"whatever\n", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			p := NewWithIO(strings.NewReader(tt.input), &bytes.Buffer{})
			got, err := p.Confirm("Replace?")
			if err != nil {
				t.Fatalf("Confirm: %v", err)
			}
			if got != tt.want {
				t.Errorf("Confirm(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestSelectServersNumbered(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []string
		wantErr error
	}{
		{"single", "2\n", []string{"memory"}, nil},
		{"multiple", "1,3\n", []string{"filesystem", "git"}, nil},
		{"with spaces", " 1 , 2 \n", []string{"filesystem", "memory"}, nil},
		{"duplicates collapsed", "2,2,2\n", []string{"memory"}, nil},
		{"all", "all\n", []string{"filesystem", "memory", "git"}, nil},
		{"empty means none", "\n", nil, nil},
		{"not a number", "first\n", nil, ErrInvalidSelection},
		{"out of range high", "4\n", nil, ErrInvalidSelection},
		{"out of range zero", "0\n", nil, ErrInvalidSelection},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			p := NewWithIO(strings.NewReader(tt.input), &out)

			got, err := p.SelectServers(testSpecs())
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("SelectServers: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("got[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestSelectServersShowsCatalog(t *testing.T) {
	var out bytes.Buffer
	p := NewWithIO(strings.NewReader("\n"), &out)

	if _, err := p.SelectServers(testSpecs()); err != nil {
		t.Fatalf("SelectServers: %v", err)
	}

	display := out.String()
	for _, s := range testSpecs() {
		if !strings.Contains(display, s.DisplayName) {
			t.Errorf("catalog output missing %q", s.DisplayName)
		}
	}
}

func TestSelectServersEmptyCatalog(t *testing.T) {
	p := NewWithIO(strings.NewReader("\n"), &bytes.Buffer{})

	got, err := p.SelectServers(nil)
	if err != nil {
		t.Fatalf("SelectServers: %v", err)
	}
	if got != nil {
		t.Errorf("got %v, want nil", got)
	}
}

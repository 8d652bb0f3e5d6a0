package prompt

import (
	"fmt"

	"github.com/cockroachdb/errors"
	fuzzyfinder "github.com/ktr0731/go-fuzzyfinder"

	"github.com/mcptools/mcp-setup/internal/registry"
)

// selectServersFuzzy opens a full-screen fuzzy finder over the catalog.
// Tab marks multiple entries; aborting with Esc or Ctrl+C selects nothing.
func selectServersFuzzy(specs []registry.Spec) ([]string, error) {
	idxs, err := fuzzyfinder.FindMulti(
		specs,
		func(i int) string {
			return specs[i].DisplayName
		},
		fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
			if i < 0 {
				return ""
			}
			s := specs[i]
			preview := fmt.Sprintf("%s\n\n%s\n\nLaunch: %s", s.DisplayName, s.Description, s.Launch.Command)
			if s.RequiresBootstrap {
				preview += "\n\nBuilt from source on first use."
			}
			return preview
		}),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "selecting servers")
	}

	ids := make([]string, len(idxs))
	for i, idx := range idxs {
		ids[i] = specs[idx].ID
	}
	return ids, nil
}

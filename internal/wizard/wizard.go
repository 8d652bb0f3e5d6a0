// Package wizard drives the interactive setup flow: preflight checks,
// prompts, optional source bootstrap, configuration synthesis, and persist.
package wizard

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"

	"github.com/mcptools/mcp-setup/internal/bootstrap"
	setuperrors "github.com/mcptools/mcp-setup/internal/errors"
	"github.com/mcptools/mcp-setup/internal/hostapp"
	"github.com/mcptools/mcp-setup/internal/preflight"
	"github.com/mcptools/mcp-setup/internal/prompt"
	"github.com/mcptools/mcp-setup/internal/registry"
	"github.com/mcptools/mcp-setup/internal/settings"
	"github.com/mcptools/mcp-setup/internal/store"
	"github.com/mcptools/mcp-setup/internal/synth"
)

// Bootstrapper prepares a source-distributed server before it can be
// configured.
type Bootstrapper interface {
	Bootstrap(spec registry.Spec, logger *slog.Logger) error
}

// Options collects the wizard's collaborators. Every field with a zero-value
// default is filled in by Run, so tests can inject only what they observe.
type Options struct {
	// Host locates the host application's files.
	Host hostapp.Host

	// Settings is the wizard configuration.
	Settings *settings.Settings

	// Registry is the capability server catalog.
	Registry *registry.Registry

	// Prompter asks the operator for input.
	Prompter prompt.Prompter

	// Out receives the user-facing summary. Defaults to os.Stdout.
	Out io.Writer

	// Logger receives progress and diagnostics. Defaults to slog.Default.
	Logger *slog.Logger

	// SkipChecks bypasses the preflight checks.
	SkipChecks bool

	// NewBootstrapper builds the bootstrapper for a chosen project
	// directory. Defaults to the git+npm implementation.
	NewBootstrapper func(projectDir string) Bootstrapper
}

// normalize fills in defaulted collaborators.
func (o Options) normalize() Options {
	if o.Out == nil {
		o.Out = os.Stdout
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	if o.NewBootstrapper == nil {
		o.NewBootstrapper = func(projectDir string) Bootstrapper {
			return bootstrap.New(o.Settings.ServersRepo, projectDir)
		}
	}
	return o
}

// Run executes the wizard end to end. A nil return means success or a
// graceful no-op (nothing selected, operator declined).
func Run(opts Options) error {
	opts = opts.normalize()
	logger := opts.Logger

	// 1. Preflight: fail before any filesystem mutation.
	if opts.SkipChecks {
		logger.Warn("preflight checks skipped")
	} else {
		results := preflight.DefaultRunner(opts.Host).Run()
		if failed := preflight.Failures(results); len(failed) > 0 {
			for _, f := range failed {
				logger.Error(f.Message, "check", f.Name, "hint", f.FixHint)
			}
			return setuperrors.NewFatal(
				errors.Newf("%d preflight check(s) failed", len(failed)),
				"fix the issues above or rerun with --skip-checks")
		}
	}

	// 2. Existing configuration. Absent is fine; corrupt is not.
	existing, err := store.Load(opts.Host.ConfigPath)
	if err != nil {
		return errors.Wrap(err, "reading existing configuration")
	}

	// 3. Project directory.
	projectDir, err := opts.Prompter.Input("Project directory", opts.Settings.DefaultProjectDir)
	if err != nil {
		if errors.Is(err, prompt.ErrCancelled) {
			logger.Info("cancelled at directory prompt")
			return nil
		}
		return err
	}
	projectDir, err = filepath.Abs(projectDir)
	if err != nil {
		return errors.Wrap(err, "resolving project directory")
	}

	// 4. Server selection.
	selected, err := opts.Prompter.SelectServers(opts.Registry.All())
	if err != nil {
		if errors.Is(err, prompt.ErrCancelled) {
			logger.Info("cancelled at server selection")
			return nil
		}
		return err
	}
	if len(selected) == 0 {
		printNothingToDo(opts.Out)
		return nil
	}

	// 5. Project directory must exist before bootstrap and persist.
	if err := os.MkdirAll(projectDir, 0755); err != nil {
		return errors.Wrap(err, "creating project directory")
	}

	// 6. Bootstrap source-distributed servers. Failures drop the server
	// from this run but never abort the rest.
	selected, bootstrapFailed := runBootstrap(opts, selected, projectDir, logger)
	if len(selected) == 0 {
		printNothingToDo(opts.Out)
		return nil
	}

	// 7. Synthesize. Errors here indicate broken invariants, not
	// environment problems, and abort loudly.
	policy := synth.MergePolicy(opts.Settings.MergePolicy)
	result, err := synth.Synthesize(existing, selected, projectDir, opts.Registry, policy)
	if err != nil {
		return errors.Wrap(err, "synthesizing configuration")
	}

	// 8. Persist.
	writtenPath, err := opts.strategy(projectDir).Persist(result.Doc)
	if err != nil {
		if errors.Is(err, store.ErrDeclined) {
			logger.Info("persist declined by operator")
			printNothingToDo(opts.Out)
			return nil
		}
		return errors.Wrap(err, "writing configuration")
	}

	// 9. Record the run in the project directory. Best effort: the
	// configuration is already persisted.
	if err := writeState(projectDir, writtenPath, result); err != nil {
		logger.Warn("could not write run state", "error", err)
	}

	printSummary(opts.Out, writtenPath, result, bootstrapFailed)
	return nil
}

// strategy picks the persist strategy from settings.
func (o Options) strategy(projectDir string) store.Strategy {
	if o.Settings.ConfigLayout == settings.LayoutSymlink {
		return store.Symlink{
			LinkPath:   o.Host.ConfigPath,
			ProjectDir: projectDir,
			Confirm:    o.Prompter.Confirm,
		}
	}
	return store.Direct{Path: o.Host.ConfigPath}
}

// runBootstrap prepares every selected server that needs it, returning the
// surviving selection and the ids that failed.
func runBootstrap(opts Options, selected []string, projectDir string, logger *slog.Logger) (ok []string, failed []string) {
	var b Bootstrapper
	for _, id := range selected {
		spec, found := opts.Registry.Lookup(id)
		if !found {
			// Let the synthesizer report it as an invariant violation.
			ok = append(ok, id)
			continue
		}
		if !spec.RequiresBootstrap {
			ok = append(ok, id)
			continue
		}

		if b == nil {
			b = opts.NewBootstrapper(projectDir)
		}
		if err := b.Bootstrap(spec, logger); err != nil {
			logger.Error("bootstrap failed; server will not be configured this run",
				"server", id, "error", err)
			failed = append(failed, id)
			continue
		}
		ok = append(ok, id)
	}
	return ok, failed
}

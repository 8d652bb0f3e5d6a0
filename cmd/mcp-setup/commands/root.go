// Package commands implements the CLI commands for mcp-setup.
package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/mcptools/mcp-setup/internal/editor"
	setuperrors "github.com/mcptools/mcp-setup/internal/errors"
	"github.com/mcptools/mcp-setup/internal/hostapp"
	"github.com/mcptools/mcp-setup/internal/logging"
	"github.com/mcptools/mcp-setup/internal/prompt"
	"github.com/mcptools/mcp-setup/internal/registry"
	"github.com/mcptools/mcp-setup/internal/settings"
	"github.com/mcptools/mcp-setup/internal/wizard"
)

// version is set at build time via ldflags.
// Default to a development version for local builds.
const version = "0.1.0"

// editConfig holds the value of the -e/--edit flag.
var editConfig bool

// skipChecks holds the value of the --skip-checks flag.
var skipChecks bool

// verbosity holds the count of -v flags.
var verbosity int

// quiet holds the value of the -q/--quiet flag.
var quiet bool

// logFormat holds the value of the --log-format flag.
var logFormat string

// logFile holds the path to the log file.
var logFile string

// configLoadErr holds any error that occurred during settings loading.
var configLoadErr error

// loadedSettings holds the settings loaded during initialization.
var loadedSettings *settings.Settings

func init() {
	cobra.OnInitialize(initSettings)

	rootCmd.Flags().BoolVarP(&editConfig, "edit", "e", false,
		"open the existing configuration in $EDITOR instead of running the wizard")
	rootCmd.Flags().BoolVar(&skipChecks, "skip-checks", false,
		"skip the environment preflight checks")

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text",
		"log format: text, json")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"write logs to file in JSON format")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("mcp-setup version {{.Version}}\n")

	// Silence errors and usage so we can control error output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

func initSettings() {
	settings.Init()
	// Capture load errors for later reporting
	loadedSettings, configLoadErr = settings.Load("")
}

var rootCmd = &cobra.Command{
	Use:   "mcp-setup",
	Short: "Interactive setup wizard for desktop assistant capability servers",
	Long: `mcp-setup configures capability (MCP) servers for the desktop AI
assistant. It walks through an interactive flow: pick a project
directory, pick servers from a built-in catalog, and write the
assistant's configuration file with per-server launch entries.

Existing configuration is preserved: unknown fields survive untouched
and already-configured servers are skipped by default. Re-running the
wizard with the same answers is a no-op.`,
	Example: `  # Run the interactive wizard
  mcp-setup

  # Open the existing configuration in your editor
  mcp-setup -e

  # Run without checking for node, npx, and git
  mcp-setup --skip-checks`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := setupLogging(cmd); err != nil {
			return err
		}
		if configLoadErr != nil {
			return errors.Wrap(configLoadErr, "loading settings")
		}
		return nil
	},
	RunE: runRoot,
}

func runRoot(cmd *cobra.Command, _ []string) error {
	host := hostapp.Detect()

	if editConfig {
		return runEdit(cmd.OutOrStdout(), host)
	}

	reg := registry.New()
	if loadedSettings.RegistryManifest != "" {
		var err error
		reg, err = registry.LoadManifest(loadedSettings.RegistryManifest)
		if err != nil {
			return err
		}
	}

	prompter := prompt.New()
	prompter.Fuzzy = logging.IsTTY(os.Stdin)

	return wizard.Run(wizard.Options{
		Host:       host,
		Settings:   loadedSettings,
		Registry:   reg,
		Prompter:   prompter,
		Out:        cmd.OutOrStdout(),
		Logger:     slog.Default(),
		SkipChecks: skipChecks,
	})
}

// runEdit opens the existing configuration in the user's editor. A missing
// configuration is fatal: the flag edits, it never creates.
func runEdit(out io.Writer, host hostapp.Host) error {
	if !host.ConfigExists() {
		return setuperrors.NewFatal(
			errors.Wrapf(setuperrors.ErrConfigNotFound, "%s", host.ConfigPath),
			"run mcp-setup without -e to create it")
	}
	return editor.Open(out, host.ConfigPath)
}

// setupLogging configures the default logger based on verbosity flags.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return errors.New("cannot use --quiet and --verbose together")
	}

	var level slog.Level
	if quiet {
		level = slog.LevelError
	} else {
		v := verbosity

		// CLI flags take precedence, but if not set, check env var
		if v == 0 {
			if val, ok := os.LookupEnv("MCP_SETUP_DEBUG"); ok {
				switch val {
				case "1", "true":
					v = 2 // Debug
				case "2":
					v = 3 // Trace
				}
			}
		}
		level = logging.LevelFromVerbosity(v)
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var primaryHandler slog.Handler
	switch logging.Format(logFormat) {
	case logging.FormatJSON:
		primaryHandler = slog.NewJSONHandler(cmd.ErrOrStderr(), opts)
	default:
		primaryHandler = logging.NewHandler(cmd.ErrOrStderr(), opts)
	}

	handlers := []slog.Handler{primaryHandler}

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			return errors.Wrap(err, "opening log file")
		}
		// File output uses JSON format
		handlers = append(handlers, slog.NewJSONHandler(f, &slog.HandlerOptions{
			Level: level,
		}))
	}

	var handler slog.Handler
	if len(handlers) > 1 {
		handler = logging.NewMultiHandler(handlers...)
	} else {
		handler = handlers[0]
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.NewContext(ctx, logger))

	return nil
}

// printError reports a fatal error on the error stream. Errors and usage are
// silenced on the command itself, so every failure must pass through here.
func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %s\n", err)
	var exitErr *setuperrors.ExitError
	if errors.As(err, &exitErr) && exitErr.Suggestion != "" {
		fmt.Fprintf(w, "  %s\n", exitErr.Suggestion)
	}
}

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printError(rootCmd.ErrOrStderr(), err)
	}
	return err
}

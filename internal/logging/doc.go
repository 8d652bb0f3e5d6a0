// Package logging provides slog-based logging for the mcp-setup CLI.
//
// It offers a colorized TTY text handler, a JSON handler for machine
// consumption, a multi-handler for simultaneous console and file output,
// and helpers for mapping -v flag counts to log levels and carrying a
// logger through a context.Context.
package logging

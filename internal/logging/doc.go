// Package logging configures log/slog for the aios installer.
//
// Interactive runs get a compact, colorized text handler on stderr; scripted
// runs can switch to JSON with --log-format. A --log-file tees every record
// into a JSON file through [MultiHandler].
//
// The logger travels with the command context:
//
//	ctx = logging.NewContext(ctx, logger)
//	...
//	logging.FromContext(ctx).Debug("resolved option", "field", "language")
//
// Tests should use [ForTest] so output is attached to the failing test, or
// [NewDiscard] when log output is irrelevant.
package logging

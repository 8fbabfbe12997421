// Package errors provides error handling conventions for the aios installer.
//
// It re-exports the constructors and inspection helpers of
// github.com/cockroachdb/errors so callers import a single package, defines
// sentinel errors for common failure conditions, and provides the ExitError
// type used by the CLI to pick a process exit code.
//
// # Sentinel Errors
//
// Sentinel errors allow callers to check for specific error conditions
// using [Is]:
//
//	if errors.Is(err, aioserrors.ErrNotFound) {
//	    // no core-config.yaml in the target directory
//	}
//
// # Exit Codes
//
//   - ExitSuccess (0): Command completed successfully
//   - ExitUser (1): User-related error (invalid flags, bad settings file, etc.)
//   - ExitSystem (2): System-related error (unwritable target, I/O failure, etc.)
//
// # ExitError
//
// [ExitError] wraps an underlying error with an exit code and optional
// suggestion:
//
//	err := aioserrors.NewSystemError(writeErr, "Check that the target directory is writable")
//	var exitErr *aioserrors.ExitError
//	if errors.As(err, &exitErr) {
//	    os.Exit(exitErr.Code)
//	}
package errors

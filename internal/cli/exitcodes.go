package cli

import (
	"errors"

	"github.com/yaklabco/lintdev/internal/configloader"
	"github.com/yaklabco/lintdev/pkg/fsutil"
	"github.com/yaklabco/lintdev/pkg/readme"
)

// Exit codes for lintdev.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitFailure indicates generation aborted, e.g. on a malformed linter URL.
	ExitFailure = 1

	// ExitConfigError indicates configuration file or flag errors.
	ExitConfigError = 65

	// ExitIOError indicates the README or docs could not be read or written.
	ExitIOError = 74
)

// ExitCode maps a command error to the process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, configloader.ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, readme.ErrMarkerNotFound),
		errors.Is(err, readme.ErrMarkerOrder),
		errors.Is(err, readme.ErrConcurrentModification),
		errors.Is(err, fsutil.ErrNotFound),
		errors.Is(err, fsutil.ErrPermissionDenied),
		errors.Is(err, fsutil.ErrIsDirectory):
		return ExitIOError
	default:
		return ExitFailure
	}
}

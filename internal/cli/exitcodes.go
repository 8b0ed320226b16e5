package cli

import "errors"

// Exit codes for realign.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitError indicates a processing failure.
	ExitError = 1

	// ExitUsage indicates invalid command-line usage.
	ExitUsage = 2
)

// ErrUsage marks an error as invalid usage so main can map it to ExitUsage.
var ErrUsage = errors.New("invalid usage")

// ExitCode maps a command error to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrUsage):
		return ExitUsage
	default:
		return ExitError
	}
}

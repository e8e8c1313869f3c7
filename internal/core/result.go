package core

// Result is the terminal outcome of an installer run. It carries the
// process exit code to report, a human readable message, and the
// underlying error when the run failed. There is no retry state: every
// Result is final.
type Result struct {
	// ExitCode becomes the process's own exit status. Child exit codes
	// propagate here unmodified.
	ExitCode int

	// Message is shown to the user once, on top of whatever the
	// underlying package manager already printed.
	Message string

	// Error holds the technical failure detail, nil on success.
	Error error
}

// Failed reports whether the run must terminate with a non-zero status.
func (r Result) Failed() bool {
	return r.ExitCode != 0
}

// Success returns a zero-exit result.
func Success(msg string) Result {
	return Result{ExitCode: 0, Message: msg}
}

// Unsupported returns the no-known-package-manager result.
func Unsupported(msg string) Result {
	return Result{ExitCode: 1, Message: msg}
}

// Failure returns a failed result with the given exit code.
func Failure(err error, exitCode int, msg string) Result {
	if exitCode == 0 {
		exitCode = 1
	}
	return Result{ExitCode: exitCode, Message: msg, Error: err}
}

package mcrun

import "fmt"

// InputError reports unusable run options.
type InputError struct {
	Message string
}

func (e *InputError) Error() string {
	return e.Message
}

// RunError reports an mcrun process that could not be started or exited
// with a non-zero status.
type RunError struct {
	RunID       string
	CommandLine string
	// ExitCode is -1 when the process did not exit normally.
	ExitCode int
	Err      error
}

func (e *RunError) Error() string {
	if e.ExitCode >= 0 {
		return fmt.Sprintf("mcrun run %s exited with code %d", e.RunID, e.ExitCode)
	}
	return fmt.Sprintf("mcrun run %s failed: %v", e.RunID, e.Err)
}

func (e *RunError) Unwrap() error {
	return e.Err
}

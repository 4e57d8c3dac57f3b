package cli

import "fmt"

// ExitError carries a process exit code through cobra's error return. Execute
// unwraps it so commands can signal CI-relevant outcomes (failed findings,
// config errors) without calling os.Exit mid-stack.
type ExitError struct {
	Code int
	Err  error
}

// Error implements error.
func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

// Unwrap returns the wrapped error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

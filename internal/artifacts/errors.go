package artifacts

import "fmt"

// WriteError wraps a failure to persist a run artifact.
type WriteError struct {
	Artifact string
	Message  string
	Cause    error
}

func (e *WriteError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("artifacts: %s: %s: %v", e.Artifact, e.Message, e.Cause)
	}
	return fmt.Sprintf("artifacts: %s: %s", e.Artifact, e.Message)
}

func (e *WriteError) Unwrap() error {
	return e.Cause
}

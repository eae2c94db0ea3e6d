package transform

import "fmt"

// SubStepError reports which transformation sub-step halted the chain.
// Cause is nil when the model returned empty output rather than failing.
type SubStepError struct {
	Step  string
	Cause error
}

func (e *SubStepError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("transformation sub-step %q failed: %v", e.Step, e.Cause)
	}
	return fmt.Sprintf("transformation sub-step %q produced no output", e.Step)
}

func (e *SubStepError) Unwrap() error {
	return e.Cause
}

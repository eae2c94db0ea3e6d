package llm

import "fmt"

// InvocationError represents a transport or provider failure while invoking
// the model. Stages that hit one map it to their own failure outcome; it
// never reaches the caller raw.
type InvocationError struct {
	Provider Provider
	Message  string
	Cause    error
}

func (e *InvocationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invocation failed (%s): %s: %v", e.Provider, e.Message, e.Cause)
	}
	return fmt.Sprintf("invocation failed (%s): %s", e.Provider, e.Message)
}

func (e *InvocationError) Unwrap() error {
	return e.Cause
}

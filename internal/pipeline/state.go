package pipeline

import "fmt"

// State is a node of the pipeline state machine.
type State string

// Pipeline states. The happy path runs INIT through DONE in order; the
// rejection and failure states absorb the run, after which only
// finalization happens.
const (
	StateInit        State = "INIT"
	StateValidated   State = "VALIDATED"
	StateFiltered    State = "FILTERED"
	StateTransformed State = "TRANSFORMED"
	StateCleaned     State = "CLEANED"
	StateScored      State = "SCORED"
	StateDone        State = "DONE"

	StateRejectedInvalid State = "REJECTED_INVALID_INPUT"
	StateRejectedSpam    State = "REJECTED_SPAM"
	StateTransformFailed State = "TRANSFORM_FAILED"
	StateScoreFailed     State = "SCORE_FAILED"
)

// transitions is the explicit transition table. Every state change the
// controller makes must appear here; an unlisted transition is a
// programming error.
var transitions = map[State][]State{
	StateInit:        {StateValidated, StateRejectedInvalid},
	StateValidated:   {StateFiltered, StateRejectedSpam},
	StateFiltered:    {StateTransformed, StateTransformFailed},
	StateTransformed: {StateCleaned, StateTransformFailed},
	StateCleaned:     {StateScored, StateScoreFailed},
	// SCORE_FAILED is deliberately not absorbing: a run whose scoring call
	// failed still finalizes with its dialogue intact.
	StateScored:      {StateDone},
	StateScoreFailed: {StateDone},
}

// Absorbing reports whether no further stage may execute from s.
func (s State) Absorbing() bool {
	switch s {
	case StateDone, StateRejectedInvalid, StateRejectedSpam, StateTransformFailed:
		return true
	}
	return false
}

// canTransition checks the transition table.
func canTransition(from, to State) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// mustTransition panics on a transition the table does not allow. The
// controller is the only caller and its flow is fixed, so a panic here
// means the state machine itself was edited inconsistently.
func mustTransition(from, to State) {
	if !canTransition(from, to) {
		panic(fmt.Sprintf("pipeline: illegal transition %s -> %s", from, to))
	}
}

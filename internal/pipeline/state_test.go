package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransitionTable(t *testing.T) {
	happyPath := []State{StateInit, StateValidated, StateFiltered, StateTransformed, StateCleaned, StateScored, StateDone}
	for i := 0; i < len(happyPath)-1; i++ {
		assert.True(t, canTransition(happyPath[i], happyPath[i+1]),
			"expected %s -> %s", happyPath[i], happyPath[i+1])
	}

	assert.True(t, canTransition(StateInit, StateRejectedInvalid))
	assert.True(t, canTransition(StateValidated, StateRejectedSpam))
	assert.True(t, canTransition(StateFiltered, StateTransformFailed))
	assert.True(t, canTransition(StateTransformed, StateTransformFailed))
	assert.True(t, canTransition(StateCleaned, StateScoreFailed))
	assert.True(t, canTransition(StateScoreFailed, StateDone))
}

func TestTransitionTable_NoSkipsOrBackwardEdges(t *testing.T) {
	assert.False(t, canTransition(StateInit, StateFiltered))
	assert.False(t, canTransition(StateValidated, StateInit))
	assert.False(t, canTransition(StateInit, StateRejectedSpam))
	assert.False(t, canTransition(StateCleaned, StateTransformFailed))
	assert.False(t, canTransition(StateDone, StateInit))
}

func TestAbsorbingStates(t *testing.T) {
	for _, s := range []State{StateDone, StateRejectedInvalid, StateRejectedSpam, StateTransformFailed} {
		assert.True(t, s.Absorbing(), "%s should be absorbing", s)
	}
	// SCORE_FAILED still reaches DONE; it must not be absorbing.
	for _, s := range []State{StateInit, StateValidated, StateFiltered, StateTransformed, StateCleaned, StateScored, StateScoreFailed} {
		assert.False(t, s.Absorbing(), "%s should not be absorbing", s)
	}
}

func TestMustTransition_PanicsOnIllegalEdge(t *testing.T) {
	assert.Panics(t, func() { mustTransition(StateDone, StateInit) })
	assert.NotPanics(t, func() { mustTransition(StateInit, StateValidated) })
}

package cleaning

// EmptyDialogueError means cleaning left no usable dialogue lines. The
// controller maps it to a transform failure: a run must never succeed with
// an empty dialogue.
type EmptyDialogueError struct {
	Raw string
}

func (e *EmptyDialogueError) Error() string {
	return "cleaning produced no usable dialogue lines"
}

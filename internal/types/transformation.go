package types

// Transformation sub-step names, in execution order
const (
	SubStepAnalysis = "analysis"
	SubStepScript   = "script"
	SubStepFormat   = "format"
)

// SubStepResult records the raw output of one transformation sub-step.
type SubStepResult struct {
	Name    string `json:"name"`
	Output  string `json:"output"`
	Success bool   `json:"success"`
}

// TransformationResult is the ordered record of transformation sub-steps.
// Owned by the transformer while it runs; consumed read-only by the cleaner.
type TransformationResult struct {
	Steps      []SubStepResult `json:"steps"`
	FailedStep string          `json:"failed_step,omitempty"` // name of the sub-step that halted the transform, if any
}

// Output returns the final sub-step's text, or "" if the transform never
// produced a complete chain.
func (t *TransformationResult) Output() string {
	if t.FailedStep != "" || len(t.Steps) == 0 {
		return ""
	}
	return t.Steps[len(t.Steps)-1].Output
}

// Completed reports whether every sub-step produced usable output.
func (t *TransformationResult) Completed() bool {
	return t.FailedStep == "" && len(t.Steps) > 0
}

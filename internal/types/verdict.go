package types

// Verdict is the binary decision produced by the spam filter
type Verdict string

// Possible filter verdicts
const (
	VerdictPass Verdict = "PASS"
	VerdictStop Verdict = "STOP"
)

// FilterVerdict is the parsed result of the spam filter stage. It is created
// once per run and never mutated afterwards.
type FilterVerdict struct {
	Verdict Verdict `json:"verdict"`
	Reason  string  `json:"reason,omitempty"`
	RawText string  `json:"raw_text,omitempty"` // full model response, kept for diagnostics
}

// Passed reports whether the content cleared the filter.
func (v *FilterVerdict) Passed() bool {
	return v.Verdict == VerdictPass
}

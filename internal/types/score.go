package types

import "fmt"

// ScoreResult is the parsed output of the quality scorer. When no integer in
// [1,10] can be extracted from the model text, Unparsed is true and Score is
// meaningless; callers must check Unparsed rather than trust a default.
type ScoreResult struct {
	Score     int    `json:"score"`
	Rationale string `json:"rationale,omitempty"`
	RawText   string `json:"raw_text,omitempty"` // unmodified model output, kept for diagnostics
	Unparsed  bool   `json:"unparsed"`
}

// String renders the score for human-readable output.
func (s *ScoreResult) String() string {
	if s.Unparsed {
		return "unparsed"
	}
	return fmt.Sprintf("%d/10", s.Score)
}

// Package validation provides the structural pre-check applied to raw
// discussion text before any model call is made.
package validation

import "strings"

const (
	// MinLength is the minimum trimmed rune count for a valid discussion
	MinLength = 100
	// MinLines is the minimum number of non-blank lines for a valid discussion
	MinLines = 3
)

// Outcome is the result of validating discussion content.
type Outcome struct {
	OK     bool
	Reason string
}

// ValidateContent checks raw discussion text structurally. Checks run in
// order and short-circuit on the first failure: non-empty after trimming,
// minimum length, minimum non-blank line count. Malformed-but-present text
// never produces an error, only a failing outcome.
func ValidateContent(text string) Outcome {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Outcome{Reason: "discussion content is empty"}
	}

	if length := len([]rune(trimmed)); length < MinLength {
		return Outcome{Reason: "discussion content is too short (minimum 100 characters, meaningful content required)"}
	}

	if lines := countNonBlankLines(trimmed); lines < MinLines {
		return Outcome{Reason: "discussion content has too few lines (minimum 3 meaningful lines required)"}
	}

	return Outcome{OK: true}
}

func countNonBlankLines(text string) int {
	count := 0
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			count++
		}
	}
	return count
}

package scoring

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/newsgroup-processor/internal/types"
)

var (
	standaloneRe = regexp.MustCompile(`^(\d+)$`)
	fractionRe   = regexp.MustCompile(`\b(\d+)\s*/\s*10\b`)
	labelRe      = regexp.MustCompile(`(?i)\bscore\b[^\d]{0,10}(\d+)`)
	numberRe     = regexp.MustCompile(`\b(\d+)\b`)
)

// ExtractScore parses free-form scorer output. The extraction ladder, most
// to least structured: a standalone integer on the first line, an "N/10"
// fraction, an integer next to a "Score" label, any in-range integer on the
// first line. When nothing yields an integer in [1,10] the result is marked
// Unparsed rather than defaulting to a number.
func ExtractScore(response string) *types.ScoreResult {
	trimmed := strings.TrimSpace(response)
	firstLine, rest, _ := strings.Cut(trimmed, "\n")
	firstLine = strings.TrimSpace(firstLine)

	result := &types.ScoreResult{RawText: response}

	if score, ok := matchScore(standaloneRe, firstLine); ok {
		result.Score = score
		result.Rationale = strings.TrimSpace(rest)
		return result
	}

	for _, re := range []*regexp.Regexp{fractionRe, labelRe} {
		if score, ok := matchScore(re, trimmed); ok {
			result.Score = score
			result.Rationale = rationaleAround(firstLine, rest)
			return result
		}
	}

	if score, ok := matchScore(numberRe, firstLine); ok {
		result.Score = score
		result.Rationale = strings.TrimSpace(rest)
		return result
	}

	result.Unparsed = true
	return result
}

// matchScore applies a pattern and accepts the first capture that parses to
// an integer in [1,10].
func matchScore(re *regexp.Regexp, text string) (int, bool) {
	for _, match := range re.FindAllStringSubmatch(text, -1) {
		n, err := strconv.Atoi(match[1])
		if err == nil && n >= 1 && n <= 10 {
			return n, true
		}
	}
	return 0, false
}

// rationaleAround prefers the text after the first line; a single-line
// response keeps the whole line as rationale.
func rationaleAround(firstLine, rest string) string {
	if r := strings.TrimSpace(rest); r != "" {
		return r
	}
	return firstLine
}

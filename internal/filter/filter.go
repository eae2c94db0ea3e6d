// Package filter provides the spam/content gate that decides whether a
// discussion may be processed at all.
package filter

import (
	"context"
	"strings"

	"github.com/jonathan/newsgroup-processor/internal/llm"
	"github.com/jonathan/newsgroup-processor/internal/prompts"
	"github.com/jonathan/newsgroup-processor/internal/types"
)

// indeterminateReason is used when the model response contains neither
// verdict keyword. Ambiguity resolves to rejection, never to a retry:
// blocking good content is preferred over letting spam through.
const indeterminateReason = "indeterminate verdict"

// Check runs the spam filter over raw discussion text and parses the model
// response into a FilterVerdict.
func Check(ctx context.Context, client llm.Client, text string) (*types.FilterVerdict, error) {
	template, err := prompts.Get("filter.json", "spam_filter")
	if err != nil {
		return nil, err
	}
	prompt := prompts.Format(template, map[string]string{"Content": text})

	response, err := client.GenerateContent(ctx, prompt, llm.TierLite)
	if err != nil {
		return nil, err
	}

	return ParseVerdict(response), nil
}

// ParseVerdict extracts a PASS/STOP decision from free-form model text. The
// first token-like occurrence of "PASS" or "STOP" (case-insensitive) in the
// first line determines the verdict; the remaining text becomes the reason.
// Absence of either keyword is treated conservatively as STOP.
func ParseVerdict(response string) *types.FilterVerdict {
	trimmed := strings.TrimSpace(response)
	if trimmed == "" {
		return &types.FilterVerdict{
			Verdict: types.VerdictStop,
			Reason:  indeterminateReason,
			RawText: response,
		}
	}

	firstLine, rest, _ := strings.Cut(trimmed, "\n")

	tokens := strings.Fields(firstLine)
	for i, token := range tokens {
		switch normalizeToken(token) {
		case "PASS", "STOP":
			verdict := types.VerdictPass
			if normalizeToken(token) == "STOP" {
				verdict = types.VerdictStop
			}
			reason := verdictReason(tokens[i+1:], rest)
			return &types.FilterVerdict{
				Verdict: verdict,
				Reason:  reason,
				RawText: response,
			}
		}
	}

	return &types.FilterVerdict{
		Verdict: types.VerdictStop,
		Reason:  indeterminateReason,
		RawText: response,
	}
}

// normalizeToken uppercases a token and strips surrounding punctuation so
// that "PASS.", "**STOP**" and "pass:" all match.
func normalizeToken(token string) string {
	return strings.ToUpper(strings.Trim(token, "*_.,:;!()[]\"'-"))
}

// verdictReason assembles the reason string from the tokens after the
// keyword plus any following lines, trimming leading separators.
func verdictReason(after []string, rest string) string {
	parts := make([]string, 0, 2)
	if tail := strings.Join(after, " "); tail != "" {
		parts = append(parts, tail)
	}
	if rest = strings.TrimSpace(rest); rest != "" {
		parts = append(parts, rest)
	}
	reason := strings.Join(parts, "\n")
	return strings.TrimSpace(strings.TrimLeft(reason, "-—–:,. "))
}

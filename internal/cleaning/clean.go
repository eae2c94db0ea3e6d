// Package cleaning post-processes raw transformer output into canonical
// SPEAKER: line dialogue. Cleaning is pure text manipulation: no model
// calls, fully deterministic for identical input.
package cleaning

import (
	"regexp"
	"strings"

	"github.com/jonathan/newsgroup-processor/internal/types"
)

var (
	// Stage directions and actions between brackets, anywhere in a line.
	parenRe   = regexp.MustCompile(`\([^)]*\)`)
	bracketRe = regexp.MustCompile(`\[[^\]]*\]`)
	braceRe   = regexp.MustCompile(`\{[^}]*\}`)

	// Leading list markers the model sometimes prepends: "-", "*", ">",
	// "1." and friends.
	listMarkerRe = regexp.MustCompile(`^(?:[-*>•]\s+|\d+[.)]\s+)`)

	multiSpaceRe = regexp.MustCompile(`\s+`)
)

// Clean normalizes raw dialogue text into a CleanedDialogue. Lines that are
// empty, markdown fences, or whole-line stage directions are dropped; lines
// that do not fit the SPEAKER: text shape after normalization are dropped
// too. Only a fully empty result is an error.
func Clean(raw string) (*types.CleanedDialogue, error) {
	var utterances []types.Utterance

	for _, line := range strings.Split(raw, "\n") {
		if utt, ok := cleanLine(line); ok {
			utterances = append(utterances, utt)
		}
	}

	if len(utterances) == 0 {
		return nil, &EmptyDialogueError{Raw: raw}
	}

	return &types.CleanedDialogue{
		Utterances: utterances,
		Text:       types.Render(utterances),
	}, nil
}

// cleanLine normalizes one raw line and parses it into an utterance.
func cleanLine(line string) (types.Utterance, bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "```") {
		return types.Utterance{}, false
	}

	// Strip bracketed stage directions, inline or whole-line.
	line = parenRe.ReplaceAllString(line, "")
	line = bracketRe.ReplaceAllString(line, "")
	line = braceRe.ReplaceAllString(line, "")

	// Strip list markers, heading markers and emphasis artifacts.
	line = listMarkerRe.ReplaceAllString(strings.TrimSpace(line), "")
	line = strings.Trim(line, "*_#")
	line = strings.TrimSpace(line)
	if line == "" {
		return types.Utterance{}, false
	}

	speaker, text, found := strings.Cut(line, ":")
	if !found {
		return types.Utterance{}, false
	}

	speaker = strings.ToUpper(strings.TrimSpace(strings.Trim(speaker, "*_")))
	text = strings.TrimLeft(text, "*_ ") // emphasis spills past the colon in "**MIKE:** ..."
	text = strings.TrimSpace(multiSpaceRe.ReplaceAllString(text, " "))
	if speaker == "" || text == "" {
		return types.Utterance{}, false
	}

	return types.Utterance{Speaker: speaker, Line: text}, true
}

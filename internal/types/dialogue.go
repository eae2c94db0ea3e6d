package types

import "strings"

// Utterance is a single speaker/line pair of a cleaned dialogue.
type Utterance struct {
	Speaker string `json:"speaker"`
	Line    string `json:"line"`
}

// CleanedDialogue is the canonical result of cleaning raw transformer output.
// Every utterance matches the SPEAKER: text shape and speaker names are
// uppercased. Text is the flattened rendering used for artifacts.
type CleanedDialogue struct {
	Utterances []Utterance `json:"utterances"`
	Text       string      `json:"text"`
}

// Speakers returns the deduplicated speaker names in order of first
// appearance.
func (d *CleanedDialogue) Speakers() []string {
	seen := make(map[string]bool)
	var speakers []string
	for _, u := range d.Utterances {
		if !seen[u.Speaker] {
			seen[u.Speaker] = true
			speakers = append(speakers, u.Speaker)
		}
	}
	return speakers
}

// Render flattens utterances into the canonical text form, one
// "SPEAKER: line" per line.
func Render(utterances []Utterance) string {
	lines := make([]string, 0, len(utterances))
	for _, u := range utterances {
		lines = append(lines, u.Speaker+": "+u.Line)
	}
	return strings.Join(lines, "\n")
}

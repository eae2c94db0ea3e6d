package types

import "strings"

// SourceKind identifies where discussion text came from
type SourceKind string

// Sources a discussion can be acquired from
const (
	SourceInline SourceKind = "inline"
	SourceFile   SourceKind = "file"
)

// DiscussionInput holds the raw discussion text together with the structural
// measurements the content validator checks.
type DiscussionInput struct {
	Text       string     `json:"text"`
	Source     SourceKind `json:"source"`
	SourcePath string     `json:"source_path,omitempty"` // set when Source == SourceFile
	Length     int        `json:"length"`                // rune count of the trimmed text
	LineCount  int        `json:"line_count"`            // number of non-blank lines
}

// NewDiscussionInput measures raw text and wraps it as a DiscussionInput.
func NewDiscussionInput(text string, source SourceKind, sourcePath string) *DiscussionInput {
	trimmed := strings.TrimSpace(text)
	return &DiscussionInput{
		Text:       text,
		Source:     source,
		SourcePath: sourcePath,
		Length:     len([]rune(trimmed)),
		LineCount:  countNonBlankLines(text),
	}
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

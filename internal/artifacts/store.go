package artifacts

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/jonathan/newsgroup-processor/internal/types"
)

const (
	// DefaultOutputDir receives the dialogue and score files.
	DefaultOutputDir = "output"
	// DefaultLogsDir receives timestamped per-run logs.
	DefaultLogsDir = "logs"

	dialogueFileName = "dialogue_output.txt"
	scoreFileName    = "dialogue_score.txt"
)

// Store writes run artifacts to the filesystem. A zero-value Store uses the
// default directories.
type Store struct {
	OutputDir string
	LogsDir   string
	Clock     func() time.Time
}

// NewStore creates a store rooted at the given directories. Empty arguments
// fall back to the defaults.
func NewStore(outputDir, logsDir string) *Store {
	if outputDir == "" {
		outputDir = DefaultOutputDir
	}
	if logsDir == "" {
		logsDir = DefaultLogsDir
	}
	return &Store{OutputDir: outputDir, LogsDir: logsDir, Clock: time.Now}
}

func (s *Store) now() time.Time {
	if s.Clock != nil {
		return s.Clock()
	}
	return time.Now()
}

// SaveDialogue writes the cleaned dialogue to output/dialogue_output.txt and
// returns the path written.
func (s *Store) SaveDialogue(dialogue *types.CleanedDialogue) (string, error) {
	if dialogue == nil || len(dialogue.Utterances) == 0 {
		return "", &WriteError{Artifact: "dialogue", Message: "nothing to save"}
	}
	if err := os.MkdirAll(s.OutputDir, 0755); err != nil {
		return "", &WriteError{Artifact: "dialogue", Message: "failed to create output directory", Cause: err}
	}
	path := filepath.Join(s.OutputDir, dialogueFileName)
	if err := os.WriteFile(path, []byte(types.Render(dialogue.Utterances)+"\n"), 0644); err != nil {
		return "", &WriteError{Artifact: "dialogue", Message: "failed to write dialogue file", Cause: err}
	}
	return path, nil
}

// SaveScore writes the quality score to output/dialogue_score.txt. An
// unparsed score records the raw model response instead of a number.
func (s *Store) SaveScore(score *types.ScoreResult) (string, error) {
	if score == nil {
		return "", &WriteError{Artifact: "score", Message: "nothing to save"}
	}
	if err := os.MkdirAll(s.OutputDir, 0755); err != nil {
		return "", &WriteError{Artifact: "score", Message: "failed to create output directory", Cause: err}
	}

	var b strings.Builder
	if score.Unparsed {
		b.WriteString("Dialogue Quality Score: unparsed\n\n")
		b.WriteString("Raw scoring response:\n")
		b.WriteString(strings.TrimSpace(score.RawText))
		b.WriteString("\n")
	} else {
		fmt.Fprintf(&b, "Dialogue Quality Score: %d/10\n", score.Score)
		if rationale := strings.TrimSpace(score.Rationale); rationale != "" {
			b.WriteString("\n")
			b.WriteString(rationale)
			b.WriteString("\n")
		}
	}

	path := filepath.Join(s.OutputDir, scoreFileName)
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return "", &WriteError{Artifact: "score", Message: "failed to write score file", Cause: err}
	}
	return path, nil
}

// RenderRunLog formats the full run as a plain-text log: a header block
// followed by one line per stage event. The same text is written to the
// logs directory and persisted as the run_log database artifact.
func RenderRunLog(run *types.PipelineRun) string {
	var b strings.Builder
	fmt.Fprintf(&b, "run %s\n", run.ID)
	fmt.Fprintf(&b, "source: %s\n", describeSource(run.Input))
	fmt.Fprintf(&b, "status: %s\n", run.Status)
	if run.Reason != "" {
		fmt.Fprintf(&b, "reason: %s\n", run.Reason)
	}
	fmt.Fprintf(&b, "started: %s\n", run.StartedAt.Format(time.RFC3339))
	fmt.Fprintf(&b, "completed: %s\n\n", run.CompletedAt.Format(time.RFC3339))
	for _, e := range run.Events {
		fmt.Fprintf(&b, "%s  %-10s %-22s %s\n",
			e.Timestamp.Format("15:04:05.000"), e.Stage, e.Outcome, e.Detail)
	}
	return b.String()
}

// SaveRunLog writes a timestamped plain-text log of the full run into the
// logs directory.
func (s *Store) SaveRunLog(run *types.PipelineRun) (string, error) {
	if run == nil {
		return "", &WriteError{Artifact: "log", Message: "nothing to save"}
	}
	if err := os.MkdirAll(s.LogsDir, 0755); err != nil {
		return "", &WriteError{Artifact: "log", Message: "failed to create logs directory", Cause: err}
	}

	name := fmt.Sprintf("run_%s_%s.log", s.now().Format("20060102_150405"), sanitizeFilename(run.ID))
	path := filepath.Join(s.LogsDir, name)

	if err := os.WriteFile(path, []byte(RenderRunLog(run)), 0644); err != nil {
		return "", &WriteError{Artifact: "log", Message: "failed to write run log", Cause: err}
	}
	return path, nil
}

func describeSource(input *types.DiscussionInput) string {
	if input == nil {
		return "unknown"
	}
	if input.Source == types.SourceFile && input.SourcePath != "" {
		return string(input.Source) + " " + input.SourcePath
	}
	return string(input.Source)
}

var unsafeFilenameRe = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

// sanitizeFilename keeps run-derived file names portable.
func sanitizeFilename(name string) string {
	name = unsafeFilenameRe.ReplaceAllString(name, "_")
	name = strings.Trim(name, "._")
	if name == "" {
		return "run"
	}
	return name
}

// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/newsgroup-processor/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxUtterancesToShow is the default number of dialogue lines to display
	maxUtterancesToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintInput outputs a summary of the validated discussion input.
func (p *Printer) PrintInput(input *types.DiscussionInput) {
	if input == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Source:      %s\n", input.Source))
	if input.SourcePath != "" {
		sb.WriteString(fmt.Sprintf("Path:        %s\n", input.SourcePath))
	}
	sb.WriteString(fmt.Sprintf("Characters:  %d\n", input.Length))
	sb.WriteString(fmt.Sprintf("Lines:       %d", input.LineCount))

	p.printBox("DISCUSSION INPUT", sb.String())
}

// PrintVerdict outputs the spam filter decision.
func (p *Printer) PrintVerdict(verdict *types.FilterVerdict) {
	if verdict == nil {
		return
	}

	var sb strings.Builder
	if verdict.Passed() {
		sb.WriteString("Verdict:  ✅ PASS\n")
	} else {
		sb.WriteString("Verdict:  ⛔ STOP\n")
	}
	reason := verdict.Reason
	if len(reason) > 50 {
		reason = reason[:47] + "..."
	}
	sb.WriteString(fmt.Sprintf("Reason:   %s", reason))

	p.printBox("SPAM FILTER", sb.String())
}

// PrintTransformation outputs the sub-step chain with per-step status.
func (p *Printer) PrintTransformation(result *types.TransformationResult) {
	if result == nil || len(result.Steps) == 0 {
		return
	}

	var sb strings.Builder
	for i, step := range result.Steps {
		marker := "✓"
		if !step.Success {
			marker = "✗"
		}
		sb.WriteString(fmt.Sprintf("%s %s (%d chars)", marker, step.Name, len(step.Output)))
		if i < len(result.Steps)-1 {
			sb.WriteString("\n")
		}
	}
	if result.FailedStep != "" {
		sb.WriteString(fmt.Sprintf("\n\nHalted at: %s", result.FailedStep))
	}

	p.printBox("TRANSFORMATION STEPS", sb.String())
}

// PrintDialogue outputs the first few lines of the cleaned dialogue.
func (p *Printer) PrintDialogue(dialogue *types.CleanedDialogue) {
	if dialogue == nil || len(dialogue.Utterances) == 0 {
		return
	}

	var sb strings.Builder
	speakers := dialogue.Speakers()
	sb.WriteString(fmt.Sprintf("Utterances: %d   Speakers: %s\n\n",
		len(dialogue.Utterances), strings.Join(speakers, ", ")))

	count := min(len(dialogue.Utterances), maxUtterancesToShow)
	for i := 0; i < count; i++ {
		u := dialogue.Utterances[i]
		line := u.Line
		if len(line) > 40 {
			line = line[:37] + "..."
		}
		sb.WriteString(fmt.Sprintf("%s: %s", u.Speaker, line))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(dialogue.Utterances) > maxUtterancesToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more lines", len(dialogue.Utterances)-maxUtterancesToShow))
	}

	p.printBox("CLEANED DIALOGUE", sb.String())
}

// PrintScore outputs the quality assessment.
func (p *Printer) PrintScore(score *types.ScoreResult) {
	if score == nil {
		return
	}

	var sb strings.Builder
	if score.Unparsed {
		sb.WriteString("Score:      unparsed\n")
	} else {
		sb.WriteString(fmt.Sprintf("Score:      %d/10\n", score.Score))
	}
	rationale := strings.TrimSpace(score.Rationale)
	if rationale == "" {
		rationale = strings.TrimSpace(score.RawText)
	}
	if len(rationale) > 50 {
		rationale = rationale[:47] + "..."
	}
	sb.WriteString(fmt.Sprintf("Rationale:  %s", rationale))

	p.printBox("QUALITY SCORE", sb.String())
}

// PrintRunSummary outputs the final status and the stage event trail.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintRunSummary(run *types.PipelineRun) {
	if run == nil {
		return
	}

	if run.Status == types.StatusSuccess {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ RUN COMPLETED: "+string(run.Status))
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Status:  %s\n", run.Status))
	if run.Reason != "" {
		reason := run.Reason
		if len(reason) > 45 {
			reason = reason[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("Reason:  %s\n", reason))
	}
	sb.WriteString("\nStages:\n")
	for _, e := range run.Events {
		sb.WriteString(fmt.Sprintf("  %s → %s\n", e.Stage, e.Outcome))
	}

	p.printBox("RUN SUMMARY", strings.TrimSuffix(sb.String(), "\n"))
}

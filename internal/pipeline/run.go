// Package pipeline provides the high-level orchestration for discussion
// processing: a sequential, gated state machine running validation, spam
// filtering, transformation, cleaning and scoring, collecting one
// PipelineRun per invocation.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/newsgroup-processor/internal/cleaning"
	"github.com/jonathan/newsgroup-processor/internal/filter"
	"github.com/jonathan/newsgroup-processor/internal/llm"
	"github.com/jonathan/newsgroup-processor/internal/scoring"
	"github.com/jonathan/newsgroup-processor/internal/transform"
	"github.com/jonathan/newsgroup-processor/internal/types"
	"github.com/jonathan/newsgroup-processor/internal/validation"
)

// Stage names used in the per-run event log
const (
	StageValidate  = "validate"
	StageFilter    = "filter"
	StageTransform = "transform"
	StageClean     = "clean"
	StageScore     = "score"
	StageFinalize  = "finalize"
)

// Event outcomes used in the per-run event log
const (
	OutcomeOK       = "ok"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
	OutcomeUnparsed = "unparsed"
)

// ProgressEvent represents a progress update during pipeline execution
type ProgressEvent struct {
	Stage   string `json:"stage"`
	Outcome string `json:"outcome"`
	Detail  string `json:"detail,omitempty"`
	RunID   string `json:"run_id,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs
type ProgressCallback func(event ProgressEvent)

// Options holds per-controller configuration.
type Options struct {
	OnProgress ProgressCallback
	Clock      func() time.Time // overridable for deterministic tests
}

// Controller drives one discussion through the pipeline. It holds no
// per-run state, so a single controller may serve concurrent runs; the
// model client is the only shared resource and is treated as stateless.
type Controller struct {
	client llm.Client
	opts   Options
}

// NewController creates a pipeline controller around a model client.
func NewController(client llm.Client, opts Options) *Controller {
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	return &Controller{client: client, opts: opts}
}

// Run processes one discussion end to end and always returns a finalized
// PipelineRun. No error escapes: every failure is converted to a terminal
// status plus a human-readable reason.
func (c *Controller) Run(ctx context.Context, input *types.DiscussionInput) *types.PipelineRun {
	run := &types.PipelineRun{
		ID:        uuid.NewString(),
		Input:     input,
		StartedAt: c.opts.Clock(),
	}
	state := StateInit

	// Stage 1: structural validation. Failure here is the only path that
	// avoids model calls entirely.
	outcome := validation.ValidateContent(input.Text)
	if !outcome.OK {
		state = c.advance(run, state, StateRejectedInvalid, StageValidate, OutcomeRejected, outcome.Reason)
		return c.finalize(run, state, types.StatusRejectedInvalid, outcome.Reason)
	}
	state = c.advance(run, state, StateValidated, StageValidate, OutcomeOK,
		fmt.Sprintf("%d chars, %d lines", input.Length, input.LineCount))

	// Stage 2: spam gate. An invocation failure is treated identically to
	// an empty response: an indeterminate verdict, which rejects.
	verdict, err := filter.Check(ctx, c.client, input.Text)
	if err != nil {
		verdict = filter.ParseVerdict("")
	}
	run.Verdict = verdict
	if !verdict.Passed() {
		detail := verdict.Reason
		if err != nil {
			detail = fmt.Sprintf("%s (filter invocation failed: %v)", verdict.Reason, err)
		}
		state = c.advance(run, state, StateRejectedSpam, StageFilter, OutcomeRejected, detail)
		return c.finalize(run, state, types.StatusRejectedSpam, verdict.Reason)
	}
	state = c.advance(run, state, StateFiltered, StageFilter, OutcomeOK, verdict.Reason)

	// Stage 3: transformation chain.
	transformation, err := transform.Transform(ctx, c.client, input.Text)
	run.Transformation = transformation
	if err != nil {
		detail := err.Error()
		state = c.advance(run, state, StateTransformFailed, StageTransform, OutcomeFailed, detail)
		return c.finalize(run, state, types.StatusTransformFailed, detail)
	}
	state = c.advance(run, state, StateTransformed, StageTransform, OutcomeOK,
		fmt.Sprintf("%d sub-steps completed", len(transformation.Steps)))

	// Stage 4: deterministic cleaning. An empty cleaned result is a hard
	// transform failure; dropped individual lines are not.
	dialogue, err := cleaning.Clean(transformation.Output())
	if err != nil {
		detail := err.Error()
		state = c.advance(run, state, StateTransformFailed, StageClean, OutcomeFailed, detail)
		return c.finalize(run, state, types.StatusTransformFailed, detail)
	}
	run.Dialogue = dialogue
	state = c.advance(run, state, StateCleaned, StageClean, OutcomeOK,
		fmt.Sprintf("%d utterances, %d speakers", len(dialogue.Utterances), len(dialogue.Speakers())))

	// Stage 5: advisory scoring. Only an invocation failure earns the
	// distinct SCORE_FAILED status; an unparsed response still succeeds.
	score, err := scoring.Score(ctx, c.client, dialogue)
	if err != nil {
		state = c.advance(run, state, StateScoreFailed, StageScore, OutcomeFailed, err.Error())
		return c.finalize(run, state, types.StatusScoreFailed, "quality scoring unavailable")
	}
	run.Score = score
	if score.Unparsed {
		state = c.advance(run, state, StateScored, StageScore, OutcomeUnparsed, "no score found in response")
	} else {
		state = c.advance(run, state, StateScored, StageScore, OutcomeOK, score.String())
	}

	return c.finalize(run, state, types.StatusSuccess, "")
}

// advance performs one checked state transition, appending the stage event
// before control moves on.
func (c *Controller) advance(run *types.PipelineRun, from, to State, stage, outcome, detail string) State {
	mustTransition(from, to)

	run.Events = append(run.Events, types.StageEvent{
		Stage:     stage,
		Outcome:   outcome,
		Detail:    detail,
		Timestamp: c.opts.Clock(),
	})
	c.emit(run, stage, outcome, detail)
	return to
}

// finalize stamps the terminal status exactly once and appends the closing
// event. SCORED and SCORE_FAILED first take their table transition to DONE;
// every other terminal state must already be absorbing.
func (c *Controller) finalize(run *types.PipelineRun, terminal State, status types.Status, reason string) *types.PipelineRun {
	if terminal == StateScored || terminal == StateScoreFailed {
		mustTransition(terminal, StateDone)
		terminal = StateDone
	}
	if !terminal.Absorbing() {
		panic(fmt.Sprintf("pipeline: finalizing from non-terminal state %s", terminal))
	}

	run.Status = status
	run.Reason = reason
	run.CompletedAt = c.opts.Clock()

	run.Events = append(run.Events, types.StageEvent{
		Stage:     StageFinalize,
		Outcome:   string(run.Status),
		Detail:    reason,
		Timestamp: run.CompletedAt,
	})
	c.emit(run, StageFinalize, string(run.Status), reason)
	return run
}

// emit calls the progress callback if configured.
func (c *Controller) emit(run *types.PipelineRun, stage, outcome, detail string) {
	if c.opts.OnProgress != nil {
		c.opts.OnProgress(ProgressEvent{
			Stage:   stage,
			Outcome: outcome,
			Detail:  detail,
			RunID:   run.ID,
		})
	}
}

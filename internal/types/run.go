// Package types provides type definitions for structured data used throughout the newsgroup-processor system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "time"

// Status is the terminal status of a pipeline run
type Status string

// Terminal statuses a pipeline run can finalize with
const (
	StatusSuccess         Status = "SUCCESS"
	StatusRejectedInvalid Status = "REJECTED_INVALID_INPUT"
	StatusRejectedSpam    Status = "REJECTED_SPAM"
	StatusTransformFailed Status = "TRANSFORM_FAILED"
	StatusScoreFailed     Status = "SCORE_FAILED"
)

// StageEvent is one entry in the ordered per-run log. The controller appends
// one event per state transition before control moves on.
type StageEvent struct {
	Stage     string    `json:"stage"`
	Outcome   string    `json:"outcome"`
	Detail    string    `json:"detail,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// PipelineRun aggregates everything produced by one run of the pipeline.
// It is created at run start, appended to as stages complete, and finalized
// exactly once with a terminal status. Fields for stages that never ran
// (because an earlier gate rejected the input) stay nil.
type PipelineRun struct {
	ID             string                `json:"id"`
	Input          *DiscussionInput      `json:"input"`
	Verdict        *FilterVerdict        `json:"verdict,omitempty"`
	Transformation *TransformationResult `json:"transformation,omitempty"`
	Dialogue       *CleanedDialogue      `json:"dialogue,omitempty"`
	Score          *ScoreResult          `json:"score,omitempty"`
	Status         Status                `json:"status"`
	Reason         string                `json:"reason,omitempty"`
	Events         []StageEvent          `json:"events"`
	StartedAt      time.Time             `json:"started_at"`
	CompletedAt    time.Time             `json:"completed_at"`
}

// Succeeded reports whether the run reached a usable dialogue. SCORE_FAILED
// runs still carry a dialogue; only the advisory score is missing.
func (r *PipelineRun) Succeeded() bool {
	return r.Status == StatusSuccess || r.Status == StatusScoreFailed
}

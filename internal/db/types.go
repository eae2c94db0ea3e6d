package db

import (
	"time"

	"github.com/google/uuid"
)

// Run represents a pipeline run record
type Run struct {
	ID          uuid.UUID  `json:"id"`
	Source      string     `json:"source"`
	SourcePath  string     `json:"source_path,omitempty"`
	Status      string     `json:"status"`
	Reason      string     `json:"reason,omitempty"`
	Score       *int       `json:"score,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// ArtifactStep constants for known artifact types
const (
	StepInput          = "input"
	StepVerdict        = "verdict"
	StepTransformation = "transformation"
	StepDialogue       = "dialogue"
	StepScore          = "score"
	StepRunLog         = "run_log"
)

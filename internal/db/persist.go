package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jonathan/newsgroup-processor/internal/artifacts"
	"github.com/jonathan/newsgroup-processor/internal/types"
)

// PersistRun stores a finalized pipeline run with its artifacts and stage
// events. The row is keyed on the run's own ID so that the ID a caller
// already holds (from the controller or an API response) resolves through
// the run-history queries.
func (db *DB) PersistRun(ctx context.Context, run *types.PipelineRun) (uuid.UUID, error) {
	runID, err := uuid.Parse(run.ID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("run has malformed id %q: %w", run.ID, err)
	}

	source := ""
	sourcePath := ""
	if run.Input != nil {
		source = string(run.Input.Source)
		sourcePath = run.Input.SourcePath
	}

	if err := db.CreateRun(ctx, runID, source, sourcePath); err != nil {
		return uuid.Nil, err
	}

	if run.Input != nil {
		if err := db.SaveTextArtifact(ctx, runID, StepInput, run.Input.Text); err != nil {
			return runID, err
		}
	}
	if run.Verdict != nil {
		if err := db.SaveArtifact(ctx, runID, StepVerdict, run.Verdict); err != nil {
			return runID, err
		}
	}
	if run.Transformation != nil {
		if err := db.SaveArtifact(ctx, runID, StepTransformation, run.Transformation); err != nil {
			return runID, err
		}
	}
	if run.Dialogue != nil {
		if err := db.SaveTextArtifact(ctx, runID, StepDialogue, types.Render(run.Dialogue.Utterances)); err != nil {
			return runID, err
		}
	}
	if run.Score != nil {
		if err := db.SaveArtifact(ctx, runID, StepScore, run.Score); err != nil {
			return runID, err
		}
	}
	if err := db.SaveTextArtifact(ctx, runID, StepRunLog, artifacts.RenderRunLog(run)); err != nil {
		return runID, err
	}

	if err := db.SaveStageEvents(ctx, runID, run.Events); err != nil {
		return runID, err
	}

	var score *int
	if run.Score != nil && !run.Score.Unparsed {
		score = &run.Score.Score
	}
	if err := db.CompleteRun(ctx, runID, string(run.Status), run.Reason, score); err != nil {
		return runID, fmt.Errorf("failed to finalize run record: %w", err)
	}

	return runID, nil
}

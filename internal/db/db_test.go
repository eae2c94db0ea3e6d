package db

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/newsgroup-processor/internal/types"
)

// PersistRun keys the database row on the run's own ID, so an ID that is
// not a UUID must be rejected before anything is written.
func TestPersistRun_RejectsMalformedRunID(t *testing.T) {
	database := &DB{}
	run := &types.PipelineRun{ID: "not-a-uuid", Status: types.StatusSuccess}

	id, err := database.PersistRun(context.Background(), run)
	require.Error(t, err)
	assert.Equal(t, uuid.Nil, id)
	assert.Contains(t, err.Error(), "malformed id")
	assert.Contains(t, err.Error(), "not-a-uuid")
}

func TestSaveStageEvents_EmptyTrail(t *testing.T) {
	database := &DB{}

	err := database.SaveStageEvents(context.Background(), uuid.New(), nil)
	assert.NoError(t, err)
}

package schemas

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/newsgroup-processor/internal/types"
)

const minimalRunSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["id", "status"],
	"properties": {
		"id": {"type": "string"},
		"status": {
			"type": "string",
			"enum": ["SUCCESS", "REJECTED_INVALID_INPUT", "REJECTED_SPAM", "TRANSFORM_FAILED", "SCORE_FAILED"]
		}
	}
}`

func TestValidateJSONString_Valid(t *testing.T) {
	doc := `{"id": "abc-123", "status": "SUCCESS"}`
	err := ValidateJSONString(minimalRunSchema, doc)
	assert.NoError(t, err)
}

func TestValidateJSONString_MissingRequired(t *testing.T) {
	doc := `{"id": "abc-123"}`
	err := ValidateJSONString(minimalRunSchema, doc)
	require.Error(t, err)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.NotEmpty(t, ve.Errors)
	assert.Contains(t, ve.Error(), "status")
}

func TestValidateJSONString_BadEnum(t *testing.T) {
	doc := `{"id": "abc-123", "status": "EXPLODED"}`
	err := ValidateJSONString(minimalRunSchema, doc)
	require.Error(t, err)

	var ve *ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestValidateJSONString_BrokenSchema(t *testing.T) {
	err := ValidateJSONString(`{"type": 42}`, `{}`)
	require.Error(t, err)

	var se *SchemaLoadError
	assert.ErrorAs(t, err, &se)
}

func TestGenerateRunSchema(t *testing.T) {
	out, err := GenerateRunSchema()
	require.NoError(t, err)

	var schema map[string]any
	require.NoError(t, json.Unmarshal(out, &schema))
	assert.Contains(t, schema, "properties")
}

func TestGenerateRunSchema_AcceptsRealRun(t *testing.T) {
	out, err := GenerateRunSchema()
	require.NoError(t, err)

	run := &types.PipelineRun{
		ID:     "run-1",
		Input:  types.NewDiscussionInput("line one\nline two\nline three", types.SourceInline, ""),
		Status: types.StatusSuccess,
		Events: []types.StageEvent{
			{Stage: "validate", Outcome: "ok", Timestamp: time.Now()},
		},
		StartedAt:   time.Now(),
		CompletedAt: time.Now(),
	}
	doc, err := json.Marshal(run)
	require.NoError(t, err)

	assert.NoError(t, ValidateJSONString(string(out), string(doc)))
}

func TestResolveSchemaPath_NotFound(t *testing.T) {
	assert.Empty(t, ResolveSchemaPath("does/not/exist.schema.json"))
}

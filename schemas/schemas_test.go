package schemas

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/newsgroup-processor/internal/schemas"
)

func readSchema(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile("pipeline_run.schema.json")
	require.NoError(t, err, "should be able to read schema file")
	return string(data)
}

func TestRunSchema_ValidJSON(t *testing.T) {
	data := readSchema(t)

	var v map[string]any
	require.NoError(t, json.Unmarshal([]byte(data), &v))

	// Check for required JSON Schema fields
	assert.Contains(t, v, "$schema")
	assert.Contains(t, v, "type")
	assert.Contains(t, v, "properties")
}

func TestRunSchema_AcceptsSuccessfulRun(t *testing.T) {
	schema := readSchema(t)

	doc := `{
		"id": "run-1",
		"input": {"text": "hello\nthere\nworld", "source": "inline", "length": 17, "line_count": 3},
		"verdict": {"verdict": "PASS", "reason": "on-topic"},
		"dialogue": {"utterances": [{"speaker": "JOHN", "line": "Hello."}]},
		"score": {"score": 7, "rationale": "Good flow.", "unparsed": false},
		"status": "SUCCESS",
		"events": [{"stage": "validate", "outcome": "ok", "timestamp": "2025-06-01T12:00:00Z"}],
		"started_at": "2025-06-01T12:00:00Z",
		"completed_at": "2025-06-01T12:00:05Z"
	}`

	assert.NoError(t, schemas.ValidateJSONString(schema, doc))
}

func TestRunSchema_RejectsUnknownStatus(t *testing.T) {
	schema := readSchema(t)

	doc := `{
		"id": "run-1",
		"status": "EXPLODED",
		"events": [],
		"started_at": "2025-06-01T12:00:00Z",
		"completed_at": "2025-06-01T12:00:05Z"
	}`

	err := schemas.ValidateJSONString(schema, doc)
	require.Error(t, err)

	var ve *schemas.ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestRunSchema_RejectsBadVerdict(t *testing.T) {
	schema := readSchema(t)

	doc := `{
		"id": "run-1",
		"verdict": {"verdict": "MAYBE"},
		"status": "SUCCESS",
		"events": [],
		"started_at": "2025-06-01T12:00:00Z",
		"completed_at": "2025-06-01T12:00:05Z"
	}`

	assert.Error(t, schemas.ValidateJSONString(schema, doc))
}

package schemas

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"

	"github.com/jonathan/newsgroup-processor/internal/types"
)

// GenerateRunSchema reflects the pipeline run record into a JSON Schema
// document, indented for writing to disk.
func GenerateRunSchema() ([]byte, error) {
	reflector := &jsonschema.Reflector{
		// Inline every definition so the schema reads as one document.
		ExpandedStruct: true,
		DoNotReference: true,
	}

	schema := reflector.Reflect(&types.PipelineRun{})
	schema.Title = "PipelineRun"
	schema.Description = "A finalized newsgroup discussion processing run."

	out, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return out, nil
}

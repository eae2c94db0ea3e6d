// Package transform orchestrates the discussion-to-dialogue transformation:
// three ordered sub-steps (analysis, scripting, formatting), each delegated
// to the model, each feeding its output to the next.
package transform

import (
	"context"
	"strings"

	"github.com/jonathan/newsgroup-processor/internal/llm"
	"github.com/jonathan/newsgroup-processor/internal/prompts"
	"github.com/jonathan/newsgroup-processor/internal/types"
)

// subStep pairs a sub-step name with its prompt key and model tier.
type subStep struct {
	name string
	key  string
	tier llm.ModelTier
}

// subSteps is the fixed execution order. Analysis feeds scripting; scripting
// output feeds formatting.
var subSteps = []subStep{
	{name: types.SubStepAnalysis, key: "analysis", tier: llm.TierStandard},
	{name: types.SubStepScript, key: "script", tier: llm.TierAdvanced},
	{name: types.SubStepFormat, key: "format", tier: llm.TierStandard},
}

// Transform runs the full sub-step chain over validated discussion text.
// If any sub-step returns empty or whitespace-only output, or the model call
// fails, the transformer halts immediately: the returned result records the
// failing sub-step and a SubStepError is returned. No partial dialogue is
// ever surfaced as success.
func Transform(ctx context.Context, client llm.Client, text string) (*types.TransformationResult, error) {
	result := &types.TransformationResult{}
	input := text

	for _, step := range subSteps {
		template, err := prompts.Get("transform.json", step.key)
		if err != nil {
			return nil, err
		}
		prompt := prompts.Format(template, map[string]string{"Content": input})

		output, err := client.GenerateContent(ctx, prompt, step.tier)
		// An invocation failure is treated identically to an empty response.
		if err != nil || strings.TrimSpace(output) == "" {
			result.Steps = append(result.Steps, types.SubStepResult{Name: step.name, Output: output})
			result.FailedStep = step.name
			return result, &SubStepError{Step: step.name, Cause: err}
		}

		result.Steps = append(result.Steps, types.SubStepResult{
			Name:    step.name,
			Output:  output,
			Success: true,
		})
		input = output
	}

	return result, nil
}

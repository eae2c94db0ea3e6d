// Package scoring evaluates cleaned dialogue quality via the model and
// defensively extracts a 1-10 score from its free-form answer.
package scoring

import (
	"context"

	"github.com/jonathan/newsgroup-processor/internal/llm"
	"github.com/jonathan/newsgroup-processor/internal/prompts"
	"github.com/jonathan/newsgroup-processor/internal/types"
)

// Score asks the model to rate a cleaned dialogue across the ten fixed
// criteria and parses the response. A response that yields no integer in
// [1,10] produces an Unparsed result, not an error: scoring is advisory and
// never aborts a run on its own.
func Score(ctx context.Context, client llm.Client, dialogue *types.CleanedDialogue) (*types.ScoreResult, error) {
	template, err := prompts.Get("scoring.json", "score")
	if err != nil {
		return nil, err
	}
	prompt := prompts.Format(template, map[string]string{"Dialogue": dialogue.Text})

	response, err := client.GenerateContent(ctx, prompt, llm.TierAdvanced)
	if err != nil {
		return nil, err
	}

	return ExtractScore(response), nil
}

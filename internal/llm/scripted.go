package llm

import (
	"context"
	"strings"
)

// ScriptRule maps a prompt substring to a canned response.
type ScriptRule struct {
	Contains string
	Response string
}

// ScriptedClient is a deterministic Client backed by canned responses. It
// powers offline mode and the stage tests: the first rule whose Contains
// substring appears in the prompt wins.
type ScriptedClient struct {
	rules []ScriptRule
}

// NewScriptedClient creates a scripted client from an ordered rule list.
func NewScriptedClient(rules []ScriptRule) *ScriptedClient {
	return &ScriptedClient{rules: rules}
}

// GenerateContent returns the canned response for the first matching rule.
func (c *ScriptedClient) GenerateContent(_ context.Context, prompt string, _ ModelTier) (string, error) {
	for _, rule := range c.rules {
		if strings.Contains(prompt, rule.Contains) {
			return rule.Response, nil
		}
	}
	return "", &InvocationError{Provider: ProviderScripted, Message: "no scripted response matches prompt"}
}

// GetModel returns a placeholder model name.
func (c *ScriptedClient) GetModel(_ ModelTier) string {
	return "scripted"
}

// Close is a no-op.
func (c *ScriptedClient) Close() error {
	return nil
}

// DemoResponses returns the canned responses used by offline mode. The match
// keys are distinctive phrases from the stage prompt templates.
func DemoResponses() []ScriptRule {
	return []ScriptRule{
		{
			Contains: "TEXT TO ANALYZE",
			Response: "PASS - on-topic discussion with no promotional or inappropriate content.",
		},
		{
			Contains: "DISCUSSION CONTENT",
			Response: "Participants: John, Sarah, Mike.\n" +
				"John: proposes gradual implementation as a middle ground.\n" +
				"Sarah: argues current proposals do not go far enough and urges bold action.\n" +
				"Mike: raises economic impact concerns for small businesses.",
		},
		{
			Contains: "movie script dialogue",
			Response: "JOHN: The new climate proposals look comprehensive to me.\n" +
				"SARAH: They don't go far enough. The carbon tax is too low.\n" +
				"MIKE: Raise it too fast and small businesses get hurt.\n" +
				"JOHN: What if we phased the tax in over five years?\n" +
				"MIKE: That I could support.\n" +
				"SARAH: Better than nothing, but the climate won't wait for us.",
		},
		{
			Contains: "FORMATTING REQUIREMENTS",
			Response: "JOHN: The new climate proposals look comprehensive to me.\n" +
				"SARAH: They don't go far enough. The carbon tax is too low.\n" +
				"MIKE: Raise it too fast and small businesses get hurt.\n" +
				"JOHN: What if we phased the tax in over five years?\n" +
				"MIKE: That I could support.\n" +
				"SARAH: Better than nothing, but the climate won't wait for us.",
		},
		{
			Contains: "DIALOGUE TO SCORE",
			Response: "Score: 7/10\nGood engagement and natural flow; conciseness could improve.",
		},
	}
}

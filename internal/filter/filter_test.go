package filter

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/newsgroup-processor/internal/llm"
	"github.com/jonathan/newsgroup-processor/internal/types"
)

func TestParseVerdict_Pass(t *testing.T) {
	v := ParseVerdict("PASS - on-topic policy discussion")
	assert.Equal(t, types.VerdictPass, v.Verdict)
	assert.Equal(t, "on-topic policy discussion", v.Reason)
	assert.True(t, v.Passed())
}

func TestParseVerdict_Stop(t *testing.T) {
	v := ParseVerdict("STOP: repetitive promotional messaging")
	assert.Equal(t, types.VerdictStop, v.Verdict)
	assert.Equal(t, "repetitive promotional messaging", v.Reason)
	assert.False(t, v.Passed())
}

func TestParseVerdict_CaseInsensitive(t *testing.T) {
	v := ParseVerdict("pass — looks like a genuine discussion")
	assert.Equal(t, types.VerdictPass, v.Verdict)
}

func TestParseVerdict_MarkdownWrappedKeyword(t *testing.T) {
	v := ParseVerdict("**STOP** advertisement for a product")
	assert.Equal(t, types.VerdictStop, v.Verdict)
	assert.Equal(t, "advertisement for a product", v.Reason)
}

func TestParseVerdict_FirstKeywordOnFirstLineWins(t *testing.T) {
	// Later mention of the other keyword must not change the verdict.
	v := ParseVerdict("PASS because there is no reason to STOP here")
	assert.Equal(t, types.VerdictPass, v.Verdict)
}

func TestParseVerdict_KeywordOnLaterLineIgnored(t *testing.T) {
	// Only the first line determines the verdict.
	v := ParseVerdict("The content seems fine overall.\nPASS")
	assert.Equal(t, types.VerdictStop, v.Verdict)
	assert.Equal(t, "indeterminate verdict", v.Reason)
}

func TestParseVerdict_Indeterminate(t *testing.T) {
	v := ParseVerdict("I cannot decide whether this is acceptable.")
	assert.Equal(t, types.VerdictStop, v.Verdict)
	assert.Equal(t, "indeterminate verdict", v.Reason)
}

func TestParseVerdict_Empty(t *testing.T) {
	v := ParseVerdict("   ")
	assert.Equal(t, types.VerdictStop, v.Verdict)
	assert.Equal(t, "indeterminate verdict", v.Reason)
}

func TestParseVerdict_MultilineReason(t *testing.T) {
	v := ParseVerdict("STOP\nThe text is a newsletter.\nIt also contains sales pitches.")
	assert.Equal(t, types.VerdictStop, v.Verdict)
	assert.Contains(t, v.Reason, "newsletter")
	assert.Contains(t, v.Reason, "sales pitches")
}

func TestParseVerdict_RetainsRawText(t *testing.T) {
	raw := "PASS - fine"
	v := ParseVerdict(raw)
	assert.Equal(t, raw, v.RawText)
}

func TestCheck_UsesFilterPrompt(t *testing.T) {
	client := llm.NewScriptedClient([]llm.ScriptRule{
		{Contains: "TEXT TO ANALYZE", Response: "PASS - acceptable"},
	})

	v, err := Check(context.Background(), client, "some discussion text")
	require.NoError(t, err)
	assert.Equal(t, types.VerdictPass, v.Verdict)
	assert.Equal(t, "acceptable", v.Reason)
}

func TestCheck_PropagatesInvocationError(t *testing.T) {
	client := llm.NewScriptedClient(nil) // no rules: every call fails

	_, err := Check(context.Background(), client, "some discussion text")
	require.Error(t, err)
	var invErr *llm.InvocationError
	assert.ErrorAs(t, err, &invErr)
}

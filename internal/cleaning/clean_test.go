package cleaning

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/newsgroup-processor/internal/types"
)

func TestClean_CanonicalShape(t *testing.T) {
	raw := "John: I think we should act now.\nSarah: I agree with you."

	dialogue, err := Clean(raw)
	require.NoError(t, err)

	require.Len(t, dialogue.Utterances, 2)
	assert.Equal(t, types.Utterance{Speaker: "JOHN", Line: "I think we should act now."}, dialogue.Utterances[0])
	assert.Equal(t, types.Utterance{Speaker: "SARAH", Line: "I agree with you."}, dialogue.Utterances[1])
	assert.Equal(t, "JOHN: I think we should act now.\nSARAH: I agree with you.", dialogue.Text)
}

func TestClean_StripsStageDirections(t *testing.T) {
	raw := "JOHN: (smiling) That sounds good [nods] to me.\n" +
		"(The room falls silent)\n" +
		"SARAH: {gesturing} Let's do it."

	dialogue, err := Clean(raw)
	require.NoError(t, err)

	require.Len(t, dialogue.Utterances, 2)
	assert.Equal(t, "That sounds good to me.", dialogue.Utterances[0].Line)
	assert.Equal(t, "Let's do it.", dialogue.Utterances[1].Line)
}

func TestClean_DropsMarkdownArtifacts(t *testing.T) {
	raw := "```\nJOHN: First point.\n```\n## Dialogue\n- SARAH: Second point.\n**MIKE:** Third point."

	dialogue, err := Clean(raw)
	require.NoError(t, err)

	require.Len(t, dialogue.Utterances, 3)
	assert.Equal(t, "JOHN", dialogue.Utterances[0].Speaker)
	assert.Equal(t, "SARAH", dialogue.Utterances[1].Speaker)
	assert.Equal(t, "MIKE", dialogue.Utterances[2].Speaker)
}

func TestClean_DropsNonDialogueLines(t *testing.T) {
	raw := "Here is the cleaned dialogue you asked for\n\nJOHN: The only real line."

	dialogue, err := Clean(raw)
	require.NoError(t, err)

	require.Len(t, dialogue.Utterances, 1)
	assert.Equal(t, "JOHN", dialogue.Utterances[0].Speaker)
}

func TestClean_FirstColonSplits(t *testing.T) {
	dialogue, err := Clean("JOHN: The ratio is 3:1 in our favor.")
	require.NoError(t, err)
	assert.Equal(t, "The ratio is 3:1 in our favor.", dialogue.Utterances[0].Line)
}

func TestClean_EmptyResultIsError(t *testing.T) {
	_, err := Clean("(everyone nods)\n```\nno speaker markers here\n```")
	require.Error(t, err)
	var emptyErr *EmptyDialogueError
	assert.ErrorAs(t, err, &emptyErr)
}

func TestClean_SpeakersDeduplicatedStableOrder(t *testing.T) {
	raw := "JOHN: one\nSARAH: two\nJOHN: three\nMIKE: four\nSARAH: five"

	dialogue, err := Clean(raw)
	require.NoError(t, err)
	assert.Equal(t, []string{"JOHN", "SARAH", "MIKE"}, dialogue.Speakers())
}

func TestClean_Deterministic(t *testing.T) {
	raw := "John: (laughing) well then.\n- Sarah: so be it.\n\n[beat]\nMIKE: agreed."

	first, err := Clean(raw)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		again, err := Clean(raw)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestClean_CollapsesInternalWhitespace(t *testing.T) {
	dialogue, err := Clean("JOHN:   too    many \t spaces here")
	require.NoError(t, err)
	assert.Equal(t, "too many spaces here", dialogue.Utterances[0].Line)
}

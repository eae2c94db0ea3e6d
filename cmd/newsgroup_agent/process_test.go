package main

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/newsgroup-processor/internal/artifacts"
	"github.com/jonathan/newsgroup-processor/internal/config"
	"github.com/jonathan/newsgroup-processor/internal/llm"
	"github.com/jonathan/newsgroup-processor/internal/pipeline"
	"github.com/jonathan/newsgroup-processor/internal/types"
	"github.com/jonathan/newsgroup-processor/internal/validation"
)

func TestSampleDiscussion_PassesValidation(t *testing.T) {
	outcome := validation.ValidateContent(SampleDiscussion)
	assert.True(t, outcome.OK, "sample discussion must clear the structural gate: %s", outcome.Reason)
}

func TestProcessOne_OfflineEndToEnd(t *testing.T) {
	ctx := context.Background()

	client := llm.NewScriptedClient(llm.DemoResponses())
	controller := pipeline.NewController(client, pipeline.Options{})

	outputDir := t.TempDir()
	logsDir := t.TempDir()
	store := artifacts.NewStore(outputDir, logsDir)
	cfg := &config.Config{OutputDir: outputDir, LogsDir: logsDir}

	input := types.NewDiscussionInput(SampleDiscussion, types.SourceInline, "")
	run, err := processOne(ctx, controller, store, nil, cfg, input)
	require.NoError(t, err)
	require.NotNil(t, run)

	assert.Equal(t, types.StatusSuccess, run.Status)
	assert.True(t, run.Succeeded())

	dialogue, err := os.ReadFile(filepath.Join(outputDir, "dialogue_output.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(dialogue), "JOHN:")

	logs, err := os.ReadDir(logsDir)
	require.NoError(t, err)
	assert.Len(t, logs, 1)
}

func TestProcessOne_NoSaveSkipsArtifacts(t *testing.T) {
	ctx := context.Background()

	client := llm.NewScriptedClient(llm.DemoResponses())
	controller := pipeline.NewController(client, pipeline.Options{})

	outputDir := t.TempDir()
	logsDir := t.TempDir()
	store := artifacts.NewStore(outputDir, logsDir)
	cfg := &config.Config{OutputDir: outputDir, LogsDir: logsDir, NoSave: true, NoLogs: true}

	input := types.NewDiscussionInput(SampleDiscussion, types.SourceInline, "")
	run, err := processOne(ctx, controller, store, nil, cfg, input)
	require.NoError(t, err)
	assert.Equal(t, types.StatusSuccess, run.Status)

	output, err := os.ReadDir(outputDir)
	require.NoError(t, err)
	assert.Empty(t, output)

	logs, err := os.ReadDir(logsDir)
	require.NoError(t, err)
	assert.Empty(t, logs)
}

func TestProcessCommand_FlagsValidation(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		errorString string
	}{
		{
			name:        "Demo combined with file",
			args:        []string{"process", "--offline", "--demo", "--file", "some.txt", "--no-save", "--no-logs"},
			errorString: "--demo cannot be combined",
		},
		{
			name:        "File combined with dir",
			args:        []string{"process", "--offline", "--file", "some.txt", "--dir", ".", "--no-save", "--no-logs"},
			errorString: "mutually exclusive",
		},
	}

	binaryPath := getBinaryPath(t)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := exec.Command(binaryPath, tt.args...)
			output, err := cmd.CombinedOutput()

			assert.Error(t, err)
			assert.Contains(t, string(output), tt.errorString)
		})
	}
}

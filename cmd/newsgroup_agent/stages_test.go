package main

import (
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStageCommands_RequireInput(t *testing.T) {
	binaryPath := getBinaryPath(t)

	for _, subcommand := range []string{"filter", "transform", "clean", "score"} {
		t.Run(subcommand, func(t *testing.T) {
			cmd := exec.Command(binaryPath, subcommand)
			output, err := cmd.CombinedOutput()

			assert.Error(t, err)
			assert.Contains(t, string(output), "required")
		})
	}
}

// SPDX-License-Identifier: MIT
package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aslocate/astopo/pkg/config"
)

func TestParseTimeWindow_ValidString(t *testing.T) {
	epoch, err := config.ParseTimeWindow("2024-01-01 00:00:00 +0000")
	require.NoError(t, err)
	assert.Equal(t, int64(1704067200), epoch)
}

func TestParseTimeWindow_RejectsMalformedString(t *testing.T) {
	_, err := config.ParseTimeWindow("not-a-time")
	assert.Error(t, err)
}

func TestNewTopologyCommand_MissingRequiredFlagFails(t *testing.T) {
	cmd := config.NewTopologyCommand(func(config.Config) error { return nil })
	cmd.SetArgs([]string{})
	err := cmd.Execute()
	assert.Error(t, err)
}

func TestNewCongestionCommand_AllFlagsPresentRuns(t *testing.T) {
	var got config.Config
	cmd := config.NewCongestionCommand(func(c config.Config) error {
		got = c
		return nil
	})
	cmd.SetArgs([]string{
		"-g", "graph.json", "-d", "changes", "-s", ".json",
		"-b", "2024-01-01 00:00:00 +0000", "-t", "2024-01-01 01:00:00 +0000",
		"-o", "out.json",
	})
	err := cmd.Execute()
	assert.NoError(t, err)
	assert.Equal(t, "graph.json", got.GraphPath)
	assert.True(t, got.HasBegin)
	assert.True(t, got.HasStop)
}

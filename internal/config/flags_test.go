package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags_Empty(t *testing.T) {
	cfg, err := ParseFlags(nil)
	require.NoError(t, err)

	assert.Empty(t, cfg.Adapter.HTTPAddress)
	assert.Zero(t, cfg.Adapter.RequestTimeout)
	assert.Empty(t, cfg.Storage.DB.DSN)
	assert.Empty(t, cfg.JSONFilePath)
	assert.Empty(t, cfg.Command)
}

func TestParseFlags_AllFlags(t *testing.T) {
	cfg, err := ParseFlags([]string{
		"-a", "http://127.0.0.1:9000",
		"-request-timeout", "7s",
		"-d", "local.db",
		"-config", "cfg.json",
		"-collection", "members",
		"-log-level", "debug",
		"-log-file", "client.log",
		"-otel-endpoint", "http://localhost:4318",
		"list", "posts",
	})
	require.NoError(t, err)

	assert.Equal(t, "http://127.0.0.1:9000", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 7*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "local.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "cfg.json", cfg.JSONFilePath)
	assert.Equal(t, "members", cfg.App.AuthCollection)
	assert.Equal(t, "debug", cfg.App.LogLevel)
	assert.Equal(t, "client.log", cfg.App.LogFile)
	assert.Equal(t, "http://localhost:4318", cfg.App.OtelEndpoint)
	assert.Equal(t, []string{"list", "posts"}, cfg.Command)
}

// TestParseFlags_StopsAtCommand verifies that flags after the sub-command
// are left for the command itself.
func TestParseFlags_StopsAtCommand(t *testing.T) {
	cfg, err := ParseFlags([]string{"list", "posts", "-a", "ignored"})
	require.NoError(t, err)

	assert.Empty(t, cfg.Adapter.HTTPAddress)
	assert.Equal(t, []string{"list", "posts", "-a", "ignored"}, cfg.Command)
}

func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown flag", []string{"-x"}},
		{"bad duration", []string{"-request-timeout", "forever"}},
		{"missing value", []string{"-a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseFlags(tt.args)
			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}

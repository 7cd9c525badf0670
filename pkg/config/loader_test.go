package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "traceline.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_EmptyPathUsesBuiltins(t *testing.T) {
	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, "unknown", cfg.AgentNames.Resolve("unknown"))
	// Builtin masking patterns are present.
	assert.Contains(t, cfg.Masking.Patterns, "api_key")
	assert.Contains(t, cfg.Masking.Patterns, "bearer_token")
	assert.Contains(t, cfg.Masking.Patterns, "password")
}

func TestLoad_MissingFileUsesBuiltins(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))

	require.NoError(t, err)
	assert.NotNil(t, cfg.AgentNames)
}

func TestLoad_AgentNames(t *testing.T) {
	path := writeConfig(t, `
agent_names:
  agent-1: Researcher
  agent-2: Builder
`)

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "Researcher", cfg.AgentNames.Resolve("agent-1"))
	assert.Equal(t, "Builder", cfg.AgentNames.Resolve("agent-2"))
}

func TestLoad_UserMaskingPatternOverridesBuiltin(t *testing.T) {
	path := writeConfig(t, `
masking:
  patterns:
    api_key:
      pattern: 'custom-key-\d+'
      replacement: '[redacted]'
    internal_host:
      pattern: '\w+\.corp\.example\.com'
      replacement: '[host]'
`)

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, `custom-key-\d+`, cfg.Masking.Patterns["api_key"].Pattern)
	assert.Contains(t, cfg.Masking.Patterns, "internal_host")
	// Builtins not overridden survive the merge.
	assert.Contains(t, cfg.Masking.Patterns, "password")
}

func TestLoad_MaskingDisabled(t *testing.T) {
	path := writeConfig(t, `
masking:
  enabled: false
`)

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.False(t, cfg.Masking.IsMaskingEnabled())
}

func TestLoad_EnvExpansion(t *testing.T) {
	t.Setenv("REVIEWER_NAME", "Code Reviewer")
	path := writeConfig(t, `
agent_names:
  agent-1: "{{.REVIEWER_NAME}}"
`)

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "Code Reviewer", cfg.AgentNames.Resolve("agent-1"))
}

func TestLoad_ValidationFailures(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "empty display name",
			content: `
agent_names:
  agent-1: ""
`,
		},
		{
			name: "empty masking pattern",
			content: `
masking:
  patterns:
    broken:
      pattern: ""
      replacement: x
`,
		},
		{
			name:    "not yaml",
			content: `{{{{{`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	c := Load("")
	assert.Equal(t, ":8790", c.Addr())
	assert.Equal(t, "gemini-2.5-flash", c.Gemini.Model)
	assert.Equal(t, "https://generativelanguage.googleapis.com", c.Gemini.BaseURL)
	assert.Equal(t, 30, c.Gemini.TimeoutSeconds)
	assert.Equal(t, "info", c.Log.Level)
	assert.True(t, c.Log.Console)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("server:\n  port: 9000\ngemini:\n  model: gemini-test\nlog:\n  level: debug\n")
	require.NoError(t, os.WriteFile(path, data, 0644))

	c := Load(path)
	assert.Equal(t, ":9000", c.Addr())
	assert.Equal(t, "gemini-test", c.Gemini.Model)
	assert.Equal(t, "debug", c.Log.Level)
	// Untouched sections keep their defaults.
	assert.Equal(t, "https://generativelanguage.googleapis.com", c.Gemini.BaseURL)
}

func TestEnvOverridesWinOverFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: 9000\n"), 0644))

	t.Setenv("PORT", "9100")
	t.Setenv("GEMINI_API_KEY", "env-key")
	t.Setenv("GEMINI_TIMEOUT_SECONDS", "5")

	c := Load(path)
	assert.Equal(t, ":9100", c.Addr())
	assert.Equal(t, "env-key", c.Gemini.APIKey)
	assert.Equal(t, 5, c.Gemini.TimeoutSeconds)
}

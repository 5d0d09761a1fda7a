package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/wordwise/internal/llm"
)

// isolate clears every variable Load reads and points the config dir at an
// empty temp dir.
func isolate(t *testing.T) string {
	t.Helper()
	for _, k := range []string{
		"GEMINI_API_KEY", "API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "OPENROUTER_API_KEY",
		"WORDWISE_GEMINI_API_KEY", "WORDWISE_OPENAI_API_KEY", "WORDWISE_ANTHROPIC_API_KEY",
		"WORDWISE_OPENROUTER_API_KEY", "WORDWISE_LLM_PROVIDER", "WORDWISE_LLM_MODEL",
		"WORDWISE_DB", "WORDWISE_EVENTS", "WORDWISE_NO_EVENTS", "WORDWISE_LOG_LEVEL", "WORDWISE_LOG_FILE",
	} {
		t.Setenv(k, "")
	}
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, llm.ProviderGemini, cfg.LLM.Provider)
	assert.Equal(t, "gemini-flash", cfg.LLM.Gemini.Model)
	assert.Empty(t, cfg.LLM.Gemini.APIKey)
	assert.True(t, cfg.Events)
	assert.Equal(t, "info", cfg.LogLevel)

	assert.ErrorIs(t, cfg.LLM.Validate(), llm.ErrNotConfigured)
}

func TestLoad_LegacyAPIKey(t *testing.T) {
	isolate(t)
	t.Setenv("API_KEY", "legacy-key")

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, llm.ProviderGemini, cfg.LLM.Provider)
	assert.Equal(t, "legacy-key", cfg.LLM.Gemini.APIKey)
}

func TestLoad_DiscoveryOrder(t *testing.T) {
	isolate(t)
	t.Setenv("ANTHROPIC_API_KEY", "sk-ant")
	t.Setenv("OPENROUTER_API_KEY", "sk-or")

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, llm.ProviderAnthropic, cfg.LLM.Provider)

	t.Setenv("OPENAI_API_KEY", "sk-oai")
	cfg, err = Load(nil)
	require.NoError(t, err)
	assert.Equal(t, llm.ProviderOpenAI, cfg.LLM.Provider)
}

func TestLoad_PrefixedEnvWins(t *testing.T) {
	isolate(t)
	t.Setenv("GEMINI_API_KEY", "plain")
	t.Setenv("WORDWISE_GEMINI_API_KEY", "prefixed")
	t.Setenv("WORDWISE_LLM_MODEL", "gemini-pro")

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, "prefixed", cfg.LLM.Gemini.APIKey)
	assert.Equal(t, "gemini-pro", cfg.LLM.Gemini.Model)
}

func TestLoad_Flags(t *testing.T) {
	isolate(t)
	t.Setenv("WORDWISE_LLM_PROVIDER", "gemini")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	BindFlags(fs)
	require.NoError(t, fs.Parse([]string{
		"--provider", "mock",
		"--db", "/tmp/ww.db",
		"--log-level", "debug",
		"--no-events",
	}))

	cfg, err := Load(fs)
	require.NoError(t, err)
	assert.Equal(t, llm.ProviderMock, cfg.LLM.Provider)
	assert.Equal(t, "/tmp/ww.db", cfg.DBPath)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.False(t, cfg.Events)
	assert.NoError(t, cfg.LLM.Validate())
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "wordwise"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "wordwise", "config.yaml"), []byte(`
llm:
  provider: openrouter
  model: google/gemini-2.5-pro
openrouter:
  api_key: sk-or-file
log:
  level: warn
`), 0o644))

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, llm.ProviderOpenRouter, cfg.LLM.Provider)
	assert.Equal(t, "sk-or-file", cfg.LLM.OpenRouter.APIKey)
	assert.Equal(t, "google/gemini-2.5-pro", cfg.LLM.OpenRouter.Model)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoad_BadConfigFile(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "wordwise"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "wordwise", "config.yaml"), []byte("llm: [unclosed"), 0o644))

	_, err := Load(nil)
	assert.Error(t, err)
}

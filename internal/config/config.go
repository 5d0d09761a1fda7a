// Package config resolves wordwise settings from flags, environment,
// an optional config file and .env.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/abhisek/wordwise/internal/llm"
)

// EnvPrefix prefixes every environment variable viper reads.
const EnvPrefix = "WORDWISE"

// Config is the resolved application configuration.
type Config struct {
	LLM llm.Config

	// DBPath is the SQLite event log. Empty means the default location.
	DBPath string

	// Events enables recording provider calls in the event log.
	Events bool

	LogLevel string
	LogFile  string
}

// keyEnv lists the plain environment variables accepted for each API key
// besides the WORDWISE_ prefixed one. API_KEY is the legacy Gemini name.
var keyEnv = map[string][]string{
	"gemini.api_key":     {"GEMINI_API_KEY", "API_KEY"},
	"openai.api_key":     {"OPENAI_API_KEY"},
	"anthropic.api_key":  {"ANTHROPIC_API_KEY"},
	"openrouter.api_key": {"OPENROUTER_API_KEY"},
}

// discoveryOrder is the provider preference when none is set explicitly.
var discoveryOrder = []string{
	llm.ProviderGemini,
	llm.ProviderOpenAI,
	llm.ProviderAnthropic,
	llm.ProviderOpenRouter,
}

// BindFlags registers the persistent flags understood by Load.
func BindFlags(fs *pflag.FlagSet) {
	fs.String("provider", "", "LLM provider: gemini, anthropic, openai, openrouter, mock")
	fs.String("model", "", "Model name or ID for the selected provider")
	fs.String("db", "", "Path to the event log database")
	fs.String("log-level", "", "Log level: trace, debug, info, warn, error")
	fs.String("log-file", "", "Log file path, or - for stderr")
	fs.Bool("no-events", false, "Do not record provider calls in the event log")
}

// Load resolves configuration. Precedence, highest first: flags, WORDWISE_*
// environment, plain provider key variables, config file, defaults. A .env
// file in the working directory is loaded into the environment first.
// flags may be nil.
func Load(flags *pflag.FlagSet) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	for key, names := range keyEnv {
		envNames := append([]string{envName(key)}, names...)
		if err := v.BindEnv(append([]string{key}, envNames...)...); err != nil {
			return nil, fmt.Errorf("bind %s: %w", key, err)
		}
	}

	if err := readConfigFile(v); err != nil {
		return nil, err
	}

	if flags != nil {
		for key, flag := range map[string]string{
			"llm.provider": "provider",
			"llm.model":    "model",
			"db":           "db",
			"log.level":    "log-level",
			"log.file":     "log-file",
			"no_events":    "no-events",
		} {
			if f := flags.Lookup(flag); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag --%s: %w", flag, err)
				}
			}
		}
	}

	cfg := &Config{
		LLM:      llmConfig(v),
		DBPath:   v.GetString("db"),
		Events:   v.GetBool("events") && !v.GetBool("no_events"),
		LogLevel: v.GetString("log.level"),
		LogFile:  v.GetString("log.file"),
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("llm.model", "")
	v.SetDefault("openai.base_url", "")
	v.SetDefault("openrouter.base_url", "")
	v.SetDefault("db", "")
	v.SetDefault("events", true)
	v.SetDefault("no_events", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
}

func llmConfig(v *viper.Viper) llm.Config {
	cfg := llm.DefaultConfig()
	cfg.Gemini.APIKey = v.GetString("gemini.api_key")
	cfg.OpenAI.APIKey = v.GetString("openai.api_key")
	cfg.OpenAI.BaseURL = v.GetString("openai.base_url")
	cfg.Anthropic.APIKey = v.GetString("anthropic.api_key")
	cfg.OpenRouter.APIKey = v.GetString("openrouter.api_key")
	cfg.OpenRouter.BaseURL = v.GetString("openrouter.base_url")

	cfg.Provider = strings.ToLower(strings.TrimSpace(v.GetString("llm.provider")))
	if cfg.Provider == "" {
		cfg.Provider = discoverProvider(v)
	}
	cfg.SetModel(v.GetString("llm.model"))
	return cfg
}

// discoverProvider returns the first provider with a key, or gemini so
// that a missing key is reported against the default provider.
func discoverProvider(v *viper.Viper) string {
	for _, p := range discoveryOrder {
		if v.GetString(p+".api_key") != "" {
			return p
		}
	}
	return llm.ProviderGemini
}

func readConfigFile(v *viper.Viper) error {
	dir, err := os.UserConfigDir()
	if err != nil {
		return nil
	}
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(filepath.Join(dir, "wordwise"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config file: %w", err)
	}
	return nil
}

func envName(key string) string {
	return EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

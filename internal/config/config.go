package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

// Config carries everything the process needs, read once at startup.
// Components receive it (or pieces of it) explicitly and never touch the
// environment themselves.
type Config struct {
	Provider     string
	OpenAIKey    string
	AnthropicKey string
	LogToken     string
	SerperKey    string
	RedisURL     string
	FrontendURL  string

	Settings Settings
}

// Settings are the non-secret tunables, optionally overridden by a YAML
// settings file.
type Settings struct {
	Addr            string   `yaml:"addr"`
	CatalogPath     string   `yaml:"catalog_path"`
	RetailersPath   string   `yaml:"retailers_path"`
	QueryLogPath    string   `yaml:"query_log_path"`
	CacheTTLMinutes int      `yaml:"cache_ttl_minutes"`
	CacheMaxEntries int      `yaml:"cache_max_entries"`
	ExtraOrigins    []string `yaml:"extra_origins"`
}

func (s Settings) CacheTTL() time.Duration {
	return time.Duration(s.CacheTTLMinutes) * time.Minute
}

func defaultSettings() Settings {
	return Settings{
		Addr:            ":8080",
		CatalogPath:     "data/celulares.json",
		RetailersPath:   "data/lojas.json",
		QueryLogPath:    "consultas.log",
		CacheTTLMinutes: 60,
		CacheMaxEntries: 128,
	}
}

// Load reads secrets from the environment and tunables from the optional
// settings file. A missing settings file keeps the defaults; a missing
// credential for the selected provider, or a missing log token, is an error.
func Load(settingsPath string) (*Config, error) {
	cfg := &Config{
		Provider:     getenvDefault("LLM_PROVIDER", ProviderOpenAI),
		OpenAIKey:    os.Getenv("OPENAI_API_KEY"),
		AnthropicKey: os.Getenv("ANTHROPIC_API_KEY"),
		LogToken:     os.Getenv("LOG_ACCESS_TOKEN"),
		SerperKey:    os.Getenv("SERPER_API_KEY"),
		RedisURL:     os.Getenv("REDIS_URL"),
		FrontendURL:  os.Getenv("FRONTEND_URL"),
		Settings:     defaultSettings(),
	}

	if err := cfg.Settings.load(settingsPath); err != nil {
		return nil, err
	}

	switch cfg.Provider {
	case ProviderOpenAI:
		if cfg.OpenAIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is required with LLM_PROVIDER=%s", cfg.Provider)
		}
	case ProviderAnthropic:
		if cfg.AnthropicKey == "" {
			return nil, fmt.Errorf("ANTHROPIC_API_KEY is required with LLM_PROVIDER=%s", cfg.Provider)
		}
	default:
		return nil, fmt.Errorf("unknown LLM_PROVIDER %q", cfg.Provider)
	}

	if cfg.LogToken == "" {
		return nil, errors.New("LOG_ACCESS_TOKEN is required")
	}

	return cfg, nil
}

func (s *Settings) load(path string) error {
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read settings: %w", err)
	}

	if err := yaml.Unmarshal(data, s); err != nil {
		return fmt.Errorf("parse settings %s: %w", path, err)
	}
	return nil
}

func getenvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

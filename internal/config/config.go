// Package config loads console engine settings from environment
// variables and an optional YAML config file. Environment variables use
// the DEVCONSOLE_ prefix; explicit settings always win over defaults.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"devconsole/internal/logger"
)

// Defaults for the tunable knobs.
const (
	DefaultHistorySize     = 20
	DefaultMaxSuggestions  = 4
	DefaultScrollbackLimit = 1000
	DefaultPromptSymbol    = "$ "
)

// Config carries the session-construction settings.
type Config struct {
	// HistorySize bounds the history navigator's entry count.
	HistorySize int `mapstructure:"history_size"`
	// MaxSuggestions bounds autocomplete query results.
	MaxSuggestions int `mapstructure:"max_suggestions"`
	// ScrollbackLimit bounds the scrollback buffer's line count.
	ScrollbackLimit int `mapstructure:"scrollback_limit"`
	// PromptSymbol prefixes echoed submissions in the scrollback.
	PromptSymbol string `mapstructure:"prompt_symbol"`
	// CompletionsFile optionally points at a YAML manifest of
	// argument-completion phrases.
	CompletionsFile string `mapstructure:"completions_file"`

	// ArgCompletions are multi-word phrases seeded into the autocomplete
	// index alongside command names, e.g. ["spawn", "enemy"] completes
	// "spawn enemy" while typing "spawn". Populated from CompletionsFile.
	ArgCompletions [][]string `mapstructure:"-"`
}

// Default returns a config with all defaults applied.
func Default() *Config {
	return &Config{
		HistorySize:     DefaultHistorySize,
		MaxSuggestions:  DefaultMaxSuggestions,
		ScrollbackLimit: DefaultScrollbackLimit,
		PromptSymbol:    DefaultPromptSymbol,
	}
}

// Load assembles the config from (lowest to highest precedence)
// defaults, an optional YAML config file, and DEVCONSOLE_* environment
// variables. configFile may be empty, in which case devconsole.yaml in
// the working directory is consulted if present.
func Load(configFile string) (*Config, error) {
	// Best-effort .env bootstrap; a missing file is not an error.
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("DEVCONSOLE")
	v.AutomaticEnv()

	v.SetDefault("history_size", DefaultHistorySize)
	v.SetDefault("max_suggestions", DefaultMaxSuggestions)
	v.SetDefault("scrollback_limit", DefaultScrollbackLimit)
	v.SetDefault("prompt_symbol", DefaultPromptSymbol)
	v.SetDefault("completions_file", "")

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", configFile, err)
		}
	} else {
		v.SetConfigName("devconsole")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("reading config: %w", err)
			}
		}
	}

	cfg := Default()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if cfg.CompletionsFile != "" {
		completions, err := LoadCompletions(cfg.CompletionsFile)
		if err != nil {
			return nil, err
		}
		cfg.ArgCompletions = completions
		logger.Debug("loaded argument completions", "file", cfg.CompletionsFile, "count", len(completions))
	}

	return cfg, nil
}

// completionsManifest is the YAML schema of the completions file:
//
//	completions:
//	  - [spawn, enemy]
//	  - [spawn, pickup]
type completionsManifest struct {
	Completions [][]string `yaml:"completions"`
}

// LoadCompletions reads argument-completion phrases from a YAML manifest.
func LoadCompletions(path string) ([][]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading completions file %s: %w", path, err)
	}
	var manifest completionsManifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("parsing completions file %s: %w", path, err)
	}
	return manifest.Completions, nil
}

// Package config loads bloom's settings from a TOML file and BLOOM_*
// environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/unholyblue/bloom/internal/llm"
)

// Reframe backends.
const (
	BackendTemplate = "template"
	BackendLLM      = "llm"
)

// Config holds all bloom configuration.
type Config struct {
	Store   StoreConfig   `toml:"store"`
	Server  ServerConfig  `toml:"server"`
	Reframe ReframeConfig `toml:"reframe"`
	LLM     llm.Config    `toml:"llm"`
}

type StoreConfig struct {
	// Path is the SQLite file. Empty means the default data directory.
	Path string `toml:"path"`
}

type ServerConfig struct {
	Addr        string   `toml:"addr"`
	CORSOrigins []string `toml:"cors_origins"`
}

type ReframeConfig struct {
	Backend           string        `toml:"backend"`
	GenerationTimeout time.Duration `toml:"generation_timeout"`
	MaxTokens         int           `toml:"max_tokens"`
	Temperature       float64       `toml:"temperature"`
}

// DefaultConfig returns config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Addr:        "127.0.0.1:8080",
			CORSOrigins: []string{"http://localhost:*", "http://127.0.0.1:*"},
		},
		Reframe: ReframeConfig{
			Backend:           BackendTemplate,
			GenerationTimeout: 15 * time.Second,
			MaxTokens:         400,
			Temperature:       0.7,
		},
		LLM: llm.DefaultConfig(),
	}
}

// Load reads the config file at path, or the first file found on the
// standard paths when path is empty, then applies env overrides. A missing
// file at a standard path is not an error.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	} else {
		for _, p := range configPaths() {
			if _, err := os.Stat(p); err == nil {
				if _, err := toml.DecodeFile(p, &cfg); err != nil {
					return cfg, fmt.Errorf("parse config %s: %w", p, err)
				}
				break
			}
		}
	}

	applyEnv(&cfg)
	cfg.Store.Path = expandHome(cfg.Store.Path)

	if cfg.Reframe.Backend == BackendLLM && cfg.LLM.Provider == "" {
		cfg.LLM, _ = llm.DiscoverConfig(cfg.LLM)
	}
	return cfg, cfg.Validate()
}

// Validate checks values that would otherwise fail later and less clearly.
// The LLM section is only checked when it is the reframe backend.
func (c Config) Validate() error {
	switch c.Reframe.Backend {
	case BackendTemplate:
	case BackendLLM:
		if err := c.LLM.Validate(); err != nil {
			return fmt.Errorf("reframe backend %q: %w", BackendLLM, err)
		}
	default:
		return fmt.Errorf("unknown reframe backend %q (want %q or %q)", c.Reframe.Backend, BackendTemplate, BackendLLM)
	}
	if c.Server.Addr == "" {
		return fmt.Errorf("server address must not be empty")
	}
	return nil
}

// applyEnv overlays BLOOM_* variables. Unset or empty variables leave the
// file value alone.
func applyEnv(cfg *Config) {
	set := func(dst *string, key string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}

	set(&cfg.Store.Path, "BLOOM_DB")
	set(&cfg.Server.Addr, "BLOOM_ADDR")
	set(&cfg.Reframe.Backend, "BLOOM_REFRAME_BACKEND")
	set(&cfg.LLM.Provider, "BLOOM_LLM_PROVIDER")

	set(&cfg.LLM.Anthropic.APIKey, "BLOOM_ANTHROPIC_API_KEY")
	set(&cfg.LLM.Anthropic.Model, "BLOOM_ANTHROPIC_MODEL")
	set(&cfg.LLM.OpenAI.APIKey, "BLOOM_OPENAI_API_KEY")
	set(&cfg.LLM.OpenAI.Model, "BLOOM_OPENAI_MODEL")
	set(&cfg.LLM.OpenAI.BaseURL, "BLOOM_OPENAI_BASE_URL")
	set(&cfg.LLM.Gemini.APIKey, "BLOOM_GEMINI_API_KEY")
	set(&cfg.LLM.Gemini.Model, "BLOOM_GEMINI_MODEL")
	set(&cfg.LLM.OpenRouter.APIKey, "BLOOM_OPENROUTER_API_KEY")
	set(&cfg.LLM.OpenRouter.Model, "BLOOM_OPENROUTER_MODEL")

	if v := os.Getenv("BLOOM_REFRAME_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Reframe.GenerationTimeout = d
		} else {
			fmt.Fprintf(os.Stderr, "warning: ignoring BLOOM_REFRAME_TIMEOUT=%q: %v\n", v, err)
		}
	}
}

func configPaths() []string {
	var paths []string

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		paths = append(paths, filepath.Join(xdg, "bloom", "config.toml"))
	}

	home, _ := os.UserHomeDir()
	if home != "" {
		paths = append(paths, filepath.Join(home, ".config", "bloom", "config.toml"))
	}

	return paths
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}

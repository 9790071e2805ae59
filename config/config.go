// Package config loads PanelMesh settings from the environment. A .env file
// in the working directory is honored when present. Required credentials are
// validated eagerly (including their vendor prefixes) so misconfiguration
// fails at startup instead of surfacing as sentinel replies mid-round.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Provider holds the settings for one backend vendor.
type Provider struct {
	APIKey string
	Model  string
}

// Config is the full runtime configuration of a panel.
type Config struct {
	OpenAI    Provider
	Gemini    Provider
	Anthropic Provider
	XAI       Provider

	// UseGrok gates the optional Grok peer. Even when true the peer is
	// disabled if XAI_API_KEY is missing.
	UseGrok bool

	// MemoryPath is the JSONL file backing durable QA memory.
	MemoryPath string

	// Debug raises log verbosity.
	Debug bool
}

// Load reads the environment (and an optional .env file) into a Config.
func Load() (*Config, error) {
	// The .env file is a development convenience; absence is not an error.
	_ = godotenv.Load()

	openaiKey, err := requireEnv("OPENAI_API_KEY", "sk-")
	if err != nil {
		return nil, err
	}
	geminiKey, err := requireEnv("GEMINI_API_KEY", "AIza")
	if err != nil {
		return nil, err
	}
	anthropicKey, err := requireEnv("ANTHROPIC_API_KEY", "sk-ant-")
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		OpenAI: Provider{
			APIKey: openaiKey,
			Model:  envOr("OPENAI_MODEL", "gpt-4.1-mini"),
		},
		Gemini: Provider{
			APIKey: geminiKey,
			Model:  envOr("GEMINI_MODEL", "gemini-2.0-flash"),
		},
		Anthropic: Provider{
			APIKey: anthropicKey,
			Model:  envOr("CLAUDE_MODEL", "claude-sonnet-4-20250514"),
		},
		XAI: Provider{
			APIKey: os.Getenv("XAI_API_KEY"), // optional
			Model:  envOr("GROK_MODEL", "grok-2-latest"),
		},
		UseGrok:    envBool("USE_GROK"),
		MemoryPath: envOr("PANELMESH_MEMORY_PATH", "qa_memory.jsonl"),
		Debug:      envBool("PANELMESH_DEBUG"),
	}
	return cfg, nil
}

// requireEnv reads a mandatory variable and checks its vendor prefix.
func requireEnv(name, prefix string) (string, error) {
	value := os.Getenv(name)
	if value == "" {
		return "", fmt.Errorf("%s environment variable is not set", name)
	}
	if prefix != "" && !strings.HasPrefix(value, prefix) {
		return "", fmt.Errorf("%s does not have the expected format (prefix %q)", name, prefix)
	}
	return value, nil
}

func envOr(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}

func envBool(name string) bool {
	v, err := strconv.ParseBool(os.Getenv(name))
	return err == nil && v
}

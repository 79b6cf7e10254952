// Package config resolves environment overrides for the CLI. Providers never
// read the environment themselves; the credential is resolved here and passed
// down as an explicit field.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"

	"hearth/internal/workspace"
)

type Env struct {
	Workspace       string `env:"HEARTH_WORKSPACE"`
	APIKey          string `env:"HEARTH_API_KEY"`
	AnthropicAPIKey string `env:"ANTHROPIC_API_KEY"`
	OpenAIAPIKey    string `env:"OPENAI_API_KEY"`
	Model           string `env:"HEARTH_MODEL"`
	Verbose         bool   `env:"HEARTH_VERBOSE"`
}

func FromEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf("parse environment: %w", err)
	}
	return e, nil
}

// ResolveAPIKey picks the credential for a provider. Order: explicit value,
// the provider's configured api_key_env variable, HEARTH_API_KEY, then the
// vendor default variable. An empty result is legal here; providers that
// need a key reject it at construction.
func (e Env) ResolveAPIKey(explicit string, pc workspace.ProviderConfig) string {
	if v := strings.TrimSpace(explicit); v != "" {
		return v
	}
	if pc.APIKeyEnv != "" {
		if v := strings.TrimSpace(os.Getenv(pc.APIKeyEnv)); v != "" {
			return v
		}
	}
	if v := strings.TrimSpace(e.APIKey); v != "" {
		return v
	}
	switch pc.Type {
	case "anthropic":
		return strings.TrimSpace(e.AnthropicAPIKey)
	case "openai":
		return strings.TrimSpace(e.OpenAIAPIKey)
	}
	return ""
}

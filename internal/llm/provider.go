package llm

import (
	"fmt"
	"net/http"
	"time"

	"hearth/internal/workspace"
)

// New builds a provider from workspace config. The API key arrives fully
// resolved; anthropic and openai providers refuse an empty key at
// construction so a misconfigured workspace fails before any message is
// processed.
func New(pc workspace.ProviderConfig, apiKey string) (Provider, error) {
	timeout := time.Duration(pc.TimeoutMS) * time.Millisecond
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	switch pc.Type {
	case "mock":
		return &MockProvider{name: pc.Name, model: pc.Model}, nil
	case "http":
		return &HTTPProvider{cfg: pc, client: &http.Client{Timeout: timeout}}, nil
	case "anthropic":
		return newAnthropicProvider(pc, apiKey)
	case "openai":
		return newOpenAIProvider(pc, apiKey)
	default:
		return nil, fmt.Errorf("unsupported provider type %q", pc.Type)
	}
}

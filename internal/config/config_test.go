package config

import (
	"testing"

	"hearth/internal/workspace"
)

func TestFromEnv(t *testing.T) {
	t.Setenv("HEARTH_WORKSPACE", "/tmp/house")
	t.Setenv("HEARTH_VERBOSE", "true")
	t.Setenv("HEARTH_MODEL", "mock-small")

	e, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if e.Workspace != "/tmp/house" || !e.Verbose || e.Model != "mock-small" {
		t.Fatalf("unexpected env: %+v", e)
	}
}

func TestResolveAPIKeyOrder(t *testing.T) {
	pc := workspace.ProviderConfig{Type: "anthropic", APIKeyEnv: "MY_PROVIDER_KEY"}

	// Explicit always wins.
	e := Env{APIKey: "shared", AnthropicAPIKey: "vendor"}
	t.Setenv("MY_PROVIDER_KEY", "from-config-env")
	if got := e.ResolveAPIKey("explicit", pc); got != "explicit" {
		t.Fatalf("got %q", got)
	}

	// Then the provider's own api_key_env variable.
	if got := e.ResolveAPIKey("", pc); got != "from-config-env" {
		t.Fatalf("got %q", got)
	}

	// Then the shared key, then the vendor default.
	t.Setenv("MY_PROVIDER_KEY", "")
	if got := e.ResolveAPIKey("", pc); got != "shared" {
		t.Fatalf("got %q", got)
	}
	e.APIKey = ""
	if got := e.ResolveAPIKey("", pc); got != "vendor" {
		t.Fatalf("got %q", got)
	}

	// openai falls through to its own vendor variable.
	e = Env{OpenAIAPIKey: "oa"}
	if got := e.ResolveAPIKey("", workspace.ProviderConfig{Type: "openai"}); got != "oa" {
		t.Fatalf("got %q", got)
	}

	// mock and http may legitimately resolve to nothing.
	if got := (Env{}).ResolveAPIKey("", workspace.ProviderConfig{Type: "mock"}); got != "" {
		t.Fatalf("got %q", got)
	}
}

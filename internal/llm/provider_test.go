package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hearth/internal/workspace"
)

func TestNewProviderMatrix(t *testing.T) {
	cases := []struct {
		pc      workspace.ProviderConfig
		key     string
		wantErr bool
	}{
		{workspace.ProviderConfig{Name: "m", Type: "mock"}, "", false},
		{workspace.ProviderConfig{Name: "h", Type: "http", BaseURL: "http://localhost:9"}, "", false},
		{workspace.ProviderConfig{Name: "a", Type: "anthropic"}, "sk-test", false},
		{workspace.ProviderConfig{Name: "a", Type: "anthropic"}, "", true},
		{workspace.ProviderConfig{Name: "o", Type: "openai"}, "sk-test", false},
		{workspace.ProviderConfig{Name: "o", Type: "openai"}, "", true},
		{workspace.ProviderConfig{Name: "x", Type: "telepathy"}, "", true},
	}
	for _, tc := range cases {
		p, err := New(tc.pc, tc.key)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("type=%s key=%q: expected error", tc.pc.Type, tc.key)
			}
			continue
		}
		if err != nil {
			t.Fatalf("type=%s: %v", tc.pc.Type, err)
		}
		if p.Name() != tc.pc.Name {
			t.Fatalf("type=%s: name %q != %q", tc.pc.Type, p.Name(), tc.pc.Name)
		}
	}
}

func TestMockProviderEcho(t *testing.T) {
	p := NewMockProvider("local", "mock-small")
	req := CompletionRequest{
		System:   "you are terse",
		Messages: []ChatMessage{{Role: RoleUser, Content: "hello there"}},
	}

	first, err := p.Complete(context.Background(), req)
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	second, err := p.Complete(context.Background(), req)
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if first.Text != second.Text {
		t.Fatalf("mock must be deterministic:\n%s\n%s", first.Text, second.Text)
	}
	for _, want := range []string{"[mock-provider]", "model=mock-small", "hello there"} {
		if !strings.Contains(first.Text, want) {
			t.Fatalf("echo missing %q: %s", want, first.Text)
		}
	}
	if first.Model != "mock-small" || first.StopReason != "end_turn" {
		t.Fatalf("unexpected response meta: %+v", first)
	}
}

func TestMockProviderReplyOverride(t *testing.T) {
	p := NewMockProvider("local", "mock-small")
	p.Reply = "fixed"
	resp, err := p.Complete(context.Background(), CompletionRequest{})
	if err != nil {
		t.Fatal(err)
	}
	if resp.Text != "fixed" {
		t.Fatalf("expected override, got %q", resp.Text)
	}
}

func TestHTTPProviderExtractsTextKey(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		var payload map[string]any
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if payload["model"] != "llama3" {
			t.Errorf("unexpected model %v", payload["model"])
		}
		json.NewEncoder(w).Encode(map[string]any{"text": "from server"})
	}))
	defer srv.Close()

	p, err := New(workspace.ProviderConfig{
		Name:    "self-hosted",
		Type:    "http",
		BaseURL: srv.URL,
		Model:   "llama3",
		Headers: map[string]string{"Authorization": "Bearer local"},
	}, "")
	if err != nil {
		t.Fatal(err)
	}

	resp, err := p.Complete(context.Background(), CompletionRequest{
		Messages: []ChatMessage{{Role: RoleUser, Content: "hi"}},
	})
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if resp.Text != "from server" {
		t.Fatalf("unexpected text %q", resp.Text)
	}
	if gotAuth != "Bearer local" {
		t.Fatalf("custom header not forwarded, got %q", gotAuth)
	}
}

func TestHTTPProviderRawBodyFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("plain completion text"))
	}))
	defer srv.Close()

	p, err := New(workspace.ProviderConfig{Name: "h", Type: "http", BaseURL: srv.URL}, "")
	if err != nil {
		t.Fatal(err)
	}
	resp, err := p.Complete(context.Background(), CompletionRequest{})
	if err != nil {
		t.Fatal(err)
	}
	if resp.Text != "plain completion text" {
		t.Fatalf("unexpected text %q", resp.Text)
	}
}

func TestHTTPProviderErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	p, err := New(workspace.ProviderConfig{Name: "h", Type: "http", BaseURL: srv.URL}, "")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := p.Complete(context.Background(), CompletionRequest{}); err == nil {
		t.Fatal("expected error for 503")
	} else if !strings.Contains(err.Error(), "503") {
		t.Fatalf("expected status in error, got %v", err)
	}
}

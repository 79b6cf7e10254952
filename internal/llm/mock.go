package llm

import (
	"context"
	"fmt"
	"strings"
)

// MockProvider is deterministic and network-free. It echoes enough of the
// request to make assertions against, and is the default provider written by
// hearth init.
type MockProvider struct {
	name  string
	model string

	// Reply overrides the echoed text when set. Tests use it to exercise
	// the extraction paths with controlled model output.
	Reply string
}

func NewMockProvider(name, model string) *MockProvider {
	return &MockProvider{name: name, model: model}
}

func (p *MockProvider) Name() string { return p.name }

func (p *MockProvider) Complete(_ context.Context, req CompletionRequest) (CompletionResponse, error) {
	model := req.Model
	if model == "" {
		model = p.model
	}
	if model == "" {
		model = "mock-small"
	}
	text := p.Reply
	if text == "" {
		parts := []string{fmt.Sprintf("model=%s", model)}
		if req.System != "" {
			parts = append(parts, fmt.Sprintf("system=%q", truncate(req.System, 90)))
		}
		if n := len(req.Messages); n > 0 {
			parts = append(parts, fmt.Sprintf("messages=%d", n))
			parts = append(parts, fmt.Sprintf("last=%q", truncate(req.Messages[n-1].Content, 120)))
		}
		text = "[mock-provider] " + strings.Join(parts, " | ")
	}
	return CompletionResponse{
		Text:       text,
		Model:      model,
		StopReason: "end_turn",
		Usage:      Usage{InputTokens: int64(promptChars(req) / 4), OutputTokens: int64(len(text) / 4)},
	}, nil
}

func promptChars(req CompletionRequest) int {
	n := len(req.System)
	for _, m := range req.Messages {
		n += len(m.Content)
	}
	return n
}

func truncate(s string, max int) string {
	s = strings.TrimSpace(strings.ReplaceAll(s, "\n", " "))
	if max <= 0 || len(s) <= max {
		return s
	}
	return s[:max] + "..."
}

package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"hearth/internal/workspace"
)

// HTTPProvider posts the request as plain JSON to a self-hosted endpoint.
// It accepts any response body that carries the reply under a common text
// key, and otherwise treats the whole body as the reply.
type HTTPProvider struct {
	cfg    workspace.ProviderConfig
	client *http.Client
}

func (p *HTTPProvider) Name() string { return p.cfg.Name }

func (p *HTTPProvider) Complete(ctx context.Context, req CompletionRequest) (CompletionResponse, error) {
	model := req.Model
	if model == "" {
		model = p.cfg.Model
	}
	payload := map[string]any{
		"model":       model,
		"max_tokens":  req.MaxTokens,
		"temperature": req.Temperature,
		"system":      req.System,
		"messages":    req.Messages,
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return CompletionResponse{}, fmt.Errorf("marshal provider payload: %w", err)
	}
	hreq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.cfg.BaseURL, bytes.NewReader(b))
	if err != nil {
		return CompletionResponse{}, fmt.Errorf("create provider request: %w", err)
	}
	hreq.Header.Set("Content-Type", "application/json")
	for k, v := range p.cfg.Headers {
		hreq.Header.Set(k, v)
	}
	resp, err := p.client.Do(hreq)
	if err != nil {
		return CompletionResponse{}, fmt.Errorf("provider http call: %w", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return CompletionResponse{}, fmt.Errorf("read provider response: %w", err)
	}
	if resp.StatusCode >= 400 {
		return CompletionResponse{}, fmt.Errorf("provider status %d: %s", resp.StatusCode, truncate(string(body), 300))
	}
	var generic map[string]any
	if json.Unmarshal(body, &generic) == nil {
		for _, key := range []string{"text", "output", "response"} {
			if s, ok := generic[key].(string); ok {
				return CompletionResponse{Text: s, Model: model, StopReason: "end_turn"}, nil
			}
		}
	}
	return CompletionResponse{Text: string(body), Model: model, StopReason: "end_turn"}, nil
}

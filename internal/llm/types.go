// Package llm abstracts the hosted completion APIs behind a small provider
// interface. Failures are passed through as generic wrapped errors; the
// package does not classify rate limits or auth errors and does not retry.
package llm

import (
	"context"
)

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type CompletionRequest struct {
	Model       string
	MaxTokens   int
	Temperature float64
	System      string
	Messages    []ChatMessage
}

type Usage struct {
	InputTokens  int64
	OutputTokens int64
}

// CompletionResponse carries the first text content block of the model reply
// plus usage metadata.
type CompletionResponse struct {
	Text       string
	Model      string
	StopReason string
	Usage      Usage
}

type Provider interface {
	Name() string
	Complete(ctx context.Context, req CompletionRequest) (CompletionResponse, error)
}

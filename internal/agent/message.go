// Package agent implements the household assistant agents: message dispatch,
// bounded conversation history, scratch context, and best-effort extraction
// of structured results from completion-API replies.
package agent

import (
	"time"

	"github.com/google/uuid"
)

// Kind tags drive dispatch in ProcessMessage. Anything outside this set
// falls through to the generic analysis handler.
type Kind string

const (
	KindQuery    Kind = "query"
	KindCommand  Kind = "command"
	KindProposal Kind = "proposal"
	KindEvent    Kind = "event"
	KindReport   Kind = "report"
)

// Message is the caller-facing envelope. It is constructed once and consumed
// once by the dispatcher; nothing mutates it afterwards.
type Message struct {
	ID        string            `json:"id"`
	From      string            `json:"from"`
	To        string            `json:"to"`
	Kind      Kind              `json:"kind"`
	Payload   any               `json:"payload"`
	Timestamp time.Time         `json:"timestamp"`
	Priority  int               `json:"priority,omitempty"`
	Metadata  map[string]string `json:"metadata,omitempty"`
}

func NewMessage(from, to string, kind Kind, payload any) Message {
	return Message{
		ID:        uuid.NewString(),
		From:      from,
		To:        to,
		Kind:      kind,
		Payload:   payload,
		Timestamp: time.Now(),
	}
}

// Response is built once per processed message and never mutated after
// return.
type Response struct {
	Success   bool      `json:"success"`
	Data      any       `json:"data,omitempty"`
	Error     string    `json:"error,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	AgentID   string    `json:"agent_id"`
	Role      string    `json:"role"`
}

// Analysis is the normalized result of a decision request.
type Analysis struct {
	Text            string         `json:"analysis"`
	Confidence      float64        `json:"confidence"`
	Recommendations []string       `json:"recommendations"`
	Metadata        map[string]any `json:"metadata,omitempty"`
}

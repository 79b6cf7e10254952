package agent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"hearth/internal/llm"
	"hearth/internal/workspace"
)

const (
	defaultConfidence  = 0.7
	defaultMaxTokens   = 4096
	defaultTemperature = 0.7

	// insightMaxTokens and insightTemperature apply to Insights regardless
	// of the agent's configured budget and temperature.
	insightMaxTokens   = 1024
	insightTemperature = 0.5

	// historyWindow is how many recent entries travel with each decision
	// request.
	historyWindow = 5

	// decisionThreshold: proposals are "recommended" only on strictly
	// greater confidence.
	decisionThreshold = 0.7
)

// ErrNotActive is returned by ProcessMessage when the agent has not been
// started or has been stopped.
var ErrNotActive = errors.New("agent not active")

// Agent wraps one household role around a completion provider. A mutex
// serializes ProcessMessage so history and context stay single-writer even
// with concurrent callers.
type Agent struct {
	id       string
	cfg      workspace.AgentConfig
	provider llm.Provider
	log      *zap.Logger

	mu        sync.Mutex
	active    bool
	history   History
	store     *ContextStore
	listeners []EventListener
}

func New(cfg workspace.AgentConfig, provider llm.Provider, logger *zap.Logger) (*Agent, error) {
	if provider == nil {
		return nil, fmt.Errorf("agent %q: provider is required", cfg.Name)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Role == "" {
		cfg.Role = "assistant"
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = defaultMaxTokens
	}
	return &Agent{
		id:       fmt.Sprintf("%s-%d", cfg.Role, time.Now().UnixMilli()),
		cfg:      cfg,
		provider: provider,
		log:      logger,
		store:    NewContextStore(),
	}, nil
}

func (a *Agent) ID() string   { return a.id }
func (a *Agent) Name() string { return a.cfg.Name }
func (a *Agent) Role() string { return a.cfg.Role }

// Start marks the agent active, notifies observers and logs. Starting an
// already-active agent is a no-op.
func (a *Agent) Start() {
	a.mu.Lock()
	if a.active {
		a.mu.Unlock()
		return
	}
	a.active = true
	a.mu.Unlock()

	a.emit(EventStarted)
	a.log.Info("agent started", zap.String("agent_id", a.id), zap.String("role", a.cfg.Role))
}

func (a *Agent) Stop() {
	a.mu.Lock()
	if !a.active {
		a.mu.Unlock()
		return
	}
	a.active = false
	a.mu.Unlock()

	a.emit(EventStopped)
	a.log.Info("agent stopped", zap.String("agent_id", a.id), zap.String("role", a.cfg.Role))
}

// ProcessMessage routes msg by kind and returns the typed response. The
// incoming message is recorded in history before the handler runs; a failed
// handler therefore leaves a requester entry with no paired responder entry.
// Handler errors propagate unmodified and do not change lifecycle state.
func (a *Agent) ProcessMessage(ctx context.Context, msg Message) (Response, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.active {
		return Response{}, fmt.Errorf("agent %s: %w", a.id, ErrNotActive)
	}

	a.history.Append(HistoryRequester, serialize(msg))
	a.log.Debug("processing message",
		zap.String("agent_id", a.id),
		zap.String("message_id", msg.ID),
		zap.String("kind", string(msg.Kind)))

	var data any
	var err error
	switch msg.Kind {
	case KindProposal:
		data, err = a.handleProposal(ctx, msg)
	case KindReport:
		data, err = a.handleReport(ctx, msg)
	case KindQuery, KindCommand, KindEvent:
		data, err = a.analyze(ctx, msg)
	default:
		data, err = a.analyze(ctx, msg)
	}
	if err != nil {
		return Response{}, err
	}

	resp := Response{
		Success:   true,
		Data:      data,
		Timestamp: time.Now(),
		AgentID:   a.id,
		Role:      a.cfg.Role,
	}
	a.history.Append(HistoryResponder, serialize(resp))
	return resp, nil
}

// analyze is the generic handler behind query, command, event and any
// unrecognized kind.
func (a *Agent) analyze(ctx context.Context, msg Message) (any, error) {
	analysis, err := a.decide(ctx, analysisPrompt(a.cfg.Role, payloadText(msg.Payload)), nil)
	if err != nil {
		return nil, err
	}
	return analysis, nil
}

func (a *Agent) handleProposal(ctx context.Context, msg Message) (any, error) {
	analysis, err := a.decide(ctx, proposalPrompt+"\n\n"+payloadText(msg.Payload), nil)
	if err != nil {
		return nil, err
	}
	decision := "needs-review"
	if analysis.Confidence > decisionThreshold {
		decision = "recommended"
	}
	return map[string]any{
		"decision":        decision,
		"confidence":      analysis.Confidence,
		"analysis":        analysis.Text,
		"recommendations": analysis.Recommendations,
	}, nil
}

func (a *Agent) handleReport(ctx context.Context, msg Message) (any, error) {
	topic := msg.Metadata["topic"]
	if topic == "" {
		topic = "report"
	}
	insights, err := a.insights(ctx, msg.Payload, topic)
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"report_id": uuid.NewString(),
		"topic":     topic,
		"insights":  insights,
	}, nil
}

// Decide sends prompt (plus optional structured context) to the completion
// API and normalizes the reply into an Analysis. Malformed model output
// never produces an error: the structured branch falls back to treating the
// whole reply as plain text with default confidence.
func (a *Agent) Decide(ctx context.Context, prompt string, extra map[string]any) (Analysis, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.decide(ctx, prompt, extra)
}

func (a *Agent) decide(ctx context.Context, prompt string, extra map[string]any) (Analysis, error) {
	if len(extra) > 0 {
		prompt = prompt + "\n\nAdditional context:\n" + serialize(extra)
	}

	messages := make([]llm.ChatMessage, 0, historyWindow+1)
	for _, e := range a.history.Recent(historyWindow) {
		role := llm.RoleUser
		if e.Role == HistoryResponder {
			role = llm.RoleAssistant
		}
		messages = append(messages, llm.ChatMessage{Role: role, Content: e.Content})
	}
	messages = append(messages, llm.ChatMessage{Role: llm.RoleUser, Content: prompt})

	resp, err := a.provider.Complete(ctx, llm.CompletionRequest{
		Model:       a.cfg.Model,
		MaxTokens:   a.cfg.MaxTokens,
		Temperature: a.temperature(),
		System:      systemPromptFor(a.cfg.Role, a.cfg.SystemPrompt),
		Messages:    messages,
	})
	if err != nil {
		return Analysis{}, fmt.Errorf("completion request: %w", err)
	}

	if analysis, ok := extractAnalysis(resp.Text); ok {
		return analysis, nil
	}
	return Analysis{
		Text:            strings.TrimSpace(resp.Text),
		Confidence:      defaultConfidence,
		Recommendations: extractBullets(resp.Text),
	}, nil
}

// Insights asks for 3-5 actionable insights over arbitrary structured data.
// The reply is parsed as a JSON array when possible; otherwise the non-empty
// lines of the raw text are returned. Never more than five entries.
func (a *Agent) Insights(ctx context.Context, data any, topic string) ([]string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.insights(ctx, data, topic)
}

func (a *Agent) insights(ctx context.Context, data any, topic string) ([]string, error) {
	prompt := fmt.Sprintf(insightsPromptTemplate, topic, payloadText(data))
	resp, err := a.provider.Complete(ctx, llm.CompletionRequest{
		Model:       a.cfg.Model,
		MaxTokens:   insightMaxTokens,
		Temperature: insightTemperature,
		System:      systemPromptFor(a.cfg.Role, a.cfg.SystemPrompt),
		Messages:    []llm.ChatMessage{{Role: llm.RoleUser, Content: prompt}},
	})
	if err != nil {
		return nil, fmt.Errorf("completion request: %w", err)
	}

	if items, ok := extractStringArray(resp.Text); ok {
		if len(items) > maxRecommendations {
			items = items[:maxRecommendations]
		}
		return items, nil
	}
	return nonEmptyLines(resp.Text, maxRecommendations), nil
}

// SetContext stores a scratch value on the agent.
func (a *Agent) SetContext(key string, value any) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.store.Set(key, value)
}

// ContextValue reads a scratch value previously stored with SetContext.
func (a *Agent) ContextValue(key string) (any, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.store.Get(key)
}

type StatusStats struct {
	UptimeMS      int64  `json:"uptime_ms"`
	HistoryLength int    `json:"history_length"`
	ContextItems  int    `json:"context_items"`
	Model         string `json:"model"`
}

type Status struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Role     string         `json:"role"`
	Active   bool           `json:"active"`
	Stats    StatusStats    `json:"stats"`
	Metadata map[string]any `json:"metadata"`
}

// Status is a pure read snapshot. Uptime derives from the millisecond
// timestamp embedded in the agent ID and reports zero while inactive.
func (a *Agent) Status() Status {
	a.mu.Lock()
	defer a.mu.Unlock()

	var uptime int64
	if a.active {
		if started, ok := idTimestamp(a.id); ok {
			uptime = time.Since(started).Milliseconds()
		}
	}
	return Status{
		ID:     a.id,
		Name:   a.cfg.Name,
		Role:   a.cfg.Role,
		Active: a.active,
		Stats: StatusStats{
			UptimeMS:      uptime,
			HistoryLength: a.history.Len(),
			ContextItems:  a.store.Len(),
			Model:         a.cfg.Model,
		},
		Metadata: map[string]any{
			"ai_enabled":  true,
			"model":       a.cfg.Model,
			"temperature": a.temperature(),
		},
	}
}

func (a *Agent) temperature() float64 {
	if a.cfg.Temperature != nil {
		return *a.cfg.Temperature
	}
	return defaultTemperature
}

func idTimestamp(id string) (time.Time, bool) {
	i := strings.LastIndex(id, "-")
	if i < 0 {
		return time.Time{}, false
	}
	millis, err := strconv.ParseInt(id[i+1:], 10, 64)
	if err != nil {
		return time.Time{}, false
	}
	return time.UnixMilli(millis), true
}

func payloadText(payload any) string {
	switch v := payload.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return serialize(v)
	}
}

func serialize(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(b)
}

package agent

import (
	"encoding/json"
	"regexp"
	"strings"
)

const maxRecommendations = 5

// bulletLine matches "- x", "• x", "* x" and "12. x".
var bulletLine = regexp.MustCompile(`^(?:[-•*]|\d+\.)\s+(.*)`)

// decisionPayload is the structured shape the model is asked to reply with.
type decisionPayload struct {
	Analysis        string   `json:"analysis"`
	Confidence      *float64 `json:"confidence"`
	Recommendations []string `json:"recommendations"`
	Reasoning       string   `json:"reasoning,omitempty"`
	Sources         []string `json:"sources,omitempty"`
	Complexity      string   `json:"complexity,omitempty"`
}

// extractAnalysis scrapes the first {...} span (greedy, first opening brace
// to last closing brace) out of raw model text and parses it as a decision
// payload. Reports false when no parseable object is present so the caller
// can fall back to plain-text handling.
func extractAnalysis(raw string) (Analysis, bool) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end <= start {
		return Analysis{}, false
	}
	var payload decisionPayload
	if err := json.Unmarshal([]byte(raw[start:end+1]), &payload); err != nil {
		return Analysis{}, false
	}
	a := Analysis{
		Text:            payload.Analysis,
		Confidence:      defaultConfidence,
		Recommendations: payload.Recommendations,
	}
	if payload.Confidence != nil {
		a.Confidence = clampConfidence(*payload.Confidence)
	}
	if a.Text == "" {
		a.Text = strings.TrimSpace(raw)
	}
	if a.Recommendations == nil {
		a.Recommendations = []string{}
	}
	meta := map[string]any{}
	if payload.Reasoning != "" {
		meta["reasoning"] = payload.Reasoning
	}
	if len(payload.Sources) > 0 {
		meta["sources"] = payload.Sources
	}
	if payload.Complexity != "" {
		meta["complexity"] = payload.Complexity
	}
	if len(meta) > 0 {
		a.Metadata = meta
	}
	return a, true
}

// extractStringArray scrapes the first [...] span and parses it as a JSON
// array, flattening non-string members through their JSON encoding.
func extractStringArray(raw string) ([]string, bool) {
	start := strings.Index(raw, "[")
	end := strings.LastIndex(raw, "]")
	if start < 0 || end <= start {
		return nil, false
	}
	var items []any
	if err := json.Unmarshal([]byte(raw[start:end+1]), &items); err != nil {
		return nil, false
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		switch v := it.(type) {
		case string:
			out = append(out, v)
		default:
			b, err := json.Marshal(v)
			if err != nil {
				continue
			}
			out = append(out, string(b))
		}
	}
	return out, true
}

// extractBullets is the fallback recommendation source: bullet or numbered
// lines, marker stripped, capped at maxRecommendations, order preserved.
func extractBullets(text string) []string {
	out := []string{}
	for _, line := range strings.Split(text, "\n") {
		m := bulletLine.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			continue
		}
		item := strings.TrimSpace(m[1])
		if item == "" {
			continue
		}
		out = append(out, item)
		if len(out) == maxRecommendations {
			break
		}
	}
	return out
}

// nonEmptyLines returns the trimmed non-empty lines of text capped at max.
func nonEmptyLines(text string, max int) []string {
	out := []string{}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, line)
		if len(out) == max {
			break
		}
	}
	return out
}

func clampConfidence(c float64) float64 {
	if c < 0 {
		return 0
	}
	if c > 1 {
		return 1
	}
	return c
}

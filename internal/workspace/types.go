package workspace

import (
	"fmt"
)

type RootConfig struct {
	Version         int              `yaml:"version"`
	DefaultProvider string           `yaml:"default_provider"`
	Providers       []ProviderConfig `yaml:"providers"`
}

type ProviderConfig struct {
	Name      string            `yaml:"name"`
	Type      string            `yaml:"type"`
	BaseURL   string            `yaml:"base_url"`
	APIKeyEnv string            `yaml:"api_key_env"`
	Model     string            `yaml:"model"`
	Headers   map[string]string `yaml:"headers"`
	TimeoutMS int               `yaml:"timeout_ms"`
}

// AgentConfig describes one household agent. MaxConcurrent and TimeoutMS are
// accepted for forward compatibility; the core processes one message at a
// time and does not enforce them.
type AgentConfig struct {
	Name          string            `yaml:"name"`
	Role          string            `yaml:"role"`
	Description   string            `yaml:"description"`
	Provider      string            `yaml:"provider"`
	Model         string            `yaml:"model"`
	MaxTokens     int               `yaml:"max_tokens"`
	Temperature   *float64          `yaml:"temperature"`
	SystemPrompt  string            `yaml:"system_prompt"`
	TimeoutMS     int               `yaml:"timeout_ms"`
	MaxConcurrent int               `yaml:"max_concurrent"`
	Metadata      map[string]string `yaml:"metadata"`
}

type Workspace struct {
	Root       RootConfig
	Agents     []AgentConfig
	AgentFiles map[string]string
}

// Agent returns the configured agent with the given name.
func (w *Workspace) Agent(name string) (AgentConfig, bool) {
	for _, a := range w.Agents {
		if a.Name == name {
			return a, true
		}
	}
	return AgentConfig{}, false
}

// Provider resolves an agent's provider, falling back to the workspace
// default when the agent does not name one.
func (w *Workspace) Provider(a AgentConfig) (ProviderConfig, bool) {
	name := a.Provider
	if name == "" {
		name = w.Root.DefaultProvider
	}
	for _, pc := range w.Root.Providers {
		if pc.Name == name {
			return pc, true
		}
	}
	return ProviderConfig{}, false
}

type IssueLevel string

const (
	IssueError   IssueLevel = "error"
	IssueWarning IssueLevel = "warning"
)

type Issue struct {
	Level   IssueLevel
	Path    string
	Field   string
	Message string
}

func (i Issue) String() string {
	if i.Field == "" {
		return fmt.Sprintf("[%s] %s: %s", i.Level, i.Path, i.Message)
	}
	return fmt.Sprintf("[%s] %s (%s): %s", i.Level, i.Path, i.Field, i.Message)
}

type ValidationError struct {
	Issues []Issue
}

func (e *ValidationError) Error() string {
	if e == nil || len(e.Issues) == 0 {
		return "validation failed"
	}
	return fmt.Sprintf("validation failed with %d issue(s)", len(e.Issues))
}

func (e *ValidationError) HasErrors() bool {
	if e == nil {
		return false
	}
	for _, it := range e.Issues {
		if it.Level == IssueError {
			return true
		}
	}
	return false
}

package workspace

import (
	"fmt"
	"strings"
)

var validProviderTypes = map[string]struct{}{
	"mock":      {},
	"http":      {},
	"openai":    {},
	"anthropic": {},
}

var knownRoles = map[string]struct{}{
	"homework":   {},
	"email":      {},
	"policy":     {},
	"counseling": {},
	"assistant":  {},
}

// Validate checks the loaded workspace and reports every issue found rather
// than stopping at the first.
func Validate(w *Workspace) *ValidationError {
	issues := []Issue{}
	if w == nil {
		issues = append(issues, Issue{Level: IssueError, Path: RootConfigFile, Message: "workspace is nil"})
		return &ValidationError{Issues: issues}
	}

	if w.Root.Version <= 0 {
		issues = append(issues, Issue{Level: IssueError, Path: RootConfigFile, Field: "version", Message: "must be >= 1"})
	}

	providerByName := map[string]ProviderConfig{}
	for i, pc := range w.Root.Providers {
		path := fmt.Sprintf("%s.providers[%d]", RootConfigFile, i)
		if strings.TrimSpace(pc.Name) == "" {
			issues = append(issues, Issue{Level: IssueError, Path: path, Field: "name", Message: "is required"})
			continue
		}
		if _, exists := providerByName[pc.Name]; exists {
			issues = append(issues, Issue{Level: IssueError, Path: path, Field: "name", Message: "duplicate provider name"})
		}
		providerByName[pc.Name] = pc
		if _, ok := validProviderTypes[pc.Type]; !ok {
			issues = append(issues, Issue{Level: IssueError, Path: path, Field: "type", Message: "unsupported provider type"})
		}
		if pc.TimeoutMS < 0 {
			issues = append(issues, Issue{Level: IssueError, Path: path, Field: "timeout_ms", Message: "must be >= 0"})
		}
		if pc.Type == "http" && strings.TrimSpace(pc.BaseURL) == "" {
			issues = append(issues, Issue{Level: IssueError, Path: path, Field: "base_url", Message: "is required for http provider"})
		}
	}

	if w.Root.DefaultProvider != "" {
		if _, ok := providerByName[w.Root.DefaultProvider]; !ok {
			issues = append(issues, Issue{Level: IssueError, Path: RootConfigFile, Field: "default_provider", Message: "references unknown provider"})
		}
	}

	agentByName := map[string]struct{}{}
	for _, a := range w.Agents {
		path := w.AgentFiles[a.Name]
		if path == "" {
			path = "agents/" + a.Name + ".yaml"
		}
		if strings.TrimSpace(a.Name) == "" {
			issues = append(issues, Issue{Level: IssueError, Path: path, Field: "name", Message: "is required"})
			continue
		}
		if _, exists := agentByName[a.Name]; exists {
			issues = append(issues, Issue{Level: IssueError, Path: path, Field: "name", Message: "duplicate agent name"})
		}
		agentByName[a.Name] = struct{}{}

		if a.Provider != "" {
			if _, ok := providerByName[a.Provider]; !ok {
				issues = append(issues, Issue{Level: IssueError, Path: path, Field: "provider", Message: "references unknown provider"})
			}
		} else if w.Root.DefaultProvider == "" {
			issues = append(issues, Issue{Level: IssueError, Path: path, Field: "provider", Message: "is required when no default_provider is set"})
		}

		if a.Role != "" {
			if _, ok := knownRoles[a.Role]; !ok {
				issues = append(issues, Issue{Level: IssueWarning, Path: path, Field: "role", Message: "unknown role, generic analysis prompt will be used"})
			}
		}
		if a.MaxTokens < 0 {
			issues = append(issues, Issue{Level: IssueError, Path: path, Field: "max_tokens", Message: "must be >= 0"})
		}
		if a.Temperature != nil && (*a.Temperature < 0 || *a.Temperature > 1) {
			issues = append(issues, Issue{Level: IssueError, Path: path, Field: "temperature", Message: "must be within [0, 1]"})
		}
		if a.TimeoutMS < 0 {
			issues = append(issues, Issue{Level: IssueError, Path: path, Field: "timeout_ms", Message: "must be >= 0"})
		}
	}

	if len(issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: issues}
}

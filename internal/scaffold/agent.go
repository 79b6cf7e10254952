package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

var agentNamePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

type AgentTemplateOptions struct {
	Name        string
	Role        string
	Provider    string
	Model       string
	Description string
	Force       bool
}

// CreateAgentFile renders a new agent config under <workspace>/agents.
// Refuses to overwrite an existing file unless Force is set.
func CreateAgentFile(dir string, opts AgentTemplateOptions) (string, error) {
	name := strings.TrimSpace(opts.Name)
	if name == "" {
		return "", fmt.Errorf("agent name is required")
	}
	if !agentNamePattern.MatchString(name) {
		return "", fmt.Errorf("invalid agent name %q (use letters, numbers, _ or -)", name)
	}

	agentsDir := filepath.Join(dir, "agents")
	if err := os.MkdirAll(agentsDir, 0o755); err != nil {
		return "", fmt.Errorf("create %s: %w", agentsDir, err)
	}
	outPath := filepath.Join(agentsDir, name+".yaml")
	if !opts.Force {
		if _, err := os.Stat(outPath); err == nil {
			return "", fmt.Errorf("%s already exists (use --force to overwrite)", outPath)
		}
	}

	if err := os.WriteFile(outPath, []byte(renderAgentTemplate(opts)), 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", outPath, err)
	}
	return outPath, nil
}

func renderAgentTemplate(opts AgentTemplateOptions) string {
	name := strings.TrimSpace(opts.Name)
	role := strings.TrimSpace(opts.Role)
	if role == "" {
		role = "assistant"
	}
	desc := strings.TrimSpace(opts.Description)
	if desc == "" {
		desc = "User-defined agent"
	}
	model := strings.TrimSpace(opts.Model)
	if model == "" {
		model = "mock-small"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "name: %s\n", name)
	fmt.Fprintf(&b, "role: %s\n", role)
	fmt.Fprintf(&b, "description: %s\n", yamlScalar(desc))
	if p := strings.TrimSpace(opts.Provider); p != "" {
		fmt.Fprintf(&b, "provider: %s\n", p)
	} else {
		b.WriteString("# provider: your_provider_name  # optional if hearth.yaml has default_provider\n")
	}
	fmt.Fprintf(&b, "model: %s\n", model)
	b.WriteString("# temperature: 0.7\n")
	b.WriteString("# max_tokens: 4096\n")
	b.WriteString("# system_prompt: |\n")
	fmt.Fprintf(&b, "#   You are the %s agent for this household.\n", name)
	return b.String()
}

func yamlScalar(s string) string {
	if s == "" {
		return `""`
	}
	s = strings.ReplaceAll(s, `"`, `\"`)
	return `"` + s + `"`
}

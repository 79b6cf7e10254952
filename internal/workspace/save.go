package workspace

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

func SaveRootConfig(dir string, root RootConfig) error {
	if root.Version <= 0 {
		root.Version = 1
	}
	b, err := yaml.Marshal(&root)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", RootConfigFile, err)
	}
	rootPath := filepath.Join(dir, RootConfigFile)
	if err := os.WriteFile(rootPath, b, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", rootPath, err)
	}
	return nil
}

// SaveAgent writes an agent definition to agents/<name>.yaml and returns the
// path written.
func SaveAgent(dir string, a AgentConfig) (string, error) {
	if a.Name == "" {
		return "", fmt.Errorf("agent name is required")
	}
	b, err := yaml.Marshal(&a)
	if err != nil {
		return "", fmt.Errorf("marshal agent %s: %w", a.Name, err)
	}
	agentsDir := filepath.Join(dir, "agents")
	if err := os.MkdirAll(agentsDir, 0o755); err != nil {
		return "", fmt.Errorf("create %s: %w", agentsDir, err)
	}
	path := filepath.Join(agentsDir, a.Name+".yaml")
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}

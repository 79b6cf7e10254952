package workspace

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

const RootConfigFile = "hearth.yaml"

// Load reads hearth.yaml plus every agent definition under agents/.
func Load(dir string) (*Workspace, error) {
	rootPath := filepath.Join(dir, RootConfigFile)
	b, err := os.ReadFile(rootPath)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", rootPath, err)
	}

	var root RootConfig
	if err := yaml.Unmarshal(b, &root); err != nil {
		return nil, fmt.Errorf("parse %s: %w", rootPath, err)
	}
	if root.Version == 0 {
		root.Version = 1
	}

	agents, agentFiles, err := loadAgents(filepath.Join(dir, "agents"))
	if err != nil {
		return nil, err
	}

	return &Workspace{
		Root:       root,
		Agents:     agents,
		AgentFiles: agentFiles,
	}, nil
}

func loadAgents(dir string) ([]AgentConfig, map[string]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, map[string]string{}, nil
		}
		return nil, nil, fmt.Errorf("read dir %s: %w", dir, err)
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	agents := make([]AgentConfig, 0, len(entries))
	files := map[string]string{}
	for _, ent := range entries {
		if ent.IsDir() {
			continue
		}
		name := ent.Name()
		if strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") {
			continue
		}
		ext := strings.ToLower(filepath.Ext(name))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		path := filepath.Join(dir, name)
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, nil, fmt.Errorf("read %s: %w", path, err)
		}
		var a AgentConfig
		if err := yaml.Unmarshal(b, &a); err != nil {
			return nil, nil, fmt.Errorf("parse %s: %w", path, err)
		}
		agents = append(agents, a)
		files[a.Name] = path
	}
	return agents, files, nil
}

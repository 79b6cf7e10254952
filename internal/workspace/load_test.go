package workspace

import (
	"os"
	"path/filepath"
	"testing"
)

func writeWorkspace(t *testing.T, root string, agents map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, RootConfigFile), []byte(root), 0o644); err != nil {
		t.Fatal(err)
	}
	if len(agents) > 0 {
		if err := os.MkdirAll(filepath.Join(dir, "agents"), 0o755); err != nil {
			t.Fatal(err)
		}
		for name, content := range agents {
			if err := os.WriteFile(filepath.Join(dir, "agents", name), []byte(content), 0o644); err != nil {
				t.Fatal(err)
			}
		}
	}
	return dir
}

func TestLoadWorkspace(t *testing.T) {
	dir := writeWorkspace(t, `
version: 1
default_provider: local_mock
providers:
  - name: local_mock
    type: mock
    model: mock-small
`, map[string]string{
		"homework.yaml": "name: homework\nrole: homework\nmodel: mock-small\ntemperature: 0.4\n",
		"email.yml":     "name: email\nrole: email\n",
		"_draft.yaml":   "name: draft\n",
		".hidden.yaml":  "name: hidden\n",
		"notes.txt":     "not an agent",
	})

	w, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := len(w.Agents); got != 2 {
		t.Fatalf("expected 2 agents (dotfiles, underscores and non-yaml skipped), got %d", got)
	}
	// Deterministic order: directory entries are sorted by filename.
	if w.Agents[0].Name != "email" || w.Agents[1].Name != "homework" {
		t.Fatalf("unexpected agent order: %q, %q", w.Agents[0].Name, w.Agents[1].Name)
	}

	a, ok := w.Agent("homework")
	if !ok {
		t.Fatal("homework agent not found")
	}
	if a.Temperature == nil || *a.Temperature != 0.4 {
		t.Fatalf("unexpected temperature: %v", a.Temperature)
	}

	pc, ok := w.Provider(a)
	if !ok {
		t.Fatal("default provider not resolved")
	}
	if pc.Name != "local_mock" || pc.Type != "mock" {
		t.Fatalf("unexpected provider: %+v", pc)
	}
}

func TestLoadMissingRootConfig(t *testing.T) {
	if _, err := Load(t.TempDir()); err == nil {
		t.Fatal("expected error for missing root config")
	}
}

func TestLoadMissingAgentsDirIsFine(t *testing.T) {
	dir := writeWorkspace(t, "version: 1\nproviders: []\n", nil)
	w, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(w.Agents) != 0 {
		t.Fatalf("expected no agents, got %d", len(w.Agents))
	}
}

func TestLoadDefaultsVersion(t *testing.T) {
	dir := writeWorkspace(t, "providers: []\n", nil)
	w, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if w.Root.Version != 1 {
		t.Fatalf("expected version default 1, got %d", w.Root.Version)
	}
}

func TestSaveAgentRoundTrip(t *testing.T) {
	dir := t.TempDir()
	temp := 0.2
	path, err := SaveAgent(dir, AgentConfig{Name: "policy", Role: "policy", Model: "mock-small", Temperature: &temp})
	if err != nil {
		t.Fatalf("SaveAgent: %v", err)
	}
	if filepath.Base(path) != "policy.yaml" {
		t.Fatalf("unexpected path %s", path)
	}

	w, err := Load(dir)
	if err == nil {
		t.Fatal("expected load to fail without root config")
	}
	_ = w

	if err := SaveRootConfig(dir, RootConfig{Providers: []ProviderConfig{{Name: "m", Type: "mock"}}, DefaultProvider: "m"}); err != nil {
		t.Fatalf("SaveRootConfig: %v", err)
	}
	w, err = Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	a, ok := w.Agent("policy")
	if !ok {
		t.Fatal("policy agent not found after save")
	}
	if a.Temperature == nil || *a.Temperature != 0.2 {
		t.Fatalf("temperature did not round-trip: %v", a.Temperature)
	}
}

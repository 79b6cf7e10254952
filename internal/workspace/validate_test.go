package workspace

import "testing"

func floatPtr(f float64) *float64 { return &f }

func validWorkspace() *Workspace {
	return &Workspace{
		Root: RootConfig{
			Version:         1,
			DefaultProvider: "local_mock",
			Providers: []ProviderConfig{
				{Name: "local_mock", Type: "mock", Model: "mock-small"},
			},
		},
		Agents: []AgentConfig{
			{Name: "homework", Role: "homework", Model: "mock-small"},
		},
		AgentFiles: map[string]string{"homework": "agents/homework.yaml"},
	}
}

func issueFields(err *ValidationError) []string {
	if err == nil {
		return nil
	}
	fields := make([]string, 0, len(err.Issues))
	for _, it := range err.Issues {
		fields = append(fields, it.Field)
	}
	return fields
}

func requireField(t *testing.T, err *ValidationError, field string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected issue on %q, got none", field)
	}
	for _, it := range err.Issues {
		if it.Field == field {
			return
		}
	}
	t.Fatalf("expected issue on %q, got %v", field, issueFields(err))
}

func TestValidateCleanWorkspace(t *testing.T) {
	if err := Validate(validWorkspace()); err != nil {
		t.Fatalf("expected no issues, got %v", err.Issues)
	}
}

func TestValidateProviderIssues(t *testing.T) {
	w := validWorkspace()
	w.Root.Providers = append(w.Root.Providers,
		ProviderConfig{Name: "", Type: "mock"},
		ProviderConfig{Name: "local_mock", Type: "mock"},
		ProviderConfig{Name: "weird", Type: "carrier-pigeon"},
		ProviderConfig{Name: "remote", Type: "http"},
		ProviderConfig{Name: "slow", Type: "mock", TimeoutMS: -1},
	)

	err := Validate(w)
	requireField(t, err, "name")       // empty and duplicate
	requireField(t, err, "type")       // unsupported
	requireField(t, err, "base_url")   // http without base_url
	requireField(t, err, "timeout_ms") // negative
	if !err.HasErrors() {
		t.Fatal("expected hard errors")
	}
}

func TestValidateDefaultProviderReference(t *testing.T) {
	w := validWorkspace()
	w.Root.DefaultProvider = "ghost"
	requireField(t, Validate(w), "default_provider")
}

func TestValidateAgentIssues(t *testing.T) {
	w := validWorkspace()
	w.Agents = append(w.Agents,
		AgentConfig{Name: "homework"},                                  // duplicate
		AgentConfig{Name: "mystery", Provider: "ghost"},                // unknown provider
		AgentConfig{Name: "hot", Temperature: floatPtr(1.5)},           // out of range
		AgentConfig{Name: "cold", Temperature: floatPtr(-0.1)},         // out of range
		AgentConfig{Name: "broke", MaxTokens: -10},                     // negative budget
	)

	err := Validate(w)
	requireField(t, err, "name")
	requireField(t, err, "provider")
	requireField(t, err, "temperature")
	requireField(t, err, "max_tokens")
}

func TestValidateUnknownRoleIsWarningOnly(t *testing.T) {
	w := validWorkspace()
	w.Agents = append(w.Agents, AgentConfig{Name: "butler", Role: "butler"})

	err := Validate(w)
	if err == nil {
		t.Fatal("expected a warning issue")
	}
	if err.HasErrors() {
		t.Fatalf("unknown role should warn, not error: %v", err.Issues)
	}
}

func TestValidateAgentWithoutProviderOrDefault(t *testing.T) {
	w := validWorkspace()
	w.Root.DefaultProvider = ""
	requireField(t, Validate(w), "provider")
}

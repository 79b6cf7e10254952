// Package scaffold writes starter workspace files. Existing files are never
// overwritten by Init; only explicit --force paths may replace content.
package scaffold

import (
	"fmt"
	"os"
	"path/filepath"

	"hearth/internal/workspace"
)

const RootConfigTemplate = `version: 1
default_provider: local_mock
providers:
  - name: local_mock
    type: mock
    model: mock-small
    timeout_ms: 3000
  # - name: anthropic
  #   type: anthropic
  #   model: claude-sonnet-4-20250514
  #   api_key_env: ANTHROPIC_API_KEY
  # - name: openai
  #   type: openai
  #   model: gpt-4o
  #   api_key_env: OPENAI_API_KEY
`

const HomeworkAgentTemplate = `name: homework
role: homework
description: Tracks assignments, due dates and study plans for the kids
model: mock-small
temperature: 0.4
`

const EmailAgentTemplate = `name: email
role: email
description: Drafts and reviews household email
model: mock-small
`

const PolicyAgentTemplate = `name: policy
role: policy
description: Interprets household rules (screen time, chores, allowances)
model: mock-small
temperature: 0.2
`

const CounselingAgentTemplate = `name: counseling
role: counseling
description: Prepares neutral family-counseling conversation prompts
model: mock-small
temperature: 0.8
`

const ReadmeTemplate = `# hearth workspace

Configuration lives in hearth.yaml; one agent per file under agents/.

Try:

    hearth validate
    hearth agents
    hearth send homework "what is due this week?"
    hearth chat counseling
`

// Init lays out a new workspace under dir with a mock default provider and
// one agent per built-in household role.
func Init(dir string) error {
	if err := os.MkdirAll(filepath.Join(dir, "agents"), 0o755); err != nil {
		return fmt.Errorf("create %s: %w", filepath.Join(dir, "agents"), err)
	}

	files := []struct {
		path    string
		content string
	}{
		{workspace.RootConfigFile, RootConfigTemplate},
		{filepath.Join("agents", "homework.yaml"), HomeworkAgentTemplate},
		{filepath.Join("agents", "email.yaml"), EmailAgentTemplate},
		{filepath.Join("agents", "policy.yaml"), PolicyAgentTemplate},
		{filepath.Join("agents", "counseling.yaml"), CounselingAgentTemplate},
		{"README.md", ReadmeTemplate},
	}
	for _, f := range files {
		if err := writeIfMissing(filepath.Join(dir, f.path), f.content); err != nil {
			return err
		}
	}
	return nil
}

func writeIfMissing(path, content string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

package main

import (
	"flag"
	"fmt"

	"hearth/internal/config"
	"hearth/internal/scaffold"
	"hearth/internal/workspace"
)

// resolveWorkspaceDir prefers the flag, then HEARTH_WORKSPACE, then the
// current directory.
func resolveWorkspaceDir(flagVal string, env config.Env) string {
	if flagVal != "" {
		return flagVal
	}
	if env.Workspace != "" {
		return env.Workspace
	}
	return "."
}

// openWorkspace loads and validates. Warnings are printed but do not fail
// the command; hard errors do.
func openWorkspace(dir string) (*workspace.Workspace, error) {
	w, err := workspace.Load(dir)
	if err != nil {
		return nil, err
	}
	if verr := workspace.Validate(w); verr != nil {
		for _, issue := range verr.Issues {
			fmt.Println(issue)
		}
		if verr.HasErrors() {
			return nil, verr
		}
	}
	return w, nil
}

func cmdInit(args []string) error {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)
	dirFlag := fs.String("workspace", "", "workspace directory (default: current dir)")
	if _, err := parseFlagsLoose(fs, args); err != nil {
		return err
	}
	env, err := config.FromEnv()
	if err != nil {
		return err
	}
	dir := resolveWorkspaceDir(*dirFlag, env)
	if err := scaffold.Init(dir); err != nil {
		return err
	}
	fmt.Printf("initialized workspace in %s\n", dir)
	fmt.Println("next: hearth validate && hearth send homework \"what is due this week?\"")
	return nil
}

func cmdValidate(args []string) error {
	fs := flag.NewFlagSet("validate", flag.ContinueOnError)
	dirFlag := fs.String("workspace", "", "workspace directory")
	if _, err := parseFlagsLoose(fs, args); err != nil {
		return err
	}
	env, err := config.FromEnv()
	if err != nil {
		return err
	}
	dir := resolveWorkspaceDir(*dirFlag, env)

	w, err := workspace.Load(dir)
	if err != nil {
		return err
	}
	verr := workspace.Validate(w)
	if verr == nil {
		fmt.Printf("ok: %d provider(s), %d agent(s)\n", len(w.Root.Providers), len(w.Agents))
		return nil
	}
	for _, issue := range verr.Issues {
		fmt.Println(issue)
	}
	if verr.HasErrors() {
		return verr
	}
	fmt.Printf("ok with warnings: %d provider(s), %d agent(s)\n", len(w.Root.Providers), len(w.Agents))
	return nil
}

func cmdAgents(args []string) error {
	fs := flag.NewFlagSet("agents", flag.ContinueOnError)
	dirFlag := fs.String("workspace", "", "workspace directory")
	if _, err := parseFlagsLoose(fs, args); err != nil {
		return err
	}
	env, err := config.FromEnv()
	if err != nil {
		return err
	}
	w, err := openWorkspace(resolveWorkspaceDir(*dirFlag, env))
	if err != nil {
		return err
	}

	if len(w.Agents) == 0 {
		fmt.Println("no agents configured (run: hearth init)")
		return nil
	}
	for _, a := range w.Agents {
		provider := a.Provider
		if provider == "" {
			provider = w.Root.DefaultProvider + " (default)"
		}
		fmt.Printf("%-14s role=%-11s provider=%-22s model=%s\n", a.Name, a.Role, provider, a.Model)
		if a.Description != "" {
			fmt.Printf("               %s\n", a.Description)
		}
	}
	return nil
}

func cmdAgent(args []string) error {
	if len(args) == 0 || args[0] != "create" {
		return fmt.Errorf("usage: hearth agent create [--role ROLE] [--provider NAME] [--model MODEL] [--force] <name>")
	}
	fs := flag.NewFlagSet("agent create", flag.ContinueOnError)
	dirFlag := fs.String("workspace", "", "workspace directory")
	role := fs.String("role", "assistant", "agent role (homework, email, policy, counseling, assistant)")
	provider := fs.String("provider", "", "provider name (optional with default_provider)")
	model := fs.String("model", "", "model identifier")
	description := fs.String("description", "", "one-line description")
	force := fs.Bool("force", false, "overwrite an existing agent file")
	rest, err := parseFlagsLoose(fs, args[1:])
	if err != nil {
		return err
	}
	if len(rest) != 1 {
		return fmt.Errorf("usage: hearth agent create [flags] <name>")
	}
	env, err := config.FromEnv()
	if err != nil {
		return err
	}

	path, err := scaffold.CreateAgentFile(resolveWorkspaceDir(*dirFlag, env), scaffold.AgentTemplateOptions{
		Name:        rest[0],
		Role:        *role,
		Provider:    *provider,
		Model:       *model,
		Description: *description,
		Force:       *force,
	})
	if err != nil {
		return err
	}
	fmt.Printf("created %s\n", path)
	return nil
}

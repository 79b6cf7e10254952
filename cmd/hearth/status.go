package main

import (
	"flag"
	"fmt"

	"hearth/internal/config"
	"hearth/internal/logging"
)

// cmdStatus instantiates the named agents and prints their status snapshots.
// Nothing is started, so uptime reads zero; the point is to check that every
// agent can actually be wired to its provider.
func cmdStatus(args []string) error {
	fs := flag.NewFlagSet("status", flag.ContinueOnError)
	dirFlag := fs.String("workspace", "", "workspace directory")
	rest, err := parseFlagsLoose(fs, args)
	if err != nil {
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

	names := make([]string, 0, len(w.Agents))
	if len(rest) > 0 {
		names = rest
	} else {
		for _, cfg := range w.Agents {
			names = append(names, cfg.Name)
		}
	}
	if len(names) == 0 {
		fmt.Println("no agents configured (run: hearth init)")
		return nil
	}

	statuses := make([]any, 0, len(names))
	for _, name := range names {
		a, err := buildAgent(w, env, name, logging.Nop())
		if err != nil {
			return fmt.Errorf("agent %s: %w", name, err)
		}
		statuses = append(statuses, a.Status())
	}
	return printJSON(statuses)
}

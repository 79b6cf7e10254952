package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"hearth/internal/agent"
	"hearth/internal/config"
	"hearth/internal/llm"
	"hearth/internal/logging"
	"hearth/internal/workspace"
)

const defaultRequestTimeout = 120 * time.Second

// buildAgent wires one configured agent to its provider with the credential
// resolved from the environment.
func buildAgent(w *workspace.Workspace, env config.Env, name string, logger *zap.Logger) (*agent.Agent, error) {
	cfg, ok := w.Agent(name)
	if !ok {
		return nil, fmt.Errorf("unknown agent %q (see: hearth agents)", name)
	}
	pc, ok := w.Provider(cfg)
	if !ok {
		return nil, fmt.Errorf("agent %q has no resolvable provider", name)
	}
	provider, err := llm.New(pc, env.ResolveAPIKey("", pc))
	if err != nil {
		return nil, err
	}
	if env.Model != "" {
		cfg.Model = env.Model
	}
	return agent.New(cfg, provider, logger)
}

func requestContext(cfg workspace.AgentConfig) (context.Context, context.CancelFunc) {
	timeout := defaultRequestTimeout
	if cfg.TimeoutMS > 0 {
		timeout = time.Duration(cfg.TimeoutMS) * time.Millisecond
	}
	return context.WithTimeout(context.Background(), timeout)
}

func cmdSend(args []string) error {
	fs := flag.NewFlagSet("send", flag.ContinueOnError)
	dirFlag := fs.String("workspace", "", "workspace directory")
	kind := fs.String("kind", "query", "message kind (query, command, proposal, event, report)")
	topic := fs.String("topic", "", "topic hint for report messages")
	from := fs.String("from", "cli", "sender identifier")
	verbose := fs.Bool("verbose", false, "debug logging")
	rest, err := parseFlagsLoose(fs, args)
	if err != nil {
		return err
	}
	if len(rest) < 2 {
		return fmt.Errorf("usage: hearth send [flags] <agent> <payload>")
	}
	env, err := config.FromEnv()
	if err != nil {
		return err
	}
	logger, err := logging.New(*verbose || env.Verbose)
	if err != nil {
		return err
	}
	defer logger.Sync()

	w, err := openWorkspace(resolveWorkspaceDir(*dirFlag, env))
	if err != nil {
		return err
	}
	a, err := buildAgent(w, env, rest[0], logger)
	if err != nil {
		return err
	}

	a.Start()
	defer a.Stop()

	msg := agent.NewMessage(*from, a.ID(), agent.Kind(*kind), strings.Join(rest[1:], " "))
	if *topic != "" {
		msg.Metadata = map[string]string{"topic": *topic}
	}

	ctx, cancel := requestContext(mustAgentConfig(w, rest[0]))
	defer cancel()

	resp, err := a.ProcessMessage(ctx, msg)
	if err != nil {
		return err
	}
	return printJSON(resp)
}

func cmdChat(args []string) error {
	fs := flag.NewFlagSet("chat", flag.ContinueOnError)
	dirFlag := fs.String("workspace", "", "workspace directory")
	verbose := fs.Bool("verbose", false, "debug logging")
	rest, err := parseFlagsLoose(fs, args)
	if err != nil {
		return err
	}
	if len(rest) != 1 {
		return fmt.Errorf("usage: hearth chat [flags] <agent>")
	}
	env, err := config.FromEnv()
	if err != nil {
		return err
	}
	logger, err := logging.New(*verbose || env.Verbose)
	if err != nil {
		return err
	}
	defer logger.Sync()

	w, err := openWorkspace(resolveWorkspaceDir(*dirFlag, env))
	if err != nil {
		return err
	}
	a, err := buildAgent(w, env, rest[0], logger)
	if err != nil {
		return err
	}
	cfg := mustAgentConfig(w, rest[0])

	a.Start()
	defer a.Stop()

	fmt.Printf("chatting with %s (%s). Type 'exit' to leave.\n", a.Name(), a.Role())
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" {
			break
		}

		ctx, cancel := requestContext(cfg)
		resp, err := a.ProcessMessage(ctx, agent.NewMessage("chat", a.ID(), agent.KindQuery, line))
		cancel()
		if err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			continue
		}
		printAnalysis(resp.Data)
	}
	return scanner.Err()
}

func printAnalysis(data any) {
	an, ok := data.(agent.Analysis)
	if !ok {
		printJSON(data)
		return
	}
	fmt.Println(an.Text)
	for _, rec := range an.Recommendations {
		fmt.Println("  -", rec)
	}
}

func mustAgentConfig(w *workspace.Workspace, name string) workspace.AgentConfig {
	cfg, _ := w.Agent(name)
	return cfg
}

func printJSON(v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	fmt.Println(string(b))
	return nil
}

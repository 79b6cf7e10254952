package main

import (
	"fmt"
	"os"
)

var version = "0.1.0-dev"

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) == 0 {
		printUsage()
		return nil
	}

	switch args[0] {
	case "help", "-h", "--help":
		printUsage()
		return nil
	case "version", "--version":
		fmt.Println("hearth", version)
		return nil
	case "init":
		return cmdInit(args[1:])
	case "validate":
		return cmdValidate(args[1:])
	case "agents":
		return cmdAgents(args[1:])
	case "agent":
		return cmdAgent(args[1:])
	case "send":
		return cmdSend(args[1:])
	case "chat":
		return cmdChat(args[1:])
	case "status":
		return cmdStatus(args[1:])
	default:
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func printUsage() {
	fmt.Println("hearth - household assistant agents over hosted LLMs")
	fmt.Println("")
	fmt.Println("Usage:")
	fmt.Println("  hearth init [--workspace DIR]")
	fmt.Println("  hearth validate [--workspace DIR]")
	fmt.Println("  hearth agents [--workspace DIR]")
	fmt.Println("  hearth agent create [--workspace DIR] [--role ROLE] [--provider NAME] [--model MODEL] [--description TEXT] [--force] <name>")
	fmt.Println(`  hearth send [--workspace DIR] [--kind query|command|proposal|event|report] [--topic TOPIC] [--verbose] <agent> <payload>`)
	fmt.Println("  hearth chat [--workspace DIR] [--verbose] <agent>")
	fmt.Println("  hearth status [--workspace DIR] [<agent>]")
	fmt.Println("  hearth version")
}

package main

import (
	"context"
	"fmt"
	"io"
	"os"
)

// streams carries the process I/O so commands can be run from tests
type streams struct {
	in  io.Reader
	out io.Writer
	err io.Writer
}

func main() {
	ctx := context.Background()
	os.Exit(run(ctx, os.Args[1:], streams{in: os.Stdin, out: os.Stdout, err: os.Stderr}))
}

func run(ctx context.Context, args []string, st streams) int {
	if len(args) == 0 {
		return runShell(ctx, nil, st)
	}

	command := args[0]

	// Dispatch to subcommand
	switch command {
	case "shell":
		return runShell(ctx, args[1:], st)
	case "list":
		return runList(ctx, args[1:], st)
	case "show":
		return runShow(ctx, args[1:], st)
	case "verify":
		return runVerify(ctx, args[1:], st)
	case "help", "-h", "--help":
		printUsage(st.out)
		return 0
	default:
		fmt.Fprintf(st.err, "Unknown command: %s\n\n", command)
		printUsage(st.err)
		return 1
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `cookbook - Record and look up cooking recipes

Usage:
  cookbook [command] [options]

Commands:
  shell    Interactive recipe manager (default)
  list     List the recipes in a recipe book
  show     Show one recipe from a recipe book
  verify   Verify a recipe book's detached OpenPGP signature

Use "cookbook <command> --help" for more information about a command.`)
}

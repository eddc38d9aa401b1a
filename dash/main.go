// Command dash displays a brokerage account dashboard.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"path"

	"github.com/etnz/dashboard/cmd"
	"github.com/google/subcommands"
)

func main() {
	// answers shell completion requests, and exits, when invoked by the shell.
	cmd.Completion().Complete("dash")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	os.Exit(int(commander.Execute(ctx)))
}

package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/dashboard/docs"
	"github.com/google/subcommands"
)

type topicCmd struct{}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "show documentation" }
func (*topicCmd) Usage() string {
	return `dash topic [<topic>...]

  Show the documentation of the given topics, the list of topics by default.
`
}

func (c *topicCmd) SetFlags(f *flag.FlagSet) {}

func (c *topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	topics := f.Args()
	if len(topics) == 0 {
		topics = []string{"readme"}
	}
	doc, err := docs.Topics(topics...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading doc: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(doc)
	return subcommands.ExitSuccess
}

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"

	app "github.com/rocketscienceinc/voice-tictactoe/internal"
)

type replayCommand struct {
	configPath string
	file       string
}

func (*replayCommand) Name() string     { return "replay" }
func (*replayCommand) Synopsis() string { return "Replay recorded tool calls and print the replies" }
func (*replayCommand) Usage() string {
	return `replay [-config path] [-file calls.jsonl]

Reads one tool_call frame per line (stdin when -file is not set) and
prints every reply frame as JSON.
`
}

func (c *replayCommand) SetFlags(flags *flag.FlagSet) {
	flags.StringVar(&c.configPath, "config", defaultConfigPath, "path to config.yml")
	flags.StringVar(&c.file, "file", "", "newline-delimited tool calls, stdin if empty")
}

func (c *replayCommand) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	conf := initConfig(c.configPath)
	// stdout carries the replies
	logger := initLogger(conf, os.Stderr)

	var in io.Reader = os.Stdin
	if c.file != "" {
		f, err := os.Open(c.file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "open %s: %v\n", c.file, err)
			return subcommands.ExitFailure
		}
		defer f.Close()

		in = f
	}

	if err := app.RunReplay(ctx, logger, conf, in, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "replay failed: %v\n", err)
		return subcommands.ExitFailure
	}

	return subcommands.ExitSuccess
}

package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	app "github.com/rocketscienceinc/voice-tictactoe/internal"
)

type serveCommand struct {
	configPath string
}

func (*serveCommand) Name() string     { return "serve" }
func (*serveCommand) Synopsis() string { return "Serve the voice tool websocket and the HTTP API" }
func (*serveCommand) Usage() string {
	return `serve [-config path]
`
}

func (c *serveCommand) SetFlags(flags *flag.FlagSet) {
	flags.StringVar(&c.configPath, "config", defaultConfigPath, "path to config.yml")
}

func (c *serveCommand) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	conf := initConfig(c.configPath)
	logger := initLogger(conf, os.Stdout)

	if err := app.RunApp(logger, conf); err != nil {
		fmt.Fprintf(os.Stderr, "app run failed: %v\n", err)
		return subcommands.ExitFailure
	}

	return subcommands.ExitSuccess
}

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/subcommands"

	"github.com/rocketscienceinc/voice-tictactoe/internal/config"
)

const defaultConfigPath = "./config.yml"

// main - is the entry point of the application. It registers the commands and runs the one asked for.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(&serveCommand{}, "")
	subcommands.Register(&replayCommand{}, "")

	flag.Parse()

	os.Exit(int(subcommands.Execute(context.Background())))
}

// initialize config. A missing file falls back to environment and defaults.
func initConfig(path string) *config.Config {
	if _, err := os.Stat(path); err != nil {
		conf, envErr := config.LoadEnv()
		if envErr != nil {
			panic(fmt.Errorf("failed to load config: %w", envErr))
		}
		return conf
	}

	return config.MustLoad(path)
}

// initialize logger.
func initLogger(conf *config.Config, w io.Writer) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

package main

import (
	"context"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/samcharles93/chartok/internal/logger"
)

var (
	vocabPath string
	logLevel  string
	logFormat string
)

func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "log level (debug, info, warn, error)",
			Value:       "info",
			Destination: &logLevel,
		},
		&cli.StringFlag{
			Name:        "log-format",
			Usage:       "log format (pretty, text, json)",
			Value:       "pretty",
			Destination: &logFormat,
		},
	}
}

func vocabFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:        "vocab",
		Aliases:     []string{"v"},
		Usage:       "path to a saved vocabulary file",
		Required:    true,
		Destination: &vocabPath,
	}
}

// setupLogger builds the logger from flags and config file defaults and
// stores it in the context for every command.
func setupLogger(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	cfg := LoadConfig()
	if cfg.LogLevel != "" && !cmd.IsSet("log-level") {
		logLevel = cfg.LogLevel
	}
	if cfg.LogFormat != "" && !cmd.IsSet("log-format") {
		logFormat = cfg.LogFormat
	}

	level := logger.ParseLevel(logLevel)
	var log logger.Logger
	switch logFormat {
	case "json":
		log = logger.JSON(os.Stderr, level)
	case "text":
		log = logger.Text(os.Stderr, level)
	default:
		log = logger.Pretty(os.Stderr, level)
	}
	return logger.WithContext(ctx, log), nil
}

package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/samcharles93/chartok/internal/logger"
	"github.com/samcharles93/chartok/internal/tokenizer"
)

func fitCmd() *cli.Command {
	var (
		text       string
		files      []string
		out        string
		minFreq    int64
		noSpecials bool
	)

	return &cli.Command{
		Name:  "fit",
		Usage: "Build a vocabulary from a corpus and save it",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "text",
				Aliases:     []string{"t"},
				Usage:       "inline corpus text",
				Destination: &text,
			},
			&cli.StringSliceFlag{
				Name:        "file",
				Aliases:     []string{"f"},
				Usage:       "corpus file path (repeatable, order preserved)",
				Destination: &files,
			},
			&cli.StringFlag{
				Name:        "out",
				Aliases:     []string{"o"},
				Usage:       "destination vocabulary file",
				Value:       "vocab.json",
				Destination: &out,
			},
			&cli.Int64Flag{
				Name:        "min-freq",
				Aliases:     []string{"min_freq"},
				Usage:       "minimum character frequency to keep",
				Value:       1,
				Destination: &minFreq,
			},
			&cli.BoolFlag{
				Name:        "no-specials",
				Usage:       "build without reserved <PAD>/<UNK> entries",
				Destination: &noSpecials,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			log := logger.FromContext(ctx)
			applyFitConfig(cmd, LoadConfig(), &minFreq, &noSpecials)

			var src tokenizer.Source
			switch {
			case cmd.IsSet("text") && len(files) > 0:
				return fmt.Errorf("--text and --file are mutually exclusive")
			case cmd.IsSet("text"):
				src = tokenizer.Text(text)
			case len(files) == 1:
				src = tokenizer.File(files[0])
			case len(files) > 1:
				src = tokenizer.Files(files)
			default:
				return fmt.Errorf("provide --text or at least one --file")
			}

			tok := tokenizer.New()
			if err := tok.Fit(src, !noSpecials, int(minFreq)); err != nil {
				return err
			}
			if err := tok.Save(out); err != nil {
				return err
			}
			size, err := tok.VocabSize()
			if err != nil {
				return err
			}
			log.Info("fitted vocabulary", "size", size, "min_freq", minFreq, "specials", !noSpecials, "out", out)
			return nil
		},
	}
}

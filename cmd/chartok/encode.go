package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/urfave/cli/v3"

	"github.com/samcharles93/chartok/internal/tokenizer"
)

func encodeCmd() *cli.Command {
	var (
		text   string
		strict bool
		asJSON bool
	)

	return &cli.Command{
		Name:  "encode",
		Usage: "Encode text to token ids using a saved vocabulary",
		Flags: []cli.Flag{
			vocabFlag(),
			&cli.StringFlag{
				Name:        "text",
				Aliases:     []string{"t"},
				Usage:       "text to encode",
				Required:    true,
				Destination: &text,
			},
			&cli.BoolFlag{
				Name:        "strict",
				Usage:       "fail on characters outside the vocabulary instead of using <UNK>",
				Destination: &strict,
			},
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "print ids as a JSON array",
				Destination: &asJSON,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			tok, err := tokenizer.FromFile(vocabPath)
			if err != nil {
				return err
			}
			ids, err := tok.Encode(text, strict)
			if err != nil {
				return err
			}
			if asJSON {
				out, err := json.Marshal(ids)
				if err != nil {
					return err
				}
				fmt.Println(string(out))
				return nil
			}
			parts := make([]string, len(ids))
			for i, id := range ids {
				parts[i] = strconv.Itoa(id)
			}
			fmt.Println(strings.Join(parts, " "))
			return nil
		},
	}
}

package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/samcharles93/chartok/internal/tokenizer"
)

func decodeCmd() *cli.Command {
	var (
		idsFlag      string
		keepSpecials bool
	)

	return &cli.Command{
		Name:      "decode",
		Usage:     "Decode token ids back to text using a saved vocabulary",
		ArgsUsage: "[id ...]",
		Flags: []cli.Flag{
			vocabFlag(),
			&cli.StringFlag{
				Name:        "ids",
				Usage:       "comma- or space-separated ids (alternative to positional args)",
				Destination: &idsFlag,
			},
			&cli.BoolFlag{
				Name:        "keep-specials",
				Usage:       "render <PAD>/<UNK> markers instead of dropping them",
				Destination: &keepSpecials,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			raw := cmd.Args().Slice()
			if idsFlag != "" {
				raw = strings.FieldsFunc(idsFlag, func(r rune) bool {
					return r == ',' || r == ' '
				})
			}
			if len(raw) == 0 {
				return fmt.Errorf("provide ids as arguments or via --ids")
			}
			ids := make([]int, 0, len(raw))
			for _, s := range raw {
				id, err := strconv.Atoi(s)
				if err != nil {
					return fmt.Errorf("parse id %q: %w", s, err)
				}
				ids = append(ids, id)
			}

			tok, err := tokenizer.FromFile(vocabPath)
			if err != nil {
				return err
			}
			text, err := tok.Decode(ids, !keepSpecials)
			if err != nil {
				return err
			}
			fmt.Println(text)
			return nil
		},
	}
}

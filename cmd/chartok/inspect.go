package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/samcharles93/chartok/internal/tokenizer"
)

func inspectCmd() *cli.Command {
	var entryLimit int64

	return &cli.Command{
		Name:  "inspect",
		Usage: "Inspect the contents of a saved vocabulary file",
		Flags: []cli.Flag{
			vocabFlag(),
			&cli.Int64Flag{
				Name:        "limit",
				Usage:       "limit entry listing (0 = no limit)",
				Value:       20,
				Destination: &entryLimit,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			tok, err := tokenizer.FromFile(vocabPath)
			if err != nil {
				return err
			}
			size, err := tok.VocabSize()
			if err != nil {
				return err
			}
			fmt.Printf("format:  %s\n", tokenizer.FormatVersion)
			fmt.Printf("size:    %d\n", size)
			if pad, ok := tok.PadID(); ok {
				fmt.Printf("pad_id:  %d\n", pad)
			} else {
				fmt.Println("pad_id:  (none)")
			}
			if unk, ok := tok.UnkID(); ok {
				fmt.Printf("unk_id:  %d\n", unk)
			} else {
				fmt.Println("unk_id:  (none)")
			}

			entries, err := tok.Entries()
			if err != nil {
				return err
			}
			shown := len(entries)
			if entryLimit > 0 && int(entryLimit) < shown {
				shown = int(entryLimit)
			}
			fmt.Printf("entries (%d of %d):\n", shown, len(entries))
			for _, e := range entries[:shown] {
				fmt.Printf("  %6d  %q\n", e.ID, e.Token)
			}
			if shown < len(entries) {
				fmt.Printf("  ... %d more (use --limit 0 to list all)\n", len(entries)-shown)
			}
			return nil
		},
	}
}

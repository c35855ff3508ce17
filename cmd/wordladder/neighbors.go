package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wordladder/internal/logger"
	"github.com/katalvlaran/wordladder/ladder"
)

func newNeighborsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "neighbors WORD",
		Short: "List lexicon words one letter away from WORD",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lex := a.openLexicon()
			words, err := ladder.NeighborsWith(args[0], lex, ladder.WithAlphabet(a.cfg.Alphabet))
			if err != nil {
				logger.Errorw("neighbor expansion failed",
					logger.FieldComponent, "neighbors",
					logger.FieldWord, args[0],
					"error", err)
				return fmt.Errorf("neighbors of %s: %w", args[0], err)
			}
			sort.Strings(words)
			for _, w := range words {
				fmt.Fprintln(cmd.OutOrStdout(), w)
			}
			return nil
		},
	}
}

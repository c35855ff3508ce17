package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wordladder/internal/logger"
	"github.com/katalvlaran/wordladder/ladder"
)

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check WORD WORD...",
		Short: "Verify that the given words form a ladder, and whether it is shortest",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			lex := a.openLexicon()
			from, to := args[0], args[len(args)-1]
			if err := ladder.Validate(args, from, to, lex); err != nil {
				logger.Errorw("not a ladder",
					logger.FieldComponent, "check",
					logger.FieldFrom, from,
					logger.FieldTo, to,
					"error", err)
				return err
			}

			steps := len(args) - 1
			res, err := ladder.Search(from, to, lex.OfLength(len(from)), a.cfg.SearchOptions()...)
			if err != nil {
				return fmt.Errorf("search %s → %s: %w", from, to, err)
			}
			switch {
			case res.Depth == steps:
				fmt.Fprintf(cmd.OutOrStdout(), "ok: %d step(s), shortest\n", steps)
			case res.Depth >= 0:
				fmt.Fprintf(cmd.OutOrStdout(), "ok: %d step(s), shortest is %d\n", steps, res.Depth)
			default:
				fmt.Fprintf(cmd.OutOrStdout(), "ok: %d step(s)\n", steps)
			}
			return nil
		},
	}
}

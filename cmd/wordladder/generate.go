package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wordladder/internal/config"
	"github.com/katalvlaran/wordladder/internal/logger"
	"github.com/katalvlaran/wordladder/ladder"
)

func newGenerateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "generate FROM TO",
		Aliases: []string{"gen"},
		Short:   "Print every shortest ladder from FROM to TO",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runGenerate(cmd, args[0], args[1])
		},
	}
	cmd.Flags().Int("max-depth", 0, "give up on ladders longer than this many steps (0 = no limit)")
	cmd.Flags().StringP("format", "f", "", "output format: braces, json or yaml (default braces)")
	cmd.Flags().Duration("timeout", 0, "abort the search after this long (0 = no limit)")

	return cmd
}

func (a *app) runGenerate(cmd *cobra.Command, from, to string) error {
	lex := a.openLexicon().OfLength(len(from))

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if a.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.cfg.Timeout)
		defer cancel()
	}

	opts := append(a.cfg.SearchOptions(),
		ladder.WithContext(ctx),
		ladder.WithOnLayer(func(depth, size int) {
			logger.Debugw("expanding layer", logger.FieldDepth, depth, logger.FieldSize, size)
		}),
	)
	if logger.ShouldLogTrace(a.verbosity) {
		opts = append(opts, ladder.WithOnExpand(func(word string, depth int) error {
			logger.Debugw("expanding word", logger.FieldWord, word, logger.FieldDepth, depth)
			return nil
		}))
	}

	start := time.Now()
	res, err := ladder.Search(from, to, lex, opts...)
	if err != nil {
		logger.Errorw("search failed",
			logger.FieldComponent, "generate",
			logger.FieldFrom, from,
			logger.FieldTo, to,
			"error", err)
		return fmt.Errorf("search %s → %s: %w", from, to, err)
	}
	logger.Infow("search finished",
		logger.FieldFrom, from,
		logger.FieldTo, to,
		logger.FieldCount, len(res.Paths),
		logger.FieldDepth, res.Depth,
		"explored", res.Explored,
		logger.FieldDurationMS, time.Since(start).Milliseconds())

	if !res.Found() && a.cfg.Format == config.FormatBraces {
		fmt.Fprintln(cmd.ErrOrStderr(), "no ladder found")
		return nil
	}

	return writePaths(cmd.OutOrStdout(), a.cfg.Format, res.Paths)
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/wordladder/internal/config"
	"github.com/katalvlaran/wordladder/internal/logger"
	"github.com/katalvlaran/wordladder/lexicon"
)

// app carries state resolved once per invocation.
type app struct {
	configFile string
	verbosity  int
	jsonLog    bool
	cfg        *config.Config
}

// flagKeys maps command-line flags onto configuration keys.
var flagKeys = map[string]string{
	"lexicon":   "lexicon",
	"max-depth": "max_depth",
	"format":    "format",
	"alphabet":  "alphabet",
	"timeout":   "timeout",
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "wordladder",
		Short: "Find every shortest word ladder between two words",
		Long: `wordladder finds every shortest sequence of words leading from one word
to another, changing exactly one letter per step. Every step must be a word
of the lexicon (one word per line).

Configuration is read from flags, WORDLADDER_* environment variables and an
optional config file (--config), in that order of precedence.

Examples:
  wordladder generate work play -l ./english.txt
  wordladder generate cat dog --format json
  wordladder neighbors cold
  wordladder check cat cot cog dog`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := logger.Initialize(a.verbosity, a.jsonLog); err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return a.loadConfig(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.configFile, "config", "", "config file (YAML, TOML or JSON)")
	root.PersistentFlags().StringP("lexicon", "l", "", "path of the word list (default ./english.txt)")
	root.PersistentFlags().String("alphabet", "", "letters tried at each position (default a-z)")
	root.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", "increase log verbosity (-v, -vv, -vvv)")
	root.PersistentFlags().BoolVar(&a.jsonLog, "json-log", false, "emit logs as JSON")

	root.AddCommand(newGenerateCmd(a))
	root.AddCommand(newNeighborsCmd(a))
	root.AddCommand(newCheckCmd(a))

	return root
}

// loadConfig resolves a.cfg, binding whichever known flags cmd carries.
func (a *app) loadConfig(cmd *cobra.Command) error {
	v, err := config.New(a.configFile)
	if err != nil {
		return err
	}
	if err := bindFlags(v, cmd); err != nil {
		return err
	}
	cfg, err := config.Load(v)
	if err != nil {
		return err
	}
	a.cfg = cfg
	logger.Debugw("configuration loaded",
		"lexicon", cfg.Lexicon,
		"format", cfg.Format,
		"max_depth", cfg.MaxDepth,
		"timeout", cfg.Timeout)

	return nil
}

func bindFlags(v *viper.Viper, cmd *cobra.Command) error {
	for flag, key := range flagKeys {
		f := cmd.Flags().Lookup(flag)
		if f == nil {
			continue
		}
		// only explicit flags override file and environment values
		if !f.Changed {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("failed to bind flag %s: %w", flag, err)
		}
	}
	return nil
}

// openLexicon reads the configured word list. An unreadable file degrades
// to an empty lexicon with a warning, so queries simply find no ladder.
func (a *app) openLexicon() *lexicon.Lexicon {
	lex, err := lexicon.Open(a.cfg.Lexicon)
	if err != nil {
		logger.Warnw("lexicon unavailable, continuing with an empty word list",
			logger.FieldFile, a.cfg.Lexicon,
			"error", err)
		return lexicon.New()
	}
	logger.Infow("lexicon loaded",
		logger.FieldFile, a.cfg.Lexicon,
		logger.FieldCount, lex.Len())

	return lex
}

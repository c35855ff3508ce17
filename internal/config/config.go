// Package config loads wordladder settings from defaults, an optional
// config file, WORDLADDER_* environment variables and command-line flags,
// in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/katalvlaran/wordladder/ladder"
)

// EnvPrefix namespaces environment variables (WORDLADDER_LEXICON, ...).
const EnvPrefix = "WORDLADDER"

// Output formats understood by the generate command.
const (
	FormatBraces = "braces"
	FormatJSON   = "json"
	FormatYAML   = "yaml"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the resolved configuration.
type Config struct {
	Lexicon  string        `mapstructure:"lexicon"`
	MaxDepth int           `mapstructure:"max_depth"`
	Format   string        `mapstructure:"format"`
	Alphabet string        `mapstructure:"alphabet"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

// SetDefaults configures default values for all keys.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("lexicon", "./english.txt")
	v.SetDefault("max_depth", 0)
	v.SetDefault("format", FormatBraces)
	v.SetDefault("alphabet", ladder.DefaultAlphabet)
	v.SetDefault("timeout", time.Duration(0))
}

// New returns a Viper instance with defaults and environment binding.
// If configFile is non-empty it is read; its type follows the extension.
func New(configFile string) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	SetDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
	}

	return v, nil
}

// Load unmarshals v and validates the result.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate rejects values the search or the printer cannot honour.
func (c *Config) Validate() error {
	switch c.Format {
	case FormatBraces, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("%w: unknown format %q (want %s, %s or %s)",
			ErrInvalidConfig, c.Format, FormatBraces, FormatJSON, FormatYAML)
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("%w: max_depth cannot be negative (%d)", ErrInvalidConfig, c.MaxDepth)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("%w: timeout cannot be negative (%s)", ErrInvalidConfig, c.Timeout)
	}
	if c.Lexicon == "" {
		return fmt.Errorf("%w: lexicon path is empty", ErrInvalidConfig)
	}

	return nil
}

// SearchOptions translates the configuration into ladder options.
func (c *Config) SearchOptions() []ladder.Option {
	return []ladder.Option{
		ladder.WithMaxDepth(c.MaxDepth),
		ladder.WithAlphabet(c.Alphabet),
	}
}

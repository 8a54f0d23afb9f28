package main

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/zephyrtronium/calculator"
)

// config holds the shell's settings. Fields left out of a config file keep
// their defaults, and flags given on the command line override both.
type config struct {
	// Banner is printed once before reading any input.
	Banner string `yaml:"banner"`
	// Prompt is printed after each result.
	Prompt string `yaml:"prompt"`
	// Format is the fmt verb for results. Empty means the session default.
	Format string `yaml:"format"`
	// MaxLen is the longest line evaluated, in characters. Zero or less means
	// no limit.
	MaxLen int `yaml:"maxlen"`
	// Echo prints each expression in postfix form before its result.
	Echo bool `yaml:"echo"`
	// Quiet suppresses the banner and prompts.
	Quiet bool `yaml:"quiet"`
}

func defaults() config {
	return config{
		Banner: "Enter the expressions :",
		Prompt: "Enter the expressions or type 'exit' to quit:",
		MaxLen: calculator.DefaultMaxLen,
	}
}

// loadConfig reads a YAML config file over cfg.
func loadConfig(name string, cfg *config) error {
	b, err := os.ReadFile(name)
	if err != nil {
		return errors.Wrap(err, "reading config")
	}
	if err := yaml.UnmarshalStrict(b, cfg); err != nil {
		return errors.Wrapf(err, "parsing config %s", name)
	}
	return nil
}

// sessionOptions converts the config to options for a calculator session.
func (cfg *config) sessionOptions() []calculator.SessionOption {
	return []calculator.SessionOption{
		calculator.Format(cfg.Format),
		calculator.MaxLen(cfg.MaxLen),
	}
}

package main

import (
	"flag"
	"io"
	"log"
	"os"

	"github.com/pkg/errors"

	"github.com/zephyrtronium/calculator"
)

func main() {
	log.SetFlags(0)
	var (
		inname, cfgname, verb, prompt string
		maxlen                        int
		quiet, echo, verbose          bool
	)
	flag.StringVar(&cfgname, "config", "", "YAML config file")
	flag.StringVar(&inname, "in", "", "input file (default stdin)")
	flag.StringVar(&verb, "fmt", "", "result formatting verb, e.g. %.3f (default shortest exact decimal)")
	flag.StringVar(&prompt, "prompt", defaults().Prompt, "prompt printed after each result")
	flag.IntVar(&maxlen, "max", calculator.DefaultMaxLen, "maximum line length in characters, or 0 for no limit")
	flag.BoolVar(&quiet, "q", false, "don't print the banner or prompts")
	flag.BoolVar(&echo, "echo", false, "print the postfix form of each expression")
	flag.BoolVar(&verbose, "v", false, "log token streams to stderr")
	flag.Parse()

	cfg := defaults()
	if cfgname != "" {
		if err := loadConfig(cfgname, &cfg); err != nil {
			log.Fatal(err)
		}
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "fmt":
			cfg.Format = verb
		case "prompt":
			cfg.Prompt = prompt
		case "max":
			cfg.MaxLen = maxlen
		case "q":
			cfg.Quiet = quiet
		case "echo":
			cfg.Echo = echo
		}
	})

	in, err := infile(inname)
	if err != nil {
		log.Fatal(err)
	}
	r := repl{
		sess: calculator.NewSession(cfg.sessionOptions()...),
		cfg:  cfg,
		out:  os.Stdout,
	}
	if verbose {
		r.log = log.New(os.Stderr, "calculator: ", 0)
	}
	err = r.run(in)
	in.Close()
	if err != nil {
		log.Fatal(err)
	}
}

// infile opens the named input file, or returns stdin if the name is empty
// or "-".
func infile(inname string) (io.ReadCloser, error) {
	if inname == "" || inname == "-" {
		return os.Stdin, nil
	}
	f, err := os.Open(inname)
	if err != nil {
		return nil, errors.Wrap(err, "opening input")
	}
	return f, nil
}

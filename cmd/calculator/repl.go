package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/pkg/errors"

	"github.com/zephyrtronium/calculator"
)

// exitCommand is the line which ends the loop. It is never evaluated.
const exitCommand = "exit"

type repl struct {
	sess *calculator.Session
	cfg  config
	out  io.Writer
	// log receives the postfix form of each line, if non-nil.
	log *log.Logger
}

// run reads lines from in and prints the result of each until EOF or the exit
// command. Lines of any length are read in full; the session decides whether
// they are too long.
func (r *repl) run(in io.Reader) error {
	rd := bufio.NewReader(in)
	r.say(r.cfg.Banner)
	for {
		line, err := rd.ReadString('\n')
		if line != "" {
			line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
			if line == exitCommand {
				return nil
			}
			r.line(line)
			r.say(r.cfg.Prompt)
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "reading input")
		}
	}
}

// line evaluates one line of input and prints its result.
func (r *repl) line(line string) {
	post, x, err := r.sess.Trace(line)
	if r.log != nil {
		if post == nil {
			r.log.Printf("%q: %v", line, err)
		} else {
			r.log.Printf("%q: %v", line, post)
		}
	}
	if post != nil && r.cfg.Echo {
		fmt.Fprintf(r.out, "%s : ", calculator.FormatPostfix(post))
	}
	res, _ := r.sess.Result(x, err)
	fmt.Fprintln(r.out, res)
}

func (r *repl) say(s string) {
	if r.cfg.Quiet || s == "" {
		return
	}
	fmt.Fprintln(r.out, s)
}

package main

import (
	"bytes"
	"io"
	"log"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zephyrtronium/calculator"
)

func runRepl(t *testing.T, cfg config, input string) string {
	t.Helper()
	var out bytes.Buffer
	r := repl{
		sess: calculator.NewSession(cfg.sessionOptions()...),
		cfg:  cfg,
		out:  &out,
	}
	require.NoError(t, r.run(strings.NewReader(input)))
	return out.String()
}

func TestRepl(t *testing.T) {
	out := runRepl(t, defaults(), "2+2\nans*10\n2+\nans\nexit\n1+1\n")
	want := strings.Join([]string{
		"Enter the expressions :",
		"4",
		"Enter the expressions or type 'exit' to quit:",
		"40",
		"Enter the expressions or type 'exit' to quit:",
		`Error evaluating expression: 2: operator "+" needs 2 operands but has 1`,
		"Enter the expressions or type 'exit' to quit:",
		"40",
		"Enter the expressions or type 'exit' to quit:",
		"",
	}, "\n")
	assert.Equal(t, want, out)
}

func TestReplQuiet(t *testing.T) {
	cfg := defaults()
	cfg.Quiet = true
	cases := []struct {
		name string
		in   string
		out  string
	}{
		{"eof", "1+2*3\n(1+2)*3", "7\n9\n"},
		{"crlf", "8/2/2\r\nexit\r\n", "2\n"},
		{"exitonly", "exit\n", ""},
		{"exitcase", "EXIT\n", "Error evaluating expression: invalid token at column 1: \"EXIT\"\n"},
		{"exitspace", " exit\n", "Error evaluating expression: invalid token at column 2: \"exit\"\n"},
		{"empty", "\n", "Error evaluating expression: 1: no expression\n"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.out, runRepl(t, cfg, c.in))
		})
	}
}

func TestReplEcho(t *testing.T) {
	cfg := defaults()
	cfg.Quiet = true
	cfg.Echo = true
	out := runRepl(t, cfg, "1+2*3\n(1\n2+\n")
	want := "1 2 3 * + : 7\n" +
		"Error evaluating expression: 1: open paren ( with no close paren\n" +
		"2 + : Error evaluating expression: 2: operator \"+\" needs 2 operands but has 1\n"
	assert.Equal(t, want, out)
}

func TestReplLog(t *testing.T) {
	cfg := defaults()
	cfg.Quiet = true
	var out, logs bytes.Buffer
	r := repl{
		sess: calculator.NewSession(),
		cfg:  cfg,
		out:  &out,
		log:  log.New(&logs, "", 0),
	}
	require.NoError(t, r.run(strings.NewReader("1-2\n$\n3*\n")))
	assert.Equal(t, "-1\nError evaluating expression: invalid token at column 1: \"$\"\nError evaluating expression: 2: operator \"*\" needs 2 operands but has 1\n", out.String())
	assert.Contains(t, logs.String(), `"1-2": [Num:1@1 Num:2@3 Op:-@2]`)
	assert.Contains(t, logs.String(), `"$": invalid token`)
	assert.Contains(t, logs.String(), `"3*": [Num:3@1 Op:*@2]`)
}

func TestReplLongLine(t *testing.T) {
	// Longer than a bufio.Scanner's default token limit.
	line := strings.Repeat("1+", 40000) + "1"
	cases := []struct {
		name string
		max  int
		out  string
	}{
		{"default", calculator.DefaultMaxLen, "Error evaluating expression: 4097: input of 80001 characters exceeds limit of 4096\n4\n"},
		{"nolimit", 0, "40001\n4\n"},
		{"raised", 100000, "40001\n4\n"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg := defaults()
			cfg.Quiet = true
			cfg.MaxLen = c.max
			assert.Equal(t, c.out, runRepl(t, cfg, line+"\n2+2\n"))
		})
	}
}

type failReader struct{ s string }

func (f *failReader) Read(p []byte) (int, error) {
	if f.s == "" {
		return 0, io.ErrClosedPipe
	}
	n := copy(p, f.s)
	f.s = f.s[n:]
	return n, nil
}

func TestReplReadError(t *testing.T) {
	cfg := defaults()
	cfg.Quiet = true
	var out bytes.Buffer
	r := repl{
		sess: calculator.NewSession(cfg.sessionOptions()...),
		cfg:  cfg,
		out:  &out,
	}
	err := r.run(&failReader{s: "1+1\n2*"})
	assert.ErrorIs(t, err, io.ErrClosedPipe)
	assert.Contains(t, err.Error(), "reading input")
	assert.Equal(t, "2\nError evaluating expression: 2: operator \"*\" needs 2 operands but has 1\n", out.String())
}

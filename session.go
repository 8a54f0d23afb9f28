package calculator

import (
	"fmt"
	"sync"
	"unicode/utf8"
)

// ErrorPrefix begins every error message returned by Session.Process.
const ErrorPrefix = "Error evaluating expression: "

// DefaultMaxLen is the default limit on the length of a Session's input, in
// runes.
const DefaultMaxLen = 4096

// Session evaluates expressions one line at a time, remembering the result of
// the last successful evaluation as ans. It is safe to use a Session
// concurrently; evaluations are serialized.
type Session struct {
	mu   sync.Mutex
	ans  float64
	verb string
	max  int
}

// NewSession creates a session with ans set to zero. The given options are
// applied in order.
func NewSession(opts ...SessionOption) *Session {
	s := Session{max: DefaultMaxLen}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt.sessionOption(&s)
	}
	return &s
}

// Eval evaluates a line of input. If it succeeds, the result becomes the new
// value of ans. If it fails, ans is unchanged.
func (s *Session) Eval(line string) (float64, error) {
	_, r, err := s.Trace(line)
	return r, err
}

// Trace evaluates a line of input like Eval and also returns the postfix form
// that was evaluated. The postfix form is nil if the line could not be
// converted; otherwise it is returned even if evaluation fails.
func (s *Session) Trace(line string) ([]Token, float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	post, err := s.postfix(line)
	if err != nil {
		return nil, 0, err
	}
	r, err := EvalPostfix(post)
	if err != nil {
		return post, 0, err
	}
	s.ans = r
	return post, r, nil
}

// Postfix tokenizes a line of input with the current value of ans and
// converts it to postfix order without evaluating it.
func (s *Session) Postfix(line string) ([]Token, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.postfix(line)
}

func (s *Session) postfix(line string) ([]Token, error) {
	if s.max > 0 {
		if n := utf8.RuneCountInString(line); n > s.max {
			return nil, &LengthError{Len: n, Max: s.max}
		}
	}
	toks, err := Tokenize(line, s.ans)
	if err != nil {
		return nil, err
	}
	return ToPostfix(toks)
}

// Process evaluates a line of input and formats the outcome. On success, the
// result is the formatted value and true. Otherwise, it is ErrorPrefix
// followed by a description of the error, and false.
func (s *Session) Process(line string) (string, bool) {
	return s.Result(s.Eval(line))
}

// Result formats the outcome of Eval or Trace the way Process does.
func (s *Session) Result(r float64, err error) (string, bool) {
	if err != nil {
		return ErrorPrefix + err.Error(), false
	}
	return s.Format(r), true
}

// Ans returns the result of the last successful evaluation.
func (s *Session) Ans() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ans
}

// Format formats a value the way Process does. Without a Format option, the
// result is the shortest decimal that parses back to x, using an exponent only
// for very large or small magnitudes, with infinities as "+Inf" and "-Inf".
func (s *Session) Format(x float64) string {
	if s.verb == "" {
		return fmtans(x)
	}
	return fmt.Sprintf(s.verb, x)
}

package calculator

// SessionOption is an option used when creating a session.
type SessionOption interface {
	sessionOption(*Session)
}

type (
	formatopt string
	maxlenopt int
	ansopt    float64
)

// Format sets the fmt verb used to format results, e.g. "%.3f". The verb is
// given a single float64 argument. An empty verb restores the default
// formatting.
func Format(verb string) SessionOption {
	return formatopt(verb)
}

func (o formatopt) sessionOption(s *Session) {
	s.verb = string(o)
}

// MaxLen sets the maximum length of input in runes. Zero or a negative value
// removes the limit.
func MaxLen(n int) SessionOption {
	return maxlenopt(n)
}

func (o maxlenopt) sessionOption(s *Session) {
	s.max = int(o)
}

// Ans sets the initial value of ans.
func Ans(x float64) SessionOption {
	return ansopt(x)
}

func (o ansopt) sessionOption(s *Session) {
	s.ans = float64(o)
}

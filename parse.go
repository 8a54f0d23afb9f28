package calculator

import "strings"

// ToPostfix reorders infix tokens into postfix order using the shunting-yard
// algorithm. Parentheses are consumed. A right parenthesis with no matching
// left one, or a left parenthesis still open at the end, is an
// *UnbalancedParenError.
//
// The tokens should come from Tokenize. ToPostfix panics on tokens of unknown
// kind or operators not in Operators.
func ToPostfix(tokens []Token) ([]Token, error) {
	out := make([]Token, 0, len(tokens))
	var stack []Token
	for _, tok := range tokens {
		switch tok.Kind {
		case TokenNum:
			out = append(out, tok)
		case TokenOp:
			in := mustop(tok)
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				if top.Kind != TokenOp || !mustop(top).yields(in) {
					break
				}
				out = append(out, top)
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, tok)
		case TokenOpen:
			stack = append(stack, tok)
		case TokenClose:
			for {
				if len(stack) == 0 {
					return nil, &UnbalancedParenError{Col: tok.Pos, Paren: tok.Text}
				}
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if top.Kind == TokenOpen {
					break
				}
				out = append(out, top)
			}
		default:
			panic("calculator: unknown token: " + tok.String())
		}
	}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.Kind == TokenOpen {
			return nil, &UnbalancedParenError{Col: top.Pos, Paren: top.Text}
		}
		out = append(out, top)
	}
	return out, nil
}

// FormatPostfix creates a string representation of a token sequence, with the
// tokens' text separated by spaces.
func FormatPostfix(tokens []Token) string {
	var b strings.Builder
	for i, tok := range tokens {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(tok.Text)
	}
	return b.String()
}

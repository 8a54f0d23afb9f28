package calculator

import (
	"errors"
	"strconv"
)

// operand is an evaluated value along with the position of the term which
// produced it.
type operand struct {
	x   float64
	pos int
}

// EvalPostfix evaluates a sequence of tokens in postfix order. Each operator
// pops its right operand, then its left, and pushes its result. The single
// value left at the end is the result.
//
// The tokens should come from ToPostfix. EvalPostfix panics on tokens other
// than numbers and operators.
func EvalPostfix(tokens []Token) (float64, error) {
	stack := make([]operand, 0, len(tokens)/2+1)
	for _, tok := range tokens {
		switch tok.Kind {
		case TokenNum:
			x, err := num(tok)
			if err != nil {
				return 0, err
			}
			stack = append(stack, operand{x, tok.Pos})
		case TokenOp:
			op := mustop(tok)
			if len(stack) < 2 {
				return 0, &StackUnderflowError{Col: tok.Pos, Operator: tok.Text, Have: len(stack)}
			}
			r := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			l := &stack[len(stack)-1]
			l.x = op.apply(l.x, r.x)
		default:
			panic("calculator: " + tok.String() + " in postfix input")
		}
	}
	switch len(stack) {
	case 0:
		return 0, &EmptyExpressionError{Col: 1}
	case 1:
		return stack[0].x, nil
	default:
		return 0, &MalformedExpressionError{Col: stack[1].pos, Values: len(stack)}
	}
}

// num parses a number token. Literals too large for a float64 become
// infinities.
func num(tok Token) (float64, error) {
	x, err := strconv.ParseFloat(tok.Text, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			// ParseFloat already gives the correctly signed infinity or zero.
			return x, nil
		}
		return 0, &NumberFormatError{Col: tok.Pos, Text: tok.Text, Err: err}
	}
	return x, nil
}

// Eval is a shortcut to tokenize, convert, and evaluate an expression with
// ans equal to zero.
func Eval(src string) (float64, error) {
	toks, err := Tokenize(src, 0)
	if err != nil {
		return 0, err
	}
	post, err := ToPostfix(toks)
	if err != nil {
		return 0, err
	}
	return EvalPostfix(post)
}


package calculator

// Operators contains the runes which are binary operators.
const Operators = "+-*/"

type operator struct {
	// prec is the precedence value. Higher is more binding.
	prec int8
	// right indicates right-associativity.
	right bool
	// apply computes the operator's result.
	apply func(l, r float64) float64
}

// yields reports whether p, on top of the operator stack, must move to the
// output before the incoming operator in is pushed. Equal precedence yields
// only when in is left-associative, so a right-associative operator would
// stack on itself.
func (p operator) yields(in operator) bool {
	if p.prec != in.prec {
		return p.prec > in.prec
	}
	return !in.right
}

// binop gets a binary operator for a token string. If there is no such binary
// operator, then the result has a nil apply.
func binop(text string) operator {
	switch text {
	case "+":
		return operator{1, false, add}
	case "-":
		return operator{1, false, sub}
	case "*":
		return operator{2, false, mul}
	case "/":
		return operator{2, false, div}
	default:
		return operator{}
	}
}

func add(l, r float64) float64 { return l + r }
func sub(l, r float64) float64 { return l - r }
func mul(l, r float64) float64 { return l * r }

// div follows IEEE-754: division by zero gives an infinity or NaN.
func div(l, r float64) float64 { return l / r }

// mustop is binop for tokens which must hold operators.
func mustop(tok Token) operator {
	op := binop(tok.Text)
	if op.apply == nil {
		panic("calculator: unknown operator " + tok.String())
	}
	return op
}

package calculator

import "strconv"

// LexError indicates an invalid token. It implements InputError.
type LexError struct {
	// Text is the token the lexer was scanning when the invalid rune was
	// encountered, plus the invalid rune.
	Text string
	// Kind is the type of token the lexer was scanning. This is
	// "negative number" or the empty string (if a token kind hadn't been
	// decided).
	Kind string
	// Col is the column of the start of the invalid token.
	Col int
}

func (err *LexError) Error() string {
	pos := "column " + strconv.Itoa(err.Col)
	if err.Kind == "" {
		return "invalid token at " + pos + ": " + strconv.Quote(err.Text)
	}
	return "invalid " + err.Kind + " token at " + pos + ": " + strconv.Quote(err.Text)
}

func (err *LexError) Pos() int {
	return err.Col
}

// UnbalancedParenError is an error indicating a parenthesis with no partner.
// It implements InputError.
type UnbalancedParenError struct {
	// Col is the position of the parenthesis.
	Col int
	// Paren is the unmatched parenthesis, either "(" or ")".
	Paren string
}

func (err *UnbalancedParenError) Error() string {
	if err.Paren == "(" {
		return errpos(err.Col, "open paren ( with no close paren")
	}
	return errpos(err.Col, "close paren ) with no open paren")
}

func (err *UnbalancedParenError) Pos() int {
	return err.Col
}

// NumberFormatError is an error indicating a number token which is not a
// valid decimal literal, e.g. "1.2.3". It implements InputError and unwraps
// to the *strconv.NumError describing the failure.
type NumberFormatError struct {
	// Col is the position of the number.
	Col int
	// Text is the malformed literal.
	Text string
	// Err is the parsing error.
	Err error
}

func (err *NumberFormatError) Error() string {
	return errpos(err.Col, "malformed number "+strconv.Quote(err.Text))
}

func (err *NumberFormatError) Pos() int {
	return err.Col
}

func (err *NumberFormatError) Unwrap() error {
	return err.Err
}

// StackUnderflowError is an error indicating an operator with too few
// operands, as in "2+". It implements InputError.
type StackUnderflowError struct {
	// Col is the position of the operator.
	Col int
	// Operator is the operator which was missing operands.
	Operator string
	// Have is the number of operands that were available.
	Have int
}

func (err *StackUnderflowError) Error() string {
	return errpos(err.Col, "operator "+strconv.Quote(err.Operator)+" needs 2 operands but has "+strconv.Itoa(err.Have))
}

func (err *StackUnderflowError) Pos() int {
	return err.Col
}

// EmptyExpressionError is an error indicating an expression with no terms.
// It implements InputError.
type EmptyExpressionError struct {
	// Col is the position where a term was expected.
	Col int
}

func (err *EmptyExpressionError) Error() string {
	return errpos(err.Col, "no expression")
}

func (err *EmptyExpressionError) Pos() int {
	return err.Col
}

// MalformedExpressionError is an error indicating terms without operators
// between them, as in "2 3". It implements InputError.
type MalformedExpressionError struct {
	// Col is the position of the first term which was not consumed.
	Col int
	// Values is the number of values remaining after evaluation.
	Values int
}

func (err *MalformedExpressionError) Error() string {
	return errpos(err.Col, "missing operator: "+strconv.Itoa(err.Values)+" values left over")
}

func (err *MalformedExpressionError) Pos() int {
	return err.Col
}

// LengthError is an error indicating input longer than a Session accepts.
// It implements InputError.
type LengthError struct {
	// Len is the length of the input in runes.
	Len int
	// Max is the maximum length.
	Max int
}

func (err *LengthError) Error() string {
	return errpos(err.Max+1, "input of "+strconv.Itoa(err.Len)+" characters exceeds limit of "+strconv.Itoa(err.Max))
}

func (err *LengthError) Pos() int {
	return err.Max + 1
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*LexError)(nil)
	_ InputError = (*UnbalancedParenError)(nil)
	_ InputError = (*NumberFormatError)(nil)
	_ InputError = (*StackUnderflowError)(nil)
	_ InputError = (*EmptyExpressionError)(nil)
	_ InputError = (*MalformedExpressionError)(nil)
	_ InputError = (*LengthError)(nil)
)

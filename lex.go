package calculator

import (
	"errors"
	"io"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// Token is a lexical unit of an expression.
type Token struct {
	// Kind is the token's class.
	Kind TokenKind
	// Text is the token's source text. For numbers, it is a decimal literal
	// which may begin with a minus sign.
	Text string
	// Pos is the 1-based rune column where the token starts.
	Pos int
}

func (t Token) String() string {
	return t.Kind.String() + ":" + t.Text + "@" + strconv.Itoa(t.Pos)
}

// TokenKind classifies tokens.
type TokenKind int8

const (
	TokenNone TokenKind = iota
	// TokenNum is a possibly negative decimal number.
	TokenNum
	// TokenOp is a binary operator.
	TokenOp
	// TokenOpen is a left parenthesis.
	TokenOpen
	// TokenClose is a right parenthesis.
	TokenClose
)

//go:generate go mod edit -require=golang.org/x/tools@v0.1.0
//go:generate go mod download
//go:generate go run golang.org/x/tools/cmd/stringer -type=TokenKind -trimprefix=Token
//go:generate go mod tidy

// AnsWord is the word which stands for the last answer of a Session.
const AnsWord = "ans"

type lexer struct {
	src  io.RuneScanner
	buf  strings.Builder
	rune int
	ans  float64
	toks []Token
}

func lex(src io.RuneScanner, ans float64) *lexer {
	return &lexer{
		src:  src,
		rune: 1,
		ans:  ans,
	}
}

// Tokenize scans an expression into tokens. Occurrences of the word ans are
// scanned as the number ans. A minus sign is a negative sign, rather than
// subtraction, at the start of the expression or following an operator or
// left parenthesis; then it must be immediately followed by a number.
func Tokenize(src string, ans float64) ([]Token, error) {
	l := lex(strings.NewReader(src), ans)
	for {
		tok, err := l.next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return l.toks, nil
			}
			return nil, err
		}
		l.toks = append(l.toks, tok)
	}
}

// readRune reads a rune from the src and updates the lexer's position info.
func (l *lexer) readRune() (r rune, err error) {
	r, sz, err := l.src.ReadRune()
	if sz > 0 {
		l.rune++
	}
	return r, err
}

// unreadRune unreads a rune from the src and updates the lexer's position
// info. Panics if unreading returns an error.
func (l *lexer) unreadRune() {
	if err := l.src.UnreadRune(); err != nil {
		panic(err)
	}
	l.rune--
}

// unary reports whether a minus sign scanned now is a negative sign.
func (l *lexer) unary() bool {
	if len(l.toks) == 0 {
		return true
	}
	switch l.toks[len(l.toks)-1].Kind {
	case TokenOp, TokenOpen:
		return true
	}
	return false
}

// next scans the next token from the input. At the end of the input, the
// error is io.EOF.
func (l *lexer) next() (Token, error) {
	defer l.buf.Reset()
	for {
		tok := Token{Pos: l.rune}
		r, err := l.readRune()
		if err != nil {
			return tok, err
		}
		switch {
		case unicode.IsSpace(r):
			continue
		case isdigit(r):
			l.unreadRune()
			if err := l.scanNum(); err != nil {
				return tok, err
			}
			tok.Text = l.buf.String()
			tok.Kind = TokenNum
			return tok, nil
		case r == '-' && l.unary():
			l.buf.WriteRune(r)
			return l.scanNeg(tok)
		case r == '_', unicode.IsLetter(r):
			l.unreadRune()
			if err := l.scanWord(); err != nil {
				return tok, err
			}
			if l.buf.String() != AnsWord {
				return tok, l.error(tok.Pos, "")
			}
			tok.Text = fmtans(l.ans)
			tok.Kind = TokenNum
			return tok, nil
		case r == '(':
			tok.Text = "("
			tok.Kind = TokenOpen
			return tok, nil
		case r == ')':
			tok.Text = ")"
			tok.Kind = TokenClose
			return tok, nil
		default:
			if k := strings.IndexRune(Operators, r); k >= 0 {
				tok.Text = Operators[k : k+1]
				tok.Kind = TokenOp
				return tok, nil
			}
			// Write the rune so that it shows up in the error message.
			l.buf.WriteRune(r)
			return tok, l.error(tok.Pos, "")
		}
	}
}

// scanNeg scans the operand of a negative sign, which is already in the
// buffer. The operand is a digit run or the ans word; anything else, including
// whitespace or a parenthesis, is an error.
func (l *lexer) scanNeg(tok Token) (Token, error) {
	r, err := l.readRune()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return tok, l.error(tok.Pos, "negative number")
		}
		return tok, err
	}
	l.unreadRune()
	switch {
	case isdigit(r):
		if err := l.scanNum(); err != nil {
			return tok, err
		}
		tok.Text = l.buf.String()
	case r == '_', unicode.IsLetter(r):
		if err := l.scanWord(); err != nil {
			return tok, err
		}
		if l.buf.String() != "-"+AnsWord {
			return tok, l.error(tok.Pos, "negative number")
		}
		tok.Text = fmtans(-l.ans)
	default:
		l.buf.WriteRune(r)
		return tok, l.error(tok.Pos, "negative number")
	}
	tok.Kind = TokenNum
	return tok, nil
}

// scanNum scans a maximal run of digits and dots. The number of dots is not
// checked here; the evaluator rejects malformed literals.
func (l *lexer) scanNum() error {
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if !isdigit(r) {
			l.unreadRune()
			return nil
		}
		l.buf.WriteRune(r)
	}
}

func (l *lexer) scanWord() error {
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				// next unreads the rune that decides word scanning before
				// calling scanWord, so we have scanned at least one rune.
				return nil
			}
			return err
		}
		switch {
		case r == '_', unicode.IsLetter(r), '0' <= r && r <= '9':
			l.buf.WriteRune(r)
		default:
			l.unreadRune()
			return nil
		}
	}
}

func (l *lexer) error(col int, kind string) error {
	return &LexError{
		Text: l.buf.String(),
		Kind: kind,
		Col:  col,
	}
}

// isdigit reports whether r can appear in a number literal.
func isdigit(r rune) bool {
	return '0' <= r && r <= '9' || r == '.'
}

// fmtans formats a number so that it parses back to exactly the same value.
// Magnitudes from 1e-4 up to 1e21 are written without an exponent.
func fmtans(x float64) string {
	if a := math.Abs(x); a >= 1e-4 && a < 1e21 {
		return strconv.FormatFloat(x, 'f', -1, 64)
	}
	return strconv.FormatFloat(x, 'g', -1, 64)
}

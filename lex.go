package formula

import (
	"io"
	"strconv"
	"strings"
	"unicode"
)

// Token is a single lexical unit of a formula.
type Token struct {
	// Kind is the token's category.
	Kind TokenKind
	// Text is the token exactly as it appeared in the source.
	Text string
	// Num is the value of a TokenNum. It is zero for other kinds.
	Num float64
	// Pos is the number of runes up to and including the token's first rune.
	Pos int
}

func (t Token) String() string {
	return t.Kind.String() + ":" + t.Text + "@" + strconv.Itoa(t.Pos)
}

// TokenKind is the category of a token.
type TokenKind int8

const (
	// TokenInvalid is a run of text that is not any other kind of token.
	// Tokenize produces them so that Parse can report them.
	TokenInvalid TokenKind = iota
	// TokenLeftParen is (.
	TokenLeftParen
	// TokenRightParen is ).
	TokenRightParen
	// TokenOp is one of the binary operators in Operators.
	TokenOp
	// TokenNum is a non-negative number literal.
	TokenNum
	// TokenVar is a variable name.
	TokenVar
)

//go:generate go run golang.org/x/tools/cmd/stringer -type=TokenKind -trimprefix=Token

// Operators contains the runes which are considered to be operators.
const Operators = "+-*/"

// operand reports whether tokens of kind k stand for a value.
func (k TokenKind) operand() bool {
	return k == TokenNum || k == TokenVar
}

// Tokenize splits src into tokens. Whitespace separates tokens but is never
// part of one. Tokenize does not check that the tokens form a formula, and
// text that cannot start any token becomes a TokenInvalid, so it never fails.
func Tokenize(src string) []Token {
	var toks []Token
	scan := lex(src)
	for {
		tok, err := scan.next()
		if err != nil {
			return toks
		}
		toks = append(toks, tok)
	}
}

type lexer struct {
	src []rune
	// col is the index of the next rune to scan.
	col int
}

func lex(src string) *lexer {
	return &lexer{src: []rune(src)}
}

// next scans the next token from the input. After the last token, the result
// is an empty token with io.EOF.
func (l *lexer) next() (Token, error) {
	for l.col < len(l.src) && unicode.IsSpace(l.src[l.col]) {
		l.col++
	}
	if l.col >= len(l.src) {
		return Token{}, io.EOF
	}
	start := l.col
	tok := Token{Pos: start + 1}
	switch r := l.src[start]; {
	case r == '(':
		l.col++
		tok.Kind = TokenLeftParen
	case r == ')':
		l.col++
		tok.Kind = TokenRightParen
	case strings.ContainsRune(Operators, r):
		l.col++
		tok.Kind = TokenOp
	case isLetter(r):
		l.col++
		for l.col < len(l.src) && (isLetter(l.src[l.col]) || isDigit(l.src[l.col])) {
			l.col++
		}
		tok.Kind = TokenVar
	default:
		if n := l.numlen(start); n > 0 {
			l.col += n
			tok.Kind = TokenNum
			break
		}
		// Gather everything up to the next place a real token or whitespace
		// could start.
		l.col++
		for l.col < len(l.src) && !l.starts(l.col) {
			l.col++
		}
		tok.Kind = TokenInvalid
	}
	tok.Text = string(l.src[start:l.col])
	if tok.Kind == TokenNum {
		tok.Num = parsenum(tok.Text)
	}
	return tok, nil
}

// numlen returns the length in runes of the number literal beginning at i, or
// 0 if there is none. Number literals are digits with at most one decimal
// point, then optionally e, an optional sign, and digits.
func (l *lexer) numlen(i int) int {
	j := l.digits(i)
	if j < len(l.src) && l.src[j] == '.' {
		k := l.digits(j + 1)
		// A point needs a digit on at least one side.
		if j > i || k > j+1 {
			j = k
		}
	}
	if j == i {
		return 0
	}
	if j < len(l.src) && l.src[j] == 'e' {
		k := j + 1
		if k < len(l.src) && (l.src[k] == '+' || l.src[k] == '-') {
			k++
		}
		// The exponent belongs to the number only if it has digits.
		if e := l.digits(k); e > k {
			j = e
		}
	}
	return j - i
}

// digits returns the index of the first non-digit at or after i.
func (l *lexer) digits(i int) int {
	for i < len(l.src) && isDigit(l.src[i]) {
		i++
	}
	return i
}

// starts reports whether whitespace or any valid token begins at i.
func (l *lexer) starts(i int) bool {
	r := l.src[i]
	switch {
	case unicode.IsSpace(r), r == '(', r == ')', isLetter(r):
		return true
	case strings.ContainsRune(Operators, r):
		return true
	default:
		return l.numlen(i) > 0
	}
}

// parsenum converts a number literal scanned by the lexer. Literals too large
// for a float64 become +Inf.
func parsenum(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		if ne, _ := err.(*strconv.NumError); ne == nil || ne.Err != strconv.ErrRange {
			panic("formula: invalid number: " + s + " (" + err.Error() + ")")
		}
	}
	return f
}

func isLetter(r rune) bool {
	return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z'
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

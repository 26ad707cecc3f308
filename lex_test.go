package formula

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLex(t *testing.T) {
	num := func(text string, v float64, pos int) Token {
		return Token{Kind: TokenNum, Text: text, Num: v, Pos: pos}
	}
	tok := func(kind TokenKind, text string, pos int) Token {
		return Token{Kind: kind, Text: text, Pos: pos}
	}
	cases := []struct {
		name   string
		src    string
		tokens []Token
	}{
		// spaces
		{"empty", "", nil},
		{"space", " \t \r\n ", nil},
		{"space-between", "x  +\ty", []Token{tok(TokenVar, "x", 1), tok(TokenOp, "+", 4), tok(TokenVar, "y", 6)}},
		// numbers
		{"zero", "0", []Token{num("0", 0, 1)}},
		{"int", "9876543210", []Token{num("9876543210", 9876543210, 1)}},
		{"two", "1 0", []Token{num("1", 1, 1), num("0", 0, 3)}},
		{"point", "1.0", []Token{num("1.0", 1, 1)}},
		{"trailing-point", "5.", []Token{num("5.", 5, 1)}},
		{"leading-point", ".5", []Token{num(".5", 0.5, 1)}},
		{"lone-point", ".", []Token{tok(TokenInvalid, ".", 1)}},
		{"two-points", "1.1.1", []Token{num("1.1", 1.1, 1), num(".1", 0.1, 4)}},
		{"exp", "1e1", []Token{num("1e1", 10, 1)}},
		{"exp-plus", "1e+1", []Token{num("1e+1", 10, 1)}},
		{"exp-minus", "1e-3", []Token{num("1e-3", 1e-3, 1)}},
		{"exp-point", "2.5e9", []Token{num("2.5e9", 2.5e9, 1)}},
		{"exp-empty", "1e", []Token{num("1", 1, 1), tok(TokenVar, "e", 2)}},
		{"exp-sign-empty", "1e+", []Token{num("1", 1, 1), tok(TokenVar, "e", 2), tok(TokenOp, "+", 3)}},
		{"exp-upper", "1E5", []Token{num("1", 1, 1), tok(TokenVar, "E5", 2)}},
		{"exp-overflow", "1e999", []Token{num("1e999", math.Inf(1), 1)}},
		{"neg", "-1", []Token{tok(TokenOp, "-", 1), num("1", 1, 2)}},
		{"num-var", "2x", []Token{num("2", 2, 1), tok(TokenVar, "x", 2)}},
		// variables
		{"var", "x", []Token{tok(TokenVar, "x", 1)}},
		{"var-digits", "x5", []Token{tok(TokenVar, "x5", 1)}},
		{"var-mixed", "A12b", []Token{tok(TokenVar, "A12b", 1)}},
		{"var-paren", "e(", []Token{tok(TokenVar, "e", 1), tok(TokenLeftParen, "(", 2)}},
		// operators and parens
		{"ops", "+-*/", []Token{tok(TokenOp, "+", 1), tok(TokenOp, "-", 2), tok(TokenOp, "*", 3), tok(TokenOp, "/", 4)}},
		{"parens", "(1)", []Token{tok(TokenLeftParen, "(", 1), num("1", 1, 2), tok(TokenRightParen, ")", 3)}},
		{"sum", "1+0", []Token{num("1", 1, 1), tok(TokenOp, "+", 2), num("0", 0, 3)}},
		// invalid runs
		{"underscore", "_", []Token{tok(TokenInvalid, "_", 1)}},
		{"underscore-between", "a_b", []Token{tok(TokenVar, "a", 1), tok(TokenInvalid, "_", 2), tok(TokenVar, "b", 3)}},
		{"run", "#$", []Token{tok(TokenInvalid, "#$", 1)}},
		{"run-point", "#. ", []Token{tok(TokenInvalid, "#.", 1)}},
		{"run-number", "#.5", []Token{tok(TokenInvalid, "#", 1), num(".5", 0.5, 2)}},
		{"in-formula", "3+#)", []Token{num("3", 3, 1), tok(TokenOp, "+", 2), tok(TokenInvalid, "#", 3), tok(TokenRightParen, ")", 4)}},
		{"unicode", "π+1", []Token{tok(TokenInvalid, "π", 1), tok(TokenOp, "+", 2), num("1", 1, 3)}},
		{"unicode-var", "πx", []Token{tok(TokenInvalid, "π", 1), tok(TokenVar, "x", 2)}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Tokenize(c.src)
			if diff := cmp.Diff(c.tokens, got); diff != "" {
				t.Errorf("scanning %q: wrong tokens (-want +got):\n%s", c.src, diff)
			}
		})
	}
}

func TestLexDeterministic(t *testing.T) {
	const src = "3*(2e5-7)/100*x1-(x2+6)+2.2e3/10 # $"
	want := Tokenize(src)
	for i := 0; i < 10; i++ {
		if diff := cmp.Diff(want, Tokenize(src)); diff != "" {
			t.Fatalf("scan %d differs (-first +now):\n%s", i, diff)
		}
	}
}

func TestTokenString(t *testing.T) {
	cases := []struct {
		tok  Token
		want string
	}{
		{Token{Kind: TokenNum, Text: "2.5", Num: 2.5, Pos: 1}, "Num:2.5@1"},
		{Token{Kind: TokenVar, Text: "x", Pos: 3}, "Var:x@3"},
		{Token{Kind: TokenInvalid, Text: "#", Pos: 7}, "Invalid:#@7"},
		{Token{Kind: TokenKind(42), Text: "?", Pos: 1}, "TokenKind(42):?@1"},
	}
	for _, c := range cases {
		if got := c.tok.String(); got != c.want {
			t.Errorf("wrong string for %#v: want %q, got %q", c.tok, c.want, got)
		}
	}
}

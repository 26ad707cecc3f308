package formula

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// Formula = Operand { op Operand }
// Operand = num | var | '(' Formula ')'
// op      = '+' | '-' | '*' | '/'

// Formula is a parsed formula that can be evaluated with a Lookup. The only
// way to get one is Parse, so every Formula follows the grammar.
type Formula struct {
	// toks is the validated token sequence.
	toks []Token
	// names is the sorted list of variable names used in the formula.
	names []string
}

// Parse parses a formula. If src does not follow the formula grammar, the
// error is a *FormatError describing the first problem found.
func Parse(src string) (*Formula, error) {
	toks := Tokenize(src)
	end := utf8.RuneCountInString(src) + 1
	if len(toks) == 0 {
		return nil, &FormatError{Rule: RuleEmpty, Col: end}
	}
	for _, tok := range toks {
		if tok.Kind == TokenInvalid {
			return nil, badtoken(RuleToken, tok)
		}
	}
	if first := toks[0]; !first.Kind.operand() && first.Kind != TokenLeftParen {
		return nil, badtoken(RuleStart, first)
	}
	if last := toks[len(toks)-1]; !last.Kind.operand() && last.Kind != TokenRightParen {
		return nil, badtoken(RuleEnd, last)
	}
	depth := 0
	for i, tok := range toks {
		switch tok.Kind {
		case TokenLeftParen:
			depth++
		case TokenRightParen:
			depth--
			if depth < 0 {
				return nil, badtoken(RuleClose, tok)
			}
		}
		if i+1 == len(toks) {
			break
		}
		next := toks[i+1]
		switch tok.Kind {
		case TokenLeftParen, TokenOp:
			if !next.Kind.operand() && next.Kind != TokenLeftParen {
				return nil, badtoken(RuleOperand, next)
			}
		default:
			if next.Kind != TokenOp && next.Kind != TokenRightParen {
				return nil, badtoken(RuleOperator, next)
			}
		}
	}
	if depth != 0 {
		return nil, &FormatError{Rule: RuleBalance, Col: end}
	}

	f := Formula{toks: toks}
	seen := make(map[string]bool)
	for _, tok := range toks {
		if tok.Kind == TokenVar && !seen[tok.Text] {
			seen[tok.Text] = true
			f.names = append(f.names, tok.Text)
		}
	}
	sort.Strings(f.names)
	return &f, nil
}

func badtoken(rule Rule, tok Token) error {
	return &FormatError{Rule: rule, Col: tok.Pos, Token: tok.Text}
}

// Tokens returns the formula's tokens in order.
func (f *Formula) Tokens() []Token {
	return append(([]Token)(nil), f.toks...)
}

// Vars returns the variable names used in the formula, sorted and without
// duplicates.
func (f *Formula) Vars() []string {
	return append(([]string)(nil), f.names...)
}

// String formats the formula with a single space between tokens, except
// inside parentheses.
func (f *Formula) String() string {
	var b strings.Builder
	for i, tok := range f.toks {
		if i > 0 && tok.Kind != TokenRightParen && f.toks[i-1].Kind != TokenLeftParen {
			b.WriteByte(' ')
		}
		b.WriteString(tok.Text)
	}
	return b.String()
}

package formula

import (
	"errors"
	"strconv"
)

// Rule identifies a grammar rule that a formula failed.
type Rule int8

const (
	// RuleEmpty means the formula has no tokens.
	RuleEmpty Rule = iota + 1
	// RuleToken means the formula contains text that is not a token.
	RuleToken
	// RuleStart means the formula begins with an operator or ).
	RuleStart
	// RuleEnd means the formula ends with an operator or (.
	RuleEnd
	// RuleClose means a ) appeared with no ( left to close.
	RuleClose
	// RuleOperand means a ( or operator was followed by something other than
	// a number, variable, or (.
	RuleOperand
	// RuleOperator means a number, variable, or ) was followed by something
	// other than an operator or ).
	RuleOperator
	// RuleBalance means some ( was never closed.
	RuleBalance
)

// FormatError is an error indicating a formula that does not follow the
// grammar. It implements InputError.
type FormatError struct {
	// Rule is the rule the formula broke.
	Rule Rule
	// Col is the position of the offending token, or of the end of the
	// input for RuleEmpty and RuleBalance.
	Col int
	// Token is the offending token's text, if there is one.
	Token string
}

func (err *FormatError) Error() string {
	q := strconv.Quote(err.Token)
	switch err.Rule {
	case RuleEmpty:
		return errpos(err.Col, "no formula")
	case RuleToken:
		return errpos(err.Col, "invalid token "+q)
	case RuleStart:
		return errpos(err.Col, "formula cannot start with "+q+"; need a number, variable, or (")
	case RuleEnd:
		return errpos(err.Col, "formula cannot end with "+q+"; need a number, variable, or )")
	case RuleClose:
		return errpos(err.Col, "close paren with no open paren")
	case RuleOperand:
		return errpos(err.Col, "expected a number, variable, or ( but found "+q)
	case RuleOperator:
		return errpos(err.Col, "expected an operator or ) but found "+q)
	case RuleBalance:
		return errpos(err.Col, "open paren with no close paren")
	default:
		return errpos(err.Col, "invalid formula")
	}
}

func (err *FormatError) Pos() int {
	return err.Col
}

var (
	// ErrUndefined is the cause of an EvalError for a variable that the
	// Lookup does not define.
	ErrUndefined = errors.New("undefined variable")
	// ErrDivideByZero is the cause of an EvalError for a division whose
	// divisor is exactly zero.
	ErrDivideByZero = errors.New("division by zero")
)

// EvalError is an error that stopped the evaluation of a formula. It unwraps
// to ErrUndefined or ErrDivideByZero.
type EvalError struct {
	// Col is the position of the token being evaluated: the variable for
	// ErrUndefined, or the divisor's last token for ErrDivideByZero.
	Col int
	// Name is the variable that was undefined. It is empty for other errors.
	Name string
	// Err is the cause.
	Err error
}

func (err *EvalError) Error() string {
	if err.Name != "" {
		return errpos(err.Col, err.Err.Error()+" "+strconv.Quote(err.Name))
	}
	return errpos(err.Col, err.Err.Error())
}

func (err *EvalError) Unwrap() error {
	return err.Err
}

func (err *EvalError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error from Parse
// and Eval implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*FormatError)(nil)
	_ InputError = (*EvalError)(nil)
)

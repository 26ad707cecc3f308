package formula

import (
	"github.com/edwingeng/deque"
)

// Eval evaluates the formula, using lookup to find the values of variables.
// If a variable is undefined or a divisor is exactly zero, evaluation stops
// and the error is an *EvalError. The formula can still be evaluated again
// after an error.
func (f *Formula) Eval(lookup Lookup) (float64, error) {
	e := evaluation{
		vals: deque.NewDeque(),
		ops:  deque.NewDeque(),
	}
	for _, tok := range f.toks {
		switch tok.Kind {
		case TokenNum:
			if err := e.operand(tok.Num, tok.Pos); err != nil {
				return 0, err
			}
		case TokenVar:
			v, ok := lookup.get(tok.Text)
			if !ok {
				return 0, &EvalError{Col: tok.Pos, Name: tok.Text, Err: ErrUndefined}
			}
			if err := e.operand(v, tok.Pos); err != nil {
				return 0, err
			}
		case TokenOp:
			op := tok.Text[0]
			if op == '+' || op == '-' {
				e.addsub()
			}
			e.ops.PushBack(op)
		case TokenLeftParen:
			e.ops.PushBack(byte('('))
		case TokenRightParen:
			e.addsub()
			e.ops.PopBack()
			// The parenthesized value is now an operand to whatever
			// multiplication or division was waiting for it.
			if err := e.operand(e.pop(), tok.Pos); err != nil {
				return 0, err
			}
		default:
			panic("formula: invalid token in parsed formula: " + tok.String())
		}
	}
	e.addsub()
	return e.pop(), nil
}

// EvalString is a shortcut to parse and evaluate a formula.
func EvalString(src string, lookup Lookup) (float64, error) {
	f, err := Parse(src)
	if err != nil {
		return 0, err
	}
	return f.Eval(lookup)
}

// evaluation is the state of a single call to Eval. *, /, and ( wait on ops;
// * and / are applied as soon as their right operand arrives, and + and - are
// applied once the next + or -, ), or the end shows that nothing binds
// tighter.
type evaluation struct {
	// vals holds float64 operands and intermediate results.
	vals deque.Deque
	// ops holds pending operators and open parens as bytes.
	ops deque.Deque
}

// top returns the top of the operator stack, or 0 if it is empty.
func (e *evaluation) top() byte {
	if e.ops.Empty() {
		return 0
	}
	return e.ops.Back().(byte)
}

func (e *evaluation) pop() float64 {
	return e.vals.PopBack().(float64)
}

// operand handles a value appearing at col.
func (e *evaluation) operand(v float64, col int) error {
	switch e.top() {
	case '*':
		e.ops.PopBack()
		e.vals.PushBack(e.pop() * v)
	case '/':
		if v == 0 {
			return &EvalError{Col: col, Err: ErrDivideByZero}
		}
		e.ops.PopBack()
		e.vals.PushBack(e.pop() / v)
	default:
		e.vals.PushBack(v)
	}
	return nil
}

// addsub applies a pending + or - to the top two values.
func (e *evaluation) addsub() {
	switch e.top() {
	case '+':
		e.ops.PopBack()
		b, a := e.pop(), e.pop()
		e.vals.PushBack(a + b)
	case '-':
		e.ops.PopBack()
		b, a := e.pop(), e.pop()
		e.vals.PushBack(a - b)
	}
}

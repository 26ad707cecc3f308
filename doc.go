// Package formula implements spreadsheet cell formulas: infix arithmetic
// expressions over non-negative numbers and named variables.
//
// A formula is built from numbers like "2", "2.5", or "2.5e9", variables
// like "x" or "A12" (a letter followed by letters and digits), the binary
// operators + - * /, and parentheses. There are no unary operators, so "-5.3"
// is not a formula. "*" and "/" bind tighter than "+" and "-", and all four
// are left-associative.
//
// Parse a formula once, then evaluate it as many times as you like, each time
// with a Lookup that supplies the values of its variables. A Formula never
// changes after Parse returns, so it is fine to evaluate the same one from
// several goroutines at once.
package formula

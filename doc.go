// Package calculator implements a line-oriented four-function calculator.
//
// An expression is scanned into tokens, reordered into postfix form with the
// shunting-yard algorithm, and evaluated on a value stack using float64
// arithmetic. "1 + 2*3" is 7, "10-2-3" is 5, and "3*-2" is -6. Division by
// zero follows IEEE-754, so "5/0" is +Inf rather than an error.
//
// A Session remembers the result of the last successful evaluation. The word
// "ans" in later input stands for that value, so after "2+2", "ans*10" is 40.
//
package calculator

// Package calculator implements a keypad calculator: an expression that is
// built one key at a time, and an evaluator for the finished expression.
//
// The Buffer accepts only keys that keep the expression well formed, so "2+*"
// never happens; the second operator is simply dropped. Parentheses are the
// one thing the Buffer lets go unbalanced, and evaluating an unbalanced
// expression reports ErrUnbalancedParens without invoking the evaluator.
//
// The evaluator knows + - * / on reals, div and mod with floor semantics,
// right-associative ^, the postfix square ², and √ applied to a parenthesized
// argument. "-3²" is "-(3²)" and "2^-1" is "2^(-1)". Results are rounded to
// five decimal places and formatted without trailing zeros, so 7/7 shows as
// "1" rather than "1.0".
//
// A Calculator ties the two together with a history of completed
// evaluations. After a successful evaluation the result becomes the seed of
// the next expression: an operator continues from it, a digit starts over.
//
package calculator

package calculator

import (
	"errors"
	"strconv"
)

// Errors from a Calculator are classified by these sentinels. Use errors.Is to
// test for them.
var (
	// ErrIllegalInput is returned for a key the expression cannot take in its
	// current state. The key is dropped.
	ErrIllegalInput = errors.New("illegal input")
	// ErrUnbalancedParens is returned when evaluating an expression with
	// unclosed parentheses. The evaluator is not invoked.
	ErrUnbalancedParens = errors.New("unbalanced parentheses")
	// ErrDivisionByZero is matched by every DivisionByZeroError.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrEval is matched by every EvalError.
	ErrEval = errors.New("evaluation failed")
)

// OperatorError is an error indicating an operator token where an operand was
// expected. It implements InputError.
type OperatorError struct {
	// Col is the position of the operator.
	Col int
	// Operator is the token that was not understood.
	Operator string
}

func (err *OperatorError) Error() string {
	return errpos(err.Col, "operator "+strconv.Quote(err.Operator)+" is not a unary operator")
}

func (err *OperatorError) Pos() int {
	return err.Col
}

// BracketError is an error indicating mismatched brackets in the
// input. It implements InputError.
type BracketError struct {
	// Col is the position of the bracket or of the end of input.
	Col int
	// Left is the opening bracket.
	Left string
	// Right is the mismatched closing bracket.
	Right string
}

func (err *BracketError) Error() string {
	if err.Left == "" {
		return errpos(err.Col, "close bracket "+err.Right+" with no open bracket")
	}
	if err.Right == "" {
		return errpos(err.Col, "open bracket "+err.Left+" with no close bracket")
	}
	return errpos(err.Col, "mismatched bracket: "+err.Left+"expr"+err.Right)
}

func (err *BracketError) Pos() int {
	return err.Col
}

// CallError is an error indicating a function name that is not followed by a
// parenthesized argument. It implements InputError.
type CallError struct {
	// Col is the position of the token following the function name.
	Col int
	// Func is the function name that was called.
	Func string
}

func (err *CallError) Error() string {
	return errpos(err.Col, "cannot call "+err.Func+" without a parenthesized argument")
}

func (err *CallError) Pos() int {
	return err.Col
}

// TermError is an error indicating a term that directly follows a complete
// operand, e.g. the 3 in "(2)3". It implements InputError.
type TermError struct {
	// Col is the position of the term.
	Col int
	// Text is the first token of the term.
	Text string
}

func (err *TermError) Error() string {
	return errpos(err.Col, "missing operator before "+strconv.Quote(err.Text))
}

func (err *TermError) Pos() int {
	return err.Col
}

// EmptyExpressionError is an error indicating an empty subexpression.
type EmptyExpressionError struct {
	// Col is the position of the token that ended the subexpression.
	Col int
	// End is the token that ended the subexpression.
	End string
}

func (err *EmptyExpressionError) Error() string {
	if err.End == "" {
		if err.Col <= 1 {
			return errpos(err.Col, "no expression")
		}
		return errpos(err.Col, "no expression at end")
	}
	return errpos(err.Col, "no expression up to "+strconv.Quote(err.End))
}

func (err *EmptyExpressionError) Pos() int {
	return err.Col
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
	_ InputError = (*OperatorError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*CallError)(nil)
	_ InputError = (*TermError)(nil)
	_ InputError = (*EmptyExpressionError)(nil)
	_ InputError = (*LexError)(nil)
)

// DivisionByZeroError is an error from dividing by zero with /, div, or mod,
// or from raising zero to a negative power. It matches ErrDivisionByZero.
type DivisionByZeroError struct {
	// Op is the operator that divided.
	Op string
}

func (err *DivisionByZeroError) Error() string {
	return "division by zero in " + strconv.Quote(err.Op)
}

func (err *DivisionByZeroError) Is(target error) bool {
	return target == ErrDivisionByZero
}

// OverflowError is an error indicating a result too large for a float64.
type OverflowError struct {
	// Op is the operation that overflowed, or "" if only the final result did.
	Op string
}

func (err *OverflowError) Error() string {
	if err.Op == "" {
		return "result out of range"
	}
	return "result of " + strconv.Quote(err.Op) + " out of range"
}

// EvalError is any failure to evaluate an expression other than division by
// zero. It matches ErrEval and unwraps to the underlying error.
type EvalError struct {
	// Expr is the expression that failed, if known.
	Expr string
	Err  error
}

func (err *EvalError) Error() string {
	if err.Expr == "" {
		return "cannot evaluate: " + err.Err.Error()
	}
	return "cannot evaluate " + strconv.Quote(err.Expr) + ": " + err.Err.Error()
}

func (err *EvalError) Unwrap() error {
	return err.Err
}

func (err *EvalError) Is(target error) bool {
	return target == ErrEval
}

// classify maps an evaluator error onto the Calculator error taxonomy.
func classify(err error) error {
	var ee *EvalError
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrDivisionByZero), errors.Is(err, ErrUnbalancedParens), errors.As(err, &ee):
		return err
	default:
		return &EvalError{Err: err}
	}
}

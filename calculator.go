package calculator

import (
	"errors"
)

// Calculator is one interactive session: the expression being composed and
// the history of completed evaluations. Input is processed one key at a time.
// It is not safe to use a Calculator concurrently; hosts serving several users
// give each its own Calculator.
type Calculator struct {
	buf  Buffer
	hist History
	ctx  *Context
	// err is the error from the last key, if it was a failed evaluation.
	err error
	// result is the formatted result of the last successful evaluation.
	result string
}

// New creates a calculator showing the placeholder expression. The options
// configure evaluation.
func New(opts ...ContextOption) *Calculator {
	return &Calculator{ctx: NewContext(opts...)}
}

// Press processes one key. The result is nil if the key was accepted,
// ErrIllegalInput if the expression could not take it, or the evaluation
// error for a failed KeyEval. Illegal input is meant to be dropped silently;
// it does not set a message.
func (c *Calculator) Press(k Key) error {
	c.err = nil
	var ok bool
	switch {
	case k >= Key0 && k <= Key9:
		ok = c.buf.Digit(int(k - Key0))
	case k == KeyPoint:
		ok = c.buf.Point()
	case k == KeyAdd:
		ok = c.buf.Binary(OpAdd)
	case k == KeySub:
		ok = c.buf.Binary(OpSub)
	case k == KeyMul:
		ok = c.buf.Binary(OpMul)
	case k == KeyDiv:
		ok = c.buf.Binary(OpDiv)
	case k == KeyIntDiv:
		ok = c.buf.Binary(OpIntDiv)
	case k == KeyMod:
		ok = c.buf.Binary(OpMod)
	case k == KeyPow:
		ok = c.buf.Binary(OpPow)
	case k == KeySqrt:
		ok = c.buf.Func(FnSqrt)
	case k == KeySquare:
		ok = c.buf.Square()
	case k == KeyOpen:
		ok = c.buf.Open()
	case k == KeyClose:
		ok = c.buf.Close()
	case k == KeyRound:
		ok = c.buf.Round()
	case k == KeyBackspace:
		ok = c.buf.Backspace()
	case k == KeyClear:
		c.buf.Clear()
		ok = true
	case k == KeyClearAll:
		c.buf.Clear()
		c.hist.Reset()
		c.result = ""
		ok = true
	case k == KeyEval:
		_, err := c.Evaluate()
		return err
	default:
		return &KeyError{Name: k.String()}
	}
	if !ok {
		return ErrIllegalInput
	}
	return nil
}

// PressAll processes keys in order and returns the error from the last one.
func (c *Calculator) PressAll(keys ...Key) error {
	var err error
	for _, k := range keys {
		err = c.Press(k)
	}
	return err
}

// Evaluate evaluates the current expression. On success, the expression and
// its formatted result are recorded in the history, and the result replaces
// the expression as the seed of the next one. On failure, the expression and
// history are unchanged and Message describes the error.
func (c *Calculator) Evaluate() (string, error) {
	c.err = nil
	if !c.buf.Balanced() {
		c.err = ErrUnbalancedParens
		return "", c.err
	}
	expr := c.buf.Render()
	v, err := c.ctx.calculate(expr)
	if err != nil {
		c.err = classify(err)
		return "", c.err
	}
	r := FormatResult(v)
	if err := c.buf.Seed(r); err != nil {
		c.err = classify(err)
		return "", c.err
	}
	c.hist.Record(expr, r)
	c.result = r
	return r, nil
}

// Expression returns the rendered current expression.
func (c *Calculator) Expression() string {
	return c.buf.Render()
}

// Buffer returns the current expression buffer. Mutating it directly bypasses
// the message bookkeeping of Press.
func (c *Calculator) Buffer() *Buffer {
	return &c.buf
}

// History returns the completed records followed by the in-progress line.
func (c *Calculator) History() []string {
	return append(c.hist.Lines(), c.buf.Render())
}

// Result returns the formatted result of the last successful evaluation, or
// the empty string if there has been none.
func (c *Calculator) Result() string {
	return c.result
}

// Err returns the error from the last key if it was a failed evaluation.
func (c *Calculator) Err() error {
	return c.err
}

// Message returns the user-facing description of the last evaluation error,
// or the empty string if the last key did not fail an evaluation.
func (c *Calculator) Message() string {
	return Message(c.err)
}

// Message returns the user-facing text for an error from a Calculator. It is
// empty for nil and for ErrIllegalInput.
func Message(err error) string {
	switch {
	case err == nil, errors.Is(err, ErrIllegalInput):
		return ""
	case errors.Is(err, ErrUnbalancedParens):
		return "Incorrect number of parentheses"
	case errors.Is(err, ErrDivisionByZero):
		return "You can't divide by zero"
	default:
		return "Error"
	}
}

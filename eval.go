package calculator

import (
	"io"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// Context is a context for evaluating expressions. It is not safe to use a
// Context concurrently.
type Context struct {
	stack  []*big.Float
	nums   map[string]*big.Float
	prec   uint
	places int
	err    error
}

// ContextOption is an option used when creating a context.
type ContextOption interface {
	ctxOption()
}

type (
	precopt   uint
	placesopt int
)

func (precopt) ctxOption()   {}
func (placesopt) ctxOption() {}

// Prec sets the precision of calculations in bits.
func Prec(prec uint) ContextOption {
	return precopt(prec)
}

// Places sets the number of decimal places to which results are rounded. A
// negative value disables rounding.
func Places(n int) ContextOption {
	return placesopt(n)
}

const (
	// DefaultPrec is the precision of a context created without Prec. It
	// matches float64.
	DefaultPrec = 53
	// DefaultPlaces is the rounding of a context created without Places.
	DefaultPlaces = 5
)

// NewContext creates a new evaluation context. If no precision is given, the
// default is 53 bits. If no rounding is given, results are rounded to five
// decimal places.
func NewContext(opts ...ContextOption) *Context {
	ctx := Context{nums: make(map[string]*big.Float), prec: DefaultPrec, places: DefaultPlaces}
	return ctx.Clone(opts...)
}

// Eval evaluates an expression and returns the unrounded result. If an error
// occurs, e.g. a division by zero or an argument to a function is outside the
// function's domain, then the result is nil and ctx.Err returns the error.
func (ctx *Context) Eval(e *Expr) *big.Float {
	switch len(ctx.stack) {
	case 0: // do nothing
	case 1:
		ctx.stack[0] = new(big.Float).SetPrec(ctx.prec)
		ctx.stack = ctx.stack[:0]
	default:
		panic("calculator: Eval during Eval")
	}
	err := e.n.eval(ctx)
	ctx.err = err
	if err != nil {
		ctx.stack = ctx.stack[:0]
		return nil
	}
	return ctx.Result()
}

// Result returns the result obtained after evaluating an expression. Panics if
// ctx has not been used to evaluate an expression. Returns nil if an error
// occurred during evaluation.
func (ctx *Context) Result() *big.Float {
	if ctx.err != nil {
		return nil
	}
	switch len(ctx.stack) {
	case 0:
		panic("calculator: Context.Result called before evaluating any expression")
	case 1:
		return ctx.stack[0]
	default:
		panic("calculator: inconsistent stack: " + strconv.Itoa(len(ctx.stack)) + " items (bad AST?)")
	}
}

// Err returns the error that occurred while evaluating the last expression
// with ctx, if any.
func (ctx *Context) Err() error {
	return ctx.err
}

// Prec returns the precision to which values are computed in the context.
func (ctx *Context) Prec() uint {
	return ctx.prec
}

// Places returns the number of decimal places to which results are rounded.
func (ctx *Context) Places() int {
	return ctx.places
}

// Clone creates a copy of a context and applies options to it. The returned
// context has no Result and is safe to use to evaluate an expression.
func (ctx *Context) Clone(opts ...ContextOption) *Context {
	n := Context{
		stack:  make([]*big.Float, 0, cap(ctx.stack)),
		nums:   make(map[string]*big.Float, len(ctx.nums)),
		prec:   ctx.prec,
		places: ctx.places,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		switch opt := opt.(type) {
		case precopt:
			n.prec = uint(opt)
		case placesopt:
			n.places = int(opt)
		default:
			panic("calculator: unknown option type")
		}
	}
	if n.prec == 0 {
		n.prec = DefaultPrec
	}
	// Copy numbers only if the new precision is no higher than the old, so
	// that we always use the precision we need.
	if n.prec <= ctx.prec {
		for k, v := range ctx.nums {
			n.nums[k] = new(big.Float).SetPrec(n.prec).Set(v)
		}
	}
	return &n
}

// push ensures a settable value on the stack.
func (ctx *Context) push() *big.Float {
	if len(ctx.stack) < cap(ctx.stack) {
		ctx.stack = ctx.stack[:len(ctx.stack)+1]
		if ctx.stack[len(ctx.stack)-1] == nil {
			ctx.stack[len(ctx.stack)-1] = new(big.Float).SetPrec(ctx.prec)
		}
	} else {
		ctx.stack = append(ctx.stack, new(big.Float).SetPrec(ctx.prec))
	}
	return ctx.stack[len(ctx.stack)-1]
}

// pop removes the top from the stack and returns it. The returned value may be
// modified by future node evaluations.
func (ctx *Context) pop() *big.Float {
	r := ctx.stack[len(ctx.stack)-1]
	ctx.stack = ctx.stack[:len(ctx.stack)-1]
	return r
}

// top is a shortcut to get the top element of the stack.
func (ctx *Context) top() *big.Float {
	return ctx.stack[len(ctx.stack)-1]
}

// num gets a possibly cached number from its text. The text may begin or end
// with its decimal point.
func (ctx *Context) num(s string) *big.Float {
	if r := ctx.nums[s]; r != nil {
		return r
	}
	t := s
	if strings.HasPrefix(t, ".") {
		t = "0" + t
	}
	if strings.HasSuffix(t, ".") {
		t += "0"
	}
	r, _, err := new(big.Float).SetPrec(ctx.prec).Parse(t, 10)
	if err != nil {
		panic("calculator: invalid number: " + s + " (" + err.Error() + ")")
	}
	ctx.nums[s] = r
	return r
}

// operands evaluates both sides of a binary node and returns them. l is the
// top of the stack and receives the result.
func (n *node) operands(ctx *Context) (l, r *big.Float, err error) {
	if err := n.left.eval(ctx); err != nil {
		return nil, nil, err
	}
	if err := n.right.eval(ctx); err != nil {
		return nil, nil, err
	}
	r = ctx.pop()
	l = ctx.top()
	return l, r, nil
}

// eval pushes the node's value to the context's stack.
func (n *node) eval(ctx *Context) error {
	switch n.kind {
	case nodeNum:
		ctx.push().Set(ctx.num(n.name))
	case nodeCall:
		r := ctx.push()
		if err := n.left.eval(ctx); err != nil {
			return err
		}
		x := ctx.pop()
		if err := n.fn.Call(ctx, x, r); err != nil {
			return err
		}
	case nodeNeg:
		if err := n.left.eval(ctx); err != nil {
			return err
		}
		v := ctx.top()
		v.Neg(v)
	case nodeNop:
		if err := n.left.eval(ctx); err != nil {
			return err
		}
	case nodeSquare:
		if err := n.left.eval(ctx); err != nil {
			return err
		}
		v := ctx.top()
		v.Mul(v, v)
	case nodeAdd:
		l, r, err := n.operands(ctx)
		if err != nil {
			return err
		}
		l.Add(l, r)
	case nodeSub:
		l, r, err := n.operands(ctx)
		if err != nil {
			return err
		}
		l.Sub(l, r)
	case nodeMul:
		l, r, err := n.operands(ctx)
		if err != nil {
			return err
		}
		l.Mul(l, r)
	case nodeDiv:
		l, r, err := n.operands(ctx)
		if err != nil {
			return err
		}
		if r.Sign() == 0 {
			return &DivisionByZeroError{Op: "/"}
		}
		l.Quo(l, r)
	case nodeIntDiv, nodeMod:
		l, r, err := n.operands(ctx)
		if err != nil {
			return err
		}
		a, _ := l.Float64()
		b, _ := r.Float64()
		if b == 0 {
			// Includes divisors that underflow float64.
			return &DivisionByZeroError{Op: strings.TrimSpace(binsym[n.kind])}
		}
		if math.IsInf(a, 0) || math.IsInf(b, 0) {
			return &OverflowError{Op: strings.TrimSpace(binsym[n.kind])}
		}
		q, m := floorDivMod(a, b)
		if n.kind == nodeIntDiv {
			l.SetFloat64(q)
		} else {
			l.SetFloat64(m)
		}
	case nodePow:
		l, r, err := n.operands(ctx)
		if err != nil {
			return err
		}
		if err := pow(l, l, r); err != nil {
			return err
		}
	default:
		panic("calculator: invalid AST node " + n.kind.String())
	}
	return nil
}

// calculate parses and evaluates src and returns its value rounded to the
// context's places.
func (ctx *Context) calculate(src string) (float64, error) {
	e, err := ParseString(src)
	if err != nil {
		return 0, err
	}
	return ctx.Value(e)
}

// Value evaluates e and converts the result to a float64 rounded to the
// context's places. A result too large for a float64 is an OverflowError.
func (ctx *Context) Value(e *Expr) (float64, error) {
	r := ctx.Eval(e)
	if r == nil {
		return 0, ctx.Err()
	}
	v, _ := r.Float64()
	if math.IsInf(v, 0) {
		ctx.err = &OverflowError{}
		return 0, ctx.err
	}
	return Round(v, ctx.places), nil
}

// Eval is a shortcut to parse an expression and return its result rounded to
// the context's places using the default functions.
func Eval(src io.RuneScanner, opts ...ContextOption) (float64, error) {
	ctx := NewContext(opts...)
	a, err := Parse(src)
	if err != nil {
		return 0, err
	}
	return ctx.Value(a)
}

// EvalString is a shortcut to parse and evaluate a string expression.
func EvalString(src string, opts ...ContextOption) (float64, error) {
	return Eval(strings.NewReader(src), opts...)
}

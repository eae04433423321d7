package calculator

import (
	"errors"
	"math"
	"math/big"
	"strconv"

	"github.com/zephyrtronium/bigfloat"
)

// Func is a prefix function from reals to reals.
type Func interface {
	// Call evaluates the function on x. The function must set r to its result
	// and should not use the value of r otherwise. Call may modify x.
	Call(ctx *Context, x, r *big.Float) error
}

var sqrtFunc = Monadic(func(out, in *big.Float) *big.Float {
	if in.Sign() < 0 {
		panic(DomainError{X: new(big.Float).Copy(in), Func: "√"})
	}
	return out.Sqrt(in)
})

var globalfuncs = map[string]Func{
	"√":    sqrtFunc,
	"sqrt": sqrtFunc,
}

type monadic struct {
	f func(out, in *big.Float) *big.Float
}

func (m monadic) Call(ctx *Context, x, r *big.Float) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		err = r.(error) // panic if not error
		if errors.As(err, &DomainError{}) || errors.As(err, &big.ErrNaN{}) {
			return
		}
		panic(err)
	}()
	r.SetPrec(ctx.Prec())
	m.f(r, x)
	return nil
}

// Monadic wraps a function of one variable into a Func. f must set out to its
// result, to the precision of out; its return value is always ignored. If f is
// called on an argument outside f's domain, it should panic with a DomainError
// or an error of type big.ErrNaN, or that unwraps to either.
func Monadic(f func(out, in *big.Float) *big.Float) Func {
	return monadic{f}
}

// DomainError is an error returned when a function is called on arguments
// outside its domain.
type DomainError struct {
	// X is the out-of-domain argument.
	X *big.Float
	// Func is a name identifying the function.
	Func string
}

func (err DomainError) Error() string {
	r := err.X.Text('g', 10) + " outside domain"
	if err.Func != "" {
		r += " of " + err.Func
	}
	return r
}

// guard is the number of extra bits of precision used for intermediate
// results of exponentiation.
const guard = 64

// pow sets z to x^y, rounded to the precision of z.
func pow(z, x, y *big.Float) error {
	prec := z.Prec()
	switch {
	case y.Sign() == 0:
		z.SetInt64(1)
		return nil
	case x.Sign() == 0:
		if y.Sign() < 0 {
			return &DivisionByZeroError{Op: "^"}
		}
		z.SetInt64(0)
		return nil
	case y.IsInt():
		return powInt(z, x, y)
	case x.Sign() < 0:
		return DomainError{X: new(big.Float).Copy(x), Func: "^"}
	}
	// Positive base, fractional exponent.
	var e big.Float
	e.SetPrec(prec + guard).Abs(y)
	w := new(big.Float).SetPrec(prec + guard).Set(x)
	r := new(big.Float).SetPrec(prec + guard)
	if err := recoverNaN(func() { bigfloat.Pow(r, w, &e) }, "^", x); err != nil {
		return err
	}
	if y.Sign() < 0 {
		r.Quo(new(big.Float).SetInt64(1), r)
	}
	z.Set(r)
	return nil
}

// powInt sets z to x^y for integer y and nonzero x.
func powInt(z, x, y *big.Float) error {
	prec := z.Prec()
	mag := new(big.Float).Abs(x)
	n, acc := y.Int64()
	if acc != big.Exact || n < -math.MaxInt32 || n > math.MaxInt32 {
		// The exponent is so large that the result is 1, 0, or out of range.
		one := big.NewFloat(1)
		c := mag.Cmp(one)
		switch {
		case c == 0:
			neg := x.Sign() < 0 && oddInt(y)
			z.SetInt64(1)
			if neg {
				z.Neg(z)
			}
			return nil
		case (c > 0) == (y.Sign() > 0):
			return &OverflowError{Op: "^"}
		default:
			z.SetInt64(0)
			return nil
		}
	}
	k := n
	if k < 0 {
		k = -k
	}
	b := new(big.Float).SetPrec(prec + guard).Set(x)
	r := new(big.Float).SetPrec(prec + guard).SetInt64(1)
	for ; k > 0; k >>= 1 {
		if k&1 != 0 {
			r.Mul(r, b)
		}
		b.Mul(b, b)
	}
	if n < 0 {
		r.Quo(new(big.Float).SetInt64(1), r)
	}
	if r.IsInf() {
		return &OverflowError{Op: "^"}
	}
	z.Set(r)
	return nil
}

// oddInt reports whether the integer-valued y is odd.
func oddInt(y *big.Float) bool {
	i, _ := y.Int(nil)
	return i.Bit(0) == 1
}

// recoverNaN calls f and converts a panic with big.ErrNaN into a DomainError
// for op on x.
func recoverNaN(f func(), op string, x *big.Float) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		switch r.(type) {
		case big.ErrNaN, *big.ErrNaN:
			err = DomainError{X: new(big.Float).Copy(x), Func: op}
		default:
			panic(r)
		}
	}()
	f()
	return nil
}

// floorDivMod computes the floor quotient and the remainder of a/b, with the
// remainder taking the sign of b. b must be nonzero.
func floorDivMod(a, b float64) (q, m float64) {
	m = math.Mod(a, b)
	q = (a - m) / b
	if m != 0 {
		if (b < 0) != (m < 0) {
			m += b
			q--
		}
	} else {
		m = math.Copysign(0, b)
	}
	if q != 0 {
		f := math.Floor(q)
		if q-f > 0.5 {
			f++
		}
		q = f
	} else {
		q = math.Copysign(0, a/b)
	}
	return q, m
}

// ftoa formats a float64 for error messages.
func ftoa(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}

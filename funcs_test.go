package calculator_test

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/zephyrtronium/calculator"
)

func ExampleMonadic() {
	ctx := calculator.NewContext()
	cube := calculator.Monadic(func(out, in *big.Float) *big.Float {
		out.Mul(in, in)
		return out.Mul(out, in)
	})

	a, _ := calculator.ParseString("cube(2)+1", calculator.ParseFunc("cube", cube))
	fmt.Println(ctx.Eval(a), a)

	// Output:
	// 9 ([cube(2)] + [1])
}

func ExampleDomainError() {
	_, err := calculator.EvalString("√(-4)")
	var de calculator.DomainError
	if errors.As(err, &de) {
		fmt.Println(de.Func, de.X)
	}

	// Output:
	// √ -4
}

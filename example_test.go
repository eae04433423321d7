package calculator_test

import (
	"fmt"

	"github.com/zephyrtronium/calculator"
)

func Example() {
	calc := calculator.New()
	for _, k := range []calculator.Key{
		calculator.KeyOpen, calculator.Key2, calculator.KeyAdd, calculator.Key3,
		calculator.KeyClose, calculator.KeyMul, calculator.Key4, calculator.KeyEval,
	} {
		calc.Press(k)
	}
	calc.PressAll(calculator.KeyDiv, calculator.Key0, calculator.KeyEval)
	for _, line := range calc.History() {
		fmt.Println(line)
	}
	fmt.Println(calc.Message())

	// Output:
	// (2+3)*4 = 20
	// 20/0
	// You can't divide by zero
}

func ExampleEvalString() {
	r, err := calculator.EvalString("7 div 2 + √(9)²")
	fmt.Println(r, err)
	r, err = calculator.EvalString("1/3")
	fmt.Println(r, err)

	// Output:
	// 12 <nil>
	// 0.33333 <nil>
}

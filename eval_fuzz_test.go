//go:build go1.18
// +build go1.18

package calculator_test

import (
	"testing"

	"github.com/zephyrtronium/calculator"
)

func FuzzEval(f *testing.F) {
	f.Add("2+3*4")
	f.Add("7div-2")
	f.Add("√(2)²")
	f.Add("1×2")
	f.Fuzz(func(t *testing.T, s string) {
		calculator.EvalString(s)
	})
}

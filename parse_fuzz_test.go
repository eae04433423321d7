//go:build go1.18
// +build go1.18

package calculator_test

import (
	"strings"
	"testing"

	"github.com/zephyrtronium/calculator"
)

func FuzzParse(f *testing.F) {
	f.Add("(2+3)*4")
	f.Add("-3²")
	f.Add("5 mod 0")
	f.Add("1×2")
	f.Fuzz(func(t *testing.T, s string) {
		calculator.Parse(strings.NewReader(s))
	})
}

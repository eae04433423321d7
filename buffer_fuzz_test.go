//go:build go1.18
// +build go1.18

package calculator_test

import (
	"errors"
	"testing"

	"github.com/zephyrtronium/calculator"
)

// FuzzBuffer checks that any key sequence leaves an expression that is a
// prefix of a valid one: parsing it can only fail for being incomplete.
func FuzzBuffer(f *testing.F) {
	f.Add([]byte("2+3*4"))
	f.Add([]byte("r9)s"))
	f.Add([]byte("(1.5~<-"))
	f.Add([]byte("7d-2m.("))
	const script = "0123456789.+-*/dm^rs()<~"
	f.Fuzz(func(t *testing.T, keys []byte) {
		var b calculator.Buffer
		s := make([]byte, len(keys))
		for i, k := range keys {
			s[i] = script[int(k)%len(script)]
		}
		typ(t, &b, string(s))
		expr := b.Render()
		if expr == "" {
			t.Fatalf("%q rendered empty", s)
		}
		if b.Depth() < 0 {
			t.Fatalf("%q has depth %d", s, b.Depth())
		}
		_, err := calculator.ParseString(expr)
		if err == nil {
			return
		}
		var ee *calculator.EmptyExpressionError
		var be *calculator.BracketError
		if !errors.As(err, &ee) && !errors.As(err, &be) {
			t.Errorf("%q renders %q, which fails with %v", s, expr, err)
		}
	})
}

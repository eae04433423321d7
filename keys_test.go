package calculator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zephyrtronium/calculator"
)

func TestParseKey(t *testing.T) {
	cases := []struct {
		name string
		want calculator.Key
	}{
		{"0", calculator.Key0},
		{"9", calculator.Key9},
		{".", calculator.KeyPoint},
		{"point", calculator.KeyPoint},
		{"+", calculator.KeyAdd},
		{"-", calculator.KeySub},
		{"×", calculator.KeyMul},
		{"*", calculator.KeyMul},
		{"÷", calculator.KeyDiv},
		{"/", calculator.KeyDiv},
		{"div", calculator.KeyIntDiv},
		{"DIV", calculator.KeyIntDiv},
		{"mod", calculator.KeyMod},
		{"^", calculator.KeyPow},
		{"√", calculator.KeySqrt},
		{"Sqrt", calculator.KeySqrt},
		{"²", calculator.KeySquare},
		{"(", calculator.KeyOpen},
		{")", calculator.KeyClose},
		{"round", calculator.KeyRound},
		{"%", calculator.KeyRound},
		{"backspace", calculator.KeyBackspace},
		{"C", calculator.KeyClear},
		{"CA", calculator.KeyClearAll},
		{"=", calculator.KeyEval},
	}
	for _, c := range cases {
		k, err := calculator.ParseKey(c.name)
		require.NoError(t, err, "ParseKey(%q)", c.name)
		assert.Equal(t, c.want, k, "ParseKey(%q)", c.name)
	}

	for _, name := range []string{"", "c", "ca", "sqr", "DIVIDE!", "10"} {
		_, err := calculator.ParseKey(name)
		var ke *calculator.KeyError
		if assert.ErrorAs(t, err, &ke, "ParseKey(%q)", name) {
			assert.Equal(t, name, ke.Name)
		}
	}
}

func TestKeyStringRoundTrip(t *testing.T) {
	for k := calculator.Key0; k <= calculator.KeyEval; k++ {
		got, err := calculator.ParseKey(k.String())
		require.NoError(t, err, "key %d", k)
		assert.Equal(t, k, got)
	}
	assert.Equal(t, "Key(-1)", calculator.Key(-1).String())
}

func TestDigitKey(t *testing.T) {
	for d := 0; d <= 9; d++ {
		k := calculator.DigitKey(d)
		assert.Equal(t, calculator.Key0+calculator.Key(d), k)
	}
	assert.Panics(t, func() { calculator.DigitKey(-1) })
}

func TestHistory(t *testing.T) {
	var h calculator.History
	assert.Zero(t, h.Len())
	h.Record("2+3", "5")
	h.Record("5*2", "10")
	lines := h.Lines()
	assert.Equal(t, []string{"2+3 = 5", "5*2 = 10"}, lines)
	lines[0] = "mutated"
	assert.Equal(t, "2+3 = 5", h.Lines()[0])
	h.Reset()
	assert.Zero(t, h.Len())
}

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zephyrtronium/calculator"
)

func TestREPL(t *testing.T) {
	cases := []struct {
		name     string
		in       string
		autoEval bool
		want     string
	}{
		{
			name: "eval",
			in:   "2+3*4=\n",
			want: "  2+3*4 = 14\n> 14\n",
		},
		{
			name: "no-eval",
			in:   "2+3\n",
			want: "> 2+3\n",
		},
		{
			name:     "auto-eval",
			in:       "2+3\n*2\n",
			autoEval: true,
			want:     "  2+3 = 5\n> 5\n  2+3 = 5\n  5*2 = 10\n> 10\n",
		},
		{
			name: "words",
			in:   "7!2=\n7@2=\n",
			want: "  7div2 = 3\n> 3\n  7div2 = 3\n  7mod2 = 1\n> 1\n",
		},
		{
			name: "sqrt-square",
			in:   "$9)#=\n",
			want: "  √(9)² = 9\n> 9\n",
		},
		{
			name: "division-by-zero",
			in:   "5/0=\n",
			want: "> 5/0\n! You can't divide by zero\n",
		},
		{
			name: "unbalanced",
			in:   "(2+3=\n",
			want: "> (2+3\n! Incorrect number of parentheses\n",
		},
		{
			name: "edit",
			in:   "12<3 . 5%\n",
			want: "> 13\n",
		},
		{
			name: "clear-all",
			in:   "1+1=\nC\n",
			want: "  1+1 = 2\n> 2\n> 0\n",
		},
		{
			name: "unbound",
			in:   "1?=\n",
			want: "  1 = 1\n> 1\n",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var out bytes.Buffer
			calc := calculator.New()
			err := repl(strings.NewReader(c.in), &out, calc, DefaultKeymap(), c.autoEval)
			require.NoError(t, err)
			assert.Equal(t, c.want, out.String())
		})
	}
}

func TestEvalCommand(t *testing.T) {
	cases := []struct {
		name  string
		args  []string
		stdin string
		want  string
	}{
		{"args", []string{"eval", "2+3*4", "7 div 2"}, "", "14\n3\n"},
		{"stdin", []string{"eval"}, "1/3", "0.33333\n"},
		{"lines", []string{"eval", "-n"}, "1+1\n\n2*3\n", "2\n6\n"},
		{"places", []string{"eval", "--places", "2", "2/3"}, "", "0.67\n"},
		{"error", []string{"eval", "--places", "5", "5/0"}, "", "You can't divide by zero (division by zero in \"/\")\n"},
		{"echo", []string{"eval", "--echo", "1+2"}, "", "([1] + [2]) : 3\n"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var out bytes.Buffer
			rootCmd.SetArgs(c.args)
			rootCmd.SetIn(strings.NewReader(c.stdin))
			rootCmd.SetOut(&out)
			t.Cleanup(func() {
				evalCmd.Flags().Set("echo", "false")
				evalCmd.Flags().Set("lines", "false")
			})
			require.NoError(t, rootCmd.Execute())
			assert.Equal(t, c.want, out.String())
		})
	}
}

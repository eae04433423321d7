package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"unicode"

	"github.com/zephyrtronium/calculator"
)

// repl reads lines of keystrokes from in and presses them on calc. After each
// line it writes the history, the current expression, and any message to out.
// With autoEval, the end of a line evaluates unless the line already did.
func repl(in io.Reader, out io.Writer, calc *calculator.Calculator, keys Keymap, autoEval bool) error {
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		last := calculator.Key(-1)
		for _, r := range sc.Text() {
			if unicode.IsSpace(r) {
				continue
			}
			k, ok := keys[r]
			if !ok {
				log.Printf("no key bound to %q", r)
				continue
			}
			calc.Press(k)
			last = k
		}
		if autoEval && last != calculator.KeyEval && last != -1 {
			calc.Evaluate()
		}
		if err := show(out, calc); err != nil {
			return err
		}
	}
	return sc.Err()
}

// show writes the display of a calculator.
func show(out io.Writer, calc *calculator.Calculator) error {
	lines := calc.History()
	for _, line := range lines[:len(lines)-1] {
		if _, err := fmt.Fprintf(out, "  %s\n", line); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(out, "> %s\n", lines[len(lines)-1]); err != nil {
		return err
	}
	if msg := calc.Message(); msg != "" {
		if _, err := fmt.Fprintf(out, "! %s\n", msg); err != nil {
			return err
		}
	}
	return nil
}

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zephyrtronium/calculator"
)

func runEval(cmd *cobra.Command, args []string) error {
	_, opts, err := setup(cmd)
	if err != nil {
		return err
	}
	inname, _ := cmd.Flags().GetString("in")
	nl, _ := cmd.Flags().GetBool("lines")
	echo, _ := cmd.Flags().GetBool("echo")

	var ins []io.RuneScanner
	f, closer, err := infile(inname, len(args) == 0, cmd.InOrStdin())
	if err != nil {
		return err
	}
	if closer != nil {
		defer closer.Close()
	}
	if f != nil {
		ins = append(ins, f)
	}
	for _, arg := range args {
		ins = append(ins, strings.NewReader(arg))
	}

	var popts []calculator.ParseOption
	if nl {
		popts = append(popts, calculator.StopOn('\n'))
	}
	p, err := parseAll(ins, popts)
	if err != nil {
		return err
	}

	ctx := calculator.NewContext(opts...)
	out := cmd.OutOrStdout()
	for _, a := range p {
		if echo {
			fmt.Fprintf(out, "%v : ", a)
		}
		r, err := ctx.Value(a)
		if err != nil {
			fmt.Fprintf(out, "%s (%v)\n", calculator.Message(err), err)
			continue
		}
		fmt.Fprintln(out, calculator.FormatResult(r))
	}
	return nil
}

// parseAll parses every expression from each input.
func parseAll(ins []io.RuneScanner, opts []calculator.ParseOption) ([]*calculator.Expr, error) {
	var p []*calculator.Expr
	for _, in := range ins {
		for {
			// First check whether we're done with the input. Skip blank
			// lines between expressions.
			r, _, err := in.ReadRune()
			if err != nil {
				if errors.Is(err, io.EOF) {
					break
				}
				return nil, err
			}
			if r == '\n' {
				continue
			}
			in.UnreadRune()
			a, err := calculator.Parse(in, opts...)
			if err != nil {
				return nil, err
			}
			p = append(p, a)
		}
	}
	return p, nil
}

// infile opens the input named by inname, with "-" or std meaning stdin.
func infile(inname string, std bool, stdin io.Reader) (io.RuneScanner, io.Closer, error) {
	switch {
	case inname != "" && inname != "-":
		f, err := os.Open(inname)
		if err != nil {
			return nil, nil, err
		}
		return bufio.NewReader(f), f, nil
	case inname == "-", std:
		return bufio.NewReader(stdin), nil, nil
	}
	return nil, nil, nil
}

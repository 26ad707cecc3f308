package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/hashicorp/go-multierror"
	"github.com/olekukonko/tablewriter"

	"github.com/zephyrtronium/formula"
)

// errcolor highlights errors. fatih/color turns itself off when the output
// isn't a terminal.
var errcolor = color.New(color.FgRed)

func main() {
	log.SetFlags(0)
	var (
		inname, verb, varsname string
		given                  definitions
		nl, echo, toks         bool
	)
	flag.StringVar(&inname, "in", "", "input file (default stdin if no args given)")
	flag.StringVar(&verb, "fmt", "%g", "result formatting string")
	flag.Func("given", "name=value variable definition (any number of times)", given.add)
	flag.StringVar(&varsname, "vars", "", "YAML file of name: value variable definitions")
	flag.BoolVar(&nl, "n", false, "parse separate input lines as separate formulas")
	flag.BoolVar(&echo, "echo", false, "print normalized formulas")
	flag.BoolVar(&toks, "tokens", false, "print a table of each formula's tokens")
	flag.Parse()

	lookup, err := variables(given, varsname)
	if err != nil {
		log.Fatal(err)
	}

	var srcs []string
	f, err := infile(inname, flag.NArg() == 0)
	if err != nil {
		log.Fatal(err)
	}
	if f != nil {
		srcs, err = readInput(f, nl)
		if err != nil {
			log.Fatal(err)
		}
		if f != os.Stdin {
			f.Close()
		}
	}
	srcs = append(srcs, flag.Args()...)

	p, err := parseAll(srcs)
	if err != nil {
		errcolor.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	verb += "\n"
	for _, a := range p {
		if toks {
			printTokens(os.Stdout, a)
		}
		if echo {
			fmt.Printf("%v : ", a)
		}
		r, err := a.Eval(lookup)
		if err != nil {
			errcolor.Println(err)
			continue
		}
		fmt.Printf(verb, r)
	}
}

func infile(inname string, std bool) (*os.File, error) {
	switch {
	case inname != "" && inname != "-":
		f, err := os.Open(inname)
		if err != nil {
			return nil, fmt.Errorf("opening input: %w", err)
		}
		return f, nil
	case inname == "-", std:
		return os.Stdin, nil
	}
	return nil, nil
}

// readInput reads formula sources from r. With nl, each non-blank line is a
// separate formula; otherwise all of r is one formula.
func readInput(r io.Reader, nl bool) ([]string, error) {
	if !nl {
		b, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading input: %w", err)
		}
		return []string{string(b)}, nil
	}
	var srcs []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if strings.TrimSpace(sc.Text()) == "" {
			continue
		}
		srcs = append(srcs, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return srcs, nil
}

// parseAll parses every source so that all format errors can be reported
// together.
func parseAll(srcs []string) ([]*formula.Formula, error) {
	var errs *multierror.Error
	p := make([]*formula.Formula, 0, len(srcs))
	for i, src := range srcs {
		a, err := formula.Parse(src)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("formula %d: %w", i+1, err))
			continue
		}
		p = append(p, a)
	}
	return p, errs.ErrorOrNil()
}

func printTokens(w io.Writer, a *formula.Formula) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Pos", "Kind", "Text", "Value"})
	for _, tok := range a.Tokens() {
		var v string
		if tok.Kind == formula.TokenNum {
			v = strconv.FormatFloat(tok.Num, 'g', -1, 64)
		}
		table.Append([]string{strconv.Itoa(tok.Pos), tok.Kind.String(), tok.Text, v})
	}
	table.Render()
}

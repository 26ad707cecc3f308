package main

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/zephyrtronium/formula"
)

// definitions is a list of name=value pairs from the command line, in order.
type definitions [][2]string

func (d *definitions) add(s string) error {
	v := strings.SplitN(s, "=", 2)
	if len(v) != 2 {
		return fmt.Errorf(`variable definitions must be "name=value", not %q`, s)
	}
	name := strings.TrimSpace(v[0])
	if !isVar(name) {
		return fmt.Errorf("%q is not a variable name", name)
	}
	*d = append(*d, [2]string{name, strings.TrimSpace(v[1])})
	return nil
}

// variables creates the Lookup used to evaluate formulas. Each command-line
// definition is itself a formula, evaluated with the vars file and the
// definitions before it. Command-line definitions take priority over the file.
func variables(given definitions, varsname string) (formula.Lookup, error) {
	var file formula.Lookup
	if varsname != "" {
		b, err := os.ReadFile(varsname)
		if err != nil {
			return nil, fmt.Errorf("reading variables: %w", err)
		}
		vars, err := decodeVars(b)
		if err != nil {
			return nil, fmt.Errorf("reading variables from %s: %w", varsname, err)
		}
		file = formula.MapLookup(vars)
	}
	defs := make(map[string]float64, len(given))
	lookup := formula.Chain(formula.MapLookup(defs), file)
	for _, d := range given {
		r, err := formula.EvalString(d[1], lookup)
		if err != nil {
			return nil, fmt.Errorf("setting %s: %w", d[0], err)
		}
		defs[d[0]] = r
	}
	return lookup, nil
}

// decodeVars decodes a YAML mapping of variable names to numbers.
func decodeVars(b []byte) (map[string]float64, error) {
	var vars map[string]float64
	if err := yaml.Unmarshal(b, &vars); err != nil {
		return nil, err
	}
	for name := range vars {
		if !isVar(name) {
			return nil, fmt.Errorf("%q is not a variable name", name)
		}
	}
	return vars, nil
}

func isVar(name string) bool {
	toks := formula.Tokenize(name)
	return len(toks) == 1 && toks[0].Kind == formula.TokenVar && toks[0].Text == name
}

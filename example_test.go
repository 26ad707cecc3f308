package formula_test

import (
	"errors"
	"fmt"

	"github.com/zephyrtronium/formula"
)

func Example() {
	f, err := formula.Parse("(x + y) * (z / x) * 1.0")
	if err != nil {
		panic(err)
	}
	for _, x := range []float64{1, 2, 4} {
		vars := map[string]float64{"x": x, "y": 6, "z": 8}
		r, err := f.Eval(formula.MapLookup(vars))
		if err != nil {
			panic(err)
		}
		fmt.Printf("x = %g   result = %g\n", x, r)
	}

	// Output:
	// x = 1   result = 56
	// x = 2   result = 32
	// x = 4   result = 20
}

func ExampleParse() {
	_, err := formula.Parse("2 5 + 3")
	fmt.Println(err)

	var ferr *formula.FormatError
	if errors.As(err, &ferr) {
		fmt.Println(ferr.Rule == formula.RuleOperator, ferr.Pos())
	}

	// Output:
	// 3: expected an operator or ) but found "5"
	// true 3
}

func ExampleFormula_Eval() {
	f, _ := formula.Parse("A1 / (B1 - 2)")
	cells := map[string]float64{"A1": 10, "B1": 2}
	_, err := f.Eval(formula.MapLookup(cells))
	fmt.Println(err, errors.Is(err, formula.ErrDivideByZero))

	_, err = f.Eval(formula.MapLookup(map[string]float64{"B1": 4}))
	fmt.Println(err, errors.Is(err, formula.ErrUndefined))

	// Output:
	// 13: division by zero true
	// 1: undefined variable "A1" true
}

func ExampleChain() {
	f, _ := formula.Parse("rate * hours + bonus")
	given := formula.MapLookup(map[string]float64{"rate": 20, "hours": 7.5})
	r, _ := f.Eval(formula.Chain(given, formula.ConstLookup(0)))
	fmt.Println(r)

	// Output:
	// 150
}

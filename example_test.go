package calc_test

import (
	"fmt"
	"math"

	"github.com/zephyrtronium/calc"
)

func ExampleEngine_Compile() {
	e, _ := calc.New()
	e.DefineVariable("x", 0)
	x, _ := e.Compile("x*x + 1")
	fmt.Println(x)
	for i := 0; i < 3; i++ {
		e.SetVariable("x", float32(i))
		r, _ := e.Eval(x)
		fmt.Println(r)
	}

	// Output:
	// x x * 1 +
	// 1
	// 2
	// 5
}

func ExampleDyadic() {
	e, _ := calc.New()
	e.DefineFunction("hypot", calc.Dyadic(func(x, y float32) float32 {
		return float32(math.Hypot(float64(x), float64(y)))
	}))
	fmt.Println(e.Evaluate("hypot(3, 4)"))

	// Output:
	// 5 <nil>
}

func ExampleEngine_DefineOperator() {
	e, _ := calc.New()
	e.DefineOperator('%', 3, true, calc.Dyadic(func(x, y float32) float32 {
		return float32(math.Mod(float64(x), float64(y)))
	}))
	x, _ := e.Compile("7 % 4 * 2")
	r, _ := e.Eval(x)
	fmt.Println(x, "=", r)

	// Output:
	// 7 4 % 2 * = 6
}

// Package calc implements an embeddable single-precision calculator.
//
// An Engine compiles infix expressions over numbers, variables, and
// registered functions and operators into postfix form, then evaluates the
// compiled form against its variable store. "2.1+-3.2*5^(3-1)" is a
// valid expression, as is "pow(x, 2) + -y" once x, y, and pow are defined.
// The built-in operators are + - * / and ^, where "2^3^2" is "2^(3^2)"
// and "-2^2" is "(-2)^2".
//
// Compiling once and evaluating many times is the intended pattern:
//
//	e, _ := calc.New()
//	e.DefineVariable("x", 0)
//	x, _ := e.Compile("x*x + 1")
//	for i := 0; i < 10; i++ {
//		e.SetVariable("x", float32(i))
//		r, _ := e.Eval(x)
//		fmt.Println(r)
//	}
//
// Tokenization is deliberately simple. Every rune which is itself a defined
// name (operators, parentheses, the comma, and any single-rune variable or
// function) splits the input, and whitespace splits everything else into
// words. A longer name containing such a rune can be defined but never
// written.
package calc

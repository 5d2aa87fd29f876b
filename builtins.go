package calc

import (
	"errors"
	"math"
	"math/big"

	"github.com/zephyrtronium/bigfloat"
)

// builtinPrec is the precision in bits at which builtins compute before
// rounding to float32.
const builtinPrec = 64

// DefineBuiltins defines the variables pi and euler and the functions exp, ln,
// log (base 10), sqrt, pow, sin, cos, tan, and abs. exp, ln, log, sqrt, and
// pow are computed in extended precision and rounded once to float32.
// Arguments outside a function's domain give NaN. Euler's number is named
// euler rather than e, since a one-rune name would split every word
// containing it, exp included. If any of the names is already defined,
// DefineBuiltins returns a NameInUseError and defines nothing.
func DefineBuiltins(e *Engine) error {
	vars := []struct {
		name string
		val  float32
	}{
		{"pi", constant(bigfloat.Pi)},
		{"euler", constant(func(z *big.Float) *big.Float {
			one := new(big.Float).SetPrec(z.Prec()).SetInt64(1)
			return bigfloat.Exp(z, one)
		})},
	}
	funcs := []struct {
		name string
		f    Func
	}{
		{"exp", Monadic(exp)},
		{"ln", Monadic(ln)},
		{"log", Monadic(log10)},
		{"sqrt", Monadic(sqrt)},
		{"pow", Dyadic(pow)},
		{"sin", Monadic(float64Func(math.Sin))},
		{"cos", Monadic(float64Func(math.Cos))},
		{"tan", Monadic(float64Func(math.Tan))},
		{"abs", Monadic(float64Func(math.Abs))},
	}
	for _, v := range vars {
		if err := e.unused(v.name); err != nil {
			return err
		}
	}
	for _, f := range funcs {
		if err := e.unused(f.name); err != nil {
			return err
		}
	}
	for _, v := range vars {
		if err := e.DefineVariable(v.name, v.val); err != nil {
			return err
		}
	}
	for _, f := range funcs {
		if err := e.DefineFunction(f.name, f.f); err != nil {
			return err
		}
	}
	return nil
}

// constant computes a constant in extended precision.
func constant(f func(z *big.Float) *big.Float) float32 {
	r, _ := f(new(big.Float).SetPrec(builtinPrec)).Float32()
	return r
}

// extended applies f to x in extended precision. x must be finite. If f
// panics with big.ErrNaN, the result is NaN.
func extended(f func(z, x *big.Float) *big.Float, x float32) (r float32) {
	defer func() {
		p := recover()
		if p == nil {
			return
		}
		err, ok := p.(error)
		if !ok || !errors.As(err, &big.ErrNaN{}) {
			panic(p)
		}
		r = float32(math.NaN())
	}()
	in := new(big.Float).SetPrec(builtinPrec).SetFloat64(float64(x))
	r, _ = f(new(big.Float).SetPrec(builtinPrec), in).Float32()
	return r
}

func finite(x float32) bool {
	return !math.IsNaN(float64(x)) && !math.IsInf(float64(x), 0)
}

// maxExp bounds the arguments exp computes in extended precision. Beyond it
// the float32 result is 0 or +Inf regardless.
const maxExp = 128

func exp(x float32) float32 {
	if !finite(x) || x > maxExp || x < -maxExp {
		return float32(math.Exp(float64(x)))
	}
	return extended(bigfloat.Exp, x)
}

func ln(x float32) float32 {
	if !finite(x) || x <= 0 {
		return float32(math.Log(float64(x)))
	}
	return extended(bigfloat.Log, x)
}

func log10(x float32) float32 {
	if !finite(x) || x <= 0 {
		return float32(math.Log10(float64(x)))
	}
	return extended(func(z, x *big.Float) *big.Float {
		bigfloat.Log(z, x)
		ten := new(big.Float).SetPrec(z.Prec()).SetInt64(10)
		bigfloat.Log(ten, ten)
		return z.Quo(z, ten)
	}, x)
}

func sqrt(x float32) float32 {
	if !finite(x) || x < 0 {
		return float32(math.Sqrt(float64(x)))
	}
	return extended(func(z, x *big.Float) *big.Float { return z.Sqrt(x) }, x)
}

func pow(x, y float32) float32 {
	// bigfloat.Pow handles only positive finite bases.
	if !finite(x) || !finite(y) || x <= 0 {
		return float32(math.Pow(float64(x), float64(y)))
	}
	if math.Abs(float64(y)*math.Log2(float64(x))) > maxExp {
		// Overflows or underflows float32.
		return float32(math.Pow(float64(x), float64(y)))
	}
	return extended(func(z, b *big.Float) *big.Float {
		w := new(big.Float).SetPrec(z.Prec()).SetFloat64(float64(y))
		return bigfloat.Pow(z, b, w)
	}, x)
}

// float64Func adapts a float64 function from package math.
func float64Func(f func(float64) float64) func(float32) float32 {
	return func(x float32) float32 {
		return float32(f(float64(x)))
	}
}

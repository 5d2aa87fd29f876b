package calc

// Func is a function or operator callback of one or two float32 arguments.
type Func interface {
	// Arity returns the number of operands the function consumes, either 1
	// or 2. The evaluator collects exactly that many operands before Call.
	Arity() int
	// Call evaluates the function. Functions of arity 1 must ignore y.
	Call(x, y float32) float32
}

type monadic func(x float32) float32

func (f monadic) Arity() int { return 1 }

func (f monadic) Call(x, _ float32) float32 {
	return f(x)
}

// Monadic wraps a function of one argument into a Func.
func Monadic(f func(x float32) float32) Func {
	if f == nil {
		return nil
	}
	return monadic(f)
}

type dyadic func(x, y float32) float32

func (f dyadic) Arity() int { return 2 }

func (f dyadic) Call(x, y float32) float32 {
	return f(x, y)
}

// Dyadic wraps a function of two arguments into a Func.
func Dyadic(f func(x, y float32) float32) Func {
	if f == nil {
		return nil
	}
	return dyadic(f)
}

// maxArity is the largest number of operands a Func may consume.
const maxArity = 2

func checkFunc(name string, f Func) error {
	if f == nil {
		return &DefinitionError{Name: name, Reason: "nil function"}
	}
	if n := f.Arity(); n < 1 || n > maxArity {
		return &DefinitionError{Name: name, Reason: "arity must be 1 or 2"}
	}
	return nil
}

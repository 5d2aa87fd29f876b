package calc

import "math"

// Built-in operator glyphs and grouping symbols.
const (
	Plus  = '+'
	Minus = '-'
	Mul   = '*'
	Div   = '/'
	Pow   = '^'

	Open  = '('
	Close = ')'
	Sep   = ','
)

// table holds the names an engine knows along with the function registry and
// the variable store their handles index. All three only grow.
type table struct {
	// syms maps every registered name to its descriptor.
	syms map[string]symbol
	// funcs is the function registry. Operators and functions share it.
	funcs []Func
	// vals is the variable store, and vars holds the variable names by slot.
	vals []float32
	vars []string
	// neg is the unary minus operator. It has a handle but no name in syms.
	neg symbol
	// line is the handle space the table issues into.
	line *lineage
}

func newTable() *table {
	t := &table{syms: make(map[string]symbol)}
	t.neg = symbol{
		kind:   symOperator,
		name:   negName,
		handle: t.addFunc(Monadic(func(x float32) float32 { return -x })),
		prec:   5,
	}
	t.mustOperator(Plus, 2, true, func(x, y float32) float32 { return x + y })
	t.mustOperator(Minus, 2, true, func(x, y float32) float32 { return x - y })
	t.mustOperator(Mul, 3, true, func(x, y float32) float32 { return x * y })
	t.mustOperator(Div, 3, true, func(x, y float32) float32 { return x / y })
	t.mustOperator(Pow, 4, false, func(x, y float32) float32 {
		return float32(math.Pow(float64(x), float64(y)))
	})
	t.syms[string(Open)] = symbol{kind: symOpen}
	t.syms[string(Close)] = symbol{kind: symClose}
	t.syms[string(Sep)] = symbol{kind: symSep}
	t.line = root.split(len(t.funcs), len(t.vals))
	return t
}

func (t *table) mustOperator(glyph rune, prec int, left bool, f func(x, y float32) float32) {
	if err := t.operator(glyph, prec, left, Dyadic(f)); err != nil {
		panic(err)
	}
}

// register binds name to s. Names are unique across every symbol kind.
func (t *table) register(name string, s symbol) error {
	if t.exists(name) {
		return &NameInUseError{Name: name, Kind: t.syms[name].kind.String()}
	}
	s.name = name
	t.syms[name] = s
	return nil
}

func (t *table) lookup(name string) (symbol, bool) {
	s, ok := t.syms[name]
	return s, ok
}

func (t *table) exists(name string) bool {
	_, ok := t.syms[name]
	return ok
}

// addFunc appends f to the function registry and returns its handle.
func (t *table) addFunc(f Func) int {
	t.funcs = append(t.funcs, f)
	return len(t.funcs) - 1
}

func (t *table) operator(glyph rune, prec int, left bool, f Func) error {
	name := string(glyph)
	if err := checkName(name); err != nil {
		return err
	}
	if err := checkFunc(name, f); err != nil {
		return err
	}
	// Check before addFunc so a failed definition leaves no registry entry.
	if t.exists(name) {
		return &NameInUseError{Name: name, Kind: t.syms[name].kind.String()}
	}
	return t.register(name, symbol{kind: symOperator, handle: t.addFunc(f), prec: prec, left: left})
}

func (t *table) function(name string, f Func) error {
	if err := checkName(name); err != nil {
		return err
	}
	if err := checkFunc(name, f); err != nil {
		return err
	}
	if t.exists(name) {
		return &NameInUseError{Name: name, Kind: t.syms[name].kind.String()}
	}
	return t.register(name, symbol{kind: symFunction, handle: t.addFunc(f)})
}

// variable appends a value to the variable store and binds name to its slot.
func (t *table) variable(name string, v float32) error {
	if err := checkName(name); err != nil {
		return err
	}
	if err := t.register(name, symbol{kind: symVariable, handle: len(t.vals)}); err != nil {
		return err
	}
	t.vals = append(t.vals, v)
	t.vars = append(t.vars, name)
	return nil
}

// slot returns the variable store slot bound to name.
func (t *table) slot(name string) (int, error) {
	s, ok := t.syms[name]
	if !ok {
		return 0, &NameError{Name: name}
	}
	if s.kind != symVariable {
		return 0, &KindError{Name: name, Kind: s.kind.String()}
	}
	return s.handle, nil
}

// clone copies t. The copy shares handles with t but not storage, so later
// registrations and updates on either are invisible to the other. Both t and
// the copy move to new lineages so that handles either issues afterward are
// not mistaken for the other's.
func (t *table) clone() *table {
	n := &table{
		syms:  make(map[string]symbol, len(t.syms)),
		funcs: append([]Func(nil), t.funcs...),
		vals:  append([]float32(nil), t.vals...),
		vars:  append([]string(nil), t.vars...),
		neg:   t.neg,
		line:  t.line.split(len(t.funcs), len(t.vals)),
	}
	for k, v := range t.syms {
		n.syms[k] = v
	}
	t.line = t.line.split(len(t.funcs), len(t.vals))
	return n
}

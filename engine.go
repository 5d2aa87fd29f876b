package calc

import "sort"

// Engine compiles and evaluates expressions. It owns a symbol table, the
// registry of functions and operators, and the store of variable values. All
// three only grow; names are never removed.
//
// An Engine is not safe for concurrent use. Use Clone to give each goroutine
// its own variable store.
type Engine struct {
	t     *table
	cache *exprCache
	// scratch is reused by Eval for the consumable copy of an expression.
	scratch []symbol
	busy    bool
}

// Option is an option used when creating an engine.
type Option interface {
	engineOption()
}

type (
	varopt struct {
		name string
		val  float32
	}
	varsopt     map[string]float32
	cacheopt    int
	builtinsopt struct{}
)

func (varopt) engineOption()      {}
func (varsopt) engineOption()     {}
func (cacheopt) engineOption()    {}
func (builtinsopt) engineOption() {}

// SetVar defines a variable, or sets its value if it is already defined.
func SetVar(name string, val float32) Option {
	return varopt{name, val}
}

// SetVars defines or sets any number of variables. Names are defined in
// sorted order so that their slots are deterministic.
func SetVars(vars map[string]float32) Option {
	return varsopt(vars)
}

// CacheSize sets the number of compiled expressions Evaluate keeps. Zero
// disables the cache. The default is DefaultCacheSize.
func CacheSize(n int) Option {
	return cacheopt(n)
}

// Builtins defines the functions and constants of DefineBuiltins.
func Builtins() Option {
	return builtinsopt{}
}

// New creates an engine with the operators + - * / ^, grouping parentheses,
// and the comma argument separator. Options apply builtins first, then the
// remaining options in order.
func New(opts ...Option) (*Engine, error) {
	e := &Engine{
		t:     newTable(),
		cache: newExprCache(DefaultCacheSize),
	}
	for _, opt := range opts {
		if _, ok := opt.(builtinsopt); ok {
			if err := DefineBuiltins(e); err != nil {
				return nil, err
			}
			break
		}
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		switch opt := opt.(type) {
		case varopt:
			if err := e.setOrDefine(opt.name, opt.val); err != nil {
				return nil, err
			}
		case varsopt:
			names := make([]string, 0, len(opt))
			for k := range opt {
				names = append(names, k)
			}
			sort.Strings(names)
			for _, k := range names {
				if err := e.setOrDefine(k, opt[k]); err != nil {
					return nil, err
				}
			}
		case cacheopt:
			e.cache = newExprCache(int(opt))
		case builtinsopt:
			// Already done.
		default:
			panic("calc: unknown option type")
		}
	}
	return e, nil
}

func (e *Engine) setOrDefine(name string, val float32) error {
	if e.HasVariable(name) {
		return e.SetVariable(name, val)
	}
	return e.DefineVariable(name, val)
}

// Compile converts an infix expression into a reusable compiled form.
func (e *Engine) Compile(src string) (*Expr, error) {
	toks, err := e.t.tokenize(src)
	if err != nil {
		return nil, err
	}
	post, err := shunt(e.t.resolveSigns(toks))
	if err != nil {
		return nil, err
	}
	return &Expr{post: post, line: e.t.line}, nil
}

// Eval evaluates a compiled expression with the current variable values. x
// may use any name e shares with the engine that compiled it through Clone.
// Names defined on either side after the clone give UndefinedVariableError
// or UndefinedFunctionError, as do names from an unrelated engine. A nil x
// gives EmptyExpressionError.
func (e *Engine) Eval(x *Expr) (float32, error) {
	if x == nil {
		return 0, &EmptyExpressionError{}
	}
	var p []symbol
	if e.busy {
		// A function is evaluating an expression from within Eval.
		p = make([]symbol, len(x.post))
	} else {
		e.busy = true
		defer func() { e.busy = false }()
		if cap(e.scratch) < len(x.post) {
			e.scratch = make([]symbol, len(x.post))
		}
		p = e.scratch[:len(x.post)]
	}
	copy(p, x.post)
	return e.t.run(p, x.line)
}

// Evaluate compiles and evaluates src. Compiled expressions are cached by
// source text until the next definition.
func (e *Engine) Evaluate(src string) (float32, error) {
	x, ok := e.cache.get(src)
	if !ok {
		var err error
		x, err = e.Compile(src)
		if err != nil {
			return 0, err
		}
		e.cache.set(src, x)
	}
	return e.Eval(x)
}

// DefineVariable defines a new variable with an initial value. The variable
// receives the next slot in the variable store.
func (e *Engine) DefineVariable(name string, val float32) error {
	if err := e.t.variable(name, val); err != nil {
		return err
	}
	e.cache.clear()
	return nil
}

// SetVariable updates the value of a defined variable.
func (e *Engine) SetVariable(name string, val float32) error {
	k, err := e.t.slot(name)
	if err != nil {
		return err
	}
	e.t.vals[k] = val
	return nil
}

// Variable returns the value of a defined variable.
func (e *Engine) Variable(name string) (float32, error) {
	k, err := e.t.slot(name)
	if err != nil {
		return 0, err
	}
	return e.t.vals[k], nil
}

// Variables returns the names of all variables in the order they were
// defined.
func (e *Engine) Variables() []string {
	return append([]string(nil), e.t.vars...)
}

// DefineOperator defines a single-rune operator. Operators with greater prec
// bind more tightly; the built-in operators use 2 for + and -, 3 for * and /,
// and 4 for ^, and negation binds at 5. left selects left associativity.
// An operator of arity 1 applies to the operand that follows it.
func (e *Engine) DefineOperator(glyph rune, prec int, left bool, f Func) error {
	if err := e.t.operator(glyph, prec, left, f); err != nil {
		return err
	}
	e.cache.clear()
	return nil
}

// DefineFunction defines a function. Calls are written name(x) or
// name(x, y) according to the function's arity.
func (e *Engine) DefineFunction(name string, f Func) error {
	if err := e.t.function(name, f); err != nil {
		return err
	}
	e.cache.clear()
	return nil
}

// HasSymbol returns whether name is defined as anything, including the
// grouping symbols and the argument separator.
func (e *Engine) HasSymbol(name string) bool {
	return e.t.exists(name)
}

// HasFunction returns whether name is defined as a function.
func (e *Engine) HasFunction(name string) bool {
	return e.is(name, symFunction)
}

// HasOperator returns whether glyph is defined as an operator.
func (e *Engine) HasOperator(glyph rune) bool {
	return e.is(string(glyph), symOperator)
}

// HasVariable returns whether name is defined as a variable.
func (e *Engine) HasVariable(name string) bool {
	return e.is(name, symVariable)
}

// unused returns a NameInUseError if name is defined.
func (e *Engine) unused(name string) error {
	if s, ok := e.t.lookup(name); ok {
		return &NameInUseError{Name: name, Kind: s.kind.String()}
	}
	return nil
}

func (e *Engine) is(name string, kind symbolKind) bool {
	s, ok := e.t.lookup(name)
	return ok && s.kind == kind
}

// HasSymbolIn compiles src and returns whether it uses name as a variable,
// function, or operator.
func (e *Engine) HasSymbolIn(name, src string) (bool, error) {
	x, err := e.Compile(src)
	if err != nil {
		return false, err
	}
	return x.HasSymbol(name), nil
}

// HasVariableIn compiles src and returns whether it uses the named variable.
func (e *Engine) HasVariableIn(name, src string) (bool, error) {
	x, err := e.Compile(src)
	if err != nil {
		return false, err
	}
	return x.HasVariable(name), nil
}

// HasFunctionIn compiles src and returns whether it calls the named function.
func (e *Engine) HasFunctionIn(name, src string) (bool, error) {
	x, err := e.Compile(src)
	if err != nil {
		return false, err
	}
	return x.HasFunction(name), nil
}

// HasOperatorIn compiles src and returns whether it applies the operator.
func (e *Engine) HasOperatorIn(glyph rune, src string) (bool, error) {
	x, err := e.Compile(src)
	if err != nil {
		return false, err
	}
	return x.HasOperator(glyph), nil
}

// Clone creates a copy of an engine. The copy has the same names, functions,
// and variable values. Later definitions and updates on one engine are not
// visible to the other. Expressions compiled by either engine may be
// evaluated by the other as long as they use only names defined before the
// clone.
func (e *Engine) Clone() *Engine {
	n := &Engine{t: e.t.clone()}
	if e.cache != nil {
		n.cache = newExprCache(e.cache.size)
	}
	return n
}

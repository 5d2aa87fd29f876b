package calc

// run reduces the postfix sequence p in place and returns its value. Each
// operator or function consumes the nearest unconsumed operands before it,
// marking their slots empty, and is replaced by a literal holding its result.
// p must be a private copy of an expression compiled under the lineage l.
// Handles issued outside the part of l that t shares are undefined.
func (t *table) run(p []symbol, l *lineage) (float32, error) {
	if len(p) == 0 {
		return 0, &EmptyExpressionError{}
	}
	lim := t.limits(l)
	for i := range p {
		s := &p[i]
		if s.kind != symOperator && s.kind != symFunction {
			continue
		}
		if s.handle < 0 || s.handle >= lim.funcs {
			return 0, &UndefinedFunctionError{Name: s.name, Handle: s.handle}
		}
		f := t.funcs[s.handle]
		n := f.Arity()
		if n < 1 || n > maxArity {
			return 0, &DefinitionError{Name: s.name, Reason: "arity must be 1 or 2"}
		}
		var args [maxArity]float32
		k := n
		for j := i - 1; j >= 0 && k > 0; j-- {
			switch p[j].kind {
			case symLiteral, symVariable:
				v, err := t.value(p[j], lim)
				if err != nil {
					return 0, err
				}
				k--
				args[k] = v
				p[j] = symbol{}
			}
		}
		if k > 0 {
			return 0, &ArityError{Col: s.pos, Name: s.name, Want: n, Got: n - k}
		}
		*s = literal(f.Call(args[0], args[1]), s.pos)
	}
	return t.value(p[len(p)-1], lim)
}

// value returns the value of an operand. Variable slots at or beyond lim are
// undefined.
func (t *table) value(s symbol, lim bound) (float32, error) {
	switch s.kind {
	case symLiteral:
		return s.value, nil
	case symVariable:
		if s.handle < 0 || s.handle >= lim.vals {
			return 0, &UndefinedVariableError{Name: s.name, Slot: s.handle}
		}
		return t.vals[s.handle], nil
	default:
		panic("calc: inconsistent postfix sequence: " + s.kind.String() + " as operand (bad Expr?)")
	}
}

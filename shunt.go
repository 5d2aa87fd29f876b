package calc

// shunt converts an infix symbol sequence with resolved signs into postfix
// order using Dijkstra's shunting-yard algorithm.
func shunt(infix []symbol) ([]symbol, error) {
	out := make([]symbol, 0, len(infix))
	ops := make([]symbol, 0, len(infix)/2)
	top := func() symbol {
		return ops[len(ops)-1]
	}
	pop := func() symbol {
		s := ops[len(ops)-1]
		ops = ops[:len(ops)-1]
		return s
	}
	for _, s := range infix {
		switch s.kind {
		case symLiteral, symVariable:
			out = append(out, s)
		case symFunction, symOpen:
			ops = append(ops, s)
		case symSep:
			// End of an argument. With no open parenthesis this empties the
			// stack; a stray comma just separates two results.
			for len(ops) > 0 && top().kind != symOpen {
				out = append(out, pop())
			}
		case symOperator:
			for len(ops) > 0 && top().kind == symOperator && yields(s, top()) {
				out = append(out, pop())
			}
			ops = append(ops, s)
		case symClose:
			found := false
			for len(ops) > 0 {
				t := pop()
				if t.kind == symOpen {
					found = true
					break
				}
				out = append(out, t)
			}
			if !found {
				return nil, &BracketError{Col: s.pos}
			}
			if len(ops) > 0 && top().kind == symFunction {
				out = append(out, pop())
			}
		case symEmpty:
			// Nothing to place.
		default:
			panic("calc: invalid symbol kind " + s.kind.String())
		}
	}
	for len(ops) > 0 {
		t := pop()
		if t.kind == symOpen || t.kind == symClose {
			return nil, &BracketError{Col: t.pos, Left: t.kind == symOpen}
		}
		out = append(out, t)
	}
	return out, nil
}

// yields returns whether the stacked operator top must move to the output
// before the incoming operator in is pushed. Right-associative operators do
// not evict stacked operators of equal precedence, so a^b^c is a^(b^c).
func yields(in, top symbol) bool {
	return in.left && in.prec == top.prec || in.prec < top.prec
}

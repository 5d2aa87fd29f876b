package calc

// resolveSigns rewrites + and - operators that cannot be binary. A - with no
// left operand becomes unary minus, and such a + is dropped, since unary plus
// does nothing. An operator lacks a left operand when it begins the input or
// follows another operator, an open parenthesis, or an argument separator.
func (t *table) resolveSigns(toks []symbol) []symbol {
	r := make([]symbol, 0, len(toks))
	prev := symbol{}
	for _, s := range toks {
		if s.kind == symOperator && (s.name == string(Minus) || s.name == string(Plus)) && !operand(prev) {
			if s.name == string(Minus) {
				r = append(r, t.neg.at(s.pos))
			}
		} else {
			r = append(r, s)
		}
		prev = s
	}
	return r
}

// operand returns whether a symbol preceding a sign can end a left operand.
func operand(prev symbol) bool {
	switch prev.kind {
	case symEmpty, symOperator, symOpen, symSep:
		return false
	default:
		return true
	}
}

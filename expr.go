package calc

import "strings"

// Expr is a compiled expression: a sequence of symbols in postfix order. An
// Expr refers to variables by their slots in the variable store of the engine
// that compiled it, not by value, so it observes updates to variables. Eval
// never modifies an Expr, and an Expr may be evaluated any number of times.
type Expr struct {
	post []symbol
	// line is the handle space of the engine that compiled the expression.
	line *lineage
}

// String formats the expression in postfix order with single spaces between
// symbols. Unary minus is written as "u-".
func (x *Expr) String() string {
	var b strings.Builder
	for i, s := range x.post {
		if i > 0 {
			b.WriteByte(' ')
		}
		s.fmt(&b)
	}
	return b.String()
}

// Len returns the number of symbols in the expression.
func (x *Expr) Len() int {
	return len(x.post)
}

// Vars returns the names of the variables the expression uses in order of
// first use in postfix order.
func (x *Expr) Vars() []string {
	var r []string
	seen := make(map[string]bool)
	for _, s := range x.post {
		if s.kind == symVariable && !seen[s.name] {
			seen[s.name] = true
			r = append(r, s.name)
		}
	}
	return r
}

// HasSymbol returns whether the expression uses a variable, function, or
// operator with the given name.
func (x *Expr) HasSymbol(name string) bool {
	return x.has(name, symVariable) || x.has(name, symFunction) || x.has(name, symOperator)
}

// HasVariable returns whether the expression uses the named variable.
func (x *Expr) HasVariable(name string) bool {
	return x.has(name, symVariable)
}

// HasFunction returns whether the expression calls the named function.
func (x *Expr) HasFunction(name string) bool {
	return x.has(name, symFunction)
}

// HasOperator returns whether the expression applies the operator. A minus
// sign used for negation does not count as the - operator.
func (x *Expr) HasOperator(glyph rune) bool {
	return x.has(string(glyph), symOperator)
}

func (x *Expr) has(name string, kind symbolKind) bool {
	if kind == symOperator && name == negName {
		return false
	}
	for _, s := range x.post {
		if s.kind == kind && s.name == name {
			return true
		}
	}
	return false
}

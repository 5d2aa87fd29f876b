package calc

import "math"

// lineage identifies a handle space. Cloning a table ends its lineage and
// starts two new ones, one for each side, that remember the registry lengths
// at the split. Handles below those lengths mean the same thing on both
// sides; handles issued afterward do not.
type lineage struct {
	parent *lineage
	depth  int
	// funcs and vals are the function registry and variable store lengths
	// when the lineage began.
	funcs int
	vals  int
}

// root is the common ancestor of every table. Tables made by newTable share
// the built-in operators, so unrelated engines still agree on those.
var root = &lineage{}

// split starts a lineage that descends from l with the given registry
// lengths.
func (l *lineage) split(funcs, vals int) *lineage {
	return &lineage{parent: l, depth: l.depth + 1, funcs: funcs, vals: vals}
}

// bound is a pair of registry lengths.
type bound struct {
	funcs int
	vals  int
}

// common returns the registry lengths below which handles issued under a
// and b agree. a and b must differ.
func common(a, b *lineage) bound {
	// Walk both up to their nearest common ancestor, remembering the child
	// of it on each path. Every lineage descends from root.
	var ca, cb *lineage
	for a != b {
		if a.depth >= b.depth {
			ca, a = a, a.parent
		} else {
			cb, b = b, b.parent
		}
	}
	r := bound{funcs: math.MaxInt, vals: math.MaxInt}
	for _, c := range [...]*lineage{ca, cb} {
		if c != nil {
			r.funcs = min(r.funcs, c.funcs)
			r.vals = min(r.vals, c.vals)
		}
	}
	return r
}

// limits returns the registry lengths over which an expression compiled
// under l may use t's handles.
func (t *table) limits(l *lineage) bound {
	r := bound{funcs: len(t.funcs), vals: len(t.vals)}
	if l == t.line {
		return r
	}
	if l == nil {
		l = root
	}
	c := common(l, t.line)
	r.funcs = min(r.funcs, c.funcs)
	r.vals = min(r.vals, c.vals)
	return r
}

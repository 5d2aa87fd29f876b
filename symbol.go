package calc

import (
	"strconv"
	"strings"
)

// symbol is one entry of a token sequence or of a compiled postfix sequence.
// Exactly one case is active, selected by kind; the other fields are zero.
type symbol struct {
	kind symbolKind

	// name is the text the symbol was registered under. Operators use their
	// glyph. Literals and structural symbols leave it empty.
	name string
	// handle indexes the function registry for operators and functions, and
	// the variable store for variables.
	handle int
	// prec and left are the precedence and associativity of operators.
	prec int
	left bool
	// value is the value of a literal.
	value float32
	// pos is the 1-based rune column where the symbol began in the source.
	pos int
}

type symbolKind int8

const (
	// symEmpty marks "no preceding symbol" and consumed operand slots.
	symEmpty symbolKind = iota
	symOperator
	symFunction
	symVariable
	symLiteral
	symOpen
	symClose
	symSep
)

func (k symbolKind) String() string {
	switch k {
	case symEmpty:
		return "Empty"
	case symOperator:
		return "Operator"
	case symFunction:
		return "Function"
	case symVariable:
		return "Variable"
	case symLiteral:
		return "Literal"
	case symOpen:
		return "GroupOpen"
	case symClose:
		return "GroupClose"
	case symSep:
		return "ArgumentSeparator"
	default:
		return "symbolKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// negName is the display name of the synthetic unary minus operator. It is
// never registered in a symbol table, so it cannot be typed.
const negName = "u-"

func literal(v float32, pos int) symbol {
	return symbol{kind: symLiteral, value: v, pos: pos}
}

// at returns a copy of s positioned at pos.
func (s symbol) at(pos int) symbol {
	s.pos = pos
	return s
}

func (s symbol) String() string {
	var b strings.Builder
	s.fmt(&b)
	return b.String()
}

func (s symbol) fmt(b *strings.Builder) {
	switch s.kind {
	case symEmpty:
		b.WriteByte('_')
	case symOperator, symFunction, symVariable:
		b.WriteString(s.name)
	case symLiteral:
		b.WriteString(strconv.FormatFloat(float64(s.value), 'g', -1, 32))
	case symOpen:
		b.WriteByte('(')
	case symClose:
		b.WriteByte(')')
	case symSep:
		b.WriteByte(',')
	default:
		panic("calc: invalid symbol kind " + s.kind.String())
	}
}

package calc

import (
	"errors"
	"strconv"
	"strings"
	"unicode"
)

// lexer splits source text into symbols. Every rune that is itself a
// registered name forms a word by itself; whitespace separates the remaining
// runes into words. A name that contains such a rune can therefore never be
// written in an expression.
type lexer struct {
	t    *table
	buf  strings.Builder
	col  int
	word int
	toks []symbol
}

// tokenize converts src into a sequence of symbols copied from t, plus
// literals for words which parse as numbers.
func (t *table) tokenize(src string) ([]symbol, error) {
	l := lexer{t: t}
	for _, r := range src {
		l.col++
		switch {
		case unicode.IsSpace(r):
			if err := l.flush(); err != nil {
				return nil, err
			}
		case l.glyph(r):
			if err := l.flush(); err != nil {
				return nil, err
			}
			s, _ := t.lookup(string(r))
			l.toks = append(l.toks, s.at(l.col))
		default:
			if l.buf.Len() == 0 {
				l.word = l.col
			}
			l.buf.WriteRune(r)
		}
	}
	if err := l.flush(); err != nil {
		return nil, err
	}
	return l.toks, nil
}

// glyph returns whether r alone is a registered name.
func (l *lexer) glyph(r rune) bool {
	return l.t.exists(string(r))
}

// flush converts the pending word, if any, into a symbol.
func (l *lexer) flush() error {
	if l.buf.Len() == 0 {
		return nil
	}
	defer l.buf.Reset()
	w := l.buf.String()
	if s, ok := l.t.lookup(w); ok {
		l.toks = append(l.toks, s.at(l.word))
		return nil
	}
	v, err := parseNum(w)
	if err != nil {
		return &SymbolError{Col: l.word, Text: w}
	}
	l.toks = append(l.toks, literal(v, l.word))
	return nil
}

// parseNum parses a single-precision number. Out of range values become
// infinities or zero rather than errors.
func parseNum(w string) (float32, error) {
	v, err := strconv.ParseFloat(w, 32)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, err
	}
	return float32(v), nil
}

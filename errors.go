package calc

import (
	"strconv"
	"strings"
	"unicode"
)

// SymbolError is an error indicating a word in the input that is neither a
// registered name nor a number. It implements InputError.
type SymbolError struct {
	// Col is the position of the word.
	Col int
	// Text is the unrecognized word.
	Text string
}

func (err *SymbolError) Error() string {
	return errpos(err.Col, "unrecognized symbol "+strconv.Quote(err.Text))
}

func (err *SymbolError) Pos() int {
	return err.Col
}

// BracketError is an error indicating mismatched parentheses in the input. It
// implements InputError.
type BracketError struct {
	// Col is the position of the unmatched parenthesis.
	Col int
	// Left is true if the unmatched parenthesis is an open one.
	Left bool
}

func (err *BracketError) Error() string {
	if err.Left {
		return errpos(err.Col, "open parenthesis with no close parenthesis")
	}
	return errpos(err.Col, "close parenthesis with no open parenthesis")
}

func (err *BracketError) Pos() int {
	return err.Col
}

// EmptyExpressionError is an error indicating an evaluation of an expression
// with no symbols.
type EmptyExpressionError struct{}

func (err *EmptyExpressionError) Error() string {
	return errpos(1, "no expression")
}

func (err *EmptyExpressionError) Pos() int {
	return 1
}

// ArityError is an error indicating an operator or function that could not
// find enough operands. It implements InputError.
type ArityError struct {
	// Col is the position of the operator or function.
	Col int
	// Name is the operator glyph or function name.
	Name string
	// Want is the arity of the operator or function, and Got is the number of
	// operands that were available.
	Want, Got int
}

func (err *ArityError) Error() string {
	return errpos(err.Col, err.Name+" needs "+strconv.Itoa(err.Want)+" operands, have "+strconv.Itoa(err.Got))
}

func (err *ArityError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*SymbolError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*EmptyExpressionError)(nil)
	_ InputError = (*ArityError)(nil)
)

// UndefinedVariableError is an error from evaluating an expression that
// refers to a variable slot the engine does not share with the engine that
// compiled it: an unrelated engine, or a clone that defined the variable after
// the two split.
type UndefinedVariableError struct {
	// Name is the variable name at compile time.
	Name string
	// Slot is the missing variable store slot.
	Slot int
}

func (err *UndefinedVariableError) Error() string {
	return "undefined variable " + strconv.Quote(err.Name) + " (slot " + strconv.Itoa(err.Slot) + ")"
}

// UndefinedFunctionError is the function registry counterpart of
// UndefinedVariableError.
type UndefinedFunctionError struct {
	// Name is the function name or operator glyph at compile time.
	Name string
	// Handle is the missing function registry handle.
	Handle int
}

func (err *UndefinedFunctionError) Error() string {
	return "undefined function " + strconv.Quote(err.Name) + " (handle " + strconv.Itoa(err.Handle) + ")"
}

// NameInUseError is an error from defining a name that already names a
// variable, function, operator, or grouping symbol.
type NameInUseError struct {
	Name string
	// Kind is the kind of symbol already using the name.
	Kind string
}

func (err *NameInUseError) Error() string {
	return "name " + strconv.Quote(err.Name) + " already in use by " + strings.ToLower(err.Kind)
}

// NameError is an error from a lookup or update of a variable that is not
// defined.
type NameError struct {
	// Name is the name that was missing.
	Name string
}

func (err *NameError) Error() string {
	return "undefined variable: " + strconv.Quote(err.Name)
}

// KindError is an error from a variable lookup or update on a name that
// is defined as something other than a variable.
type KindError struct {
	Name string
	// Kind is the kind of symbol the name refers to.
	Kind string
}

func (err *KindError) Error() string {
	return strconv.Quote(err.Name) + " is not a variable but " + strings.ToLower(err.Kind)
}

// DefinitionError is an error from a definition that can never be used, such
// as a name containing spaces or a function with an unsupported arity.
type DefinitionError struct {
	Name   string
	Reason string
}

func (err *DefinitionError) Error() string {
	return "cannot define " + strconv.Quote(err.Name) + ": " + err.Reason
}

// checkName rejects names the tokenizer could never produce as one word.
func checkName(name string) error {
	if name == "" {
		return &DefinitionError{Name: name, Reason: "empty name"}
	}
	if strings.IndexFunc(name, unicode.IsSpace) >= 0 {
		return &DefinitionError{Name: name, Reason: "name contains whitespace"}
	}
	return nil
}

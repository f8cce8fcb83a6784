package conslisp

import (
	"fmt"
	"unicode"
)

// Value is any runtime value. The set of implementations is closed to this package.
type Value interface {
	fmt.Stringer
	value()
}

type Integer int64
type Bool bool
type Symbol string

// Quoted wraps a value that evaluates to itself without being evaluated.
type Quoted struct {
	Value Value
}

// Closure is a user defined procedure. It does not capture the environment it
// was created in; the body runs in the caller's environment extended with the
// parameter bindings.
type Closure struct {
	Params *Pair
	Body   Value
}

// Env is a list of (symbol . value) pairs searched front to back.
type Env = *Pair

// BuiltinFunc receives its arguments unevaluated, along with the environment
// of the call, and decides itself what to evaluate.
type BuiltinFunc func(args *Pair, env Env) (Value, Env, error)

type Builtin struct {
	Name string
	Fn   BuiltinFunc
}

func (Integer) value()  {}
func (Bool) value()     {}
func (Symbol) value()   {}
func (*Pair) value()    {}
func (Quoted) value()   {}
func (*Closure) value() {}
func (*Builtin) value() {}

func (v Integer) String() string  { return Print(v) }
func (v Bool) String() string     { return Print(v) }
func (v Symbol) String() string   { return Print(v) }
func (v *Pair) String() string    { return Print(v) }
func (v Quoted) String() string   { return Print(v) }
func (v *Closure) String() string { return Print(v) }
func (v *Builtin) String() string { return Print(v) }

// TypeName returns the tag used to describe v in type errors.
func TypeName(v Value) string {
	switch v.(type) {
	case Integer:
		return "(type int)"
	case Bool:
		return "(type bool)"
	case Symbol:
		return "(type symbol)"
	case *Pair:
		return "(type cons)"
	case Quoted:
		return "(type quote)"
	case *Closure:
		return "(type function)"
	case *Builtin:
		return "(type builtin-function)"
	default:
		return "(type unknown)"
	}
}

// Truthy reports whether v counts as true in a conditional. Only false is falsy.
func Truthy(v Value) bool {
	b, isBool := v.(Bool)
	return !isBool || bool(b)
}

// NewSymbol validates name and returns it as a Symbol.
func NewSymbol(name string) (Symbol, error) {
	if !ValidSymbol(name) {
		return "", newError(SyntaxError, "invalid symbol: %s", name)
	}
	return Symbol(name), nil
}

// ValidSymbol reports whether name is an acceptable identifier.
func ValidSymbol(name string) bool {
	if name == "+" || name == "-" || name == "..." {
		return true
	}
	for i, ch := range name {
		if i == 0 {
			if !isSymbolInitial(ch) {
				return false
			}
		} else if !isSymbolSubsequent(ch) {
			return false
		}
	}
	return name != ""
}

func isSymbolInitial(ch rune) bool {
	if unicode.IsLetter(ch) {
		return true
	}
	switch ch {
	case '!', '$', '%', '&', '*', '/', ':', '<', '=', '>', '?', '^', '_', '~':
		return true
	}
	return false
}

func isSymbolSubsequent(ch rune) bool {
	if isSymbolInitial(ch) || (ch >= '0' && ch <= '9') {
		return true
	}
	switch ch {
	case '+', '.', '@', '-':
		return true
	}
	return false
}

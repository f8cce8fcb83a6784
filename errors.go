package conslisp

import (
	"fmt"
	"strings"
)

type ErrorKind int

const (
	TypeError ErrorKind = iota + 1
	ArityError
	UnboundError
	StructureError
	SyntaxError
)

func (k ErrorKind) String() string {
	switch k {
	case TypeError:
		return "type error"
	case ArityError:
		return "arity error"
	case UnboundError:
		return "unbound variable"
	case StructureError:
		return "structure error"
	case SyntaxError:
		return "syntax error"
	default:
		return "error"
	}
}

// Error is returned by every failing operation in the interpreter.
type Error struct {
	Kind ErrorKind
	Msg  string

	incomplete bool
}

func (e *Error) Error() string {
	return e.Msg
}

// Is matches the kind sentinels below, so errors.Is(err, ErrArity) works for
// any arity error regardless of its message.
func (e *Error) Is(target error) bool {
	t, isErr := target.(*Error)
	return isErr && t.Msg == "" && t.Kind == e.Kind
}

var (
	ErrType      = &Error{Kind: TypeError}
	ErrArity     = &Error{Kind: ArityError}
	ErrUnbound   = &Error{Kind: UnboundError}
	ErrStructure = &Error{Kind: StructureError}
	ErrSyntax    = &Error{Kind: SyntaxError}
)

func newError(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

func typeError(op string, args ...Value) *Error {
	names := make([]string, len(args))
	for i, arg := range args {
		names[i] = TypeName(arg)
	}
	return newError(TypeError, "%s is not callable with types (%s)", op, strings.Join(names, " "))
}

// ensureArgs checks that args is a proper list of exactly n elements.
func ensureArgs(name string, n int, args *Pair) error {
	if !args.IsProperList() {
		return newError(ArityError, "call to %s must be a proper list", name)
	}
	if length := args.Len(); length != n {
		return newError(ArityError, "%s expected %d arguments but got %d", name, n, length)
	}
	return nil
}

func ensureProperList(name string, args *Pair) error {
	if !args.IsProperList() {
		return newError(ArityError, "arguments passed to %s must be a proper list", name)
	}
	return nil
}

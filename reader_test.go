package conslisp

import (
	"bufio"
	"errors"
	"io"
	"strings"
	"testing"
)

func TestNumbers(t *testing.T) {
	testRead(t, "1", Integer(1))
	testRead(t, "7", Integer(7))
	testRead(t, "  7   ", Integer(7))
	testRead(t, "-123", Integer(-123))
	testRead(t, "9223372036854775807", Integer(9223372036854775807))
}

func TestReadSymbols(t *testing.T) {
	testRead(t, "+", Symbol("+"))
	testRead(t, "abc", Symbol("abc"))
	testRead(t, "   abc   ", Symbol("abc"))
	testRead(t, "abc5", Symbol("abc5"))
	testRead(t, "abc-def", Symbol("abc-def"))
	testRead(t, "-", Symbol("-"))
	testRead(t, "...", Symbol("..."))
	testRead(t, "int->bool", Symbol("int->bool"))
	testRead(t, "true", Symbol("true"))
}

func TestLists(t *testing.T) {
	testRead(t, "(+ 1 2)", List(Symbol("+"), Integer(1), Integer(2)))
	testRead(t, "()", Empty)
	testRead(t, "( )", Empty)
	testRead(t, "((3 4))", List(List(Integer(3), Integer(4))))
	testRead(t, "(+ 1 (+ 2 3))", List(Symbol("+"), Integer(1), List(Symbol("+"), Integer(2), Integer(3))))
	testRead(t, "  ( +   1   (+   2 3   )   )  ", List(Symbol("+"), Integer(1), List(Symbol("+"), Integer(2), Integer(3))))
	testRead(t, "(* -3 6)", List(Symbol("*"), Integer(-3), Integer(6)))
	testRead(t, "(()())", List(Empty, Empty))
	testRead(t, "(a\n\tb)", List(Symbol("a"), Symbol("b")))
}

func TestDotted(t *testing.T) {
	testRead(t, "(1 . 2)", Cons(Integer(1), Integer(2)))
	testRead(t, "(1 2 . 3)", Cons(Integer(1), Cons(Integer(2), Integer(3))))
	testRead(t, "(1 . (2 3))", List(Integer(1), Integer(2), Integer(3)))
	testRead(t, "(a ... b)", List(Symbol("a"), Symbol("..."), Symbol("b")))
}

func TestQuoted(t *testing.T) {
	testRead(t, "'a", Quoted{Value: Symbol("a")})
	testRead(t, "'(1 2)", Quoted{Value: List(Integer(1), Integer(2))})
	testRead(t, "(f 'x)", List(Symbol("f"), Quoted{Value: Symbol("x")}))
	testRead(t, "' x", Quoted{Value: Symbol("x")})
}

func TestComments(t *testing.T) {
	testRead(t, "; leading\n42", Integer(42))
	testRead(t, "(1 ; inside\n 2)", List(Integer(1), Integer(2)))
	testRead(t, "(1 . ; tail\n 2)", Cons(Integer(1), Integer(2)))
}

func TestReadAll(t *testing.T) {
	exprs, err := ReadAll("(define x 1) x ; done\n")
	if err != nil {
		t.Fatal(err)
	}
	if len(exprs) != 2 {
		t.Fatalf("expected 2 expressions, got %d", len(exprs))
	}
	if !Equals(exprs[1], Symbol("x")) {
		t.Errorf("expected x, got %s", Print(exprs[1]))
	}

	exprs, err = ReadAll("  ; nothing here\n")
	if err != nil || len(exprs) != 0 {
		t.Errorf("expected no expressions, got %v, %v", exprs, err)
	}
}

func TestReadEOF(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("1"))
	if _, err := Read(r); err != nil {
		t.Fatal(err)
	}
	if _, err := Read(r); err != io.EOF {
		t.Errorf("expected io.EOF, got %v", err)
	}
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		input      string
		incomplete bool
	}{
		{")", false},
		{"(1 2))", false},
		{"1abc", false},
		{"(. 1)", false},
		{"(1 . 2 3)", false},
		{"(1 . )", false},
		{"(')", false},
		{".", false},
		{"(", true},
		{"(1 (2 3)", true},
		{"'", true},
		{"(1 .", true},
		{"(1 . 2", true},
	}

	for _, tt := range tests {
		_, err := ReadAll(tt.input)
		if !errors.Is(err, ErrSyntax) {
			t.Errorf("%q: expected syntax error, got %v", tt.input, err)
			continue
		}
		if IsIncomplete(err) != tt.incomplete {
			t.Errorf("%q: IsIncomplete = %v, want %v", tt.input, IsIncomplete(err), tt.incomplete)
		}
	}
}

func testRead(t *testing.T, input string, output Value) {
	t.Helper()
	in := bufio.NewReader(strings.NewReader(input))
	actual, err := Read(in)
	if err != nil {
		t.Errorf("\nInput: %q\nExpected: %s\nActual: Error - %s", input, Print(output), err)
		return
	}
	if !Equals(actual, output) {
		t.Errorf("\nInput: %q\nExpected: %s - %s\nActual: %s - %s",
			input,
			TypeName(output), Print(output),
			TypeName(actual), Print(actual))
	}
}

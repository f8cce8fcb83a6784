package conslisp

import (
	"errors"
	"fmt"
	"testing"
)

func TestPrint(t *testing.T) {
	tests := []struct {
		val      Value
		expected string
	}{
		{Integer(42), "42"},
		{Integer(-7), "-7"},
		{Bool(true), "true"},
		{Bool(false), "false"},
		{Symbol("int->bool"), "int->bool"},
		{Empty, "()"},
		{List(Integer(1), Integer(2), Integer(3)), "(1 2 3)"},
		{List(List(Symbol("a")), Empty), "((a) ())"},
		{Cons(Integer(1), Integer(2)), "(1 . 2)"},
		{Cons(Integer(1), Cons(Integer(2), Integer(3))), "(1 2 . 3)"},
		{Quoted{Value: Symbol("x")}, "(quote x)"},
		{Quoted{Value: List(Integer(1))}, "(quote (1))"},
		{&Closure{Params: List(Symbol("a"), Symbol("b")), Body: List(Symbol("+"), Symbol("a"), Symbol("b"))}, "#<lambda (a b) (+ a b)>"},
		{&Builtin{Name: "car", Fn: car}, "#<builtin car>"},
	}

	for _, tt := range tests {
		if actual := Print(tt.val); actual != tt.expected {
			t.Errorf("Print = %q, want %q", actual, tt.expected)
		}
		if actual := fmt.Sprint(tt.val); actual != tt.expected {
			t.Errorf("fmt.Sprint = %q, want %q", actual, tt.expected)
		}
	}
}

func TestPrintRoundTrip(t *testing.T) {
	for _, src := range []string{"(define x (quote (1 2 . 3)))", "(a (b (c)) () . d)", "-12"} {
		val := mustRead(t, src)
		again := mustRead(t, Print(val))
		if !Equals(val, again) {
			t.Errorf("%s printed as %s which reads back as %s", src, Print(val), Print(again))
		}
	}
}

func TestPrintError(t *testing.T) {
	_, _, err := Eval(Symbol("missing"), NewEnv())
	if actual := PrintError(err); actual != "Error: Unbound variable missing" {
		t.Errorf("got %q", actual)
	}
	if actual := PrintError(errors.New("boom")); actual != "Error: boom" {
		t.Errorf("got %q", actual)
	}
}

func TestPrintBuiltinsFromEnv(t *testing.T) {
	val, _, err := Eval(Symbol("cons"), NewEnv())
	if err != nil {
		t.Fatal(err)
	}
	if Print(val) != "#<builtin cons>" {
		t.Errorf("got %s", Print(val))
	}
}

package conslisp

// Equals compares two values structurally. Procedures are only equal to
// themselves.
func Equals(v1, v2 Value) bool {
	switch t1 := v1.(type) {
	case *Pair:
		t2, isPair := v2.(*Pair)
		return isPair && pairEquals(t1, t2)
	case Quoted:
		t2, isQuoted := v2.(Quoted)
		return isQuoted && Equals(t1.Value, t2.Value)
	case Integer, Bool, Symbol, *Closure, *Builtin:
		return v1 == v2
	default:
		return false
	}
}

func pairEquals(p1, p2 *Pair) bool {
	for {
		if p1.IsEmpty() || p2.IsEmpty() {
			return p1.IsEmpty() && p2.IsEmpty()
		}
		if !Equals(p1.car, p2.car) {
			return false
		}

		next1, isPair1 := p1.cdr.(*Pair)
		next2, isPair2 := p2.cdr.(*Pair)
		if !isPair1 || !isPair2 {
			return !isPair1 && !isPair2 && Equals(p1.cdr, p2.cdr)
		}
		p1, p2 = next1, next2
	}
}

package conslisp

// Pair is the one composite cell. A Pair with no components is the empty list.
type Pair struct {
	car, cdr Value
}

// Empty is the shared empty list. Any Pair with no components is equally empty.
var Empty = &Pair{}

// Cons builds a non-empty Pair. Both components must be non-nil.
func Cons(car, cdr Value) *Pair {
	return &Pair{car: car, cdr: cdr}
}

// List builds a proper list from vals.
func List(vals ...Value) *Pair {
	ret := Empty
	for i := len(vals) - 1; i >= 0; i-- {
		ret = Cons(vals[i], ret)
	}
	return ret
}

func (p *Pair) IsEmpty() bool {
	return p == nil || p.car == nil
}

// Car returns the first component, or Empty for the empty list.
func (p *Pair) Car() Value {
	if p.IsEmpty() {
		return Empty
	}
	return p.car
}

// Cdr returns the second component, or Empty for the empty list.
func (p *Pair) Cdr() Value {
	if p.IsEmpty() {
		return Empty
	}
	return p.cdr
}

// Len counts elements up to Empty or up to a non-Pair tail.
func (p *Pair) Len() int {
	n := 0
	for !p.IsEmpty() {
		n++
		next, isPair := p.cdr.(*Pair)
		if !isPair {
			break
		}
		p = next
	}
	return n
}

func (p *Pair) IsProperList() bool {
	for !p.IsEmpty() {
		next, isPair := p.cdr.(*Pair)
		if !isPair {
			return false
		}
		p = next
	}
	return true
}

// Slice returns the elements of p, ignoring a dotted tail.
func (p *Pair) Slice() []Value {
	arr := make([]Value, 0, p.Len())
	for !p.IsEmpty() {
		arr = append(arr, p.car)
		next, isPair := p.cdr.(*Pair)
		if !isPair {
			break
		}
		p = next
	}
	return arr
}

// First is car on an arbitrary value.
func First(v Value) (Value, error) {
	p, isPair := v.(*Pair)
	if !isPair {
		return nil, typeError("car", v)
	}
	return p.Car(), nil
}

// Rest is cdr on an arbitrary value.
func Rest(v Value) (Value, error) {
	p, isPair := v.(*Pair)
	if !isPair {
		return nil, typeError("cdr", v)
	}
	return p.Cdr(), nil
}

// ZipConcat pairs params and args position by position into (param . arg)
// entries and puts them in front of terminator. It stops at the end of the
// shorter list, so unmatched parameters are simply left unbound.
func ZipConcat(params, args, terminator *Pair) *Pair {
	var zipped []Value
	for !params.IsEmpty() && !args.IsEmpty() {
		zipped = append(zipped, Cons(params.car, args.car))

		nextParams, isPair := params.cdr.(*Pair)
		if !isPair {
			break
		}
		nextArgs, isPair := args.cdr.(*Pair)
		if !isPair {
			break
		}
		params, args = nextParams, nextArgs
	}

	ret := terminator
	for i := len(zipped) - 1; i >= 0; i-- {
		ret = Cons(zipped[i], ret)
	}
	return ret
}

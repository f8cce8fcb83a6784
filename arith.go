package conslisp

func add(args *Pair, env Env) (Value, Env, error) {
	return agg("+", args, env, 0, func(r, x Integer) Integer {
		return r + x
	})
}

func mul(args *Pair, env Env) (Value, Env, error) {
	return agg("*", args, env, 1, func(r, x Integer) Integer {
		return r * x
	})
}

// sub negates a single operand, otherwise subtracts the sum of the remaining
// operands from the first.
func sub(args *Pair, env Env) (Value, Env, error) {
	if err := ensureProperList("-", args); err != nil {
		return nil, env, err
	}
	if args.IsEmpty() {
		return nil, env, newError(ArityError, "- expected at least 1 argument but got 0")
	}

	first, env, err := Eval(args.car, env)
	if err != nil {
		return nil, env, err
	}
	lhs, isInt := first.(Integer)

	rest := args.cdr.(*Pair)
	if rest.IsEmpty() {
		if !isInt {
			return nil, env, typeError("-", Integer(0), first)
		}
		return -lhs, env, nil
	}

	rhs, env, err := add(rest, env)
	if err != nil {
		return nil, env, err
	}
	if !isInt {
		return nil, env, typeError("-", first, rhs)
	}
	return lhs - rhs.(Integer), env, nil
}

// agg evaluates every operand in order and folds it into init with accum
func agg(name string, args *Pair, env Env, init Integer, accum func(Integer, Integer) Integer) (Value, Env, error) {
	if err := ensureProperList(name, args); err != nil {
		return nil, env, err
	}

	ret := init
	for _, arg := range args.Slice() {
		val, next, err := Eval(arg, env)
		if err != nil {
			return nil, next, err
		}
		env = next

		x, isInt := val.(Integer)
		if !isInt {
			return nil, env, typeError(name, ret, val)
		}
		ret = accum(ret, x)
	}
	return ret, env, nil
}

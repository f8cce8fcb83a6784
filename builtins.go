package conslisp

// NewEnv builds the initial environment holding every builtin plus the
// true and false constants.
func NewEnv() Env {
	builtins := []*Builtin{
		{"car", car},
		{"cdr", cdr},
		{"cons", cons},
		{"lambda", lambda},
		{"+", add},
		{"-", sub},
		{"*", mul},
		{"quote", quote},
		{"int->bool", unary("int->bool", intToBool)},
		{"bool->int", unary("bool->int", boolToInt)},
		{"and", and},
		{"or", or},
		{"not", unary("not", not)},
		{"define", define},
		{"nil?", unary("nil?", isNil)},
		{"int?", unary("int?", isInt)},
		{"bool?", unary("bool?", isBool)},
		{"if", ifprim},
	}

	env := Extend(Empty, Symbol("false"), Bool(false))
	env = Extend(env, Symbol("true"), Bool(true))
	for i := len(builtins) - 1; i >= 0; i-- {
		env = Extend(env, Symbol(builtins[i].Name), builtins[i])
	}
	return env
}

// unary wraps a function of one evaluated argument as a builtin
func unary(name string, fn func(Value) (Value, error)) BuiltinFunc {
	return func(args *Pair, env Env) (Value, Env, error) {
		if err := ensureArgs(name, 1, args); err != nil {
			return nil, env, err
		}
		arg, env, err := Eval(args.car, env)
		if err != nil {
			return nil, env, err
		}
		ret, err := fn(arg)
		if err != nil {
			return nil, env, err
		}
		return ret, env, nil
	}
}

// Special Forms

func quote(args *Pair, env Env) (Value, Env, error) {
	if err := ensureArgs("quote", 1, args); err != nil {
		return nil, env, err
	}
	return args.car, env, nil
}

func lambda(args *Pair, env Env) (Value, Env, error) {
	if err := ensureArgs("lambda", 2, args); err != nil {
		return nil, env, err
	}

	params, isPair := args.car.(*Pair)
	if !isPair {
		return nil, env, newError(TypeError, "first argument of lambda definition must be a list of parameters")
	}
	return &Closure{Params: params, Body: args.cdr.(*Pair).car}, env, nil
}

func define(args *Pair, env Env) (Value, Env, error) {
	if err := ensureArgs("define", 2, args); err != nil {
		return nil, env, err
	}

	sym, isSym := args.car.(Symbol)
	if !isSym {
		return nil, env, newError(TypeError, "first argument passed to define must be a symbol")
	}

	evaled, env, err := Eval(args.cdr.(*Pair).car, env)
	if err != nil {
		return nil, env, err
	}
	return sym, Extend(env, sym, evaled), nil
}

func ifprim(args *Pair, env Env) (Value, Env, error) {
	if err := ensureArgs("if", 3, args); err != nil {
		return nil, env, err
	}

	cond, env, err := Eval(args.car, env)
	if err != nil {
		return nil, env, err
	}

	branches := args.cdr.(*Pair)
	if Truthy(cond) {
		return Eval(branches.car, env)
	}
	return Eval(branches.cdr.(*Pair).car, env)
}

func and(args *Pair, env Env) (Value, Env, error) {
	if err := ensureProperList("and", args); err != nil {
		return nil, env, err
	}

	var ret Value = Bool(true)
	for _, arg := range args.Slice() {
		var err error
		ret, env, err = Eval(arg, env)
		if err != nil {
			return nil, env, err
		}
		if !Truthy(ret) {
			return ret, env, nil
		}
	}
	return ret, env, nil
}

func or(args *Pair, env Env) (Value, Env, error) {
	if err := ensureProperList("or", args); err != nil {
		return nil, env, err
	}

	for _, arg := range args.Slice() {
		ret, next, err := Eval(arg, env)
		if err != nil {
			return nil, next, err
		}
		if Truthy(ret) {
			return ret, next, nil
		}
		env = next
	}
	return Bool(false), env, nil
}

// Primitives

func car(args *Pair, env Env) (Value, Env, error) {
	return unary("car", First)(args, env)
}

func cdr(args *Pair, env Env) (Value, Env, error) {
	return unary("cdr", Rest)(args, env)
}

func cons(args *Pair, env Env) (Value, Env, error) {
	if err := ensureArgs("cons", 2, args); err != nil {
		return nil, env, err
	}

	first, env, err := Eval(args.car, env)
	if err != nil {
		return nil, env, err
	}
	second, env, err := Eval(args.cdr.(*Pair).car, env)
	if err != nil {
		return nil, env, err
	}
	return Cons(first, second), env, nil
}

func not(v Value) (Value, error) {
	return Bool(!Truthy(v)), nil
}

func intToBool(v Value) (Value, error) {
	i, isInt := v.(Integer)
	if !isInt {
		return nil, typeError("int->bool", v)
	}
	return Bool(i != 0), nil
}

func boolToInt(v Value) (Value, error) {
	b, isBool := v.(Bool)
	if !isBool {
		return nil, typeError("bool->int", v)
	}
	if b {
		return Integer(1), nil
	}
	return Integer(0), nil
}

func isNil(v Value) (Value, error) {
	p, isPair := v.(*Pair)
	return Bool(isPair && p.IsEmpty()), nil
}

func isInt(v Value) (Value, error) {
	_, isInt := v.(Integer)
	return Bool(isInt), nil
}

func isBool(v Value) (Value, error) {
	_, isBool := v.(Bool)
	return Bool(isBool), nil
}

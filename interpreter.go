package conslisp

// Eval evaluates val in env. The returned environment is env plus whatever
// bindings the evaluation added; callers thread it into the next evaluation.
func Eval(val Value, env Env) (Value, Env, error) {
	switch t := val.(type) {
	case Integer, Bool, *Closure, *Builtin:
		return t, env, nil
	case Quoted:
		return t.Value, env, nil
	case Symbol:
		found, err := Lookup(env, t)
		if err != nil {
			return nil, env, err
		}
		return found, env, nil
	case *Pair:
		if t.IsEmpty() {
			return t, env, nil
		}
		return evalCall(t, env)
	default:
		return nil, env, newError(TypeError, "cannot evaluate %T", val)
	}
}

// evaluate the operator, then hand it the unevaluated operands
func evalCall(call *Pair, env Env) (Value, Env, error) {
	args, isPair := call.cdr.(*Pair)
	if !isPair {
		return nil, env, newError(StructureError, "cdr of a call must be a cons, got %s", TypeName(call.cdr))
	}

	front, env, err := Eval(call.car, env)
	if err != nil {
		return nil, env, err
	}
	return Apply(front, args, env)
}

// Apply calls fn with the unevaluated args. Builtins get args as they are;
// closures evaluate them first.
func Apply(fn Value, args *Pair, env Env) (Value, Env, error) {
	switch t := fn.(type) {
	case *Builtin:
		return t.Fn(args, env)
	case *Closure:
		evaluated, env, err := EvalElements(args, env)
		if err != nil {
			return nil, env, err
		}
		return Eval(t.Body, ZipConcat(t.Params, evaluated, env))
	default:
		return nil, env, typeError("apply", fn)
	}
}

// EvalElements evaluates each element of list from left to right, threading
// the environment, and returns the results as a proper list. A dotted tail is
// dropped.
func EvalElements(list *Pair, env Env) (*Pair, Env, error) {
	elems := list.Slice()
	arr := make([]Value, len(elems))
	for i, elem := range elems {
		res, next, err := Eval(elem, env)
		if err != nil {
			return nil, env, err
		}
		arr[i] = res
		env = next
	}
	return List(arr...), env, nil
}

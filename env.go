package conslisp

// Extend returns a new environment with sym bound to val in front of env.
// env itself is left untouched.
func Extend(env Env, sym Symbol, val Value) Env {
	return Cons(Cons(sym, val), env)
}

// Lookup returns the value of the first binding of sym in env.
func Lookup(env Env, sym Symbol) (Value, error) {
	for !env.IsEmpty() {
		entry, isPair := env.car.(*Pair)
		if isPair && !entry.IsEmpty() {
			if found, isSym := entry.car.(Symbol); isSym && found == sym {
				return entry.cdr, nil
			}
		}

		next, isPair := env.cdr.(*Pair)
		if !isPair {
			break
		}
		env = next
	}
	return nil, newError(UnboundError, "Unbound variable %s", sym)
}

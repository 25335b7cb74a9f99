package golisp

// Eval evaluates one expression tree against env. Numbers evaluate to
// themselves, symbols to their binding, the empty list to the empty list
// value, and any other list dispatches on its head symbol.
func Eval(env *Env, expr *Expr) (*Value, error) {
	switch expr.t {
	case ExprNumber:
		return NumberValue(expr.num), nil
	case ExprSymbol:
		return env.Lookup(expr.sym)
	}
	if len(expr.list) == 0 {
		return ListValue(), nil
	}
	return call(env, expr)
}

func call(env *Env, expr *Expr) (*Value, error) {
	head := expr.list[0]
	if head.t != ExprSymbol {
		return nil, &EvalError{Kind: NotCallable, Msg: head.String()}
	}
	fi, ok := ops[head.sym]
	if !ok {
		return nil, &EvalError{Kind: UnknownOperator, Name: head.sym}
	}
	if fi.ft == ftSpecial {
		return fi.special(env, expr.list[1:])
	}
	args, err := evalArgs(env, expr.list[1:])
	if err != nil {
		return nil, err
	}
	return fi.builtin(env, args)
}

// Arguments evaluate left to right, and any evaluation error reports before
// the builtin sees the arguments. (+ 1 x) with unbound x is an undefined
// symbol, never a type error.
func evalArgs(env *Env, exprs []*Expr) ([]*Value, error) {
	args := make([]*Value, 0, len(exprs))
	for _, e := range exprs {
		v, err := Eval(env, e)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}
	return args, nil
}

// EvalString runs one submitted line through the tokenize, parse, eval
// pipeline against env. The line must hold exactly one expression.
func EvalString(env *Env, src string) (*Value, error) {
	toks, err := Tokenize(src)
	if err != nil {
		return nil, err
	}
	expr, err := Parse(toks)
	if err != nil {
		return nil, err
	}
	return Eval(env, expr)
}

// EvalProgram evaluates every top-level form in src in order against env and
// returns one result per form. A failed form stops the run; forms already
// evaluated keep their effect on env.
func EvalProgram(env *Env, src string) ([]*Value, error) {
	toks, err := Tokenize(src)
	if err != nil {
		return nil, err
	}
	exprs, err := ParseAll(toks)
	if err != nil {
		return nil, err
	}
	vals := make([]*Value, 0, len(exprs))
	for _, e := range exprs {
		v, err := Eval(env, e)
		if err != nil {
			return nil, err
		}
		vals = append(vals, v)
	}
	return vals, nil
}

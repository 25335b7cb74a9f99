package golisp

import "math"

type ft int

const (
	ftSpecial ft = iota // receives raw argument expressions
	ftBuiltin           // receives arguments evaluated left to right
)

type specialFn func(*Env, []*Expr) (*Value, error)
type builtinFn func(*Env, []*Value) (*Value, error)

type fnInfo struct {
	ft      ft
	special specialFn
	builtin builtinFn
}

var ops map[string]fnInfo

func makeSpecial(fn specialFn) fnInfo {
	return fnInfo{ft: ftSpecial, special: fn}
}

func makeBuiltin(fn builtinFn) fnInfo {
	return fnInfo{ft: ftBuiltin, builtin: fn}
}

func init() {
	ops = make(map[string]fnInfo)
	ops["define"] = makeSpecial(doDefine)
	ops["print"] = makeBuiltin(doPrint)
	ops["+"] = makeBuiltin(doPlus)
	ops["-"] = makeBuiltin(doMinus)
	ops["*"] = makeBuiltin(doMul)
	ops["list"] = makeBuiltin(doList)
	ops["car"] = makeBuiltin(doCar)
	ops["cdr"] = makeBuiltin(doCdr)
}

// The binding target is taken unevaluated; only the value expression runs.
// define evaluates to the bound name so the repl echoes it.
func doDefine(env *Env, args []*Expr) (*Value, error) {
	if len(args) != 2 {
		return nil, &EvalError{Kind: ArityError, Name: "define"}
	}
	if args[0].t != ExprSymbol {
		return nil, &EvalError{Kind: TypeError, Name: "define", Msg: "first argument must be a symbol"}
	}
	v, err := Eval(env, args[1])
	if err != nil {
		return nil, err
	}
	env.Define(args[0].sym, v)
	return SymbolValue(args[0].sym), nil
}

// print's result is the value to display; rendering is the shell's job and
// the core writes nothing itself.
func doPrint(env *Env, args []*Value) (*Value, error) {
	if len(args) != 1 {
		return nil, &EvalError{Kind: ArityError, Name: "print"}
	}
	return args[0], nil
}

func doPlus(env *Env, args []*Value) (*Value, error) {
	return arith("+", args, addInt64)
}

func doMinus(env *Env, args []*Value) (*Value, error) {
	return arith("-", args, subInt64)
}

func doMul(env *Env, args []*Value) (*Value, error) {
	return arith("*", args, mulInt64)
}

// arith folds op over args left to right, seeded with the first argument.
// All three operators require at least two operands; there is no unary form.
func arith(name string, args []*Value, op func(int64, int64) (int64, bool)) (*Value, error) {
	if len(args) < 2 {
		return nil, &EvalError{Kind: ArityError, Name: name}
	}
	acc, err := wantNumber(name, args[0])
	if err != nil {
		return nil, err
	}
	for _, a := range args[1:] {
		n, err := wantNumber(name, a)
		if err != nil {
			return nil, err
		}
		var ok bool
		acc, ok = op(acc, n)
		if !ok {
			return nil, &EvalError{Kind: Overflow, Name: name}
		}
	}
	return NumberValue(acc), nil
}

func wantNumber(name string, v *Value) (int64, error) {
	if v.t != ValueNumber {
		return 0, &EvalError{Kind: TypeError, Name: name, Msg: "expected number"}
	}
	return v.num, nil
}

func addInt64(a, b int64) (int64, bool) {
	c := a + b
	if (c > a) != (b > 0) && b != 0 {
		return 0, false
	}
	return c, true
}

func subInt64(a, b int64) (int64, bool) {
	c := a - b
	if (c < a) != (b > 0) && b != 0 {
		return 0, false
	}
	return c, true
}

func mulInt64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if (a == math.MinInt64 && b == -1) || (b == math.MinInt64 && a == -1) {
		return 0, false
	}
	c := a * b
	if c/b != a {
		return 0, false
	}
	return c, true
}

func doList(env *Env, args []*Value) (*Value, error) {
	return ListValue(args...), nil
}

func doCar(env *Env, args []*Value) (*Value, error) {
	if len(args) != 1 {
		return nil, &EvalError{Kind: ArityError, Name: "car"}
	}
	v := args[0]
	if v.t != ValueList {
		return nil, &EvalError{Kind: TypeError, Name: "car", Msg: "arguments should be list"}
	}
	if len(v.list) == 0 {
		return nil, &EvalError{Kind: EmptyList, Name: "car"}
	}
	return v.list[0], nil
}

// cdr of the empty list is the empty list, mirroring list's base case.
func doCdr(env *Env, args []*Value) (*Value, error) {
	if len(args) != 1 {
		return nil, &EvalError{Kind: ArityError, Name: "cdr"}
	}
	v := args[0]
	if v.t != ValueList {
		return nil, &EvalError{Kind: TypeError, Name: "cdr", Msg: "arguments should be list"}
	}
	if len(v.list) == 0 {
		return ListValue(), nil
	}
	return ListValue(v.list[1:]...), nil
}

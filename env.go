package golisp

// Env is a chain of variable scopes. The interpreter only ever creates the
// global scope, but lookups follow the parent chain so a future scoped form
// needs nothing new here.
type Env struct {
	vars map[string]*Value
	env  *Env
}

func NewEnv(env *Env) *Env {
	return &Env{
		vars: make(map[string]*Value),
		env:  env,
	}
}

// Define binds name to v in this scope, overwriting any previous binding.
func (e *Env) Define(name string, v *Value) {
	e.vars[name] = v
}

// Lookup resolves name through the scope chain.
func (e *Env) Lookup(name string) (*Value, error) {
	for s := e; s != nil; s = s.env {
		if v, ok := s.vars[name]; ok {
			return v, nil
		}
	}
	return nil, &EvalError{Kind: UndefinedSymbol, Name: name}
}

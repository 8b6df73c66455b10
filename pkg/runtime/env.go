package runtime

// Env is the single flat variable namespace for one program run. There is
// no scope chain: blocks read and write the same bindings as the top level.
type Env struct {
	vars map[string]Value
}

// NewEnv constructs an empty environment.
func NewEnv() *Env {
	return &Env{vars: make(map[string]Value)}
}

// Define binds name to value, overwriting any prior binding.
func (e *Env) Define(name string, value Value) {
	e.vars[name] = value
}

// Assign updates an existing binding, or creates one when the name is
// unbound.
func (e *Env) Assign(name string, value Value) {
	e.vars[name] = value
}

// Get returns the bound value, or NilValue for unbound names.
func (e *Env) Get(name string) Value {
	if v, ok := e.vars[name]; ok {
		return v
	}
	return NilValue{}
}

// Len reports the number of live bindings.
func (e *Env) Len() int {
	return len(e.vars)
}

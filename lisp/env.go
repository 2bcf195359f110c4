package lisp

import "sort"

// LEnv is a lisp environment: one level of the scope chain.
type LEnv struct {
	Scope  map[string]*LVal
	Parent *LEnv

	handle Handle
}

// NewEnv returns initializes and returns a new LEnv extending parent.  A root
// environment is returned when parent is nil.
func NewEnv(parent *LEnv) *LEnv {
	return &LEnv{
		Scope:  make(map[string]*LVal),
		Parent: parent,
		handle: noHandle,
	}
}

// NewGlobalEnv returns a root environment with the predefined names nil,
// true and false bound.
func NewGlobalEnv() *LEnv {
	env := NewEnv(nil)
	env.Define("nil", Void())
	env.Define("true", Bool(true))
	env.Define("false", Bool(false))
	return env
}

// Define binds name to v in the local scope of env, replacing any existing
// local binding, and returns v.
func (env *LEnv) Define(name string, v *LVal) *LVal {
	env.Scope[name] = v
	return v
}

// Get returns the value bound to name in env or the nearest enclosing
// environment that binds it.
func (env *LEnv) Get(name string) (*LVal, bool) {
	for ; env != nil; env = env.Parent {
		v, ok := env.Scope[name]
		if ok {
			return v, true
		}
	}
	return nil, false
}

// Lookup is Get reporting an unbound name as a reference error.
func (env *LEnv) Lookup(name string) (*LVal, error) {
	v, ok := env.Get(name)
	if !ok {
		return nil, referencef("%s is not defined", name)
	}
	return v, nil
}

// Assign rebinds name in the nearest environment that already binds it and
// returns v.  Assign never creates a binding.
func (env *LEnv) Assign(name string, v *LVal) (*LVal, error) {
	for e := env; e != nil; e = e.Parent {
		if _, ok := e.Scope[name]; ok {
			e.Scope[name] = v
			return v, nil
		}
	}
	return nil, referencef("%s is not defined", name)
}

// Names returns the sorted, de-duplicated names visible from env.
func (env *LEnv) Names() []string {
	seen := make(map[string]bool)
	var names []string
	for ; env != nil; env = env.Parent {
		for k := range env.Scope {
			if !seen[k] {
				seen[k] = true
				names = append(names, k)
			}
		}
	}
	sort.Strings(names)
	return names
}

// Handle returns the arena handle of env and whether env has been pushed to
// an arena.
func (env *LEnv) Handle() (Handle, bool) {
	return env.handle, env.handle != noHandle
}

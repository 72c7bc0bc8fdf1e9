// Package symbols implements symbol identity, unique within one
// compilation, and the nested lexical scopes the binder resolves names
// against.
package symbols

import "github.com/ibcompiler/ib/internal/typesystem"

// ID is a symbol identity, monotonically increasing within one
// compilation.
type ID uint64

// allocator hands out increasing IDs for one compilation. Each root
// scope owns one, shared by pointer with every scope derived from it;
// it is not held process-globally.
type allocator struct {
	next uint64
}

func (a *allocator) next_() ID {
	a.next++
	return ID(a.next)
}

// Variable is a named, typed local: a parameter, loop iterator, or
// assignment target.
type Variable struct {
	ID   ID
	Name string
	Type typesystem.Type
}

// Function is a declared function's signature.
type Function struct {
	ID         ID
	Name       string
	Parameters []Variable
	ReturnType typesystem.Type
}

// Scope is one nested lexical scope: the variables and functions declared
// directly in it, plus a parent pointer (nil at the root). All scopes
// produced from one root share one symbol allocator.
type Scope struct {
	parent *Scope
	alloc  *allocator
	vars   map[string]Variable
	funcs  map[string]Function
}

// NewRoot creates a fresh root scope with its own symbol allocator.
func NewRoot() *Scope {
	return &Scope{alloc: &allocator{}, vars: map[string]Variable{}, funcs: map[string]Function{}}
}

// Child creates a new scope nested inside s.
func (s *Scope) Child() *Scope {
	return &Scope{parent: s, alloc: s.alloc, vars: map[string]Variable{}, funcs: map[string]Function{}}
}

// LookupVariable walks the parent chain for a variable named name.
func (s *Scope) LookupVariable(name string) (Variable, bool) {
	for sc := s; sc != nil; sc = sc.parent {
		if v, ok := sc.vars[name]; ok {
			return v, true
		}
	}
	return Variable{}, false
}

// LookupFunction walks the parent chain for a function named name.
func (s *Scope) LookupFunction(name string) (Function, bool) {
	for sc := s; sc != nil; sc = sc.parent {
		if f, ok := sc.funcs[name]; ok {
			return f, true
		}
	}
	return Function{}, false
}

// Assign implements the BoundScope assignment rule: a name already
// visible (locally or in an ancestor) must keep its existing type, in
// which case the existing symbol is returned unmodified; a fresh name
// allocates a new symbol in the current scope. ok is false on a type
// mismatch against an existing binding.
func (s *Scope) Assign(name string, t typesystem.Type) (Variable, bool) {
	if existing, found := s.LookupVariable(name); found {
		if !existing.Type.Equals(t) {
			return Variable{}, false
		}
		return existing, true
	}
	v := Variable{ID: s.alloc.next_(), Name: name, Type: t}
	s.vars[name] = v
	return v, true
}

// DeclareParameter declares a parameter symbol in the current scope. ok
// is false if name is already bound locally to a conflicting type.
func (s *Scope) DeclareParameter(name string, t typesystem.Type) (Variable, bool) {
	if existing, found := s.vars[name]; found {
		return Variable{}, existing.Type.Equals(t)
	}
	v := Variable{ID: s.alloc.next_(), Name: name, Type: t}
	s.vars[name] = v
	return v, true
}

// DeclareLoopVariable always allocates a fresh iterator symbol local to
// this scope, shadowing any outer binding of the same name.
func (s *Scope) DeclareLoopVariable(name string, t typesystem.Type) Variable {
	v := Variable{ID: s.alloc.next_(), Name: name, Type: t}
	s.vars[name] = v
	return v
}

// DeclareFunction declares a function in the current scope. ok is false
// if a function of the same name is already visible anywhere in the
// chain.
func (s *Scope) DeclareFunction(name string, params []Variable, ret typesystem.Type) (Function, bool) {
	if _, found := s.LookupFunction(name); found {
		return Function{}, false
	}
	f := Function{ID: s.alloc.next_(), Name: name, Parameters: params, ReturnType: ret}
	s.funcs[name] = f
	return f, true
}

// DeclareBuiltinFunction registers a built-in (e.g. input) directly,
// bypassing the name-clash check; used once at root-scope construction.
func (s *Scope) DeclareBuiltinFunction(name string, params []Variable, ret typesystem.Type) Function {
	f := Function{ID: s.alloc.next_(), Name: name, Parameters: params, ReturnType: ret}
	s.funcs[name] = f
	return f
}

// Transient builds a scope whose function table is exactly the given
// methods, declared against the given parent for parameter-symbol
// allocation continuity. Used by the binder to resolve object member
// access through a container's reflection methods.
func Transient(parent *Scope, methods []typesystem.Method) *Scope {
	t := parent.Child()
	for _, m := range methods {
		params := make([]Variable, len(m.Params))
		for i, p := range m.Params {
			params[i] = Variable{ID: t.alloc.next_(), Name: "", Type: p}
		}
		t.funcs[m.Name] = Function{ID: t.alloc.next_(), Name: m.Name, Parameters: params, ReturnType: m.ReturnType}
	}
	return t
}

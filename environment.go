package lox

import "fmt"

// Environment is a chained name->value scope: a child holds a reference
// to its parent, and lookups that miss locally walk outward. GetAt/AssignAt
// are the distance-indexed counterparts to Get/Assign, used once the
// resolver has already worked out exactly how many scopes out a name
// lives.
type Environment struct {
	enclosing *Environment
	values    map[string]Value
}

// NewEnvironment creates a scope. enclosing is nil for the global scope.
func NewEnvironment(enclosing *Environment) *Environment {
	return &Environment{enclosing: enclosing, values: make(map[string]Value)}
}

// Define binds name in this environment. Redeclaring a name already bound
// in this environment is a runtime error; shadowing an enclosing
// environment's binding is fine and expected (block scoping).
func (e *Environment) Define(name string, v Value) error {
	if _, ok := e.values[name]; ok {
		return fmt.Errorf("Attempted to redeclare variable '%s'.", name)
	}
	e.values[name] = v
	return nil
}

// Get reads name, delegating to enclosing scopes outward.
func (e *Environment) Get(name string) (Value, error) {
	if v, ok := e.values[name]; ok {
		return v, nil
	}
	if e.enclosing != nil {
		return e.enclosing.Get(name)
	}
	return Value{}, fmt.Errorf("Undefined variable '%s'.", name)
}

// Assign updates the nearest visible binding of name, delegating outward.
func (e *Environment) Assign(name string, v Value) error {
	if _, ok := e.values[name]; ok {
		e.values[name] = v
		return nil
	}
	if e.enclosing != nil {
		return e.enclosing.Assign(name, v)
	}
	return fmt.Errorf("Undefined variable '%s'.", name)
}

// ancestor walks exactly depth enclosing links.
func (e *Environment) ancestor(depth int) *Environment {
	env := e
	for i := 0; i < depth; i++ {
		env = env.enclosing
	}
	return env
}

// GetAt reads name from the environment exactly depth hops out. No
// fallthrough and no missing-key error: the resolver has already proved
// the binding exists there.
func (e *Environment) GetAt(depth int, name string) Value {
	return e.ancestor(depth).values[name]
}

// AssignAt overwrites name in the environment exactly depth hops out. It
// overwrites rather than insert-or-fail, since the resolver guarantees the
// binding is already there.
func (e *Environment) AssignAt(depth int, name string, v Value) {
	e.ancestor(depth).values[name] = v
}

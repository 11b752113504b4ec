package minilogic

import (
	"fmt"
	"sort"
	"strings"
)

// Env binds variable names to boolean values.
type Env struct {
	vars   map[string]bool
	parent *Env // defaults shadowed by this scope
}

// NewEnv creates a new empty environment.
func NewEnv() *Env {
	return &Env{
		vars: make(map[string]bool),
	}
}

// EnvFromMap creates an environment holding a copy of values.
func EnvFromMap(values map[string]bool) *Env {
	env := &Env{
		vars: make(map[string]bool, len(values)),
	}
	for k, v := range values {
		env.vars[k] = v
	}
	return env
}

// NewChildEnv creates a new environment with the given parent.
// Variables in the child shadow those in the parent.
func NewChildEnv(parent *Env) *Env {
	return &Env{
		vars:   make(map[string]bool),
		parent: parent,
	}
}

// Get retrieves the value of a variable.
// The second result reports whether the variable is bound.
func (e *Env) Get(name string) (bool, bool) {
	if e == nil {
		return false, false
	}
	if v, ok := e.vars[name]; ok {
		return v, true
	}
	if e.parent != nil {
		return e.parent.Get(name)
	}
	return false, false
}

// Set sets the value of a variable in the current scope. The zero Env is
// ready to use; e must not be nil.
func (e *Env) Set(name string, val bool) {
	if e.vars == nil {
		e.vars = make(map[string]bool)
	}
	e.vars[name] = val
}

func (e *Env) collectKeys(keys map[string]struct{}) {
	if e == nil {
		return
	}
	for k := range e.vars {
		keys[k] = struct{}{}
	}
	if e.parent != nil {
		e.parent.collectKeys(keys)
	}
}

// Keys returns all visible variable names, sorted.
func (e *Env) Keys() []string {
	set := make(map[string]struct{})
	e.collectKeys(set)
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Map flattens the environment into a plain map.
func (e *Env) Map() map[string]bool {
	result := make(map[string]bool)
	for _, k := range e.Keys() {
		v, _ := e.Get(k)
		result[k] = v
	}
	return result
}

// String returns the bindings in key order, e.g. "{A: true, B: false}".
func (e *Env) String() string {
	var b strings.Builder
	b.WriteString("{")
	for i, k := range e.Keys() {
		if i > 0 {
			b.WriteString(", ")
		}
		v, _ := e.Get(k)
		fmt.Fprintf(&b, "%s: %t", k, v)
	}
	b.WriteString("}")
	return b.String()
}

// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package hm

import (
	"github.com/benbjohnson/immutable"

	"github.com/wdamron/hm/internal/typeutil"
	"github.com/wdamron/hm/types"
)

var emptyBindings = immutable.NewSortedMap(nil)

// TypeEnv is a persistent type-environment containing mappings from identifiers to generic types.
//
// Extending a type-environment produces a new type-environment without modifying the existing one,
// so sibling scopes never observe each other's bindings. A type-environment may be shared across
// threads and inference contexts.
//
// The zero value is not usable; create environments with NewTypeEnv or Prelude.
type TypeEnv struct {
	bindings *immutable.SortedMap
}

// Create an empty type-environment.
func NewTypeEnv() *TypeEnv { return &TypeEnv{bindings: emptyBindings} }

// Len returns the number of identifiers bound in the type-environment.
func (e *TypeEnv) Len() int { return e.bindings.Len() }

// Extend returns a type-environment which binds name to g, in addition to the bindings of e.
// An existing binding for name is shadowed in the new type-environment.
func (e *TypeEnv) Extend(name string, g *types.Generic) *TypeEnv {
	return &TypeEnv{bindings: e.bindings.Set(name, g)}
}

// Declare returns a type-environment which binds name to the monomorphic type t.
func (e *TypeEnv) Declare(name string, t types.Type) *TypeEnv { return e.Extend(name, types.Mono(t)) }

// DeclareGeneric returns a type-environment which binds name to t, generic over params.
// Within t, each parameter should be referenced as a nullary constructor: `Function1<A, A>`
func (e *TypeEnv) DeclareGeneric(name string, params []string, t types.Type) *TypeEnv {
	return e.Extend(name, types.NewGeneric(params, t))
}

// Remove returns a type-environment without a binding for name.
func (e *TypeEnv) Remove(name string) *TypeEnv {
	return &TypeEnv{bindings: e.bindings.Delete(name)}
}

// Lookup the generic type for an identifier.
func (e *TypeEnv) Lookup(name string) (*types.Generic, bool) {
	v, ok := e.bindings.Get(name)
	if !ok {
		return nil, false
	}
	return v.(*types.Generic), true
}

// Iterate over bindings in the type-environment, sorted by name.
// If f returns false, iteration will be stopped.
func (e *TypeEnv) Range(f func(name string, g *types.Generic) bool) {
	iter := e.bindings.Iterator()
	for !iter.Done() {
		k, v := iter.Next()
		if !f(k.(string), v.(*types.Generic)) {
			return
		}
	}
}

// Names returns the bound identifiers, sorted.
func (e *TypeEnv) Names() []string {
	names := make([]string, 0, e.Len())
	e.Range(func(name string, _ *types.Generic) bool {
		names = append(names, name)
		return true
	})
	return names
}

// Unbound type-variables reachable from the bindings of env
func (ti *InferenceContext) freeInEnv(env *TypeEnv) *typeutil.VarSet {
	vs := typeutil.NewVarSet()
	env.Range(func(_ string, g *types.Generic) bool {
		ti.store.CollectFree(vs, g.Type)
		return true
	})
	return vs
}

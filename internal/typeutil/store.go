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

package typeutil

import (
	"github.com/wdamron/hm/types"
)

// Store is an append-only substitution table. Slot i holds the current binding of the type-variable
// with id i; a type-variable is unbound when its slot holds the variable itself.
//
// Slots are never removed. A Store must not be shared between unrelated inference runs.
type Store struct {
	slots []types.Type
}

// NewStore creates an empty store with room for n type-variables.
func NewStore(n int) *Store { return &Store{slots: make([]types.Type, 0, n)} }

// Len returns the number of type-variables allocated by the store.
func (s *Store) Len() int { return len(s.slots) }

// Reset removes all slots, keeping allocated space.
func (s *Store) Reset() {
	for i := range s.slots {
		s.slots[i] = nil
	}
	s.slots = s.slots[:0]
}

// Fresh allocates a new unbound type-variable.
func (s *Store) Fresh() *types.Var {
	tv := types.NewVar(len(s.slots))
	s.slots = append(s.slots, tv)
	return tv
}

// FreshList allocates count new unbound type-variables.
func (s *Store) FreshList(count int) []types.Type {
	vars := make([]types.Type, count)
	for i := range vars {
		vars[i] = s.Fresh()
	}
	return vars
}

// Binding returns the current contents of the slot for id.
func (s *Store) Binding(id int) types.Type { return s.slots[id] }

// IsUnbound returns true if the type-variable with the given id is bound to itself.
func (s *Store) IsUnbound(id int) bool {
	tv, ok := s.slots[id].(*types.Var)
	return ok && tv.Id == id
}

// Bind overwrites the slot for id. The caller must check that id does not occur in t.
func (s *Store) Bind(id int, t types.Type) { s.slots[id] = t }

// Owns returns true if tv was allocated by the store.
func (s *Store) Owns(tv *types.Var) bool { return tv.Id >= 0 && tv.Id < len(s.slots) }

// Find follows bound type-variables until reaching an unbound type-variable or a constructor.
// Generics of the resulting constructor are left unresolved. Type-variables not owned by the store
// are returned as-is; Unify rejects them.
func (s *Store) Find(t types.Type) types.Type {
	for {
		tv, ok := t.(*types.Var)
		if !ok || !s.Owns(tv) {
			return t
		}
		next := s.slots[tv.Id]
		if nv, ok := next.(*types.Var); ok && nv.Id == tv.Id {
			return next
		}
		t = next
	}
}

// Resolve replaces every bound type-variable reachable from t with its binding. The store is not
// modified; repeated resolution of a long chain of bindings walks the whole chain each time.
//
// Constructors without bound type-variables are returned without copying.
func (s *Store) Resolve(t types.Type) types.Type {
	switch t := s.Find(t).(type) {
	case *types.Const:
		var generics []types.Type
		for i, g := range t.Generics {
			r := s.Resolve(g)
			if generics == nil && r != g {
				generics = make([]types.Type, len(t.Generics))
				copy(generics, t.Generics[:i])
			}
			if generics != nil {
				generics[i] = r
			}
		}
		if generics == nil {
			return t
		}
		return &types.Const{Name: t.Name, Generics: generics}
	default:
		return t
	}
}

// Snapshot returns an independent copy of the store. Bindings made in the copy are not visible in s.
func (s *Store) Snapshot() *Store {
	slots := make([]types.Type, len(s.slots))
	copy(slots, s.slots)
	return &Store{slots: slots}
}

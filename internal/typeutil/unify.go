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

// Unify makes a and b structurally equal by binding type-variables within the store.
//
// Constructors unify when their names and arities match and their generics unify pairwise, from left
// to right. When both sides are distinct unbound type-variables, the variable on the left is bound.
// Bindings made before a failure are not rolled back. Type-variables not owned by the store fail
// with a *types.ForeignVarError.
func (s *Store) Unify(a, b types.Type) error {
	a, b = s.Find(a), s.Find(b)

	switch a := a.(type) {
	case *types.Var:
		if !s.Owns(a) {
			return &types.ForeignVarError{Var: a.Id}
		}
		if b, ok := b.(*types.Var); ok {
			if !s.Owns(b) {
				return &types.ForeignVarError{Var: b.Id}
			}
			if a.Id == b.Id {
				return nil
			}
		}
		return s.bindVar(a, b)

	case *types.Const:
		switch b := b.(type) {
		case *types.Var:
			if !s.Owns(b) {
				return &types.ForeignVarError{Var: b.Id}
			}
			return s.bindVar(b, a)
		case *types.Const:
			if !a.SameShape(b) {
				return &types.MismatchError{Expected: s.Resolve(a), Actual: s.Resolve(b)}
			}
			for i := range a.Generics {
				if err := s.Unify(a.Generics[i], b.Generics[i]); err != nil {
					return err
				}
			}
			return nil
		}
	}

	return &types.MismatchError{Expected: s.Resolve(a), Actual: s.Resolve(b)}
}

// tv must be unbound.
func (s *Store) bindVar(tv *types.Var, t types.Type) error {
	// The check is trivially false when t is another unbound type-variable.
	if s.OccursIn(tv.Id, t) {
		return &types.InfiniteTypeError{Var: tv.Id, Type: s.Resolve(t)}
	}
	s.Bind(tv.Id, t)
	return nil
}

// OccursIn returns true if the type-variable with the given id appears within t, following
// bindings in the store.
func (s *Store) OccursIn(id int, t types.Type) bool {
	switch t := s.Find(t).(type) {
	case *types.Var:
		return t.Id == id
	case *types.Const:
		for _, g := range t.Generics {
			if s.OccursIn(id, g) {
				return true
			}
		}
	}
	return false
}

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

// Instantiate replaces the generic parameters of g with fresh type-variables from the store.
// The returned slice holds the fresh type-variable for each parameter, in order.
//
// Parameters are replaced structurally, wherever a nullary constructor named after a parameter
// appears. Type-variables within g are shared with the result. Monomorphic generic types are
// returned as-is.
func (s *Store) Instantiate(g *types.Generic) (types.Type, []types.Type) {
	if len(g.Params) == 0 {
		return g.Type, nil
	}
	fresh := s.FreshList(len(g.Params))
	lookup := make(map[string]types.Type, len(g.Params))
	for i, name := range g.Params {
		lookup[name] = fresh[i]
	}
	return Substitute(g.Type, lookup), fresh
}

// Substitute structurally replaces each nullary constructor in t whose name is a key of lookup.
// Unchanged sub-terms are shared with t.
func Substitute(t types.Type, lookup map[string]types.Type) types.Type {
	c, ok := t.(*types.Const)
	if !ok {
		return t
	}
	if len(c.Generics) == 0 {
		if r, ok := lookup[c.Name]; ok {
			return r
		}
		return c
	}
	var generics []types.Type
	for i, g := range c.Generics {
		r := Substitute(g, lookup)
		if generics == nil && r != g {
			generics = make([]types.Type, len(c.Generics))
			copy(generics, c.Generics[:i])
		}
		if generics != nil {
			generics[i] = r
		}
	}
	if generics == nil {
		return c
	}
	return &types.Const{Name: c.Name, Generics: generics}
}

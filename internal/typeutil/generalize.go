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
	"strconv"

	"github.com/wdamron/hm/types"
)

// VarSet is a set of type-variable ids which remembers insertion order.
type VarSet struct {
	order []int
	seen  map[int]struct{}
}

func NewVarSet() *VarSet { return &VarSet{seen: make(map[int]struct{})} }

// Add inserts id, returning false if it was already present.
func (vs *VarSet) Add(id int) bool {
	if _, ok := vs.seen[id]; ok {
		return false
	}
	vs.seen[id] = struct{}{}
	vs.order = append(vs.order, id)
	return true
}

func (vs *VarSet) Has(id int) bool {
	_, ok := vs.seen[id]
	return ok
}

func (vs *VarSet) Len() int { return len(vs.order) }

// Ids returns the ids in insertion order.
func (vs *VarSet) Ids() []int { return vs.order }

// Without returns the ids of vs which are not in other, in insertion order.
func (vs *VarSet) Without(other *VarSet) []int {
	var ids []int
	for _, id := range vs.order {
		if !other.Has(id) {
			ids = append(ids, id)
		}
	}
	return ids
}

// CollectFree adds the unbound type-variables reachable from t to vs, in left-to-right order.
// Bindings are followed through the store. Type-variables not owned by the store are skipped.
func (s *Store) CollectFree(vs *VarSet, t types.Type) {
	switch t := s.Find(t).(type) {
	case *types.Var:
		if s.Owns(t) {
			vs.Add(t.Id)
		}
	case *types.Const:
		for _, g := range t.Generics {
			s.CollectFree(vs, g)
		}
	}
}

// FreeVars returns the unbound type-variables reachable from t.
func (s *Store) FreeVars(t types.Type) *VarSet {
	vs := NewVarSet()
	s.CollectFree(vs, t)
	return vs
}

// NameGen produces generic parameter names: A, B, ..., Z, A1, B1, ..., Z1, A2, ...
type NameGen struct {
	next  int
	taken map[string]struct{}
}

// Reset restarts the sequence at A and forgets names passed to Avoid.
func (g *NameGen) Reset() {
	g.next = 0
	for name := range g.taken {
		delete(g.taken, name)
	}
}

// Avoid marks name as taken until the next Reset.
func (g *NameGen) Avoid(name string) {
	if g.taken == nil {
		g.taken = make(map[string]struct{})
	}
	g.taken[name] = struct{}{}
}

// Next returns the next name in the sequence.
func (g *NameGen) Next() string {
	i := g.next
	g.next++
	return GenericName(i)
}

// NextAvoiding returns the next name in the sequence which is neither taken nor a constructor
// name within t.
func (g *NameGen) NextAvoiding(t types.Type) string {
	for {
		name := g.Next()
		if _, taken := g.taken[name]; taken {
			continue
		}
		if !types.ContainsConst(t, name) {
			return name
		}
	}
}

// GenericName returns the i-th generic parameter name.
func GenericName(i int) string {
	letter := string(rune('A' + i%26))
	if i < 26 {
		return letter
	}
	return letter + strconv.Itoa(i/26)
}

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

package astutil

import (
	"sort"

	"github.com/wdamron/hm/ast"
)

// FreeNames returns the variable names referenced by e which are not bound within e.
func FreeNames(e ast.Expr) map[string]struct{} {
	free := make(map[string]struct{})
	s := scope{bound: make(map[string]int), free: free}
	s.expr(e)
	return free
}

type scope struct {
	bound map[string]int
	free  map[string]struct{}
}

func (s scope) bind(name string)   { s.bound[name]++ }
func (s scope) unbind(name string) { s.bound[name]-- }

func (s scope) expr(e ast.Expr) {
	switch e := e.(type) {
	case *ast.Var:
		if s.bound[e.Name] == 0 {
			s.free[e.Name] = struct{}{}
		}

	case *ast.Func:
		s.fn(e)

	case *ast.Call:
		s.expr(e.Func)
		for _, arg := range e.Args {
			s.expr(arg)
		}

	case *ast.Let:
		s.expr(e.Value)
		if e.Body != nil {
			s.bind(e.Var)
			s.expr(e.Body)
			s.unbind(e.Var)
		}

	case *ast.LetGroup:
		for _, f := range e.Funcs {
			s.bind(f.Name)
		}
		for _, f := range e.Funcs {
			s.fn(f.Value)
		}
		s.expr(e.Body)
		for _, f := range e.Funcs {
			s.unbind(f.Name)
		}

	case *ast.Array:
		for _, item := range e.Items {
			s.expr(item)
		}

	case *ast.Sequence:
		s.expr(e.Effect)
		s.expr(e.Value)

	case *ast.Block:
		var scoped []string
		for _, sub := range e.Exprs {
			s.expr(sub)
			if let, ok := sub.(*ast.Let); ok && let.Body == nil {
				s.bind(let.Var)
				scoped = append(scoped, let.Var)
			}
		}
		for _, name := range scoped {
			s.unbind(name)
		}
	}
}

func (s scope) fn(f *ast.Func) {
	if f == nil {
		return
	}
	for _, p := range f.Params {
		s.bind(p.Name)
	}
	s.expr(f.Body)
	for _, p := range f.Params {
		s.unbind(p.Name)
	}
}

// GroupComponents partitions the functions of a group into strongly-connected components of their
// references to each other. Each component holds indices into g.Funcs, in ascending order; a component
// precedes every component which references it.
//
// A group with more than one component may be split into nested groups, allowing each function
// to be used polymorphically by the functions which follow it.
func GroupComponents(g *ast.LetGroup) [][]int {
	index := make(map[string]int, len(g.Funcs))
	for i, f := range g.Funcs {
		index[f.Name] = i
	}
	graph := make([][]int, len(g.Funcs))
	for i, f := range g.Funcs {
		var refs []int
		for name := range FreeNames(f.Value) {
			if j, ok := index[name]; ok {
				refs = append(refs, j)
			}
		}
		sort.Ints(refs)
		graph[i] = refs
	}
	return components(graph)
}

// Tarjan's SCC algorithm, based on https://github.com/gonum/gonum/blob/master/graph/topo/tarjan.go
//
// Components are produced after all components reachable from them.
func components(graph [][]int) [][]int {
	t := tarjan{
		graph:   graph,
		index:   make([]int, len(graph)),
		lowLink: make([]int, len(graph)),
		onStack: make([]bool, len(graph)),
	}
	for v := range graph {
		if t.index[v] == 0 {
			t.visit(v)
		}
	}
	return t.sccs
}

type tarjan struct {
	graph   [][]int
	next    int
	index   []int
	lowLink []int
	onStack []bool
	stack   []int
	sccs    [][]int
}

func (t *tarjan) visit(v int) {
	t.next++
	t.index[v], t.lowLink[v] = t.next, t.next
	t.stack = append(t.stack, v)
	t.onStack[v] = true

	for _, w := range t.graph[v] {
		if t.index[w] == 0 {
			t.visit(w)
			if t.lowLink[w] < t.lowLink[v] {
				t.lowLink[v] = t.lowLink[w]
			}
		} else if t.onStack[w] && t.index[w] < t.lowLink[v] {
			t.lowLink[v] = t.index[w]
		}
	}

	if t.lowLink[v] != t.index[v] {
		return
	}
	var scc []int
	for {
		n := len(t.stack) - 1
		w := t.stack[n]
		t.stack = t.stack[:n]
		t.onStack[w] = false
		scc = append(scc, w)
		if w == v {
			break
		}
	}
	sort.Ints(scc)
	t.sccs = append(t.sccs, scc)
}

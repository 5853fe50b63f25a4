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
	"reflect"
	"sort"
	"testing"

	. "github.com/wdamron/hm/construct"

	"github.com/wdamron/hm/ast"
)

func TestFreeNames(t *testing.T) {
	// (x) -> { let a = f(x); let rec g = (y) -> g(+(a, y)) in g(b); a }
	expr := Func1("x", Block(
		LetStmt("a", Call(Var("f"), Var("x"))),
		LetFunc("g", Func1("y", Call(Var("g"), Call(Var("+"), Var("a"), Var("y")))), Call(Var("g"), Var("b"))),
		Var("a")))

	var names []string
	for name := range FreeNames(expr) {
		names = append(names, name)
	}
	sort.Strings(names)
	if !reflect.DeepEqual(names, []string{"+", "b", "f"}) {
		t.Fatalf("free: %v", names)
	}

	// A let-binding is not in scope within its own value:
	if _, ok := FreeNames(Let("a", Var("a"), Var("a")))["a"]; !ok {
		t.Fatalf("expected free a")
	}
}

func TestGroupComponents(t *testing.T) {
	group := LetGroup([]ast.LetFunc{
		Binding("id", Func1("x", Var("x"))),
		Binding("f", Func1("x", Call(Var("g"), Var("x")))),
		Binding("g", Func1("x", Call(Var("f"), Var("x")))),
		Binding("h", Func1("x", Call(Var("id"), Call(Var("f"), Var("x"))))),
	}, Var("h"))

	sccs := GroupComponents(group)
	if !reflect.DeepEqual(sccs, [][]int{{0}, {1, 2}, {3}}) {
		t.Fatalf("components: %v", sccs)
	}

	// Parameters shadow functions of the group:
	group = LetGroup([]ast.LetFunc{
		Binding("f", Func1("g", Var("g"))),
		Binding("g", Func1("x", Call(Var("f"), Var("x")))),
	}, Var("g"))
	if sccs = GroupComponents(group); !reflect.DeepEqual(sccs, [][]int{{0}, {1}}) {
		t.Fatalf("components: %v", sccs)
	}
}

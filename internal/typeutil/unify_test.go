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
	"errors"
	"testing"

	"github.com/wdamron/hm/ast"
	"github.com/wdamron/hm/types"
)

func TestOccursCheck(t *testing.T) {
	s := NewStore(8)
	v := s.Fresh()
	err := s.Unify(v, types.Array(v))
	if !errors.Is(err, types.ErrInfiniteType) {
		t.Fatalf("expected infinite type, found %v", err)
	}
	if !s.IsUnbound(v.Id) {
		t.Fatalf("expected unbound variable after failed unification")
	}

	// The check follows bindings:
	w := s.Fresh()
	if err = s.Unify(w, types.Array(v)); err != nil {
		t.Fatal(err)
	}
	if err = s.Unify(v, types.Function([]types.Type{types.Int()}, w)); !errors.Is(err, types.ErrInfiniteType) {
		t.Fatalf("expected infinite type, found %v", err)
	}
}

func TestMismatch(t *testing.T) {
	s := NewStore(8)
	Int := types.Int()

	err := s.Unify(types.Function([]types.Type{Int, Int}, Int), types.Function([]types.Type{Int}, Int))
	if !errors.Is(err, types.ErrMismatch) {
		t.Fatalf("expected type mismatch, found %v", err)
	}
	if err.Error() != "Type mismatch: expected Function2<Int, Int, Int>, found Function1<Int, Int>" {
		t.Fatalf("error: %s", err)
	}

	if err = s.Unify(Int, types.Bool()); err == nil || err.Error() != "Type mismatch: expected Int, found Bool" {
		t.Fatalf("error: %v", err)
	}

	// Same name, different arity:
	err = s.Unify(types.NewConst("Pair", Int), types.NewConst("Pair", Int, Int))
	if !errors.Is(err, types.ErrMismatch) {
		t.Fatalf("expected type mismatch, found %v", err)
	}

	// The innermost differing pair is reported:
	err = s.Unify(types.Array(types.Array(Int)), types.Array(types.Array(types.String())))
	if err == nil || err.Error() != "Type mismatch: expected Int, found String" {
		t.Fatalf("error: %v", err)
	}
}

func TestUnifyBindsLeft(t *testing.T) {
	s := NewStore(8)
	a, b := s.Fresh(), s.Fresh()
	if err := s.Unify(a, b); err != nil {
		t.Fatal(err)
	}
	if s.IsUnbound(a.Id) || !s.IsUnbound(b.Id) {
		t.Fatalf("expected '_0 bound to '_1, found %s", types.TypeString(s.Binding(a.Id)))
	}
	if err := s.Unify(a, a); err != nil {
		t.Fatal(err)
	}
	if err := s.Unify(types.Int(), b); err != nil {
		t.Fatal(err)
	}
	if tn := types.TypeString(s.Resolve(a)); tn != "Int" {
		t.Fatalf("type: %s", tn)
	}
}

func TestFindAndResolve(t *testing.T) {
	s := NewStore(8)
	a, b := s.Fresh(), s.Fresh()
	s.Bind(a.Id, types.Array(b))
	s.Bind(b.Id, types.Int())

	if tn := types.TypeString(s.Find(a)); tn != "Array<'_1>" {
		t.Fatalf("find: %s", tn)
	}
	resolved := s.Resolve(a)
	if tn := types.TypeString(resolved); tn != "Array<Int>" {
		t.Fatalf("resolve: %s", tn)
	}
	// Resolution does not compress paths:
	if tn := types.TypeString(s.Binding(a.Id)); tn != "Array<'_1>" {
		t.Fatalf("binding: %s", tn)
	}

	// Fully resolved types are returned as-is:
	if again := s.Resolve(resolved); again != resolved {
		t.Fatalf("expected identical type, found %s", types.TypeString(again))
	}
	fn := types.Function([]types.Type{types.Int(), types.Array(types.String())}, types.Bool())
	if s.Resolve(fn) != types.Type(fn) {
		t.Fatalf("expected identical type")
	}

	// Type-variables from outside the store resolve to themselves:
	if tn := types.TypeString(s.Resolve(types.NewVar(100))); tn != "'_100" {
		t.Fatalf("resolve: %s", tn)
	}
}

func TestSnapshot(t *testing.T) {
	s := NewStore(8)
	a := s.Fresh()
	local := s.Snapshot()
	local.Bind(a.Id, types.NewConst("A"))
	if !s.IsUnbound(a.Id) {
		t.Fatalf("expected unbound variable in the original store")
	}
	if tn := types.TypeString(local.Resolve(types.Array(a))); tn != "Array<A>" {
		t.Fatalf("type: %s", tn)
	}
}

func TestConstraints(t *testing.T) {
	s := NewStore(8)
	var cs Constraints
	a := s.Fresh()
	first, second := &ast.IntLiteral{Value: 1}, &ast.StringLiteral{Value: "a"}

	cs.Emit(a, types.Int(), first)
	if invalid, err := cs.Solve(s); err != nil || invalid != nil {
		t.Fatalf("solve: %v", err)
	}
	if cs.Len() != 0 {
		t.Fatalf("expected solved constraints to be cleared, found %d", cs.Len())
	}

	cs.Emit(a, types.Int(), first)
	cs.Emit(a, types.String(), second)
	cs.Emit(a, types.Bool(), first)
	invalid, err := cs.Solve(s)
	if !errors.Is(err, types.ErrMismatch) {
		t.Fatalf("expected type mismatch, found %v", err)
	}
	if invalid != ast.Expr(second) {
		t.Fatalf("expected the failed constraint's expression, found %v", invalid)
	}
}

func TestFreeVars(t *testing.T) {
	s := NewStore(8)
	a, b, c := s.Fresh(), s.Fresh(), s.Fresh()
	s.Bind(c.Id, types.Array(a))

	vs := s.FreeVars(types.Function([]types.Type{b, c, a}, b))
	ids := vs.Ids()
	if len(ids) != 2 || ids[0] != b.Id || ids[1] != a.Id {
		t.Fatalf("free: %v", ids)
	}

	bound := NewVarSet()
	bound.Add(a.Id)
	if rest := vs.Without(bound); len(rest) != 1 || rest[0] != b.Id {
		t.Fatalf("without: %v", rest)
	}
}

func TestGenericNames(t *testing.T) {
	for i, expected := range map[int]string{0: "A", 1: "B", 25: "Z", 26: "A1", 27: "B1", 52: "A2"} {
		if name := GenericName(i); name != expected {
			t.Fatalf("name %d: %s", i, name)
		}
	}

	var g NameGen
	if name := g.NextAvoiding(types.Function([]types.Type{types.NewConst("A")}, types.NewConst("B"))); name != "C" {
		t.Fatalf("name: %s", name)
	}
	if name := g.Next(); name != "D" {
		t.Fatalf("name: %s", name)
	}
	g.Reset()
	if name := g.Next(); name != "A" {
		t.Fatalf("name: %s", name)
	}

	// Names bound elsewhere are skipped until the next reset:
	g.Reset()
	g.Avoid("A")
	g.Avoid("C")
	if name := g.NextAvoiding(types.NewConst("B")); name != "D" {
		t.Fatalf("name: %s", name)
	}
	g.Reset()
	if name := g.NextAvoiding(types.Int()); name != "A" {
		t.Fatalf("name after reset: %s", name)
	}
}

func TestForeignVariable(t *testing.T) {
	s := NewStore(8)
	a := s.Fresh()
	foreign := types.NewVar(40)

	pairs := [][2]types.Type{
		{a, foreign},
		{foreign, types.Int()},
		{types.Array(types.Int()), types.Array(foreign)},
	}
	for _, pair := range pairs {
		err := s.Unify(pair[0], pair[1])
		if !errors.Is(err, types.ErrForeignVariable) {
			t.Fatalf("unify %s with %s: expected foreign type-variable, found %v",
				types.TypeString(pair[0]), types.TypeString(pair[1]), err)
		}
		if err.Error() != "Type-variable '_40 is not known to this inference context" {
			t.Fatalf("error: %s", err)
		}
	}
	if !s.IsUnbound(a.Id) {
		t.Fatalf("expected unbound variable, found %s", types.TypeString(s.Binding(a.Id)))
	}
	if n := s.FreeVars(types.Array(foreign)).Len(); n != 0 {
		t.Fatalf("expected no free variables, found %d", n)
	}
}

func TestInstantiate(t *testing.T) {
	s := NewStore(8)
	A := types.NewConst("A")
	g := types.NewGeneric([]string{"A"}, types.Function([]types.Type{A, types.Array(A)}, types.Int()))

	inst, fresh := s.Instantiate(g)
	if tn := types.TypeString(inst); tn != "Function2<'_0, Array<'_0>, Int>" {
		t.Fatalf("type: %s", tn)
	}
	if len(fresh) != 1 || types.TypeString(fresh[0]) != "'_0" {
		t.Fatalf("fresh: %v", fresh)
	}
	// The generic type is not modified:
	if tn := types.GenericString(g); tn != "<A> Function2<A, Array<A>, Int>" {
		t.Fatalf("generic: %s", tn)
	}

	inst, _ = s.Instantiate(g)
	if tn := types.TypeString(inst); tn != "Function2<'_1, Array<'_1>, Int>" {
		t.Fatalf("type: %s", tn)
	}

	mono := types.Mono(types.Array(s.Fresh()))
	if inst, fresh = s.Instantiate(mono); inst != mono.Type || fresh != nil {
		t.Fatalf("expected monomorphic type as-is, found %s", types.TypeString(inst))
	}
}

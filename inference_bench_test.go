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

package hm_test

import (
	"testing"

	. "github.com/wdamron/hm"
	. "github.com/wdamron/hm/construct"

	"github.com/wdamron/hm/ast"
)

func BenchmarkMutuallyRecursiveGroup(b *testing.B) {
	env := Prelude()
	ctx := NewContext()

	n := Var("n")
	dec := Call(Var("-"), n, Int(1))
	isZero := Call(Var("=="), n, Int(0))

	expr := LetFunc("id", Func1("x", Var("x")), LetGroup(
		[]ast.LetFunc{
			Binding("isEven", Func1("n", Call(Var("if"), isZero, Func0(Call(Var("id"), Var("true"))), Func0(Call(Var("isOdd"), dec))))),
			Binding("isOdd", Func1("n", Call(Var("if"), isZero, Func0(Var("false")), Func0(Call(Var("isEven"), Call(Var("id"), dec)))))),
		},
		Block(
			LetStmt("a", Call(Var("isEven"), Int(10))),
			LetStmt("b", Call(Var("id"), String("b"))),
			Array(Var("a"), Call(Var("isOdd"), Int(3))))))

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		ty, err := ctx.Infer(expr, env)
		if err != nil || ty == nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkLetPolymorphism(b *testing.B) {
	env := Prelude()
	ctx := NewContext()

	expr := LetFunc("id", Func1("x", Var("x")),
		Seq(Call(Var("id"), Int(1)), Call(Var("id"), String("a"))))

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		ty, err := ctx.Infer(expr, env)
		if err != nil || ty == nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkAnnotate(b *testing.B) {
	env := Prelude()
	ctx := NewContext()

	expr := LetFunc("add2", Func2("x", "y", Call(Var("+"), Var("x"), Var("y"))),
		Call(Var("add2"), Int(1), Int(2)))

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		typed, err := ctx.Annotate(expr, env)
		if err != nil || typed == nil {
			b.Fatal(err)
		}
	}
}

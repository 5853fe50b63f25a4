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

package ast

import (
	"github.com/wdamron/hm/types"
)

// WalkExpr calls f for e and each of its sub-expressions, in pre-order.
func WalkExpr(e Expr, f func(Expr)) {
	switch e := e.(type) {
	case *IntLiteral, *StringLiteral, *Var:
		f(e)

	case *Func:
		f(e)
		WalkExpr(e.Body, f)

	case *Call:
		f(e)
		WalkExpr(e.Func, f)
		for _, arg := range e.Args {
			WalkExpr(arg, f)
		}

	case *Let:
		f(e)
		WalkExpr(e.Value, f)
		if e.Body != nil {
			WalkExpr(e.Body, f)
		}

	case *LetGroup:
		f(e)
		for _, fn := range e.Funcs {
			WalkExpr(fn.Value, f)
		}
		WalkExpr(e.Body, f)

	case *Array:
		f(e)
		for _, item := range e.Items {
			WalkExpr(item, f)
		}

	case *Sequence:
		f(e)
		WalkExpr(e.Effect, f)
		WalkExpr(e.Value, f)

	case *Block:
		f(e)
		for _, sub := range e.Exprs {
			WalkExpr(sub, f)
		}

	case nil:

	default:
		panic("unknown expression type: " + e.ExprName())
	}
}

// MapTypes replaces every type held by e and its sub-expressions with the result of f, in place.
// Inferred types, annotations, explicit type-arguments and the types of generic annotations are
// all replaced. Slices of types are reallocated, so e does not need to own them.
func MapTypes(e Expr, f func(types.Type) types.Type) {
	mapType := func(t types.Type) types.Type {
		if t == nil {
			return nil
		}
		return f(t)
	}
	WalkExpr(e, func(e Expr) {
		switch e := e.(type) {
		case *IntLiteral:
			e.inferred = mapType(e.inferred)

		case *StringLiteral:
			e.inferred = mapType(e.inferred)

		case *Var:
			if e.TypeArgs != nil {
				args := make([]types.Type, len(e.TypeArgs))
				for i, arg := range e.TypeArgs {
					args[i] = mapType(arg)
				}
				e.TypeArgs = args
			}
			e.inferred = mapType(e.inferred)

		case *Func:
			params := make([]Param, len(e.Params))
			for i, p := range e.Params {
				params[i] = Param{Name: p.Name, Type: mapType(p.Type)}
			}
			e.Params, e.Return, e.inferred = params, mapType(e.Return), mapType(e.inferred)

		case *Call:
			e.inferred = mapType(e.inferred)

		case *Let:
			e.Annotation, e.inferred = mapType(e.Annotation), mapType(e.inferred)

		case *LetGroup:
			funcs := make([]LetFunc, len(e.Funcs))
			for i, fn := range e.Funcs {
				funcs[i] = fn
				if fn.Generic != nil {
					funcs[i].Generic = &types.Generic{Params: fn.Generic.Params, Type: mapType(fn.Generic.Type)}
				}
			}
			e.Funcs, e.inferred = funcs, mapType(e.inferred)

		case *Array:
			e.ItemType, e.inferred = mapType(e.ItemType), mapType(e.inferred)

		case *Sequence:
			e.inferred = mapType(e.inferred)

		case *Block:
			e.inferred = mapType(e.inferred)
		}
	})
}

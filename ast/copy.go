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

// CopyExpr returns a deep copy of e. Types assigned to the expressions are shared with the copy.
func CopyExpr(e Expr) Expr {
	switch e := e.(type) {
	case *IntLiteral:
		return &IntLiteral{e.Value, e.inferred}

	case *StringLiteral:
		return &StringLiteral{e.Value, e.inferred}

	case *Var:
		return &Var{e.Name, copyTypes(e.TypeArgs), e.inferred}

	case *Func:
		return copyFunc(e)

	case *Call:
		args := make([]Expr, len(e.Args))
		for i, arg := range e.Args {
			args[i] = CopyExpr(arg)
		}
		return &Call{CopyExpr(e.Func), args, e.inferred}

	case *Let:
		var body Expr
		if e.Body != nil {
			body = CopyExpr(e.Body)
		}
		return &Let{e.Var, e.Annotation, CopyExpr(e.Value), body, e.inferred}

	case *LetGroup:
		funcs := make([]LetFunc, len(e.Funcs))
		for i, f := range e.Funcs {
			funcs[i] = LetFunc{f.Name, f.Generic, copyFunc(f.Value)}
		}
		return &LetGroup{funcs, CopyExpr(e.Body), e.inferred}

	case *Array:
		items := make([]Expr, len(e.Items))
		for i, item := range e.Items {
			items[i] = CopyExpr(item)
		}
		return &Array{e.ItemType, items, e.inferred}

	case *Sequence:
		return &Sequence{CopyExpr(e.Effect), CopyExpr(e.Value), e.inferred}

	case *Block:
		exprs := make([]Expr, len(e.Exprs))
		for i, sub := range e.Exprs {
			exprs[i] = CopyExpr(sub)
		}
		return &Block{exprs, e.inferred}

	case nil:
		return nil
	}
	panic("unknown expression type: " + e.ExprName())
}

func copyFunc(e *Func) *Func {
	if e == nil {
		return nil
	}
	params := make([]Param, len(e.Params))
	copy(params, e.Params)
	return &Func{params, e.Return, CopyExpr(e.Body), e.inferred}
}

func copyTypes(ts []types.Type) []types.Type {
	if ts == nil {
		return nil
	}
	copied := make([]types.Type, len(ts))
	copy(copied, ts)
	return copied
}

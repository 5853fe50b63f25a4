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

package construct

import (
	"github.com/wdamron/hm/ast"
	"github.com/wdamron/hm/types"
)

// Types

// Type constructor: `Int`, `Array<Int>`, etc
func TConst(name string, generics ...types.Type) *types.Const {
	return types.NewConst(name, generics...)
}

// Array type: `Array<Int>`
func TArray(item types.Type) *types.Const { return types.Array(item) }

// Function type: `Function2<Int, Int, Int>`
func TFunc(params []types.Type, ret types.Type) *types.Const { return types.Function(params, ret) }

// Function type: `Function0<Int>`
func TFunc0(ret types.Type) *types.Const { return types.Function(nil, ret) }

// Function type: `Function1<Int, Int>`
func TFunc1(param, ret types.Type) *types.Const {
	return types.Function([]types.Type{param}, ret)
}

// Function type: `Function2<Int, Int, Int>`
func TFunc2(param1, param2, ret types.Type) *types.Const {
	return types.Function([]types.Type{param1, param2}, ret)
}

// Function type: `Function3<Int, Int, Int, Int>`
func TFunc3(param1, param2, param3, ret types.Type) *types.Const {
	return types.Function([]types.Type{param1, param2, param3}, ret)
}

// Generic type: `<A> Function1<A, A>`
func TGeneric(params []string, t types.Type) *types.Generic { return types.NewGeneric(params, t) }

// Expressions:

// Integer literal
func Int(value int64) *ast.IntLiteral { return &ast.IntLiteral{Value: value} }

// String literal
func String(value string) *ast.StringLiteral { return &ast.StringLiteral{Value: value} }

// Variable
func Var(name string) *ast.Var { return &ast.Var{Name: name} }

// Variable with explicit type-arguments: `id<Int>`
func VarOf(name string, typeArgs ...types.Type) *ast.Var {
	if typeArgs == nil {
		typeArgs = []types.Type{}
	}
	return &ast.Var{Name: name, TypeArgs: typeArgs}
}

// Application: `f(x)`
func Call(f ast.Expr, args ...ast.Expr) *ast.Call {
	return &ast.Call{Func: f, Args: args}
}

// Unannotated parameter
func Param(name string) ast.Param { return ast.Param{Name: name} }

// Annotated parameter: `x: Int`
func ParamOf(name string, t types.Type) ast.Param { return ast.Param{Name: name, Type: t} }

// Abstraction with unannotated parameters: `(x, y) -> x`
func Func(params []string, body ast.Expr) *ast.Func {
	ps := make([]ast.Param, len(params))
	for i, name := range params {
		ps[i] = ast.Param{Name: name}
	}
	return &ast.Func{Params: ps, Body: body}
}

// Abstraction with optional annotations: `(x: Int): Int -> x`
func FuncOf(params []ast.Param, ret types.Type, body ast.Expr) *ast.Func {
	return &ast.Func{Params: params, Return: ret, Body: body}
}

// Abstraction: `() -> x`
func Func0(body ast.Expr) *ast.Func { return &ast.Func{Body: body} }

// Abstraction: `(x) -> x`
func Func1(param string, body ast.Expr) *ast.Func { return Func([]string{param}, body) }

// Abstraction: `(x, y) -> x`
func Func2(param1, param2 string, body ast.Expr) *ast.Func {
	return Func([]string{param1, param2}, body)
}

// Abstraction: `(x, y, z) -> x`
func Func3(param1, param2, param3 string, body ast.Expr) *ast.Func {
	return Func([]string{param1, param2, param3}, body)
}

// Let-binding: `let a = 1 in e`
func Let(varName string, value ast.Expr, body ast.Expr) *ast.Let {
	return &ast.Let{Var: varName, Value: value, Body: body}
}

// Annotated let-binding: `let a: Int = 1 in e`
func LetOf(varName string, annotation types.Type, value ast.Expr, body ast.Expr) *ast.Let {
	return &ast.Let{Var: varName, Annotation: annotation, Value: value, Body: body}
}

// Let-binding without a body, for use within a Block: `let a = 1`
func LetStmt(varName string, value ast.Expr) *ast.Let {
	return &ast.Let{Var: varName, Value: value}
}

// Grouped, mutually-recursive function bindings: `let rec f = ... and g = ... in e`
func LetGroup(funcs []ast.LetFunc, body ast.Expr) *ast.LetGroup {
	return &ast.LetGroup{Funcs: funcs, Body: body}
}

// Generalized function binding: `let rec f = ... in e`
func LetFunc(name string, value *ast.Func, body ast.Expr) *ast.LetGroup {
	return &ast.LetGroup{Funcs: []ast.LetFunc{{Name: name, Value: value}}, Body: body}
}

// Unannotated function within a LetGroup
func Binding(name string, value *ast.Func) ast.LetFunc {
	return ast.LetFunc{Name: name, Value: value}
}

// Annotated function within a LetGroup: `f: <A> Function1<A, A> = ...`
func BindingOf(name string, generic *types.Generic, value *ast.Func) ast.LetFunc {
	return ast.LetFunc{Name: name, Generic: generic, Value: value}
}

// Array literal: `[1, 2]`
func Array(items ...ast.Expr) *ast.Array { return &ast.Array{Items: items} }

// Annotated array literal: `<Int>[1, 2]`
func ArrayOf(itemType types.Type, items ...ast.Expr) *ast.Array {
	return &ast.Array{ItemType: itemType, Items: items}
}

// Sequencing: `(effect; value)`
func Seq(effect, value ast.Expr) *ast.Sequence {
	return &ast.Sequence{Effect: effect, Value: value}
}

// Block: `{ let a = 1; f(a); a }`
func Block(exprs ...ast.Expr) *ast.Block { return &ast.Block{Exprs: exprs} }

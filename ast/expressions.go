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

// Expr is the base for all expressions.
type Expr interface {
	// Name of the syntax-type of the expression.
	ExprName() string
	// Type returns an inferred type of an expression. Expression types are only available after type-inference.
	Type() types.Type
}

var (
	_ Expr = (*IntLiteral)(nil)
	_ Expr = (*StringLiteral)(nil)
	_ Expr = (*Var)(nil)
	_ Expr = (*Func)(nil)
	_ Expr = (*Call)(nil)
	_ Expr = (*Let)(nil)
	_ Expr = (*LetGroup)(nil)
	_ Expr = (*Array)(nil)
	_ Expr = (*Sequence)(nil)
	_ Expr = (*Block)(nil)
)

// Integer literal: `1`
type IntLiteral struct {
	Value    int64
	inferred types.Type
}

// "IntLiteral"
func (e *IntLiteral) ExprName() string { return "IntLiteral" }

// Type of e after inference, or nil.
func (e *IntLiteral) Type() types.Type { return e.inferred }

// SetType is called during inference; callers should not assign types directly.
func (e *IntLiteral) SetType(t types.Type) { e.inferred = t }

// String literal: `"a"`
type StringLiteral struct {
	Value    string
	inferred types.Type
}

// "StringLiteral"
func (e *StringLiteral) ExprName() string { return "StringLiteral" }

func (e *StringLiteral) Type() types.Type { return e.inferred }

func (e *StringLiteral) SetType(t types.Type) { e.inferred = t }

// Variable, with optional explicit type-arguments: `id<Int>`
type Var struct {
	Name string
	// TypeArgs instantiate the generic parameters of the variable's type, in order.
	TypeArgs []types.Type
	inferred types.Type
}

// "Var"
func (e *Var) ExprName() string { return "Var" }

func (e *Var) Type() types.Type { return e.inferred }

func (e *Var) SetType(t types.Type) { e.inferred = t }

// Function parameter, with an optional type annotation
type Param struct {
	Name string
	// Type is nil when the parameter is unannotated. After inference, Type holds the inferred type.
	Type types.Type
}

// Abstraction: `(x, y: Int) -> x`
type Func struct {
	Params []Param
	// Return is nil when the return type is unannotated. After inference, Return holds the inferred type.
	Return   types.Type
	Body     Expr
	inferred types.Type
}

// "Func"
func (e *Func) ExprName() string { return "Func" }

func (e *Func) Type() types.Type { return e.inferred }

func (e *Func) SetType(t types.Type) { e.inferred = t }

// Application: `f(x)`
type Call struct {
	Func     Expr
	Args     []Expr
	inferred types.Type
}

// "Call"
func (e *Call) ExprName() string { return "Call" }

func (e *Call) Type() types.Type { return e.inferred }

func (e *Call) SetType(t types.Type) { e.inferred = t }

// Let-binding: `let a = 1 in e`
//
// Without a body, the binding extends the enclosing Block for the remaining expressions of the block,
// and the type of the let-binding is the type of its value.
//
// Let-bindings are monomorphic; use a LetGroup to bind a generalized function.
// `let id = (x) -> x in (id(1); id("a"))` fails as a Let and type-checks as a single-function
// group, built with construct.LetFunc.
type Let struct {
	Var string
	// Annotation is nil when the binding is unannotated. After inference, Annotation holds the inferred type.
	Annotation types.Type
	Value      Expr
	Body       Expr
	inferred   types.Type
}

// "Let"
func (e *Let) ExprName() string { return "Let" }

func (e *Let) Type() types.Type { return e.inferred }

func (e *Let) SetType(t types.Type) { e.inferred = t }

// Grouped, mutually-recursive function bindings: `let f(x) = g(x) and g(x) = f(x) in e`
type LetGroup struct {
	Funcs    []LetFunc
	Body     Expr
	inferred types.Type
}

// "LetGroup"
func (e *LetGroup) ExprName() string { return "LetGroup" }

func (e *LetGroup) Type() types.Type { return e.inferred }

func (e *LetGroup) SetType(t types.Type) { e.inferred = t }

// Named function within a LetGroup
type LetFunc struct {
	Name string
	// Generic is nil when the function is unannotated. After inference, Generic holds the generalized type.
	Generic *types.Generic
	Value   *Func
}

func (e *LetFunc) Type() types.Type { return e.Value.Type() }

// Array literal: `[1, 2, 3]`
type Array struct {
	// ItemType is nil when the item type is unannotated. After inference, ItemType holds the inferred type.
	ItemType types.Type
	Items    []Expr
	inferred types.Type
}

// "Array"
func (e *Array) ExprName() string { return "Array" }

func (e *Array) Type() types.Type { return e.inferred }

func (e *Array) SetType(t types.Type) { e.inferred = t }

// Sequencing: `effect; value`
//
// The value of Effect is discarded.
type Sequence struct {
	Effect   Expr
	Value    Expr
	inferred types.Type
}

// "Sequence"
func (e *Sequence) ExprName() string { return "Sequence" }

func (e *Sequence) Type() types.Type { return e.inferred }

func (e *Sequence) SetType(t types.Type) { e.inferred = t }

// Block of expressions: `{ let a = 1; f(a); a }`
//
// Let-bindings without a body are visible to all following expressions in the block.
// The value of a block is the value of its last expression.
type Block struct {
	Exprs    []Expr
	inferred types.Type
}

// "Block"
func (e *Block) ExprName() string { return "Block" }

func (e *Block) Type() types.Type { return e.inferred }

func (e *Block) SetType(t types.Type) { e.inferred = t }

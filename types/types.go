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

package types

import "strconv"

// Names of the built-in type constructors.
const (
	IntName    = "Int"
	StringName = "String"
	BoolName   = "Bool"
	ArrayName  = "Array"

	// Function types are named by arity: Function0, Function1, ...
	FunctionPrefix = "Function"
)

// Type is the base interface for all type terms.
type Type interface {
	TypeName() string
}

func (t *Var) TypeName() string   { return "Var" }
func (t *Const) TypeName() string { return "Const" }

var (
	_ Type = (*Var)(nil)
	_ Type = (*Const)(nil)
)

// Type-variable. The id is an index into the substitution store which created the variable;
// a type-variable carries no meaning outside of that store.
type Var struct {
	Id int
}

// Create a type-variable with the given id.
func NewVar(id int) *Var { return &Var{Id: id} }

// Type constructor applied to zero or more generic arguments: `Int`, `Array<Int>`, `Function1<Int, Bool>`
//
// A constructor is identified by its name and the number of its generics.
type Const struct {
	Name     string
	Generics []Type
}

// Create a type constructor.
func NewConst(name string, generics ...Type) *Const {
	return &Const{Name: name, Generics: generics}
}

// Arity returns the number of generic arguments applied to the constructor.
func (t *Const) Arity() int { return len(t.Generics) }

// SameShape returns true if a and b have the same name and arity.
func (t *Const) SameShape(other *Const) bool {
	return t.Name == other.Name && len(t.Generics) == len(other.Generics)
}

var (
	intType    = &Const{Name: IntName}
	stringType = &Const{Name: StringName}
	boolType   = &Const{Name: BoolName}
)

// Int returns the nullary `Int` constructor. The built-in nullary constructors are shared and must not be modified.
func Int() *Const { return intType }

// String returns the nullary `String` constructor.
func String() *Const { return stringType }

// Bool returns the nullary `Bool` constructor.
func Bool() *Const { return boolType }

// Array returns `Array<item>`.
func Array(item Type) *Const { return &Const{Name: ArrayName, Generics: []Type{item}} }

// FunctionName returns the constructor name for a function taking argc parameters.
func FunctionName(argc int) string { return FunctionPrefix + strconv.Itoa(argc) }

// Function returns `FunctionN<params..., ret>` where N is the number of params.
func Function(params []Type, ret Type) *Const {
	generics := make([]Type, len(params)+1)
	copy(generics, params)
	generics[len(params)] = ret
	return &Const{Name: FunctionName(len(params)), Generics: generics}
}

// FunctionParts splits a function type into its parameters and return type. The ok result is false
// if t is not a FunctionN constructor with N+1 generics.
func FunctionParts(t Type) (params []Type, ret Type, ok bool) {
	c, isConst := t.(*Const)
	if !isConst || !IsFunctionName(c.Name) || len(c.Generics) == 0 {
		return nil, nil, false
	}
	if FunctionName(len(c.Generics)-1) != c.Name {
		return nil, nil, false
	}
	return c.Generics[:len(c.Generics)-1], c.Generics[len(c.Generics)-1], true
}

// IsFunctionName returns true if name has the form FunctionN.
func IsFunctionName(name string) bool {
	if len(name) <= len(FunctionPrefix) || name[:len(FunctionPrefix)] != FunctionPrefix {
		return false
	}
	_, err := strconv.Atoi(name[len(FunctionPrefix):])
	return err == nil
}

// Equal returns true if a and b are structurally identical. Type-variables are compared by id,
// without consulting any substitution store.
func Equal(a, b Type) bool {
	switch a := a.(type) {
	case *Var:
		b, ok := b.(*Var)
		return ok && a.Id == b.Id
	case *Const:
		b, ok := b.(*Const)
		if !ok || !a.SameShape(b) {
			return false
		}
		for i := range a.Generics {
			if !Equal(a.Generics[i], b.Generics[i]) {
				return false
			}
		}
		return true
	case nil:
		return b == nil
	}
	return false
}

// Generic type: a type with named generic parameters, `<A> Function1<A, A>`
//
// Within Type, each parameter is referenced as a nullary constructor named after the parameter.
// A generic type with no parameters is monomorphic; its type may still contain type-variables
// which are constrained by an enclosing scope.
type Generic struct {
	Params []string
	Type   Type
}

// Create a generic type.
func NewGeneric(params []string, t Type) *Generic {
	return &Generic{Params: params, Type: t}
}

// Create a generic type without parameters.
func Mono(t Type) *Generic { return &Generic{Type: t} }

// IsMono returns true if g has no generic parameters.
func (g *Generic) IsMono() bool { return len(g.Params) == 0 }

// HasParam returns true if name is one of the generic parameters of g.
func (g *Generic) HasParam(name string) bool {
	for _, p := range g.Params {
		if p == name {
			return true
		}
	}
	return false
}

// ContainsConst returns true if a constructor with the given name appears anywhere within t.
func ContainsConst(t Type, name string) bool {
	c, ok := t.(*Const)
	if !ok {
		return false
	}
	if c.Name == name {
		return true
	}
	for _, g := range c.Generics {
		if ContainsConst(g, name) {
			return true
		}
	}
	return false
}

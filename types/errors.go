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

import (
	"errors"
	"strconv"
)

// Sentinel errors for each kind of inference failure. Use errors.Is to test the kind of an error
// returned from inference.
var (
	ErrMismatch        = errors.New("type mismatch")
	ErrInfiniteType    = errors.New("infinite type")
	ErrUnboundVariable = errors.New("unbound variable")
	ErrArityMismatch   = errors.New("generic arity mismatch")
	ErrForeignVariable = errors.New("foreign type-variable")
)

// MismatchError is returned when two constructors differ in name or arity.
type MismatchError struct {
	Expected Type
	Actual   Type
}

func (e *MismatchError) Error() string {
	return "Type mismatch: expected " + TypeString(e.Expected) + ", found " + TypeString(e.Actual)
}

func (e *MismatchError) Is(target error) bool { return target == ErrMismatch }

// InfiniteTypeError is returned when the occurs check rejects binding a type-variable to a type
// which contains the variable.
type InfiniteTypeError struct {
	Var  int
	Type Type
}

func (e *InfiniteTypeError) Error() string {
	return "Infinite type: " + TypeString(&Var{Id: e.Var}) + " occurs in " + TypeString(e.Type)
}

func (e *InfiniteTypeError) Is(target error) bool { return target == ErrInfiniteType }

// UnboundVariableError is returned when a referenced variable is not found in the type-environment.
type UnboundVariableError struct {
	Name string
}

func (e *UnboundVariableError) Error() string { return "Variable " + e.Name + " not found" }

func (e *UnboundVariableError) Is(target error) bool { return target == ErrUnboundVariable }

// ArityMismatchError is returned when the explicit type-arguments of a variable reference do not
// match the number of generic parameters of the variable's type.
type ArityMismatchError struct {
	Name     string
	Expected int
	Actual   int
}

func (e *ArityMismatchError) Error() string {
	return "Variable " + e.Name + " expects " + strconv.Itoa(e.Expected) +
		" type arguments, found " + strconv.Itoa(e.Actual)
}

func (e *ArityMismatchError) Is(target error) bool { return target == ErrArityMismatch }

// ForeignVarError is returned when unification reaches a type-variable which was not allocated by
// the substitution store of the inference run, such as a type-variable held by a type-environment
// built for another run.
type ForeignVarError struct {
	Var int
}

func (e *ForeignVarError) Error() string {
	return "Type-variable " + TypeString(&Var{Id: e.Var}) + " is not known to this inference context"
}

func (e *ForeignVarError) Is(target error) bool { return target == ErrForeignVariable }

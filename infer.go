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

package hm

import (
	"errors"
	"log/slog"

	"github.com/wdamron/hm/ast"
	"github.com/wdamron/hm/types"
)

// ErrEmptyBlock is returned when a block contains no expressions.
var ErrEmptyBlock = errors.New("Empty block")

// Infer the type of e against the expected type, returning a typed copy of e. The returned
// type-environment includes bindings which remain in scope after e (from let-bindings without a body).
func (ti *InferenceContext) infer(env *TypeEnv, expected types.Type, e ast.Expr) (ast.Expr, *TypeEnv, error) {
	switch e := e.(type) {
	case *ast.IntLiteral:
		typed := &ast.IntLiteral{Value: e.Value}
		typed.SetType(expected)
		ti.constraints.Emit(expected, types.Int(), typed)
		return typed, env, nil

	case *ast.StringLiteral:
		typed := &ast.StringLiteral{Value: e.Value}
		typed.SetType(expected)
		ti.constraints.Emit(expected, types.String(), typed)
		return typed, env, nil

	case *ast.Array:
		itemType := e.ItemType
		if itemType == nil {
			itemType = ti.store.Fresh()
		}
		items := make([]ast.Expr, len(e.Items))
		for i, item := range e.Items {
			typedItem, _, err := ti.infer(env, itemType, item)
			if err != nil {
				return nil, env, err
			}
			items[i] = typedItem
		}
		typed := &ast.Array{ItemType: itemType, Items: items}
		typed.SetType(expected)
		ti.constraints.Emit(expected, types.Array(itemType), typed)
		return typed, env, nil

	case *ast.Var:
		g, ok := env.Lookup(e.Name)
		if !ok {
			return nil, env, ti.fail(e, &types.UnboundVariableError{Name: e.Name})
		}
		t, fresh := ti.store.Instantiate(g)
		typed := &ast.Var{Name: e.Name}
		if e.TypeArgs != nil {
			if len(e.TypeArgs) != len(g.Params) {
				return nil, env, ti.fail(e, &types.ArityMismatchError{Name: e.Name, Expected: len(g.Params), Actual: len(e.TypeArgs)})
			}
			typed.TypeArgs = make([]types.Type, len(e.TypeArgs))
			for i, arg := range e.TypeArgs {
				if err := ti.store.Unify(arg, fresh[i]); err != nil {
					return nil, env, ti.fail(e, err)
				}
				typed.TypeArgs[i] = arg
			}
		}
		typed.SetType(expected)
		ti.constraints.Emit(expected, t, typed)
		return typed, env, nil

	case *ast.Func:
		typed, err := ti.inferFunc(env, expected, e)
		return typed, env, err

	case *ast.Call:
		argTypes := ti.store.FreshList(len(e.Args))
		fnType := types.Function(argTypes, expected)
		fn, _, err := ti.infer(env, fnType, e.Func)
		if err != nil {
			return nil, env, err
		}
		args := make([]ast.Expr, len(e.Args))
		for i, arg := range e.Args {
			typedArg, _, err := ti.infer(env, argTypes[i], arg)
			if err != nil {
				return nil, env, err
			}
			args[i] = typedArg
		}
		typed := &ast.Call{Func: fn, Args: args}
		typed.SetType(expected)
		return typed, env, nil

	case *ast.Let:
		valueType := e.Annotation
		if valueType == nil {
			valueType = ti.store.Fresh()
		}
		value, _, err := ti.infer(env, valueType, e.Value)
		if err != nil {
			return nil, env, err
		}
		inner := env.Declare(e.Var, valueType)
		typed := &ast.Let{Var: e.Var, Annotation: valueType, Value: value}
		typed.SetType(expected)
		if e.Body == nil {
			ti.constraints.Emit(expected, valueType, typed)
			return typed, inner, nil
		}
		body, _, err := ti.infer(inner, expected, e.Body)
		if err != nil {
			return nil, env, err
		}
		typed.Body = body
		return typed, env, nil

	case *ast.LetGroup:
		typed, err := ti.inferGroup(env, expected, e)
		return typed, env, err

	case *ast.Sequence:
		effect, _, err := ti.infer(env, ti.store.Fresh(), e.Effect)
		if err != nil {
			return nil, env, err
		}
		value, _, err := ti.infer(env, expected, e.Value)
		if err != nil {
			return nil, env, err
		}
		typed := &ast.Sequence{Effect: effect, Value: value}
		typed.SetType(expected)
		return typed, env, nil

	case *ast.Block:
		if len(e.Exprs) == 0 {
			return nil, env, ti.fail(e, ErrEmptyBlock)
		}
		exprs := make([]ast.Expr, len(e.Exprs))
		scope := env
		for i, sub := range e.Exprs {
			var t types.Type = expected
			if i < len(e.Exprs)-1 {
				t = ti.store.Fresh()
			}
			typedSub, next, err := ti.infer(scope, t, sub)
			if err != nil {
				return nil, env, err
			}
			exprs[i], scope = typedSub, next
		}
		typed := &ast.Block{Exprs: exprs}
		typed.SetType(expected)
		return typed, env, nil
	}

	var exprName string
	if e != nil {
		exprName = "(" + e.ExprName() + ")"
	} else {
		exprName = "(nil)"
	}
	return nil, env, ti.fail(e, errors.New("Unhandled expression "+exprName))
}

func (ti *InferenceContext) inferFunc(env *TypeEnv, expected types.Type, e *ast.Func) (*ast.Func, error) {
	if e == nil {
		return nil, ti.fail(nil, errors.New("Unhandled expression (nil)"))
	}
	params := make([]ast.Param, len(e.Params))
	paramTypes := make([]types.Type, len(e.Params))
	inner := env
	for i, p := range e.Params {
		t := p.Type
		if t == nil {
			t = ti.store.Fresh()
		}
		params[i], paramTypes[i] = ast.Param{Name: p.Name, Type: t}, t
		inner = inner.Declare(p.Name, t)
	}
	ret := e.Return
	if ret == nil {
		ret = ti.store.Fresh()
	}
	body, _, err := ti.infer(inner, ret, e.Body)
	if err != nil {
		return nil, err
	}
	typed := &ast.Func{Params: params, Return: ret, Body: body}
	typed.SetType(expected)
	ti.constraints.Emit(expected, types.Function(paramTypes, ret), typed)
	return typed, nil
}

// Functions within a group are inferred against placeholder types, then solved and generalized together.
func (ti *InferenceContext) inferGroup(env *TypeEnv, expected types.Type, e *ast.LetGroup) (*ast.LetGroup, error) {
	ti.groupCount++
	group := ti.groupCount
	placeholders := make([]*types.Generic, len(e.Funcs))
	groupEnv := env
	for i, f := range e.Funcs {
		g := f.Generic
		if g == nil {
			g = types.Mono(ti.store.Fresh())
		}
		placeholders[i] = g
		groupEnv = groupEnv.Extend(f.Name, g)
	}

	funcs := make([]ast.LetFunc, len(e.Funcs))
	for i, f := range e.Funcs {
		fn, err := ti.inferFunc(groupEnv, placeholders[i].Type, f.Value)
		if err != nil {
			return nil, err
		}
		funcs[i] = ast.LetFunc{Name: f.Name, Value: fn}
	}

	if ti.logger != nil {
		ti.logger.Debug("solving function group",
			slog.Int("group", group),
			slog.Int("functions", len(e.Funcs)),
			slog.Int("constraints", ti.constraints.Len()))
	}
	if invalid, err := ti.constraints.Solve(ti.store); err != nil {
		if invalid == nil {
			invalid = e
		}
		return nil, ti.fail(invalid, err)
	}

	outer := env
	for i, f := range e.Funcs {
		if f.Generic != nil {
			funcs[i].Generic = &types.Generic{Params: f.Generic.Params, Type: f.Generic.Type}
		} else {
			g, fn := ti.generalize(env, placeholders[i].Type, funcs[i].Value)
			funcs[i].Generic, funcs[i].Value = g, fn.(*ast.Func)
		}
		outer = outer.Extend(f.Name, funcs[i].Generic)
		if ti.logger != nil {
			ti.logger.Debug("generalized function",
				slog.Int("group", group),
				slog.String("name", f.Name),
				slog.String("type", types.GenericString(funcs[i].Generic)))
		}
	}

	body, _, err := ti.infer(outer, expected, e.Body)
	if err != nil {
		return nil, err
	}
	typed := &ast.LetGroup{Funcs: funcs, Body: body}
	typed.SetType(expected)
	return typed, nil
}

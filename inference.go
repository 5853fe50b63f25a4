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
	"github.com/wdamron/hm/internal/typeutil"
	"github.com/wdamron/hm/types"
)

// ErrEmptyExpression is returned when inference is requested for a nil expression.
var ErrEmptyExpression = errors.New("Empty expression")

// InferenceContext is a reusable context for type inference. The context owns the substitution store,
// the pending constraints, and the generator for generic parameter names of a single inference run.
//
// An inference context cannot be used concurrently.
type InferenceContext struct {
	store       *typeutil.Store
	constraints typeutil.Constraints
	names       typeutil.NameGen
	logger      *slog.Logger
	groupCount  int
	needsReset  bool

	err     error
	invalid ast.Expr
}

// Create a new type-inference context. A context may be reused for inference.
func NewContext() *InferenceContext {
	return &InferenceContext{store: typeutil.NewStore(64)}
}

// SetLogger enables debug logging of group solving and generalization. A nil logger disables logging.
func (ti *InferenceContext) SetLogger(logger *slog.Logger) { ti.logger = logger }

func (ti *InferenceContext) reset() {
	ti.store.Reset()
	ti.constraints.Reset()
	ti.names.Reset()
	ti.err, ti.invalid, ti.groupCount, ti.needsReset = nil, nil, 0, false
}

// Reset the state of the context. The context will be reset automatically before inference.
func (ti *InferenceContext) Reset() {
	if !ti.needsReset {
		return
	}
	ti.reset()
}

// Get the error which caused inference to fail.
func (ti *InferenceContext) Error() error { return ti.err }

// Get the expression which caused inference to fail. For failures while solving constraints, the
// expression which produced the failed constraint is returned.
func (ti *InferenceContext) InvalidExpr() ast.Expr { return ti.invalid }

// Infer the type of expr within env. Type-variables which remain unbound after inference are
// returned as-is.
//
// The type-environment is not modified.
func (ti *InferenceContext) Infer(expr ast.Expr, env *TypeEnv) (types.Type, error) {
	_, t, err := ti.inferRoot(expr, env)
	return t, err
}

// Infer the type of expr within env, generalizing type-variables which remain unbound after inference.
func (ti *InferenceContext) InferGeneric(expr ast.Expr, env *TypeEnv) (*types.Generic, error) {
	if env == nil {
		env = NewTypeEnv()
	}
	_, t, err := ti.inferRoot(expr, env)
	if err != nil {
		return nil, err
	}
	g, _ := ti.generalize(env, t, nil)
	return g, nil
}

// Infer the type of expr within env. The type-annotated copy of expr will be returned; expr is not
// modified. Every parameter, return type, let-binding, array and grouped function of the copy is
// annotated with its inferred type.
func (ti *InferenceContext) Annotate(expr ast.Expr, env *TypeEnv) (ast.Expr, error) {
	root, _, err := ti.inferRoot(expr, env)
	if err != nil {
		return nil, err
	}
	return root, nil
}

// AnnotateGeneric is like Annotate, and also returns the generalized type of expr as InferGeneric would.
// The annotated copy keeps the type-variables of the root unnamed.
func (ti *InferenceContext) AnnotateGeneric(expr ast.Expr, env *TypeEnv) (ast.Expr, *types.Generic, error) {
	if env == nil {
		env = NewTypeEnv()
	}
	root, t, err := ti.inferRoot(expr, env)
	if err != nil {
		return nil, nil, err
	}
	g, _ := ti.generalize(env, t, nil)
	return root, g, nil
}

func (ti *InferenceContext) inferRoot(root ast.Expr, env *TypeEnv) (ast.Expr, types.Type, error) {
	if root == nil {
		return nil, nil, ErrEmptyExpression
	}
	if env == nil {
		env = NewTypeEnv()
	}
	if ti.needsReset {
		ti.reset()
	}
	ti.needsReset = true
	expected := ti.store.Fresh()
	typed, _, err := ti.infer(env, expected, root)
	if err != nil {
		return nil, nil, err
	}
	if invalid, err := ti.constraints.Solve(ti.store); err != nil {
		ti.invalid, ti.err = invalid, err
		return nil, nil, err
	}
	ast.MapTypes(typed, ti.store.Resolve)
	return typed, ti.store.Resolve(expected), nil
}

func (ti *InferenceContext) fail(e ast.Expr, err error) error {
	ti.invalid, ti.err = e, err
	return err
}

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
	"github.com/wdamron/hm/ast"
	"github.com/wdamron/hm/internal/typeutil"
	"github.com/wdamron/hm/types"
)

// Generalize the type-variables of t which are unbound and not reachable from env. Each generalized
// type-variable is named by the context's name generator, restarted at A for each generalization, and pinned to a nullary constructor of that
// name within a snapshot of the substitution store. The closed type and the types held by expr are
// resolved through the snapshot; the live store is not modified.
//
// Names already bound by function groups nested within expr are skipped, so inner generic types keep
// their meaning once the outer type-variables are named.
//
// Types held by expr are left unchanged when no type-variables are generalized. expr is rewritten
// in place and may be nil.
func (ti *InferenceContext) generalize(env *TypeEnv, t types.Type, expr ast.Expr) (*types.Generic, ast.Expr) {
	g, local := ti.closeOver(env, t, expr)
	if local != nil && expr != nil {
		ast.MapTypes(expr, local.Resolve)
	}
	return g, expr
}

// closeOver returns the generalized type of t and the snapshot which pins its parameters. The snapshot
// is nil when nothing was generalized. scope is only read.
func (ti *InferenceContext) closeOver(env *TypeEnv, t types.Type, scope ast.Expr) (*types.Generic, *typeutil.Store) {
	resolved := ti.store.Resolve(t)
	free := ti.store.FreeVars(resolved)
	if free.Len() == 0 {
		return types.Mono(resolved), nil
	}
	bound := ti.freeInEnv(env)
	ids := free.Without(bound)
	if len(ids) == 0 {
		return types.Mono(resolved), nil
	}

	ti.names.Reset()
	ast.WalkExpr(scope, func(e ast.Expr) {
		group, ok := e.(*ast.LetGroup)
		if !ok {
			return
		}
		for _, fn := range group.Funcs {
			if fn.Generic == nil {
				continue
			}
			for _, param := range fn.Generic.Params {
				ti.names.Avoid(param)
			}
		}
	})
	local := ti.store.Snapshot()
	params := make([]string, len(ids))
	for i, id := range ids {
		name := ti.names.NextAvoiding(resolved)
		params[i] = name
		local.Bind(id, types.NewConst(name))
	}
	return types.NewGeneric(params, local.Resolve(resolved)), local
}

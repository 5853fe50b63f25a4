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

package typeutil

import (
	"github.com/wdamron/hm/ast"
	"github.com/wdamron/hm/types"
)

// Constraint is an equality obligation between two types, recorded during inference.
type Constraint struct {
	Expected types.Type
	Actual   types.Type
	// Expression which produced the constraint
	Expr ast.Expr
}

// Constraints collects equality obligations until they are solved as a batch.
//
// Deferring unification lets sibling expressions be inferred against placeholder types whose shape is
// not yet known, e.g. functions of a group which reference each other.
type Constraints struct {
	pending []Constraint
}

// Len returns the number of unsolved constraints.
func (cs *Constraints) Len() int { return len(cs.pending) }

// Emit records that expected and actual must unify.
func (cs *Constraints) Emit(expected, actual types.Type, expr ast.Expr) {
	cs.pending = append(cs.pending, Constraint{Expected: expected, Actual: actual, Expr: expr})
}

// Solve unifies all pending constraints in the order they were emitted. Solving stops at the first
// failure, returning the expression which produced the failed constraint. After a successful pass
// the pending constraints are cleared.
func (cs *Constraints) Solve(s *Store) (ast.Expr, error) {
	for _, c := range cs.pending {
		if err := s.Unify(c.Expected, c.Actual); err != nil {
			return c.Expr, err
		}
	}
	cs.Reset()
	return nil, nil
}

// Reset discards all pending constraints.
func (cs *Constraints) Reset() {
	for i := range cs.pending {
		cs.pending[i] = Constraint{}
	}
	cs.pending = cs.pending[:0]
}

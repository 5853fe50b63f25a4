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

// hm provides constraint-based Hindley-Milner type inference for a small expression language.
//
// Types are constructors with generic arguments (`Int`, `Array<T>`, `Function2<A, B, R>`) and
// type-variables, which are indices into a substitution store owned by an InferenceContext.
// Inference walks an expression top-down, pushing an expected type into each sub-expression and
// emitting equality constraints. Constraints are solved in batches: once for each group of
// mutually-recursive functions, then once for the whole expression.
//
//
// Supported Features:
//
//   * Let-polymorphism through grouped (mutually-recursive) function bindings
//   * Explicit generic annotations and explicit type-arguments at use sites
//   * Monomorphic let-bindings, sequencing, blocks and array literals
//   * Occurs check (infinite types are rejected)
//
//
// Links:
//
// Hindley-Milner type system: https://en.wikipedia.org/wiki/Hindley–Milner_type_system
//
// Unification: https://en.wikipedia.org/wiki/Unification_(computer_science)
package hm

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
	"github.com/wdamron/hm/types"
)

// Prelude returns a type-environment containing the built-in operators and constants:
//
//   + - * / %           Function2<Int, Int, Int>
//   == != < <= > >=     Function2<Int, Int, Bool>
//   not                 Function1<Bool, Bool>
//   concat              Function2<String, String, String>
//   true false          Bool
//   if                  <T> Function3<Bool, Function0<T>, Function0<T>, T>
func Prelude() *TypeEnv { return prelude }

var prelude = newPrelude()

func newPrelude() *TypeEnv {
	Int, Bool, String := types.Int(), types.Bool(), types.String()
	env := NewTypeEnv()
	for _, op := range []string{"+", "-", "*", "/", "%"} {
		env = env.Declare(op, types.Function([]types.Type{Int, Int}, Int))
	}
	for _, op := range []string{"==", "!=", "<", "<=", ">", ">="} {
		env = env.Declare(op, types.Function([]types.Type{Int, Int}, Bool))
	}
	env = env.Declare("not", types.Function([]types.Type{Bool}, Bool))
	env = env.Declare("concat", types.Function([]types.Type{String, String}, String))
	env = env.Declare("true", Bool)
	env = env.Declare("false", Bool)

	T := types.NewConst("T")
	thunk := types.Function(nil, T)
	env = env.DeclareGeneric("if", []string{"T"}, types.Function([]types.Type{Bool, thunk, thunk}, T))
	return env
}

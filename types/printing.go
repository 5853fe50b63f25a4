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
	"strconv"
	"strings"
)

var _varNames [128]string

func init() {
	for i := range _varNames {
		_varNames[i] = "'_" + strconv.Itoa(i)
	}
}

func getVarName(id int) string {
	if id >= 0 && id < len(_varNames) {
		return _varNames[id]
	}
	return "'_" + strconv.Itoa(id)
}

// TypeString returns a string representation of a Type: `Function2<Int, Array<'_3>, Bool>`
//
// Type-variables are printed by id; resolve a type through its substitution store before printing
// it to see the current bindings.
func TypeString(t Type) string {
	var sb strings.Builder
	typeString(&sb, t)
	return sb.String()
}

// GenericString returns a string representation of a generic type: `<A> Function1<A, A>`
//
// Monomorphic generic types are printed without a parameter list.
func GenericString(g *Generic) string {
	if g == nil {
		return "<nil>"
	}
	var sb strings.Builder
	if len(g.Params) > 0 {
		sb.WriteByte('<')
		for i, p := range g.Params {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(p)
		}
		sb.WriteString("> ")
	}
	typeString(&sb, g.Type)
	return sb.String()
}

func typeString(sb *strings.Builder, t Type) {
	switch t := t.(type) {
	case *Var:
		sb.WriteString(getVarName(t.Id))

	case *Const:
		sb.WriteString(t.Name)
		if len(t.Generics) == 0 {
			return
		}
		sb.WriteByte('<')
		for i, g := range t.Generics {
			if i > 0 {
				sb.WriteString(", ")
			}
			typeString(sb, g)
		}
		sb.WriteByte('>')

	case nil:
		sb.WriteString("<nil>")
	}
}

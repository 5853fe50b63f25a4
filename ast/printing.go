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
	"strconv"
	"strings"

	"github.com/wdamron/hm/types"
)

// ExprString returns a string representation of an expression. Annotations are printed where present;
// after inference, the annotated copy of an expression holds an annotation for every parameter, return
// type, let-binding, array and grouped function.
func ExprString(e Expr) string {
	var sb strings.Builder
	p := exprPrinter{sb: &sb}
	p.expr(false, e)
	return sb.String()
}

type exprPrinter struct {
	sb *strings.Builder
}

func (p exprPrinter) typeAnnotation(t types.Type) {
	if t == nil {
		return
	}
	p.sb.WriteString(": ")
	p.sb.WriteString(types.TypeString(t))
}

func (p exprPrinter) expr(simple bool, e Expr) {
	sb := p.sb
	switch et := e.(type) {
	case *IntLiteral:
		sb.WriteString(strconv.FormatInt(et.Value, 10))

	case *StringLiteral:
		sb.WriteString(strconv.Quote(et.Value))

	case *Var:
		sb.WriteString(et.Name)
		if len(et.TypeArgs) == 0 {
			return
		}
		sb.WriteByte('<')
		for i, arg := range et.TypeArgs {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(types.TypeString(arg))
		}
		sb.WriteByte('>')

	case *Call:
		p.expr(true, et.Func)
		sb.WriteByte('(')
		for i, arg := range et.Args {
			if i > 0 {
				sb.WriteString(", ")
			}
			p.expr(false, arg)
		}
		sb.WriteByte(')')

	case *Func:
		if simple {
			sb.WriteByte('(')
		}
		p.fn(et)
		if simple {
			sb.WriteByte(')')
		}

	case *Let:
		if simple {
			sb.WriteByte('(')
		}
		sb.WriteString("let ")
		sb.WriteString(et.Var)
		p.typeAnnotation(et.Annotation)
		sb.WriteString(" = ")
		p.expr(false, et.Value)
		if et.Body != nil {
			sb.WriteString(" in ")
			p.expr(false, et.Body)
		}
		if simple {
			sb.WriteByte(')')
		}

	case *LetGroup:
		if simple {
			sb.WriteByte('(')
		}
		sb.WriteString("let rec ")
		for i, f := range et.Funcs {
			if i > 0 {
				sb.WriteString(" and ")
			}
			sb.WriteString(f.Name)
			if f.Generic != nil {
				sb.WriteString(": ")
				sb.WriteString(types.GenericString(f.Generic))
			}
			sb.WriteString(" = ")
			p.fn(f.Value)
		}
		sb.WriteString(" in ")
		p.expr(false, et.Body)
		if simple {
			sb.WriteByte(')')
		}

	case *Array:
		if et.ItemType != nil {
			sb.WriteByte('<')
			sb.WriteString(types.TypeString(et.ItemType))
			sb.WriteByte('>')
		}
		sb.WriteByte('[')
		for i, item := range et.Items {
			if i > 0 {
				sb.WriteString(", ")
			}
			p.expr(false, item)
		}
		sb.WriteByte(']')

	case *Sequence:
		sb.WriteByte('(')
		p.expr(false, et.Effect)
		sb.WriteString("; ")
		p.expr(false, et.Value)
		sb.WriteByte(')')

	case *Block:
		sb.WriteByte('{')
		for i, sub := range et.Exprs {
			if i > 0 {
				sb.WriteByte(';')
			}
			sb.WriteByte(' ')
			p.expr(false, sub)
		}
		sb.WriteString(" }")

	case nil:
		sb.WriteString("<nil>")
	}
}

func (p exprPrinter) fn(f *Func) {
	sb := p.sb
	sb.WriteByte('(')
	for i, param := range f.Params {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(param.Name)
		p.typeAnnotation(param.Type)
	}
	sb.WriteByte(')')
	p.typeAnnotation(f.Return)
	sb.WriteString(" -> ")
	p.expr(false, f.Body)
}

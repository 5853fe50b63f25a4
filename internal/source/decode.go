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

// Package source decodes expression documents and type-environment configuration for hmcheck.
//
// An expression document is YAML (or JSON). Each expression is a mapping identified by one key:
//
//	int: 1
//	str: "a"
//	var: id            # optional `types: [Int]` for explicit type-arguments
//	fn: [x, "y: Int"]  # optional `returns: Int`; requires `body`
//	call: f            # optional `args: [...]`
//	let: a             # optional `type: Int`; requires `value`; optional `in`
//	array: [1, 2]      # optional `of: Int`
//	group: [...]       # function bindings `{name, type, fn, returns, body}`; requires `in`
//	seq: [effect, value]
//	block: [...]
//
// Scalars are shorthand: integers are integer literals, quoted strings are string literals and
// plain strings (including true and false) are variables. Names which YAML reserves as indicators,
// such as `-` or `*`, must be written as `var: "-"`.
package source

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/wdamron/hm/ast"
	"github.com/wdamron/hm/types"
)

// DecodeFile reads and decodes the expression document at path.
func DecodeFile(path string) (ast.Expr, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	expr, err := Decode(data)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	return expr, nil
}

// Decode decodes an expression document.
func Decode(data []byte) (ast.Expr, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "invalid document")
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, errors.New("empty document")
	}
	return decodeExpr(doc.Content[0])
}

type decodeError struct {
	line, column int
	msg          string
}

func (e *decodeError) Error() string {
	return "line " + strconv.Itoa(e.line) + ", column " + strconv.Itoa(e.column) + ": " + e.msg
}

func fail(n *yaml.Node, format string, args ...interface{}) error {
	return errors.WithStack(&decodeError{line: n.Line, column: n.Column, msg: fmt.Sprintf(format, args...)})
}

var formKeys = map[string][]string{
	"int":   nil,
	"str":   nil,
	"var":   {"types"},
	"fn":    {"returns", "body"},
	"call":  {"args"},
	"let":   {"type", "value", "in"},
	"array": {"of"},
	"group": {"in"},
	"seq":   nil,
	"block": nil,
}

func decodeExpr(n *yaml.Node) (ast.Expr, error) {
	switch n.Kind {
	case yaml.AliasNode:
		return decodeExpr(n.Alias)
	case yaml.ScalarNode:
		return decodeScalar(n)
	case yaml.MappingNode:
	default:
		return nil, fail(n, "expected expression")
	}

	fields, err := mapping(n)
	if err != nil {
		return nil, err
	}
	form := ""
	for key := range fields {
		if _, ok := formKeys[key]; ok {
			if form != "" {
				return nil, fail(n, "ambiguous expression: both %s and %s", form, key)
			}
			form = key
		}
	}
	if form == "" {
		return nil, fail(n, "expected one of %s", strings.Join(formNames(), ", "))
	}
	for key, v := range fields {
		if key != form && !contains(formKeys[form], key) {
			return nil, fail(v.key, "unexpected field %s in %s expression", key, form)
		}
	}
	head := fields[form].value

	switch form {
	case "int":
		return decodeInt(head)

	case "str":
		if head.Kind != yaml.ScalarNode {
			return nil, fail(head, "expected string")
		}
		return &ast.StringLiteral{Value: head.Value}, nil

	case "var":
		name, err := scalar(head, "variable name")
		if err != nil {
			return nil, err
		}
		e := &ast.Var{Name: name}
		if f, ok := fields["types"]; ok {
			if e.TypeArgs, err = decodeTypes(f.value); err != nil {
				return nil, err
			}
		}
		return e, nil

	case "fn":
		return decodeFunc(head, fields)

	case "call":
		fn, err := decodeExpr(head)
		if err != nil {
			return nil, err
		}
		e := &ast.Call{Func: fn}
		if f, ok := fields["args"]; ok {
			if e.Args, err = decodeList(f.value); err != nil {
				return nil, err
			}
		}
		return e, nil

	case "let":
		name, err := scalar(head, "variable name")
		if err != nil {
			return nil, err
		}
		e := &ast.Let{Var: name}
		if f, ok := fields["type"]; ok {
			if e.Annotation, err = decodeType(f.value); err != nil {
				return nil, err
			}
		}
		value, ok := fields["value"]
		if !ok {
			return nil, fail(n, "let expression requires value")
		}
		if e.Value, err = decodeExpr(value.value); err != nil {
			return nil, err
		}
		if f, ok := fields["in"]; ok {
			if e.Body, err = decodeExpr(f.value); err != nil {
				return nil, err
			}
		}
		return e, nil

	case "array":
		items, err := decodeList(head)
		if err != nil {
			return nil, err
		}
		e := &ast.Array{Items: items}
		if f, ok := fields["of"]; ok {
			if e.ItemType, err = decodeType(f.value); err != nil {
				return nil, err
			}
		}
		return e, nil

	case "group":
		return decodeGroup(n, head, fields)

	case "seq":
		items, err := decodeList(head)
		if err != nil {
			return nil, err
		}
		if len(items) != 2 {
			return nil, fail(head, "seq expression requires 2 expressions, found %d", len(items))
		}
		return &ast.Sequence{Effect: items[0], Value: items[1]}, nil

	case "block":
		items, err := decodeList(head)
		if err != nil {
			return nil, err
		}
		return &ast.Block{Exprs: items}, nil
	}
	panic("unreachable")
}

func decodeScalar(n *yaml.Node) (ast.Expr, error) {
	switch {
	case n.Style&(yaml.DoubleQuotedStyle|yaml.SingleQuotedStyle) != 0:
		return &ast.StringLiteral{Value: n.Value}, nil
	case n.Tag == "!!int":
		return decodeInt(n)
	case n.Tag == "!!str", n.Tag == "!!bool":
		return &ast.Var{Name: n.Value}, nil
	}
	return nil, fail(n, "unexpected %s scalar %q", strings.TrimPrefix(n.Tag, "!!"), n.Value)
}

func decodeInt(n *yaml.Node) (ast.Expr, error) {
	if n.Kind != yaml.ScalarNode {
		return nil, fail(n, "expected integer")
	}
	var v int64
	if err := n.Decode(&v); err != nil {
		return nil, fail(n, "invalid integer %q", n.Value)
	}
	return &ast.IntLiteral{Value: v}, nil
}

func decodeFunc(params *yaml.Node, fields map[string]field) (*ast.Func, error) {
	if params.Kind != yaml.SequenceNode {
		return nil, fail(params, "expected parameter list")
	}
	f := &ast.Func{Params: make([]ast.Param, len(params.Content))}
	for i, p := range params.Content {
		src, err := scalar(p, "parameter")
		if err != nil {
			return nil, err
		}
		name, annotation, hasType := strings.Cut(src, ":")
		f.Params[i].Name = strings.TrimSpace(name)
		if f.Params[i].Name == "" {
			return nil, fail(p, "missing parameter name")
		}
		if hasType {
			if f.Params[i].Type, err = types.ParseType(annotation); err != nil {
				return nil, fail(p, "parameter %s: %v", f.Params[i].Name, err)
			}
		}
	}
	var err error
	if ret, ok := fields["returns"]; ok {
		if f.Return, err = decodeType(ret.value); err != nil {
			return nil, err
		}
	}
	body, ok := fields["body"]
	if !ok {
		return nil, fail(params, "fn expression requires body")
	}
	if f.Body, err = decodeExpr(body.value); err != nil {
		return nil, err
	}
	return f, nil
}

var groupFuncKeys = []string{"name", "type", "fn", "returns", "body"}

func decodeGroup(n, funcs *yaml.Node, fields map[string]field) (*ast.LetGroup, error) {
	if funcs.Kind != yaml.SequenceNode {
		return nil, fail(funcs, "expected function list")
	}
	e := &ast.LetGroup{Funcs: make([]ast.LetFunc, len(funcs.Content))}
	for i, fn := range funcs.Content {
		if fn.Kind != yaml.MappingNode {
			return nil, fail(fn, "expected function binding")
		}
		fnFields, err := mapping(fn)
		if err != nil {
			return nil, err
		}
		for key, v := range fnFields {
			if !contains(groupFuncKeys, key) {
				return nil, fail(v.key, "unexpected field %s in function binding", key)
			}
		}
		nameField, ok := fnFields["name"]
		if !ok {
			return nil, fail(fn, "function binding requires name")
		}
		if e.Funcs[i].Name, err = scalar(nameField.value, "function name"); err != nil {
			return nil, err
		}
		if f, ok := fnFields["type"]; ok {
			src, err := scalar(f.value, "generic type")
			if err != nil {
				return nil, err
			}
			if e.Funcs[i].Generic, err = types.ParseGeneric(src); err != nil {
				return nil, fail(f.value, "%v", err)
			}
		}
		params, ok := fnFields["fn"]
		if !ok {
			return nil, fail(fn, "function binding requires fn")
		}
		if e.Funcs[i].Value, err = decodeFunc(params.value, fnFields); err != nil {
			return nil, err
		}
	}
	body, ok := fields["in"]
	if !ok {
		return nil, fail(n, "group expression requires in")
	}
	var err error
	if e.Body, err = decodeExpr(body.value); err != nil {
		return nil, err
	}
	return e, nil
}

func decodeList(n *yaml.Node) ([]ast.Expr, error) {
	if n.Kind != yaml.SequenceNode {
		return nil, fail(n, "expected list of expressions")
	}
	exprs := make([]ast.Expr, len(n.Content))
	for i, item := range n.Content {
		e, err := decodeExpr(item)
		if err != nil {
			return nil, err
		}
		exprs[i] = e
	}
	return exprs, nil
}

func decodeType(n *yaml.Node) (types.Type, error) {
	src, err := scalar(n, "type")
	if err != nil {
		return nil, err
	}
	t, err := types.ParseType(src)
	if err != nil {
		return nil, fail(n, "%v", err)
	}
	return t, nil
}

func decodeTypes(n *yaml.Node) ([]types.Type, error) {
	if n.Kind != yaml.SequenceNode {
		return nil, fail(n, "expected list of types")
	}
	ts := make([]types.Type, len(n.Content))
	for i, item := range n.Content {
		t, err := decodeType(item)
		if err != nil {
			return nil, err
		}
		ts[i] = t
	}
	return ts, nil
}

type field struct {
	key, value *yaml.Node
}

func mapping(n *yaml.Node) (map[string]field, error) {
	fields := make(map[string]field, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := n.Content[i], n.Content[i+1]
		if k.Kind != yaml.ScalarNode {
			return nil, fail(k, "expected field name")
		}
		if _, dup := fields[k.Value]; dup {
			return nil, fail(k, "duplicate field %s", k.Value)
		}
		fields[k.Value] = field{key: k, value: v}
	}
	return fields, nil
}

func scalar(n *yaml.Node, what string) (string, error) {
	if n.Kind != yaml.ScalarNode || n.Value == "" {
		return "", fail(n, "expected %s", what)
	}
	return n.Value, nil
}

func formNames() []string {
	names := make([]string, 0, len(formKeys))
	for name := range formKeys {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

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

package source

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kr/pretty"
	"github.com/stretchr/testify/require"

	"github.com/wdamron/hm"
	"github.com/wdamron/hm/ast"
	"github.com/wdamron/hm/types"
)

func TestDecode(t *testing.T) {
	for _, tc := range []struct {
		name, doc, expr string
	}{
		{
			name: "group",
			doc: `
group:
  - name: id
    fn: [x]
    body: x
in:
  seq:
    - call: id
      args: [1]
    - call: id
      args: ["a"]
`,
			expr: `let rec id = (x) -> x in (id(1); id("a"))`,
		},
		{
			name: "annotated group",
			doc: `
group:
  - name: const
    type: <A, B> Function2<A, B, A>
    fn: [x, y]
    body: x
in: {call: const, args: [1, {str: b}]}
`,
			expr: `let rec const: <A, B> Function2<A, B, A> = (x, y) -> x in const(1, "b")`,
		},
		{
			name: "block",
			doc:  `block: [{let: a, type: Int, value: 1}, {call: +, args: [a, a]}]`,
			expr: "{ let a: Int = 1; +(a, a) }",
		},
		{
			name: "annotations",
			doc: `
let: f
value:
  fn: ["x: Int", y]
  returns: Array<Int>
  body: {array: [x], of: Int}
in: {var: id, types: [Int]}
`,
			expr: "let f = (x: Int, y): Array<Int> -> <Int>[x] in id<Int>",
		},
		{
			name: "json",
			doc:  `{"call": {"var": "concat"}, "args": ["a", {"str": "b"}, {"int": -2}]}`,
			expr: `concat("a", "b", -2)`,
		},
		{
			name: "booleans",
			doc:  `{call: if, args: [true, {fn: [], body: 1}, {fn: [], body: 2}]}`,
			expr: "if(true, () -> 1, () -> 2)",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			expr, err := Decode([]byte(tc.doc))
			require.NoError(t, err)
			require.Equal(t, tc.expr, ast.ExprString(expr))
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	for _, tc := range []struct {
		doc, err string
	}{
		{"", "empty document"},
		{"{foo: 1}", "line 1, column 1: expected one of array, block, call, fn, group, int, let, seq, str, var"},
		{"{int: 1, str: a}", "ambiguous expression"},
		{"let: a", "line 1, column 1: let expression requires value"},
		{"{var: x, args: [1]}", "line 1, column 10: unexpected field args in var expression"},
		{"{array: [], of: 'Array<'}", "invalid type at column"},
		{"1.5", `line 1, column 1: unexpected float scalar "1.5"`},
		{"seq: [1]", "seq expression requires 2 expressions, found 1"},
		{"fn: [x]", "fn expression requires body"},
		{"group: [{name: f, fn: [], body: 1}]", "group expression requires in"},
		{"[1, 2]", "line 1, column 1: expected expression"},
	} {
		_, err := Decode([]byte(tc.doc))
		require.Error(t, err, tc.doc)
		require.Contains(t, err.Error(), tc.err, tc.doc)
	}
}

func TestDecodeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "expr.yaml")
	require.NoError(t, os.WriteFile(path, []byte("seq: [1]\n"), 0o644))

	_, err := DecodeFile(path)
	require.Error(t, err)
	require.True(t, strings.HasPrefix(err.Error(), path+": line 1, column 6: "), err.Error())

	_, err = DecodeFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestConfig(t *testing.T) {
	config, err := DecodeConfig(`
prelude = false

[bindings]
id = "<A> Function1<A, A>"
length = "<T> Function1<Array<T>, Int>"
zero = "Int"
`)
	require.NoError(t, err)

	noPrelude := false
	expected := &Config{
		Prelude: &noPrelude,
		Bindings: map[string]string{
			"id":     "<A> Function1<A, A>",
			"length": "<T> Function1<Array<T>, Int>",
			"zero":   "Int",
		},
	}
	if diff := pretty.Diff(expected, config); len(diff) > 0 {
		t.Fatalf("config:\n%s", strings.Join(diff, "\n"))
	}

	env, err := config.Env()
	require.NoError(t, err)
	require.Equal(t, []string{"id", "length", "zero"}, env.Names())

	g, ok := env.Lookup("length")
	require.True(t, ok)
	require.Equal(t, "<T> Function1<Array<T>, Int>", types.GenericString(g))

	ctx := hm.NewContext()
	ty, err := ctx.Infer(&ast.Call{Func: &ast.Var{Name: "length"}, Args: []ast.Expr{
		&ast.Array{Items: []ast.Expr{&ast.StringLiteral{Value: "a"}}},
	}}, env)
	require.NoError(t, err)
	require.Equal(t, "Int", types.TypeString(ty))
}

func TestConfigDefaults(t *testing.T) {
	config, err := DecodeConfig(`[bindings]
"+" = "Function2<String, String, String>"
`)
	require.NoError(t, err)
	require.True(t, config.UsePrelude())

	env, err := config.Env()
	require.NoError(t, err)
	require.Equal(t, hm.Prelude().Len(), env.Len())
	g, _ := env.Lookup("+")
	require.Equal(t, "Function2<String, String, String>", types.GenericString(g))

	// The shared prelude is not modified:
	g, _ = hm.Prelude().Lookup("+")
	require.Equal(t, "Function2<Int, Int, Int>", types.GenericString(g))
}

func TestConfigErrors(t *testing.T) {
	_, err := DecodeConfig("prelude = true\nbinding = 1\n")
	require.EqualError(t, err, "unknown keys: binding")

	config, err := DecodeConfig("[bindings]\nf = \"Function1<Int\"\n")
	require.NoError(t, err)
	_, err = config.Env()
	require.Error(t, err)
	require.True(t, strings.HasPrefix(err.Error(), "binding f: invalid type at column "), err.Error())

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

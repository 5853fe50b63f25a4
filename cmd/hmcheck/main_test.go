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

package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"gotest.tools/v3/golden"
)

func runHmcheck(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.Execute()
	t.Logf("stderr:\n%s", stderr.String())
	return stdout.String(), stderr.String(), err
}

func TestCheck(t *testing.T) {
	out, _, err := runHmcheck(t, "check", "--annotate", "-j", "2",
		"testdata/add2.yaml",
		"testdata/identity.yaml",
		"testdata/poly.yaml",
		"testdata/mismatch.yaml")
	require.EqualError(t, err, "1 of 4 files failed")
	golden.Assert(t, out, "check.golden")
}

func TestCheckNestedGroups(t *testing.T) {
	out, _, err := runHmcheck(t, "check", "-a", "testdata/nested.yaml")
	require.NoError(t, err)
	require.Equal(t, "testdata/nested.yaml: <A, B> Function1<A, Function1<B, A>>\n"+
		"  let rec k: <B, C> Function1<B, Function1<C, B>> = (a: B): Function1<C, B> -> "+
		"let rec j: <A> Function1<A, B> = (b: A): B -> a in j in k\n", out)
}

func TestCheckEnv(t *testing.T) {
	out, _, err := runHmcheck(t, "check", "--env", "testdata/env.toml", "testdata/length.yaml")
	require.NoError(t, err)
	require.Equal(t, "testdata/length.yaml: Int\n", out)

	// Without the environment, length is unbound:
	out, _, err = runHmcheck(t, "check", "-d", "testdata/length.yaml")
	require.Error(t, err)
	require.Equal(t, "testdata/length.yaml: Variable length not found\n  at length\n", out)
}

func TestCheckDump(t *testing.T) {
	out, _, err := runHmcheck(t, "check", "--dump", "testdata/identity.yaml")
	require.NoError(t, err)
	require.Contains(t, out, "&ast.Func{")
	require.Contains(t, out, `"x"`)
}

func TestCheckMissingFile(t *testing.T) {
	out, _, err := runHmcheck(t, "check", "testdata/missing.yaml")
	require.EqualError(t, err, "1 of 1 files failed")
	require.Contains(t, out, "testdata/missing.yaml: open testdata/missing.yaml: ")
}

func TestCheckGroup(t *testing.T) {
	out, stderr, err := runHmcheck(t, "check", "testdata/group.yaml")
	require.NoError(t, err)
	require.Equal(t, "testdata/group.yaml: <A> Function1<A, A>\n", out)
	require.Contains(t, stderr, "WRN function group can be split")
}

func TestEnv(t *testing.T) {
	out, _, err := runHmcheck(t, "env", "--env", "testdata/env.toml")
	require.NoError(t, err)
	golden.Assert(t, out, "env.golden")
}

func TestParseType(t *testing.T) {
	out, _, err := runHmcheck(t, "parse-type", "<A> Function1< A,Array<A> >")
	require.NoError(t, err)
	require.Equal(t, "<A> Function1<A, Array<A>>\n", out)

	_, _, err = runHmcheck(t, "parse-type", "Array<")
	require.ErrorContains(t, err, "invalid type at column ")
}

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
	"context"
	"fmt"
	"io"
	"log/slog"
	"runtime"

	"github.com/kr/pretty"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/wdamron/hm"
	"github.com/wdamron/hm/ast"
	"github.com/wdamron/hm/internal/astutil"
	"github.com/wdamron/hm/internal/source"
	"github.com/wdamron/hm/types"
)

type checkOptions struct {
	Annotate bool
	Dump     bool
	Jobs     int
}

func checkCmd(cfg *Config) *cobra.Command {
	var opts checkOptions

	cmd := &cobra.Command{
		Use:   "check [flags] file...",
		Short: "Infer the type of each expression document",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnv(cfg)
			if err != nil {
				return err
			}
			return runCheck(cmd.Context(), cmd.OutOrStdout(), env, args, opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.Annotate, "annotate", "a", false, "Print the type-annotated expression")
	cmd.Flags().BoolVar(&opts.Dump, "dump", false, "Print the typed expression tree")
	cmd.Flags().IntVarP(&opts.Jobs, "jobs", "j", runtime.GOMAXPROCS(0), "Number of files to check concurrently")
	return cmd
}

// Result of checking one file
type checkResult struct {
	path    string
	generic *types.Generic
	typed   ast.Expr
	err     error
	invalid ast.Expr
}

func runCheck(ctx context.Context, out io.Writer, env *hm.TypeEnv, paths []string, opts checkOptions) error {
	results := make([]checkResult, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	if opts.Jobs > 0 {
		g.SetLimit(opts.Jobs)
	}
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = checkFile(env, path, opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	failed := 0
	for _, r := range results {
		if r.err != nil {
			failed++
			fmt.Fprintf(out, "%s: %s\n", r.path, r.err)
			if r.invalid != nil {
				fmt.Fprintf(out, "  at %s\n", ast.ExprString(r.invalid))
			}
			continue
		}
		fmt.Fprintf(out, "%s: %s\n", r.path, types.GenericString(r.generic))
		if opts.Annotate {
			fmt.Fprintf(out, "  %s\n", ast.ExprString(r.typed))
		}
		if opts.Dump {
			fmt.Fprintf(out, "%# v\n", pretty.Formatter(r.typed))
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(paths))
	}
	return nil
}

// TypeEnv is immutable, so files are checked concurrently within the same environment;
// each file gets its own inference context.
func checkFile(env *hm.TypeEnv, path string, opts checkOptions) checkResult {
	logger := slog.Default().With("file", path)
	r := checkResult{path: path}

	expr, err := source.DecodeFile(path)
	if err != nil {
		r.err = err
		return r
	}
	logger.Debug("checking expression", "expr", ast.ExprString(expr))
	ast.WalkExpr(expr, func(e ast.Expr) {
		group, ok := e.(*ast.LetGroup)
		if !ok {
			return
		}
		if sccs := astutil.GroupComponents(group); len(sccs) > 1 {
			logger.Warn("function group can be split", "functions", len(group.Funcs), "components", len(sccs))
		}
	})

	ctx := hm.NewContext()
	ctx.SetLogger(logger)
	if opts.Annotate || opts.Dump {
		r.typed, r.generic, r.err = ctx.AnnotateGeneric(expr, env)
	} else {
		r.generic, r.err = ctx.InferGeneric(expr, env)
	}
	if r.err != nil {
		r.typed, r.invalid = nil, ctx.InvalidExpr()
	}
	return r
}

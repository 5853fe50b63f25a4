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

// Command hmcheck infers the types of expression documents.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/wdamron/hm"
	"github.com/wdamron/hm/internal/source"
)

// Config holds the options shared by all commands
type Config struct {
	Debug   bool
	EnvFile string
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfg Config

	rootCmd := &cobra.Command{
		Use:   "hmcheck",
		Short: "Hindley-Milner type checker for expression documents",
		Long: `hmcheck infers the types of expressions written as YAML or JSON documents,
within the built-in prelude or an environment described by a TOML file.`,
		Example: `  # Infer the type of an expression
  hmcheck check expr.yaml

  # Print the annotated expression, with debug logging enabled
  hmcheck check --annotate -d expr.yaml

  # Check within a custom environment
  hmcheck check --env env.toml a.yaml b.yaml`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			slog.SetDefault(newLogger(cmd.ErrOrStderr(), cfg.Debug))
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&cfg.Debug, "debug", "d", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&cfg.EnvFile, "env", "", "Path to a TOML environment config (prelude only if not specified)")

	rootCmd.AddCommand(checkCmd(&cfg))
	rootCmd.AddCommand(envCmd(&cfg))
	rootCmd.AddCommand(parseTypeCmd())
	return rootCmd
}

func newLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	noColor := true
	if f, ok := w.(*os.File); ok {
		noColor = !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd())
	}
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		NoColor:    noColor,
	}))
}

func loadEnv(cfg *Config) (*hm.TypeEnv, error) {
	if cfg.EnvFile == "" {
		return hm.Prelude(), nil
	}
	config, err := source.LoadConfig(cfg.EnvFile)
	if err != nil {
		return nil, err
	}
	env, err := config.Env()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", cfg.EnvFile, err)
	}
	slog.Debug("loaded environment", "path", cfg.EnvFile, "bindings", env.Len(), "prelude", config.UsePrelude())
	return env, nil
}

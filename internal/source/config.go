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
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/wdamron/hm"
	"github.com/wdamron/hm/types"
)

// Config describes the type-environment in which expressions are checked.
//
//	prelude = true
//
//	[bindings]
//	id = "<A> Function1<A, A>"
//	length = "<T> Function1<Array<T>, Int>"
type Config struct {
	// Prelude includes the built-in operators and constants. Defaults to true.
	Prelude *bool `toml:"prelude,omitempty"`

	// Bindings maps identifiers to type signatures, written as generic annotations.
	// Bindings shadow built-ins of the same name.
	Bindings map[string]string `toml:"bindings,omitempty"`
}

// LoadConfig loads an environment config from the given path.
func LoadConfig(path string) (*Config, error) {
	var config Config
	md, err := toml.DecodeFile(path, &config)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := checkUndecoded(md); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &config, nil
}

// DecodeConfig decodes an environment config from TOML source.
func DecodeConfig(src string) (*Config, error) {
	var config Config
	md, err := toml.Decode(src, &config)
	if err != nil {
		return nil, err
	}
	if err := checkUndecoded(md); err != nil {
		return nil, err
	}
	return &config, nil
}

func checkUndecoded(md toml.MetaData) error {
	undecoded := md.Undecoded()
	if len(undecoded) == 0 {
		return nil
	}
	keys := make([]string, len(undecoded))
	for i, k := range undecoded {
		keys[i] = k.String()
	}
	return fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
}

// UsePrelude reports whether the built-ins are included.
func (c *Config) UsePrelude() bool { return c.Prelude == nil || *c.Prelude }

// Env builds the type-environment described by the config.
func (c *Config) Env() (*hm.TypeEnv, error) {
	env := hm.NewTypeEnv()
	if c.UsePrelude() {
		env = hm.Prelude()
	}
	names := make([]string, 0, len(c.Bindings))
	for name := range c.Bindings {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		g, err := types.ParseGeneric(c.Bindings[name])
		if err != nil {
			return nil, fmt.Errorf("binding %s: %w", name, err)
		}
		env = env.Extend(name, g)
	}
	return env, nil
}

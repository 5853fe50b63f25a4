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
	"fmt"
	"strings"
	"text/scanner"
)

// ParseType parses a type annotation: `Int`, `Array<String>`, `Function2<Int, Int, Bool>`
//
// Annotations cannot refer to type-variables; names which are generic parameters of an enclosing
// generic type are parsed as nullary constructors.
func ParseType(src string) (Type, error) {
	p := newTypeParser(src)
	t := p.parseType()
	p.expectEOF()
	if p.err != nil {
		return nil, p.err
	}
	return t, nil
}

// ParseGeneric parses a generic type annotation: `<A, B> Function2<A, B, A>`
//
// The parameter list is optional; without it the parsed generic type is monomorphic.
func ParseGeneric(src string) (*Generic, error) {
	p := newTypeParser(src)
	var params []string
	if p.tok == '<' {
		p.next()
		for {
			name := p.expectIdent()
			if p.err != nil {
				break
			}
			for _, existing := range params {
				if existing == name {
					p.fail("duplicate generic parameter " + name)
				}
			}
			params = append(params, name)
			if p.tok != ',' {
				break
			}
			p.next()
		}
		p.expect('>')
	}
	t := p.parseType()
	p.expectEOF()
	if p.err != nil {
		return nil, p.err
	}
	return &Generic{Params: params, Type: t}, nil
}

type typeParser struct {
	s   scanner.Scanner
	tok rune
	err error
}

func newTypeParser(src string) *typeParser {
	p := &typeParser{}
	p.s.Init(strings.NewReader(src))
	p.s.Mode = scanner.ScanIdents
	p.s.Error = func(s *scanner.Scanner, msg string) { p.fail(msg) }
	p.next()
	return p
}

func (p *typeParser) next() { p.tok = p.s.Scan() }

func (p *typeParser) fail(msg string) {
	if p.err == nil {
		p.err = fmt.Errorf("invalid type at column %d: %s", p.s.Position.Column, msg)
	}
}

func (p *typeParser) expect(tok rune) {
	if p.tok != tok {
		p.fail("expected " + scanner.TokenString(tok) + ", found " + p.found())
		return
	}
	p.next()
}

func (p *typeParser) expectIdent() string {
	if p.tok != scanner.Ident {
		p.fail("expected type name, found " + p.found())
		return ""
	}
	name := p.s.TokenText()
	p.next()
	return name
}

func (p *typeParser) expectEOF() {
	if p.err == nil && p.tok != scanner.EOF {
		p.fail("unexpected " + p.found())
	}
}

func (p *typeParser) found() string {
	if p.tok == scanner.EOF {
		return "end of input"
	}
	return fmt.Sprintf("%q", p.s.TokenText())
}

func (p *typeParser) parseType() Type {
	name := p.expectIdent()
	if p.err != nil {
		return nil
	}
	c := &Const{Name: name}
	if p.tok != '<' {
		return c
	}
	p.next()
	for {
		g := p.parseType()
		if p.err != nil {
			return nil
		}
		c.Generics = append(c.Generics, g)
		if p.tok != ',' {
			break
		}
		p.next()
	}
	p.expect('>')
	return c
}

// MustParseType is like ParseType but panics if src cannot be parsed.
func MustParseType(src string) Type {
	t, err := ParseType(src)
	if err != nil {
		panic(err)
	}
	return t
}

// MustParseGeneric is like ParseGeneric but panics if src cannot be parsed.
func MustParseGeneric(src string) *Generic {
	g, err := ParseGeneric(src)
	if err != nil {
		panic(err)
	}
	return g
}

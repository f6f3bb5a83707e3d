// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package mutation

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/readonly/internal/astutil"
)

// Policy holds the assumptions made about code the analyzer does not follow.
type Policy struct {
	// ReadOnly lists functions and accessor methods known not to mutate their arguments.
	ReadOnly *ReadOnlySet

	// Escapes treats references that are returned, sent on a channel or stored
	// outside the analyzed code as mutated.
	Escapes bool
}

// DefaultPolicy returns a [Policy] with the [DefaultReadOnly] set and escapes enabled.
func DefaultPolicy() Policy {
	return Policy{ReadOnly: DefaultReadOnly(), Escapes: true}
}

// Cache holds the per-function parameter results shared by all analyzers of one request,
// usually one package.
//
// Results are never invalidated: the syntax tree must not change during the lifetime of a Cache.
type Cache struct {
	info   *types.Info
	in     *inspector.Inspector
	policy Policy

	// decls maps functions to their declarations, built on first use.
	decls map[*types.Func]inspector.Cursor

	// funcs maps function declarations and literals to their analyzers.
	// A nil entry denotes a declaration without body.
	funcs map[astutil.NodeIndex]*FuncAnalyzer
}

// NewCache creates an empty [Cache] for the files of in, type checked into info.
func NewCache(info *types.Info, in *inspector.Inspector, policy Policy) *Cache {
	return &Cache{
		info:   info,
		in:     in,
		policy: policy,
		funcs:  make(map[astutil.NodeIndex]*FuncAnalyzer),
	}
}

// NewAnalyzer creates an [Analyzer] for root sharing this cache.
func (c *Cache) NewAnalyzer(root inspector.Cursor) *Analyzer {
	return newAnalyzer(c, root, nil)
}

// Func returns the [FuncAnalyzer] for the declaration of fn, creating it on first use.
// Instantiated functions resolve to their generic origin.
// It returns nil when the files contain no body for fn.
func (c *Cache) Func(fn *types.Func) *FuncAnalyzer {
	if fn == nil {
		return nil
	}

	decl, ok := c.declarations()[fn.Origin()]
	if !ok {
		return nil
	}

	return c.FuncAt(decl)
}

// FuncAt returns the [FuncAnalyzer] for a *[ast.FuncDecl] or *[ast.FuncLit] cursor,
// creating it on first use. It returns nil for other nodes and declarations without body.
func (c *Cache) FuncAt(fn inspector.Cursor) *FuncAnalyzer {
	switch fn.Node().(type) {
	case *ast.FuncDecl, *ast.FuncLit:
	default:
		return nil
	}

	idx := astutil.NodeIndexOf(fn)
	if f, ok := c.funcs[idx]; ok {
		return f
	}

	var (
		sig  *types.Signature
		body inspector.Cursor
	)

	switch n := fn.Node().(type) {
	case *ast.FuncDecl:
		obj, ok := c.info.Defs[n.Name].(*types.Func)
		if !ok || n.Body == nil {
			c.funcs[idx] = nil

			return nil
		}

		sig, body = obj.Signature(), fn.ChildAt(edge.FuncDecl_Body, -1)

	case *ast.FuncLit:
		s, ok := c.info.TypeOf(n).(*types.Signature)
		if !ok {
			c.funcs[idx] = nil

			return nil
		}

		sig, body = s, fn.ChildAt(edge.FuncLit_Body, -1)
	}

	f := newFuncAnalyzer(c, sig, body)
	c.funcs[idx] = f

	return f
}

func (c *Cache) declarations() map[*types.Func]inspector.Cursor {
	if c.decls == nil {
		c.decls = make(map[*types.Func]inspector.Cursor)

		for decl := range c.in.Root().Preorder((*ast.FuncDecl)(nil)) {
			if fn, ok := c.info.Defs[decl.Node().(*ast.FuncDecl).Name].(*types.Func); ok {
				c.decls[fn] = decl
			}
		}
	}

	return c.decls
}

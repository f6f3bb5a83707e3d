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

package check

import (
	"context"
	"go/ast"
	"go/token"
	"go/types"
	"runtime/trace"

	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"
)

// Ranges finds range loops in decl copying large elements into a value that is never mutated.
func (c *Checker) Ranges(ctx context.Context, decl inspector.Cursor) []Finding {
	defer trace.StartRegion(ctx, "CheckRanges").End()

	var findings []Finding

	for loop := range decl.Preorder((*ast.RangeStmt)(nil)) {
		if finding, ok := c.rangeCopy(loop); ok {
			findings = append(findings, finding)
		}
	}

	return findings
}

func (c *Checker) rangeCopy(loop inspector.Cursor) (Finding, bool) {
	rs := loop.Node().(*ast.RangeStmt)
	if rs.Tok != token.DEFINE {
		return Finding{}, false
	}

	value, ok := rs.Value.(*ast.Ident)
	if !ok || value.Name == "_" {
		return Finding{}, false
	}

	v, ok := c.info.Defs[value].(*types.Var)
	if !ok {
		return Finding{}, false
	}

	x, ok := c.localOperand(rs.X)
	if !ok {
		return Finding{}, false
	}

	elem, ok := rangeElem(x.Type())
	if !ok {
		return Finding{}, false
	}

	size, ok := c.size(elem)
	if !ok || size <= c.config.MaxSize {
		return Finding{}, false
	}

	body := loop.ChildAt(edge.RangeStmt_Body, -1)
	if c.captured(body, v) {
		return Finding{}, false
	}

	a := c.cache.NewAnalyzer(body)
	if a.IsVarMutated(v) || a.IsVarMutated(x) || a.IsVarPointeeMutated(x) {
		return Finding{}, false
	}

	return Finding{
		Kind:    RangeCopy,
		Ident:   value,
		Type:    elem,
		Size:    size,
		Related: rs.X,
	}, true
}

// localOperand returns the function local variable ranged over by x.
func (c *Checker) localOperand(x ast.Expr) (*types.Var, bool) {
	id, ok := ast.Unparen(x).(*ast.Ident)
	if !ok {
		return nil, false
	}

	v, ok := c.info.Uses[id].(*types.Var)
	if !ok || v.Pkg() == nil || v.Parent() == nil || v.Parent() == v.Pkg().Scope() {
		return nil, false
	}

	return v, true
}

// rangeElem returns the element type of a slice, an array or a pointer to an array.
func rangeElem(t types.Type) (types.Type, bool) {
	switch u := t.Underlying().(type) {
	case *types.Slice:
		return u.Elem(), true

	case *types.Array:
		return u.Elem(), true

	case *types.Pointer:
		if a, ok := u.Elem().Underlying().(*types.Array); ok {
			return a.Elem(), true
		}
	}

	return nil, false
}

// captured reports whether v is referenced from a function literal below body.
func (c *Checker) captured(body inspector.Cursor, v *types.Var) bool {
	for lit := range body.Preorder((*ast.FuncLit)(nil)) {
		if len(c.references(lit, v)) > 0 {
			return true
		}
	}

	return false
}

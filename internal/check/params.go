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
	"go/types"
	"runtime/trace"

	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/readonly/internal/astutil"
)

// Params finds pointer parameters of decl whose pointee is small and never mutated.
//
// Only unexported functions without receiver are checked, and only when they are
// never used as a value, so changing the signature stays a local edit.
func (c *Checker) Params(ctx context.Context, decl inspector.Cursor) []Finding {
	defer trace.StartRegion(ctx, "CheckParams").End()

	fd, ok := decl.Node().(*ast.FuncDecl)
	if !ok || fd.Body == nil || fd.Recv != nil || fd.Name.IsExported() {
		return nil
	}

	fn, ok := c.info.Defs[fd.Name].(*types.Func)
	if !ok || c.usedAsValue(fn) {
		return nil
	}

	f := c.cache.FuncAt(decl)
	if f == nil {
		return nil
	}

	var findings []Finding

	for field, id := range astutil.AllNamedParams(fd.Type.Params) {
		v, ok := c.info.Defs[id].(*types.Var)
		if !ok {
			continue
		}

		elem, size, ok := c.smallPointee(v.Type())
		if !ok {
			continue
		}

		refs := c.references(f.Body().Root(), v)
		if len(refs) == 0 || anyIdentityUse(refs) {
			continue
		}

		if f.IsMutated(v) || f.IsPointeeMutated(v) {
			continue
		}

		findings = append(findings, Finding{
			Kind:    ParamByValue,
			Ident:   id,
			Type:    elem,
			Size:    size,
			Related: field.Type,
		})
	}

	return findings
}

// smallPointee returns the struct or array t points to when it is small enough
// to be copied and holds no lock.
func (c *Checker) smallPointee(t types.Type) (types.Type, int64, bool) {
	ptr, ok := types.Unalias(t).(*types.Pointer)
	if !ok {
		return nil, 0, false
	}

	elem := ptr.Elem()
	switch elem.Underlying().(type) {
	case *types.Struct, *types.Array:
	default:
		return nil, 0, false
	}

	size, ok := c.size(elem)
	if !ok || size > c.config.MaxSize || hasLock(elem) {
		return nil, 0, false
	}

	return elem, size, true
}

func anyIdentityUse(refs []inspector.Cursor) bool {
	for _, ref := range refs {
		if identityUse(ref) {
			return true
		}
	}

	return false
}

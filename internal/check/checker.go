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
	"go/ast"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/readonly/mutation"
)

// Checker runs the checks over the function declarations of one package.
type Checker struct {
	info   *types.Info
	in     *inspector.Inspector
	cache  *mutation.Cache
	config Config

	// values holds the functions referenced other than by a call, built on first use.
	values map[*types.Func]struct{}
}

// New creates a [Checker] for the files of in, sharing the mutation results of cache.
func New(info *types.Info, in *inspector.Inspector, cache *mutation.Cache, config Config) *Checker {
	if config.Sizes == nil {
		config.Sizes = types.SizesFor("gc", "amd64")
	}

	return &Checker{info: info, in: in, cache: cache, config: config}
}

// usedAsValue reports whether fn is referenced other than as the callee of a call.
func (c *Checker) usedAsValue(fn *types.Func) bool {
	if c.values == nil {
		c.values = make(map[*types.Func]struct{})

		for id := range c.in.Root().Preorder((*ast.Ident)(nil)) {
			f, ok := c.info.Uses[id.Node().(*ast.Ident)].(*types.Func)
			if !ok || isCallee(id) {
				continue
			}

			c.values[f.Origin()] = struct{}{}
		}
	}

	_, ok := c.values[fn.Origin()]

	return ok
}

// isCallee reports whether the identifier at c is the function of a call, possibly instantiated.
func isCallee(c inspector.Cursor) bool {
	for {
		kind, _ := c.ParentEdge()
		switch kind {
		case edge.ParenExpr_X, edge.IndexExpr_X, edge.IndexListExpr_X, edge.SelectorExpr_Sel:
			c = c.Parent()

		case edge.CallExpr_Fun:
			return true

		default:
			return false
		}
	}
}

// size returns the size of t, or false when it overflows.
func (c *Checker) size(t types.Type) (int64, bool) {
	size := c.config.Sizes.Sizeof(t)

	return size, size >= 0
}

// identityUse reports whether the reference at ref depends on the address it holds.
func identityUse(ref inspector.Cursor) bool {
	for {
		kind, _ := ref.ParentEdge()
		switch kind {
		case edge.ParenExpr_X:
			ref = ref.Parent()

		case edge.BinaryExpr_X, edge.BinaryExpr_Y:
			op := ref.Parent().Node().(*ast.BinaryExpr).Op

			return op == token.EQL || op == token.NEQ

		case edge.IndexExpr_Index, edge.SwitchStmt_Tag, edge.CaseClause_List, edge.KeyValueExpr_Key:
			return true

		default:
			return false
		}
	}
}

// hasLock reports whether values of type t contain a Lock method, like [sync.Mutex].
func hasLock(t types.Type) bool {
	if types.NewMethodSet(types.NewPointer(t)).Lookup(nil, "Lock") != nil {
		return true
	}

	switch u := t.Underlying().(type) {
	case *types.Struct:
		for i := range u.NumFields() {
			if hasLock(u.Field(i).Type()) {
				return true
			}
		}

	case *types.Array:
		return hasLock(u.Elem())
	}

	return false
}

// references returns the uses of v below root.
func (c *Checker) references(root inspector.Cursor, v *types.Var) []inspector.Cursor {
	var refs []inspector.Cursor

	for id := range root.Preorder((*ast.Ident)(nil)) {
		if c.info.Uses[id.Node().(*ast.Ident)] == v {
			refs = append(refs, id)
		}
	}

	return refs
}

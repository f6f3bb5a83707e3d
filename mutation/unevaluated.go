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

	"golang.org/x/tools/go/ast/inspector"
	"golang.org/x/tools/go/types/typeutil"
)

// IsUnevaluated reports whether n lies inside code below root that is never executed:
// an expression with a constant value, like len of an array, or an argument of
// [unsafe.Sizeof], [unsafe.Alignof] or [unsafe.Offsetof].
//
// The search stops at root; n == root, or n outside of root, is evaluated.
// The inspector root contains every node.
func IsUnevaluated(info *types.Info, n, root inspector.Cursor) bool {
	if n == root || root.Node() != nil && !root.Contains(n) {
		return false
	}

	for c := n.Parent(); ; c = c.Parent() {
		if e, ok := c.Node().(ast.Expr); ok && unevaluatedOperands(info, e) {
			return true
		}

		if c == root {
			return false
		}
	}
}

func unevaluatedOperands(info *types.Info, e ast.Expr) bool {
	if tv, ok := info.Types[e]; ok && tv.Value != nil {
		return true
	}

	call, ok := e.(*ast.CallExpr)
	if !ok {
		return false
	}

	b, ok := typeutil.Callee(info, call).(*types.Builtin)
	if !ok {
		return false
	}

	switch b.Name() {
	case "Sizeof", "Alignof", "Offsetof":
		return b == types.Unsafe.Scope().Lookup(b.Name())

	default:
		return false
	}
}

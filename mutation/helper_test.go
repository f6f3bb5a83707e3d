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

package mutation_test

import (
	"fmt"
	"go/ast"
	"go/types"
	"testing"

	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/readonly/internal/testsource"
	. "fillmore-labs.com/readonly/mutation"
)

type fixture struct {
	file  *ast.File
	pkg   *types.Package
	info  *types.Info
	in    *inspector.Inspector
	cache *Cache
}

func newFixture(tb testing.TB, src string, policy Policy) *fixture {
	tb.Helper()

	fset, f := testsource.ParseFile(tb, src)
	pkg, info := testsource.Check(tb, fset, f)
	in := inspector.New([]*ast.File{f})

	return &fixture{file: f, pkg: pkg, info: info, in: in, cache: NewCache(info, in, policy)}
}

func (f *fixture) analyzer(tb testing.TB, name string) *Analyzer {
	tb.Helper()

	return f.cache.NewAnalyzer(testsource.FuncBody(tb, f.in, name))
}

func (f *fixture) variable(tb testing.TB, name string) *types.Var {
	tb.Helper()

	return testsource.Var(tb, f.info, f.in.Root(), name)
}

// witness describes n as its type and the enclosing function.
func (f *fixture) witness(n ast.Node) string {
	if n == nil {
		return ""
	}

	for _, decl := range f.file.Decls {
		if fd, ok := decl.(*ast.FuncDecl); ok && fd.Pos() <= n.Pos() && n.End() <= fd.End() {
			return fmt.Sprintf("%T in %s", n, fd.Name.Name)
		}
	}

	return fmt.Sprintf("%T", n)
}

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

// Package testsource provides utilities for parsing and analyzing Go source code in tests.
//
// It is designed to simplify testing of the mutation analyzer by handling common
// boilerplate code for parsing and type-checking Go source fragments.
package testsource

import (
	"bytes"
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"testing"

	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"
)

const (
	testpkg  = "test"
	filename = "test.go"
)

// Parse parses a Go source code fragment into an AST.
// The provided source `src` is automatically wrapped in a function body `func _() { ... }`
// within a package `test`. This allows testing statement-level code fragments without
// manually constructing the surrounding package and function scaffolding.
//
// Call [Check] on the result when type information is needed.
//
// Returns:
//   - *token.FileSet: The file set containing the single source file.
//   - *ast.File: The parsed AST of the source file.
//   - *ast.FuncDecl: The function declaration wrapping the source code.
//   - inspector.Cursor: A cursor positioned at the wrapper function's Body field.
func Parse(tb testing.TB, src string) (fset *token.FileSet, f *ast.File, fn *ast.FuncDecl, body inspector.Cursor) {
	tb.Helper()

	fset, f = parse(tb, wrapSource(src))

	fn, body = firstFuncDecl(f)
	if fn == nil {
		tb.Fatal("Can't find function")
	}

	return fset, f, fn, body
}

// ParseFile parses the top level declarations `src` of a file in package `test`.
func ParseFile(tb testing.TB, src string) (*token.FileSet, *ast.File) {
	tb.Helper()

	return parse(tb, bytes.NewBufferString("package "+testpkg+"\n\n"+src))
}

func parse(tb testing.TB, src *bytes.Buffer) (*token.FileSet, *ast.File) {
	tb.Helper()

	fset := token.NewFileSet()

	f, err := parser.ParseFile(fset, filename, src, parser.SkipObjectResolution)
	if err != nil {
		tb.Fatalf("Failed to parse source %q: %v", src, err)
	}

	return fset, f
}

// Check performs type checking on the provided AST file.
// It creates and returns a fully type-checked *types.Package and *types.Info.
// Use this helper when testing analyzer components that require type information
// (e.g. for method lookup, selections, or implicit type switch variables).
func Check(tb testing.TB, fset *token.FileSet, f *ast.File) (*types.Package, *types.Info) {
	tb.Helper()

	info := &types.Info{
		Types:      make(map[ast.Expr]types.TypeAndValue),
		Instances:  make(map[*ast.Ident]types.Instance),
		Defs:       make(map[*ast.Ident]types.Object),
		Uses:       make(map[*ast.Ident]types.Object),
		Implicits:  make(map[ast.Node]types.Object),
		Selections: make(map[*ast.SelectorExpr]*types.Selection),
		Scopes:     make(map[ast.Node]*types.Scope),
	}

	conf := types.Config{Importer: importer.Default()}

	pkg, err := conf.Check(testpkg, fset, []*ast.File{f}, info)
	if err != nil {
		tb.Fatalf("failed to type Check source: %v", err)
	}

	return pkg, info
}

// FuncBody returns a cursor at the body of the function declaration called name.
func FuncBody(tb testing.TB, in *inspector.Inspector, name string) inspector.Cursor {
	tb.Helper()

	for c := range in.Root().Preorder((*ast.FuncDecl)(nil)) {
		if fn := c.Node().(*ast.FuncDecl); fn.Name.Name == name && fn.Body != nil {
			return c.ChildAt(edge.FuncDecl_Body, -1)
		}
	}

	tb.Fatalf("Can't find function %q", name)

	return inspector.Cursor{}
}

// Var returns the first variable called name declared below root.
func Var(tb testing.TB, info *types.Info, root inspector.Cursor, name string) *types.Var {
	tb.Helper()

	for c := range root.Preorder((*ast.Ident)(nil)) {
		id := c.Node().(*ast.Ident)
		if id.Name != name {
			continue
		}

		if v, ok := info.Defs[id].(*types.Var); ok {
			return v
		}
	}

	tb.Fatalf("Can't find variable %q", name)

	return nil
}

// Func returns the package level function or method called name.
// Methods are named "Type.Method".
func Func(tb testing.TB, pkg *types.Package, name string) *types.Func {
	tb.Helper()

	for _, n := range pkg.Scope().Names() {
		switch obj := pkg.Scope().Lookup(n).(type) {
		case *types.Func:
			if obj.Name() == name {
				return obj
			}

		case *types.TypeName:
			named, ok := obj.Type().(*types.Named)
			if !ok {
				continue
			}

			for m := range named.Methods() {
				if obj.Name()+"."+m.Name() == name {
					return m
				}
			}
		}
	}

	tb.Fatalf("Can't find function %q", name)

	return nil
}

func wrapSource(src string) *bytes.Buffer {
	const (
		header     = "package " + testpkg + "\n\nfunc _() {\n"
		suffix     = "\n}"
		wrapperLen = len(header) + len(suffix)
	)

	var srcFile bytes.Buffer
	srcFile.Grow(wrapperLen + len(src))

	srcFile.WriteString(header) // ignore error
	srcFile.WriteString(src)    // ignore error
	srcFile.WriteString(suffix) // ignore error

	return &srcFile
}

func firstFuncDecl(f *ast.File) (fn *ast.FuncDecl, body inspector.Cursor) {
	root := inspector.New([]*ast.File{f}).Root()
	for c := range root.Preorder((*ast.FuncDecl)(nil)) {
		fn, body = c.Node().(*ast.FuncDecl), c.ChildAt(edge.FuncDecl_Body, -1)

		return fn, body
	}

	return nil, root
}

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

// Package run drives the readonly checks over an analysis pass.
package run

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/readonly/internal/astutil"
	"fillmore-labs.com/readonly/internal/check"
	"fillmore-labs.com/readonly/internal/config"
	"fillmore-labs.com/readonly/internal/report"
	"fillmore-labs.com/readonly/mutation"
)

// ErrResultMissing is returned when a required analyzer result is missing.
// This typically indicates a configuration error where the analyzer's
// Requires field is not properly set.
var ErrResultMissing = errors.New("analyzer result missing")

// Run executes the readonly checks over all function declarations of a package.
func (r *Options) Run(p *analysis.Pass) (any, error) {
	// Retrieves the [inspector.Inspector] from the pass results.
	in, ok := p.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, fmt.Errorf("readonly: %s %w", inspect.Analyzer.Name, ErrResultMissing)
	}

	if r.Checks.Empty() {
		return nil, nil
	}

	ctx := context.Background()

	ctx, task := trace.NewTask(ctx, "ReadOnly")
	defer task.End()

	trace.Log(ctx, "package", p.Pkg.Path())

	readOnly := mutation.DefaultReadOnly()
	readOnly.Add(r.ReadOnly...)

	// One cache per package, shared by all checks
	cache := mutation.NewCache(p.TypesInfo, in, mutation.Policy{
		ReadOnly: readOnly,
		Escapes:  r.Behavior.Enabled(config.ConservativeEscapes),
	})

	checker := check.New(p.TypesInfo, in, cache, check.Config{Sizes: p.TypesSizes, MaxSize: r.MaxSize})

	// Loop over all files
	for f := range in.Root().Children() {
		file := f.Node().(*ast.File)

		currentFile := astutil.NewCurrentFile(p.Fset, file)
		if !currentFile.Valid() {
			astutil.InternalError(p, file, "File %s without valid info", file.Name.Name)

			continue
		}

		// Skip generated files
		if currentFile.Generated() && !r.Behavior.Enabled(config.IncludeGenerated) {
			continue
		}

		// Skip files with nolint comment
		if astutil.DocHasNoLint(file.Doc) {
			continue
		}

		// Loop over all function and method declarations in this file
		for c := range f.Preorder((*ast.FuncDecl)(nil)) {
			fun := c.Node().(*ast.FuncDecl)

			if fun.Body == nil {
				continue
			}

			// Skip functions with nolint comment
			if astutil.DocHasNoLint(fun.Doc) {
				continue
			}

			var findings []check.Finding

			if r.Checks.Enabled(config.ParamCheck) {
				findings = append(findings, checker.Params(ctx, c)...)
			}

			if r.Checks.Enabled(config.RangeCheck) {
				findings = append(findings, checker.Ranges(ctx, c)...)
			}

			report.Findings(ctx, p, currentFile, findings)
		}
	}

	return nil, nil
}

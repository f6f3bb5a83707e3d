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

// Package report turns findings into diagnostics.
package report

import (
	"context"
	"fmt"
	"go/types"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/readonly/internal/astutil"
	"fillmore-labs.com/readonly/internal/check"
)

// Findings emits a diagnostic for each finding not suppressed by a //nolint:readonly comment.
func Findings(ctx context.Context, p *analysis.Pass, currentFile astutil.CurrentFile, findings []check.Finding) {
	if len(findings) == 0 {
		return
	}

	defer trace.StartRegion(ctx, "Report").End()

	qualifier := types.RelativeTo(p.Pkg)

	for _, f := range findings {
		if currentFile.NoLintComment(f.Ident.Pos()) {
			continue
		}

		diagnostic := analysis.Diagnostic{
			Pos:      f.Ident.Pos(),
			End:      f.Ident.End(),
			Category: f.Kind.String(),
		}

		typeName := types.TypeString(f.Type, qualifier)

		switch f.Kind {
		case check.ParamByValue:
			diagnostic.Message = fmt.Sprintf("Parameter '%s' is never mutated through and can be passed by value (ro:%s)", f.Ident.Name, f.Kind)
			diagnostic.Related = []analysis.RelatedInformation{{
				Pos:     f.Related.Pos(),
				End:     f.Related.End(),
				Message: fmt.Sprintf("Points to %s of %d bytes", typeName, f.Size),
			}}

		case check.RangeCopy:
			diagnostic.Message = fmt.Sprintf("Range value '%s' copies %d bytes and is never mutated, consider indexing (ro:%s)", f.Ident.Name, f.Size, f.Kind)
			diagnostic.Related = []analysis.RelatedInformation{{
				Pos:     f.Related.Pos(),
				End:     f.Related.End(),
				Message: fmt.Sprintf("Elements of type %s", typeName),
			}}

		default:
			astutil.InternalError(p, f.Ident, "Unknown finding kind %s", f.Kind)

			continue
		}

		p.Report(diagnostic)
	}
}

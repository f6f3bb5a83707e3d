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

package astutil

import (
	"go/ast"
	"iter"
)

// AllNamedParams yields the named, non-blank identifiers of a parameter list with their fields.
func AllNamedParams(fields *ast.FieldList) iter.Seq2[*ast.Field, *ast.Ident] {
	return func(yield func(*ast.Field, *ast.Ident) bool) {
		if fields == nil {
			return
		}

		for _, field := range fields.List {
			for _, id := range field.Names {
				if id.Name == "_" {
					continue // blank identifier
				}

				if !yield(field, id) {
					return
				}
			}
		}
	}
}

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

// Package check finds parameters and range values that are never mutated through.
package check

import (
	"go/ast"
	"go/types"
)

// Finding is a variable that is copied or referenced where the other form would do.
type Finding struct {
	// Kind classifies the finding.
	Kind Kind

	// Ident is the declaring identifier of the parameter or range value.
	Ident *ast.Ident

	// Type is the type of the referenced or copied value.
	Type types.Type

	// Size is the size of Type in bytes.
	Size int64

	// Related is the type expression of the parameter or the range operand.
	Related ast.Node
}

// Config is shared by the checks of a [Checker].
type Config struct {
	// Sizes computes type sizes for the target platform.
	Sizes types.Sizes

	// MaxSize is the size in bytes separating small from large values.
	MaxSize int64
}

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

import "go/types"

// hasPointees reports whether values of type t refer to memory outside themselves.
// Interfaces and type parameters count, since they may hold pointers.
func hasPointees(t types.Type) bool {
	if t == nil {
		return false
	}

	switch u := t.Underlying().(type) {
	case *types.Pointer, *types.Slice, *types.Map, *types.Interface:
		return true

	case *types.Basic:
		return u.Kind() == types.UnsafePointer

	case *types.Array:
		return u.Len() > 0 && hasPointees(u.Elem())

	case *types.Struct:
		for i := range u.NumFields() {
			if hasPointees(u.Field(i).Type()) {
				return true
			}
		}

	case *types.Tuple:
		for i := range u.Len() {
			if hasPointees(u.At(i).Type()) {
				return true
			}
		}
	}

	return false
}

func isPointer(t types.Type) bool {
	if t == nil {
		return false
	}

	_, ok := t.Underlying().(*types.Pointer)

	return ok
}

func isArray(t types.Type) bool {
	if t == nil {
		return false
	}

	_, ok := t.Underlying().(*types.Array)

	return ok
}

func isMap(t types.Type) bool {
	if t == nil {
		return false
	}

	_, ok := t.Underlying().(*types.Map)

	return ok
}

func isString(t types.Type) bool {
	if t == nil {
		return false
	}

	b, ok := t.Underlying().(*types.Basic)

	return ok && b.Info()&types.IsString != 0
}

func isUnsafePointer(t types.Type) bool {
	if t == nil {
		return false
	}

	b, ok := t.Underlying().(*types.Basic)

	return ok && b.Kind() == types.UnsafePointer
}

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

// Package analyzer implements the readonly static analysis pass.
//
// # Overview
//
// Readonly uses the [fillmore-labs.com/readonly/mutation] engine to find values
// that are never mutated, where a cheaper form would be equivalent.
//
// # Pointer Parameters (ro:ptr)
//
// A pointer parameter of an unexported function is reported when the function
// never writes through it and the pointee is small:
//
//	func area(r *rect) int { // Parameter 'r' is never mutated through
//	    return r.w * r.h
//	}
//
// Calls to functions defined in the same package are followed, so forwarding
// the pointer to a function that only reads keeps the parameter read-only.
// Parameters compared for identity, functions used as values and pointees
// holding a lock are skipped.
//
// # Range Copies (ro:rng)
//
// A range loop over a local slice or array is reported when each iteration
// copies a large element into a variable that is never mutated:
//
//	for _, m := range matrices { // Range value 'm' copies 512 bytes
//	    total += m[0][0]
//	}
//
// Indexing the operand avoids the copy.
//
// # Flags
//
//   - -params, -range: enable the checks (default true)
//   - -max-size: size in bytes separating small from large values (default 128)
//   - -escapes: treat pointers leaving a function as mutated (default true)
//   - -readonly: additional read-only functions, like "(*pkg.T).Get" or "Get"
//   - -generated: check generated files
package analyzer

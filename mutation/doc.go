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

// Package mutation decides whether a Go value is modified within a syntax subtree.
//
// # Overview
//
// An [Analyzer] answers two questions for an expression or a variable below a
// fixed root node:
//
//   - Is the value itself modified (assigned, incremented, its address taken
//     and written through, a pointer method called on it)?
//   - Is anything the value refers to modified (the target of a pointer, the
//     elements of a slice or map, the fields reached through them)?
//
// Each answer is a witness: the node performing the mutation, or nil.
//
// # Example
//
//	func fill(p *[4]int) {
//	    for i := range p {
//	        p[i] = i // witness for the pointee mutation of p
//	    }
//	}
//
// # Cross-Procedural Results
//
// When a reference is passed to a function whose body is part of the analyzed
// package, the callee's body decides. A [Cache] keeps one [FuncAnalyzer] per
// function, so parameter facts are computed once and shared by every analyzer
// created from the same cache. Mutually recursive functions terminate: a
// parameter query in progress reads as "not mutated", and that answer stays
// cached for the inner function. Inside a recursive cycle the result for a
// parameter can therefore depend on which function was queried first.
//
// # Conservative Fallbacks
//
// References escaping to locations the analyzer does not follow (returned,
// sent on a channel, stored through another reference, converted to
// [unsafe.Pointer], passed to a function without a body) count as mutated,
// except for functions in the [ReadOnlySet] of the [Policy]. Code that is never
// evaluated, like the operand of [unsafe.Sizeof], never mutates.
//
// Channels are not treated as references: sending on or closing a channel
// does not mutate the channel variable or anything it refers to.
package mutation

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

package check

// Kind classifies a [Finding]. Its string form is the diagnostic category.
type Kind uint8

//go:generate go tool stringer -type Kind -linecomment
const (
	// ParamByValue is a pointer parameter whose pointee is never mutated.
	// The pointee is small enough to be passed by value.
	ParamByValue Kind = iota // ptr

	// RangeCopy is a range value copying a large element that is never mutated.
	// Indexing the range operand avoids the copy.
	RangeCopy // rng
)

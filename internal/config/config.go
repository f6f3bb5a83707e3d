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

// Package config holds the flag sets configuring the readonly checks.
package config

// Checks selects the reported findings.
type Checks uint8

const (
	// ParamCheck reports pointer parameters that could be passed by value.
	ParamCheck Checks = 1 << iota

	// RangeCheck reports range loops copying large elements that are never mutated.
	RangeCheck
)

// Behavior adjusts how the checks treat code.
type Behavior uint8

const (
	// IncludeGenerated specifies whether to include analysis of generated files.
	IncludeGenerated Behavior = 1 << iota

	// ConservativeEscapes treats references leaving the analyzed function as mutated.
	ConservativeEscapes
)

// BitMask is a set of binary flags of type T.
type BitMask[T ~uint8 | ~uint16 | ~uint32 | ~uint64] struct {
	value T
}

// NewBitMask creates a [BitMask] with the specified flags enabled.
func NewBitMask[T ~uint8 | ~uint16 | ~uint32 | ~uint64](flags ...T) BitMask[T] {
	var b BitMask[T]
	for _, flag := range flags {
		b.Enable(flag)
	}

	return b
}

// Set enables or disables flag.
func (b *BitMask[T]) Set(flag T, value bool) {
	if value {
		b.Enable(flag)
	} else {
		b.Disable(flag)
	}
}

// Enable sets flag.
func (b *BitMask[T]) Enable(flag T) {
	b.value |= flag
}

// Disable clears flag.
func (b *BitMask[T]) Disable(flag T) {
	b.value &^= flag
}

// Enabled reports whether any bit of flag is set.
func (b BitMask[T]) Enabled(flag T) bool {
	return b.value&flag != 0
}

// Empty reports whether no flag is set.
func (b BitMask[T]) Empty() bool {
	return b.value == 0
}

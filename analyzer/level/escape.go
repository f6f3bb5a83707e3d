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

// Package level defines textual configuration levels.
package level

import (
	"fmt"
	"strings"
)

// Escape specifies how pointers leaving a function are treated.
type Escape uint8

const (
	// EscapeConservative treats returned, sent or stored pointers as mutated.
	EscapeConservative Escape = iota

	// EscapeIgnore assumes escaping pointers are not mutated.
	EscapeIgnore
)

// Conservative reports whether escaping pointers count as mutated.
func (o Escape) Conservative() bool { return o == EscapeConservative }

// MarshalText implements [encoding.TextMarshaler].
func (o Escape) MarshalText() ([]byte, error) {
	switch o {
	case EscapeConservative:
		return []byte("conservative"), nil

	case EscapeIgnore:
		return []byte("ignore"), nil

	default:
		return nil, fmt.Errorf("unknown escape level %d", o)
	}
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (o *Escape) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "", "true", "on", "conservative":
		*o = EscapeConservative

	case "ignore", "off", "false":
		*o = EscapeIgnore

	default:
		return fmt.Errorf("unknown escape level %q", string(text))
	}

	return nil
}

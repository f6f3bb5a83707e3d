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

package gclplugin

import (
	readonly "fillmore-labs.com/readonly/analyzer"
	"fillmore-labs.com/readonly/analyzer/level"
)

// Settings represents the configuration options for an instance of the [Plugin].
type Settings struct {
	// Params enables pointer parameter checks.
	Params *bool `json:"params,omitzero"`
	// Range enables range copy checks.
	Range *bool `json:"range,omitzero"`
	// Escapes selects how pointers leaving a function are treated.
	Escapes *level.Escape `json:"escapes,omitzero"`
	// MaxSize sets the size in bytes separating small from large values.
	MaxSize *int64 `json:"max-size,omitzero"`
	// ReadOnly lists additional functions and accessor methods that do not mutate their arguments.
	ReadOnly []string `json:"readonly,omitzero"`
}

// Options converts [Settings] into a list of [readonly.Option] for the readonly analyzer.
// It processes settings and applies them only when explicitly set (non-nil).
func (s Settings) Options() []readonly.Option {
	var opts []readonly.Option

	opts = appendOption(opts, s.Params, readonly.WithParams)
	opts = appendOption(opts, s.Range, readonly.WithRange)
	opts = appendOption(opts, s.Escapes, func(e level.Escape) readonly.Option { return readonly.WithEscapes(e.Conservative()) })
	opts = appendOption(opts, s.MaxSize, readonly.WithMaxSize)

	if len(s.ReadOnly) > 0 {
		opts = append(opts, readonly.WithReadOnly(s.ReadOnly...))
	}

	return opts
}

// appendOption appends a non-nil setting to a [readonly.Option] list.
func appendOption[T any](opts []readonly.Option, value *T, constructor func(T) readonly.Option) []readonly.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}

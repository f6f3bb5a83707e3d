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

package run

import "fillmore-labs.com/readonly/internal/config"

// Options represent configuration options for the readonly analyzer.
type Options struct {
	// Checks selects the enabled checks.
	Checks config.BitMask[config.Checks]

	// Behavior holds behavioral options.
	Behavior config.BitMask[config.Behavior]

	// MaxSize is the size in bytes separating small values, passed by value,
	// from large values, better referenced.
	MaxSize int64

	// ReadOnly lists additional functions and accessor methods that do not mutate their arguments.
	ReadOnly []string
}

// DefaultMaxSize is the default for [Options.MaxSize].
const DefaultMaxSize = 128

// DefaultOptions initializes and returns a new Options instance with default values.
func DefaultOptions() *Options {
	return &Options{
		Checks:   config.NewBitMask(config.ParamCheck | config.RangeCheck),
		Behavior: config.NewBitMask(config.ConservativeEscapes),
		MaxSize:  DefaultMaxSize,
	}
}

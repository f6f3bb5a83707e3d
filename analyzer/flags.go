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

package analyzer

import (
	"flag"

	"fillmore-labs.com/readonly/internal/config"
	"fillmore-labs.com/readonly/internal/run"
)

// registerFlags binds the [run.Options] values to command line flag values.
// A nil flag set value defaults to the program's command line.
func registerFlags(flags *flag.FlagSet, r *run.Options) {
	if flags == nil {
		flags = flag.CommandLine
	}

	flags.Var(newChecksValue(&r.Checks, config.ParamCheck), "params", "check pointer parameters")
	flags.Var(newChecksValue(&r.Checks, config.RangeCheck), "range", "check range loop copies")
	flags.Var(newBehaviorValue(&r.Behavior, config.IncludeGenerated), "generated", "check generated files")
	flags.Var(newBehaviorValue(&r.Behavior, config.ConservativeEscapes), "escapes", "treat pointers leaving a function as mutated")
	flags.Int64Var(&r.MaxSize, "max-size", r.MaxSize, "maximum size in bytes of values passed by value")
	flags.Var(listValue{list: &r.ReadOnly}, "readonly", "comma separated list of additional read-only functions")
}

func newChecksValue(b *config.BitMask[config.Checks], value config.Checks) boolValue[config.Checks, *config.BitMask[config.Checks]] {
	return boolValue[config.Checks, *config.BitMask[config.Checks]]{flags: b, value: value}
}

func newBehaviorValue(b *config.BitMask[config.Behavior], value config.Behavior) boolValue[config.Behavior, *config.BitMask[config.Behavior]] {
	return boolValue[config.Behavior, *config.BitMask[config.Behavior]]{flags: b, value: value}
}

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

package config_test

import (
	"testing"

	. "fillmore-labs.com/readonly/internal/config"
)

func TestBitMask(t *testing.T) {
	t.Parallel()

	b := NewBitMask(ParamCheck)

	if !b.Enabled(ParamCheck) || b.Enabled(RangeCheck) {
		t.Errorf("Expected only %d to be enabled", ParamCheck)
	}

	b.Set(RangeCheck, true)
	b.Set(ParamCheck, false)

	if b.Enabled(ParamCheck) || !b.Enabled(RangeCheck) {
		t.Errorf("Expected only %d to be enabled", RangeCheck)
	}

	b.Disable(RangeCheck)

	if !b.Empty() {
		t.Error("Expected empty bitmask")
	}
}

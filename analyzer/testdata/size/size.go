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

package size

type pair struct{ a, b int32 }

type triple struct{ a, b, c int32 }

func first(p *pair) int32 { // want "Parameter 'p' is never mutated through"
	return p.a
}

func second(t *triple) int32 {
	return t.b
}

func total(ts []triple) int32 {
	var n int32
	for _, t := range ts { // want "Range value 't' copies 12 bytes"
		n += t.a
	}

	return n
}

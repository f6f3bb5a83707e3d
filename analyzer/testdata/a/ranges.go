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

package a

type matrix [8][8]int64

func diagonal(ms []matrix) int64 {
	var t int64
	for _, m := range ms { // want "Range value 'm' copies 512 bytes and is never mutated, consider indexing"
		t += m[0][0]
	}

	return t
}

func scale(ms []matrix) int64 {
	var t int64
	for _, m := range ms {
		m[0][0] *= 2
		t += m[0][0]
	}

	return t
}

func update(ms []matrix) {
	for i, m := range ms {
		ms[i][0][0] = m[1][1]
	}
}

func small(ps []point) int {
	n := 0
	for _, p := range ps {
		n += p.x
	}

	return n
}

func closure(ms []matrix) []func() int64 {
	var fs []func() int64
	for _, m := range ms {
		fs = append(fs, func() int64 { return m[0][0] })
	}

	return fs
}

func indexed(ms *[4]matrix) int64 {
	var t int64
	for i := range ms {
		t += ms[i][0][0]
	}

	return t
}

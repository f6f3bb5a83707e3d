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

package mutation

// Analyzed returns the number of function analyzers created by c.
func (c *Cache) Analyzed() int {
	n := 0

	for _, f := range c.funcs {
		if f != nil {
			n++
		}
	}

	return n
}

// Evaluated returns the number of memoized computations performed by a.
func (a *Analyzer) Evaluated() int {
	return a.evaluated
}

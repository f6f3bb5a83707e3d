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

import "sync"

type point struct{ x, y int }

type big [64]int64

type guarded struct {
	mu sync.Mutex
	n  int
}

func length(p *point) int { // want "Parameter 'p' is never mutated through and can be passed by value"
	return p.x*p.x + p.y*p.y
}

func move(p *point, dx int) {
	p.x += dx
}

func sum(b *big) int64 {
	return b[0] + b[1]
}

func count(g *guarded) int {
	return g.n
}

func same(p, q *point) bool {
	return p == q
}

func forward(p *point) int { // want "Parameter 'p' is never mutated through and can be passed by value"
	return length(p)
}

func reset(p *point) {
	move(p, -p.x)
}

func keep(p *point) *point {
	return p
}

func (p *point) scaled(f int) point {
	return point{p.x * f, p.y * f}
}

var _ = callback

func callback(p *point) int {
	return p.x
}

//nolint:readonly
func ignored(p *point) int {
	return p.y
}

func inline(p *point) int { //nolint:readonly
	return p.x
}

// Length is exported and keeps its signature.
func Length(p *point) int {
	return length(p) + forward(p) + p.scaled(2).x
}

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

package mutation_test

import (
	"go/ast"
	"go/types"
	"math/rand/v2"
	"slices"
	"strings"
	"testing"

	"fillmore-labs.com/readonly/internal/testsource"
	. "fillmore-labs.com/readonly/mutation"
)

// rotation returns a function rotating three pointers reps times.
func rotation(reps int, tail string) string {
	var b strings.Builder

	b.WriteString("func f() { x0, x1, x2 := new(int), new(int), new(int); ")

	for range reps {
		b.WriteString("x0 = x1; x1 = x2; x2 = x0; ")
	}

	b.WriteString(tail)
	b.WriteString(" }")

	return b.String()
}

func TestAliasCycleCost(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		src      string
		variable string
		mutated  bool
		budget   func(nodes int) int
	}{
		{
			name:     "unmutated",
			src:      rotation(6, ""),
			variable: "x0",
			budget:   func(nodes int) int { return 2 * nodes },
		},
		{
			name:     "mutated",
			src:      rotation(6, "*x2 = 1"),
			variable: "x0",
			mutated:  true,
			budget:   func(nodes int) int { return nodes * nodes },
		},
		{
			name: "clique",
			src: `func f() {
				a, b, c, d := new(int), new(int), new(int), new(int)
				a = b; a = c; a = d; b = a; b = c; b = d
				c = a; c = b; c = d; d = a; d = b; d = c
			}`,
			variable: "a",
			budget:   func(nodes int) int { return 2 * nodes },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := newFixture(t, tt.src, DefaultPolicy())
			a := f.analyzer(t, "f")

			if got := a.IsVarPointeeMutated(f.variable(t, tt.variable)); got != tt.mutated {
				t.Errorf("IsVarPointeeMutated(%s) = %t, want %t", tt.variable, got, tt.mutated)
			}

			nodes := 0
			for range a.Root().Preorder() {
				nodes++
			}

			if got, limit := a.Evaluated(), tt.budget(nodes); got > limit {
				t.Errorf("Got %d evaluations for %d nodes, want at most %d", got, nodes, limit)
			}
		})
	}
}

// varUses returns the variable references in the body of f in preorder.
func (f *fixture) varUses(tb testing.TB) []*ast.Ident {
	tb.Helper()

	var ids []*ast.Ident

	for c := range testsource.FuncBody(tb, f.in, "f").Preorder((*ast.Ident)(nil)) {
		id := c.Node().(*ast.Ident)
		if _, ok := f.info.Uses[id].(*types.Var); ok {
			ids = append(ids, id)
		}
	}

	return ids
}

type mutations struct{ direct, pointee bool }

func TestQueryOrder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
	}{
		{name: "alias", src: `func f() { x := new(int); y := x; x = y; *y = 1 }`},
		{name: "rotation", src: rotation(2, "")},
		{name: "rotation_mutated", src: rotation(2, "*x1 = 1")},
		{name: "slices", src: `func f() { s := []int{1}; t := s; s = t; t[0] = 2 }`},
		{name: "double_pointer", src: `func f() { p := new(int); q := &p; *q = p; **q = 1 }`},
		{name: "range", src: `func f() { v := []int{1}; w := v; for i := range w { v = w; w[i] = 0 } }`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			n := len(newFixture(t, tt.src, DefaultPolicy()).varUses(t))

			want := make([]mutations, n)
			for i := range n {
				f := newFixture(t, tt.src, DefaultPolicy())
				a, id := f.analyzer(t, "f"), f.varUses(t)[i]
				want[i] = mutations{direct: a.IsMutated(id), pointee: a.IsPointeeMutated(id)}
			}

			forward := make([]int, n)
			for i := range n {
				forward[i] = i
			}

			backward := slices.Clone(forward)
			slices.Reverse(backward)

			orders := [][]int{forward, backward}
			for seed := range uint64(4) {
				order := slices.Clone(forward)
				rand.New(rand.NewPCG(1, seed)).Shuffle(n, func(i, j int) { order[i], order[j] = order[j], order[i] })
				orders = append(orders, order)
			}

			for _, order := range orders {
				f := newFixture(t, tt.src, DefaultPolicy())
				a, ids := f.analyzer(t, "f"), f.varUses(t)

				for _, i := range order {
					got := mutations{pointee: a.IsPointeeMutated(ids[i]), direct: a.IsMutated(ids[i])}
					if got != want[i] {
						t.Errorf("Order %v: reference %d (%s) = %+v, want %+v", order, i, ids[i].Name, got, want[i])
					}
				}
			}
		})
	}
}

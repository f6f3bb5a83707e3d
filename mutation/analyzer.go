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

import (
	"go/ast"
	"go/token"
	"go/types"
	"math"

	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/readonly/internal/astutil"
)

// Analyzer answers mutation queries for expressions and variables below one root node.
//
// Results are memoized per expression, so repeated queries over the same root are cheap.
// An Analyzer is not safe for concurrent use.
type Analyzer struct {
	cache *Cache
	root  inspector.Cursor

	// fn is the function whose body is root, if any.
	fn *FuncAnalyzer

	// refs maps variables to their references below root, in preorder.
	refs map[*types.Var][]inspector.Cursor

	results        resultMap
	pointeeResults resultMap

	// depth is the number of memoized queries in progress.
	depth int
	// low is the smallest depth of an in-progress query read by the current computation.
	low int
	// tentative holds negative results waiting for an enclosing query to complete.
	tentative []tentativeResult

	// evaluated counts memoized computations.
	evaluated int
}

// resultMap maps an expression to its witness.
// A present [astutil.InvalidNode] is a computed "no mutation".
type resultMap struct {
	witness map[astutil.NodeIndex]astutil.NodeIndex
	// pending holds the depth of queries still in progress.
	pending map[astutil.NodeIndex]int
	// tentative holds the low depth of negatives not yet committed.
	tentative map[astutil.NodeIndex]int
}

type tentativeResult struct {
	results resultMap
	idx     astutil.NodeIndex
}

func makeResultMap() resultMap {
	return resultMap{
		witness:   make(map[astutil.NodeIndex]astutil.NodeIndex),
		pending:   make(map[astutil.NodeIndex]int),
		tentative: make(map[astutil.NodeIndex]int),
	}
}

func newAnalyzer(cache *Cache, root inspector.Cursor, fn *FuncAnalyzer) *Analyzer {
	return &Analyzer{
		cache:          cache,
		root:           root,
		fn:             fn,
		results:        makeResultMap(),
		pointeeResults: makeResultMap(),
		low:            math.MaxInt,
	}
}

// Root returns the root node of this analyzer.
func (a *Analyzer) Root() inspector.Cursor {
	return a.root
}

// FindMutation returns the node mutating e, or nil if e is not mutated below the root.
func (a *Analyzer) FindMutation(e ast.Expr) ast.Node {
	c, ok := a.cursor(e)
	if !ok {
		return nil
	}

	return a.node(a.exprMutation(c))
}

// FindVarMutation returns the first node mutating v below the root in preorder, or nil.
func (a *Analyzer) FindVarMutation(v *types.Var) ast.Node {
	if v == nil {
		return nil
	}

	return a.node(a.varMutation(v))
}

// FindPointeeMutation returns the node mutating something e refers to, or nil.
func (a *Analyzer) FindPointeeMutation(e ast.Expr) ast.Node {
	c, ok := a.cursor(e)
	if !ok {
		return nil
	}

	return a.node(a.pointeeMutation(c))
}

// FindVarPointeeMutation returns the first node mutating something v refers to, or nil.
func (a *Analyzer) FindVarPointeeMutation(v *types.Var) ast.Node {
	if v == nil {
		return nil
	}

	return a.node(a.varPointeeMutation(v))
}

// IsMutated reports whether e is mutated below the root.
func (a *Analyzer) IsMutated(e ast.Expr) bool { return a.FindMutation(e) != nil }

// IsVarMutated reports whether v is mutated below the root.
func (a *Analyzer) IsVarMutated(v *types.Var) bool { return a.FindVarMutation(v) != nil }

// IsPointeeMutated reports whether something e refers to is mutated below the root.
func (a *Analyzer) IsPointeeMutated(e ast.Expr) bool { return a.FindPointeeMutation(e) != nil }

// IsVarPointeeMutated reports whether something v refers to is mutated below the root.
func (a *Analyzer) IsVarPointeeMutated(v *types.Var) bool { return a.FindVarPointeeMutation(v) != nil }

func (a *Analyzer) cursor(e ast.Expr) (inspector.Cursor, bool) {
	if e == nil {
		return inspector.Cursor{}, false
	}

	return a.root.FindNode(e)
}

func (a *Analyzer) node(w astutil.NodeIndex) ast.Node {
	return w.Node(a.cache.in)
}

func (a *Analyzer) exprMutation(c inspector.Cursor) astutil.NodeIndex {
	return a.memoized(c, directFinders, a.results)
}

func (a *Analyzer) pointeeMutation(c inspector.Cursor) astutil.NodeIndex {
	if !hasPointees(a.typeOf(c)) {
		return astutil.InvalidNode
	}

	return a.memoized(c, pointeeFinders, a.pointeeResults)
}

func (a *Analyzer) varMutation(v *types.Var) astutil.NodeIndex {
	return a.tryEachRef(v, a.exprMutation)
}

func (a *Analyzer) varPointeeMutation(v *types.Var) astutil.NodeIndex {
	if !hasPointees(v.Type()) {
		return astutil.InvalidNode
	}

	return a.tryEachRef(v, a.pointeeMutation)
}

// tryEachRef returns the first witness found for a reference to v.
func (a *Analyzer) tryEachRef(v *types.Var, query func(inspector.Cursor) astutil.NodeIndex) astutil.NodeIndex {
	for _, ref := range a.references(v) {
		if w := query(ref); w.Valid() {
			return w
		}
	}

	return astutil.InvalidNode
}

// memoized runs finders on c until one produces an evaluated witness.
//
// A provisional "no mutation" is recorded before the finders run, so a query
// reaching c again while c is in progress terminates. A negative result that
// read the provisional entry of an enclosing query stays tentative: it is
// committed when that query completes without mutation, and discarded when
// a mutation is found.
func (a *Analyzer) memoized(c inspector.Cursor, finders []finder, results resultMap) astutil.NodeIndex {
	idx := astutil.NodeIndexOf(c)
	if w, ok := results.witness[idx]; ok {
		if d, busy := results.pending[idx]; busy {
			a.low = min(a.low, d)
		} else if d, waiting := results.tentative[idx]; waiting {
			a.low = min(a.low, d)
		}

		return w
	}

	if a.unevaluated(c) {
		results.witness[idx] = astutil.InvalidNode

		return astutil.InvalidNode
	}

	a.evaluated++
	a.depth++
	depth, outerLow, mark := a.depth, a.low, len(a.tentative)
	a.low = math.MaxInt
	results.witness[idx] = astutil.InvalidNode
	results.pending[idx] = depth

	w := a.findFirst(c, finders)

	delete(results.pending, idx)
	a.depth--

	switch {
	case w.Valid():
		// Tentative results above mark may have read c as unmutated.
		a.resolveTentative(mark, false)
		results.witness[idx] = w
		a.low = outerLow

	case a.low >= depth:
		a.resolveTentative(mark, true)
		a.low = outerLow

	default:
		results.tentative[idx] = a.low
		a.tentative = append(a.tentative, tentativeResult{results: results, idx: idx})
		a.low = min(outerLow, a.low)
	}

	return w
}

// resolveTentative commits or discards the tentative results above mark.
func (a *Analyzer) resolveTentative(mark int, commit bool) {
	for _, t := range a.tentative[mark:] {
		delete(t.results.tentative, t.idx)

		if !commit {
			delete(t.results.witness, t.idx)
		}
	}

	clear(a.tentative[mark:])
	a.tentative = a.tentative[:mark]
}

// findFirst returns the first evaluated witness produced by finders, or [astutil.InvalidNode].
func (a *Analyzer) findFirst(c inspector.Cursor, finders []finder) astutil.NodeIndex {
	for _, find := range finders {
		if w := find(a, c); w.Valid() && !a.unevaluated(w.Cursor(a.cache.in)) {
			return w
		}
	}

	return astutil.InvalidNode
}

func (a *Analyzer) unevaluated(c inspector.Cursor) bool {
	return IsUnevaluated(a.cache.info, c, a.root)
}

// references returns all uses of v below the root in preorder.
func (a *Analyzer) references(v *types.Var) []inspector.Cursor {
	if a.refs == nil {
		a.refs = make(map[*types.Var][]inspector.Cursor)

		for c := range a.root.Preorder((*ast.Ident)(nil)) {
			if kind, _ := c.ParentEdge(); kind == edge.SelectorExpr_Sel {
				continue // field or method name
			}

			if use, ok := a.cache.info.Uses[c.Node().(*ast.Ident)].(*types.Var); ok {
				a.refs[use] = append(a.refs[use], c)
			}
		}
	}

	return a.refs[v]
}

// isLocal reports whether every use of v is visible to this analyzer.
func (a *Analyzer) isLocal(v *types.Var) bool {
	if a.fn != nil && a.fn.isParam(v) {
		return true
	}

	return contains(a.root, v.Pos())
}

// contains reports whether pos lies within root. The inspector root spans all its files.
func contains(root inspector.Cursor, pos token.Pos) bool {
	if n := root.Node(); n != nil {
		return n.Pos() <= pos && pos < n.End()
	}

	for file := range root.Children() {
		if contains(file, pos) {
			return true
		}
	}

	return false
}

// parentOf returns the nearest ancestor of c that is not a parenthesis, together
// with the edge leading to it. It does not leave the root.
func (a *Analyzer) parentOf(c inspector.Cursor) (inspector.Cursor, edge.Kind, int) {
	for c != a.root {
		kind, index := c.ParentEdge()

		c = c.Parent()
		if kind != edge.ParenExpr_X {
			return c, kind, index
		}
	}

	return a.root, edge.Invalid, -1
}

func (a *Analyzer) typeOf(c inspector.Cursor) types.Type {
	e, ok := c.Node().(ast.Expr)
	if !ok {
		return nil
	}

	return a.cache.info.TypeOf(e)
}

// escape is the witness for a reference leaving the analyzed code at site.
func (a *Analyzer) escape(site inspector.Cursor) astutil.NodeIndex {
	if !a.cache.policy.Escapes {
		return astutil.InvalidNode
	}

	return astutil.NodeIndexOf(site)
}

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

	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"
	"golang.org/x/tools/go/types/typeutil"

	"fillmore-labs.com/readonly/internal/astutil"
)

// finder looks at the context of a candidate expression and returns the node mutating it,
// or [astutil.InvalidNode].
type finder func(a *Analyzer, c inspector.Cursor) astutil.NodeIndex

// The finder lists refer back to the analyzer, so they are set up in init.
var directFinders, pointeeFinders []finder

func init() {
	directFinders = []finder{
		findAssignment,
		findMemberCall,
		findComponent,
		findAddressTaken,
	}

	pointeeFinders = []finder{
		findDereference,
		findAlias,
		findPointeeMemberCall,
		findBinding,
		findArgument,
		findRange,
	}
}

// findAssignment matches c as the target of an assignment, increment or range clause.
func findAssignment(a *Analyzer, c inspector.Cursor) astutil.NodeIndex {
	p, kind, _ := a.parentOf(c)

	switch kind {
	case edge.AssignStmt_Lhs:
		if p.Node().(*ast.AssignStmt).Tok == token.DEFINE {
			if id, ok := c.Node().(*ast.Ident); ok && a.cache.info.Defs[id] != nil {
				return astutil.InvalidNode // declaration, not redeclaration
			}
		}

		return astutil.NodeIndexOf(p)

	case edge.IncDecStmt_X:
		return astutil.NodeIndexOf(p)

	case edge.RangeStmt_Key, edge.RangeStmt_Value:
		if p.Node().(*ast.RangeStmt).Tok == token.ASSIGN {
			return astutil.NodeIndexOf(p)
		}
	}

	return astutil.InvalidNode
}

// findMemberCall matches c as the addressable receiver of a pointer method.
func findMemberCall(a *Analyzer, c inspector.Cursor) astutil.NodeIndex {
	p, kind, _ := a.parentOf(c)
	if kind != edge.SelectorExpr_X {
		return astutil.InvalidNode
	}

	sel, ok := a.cache.info.Selections[p.Node().(*ast.SelectorExpr)]
	if !ok || sel.Kind() != types.MethodVal || sel.Indirect() || isPointer(a.typeOf(c)) {
		return astutil.InvalidNode
	}

	fn, ok := sel.Obj().(*types.Func)
	if !ok || !isPointer(fn.Signature().Recv().Type()) {
		return astutil.InvalidNode
	}

	return a.methodMutation(fn, p)
}

// findComponent matches c as the value holding an array element or struct field.
func findComponent(a *Analyzer, c inspector.Cursor) astutil.NodeIndex {
	p, kind, _ := a.parentOf(c)

	switch kind {
	case edge.IndexExpr_X:
		if isArray(a.typeOf(c)) {
			return a.exprMutation(p)
		}

	case edge.SelectorExpr_X:
		sel, ok := a.cache.info.Selections[p.Node().(*ast.SelectorExpr)]
		if ok && sel.Kind() == types.FieldVal && !sel.Indirect() {
			return a.exprMutation(p)
		}

	case edge.SliceExpr_X:
		if isArray(a.typeOf(c)) {
			return a.pointeeMutation(p)
		}
	}

	return astutil.InvalidNode
}

// findAddressTaken matches c as the operand of &.
func findAddressTaken(a *Analyzer, c inspector.Cursor) astutil.NodeIndex {
	p, kind, _ := a.parentOf(c)
	if kind != edge.UnaryExpr_X || p.Node().(*ast.UnaryExpr).Op != token.AND {
		return astutil.InvalidNode
	}

	return a.pointeeMutation(p)
}

// findDereference matches c as the operand of a dereference, an indirect field selection,
// an index or a slice expression.
func findDereference(a *Analyzer, c inspector.Cursor) astutil.NodeIndex {
	p, kind, _ := a.parentOf(c)

	switch kind {
	case edge.StarExpr_X:
		return a.componentMutation(p, true)

	case edge.SelectorExpr_X:
		sel, ok := a.cache.info.Selections[p.Node().(*ast.SelectorExpr)]
		if ok && sel.Kind() == types.FieldVal {
			return a.componentMutation(p, sel.Indirect())
		}

	case edge.IndexExpr_X:
		t := a.typeOf(c)
		if t == nil {
			return astutil.InvalidNode
		}

		switch t.Underlying().(type) {
		case *types.Slice, *types.Map, *types.Pointer, *types.Interface:
			return a.componentMutation(p, true)

		case *types.Array:
			return a.componentMutation(p, false)
		}

	case edge.SliceExpr_X:
		if !isString(a.typeOf(c)) {
			return a.pointeeMutation(p)
		}
	}

	return astutil.InvalidNode
}

// findAlias matches c as the operand of an expression sharing its pointees.
func findAlias(a *Analyzer, c inspector.Cursor) astutil.NodeIndex {
	p, kind, _ := a.parentOf(c)

	switch kind {
	case edge.TypeAssertExpr_X:
		if p.Node().(*ast.TypeAssertExpr).Type == nil {
			return a.typeSwitchMutation(p)
		}

		return a.pointeeMutation(p)

	case edge.CompositeLit_Elts:
		return a.pointeeMutation(p)

	case edge.KeyValueExpr_Key, edge.KeyValueExpr_Value:
		if lit, kind, _ := a.parentOf(p); kind == edge.CompositeLit_Elts {
			return a.pointeeMutation(lit)
		}

	case edge.CallExpr_Args:
		tv, ok := a.cache.info.Types[p.Node().(*ast.CallExpr).Fun]
		if !ok || !tv.IsType() {
			return astutil.InvalidNode
		}

		if isUnsafePointer(tv.Type) {
			return astutil.NodeIndexOf(p)
		}

		return a.pointeeMutation(p)

	case edge.UnaryExpr_X:
		if p.Node().(*ast.UnaryExpr).Op == token.AND {
			return a.pointeeMutation(p)
		}
	}

	return astutil.InvalidNode
}

// findPointeeMemberCall matches c as the receiver of any method.
func findPointeeMemberCall(a *Analyzer, c inspector.Cursor) astutil.NodeIndex {
	p, kind, _ := a.parentOf(c)
	if kind != edge.SelectorExpr_X {
		return astutil.InvalidNode
	}

	sel, ok := a.cache.info.Selections[p.Node().(*ast.SelectorExpr)]
	if !ok || sel.Kind() != types.MethodVal {
		return astutil.InvalidNode
	}

	fn, ok := sel.Obj().(*types.Func)
	if !ok {
		return astutil.InvalidNode
	}

	return a.methodMutation(fn, p)
}

// findBinding matches c as a value stored somewhere else.
func findBinding(a *Analyzer, c inspector.Cursor) astutil.NodeIndex {
	p, kind, index := a.parentOf(c)

	switch kind {
	case edge.AssignStmt_Rhs:
		as := p.Node().(*ast.AssignStmt)
		if as.Tok != token.DEFINE && as.Tok != token.ASSIGN {
			return astutil.InvalidNode
		}

		if len(as.Lhs) == len(as.Rhs) {
			return a.storeMutation(p.ChildAt(edge.AssignStmt_Lhs, index), p)
		}

		for i := range as.Lhs {
			if w := a.storeMutation(p.ChildAt(edge.AssignStmt_Lhs, i), p); w.Valid() {
				return w
			}
		}

	case edge.ValueSpec_Values:
		vs := p.Node().(*ast.ValueSpec)
		if len(vs.Names) == len(vs.Values) {
			return a.storeMutation(p.ChildAt(edge.ValueSpec_Names, index), p)
		}

		for i := range vs.Names {
			if w := a.storeMutation(p.ChildAt(edge.ValueSpec_Names, i), p); w.Valid() {
				return w
			}
		}

	case edge.ReturnStmt_Results, edge.SendStmt_Value:
		return a.escape(p)
	}

	return astutil.InvalidNode
}

// findArgument matches c as an argument of a function call.
func findArgument(a *Analyzer, c inspector.Cursor) astutil.NodeIndex {
	p, kind, index := a.parentOf(c)
	if kind != edge.CallExpr_Args {
		return astutil.InvalidNode
	}

	call := p.Node().(*ast.CallExpr)
	if tv, ok := a.cache.info.Types[call.Fun]; ok && tv.IsType() {
		return astutil.InvalidNode // conversion
	}

	switch fn := typeutil.Callee(a.cache.info, call).(type) {
	case *types.Builtin:
		return a.builtinMutation(fn, p, index)

	case *types.Func:
		return a.funcArgMutation(fn, p, index)
	}

	ft := a.cache.info.TypeOf(call.Fun)
	if ft == nil {
		return astutil.InvalidNode
	}

	sig, ok := ft.Underlying().(*types.Signature)
	if !ok {
		return astutil.InvalidNode
	}

	param, t, ok := parameterOf(sig, call, index)
	if !ok || !hasPointees(t) {
		return astutil.InvalidNode
	}

	if lit := unparen(p.ChildAt(edge.CallExpr_Fun, -1)); isFuncLit(lit) {
		if f := a.cache.FuncAt(lit); f != nil {
			return f.findPointeeMutation(paramVar(f.sig, param))
		}
	}

	return astutil.NodeIndexOf(p)
}

// findRange matches c as the operand of a range clause binding its elements.
func findRange(a *Analyzer, c inspector.Cursor) astutil.NodeIndex {
	p, kind, _ := a.parentOf(c)
	if kind != edge.RangeStmt_X {
		return astutil.InvalidNode
	}

	rs := p.Node().(*ast.RangeStmt)
	if rs.Value != nil {
		if w := a.storeMutation(p.ChildAt(edge.RangeStmt_Value, -1), p); w.Valid() {
			return w
		}
	}

	if rs.Key != nil && isMap(a.typeOf(c)) {
		return a.storeMutation(p.ChildAt(edge.RangeStmt_Key, -1), p)
	}

	return astutil.InvalidNode
}

// componentMutation decides for a component c of a candidate. Components reached through
// an indirection are part of the pointees, so their direct mutation counts too.
func (a *Analyzer) componentMutation(c inspector.Cursor, indirect bool) astutil.NodeIndex {
	if indirect {
		if w := a.exprMutation(c); w.Valid() {
			return w
		}
	}

	return a.pointeeMutation(c)
}

// methodMutation decides for the receiver of fn selected at sel.
func (a *Analyzer) methodMutation(fn *types.Func, sel inspector.Cursor) astutil.NodeIndex {
	if a.cache.policy.ReadOnly.Contains(fn) {
		return astutil.InvalidNode
	}

	if f := a.cache.Func(fn); f != nil {
		return f.findPointeeMutation(f.sig.Recv())
	}

	return a.callSite(sel)
}

// callSite returns the call of a selected method, or the method value sel.
func (a *Analyzer) callSite(sel inspector.Cursor) astutil.NodeIndex {
	if call, kind, _ := a.parentOf(sel); kind == edge.CallExpr_Fun {
		return astutil.NodeIndexOf(call)
	}

	return astutil.NodeIndexOf(sel)
}

// builtinMutation decides for argument index of a call to a builtin function.
func (a *Analyzer) builtinMutation(b *types.Builtin, call inspector.Cursor, index int) astutil.NodeIndex {
	switch b.Name() {
	case "copy", "clear", "delete":
		if index == 0 {
			return astutil.NodeIndexOf(call)
		}

	case "append":
		return a.pointeeMutation(call)

	case "panic":
		return a.escape(call)

	case "Add", "Slice", "SliceData", "String", "StringData":
		return astutil.NodeIndexOf(call)
	}

	return astutil.InvalidNode
}

// funcArgMutation decides for argument index of a static call of fn.
func (a *Analyzer) funcArgMutation(fn *types.Func, call inspector.Cursor, index int) astutil.NodeIndex {
	if a.cache.policy.ReadOnly.Contains(fn) {
		return astutil.InvalidNode
	}

	ce := call.Node().(*ast.CallExpr)
	sig := fn.Signature()

	var (
		param int
		t     types.Type
		ok    bool
	)

	if sel, isSel := ast.Unparen(ce.Fun).(*ast.SelectorExpr); isSel && a.isMethodExpr(sel) {
		if index == 0 {
			param, t, ok = receiverParam, sig.Recv().Type(), true
		} else {
			param, t, ok = parameterOf(sig, ce, index-1)
		}
	} else {
		param, t, ok = parameterOf(sig, ce, index)
	}

	if !ok || !hasPointees(t) {
		return astutil.InvalidNode
	}

	if f := a.cache.Func(fn); f != nil {
		return f.findPointeeMutation(paramVar(f.sig, param))
	}

	return astutil.NodeIndexOf(call)
}

func (a *Analyzer) isMethodExpr(sel *ast.SelectorExpr) bool {
	s, ok := a.cache.info.Selections[sel]

	return ok && s.Kind() == types.MethodExpr
}

// typeSwitchMutation checks the variables bound by the clauses of the type switch over ta.
func (a *Analyzer) typeSwitchMutation(ta inspector.Cursor) astutil.NodeIndex {
	sw, ok := ta.Parent().Parent().Node().(*ast.TypeSwitchStmt)
	if !ok {
		return astutil.InvalidNode
	}

	for _, stmt := range sw.Body.List {
		v, ok := a.cache.info.Implicits[stmt].(*types.Var)
		if !ok {
			continue
		}

		if w := a.varPointeeMutation(v); w.Valid() {
			return w
		}
	}

	return astutil.InvalidNode
}

// storeMutation decides for a value stored into lhs at site.
func (a *Analyzer) storeMutation(lhs, site inspector.Cursor) astutil.NodeIndex {
	v, ok := a.storageVar(lhs)

	switch {
	case !ok:
		return a.escape(site)

	case v == nil: // blank
		return astutil.InvalidNode

	case a.isLocal(v):
		return a.varPointeeMutation(v)

	default:
		return a.escape(site)
	}
}

// storageVar returns the variable holding lhs, following value fields and array elements.
// It returns false when lhs is stored through an indirection.
func (a *Analyzer) storageVar(lhs inspector.Cursor) (*types.Var, bool) {
	for {
		switch n := lhs.Node().(type) {
		case *ast.ParenExpr:
			lhs = lhs.ChildAt(edge.ParenExpr_X, -1)

		case *ast.Ident:
			if n.Name == "_" {
				return nil, true
			}

			v, ok := a.cache.info.ObjectOf(n).(*types.Var)

			return v, ok

		case *ast.SelectorExpr:
			sel, ok := a.cache.info.Selections[n]
			if !ok || sel.Kind() != types.FieldVal || sel.Indirect() {
				return nil, false
			}

			lhs = lhs.ChildAt(edge.SelectorExpr_X, -1)

		case *ast.IndexExpr:
			x := lhs.ChildAt(edge.IndexExpr_X, -1)
			if !isArray(a.typeOf(x)) {
				return nil, false
			}

			lhs = x

		default:
			return nil, false
		}
	}
}

// receiverParam is the parameter index denoting the receiver.
const receiverParam = -1

// parameterOf maps argument index of call to a parameter index of sig and the type the
// argument is bound to. Arguments matching a variadic parameter without ellipsis bind
// to the element type.
func parameterOf(sig *types.Signature, call *ast.CallExpr, index int) (int, types.Type, bool) {
	params := sig.Params()
	n := params.Len()

	switch {
	case n == 0:
		return 0, nil, false

	case sig.Variadic() && index >= n-1:
		last := params.At(n - 1).Type()
		if call.Ellipsis.IsValid() {
			return n - 1, last, true
		}

		if s, ok := last.Underlying().(*types.Slice); ok {
			return n - 1, s.Elem(), true
		}

		return n - 1, last, true

	case index < n:
		return index, params.At(index).Type(), true

	default:
		return 0, nil, false
	}
}

func paramVar(sig *types.Signature, param int) *types.Var {
	if param == receiverParam {
		return sig.Recv()
	}

	if param >= sig.Params().Len() {
		return nil
	}

	return sig.Params().At(param)
}

func unparen(c inspector.Cursor) inspector.Cursor {
	for {
		if _, ok := c.Node().(*ast.ParenExpr); !ok {
			return c
		}

		c = c.ChildAt(edge.ParenExpr_X, -1)
	}
}

func isFuncLit(c inspector.Cursor) bool {
	_, ok := c.Node().(*ast.FuncLit)

	return ok
}

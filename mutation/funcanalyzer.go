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
	"go/types"

	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/readonly/internal/astutil"
)

// FuncAnalyzer answers mutation queries for the parameters and the receiver of one function body.
// Obtain one from [Cache.Func] or [Cache.FuncAt].
//
// A query reaching a parameter whose query is still in progress, through
// recursive calls, answers "not mutated" and keeps that answer. Within a
// recursive cycle results may thus depend on the order of the first queries.
type FuncAnalyzer struct {
	body *Analyzer
	sig  *types.Signature

	results        map[*types.Var]astutil.NodeIndex
	pointeeResults map[*types.Var]astutil.NodeIndex
}

func newFuncAnalyzer(cache *Cache, sig *types.Signature, body inspector.Cursor) *FuncAnalyzer {
	f := &FuncAnalyzer{
		sig:            sig,
		results:        make(map[*types.Var]astutil.NodeIndex),
		pointeeResults: make(map[*types.Var]astutil.NodeIndex),
	}
	f.body = newAnalyzer(cache, body, f)

	return f
}

// Signature returns the declared signature of the function.
func (f *FuncAnalyzer) Signature() *types.Signature {
	return f.sig
}

// Body returns the [Analyzer] for the function body.
func (f *FuncAnalyzer) Body() *Analyzer {
	return f.body
}

// FindMutation returns the node reassigning param inside the body, or nil.
func (f *FuncAnalyzer) FindMutation(param *types.Var) ast.Node {
	return f.body.node(f.findMutation(param))
}

// FindPointeeMutation returns the node mutating something param refers to inside the body, or nil.
func (f *FuncAnalyzer) FindPointeeMutation(param *types.Var) ast.Node {
	return f.body.node(f.findPointeeMutation(param))
}

// IsMutated reports whether param is reassigned inside the body.
func (f *FuncAnalyzer) IsMutated(param *types.Var) bool { return f.FindMutation(param) != nil }

// IsPointeeMutated reports whether something param refers to is mutated inside the body.
func (f *FuncAnalyzer) IsPointeeMutated(param *types.Var) bool {
	return f.FindPointeeMutation(param) != nil
}

func (f *FuncAnalyzer) findMutation(param *types.Var) astutil.NodeIndex {
	return f.cached(param, f.results, f.body.varMutation)
}

func (f *FuncAnalyzer) findPointeeMutation(param *types.Var) astutil.NodeIndex {
	return f.cached(param, f.pointeeResults, f.body.varPointeeMutation)
}

// cached installs a provisional "no mutation" for param before traversing the body,
// which breaks cycles through recursive calls.
func (f *FuncAnalyzer) cached(param *types.Var, results map[*types.Var]astutil.NodeIndex,
	query func(*types.Var) astutil.NodeIndex,
) astutil.NodeIndex {
	if param == nil {
		return astutil.InvalidNode
	}

	if w, ok := results[param]; ok {
		return w
	}

	results[param] = astutil.InvalidNode

	w := query(param)
	results[param] = w

	return w
}

func (f *FuncAnalyzer) isParam(v *types.Var) bool {
	if f.sig.Recv() == v {
		return true
	}

	params := f.sig.Params()
	for i := range params.Len() {
		if params.At(i) == v {
			return true
		}
	}

	return false
}

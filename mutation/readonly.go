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
	"go/types"
	"strings"
)

// ReadOnlySet is a set of functions and methods known not to mutate their arguments or receiver.
//
// Entries are either fully qualified names as printed by [types.Func.FullName],
// like "fmt.Println" or "(*strings.Builder).String", or plain method names
// matching accessors: methods without parameters returning at least one result.
//
// The zero value and nil are empty sets.
type ReadOnlySet struct {
	funcs     map[string]struct{}
	accessors map[string]struct{}
}

// NewReadOnlySet creates a [ReadOnlySet] containing names.
func NewReadOnlySet(names ...string) *ReadOnlySet {
	s := &ReadOnlySet{
		funcs:     make(map[string]struct{}),
		accessors: make(map[string]struct{}),
	}
	s.Add(names...)

	return s
}

// DefaultReadOnly returns a new [ReadOnlySet] with common standard library readers.
func DefaultReadOnly() *ReadOnlySet {
	return NewReadOnlySet(
		"String", "Error", "Len", "Cap",
		"fmt.Print", "fmt.Printf", "fmt.Println",
		"fmt.Sprint", "fmt.Sprintf", "fmt.Sprintln", "fmt.Errorf",
		"log.Print", "log.Printf", "log.Println",
		"log.Fatal", "log.Fatalf", "log.Fatalln",
		"log.Panic", "log.Panicf", "log.Panicln",
		"strings.Join",
		"bytes.Equal", "bytes.Compare", "bytes.Contains", "bytes.HasPrefix",
		"slices.Contains", "slices.Index", "slices.Equal",
		"maps.Equal", "maps.Keys", "maps.Values",
		"errors.Is", "reflect.DeepEqual",
	)
}

// Add inserts names into the set.
func (s *ReadOnlySet) Add(names ...string) {
	for _, name := range names {
		name = strings.TrimSpace(name)
		switch {
		case name == "":
			continue

		case strings.ContainsAny(name, ".()"):
			if s.funcs == nil {
				s.funcs = make(map[string]struct{})
			}

			s.funcs[name] = struct{}{}

		default:
			if s.accessors == nil {
				s.accessors = make(map[string]struct{})
			}

			s.accessors[name] = struct{}{}
		}
	}
}

// Contains reports whether fn, or its generic origin, is a member of s.
func (s *ReadOnlySet) Contains(fn *types.Func) bool {
	if s == nil || fn == nil {
		return false
	}

	fn = fn.Origin()
	if _, ok := s.funcs[fn.FullName()]; ok {
		return true
	}

	if _, ok := s.accessors[fn.Name()]; !ok {
		return false
	}

	sig := fn.Signature()

	return sig.Recv() != nil && sig.Params().Len() == 0 && sig.Results().Len() > 0
}

// Names returns the members of s in no particular order.
func (s *ReadOnlySet) Names() []string {
	if s == nil {
		return nil
	}

	names := make([]string, 0, len(s.funcs)+len(s.accessors))
	for name := range s.funcs {
		names = append(names, name)
	}

	for name := range s.accessors {
		names = append(names, name)
	}

	return names
}

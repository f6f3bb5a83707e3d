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

package analyzer

import (
	"log/slog"
	"slices"

	"fillmore-labs.com/readonly/internal/config"
	"fillmore-labs.com/readonly/internal/run"
)

// Option configures specific behavior of a [New] readonly analyzer.
type Option interface {
	apply(r *run.Options)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *run.Options) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithParams is an [Option] to configure whether pointer parameters are checked.
func WithParams(params bool) Option { return paramsOption{params: params} }

type paramsOption struct{ params bool }

func (o paramsOption) apply(r *run.Options) {
	r.Checks.Set(config.ParamCheck, o.params)
}

func (o paramsOption) LogAttr() slog.Attr {
	return slog.Bool("params", o.params)
}

// WithRange is an [Option] to configure whether range loops are checked.
func WithRange(rng bool) Option { return rangeOption{rng: rng} }

type rangeOption struct{ rng bool }

func (o rangeOption) apply(r *run.Options) {
	r.Checks.Set(config.RangeCheck, o.rng)
}

func (o rangeOption) LogAttr() slog.Attr {
	return slog.Bool("range", o.rng)
}

// WithGenerated is an [Option] to configure diagnostics in generated files.
func WithGenerated(generated bool) Option { return generatedOption{generated: generated} }

type generatedOption struct{ generated bool }

func (o generatedOption) apply(r *run.Options) {
	r.Behavior.Set(config.IncludeGenerated, o.generated)
}

func (o generatedOption) LogAttr() slog.Attr {
	return slog.Bool("generated", o.generated)
}

// WithEscapes is an [Option] to configure whether pointers leaving a function count as mutated.
func WithEscapes(escapes bool) Option { return escapesOption{escapes: escapes} }

type escapesOption struct{ escapes bool }

func (o escapesOption) apply(r *run.Options) {
	r.Behavior.Set(config.ConservativeEscapes, o.escapes)
}

func (o escapesOption) LogAttr() slog.Attr {
	return slog.Bool("escapes", o.escapes)
}

// WithMaxSize is an [Option] to configure the size in bytes separating small from large values.
func WithMaxSize(maxSize int64) Option { return maxSizeOption{maxSize: maxSize} }

type maxSizeOption struct{ maxSize int64 }

func (o maxSizeOption) apply(r *run.Options) {
	r.MaxSize = o.maxSize
}

func (o maxSizeOption) LogAttr() slog.Attr {
	return slog.Int64("max-size", o.maxSize)
}

// WithReadOnly is an [Option] adding functions and accessor methods known not to mutate their arguments.
// Names are fully qualified, like "(*example.com/pkg.T).Get", or plain accessor method names.
func WithReadOnly(names ...string) Option { return readOnlyOption{names: slices.Clone(names)} }

type readOnlyOption struct{ names []string }

func (o readOnlyOption) apply(r *run.Options) {
	r.ReadOnly = append(r.ReadOnly, o.names...)
}

func (o readOnlyOption) LogAttr() slog.Attr {
	return slog.Any("readonly", o.names)
}

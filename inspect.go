// Copyright 2024 The nutsdb Author. All rights reserved.
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

package tryiter

import "github.com/davecgh/go-spew/spew"

var traceConfig = spew.ConfigState{
	Indent:                  " ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

type inspect[T any] struct {
	it Iterator[T]
	fn func(T)
}

// Inspect returns an iterator that calls fn with every value of it before
// passing the value on.
func Inspect[T any](it Iterator[T], fn func(T)) Iterator[T] {
	return inspect[T]{it: it, fn: fn}
}

func (in inspect[T]) Next() (T, bool) {
	v, ok := in.it.Next()
	if ok {
		in.fn(v)
	}
	return v, ok
}

type inspectReversible[T any] struct {
	inspect[T]
	back Reversible[T]
}

// InspectReversible is Inspect for a Reversible.
func InspectReversible[T any](it Reversible[T], fn func(T)) Reversible[T] {
	return inspectReversible[T]{inspect: inspect[T]{it: it, fn: fn}, back: it}
}

func (in inspectReversible[T]) NextBack() (T, bool) {
	v, ok := in.back.NextBack()
	if ok {
		in.fn(v)
	}
	return v, ok
}

func (in inspectReversible[T]) Len() int {
	return in.back.Len()
}

func tracer[T any](label string) func(T) {
	return func(v T) {
		GetLogger().Printf("%s: %s", label, traceConfig.Sprintf("%+v", v))
	}
}

// Trace is Inspect writing every value of it to the package logger, prefixed
// with label.
func Trace[T any](it Iterator[T], label string) Iterator[T] {
	return Inspect(it, tracer[T](label))
}

// TraceReversible is Trace for a Reversible.
func TraceReversible[T any](it Reversible[T], label string) Reversible[T] {
	return InspectReversible(it, tracer[T](label))
}

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

type mapIter[T, U any] struct {
	it Iterator[T]
	fn func(T) U
}

// Map returns an iterator applying fn to every value of it.
func Map[T, U any](it Iterator[T], fn func(T) U) Iterator[U] {
	return mapIter[T, U]{it: it, fn: fn}
}

func (m mapIter[T, U]) Next() (U, bool) {
	v, ok := m.it.Next()
	if !ok {
		return zero[U](), false
	}
	return m.fn(v), true
}

type mapReversible[T, U any] struct {
	mapIter[T, U]
	back Reversible[T]
}

// MapReversible is Map for a Reversible.
func MapReversible[T, U any](it Reversible[T], fn func(T) U) Reversible[U] {
	return mapReversible[T, U]{mapIter: mapIter[T, U]{it: it, fn: fn}, back: it}
}

func (m mapReversible[T, U]) NextBack() (U, bool) {
	v, ok := m.back.NextBack()
	if !ok {
		return zero[U](), false
	}
	return m.fn(v), true
}

func (m mapReversible[T, U]) Len() int {
	return m.back.Len()
}

type filter[T any] struct {
	it Iterator[T]
	fn func(T) bool
}

// Filter returns an iterator over the values of it for which fn is true.
// The number of values left is unknown, so there is no reversible form.
func Filter[T any](it Iterator[T], fn func(T) bool) Iterator[T] {
	return filter[T]{it: it, fn: fn}
}

func (f filter[T]) Next() (T, bool) {
	for {
		v, ok := f.it.Next()
		if !ok {
			return v, false
		}
		if f.fn(v) {
			return v, true
		}
	}
}

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

type enumerate[T any] struct {
	it    Iterator[T]
	count int
}

// Enumerate pairs each value of it with its zero-based position.
func Enumerate[T any](it Iterator[T]) Iterator[Indexed[T]] {
	return &enumerate[T]{it: it}
}

func (e *enumerate[T]) Next() (Indexed[T], bool) {
	v, ok := e.it.Next()
	if !ok {
		return Indexed[T]{}, false
	}
	i := Indexed[T]{Index: e.count, Value: v}
	e.count++
	return i, true
}

type enumerateReversible[T any] struct {
	enumerate[T]
	back Reversible[T]
}

// EnumerateReversible is Enumerate for a Reversible. Values taken from the
// back carry the position they have counting from the front.
func EnumerateReversible[T any](it Reversible[T]) Reversible[Indexed[T]] {
	return &enumerateReversible[T]{enumerate: enumerate[T]{it: it}, back: it}
}

func (e *enumerateReversible[T]) NextBack() (Indexed[T], bool) {
	n := e.back.Len()
	v, ok := e.back.NextBack()
	if !ok {
		return Indexed[T]{}, false
	}
	return Indexed[T]{Index: e.count + n - 1, Value: v}, true
}

func (e *enumerateReversible[T]) Len() int {
	return e.back.Len()
}

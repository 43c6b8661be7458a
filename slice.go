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

// SliceIter is a Reversible over the elements of a slice. The slice is not
// copied.
type SliceIter[T any] struct {
	s []T
}

// FromSlice returns an iterator over s.
func FromSlice[T any](s []T) *SliceIter[T] {
	return &SliceIter[T]{s: s}
}

// Of returns an iterator over its arguments.
func Of[T any](values ...T) *SliceIter[T] {
	return FromSlice(values)
}

// Empty returns an iterator that yields nothing.
func Empty[T any]() *SliceIter[T] {
	return &SliceIter[T]{}
}

// Once returns an iterator that yields v exactly once.
func Once[T any](v T) *SliceIter[T] {
	return &SliceIter[T]{s: []T{v}}
}

func (si *SliceIter[T]) Next() (T, bool) {
	if len(si.s) == 0 {
		return zero[T](), false
	}
	v := si.s[0]
	si.s = si.s[1:]
	return v, true
}

func (si *SliceIter[T]) NextBack() (T, bool) {
	n := len(si.s)
	if n == 0 {
		return zero[T](), false
	}
	v := si.s[n-1]
	si.s = si.s[:n-1]
	return v, true
}

func (si *SliceIter[T]) Len() int {
	return len(si.s)
}

// Remaining returns the values not yet consumed from either end.
func (si *SliceIter[T]) Remaining() []T {
	return si.s
}

type repeatN[T any] struct {
	v T
	n int
}

// RepeatN returns an iterator yielding v n times.
func RepeatN[T any](v T, n int) Reversible[T] {
	return &repeatN[T]{v: v, n: max(n, 0)}
}

func (r *repeatN[T]) Next() (T, bool) {
	if r.n == 0 {
		return zero[T](), false
	}
	r.n--
	return r.v, true
}

func (r *repeatN[T]) NextBack() (T, bool) { return r.Next() }
func (r *repeatN[T]) Len() int            { return r.n }

type repeat[T any] struct {
	v T
}

// Repeat returns an endless iterator yielding v.
func Repeat[T any](v T) Iterator[T] {
	return repeat[T]{v: v}
}

func (r repeat[T]) Next() (T, bool) { return r.v, true }

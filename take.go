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

type take[T any] struct {
	it Iterator[T]
	n  int
}

// Take returns an iterator yielding at most the first n values of it.
func Take[T any](it Iterator[T], n int) Iterator[T] {
	return &take[T]{it: it, n: max(n, 0)}
}

func (t *take[T]) Next() (T, bool) {
	if t.n == 0 {
		return zero[T](), false
	}
	t.n--
	return t.it.Next()
}

type takeReversible[T any] struct {
	take[T]
	back Reversible[T]
}

// TakeReversible is Take for a Reversible.
func TakeReversible[T any](it Reversible[T], n int) Reversible[T] {
	return &takeReversible[T]{take: take[T]{it: it, n: max(n, 0)}, back: it}
}

func (t *takeReversible[T]) NextBack() (T, bool) {
	if t.n == 0 {
		return zero[T](), false
	}
	for l := t.back.Len(); l > t.n; l-- {
		t.back.NextBack()
	}
	v, ok := t.back.NextBack()
	if ok {
		t.n--
	}
	return v, ok
}

func (t *takeReversible[T]) Len() int {
	return min(t.n, t.back.Len())
}

type skip[T any] struct {
	it Iterator[T]
	n  int
}

// Skip returns an iterator that drops the first n values of it. The values
// are dropped on the first call to Next.
func Skip[T any](it Iterator[T], n int) Iterator[T] {
	return &skip[T]{it: it, n: max(n, 0)}
}

func (s *skip[T]) Next() (T, bool) {
	for ; s.n > 0; s.n-- {
		if _, ok := s.it.Next(); !ok {
			s.n = 0
			return zero[T](), false
		}
	}
	return s.it.Next()
}

type skipReversible[T any] struct {
	skip[T]
	back Reversible[T]
}

// SkipReversible is Skip for a Reversible. Taking from the back never reaches
// the skipped values.
func SkipReversible[T any](it Reversible[T], n int) Reversible[T] {
	return &skipReversible[T]{skip: skip[T]{it: it, n: max(n, 0)}, back: it}
}

func (s *skipReversible[T]) NextBack() (T, bool) {
	if s.Len() == 0 {
		return zero[T](), false
	}
	return s.back.NextBack()
}

func (s *skipReversible[T]) Len() int {
	return max(s.back.Len()-s.n, 0)
}

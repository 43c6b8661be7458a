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

import "github.com/pkg/errors"

type stepBy[T any] struct {
	it    Iterator[T]
	step  int
	first bool
}

// StepBy returns an iterator yielding the first value of it and then every
// step-th value after it.
func StepBy[T any](it Iterator[T], step int) (Iterator[T], error) {
	if step <= 0 {
		return nil, errors.Wrapf(ErrInvalidStep, "got %d", step)
	}
	return &stepBy[T]{it: it, step: step, first: true}, nil
}

func (s *stepBy[T]) Next() (T, bool) {
	if s.first {
		s.first = false
		return s.it.Next()
	}
	for i := 1; i < s.step; i++ {
		if _, ok := s.it.Next(); !ok {
			return zero[T](), false
		}
	}
	return s.it.Next()
}

type stepByReversible[T any] struct {
	stepBy[T]
	back Reversible[T]
}

// StepByReversible is StepBy for a Reversible. The values taken from the back
// are the ones a forward walk would have produced.
func StepByReversible[T any](it Reversible[T], step int) (Reversible[T], error) {
	if step <= 0 {
		return nil, errors.Wrapf(ErrInvalidStep, "got %d", step)
	}
	return &stepByReversible[T]{stepBy: stepBy[T]{it: it, step: step, first: true}, back: it}, nil
}

// backSkip is the number of trailing values of the inner iterator that a
// forward walk would never yield.
func (s *stepByReversible[T]) backSkip() int {
	rem := s.back.Len() % s.step
	if !s.first {
		return rem
	}
	if rem == 0 {
		return s.step - 1
	}
	return rem - 1
}

func (s *stepByReversible[T]) NextBack() (T, bool) {
	for n := s.backSkip(); n > 0; n-- {
		if _, ok := s.back.NextBack(); !ok {
			return zero[T](), false
		}
	}
	return s.back.NextBack()
}

func (s *stepByReversible[T]) Len() int {
	n := s.back.Len()
	if !s.first {
		return n / s.step
	}
	if n == 0 {
		return 0
	}
	return 1 + (n-1)/s.step
}

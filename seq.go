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

import "iter"

// AllSeq is All over a push sequence.
func AllSeq[T any](seq iter.Seq[T], pred Predicate[T]) (bool, error) {
	for v := range seq {
		match, err := pred(v)
		if err != nil {
			return false, err
		}
		if !match {
			return false, nil
		}
	}
	return true, nil
}

// AnySeq is Any over a push sequence.
func AnySeq[T any](seq iter.Seq[T], pred Predicate[T]) (bool, error) {
	for v := range seq {
		match, err := pred(v)
		if err != nil {
			return false, err
		}
		if match {
			return true, nil
		}
	}
	return false, nil
}

// PositionSeq is Position over a push sequence.
func PositionSeq[T any](seq iter.Seq[T], pred Predicate[T]) (int, bool, error) {
	idx := 0
	for v := range seq {
		match, err := pred(v)
		if err != nil {
			return -1, false, err
		}
		if match {
			return idx, true, nil
		}
		idx++
	}
	return -1, false, nil
}

// RPositionSlice is RPosition over a slice.
func RPositionSlice[T any](s []T, pred Predicate[T]) (int, bool, error) {
	return RPosition[T](FromSlice(s), pred)
}

// Seq returns a push sequence draining it. Breaking out of the range loop
// leaves the remaining values in it.
func Seq[T any](it Iterator[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := it.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// PullIter is a forward Iterator over a push sequence.
// Stop must be called if the iterator is abandoned before it is exhausted.
type PullIter[T any] struct {
	next func() (T, bool)
	stop func()
}

// FromSeq converts a push sequence into an Iterator.
func FromSeq[T any](seq iter.Seq[T]) *PullIter[T] {
	next, stop := iter.Pull(seq)
	return &PullIter[T]{next: next, stop: stop}
}

func (p *PullIter[T]) Next() (T, bool) {
	return p.next()
}

// Stop releases the underlying sequence. It is safe to call more than once.
func (p *PullIter[T]) Stop() {
	p.stop()
}

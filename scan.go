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

// All tests if every value of it satisfies pred, stopping at the first error
// and returning that error.
//
// The scan stops at the first value for which pred reports false. An
// exhausted iterator yields true, so All on an empty iterator is true and
// pred is never called.
func All[T any](it Iterator[T], pred Predicate[T]) (bool, error) {
	for {
		v, ok := it.Next()
		if !ok {
			return true, nil
		}
		match, err := pred(v)
		if err != nil {
			return false, err
		}
		if !match {
			return false, nil
		}
	}
}

// Any tests if some value of it satisfies pred, stopping at the first error
// and returning that error.
//
// The scan stops at the first value for which pred reports true. Any on an
// empty iterator is false.
func Any[T any](it Iterator[T], pred Predicate[T]) (bool, error) {
	for {
		v, ok := it.Next()
		if !ok {
			return false, nil
		}
		match, err := pred(v)
		if err != nil {
			return false, err
		}
		if match {
			return true, nil
		}
	}
}

// Position searches it for a value satisfying pred and returns its zero-based
// index, stopping at the first error and returning that error.
//
// Every value pulled from it counts towards the index, whatever pred said
// about it. When nothing matches Position returns -1 and false.
func Position[T any](it Iterator[T], pred Predicate[T]) (int, bool, error) {
	for idx := 0; ; idx++ {
		v, ok := it.Next()
		if !ok {
			return -1, false, nil
		}
		match, err := pred(v)
		if err != nil {
			return -1, false, err
		}
		if match {
			return idx, true, nil
		}
	}
}

// RPosition searches it from the back for a value satisfying pred, stopping
// at the first error and returning that error.
//
// The returned index counts from the front: it is the position the value had
// among the values left in it when RPosition was called. When nothing matches
// RPosition returns -1 and false.
func RPosition[T any](it Reversible[T], pred Predicate[T]) (int, bool, error) {
	idx := it.Len()
	for {
		v, ok := it.NextBack()
		if !ok {
			return -1, false, nil
		}
		idx--
		match, err := pred(v)
		if err != nil {
			return -1, false, err
		}
		if match {
			return idx, true, nil
		}
	}
}

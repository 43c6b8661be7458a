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

// Iterator is a forward, single-pass cursor over values of type T.
// Next returns the next value and true, or the zero value and false once the
// sequence is exhausted.
type Iterator[T any] interface {
	Next() (T, bool)
}

// Reversible is an Iterator that can also yield values from the back and
// reports the exact number of values it has left. Values taken from either
// end are no longer available from the other one.
type Reversible[T any] interface {
	Iterator[T]
	NextBack() (T, bool)
	Len() int
}

// Predicate tests a single value. A non-nil error aborts the scan that is
// running it.
type Predicate[T any] func(T) (bool, error)

// Indexed is the value produced by Enumerate.
type Indexed[T any] struct {
	Index int
	Value T
}

// Pair is the value produced by Zip.
type Pair[A, B any] struct {
	First  A
	Second B
}

func zero[T any]() (v T) { return }

// Collect drains it into a slice.
func Collect[T any](it Iterator[T]) []T {
	var out []T
	if r, ok := it.(Reversible[T]); ok {
		out = make([]T, 0, r.Len())
	}
	for {
		v, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, v)
	}
}

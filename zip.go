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

type zip[A, B any] struct {
	a Iterator[A]
	b Iterator[B]
}

// Zip returns an iterator pairing the values of a and b. It stops as soon as
// either side is exhausted; a is always advanced before b.
func Zip[A, B any](a Iterator[A], b Iterator[B]) Iterator[Pair[A, B]] {
	return zip[A, B]{a: a, b: b}
}

func (z zip[A, B]) Next() (Pair[A, B], bool) {
	x, ok := z.a.Next()
	if !ok {
		return Pair[A, B]{}, false
	}
	y, ok := z.b.Next()
	if !ok {
		return Pair[A, B]{}, false
	}
	return Pair[A, B]{First: x, Second: y}, true
}

type zipReversible[A, B any] struct {
	zip[A, B]
	ra Reversible[A]
	rb Reversible[B]
}

// ZipReversible is Zip for two Reversibles. Taking from the back first drops
// the surplus tail of the longer side, so pairs line up as they would when
// zipping from the front.
func ZipReversible[A, B any](a Reversible[A], b Reversible[B]) Reversible[Pair[A, B]] {
	return zipReversible[A, B]{zip: zip[A, B]{a: a, b: b}, ra: a, rb: b}
}

func (z zipReversible[A, B]) NextBack() (Pair[A, B], bool) {
	la, lb := z.ra.Len(), z.rb.Len()
	for ; la > lb; la-- {
		z.ra.NextBack()
	}
	for ; lb > la; lb-- {
		z.rb.NextBack()
	}
	x, okA := z.ra.NextBack()
	y, okB := z.rb.NextBack()
	if !okA || !okB {
		return Pair[A, B]{}, false
	}
	return Pair[A, B]{First: x, Second: y}, true
}

func (z zipReversible[A, B]) Len() int {
	return min(z.ra.Len(), z.rb.Len())
}

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

import "container/list"

type listIter[T any] struct {
	front, back *list.Element
	n           int
}

// FromList returns an iterator over the values of l, which must all be of
// type T. The list must not be modified while the iterator is in use.
func FromList[T any](l *list.List) Reversible[T] {
	return &listIter[T]{front: l.Front(), back: l.Back(), n: l.Len()}
}

func (li *listIter[T]) Next() (T, bool) {
	if li.n == 0 {
		return zero[T](), false
	}
	e := li.front
	li.front = e.Next()
	li.n--
	return e.Value.(T), true
}

func (li *listIter[T]) NextBack() (T, bool) {
	if li.n == 0 {
		return zero[T](), false
	}
	e := li.back
	li.back = e.Prev()
	li.n--
	return e.Value.(T), true
}

func (li *listIter[T]) Len() int {
	return li.n
}

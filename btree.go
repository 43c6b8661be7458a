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

import "github.com/tidwall/btree"

type btreeIter[T any] struct {
	tr          *btree.BTreeG[T]
	front, back int
}

// FromBTree returns an iterator over the items of tr in ascending order.
// Items are fetched by rank, so tr must not be modified while the iterator
// is in use.
func FromBTree[T any](tr *btree.BTreeG[T]) Reversible[T] {
	return &btreeIter[T]{tr: tr, back: tr.Len()}
}

func (bi *btreeIter[T]) Next() (T, bool) {
	if bi.front >= bi.back {
		return zero[T](), false
	}
	v, ok := bi.tr.GetAt(bi.front)
	if !ok {
		bi.front = bi.back
		return zero[T](), false
	}
	bi.front++
	return v, true
}

func (bi *btreeIter[T]) NextBack() (T, bool) {
	if bi.front >= bi.back {
		return zero[T](), false
	}
	bi.back--
	v, ok := bi.tr.GetAt(bi.back)
	if !ok {
		bi.back = bi.front
		return zero[T](), false
	}
	return v, true
}

func (bi *btreeIter[T]) Len() int {
	return bi.back - bi.front
}

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

package list

import (
	"slices"

	"github.com/nutsdb/tryiter"
	"github.com/pkg/errors"
)

var (
	// ErrListEmpty is returned when popping or peeking an empty list.
	ErrListEmpty = errors.New("list is empty")

	// ErrIndexOutOfRange is returned when use LSet function set index out of range.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrStartOrEnd is returned when LRange gets a start after its end.
	ErrStartOrEnd = errors.New("start or end error")
)

// List is a double-ended queue of values.
type List[T comparable] struct {
	Items []T
}

func New[T comparable](values ...T) *List[T] {
	l := &List[T]{}
	l.RPush(values...)
	return l
}

// RPush appends values to the tail and returns the new size.
func (l *List[T]) RPush(values ...T) int {
	l.Items = append(l.Items, values...)
	return len(l.Items)
}

// LPush inserts values at the head, one after the other, so the last value
// ends up first. It returns the new size.
func (l *List[T]) LPush(values ...T) int {
	newList := make([]T, len(values), len(values)+len(l.Items))
	for i, v := range values {
		newList[len(values)-1-i] = v
	}
	l.Items = append(newList, l.Items...)
	return len(l.Items)
}

// LPop removes and returns the first element of the list.
func (l *List[T]) LPop() (item T, err error) {
	if item, err = l.LPeek(); err != nil {
		return
	}
	l.Items = l.Items[1:]
	return
}

// RPop removes and returns the last element of the list.
func (l *List[T]) RPop() (item T, err error) {
	if item, err = l.RPeek(); err != nil {
		return
	}
	l.Items = l.Items[:len(l.Items)-1]
	return
}

// LPeek returns the first element of the list.
func (l *List[T]) LPeek() (item T, err error) {
	if len(l.Items) == 0 {
		return item, ErrListEmpty
	}
	return l.Items[0], nil
}

// RPeek returns the last element of the list.
func (l *List[T]) RPeek() (item T, err error) {
	if len(l.Items) == 0 {
		return item, ErrListEmpty
	}
	return l.Items[len(l.Items)-1], nil
}

func (l *List[T]) Size() int {
	return len(l.Items)
}

// LIndex returns the element at index. Negative indexes count from the tail.
func (l *List[T]) LIndex(index int) (item T, err error) {
	size := len(l.Items)
	if index < 0 {
		index += size
	}
	if index < 0 || index >= size {
		return item, errors.Wrapf(ErrIndexOutOfRange, "index %d, size %d", index, size)
	}
	return l.Items[index], nil
}

// LSet sets the list element at index to value.
func (l *List[T]) LSet(index int, value T) error {
	if index >= len(l.Items) || index < 0 {
		return errors.Wrapf(ErrIndexOutOfRange, "index %d, size %d", index, len(l.Items))
	}
	l.Items[index] = value
	return nil
}

// LRange returns the elements in [start,end]. Negative bounds count from
// the tail and end is clamped to the last element.
func (l *List[T]) LRange(start, end int) ([]T, error) {
	size := len(l.Items)
	if start < 0 {
		start += size
	}
	if end < 0 {
		end += size
	}
	if end >= size {
		end = size - 1
	}
	if start < 0 || start > end {
		return nil, errors.Wrapf(ErrStartOrEnd, "start %d, end %d", start, end)
	}
	return l.Items[start : end+1], nil
}

// LRem removes the first count occurrences of value from the list.
// count > 0: Remove elements equal to value moving from head to tail.
// count < 0: Remove elements equal to value moving from tail to head.
// count = 0: Remove all elements equal to value.
func (l *List[T]) LRem(count int, value T) int {
	removed := 0
	keep := make([]bool, len(l.Items))
	for i := range keep {
		keep[i] = true
	}

	limit := count
	if limit < 0 {
		limit = -limit
	}
	mark := func(i int) {
		if (count == 0 || removed < limit) && l.Items[i] == value {
			keep[i] = false
			removed++
		}
	}
	if count >= 0 {
		for i := range l.Items {
			mark(i)
		}
	} else {
		for i := len(l.Items) - 1; i >= 0; i-- {
			mark(i)
		}
	}

	items := l.Items[:0]
	for i, v := range l.Items {
		if keep[i] {
			items = append(items, v)
		}
	}
	l.Items = items
	return removed
}

// LIndexFunc returns the index of the first element satisfying pred.
func (l *List[T]) LIndexFunc(pred tryiter.Predicate[T]) (int, bool, error) {
	return tryiter.Position[T](tryiter.FromSlice(l.Items), pred)
}

// LLastIndexFunc returns the index of the last element satisfying pred.
func (l *List[T]) LLastIndexFunc(pred tryiter.Predicate[T]) (int, bool, error) {
	return tryiter.RPosition[T](tryiter.FromSlice(l.Items), pred)
}

// Iter returns an iterator over a snapshot of the elements, head first. Later
// changes to the list do not affect it.
func (l *List[T]) Iter() tryiter.Reversible[T] {
	return tryiter.FromSlice(slices.Clone(l.Items))
}

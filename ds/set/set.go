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

package set

import (
	"slices"

	"github.com/nutsdb/tryiter"
)

// Set is an unordered collection of unique members.
type Set[T comparable] struct {
	M map[T]struct{}
}

func New[T comparable](items ...T) *Set[T] {
	s := &Set[T]{M: make(map[T]struct{}, len(items))}
	s.SAdd(items...)
	return s
}

// SAdd adds items to the set and returns how many were not already members.
func (s *Set[T]) SAdd(items ...T) int {
	added := 0
	for _, item := range items {
		if _, ok := s.M[item]; !ok {
			s.M[item] = struct{}{}
			added++
		}
	}
	return added
}

// SRem removes items from the set and returns how many were members.
func (s *Set[T]) SRem(items ...T) int {
	removed := 0
	for _, item := range items {
		if _, ok := s.M[item]; ok {
			delete(s.M, item)
			removed++
		}
	}
	return removed
}

// SPop removes and returns an arbitrary member.
func (s *Set[T]) SPop() (item T, ok bool) {
	for item = range s.M {
		delete(s.M, item)
		return item, true
	}
	return item, false
}

// SCard Returns the set cardinality (number of elements).
func (s *Set[T]) SCard() int {
	return len(s.M)
}

// SIsMember Returns if item is a member of the set.
func (s *Set[T]) SIsMember(item T) bool {
	_, ok := s.M[item]
	return ok
}

// SAreMembers returns true only if all of the items exist.
func (s *Set[T]) SAreMembers(items ...T) bool {
	ok, _ := tryiter.AllSeq(slices.Values(items), func(item T) (bool, error) {
		return s.SIsMember(item), nil
	})
	return ok
}

// SMembers returns all the members of the set in no particular order.
func (s *Set[T]) SMembers() []T {
	list := make([]T, 0, len(s.M))
	for item := range s.M {
		list = append(list, item)
	}
	return list
}

// SDiff returns the members of s that are not members of other.
func (s *Set[T]) SDiff(other *Set[T]) []T {
	var list []T
	for item := range s.M {
		if !other.SIsMember(item) {
			list = append(list, item)
		}
	}
	return list
}

// SInter returns the members of both s and other.
func (s *Set[T]) SInter(other *Set[T]) []T {
	var list []T
	for item := range s.M {
		if other.SIsMember(item) {
			list = append(list, item)
		}
	}
	return list
}

// SUnion returns the members of either s or other.
func (s *Set[T]) SUnion(other *Set[T]) []T {
	list := s.SMembers()
	for item := range other.M {
		if !s.SIsMember(item) {
			list = append(list, item)
		}
	}
	return list
}

// Iter returns a forward iterator over a snapshot of the members. The order
// is unspecified, so there is no reversible form.
func (s *Set[T]) Iter() tryiter.Iterator[T] {
	return tryiter.FromSlice(s.SMembers())
}

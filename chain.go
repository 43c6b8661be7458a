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

type chain[T any] struct {
	a, b Iterator[T]
}

// Chain returns an iterator yielding the values of a followed by those of b.
func Chain[T any](a, b Iterator[T]) Iterator[T] {
	return &chain[T]{a: a, b: b}
}

func (c *chain[T]) Next() (T, bool) {
	if c.a != nil {
		if v, ok := c.a.Next(); ok {
			return v, true
		}
		c.a = nil
	}
	return c.b.Next()
}

type chainReversible[T any] struct {
	a, b Reversible[T]
}

// ChainReversible is Chain for two Reversibles.
func ChainReversible[T any](a, b Reversible[T]) Reversible[T] {
	return &chainReversible[T]{a: a, b: b}
}

func (c *chainReversible[T]) Next() (T, bool) {
	if v, ok := c.a.Next(); ok {
		return v, true
	}
	return c.b.Next()
}

func (c *chainReversible[T]) NextBack() (T, bool) {
	if v, ok := c.b.NextBack(); ok {
		return v, true
	}
	return c.a.NextBack()
}

func (c *chainReversible[T]) Len() int {
	return c.a.Len() + c.b.Len()
}

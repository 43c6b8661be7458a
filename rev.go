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

type rev[T any] struct {
	it Reversible[T]
}

// Rev returns an iterator that yields the values of it from the back.
func Rev[T any](it Reversible[T]) Reversible[T] {
	if r, ok := it.(rev[T]); ok {
		return r.it
	}
	return rev[T]{it: it}
}

func (r rev[T]) Next() (T, bool)     { return r.it.NextBack() }
func (r rev[T]) NextBack() (T, bool) { return r.it.Next() }
func (r rev[T]) Len() int            { return r.it.Len() }

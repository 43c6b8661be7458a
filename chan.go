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

type chanIter[T any] struct {
	ch <-chan T
}

// FromChan returns an iterator receiving from ch until it is closed.
// Next blocks while ch is open and empty.
func FromChan[T any](ch <-chan T) Iterator[T] {
	return chanIter[T]{ch: ch}
}

func (c chanIter[T]) Next() (T, bool) {
	v, ok := <-c.ch
	return v, ok
}

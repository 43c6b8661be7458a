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

/*
Package tryiter implements fallible variants of the classic sequence scans:
All, Any, Position and RPosition.

The ordinary forms of these scans take a predicate returning a plain bool. Here
the predicate is a Predicate[T], which may fail. The first failure stops the
scan and is returned to the caller exactly as the predicate produced it; no
further elements are pulled from the sequence.

# Usage

A scan works on any Iterator[T], a single-pass cursor with a Next method.
RPosition additionally needs a Reversible[T], an iterator that can also be
drained from the back and knows how many elements it has left. Sequences that
cannot do that simply do not satisfy the type, so the mistake is caught by the
compiler.

	items := tryiter.FromSlice([]string{"foo", "ayy", "bar"})
	idx, ok, err := tryiter.Position(items, func(s string) (bool, error) {
		return s == "bar", nil
	})

The package ships sources (slices, ranges, channels, container/list, btree) and
the usual adapters (Rev, Enumerate, Map, Filter, Chain, Zip, StepBy, Take, Skip,
Inspect, Trace). Adapters that can keep the back end and exact length of their
input come in a ...Reversible form as well.

All scans are synchronous. Each consumes elements at most once, in order, and
advances the iterator by exactly the number of elements it examined.
*/
package tryiter

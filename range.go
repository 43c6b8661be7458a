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

import (
	"math"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

type rangeIter[N constraints.Integer] struct {
	start, end N
}

// Range returns an iterator over the half-open interval [start, end).
// It yields nothing when end <= start. An interval holding more than
// math.MaxInt values has no exact length and is rejected with ErrRangeTooLarge.
func Range[N constraints.Integer](start, end N) (Reversible[N], error) {
	if end < start {
		end = start
	}
	if span(start, end) > math.MaxInt {
		return nil, errors.Wrapf(ErrRangeTooLarge, "[%d, %d)", start, end)
	}
	return &rangeIter[N]{start: start, end: end}, nil
}

// span is end-start computed in uint64, exact for any integer type when
// start <= end.
func span[N constraints.Integer](start, end N) uint64 {
	return uint64(end) - uint64(start)
}

func (r *rangeIter[N]) Next() (N, bool) {
	if r.start >= r.end {
		return 0, false
	}
	v := r.start
	r.start++
	return v, true
}

func (r *rangeIter[N]) NextBack() (N, bool) {
	if r.start >= r.end {
		return 0, false
	}
	r.end--
	return r.end, true
}

func (r *rangeIter[N]) Len() int {
	return int(span(r.start, r.end))
}

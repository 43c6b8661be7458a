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

package tryiter_test

import (
	"slices"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/nutsdb/tryiter"
	"github.com/nutsdb/tryiter/internal/testutils"
)

func lastIndex(xs []int, v int) int {
	for i := len(xs) - 1; i >= 0; i-- {
		if xs[i] == v {
			return i
		}
	}
	return -1
}

func TestProperty_ScanLaws(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	parameters.MaxSize = 30

	properties := gopter.NewProperties(parameters)

	properties.Property("always-true All and always-false Any examine everything", prop.ForAll(
		func(xs []int) bool {
			rec := &testutils.Recorder[int]{}
			all, err := tryiter.All[int](tryiter.FromSlice(xs), rec.Wrap(func(int) (bool, error) { return true, nil }))
			if err != nil || !all || len(rec.Seen) != len(xs) {
				return false
			}

			rec.Seen = nil
			anyMatch, err := tryiter.Any[int](tryiter.FromSlice(xs), rec.Wrap(func(int) (bool, error) { return false, nil }))
			return err == nil && !anyMatch && slices.Equal(rec.Seen, xs)
		},
		gen.SliceOf(gen.IntRange(0, 9)),
	))

	properties.Property("Position stops at the first match", prop.ForAll(
		func(xs []int, target int) bool {
			rec := &testutils.Recorder[int]{}
			idx, found, err := tryiter.Position[int](tryiter.FromSlice(xs), rec.Wrap(equalTo(target)))
			if err != nil {
				return false
			}
			want := slices.Index(xs, target)
			if want < 0 {
				return !found && idx == -1 && len(rec.Seen) == len(xs)
			}
			return found && idx == want && slices.Equal(rec.Seen, xs[:want+1])
		},
		gen.SliceOf(gen.IntRange(0, 9)),
		gen.IntRange(0, 9),
	))

	properties.Property("RPosition stops at the last match", prop.ForAll(
		func(xs []int, target int) bool {
			rec := &testutils.Recorder[int]{}
			idx, found, err := tryiter.RPosition[int](tryiter.FromSlice(xs), rec.Wrap(equalTo(target)))
			if err != nil {
				return false
			}
			want := lastIndex(xs, target)
			if want < 0 {
				return !found && idx == -1 && len(rec.Seen) == len(xs)
			}
			return found && idx == want && len(rec.Seen) == len(xs)-want
		},
		gen.SliceOf(gen.IntRange(0, 9)),
		gen.IntRange(0, 9),
	))

	properties.Property("the first failure is returned and nothing after it is examined", prop.ForAll(
		func(xs []int, failAt int) bool {
			calls := 0
			pred := func(int) (bool, error) {
				if calls == failAt {
					return false, testutils.Code(failAt)
				}
				calls++
				return true, nil
			}

			it := tryiter.FromSlice(xs)
			all, err := tryiter.All[int](it, pred)
			if failAt >= len(xs) {
				return err == nil && all && calls == len(xs)
			}
			return err == testutils.Code(failAt) && !all && calls == failAt && it.Len() == len(xs)-failAt-1
		},
		gen.SliceOf(gen.IntRange(0, 9)),
		gen.IntRange(0, 40),
	))

	properties.Property("Any agrees with Position and with All of the negation", prop.ForAll(
		func(xs []int, target int) bool {
			anyMatch, _ := tryiter.Any[int](tryiter.FromSlice(xs), equalTo(target))
			_, found, _ := tryiter.Position[int](tryiter.FromSlice(xs), equalTo(target))
			none, _ := tryiter.All[int](tryiter.FromSlice(xs), func(v int) (bool, error) { return v != target, nil })
			return anyMatch == found && anyMatch == !none
		},
		gen.SliceOf(gen.IntRange(0, 9)),
		gen.IntRange(0, 9),
	))

	properties.Property("RPosition over Rev mirrors Position", prop.ForAll(
		func(xs []int, target int) bool {
			fwd, okF, _ := tryiter.Position[int](tryiter.FromSlice(xs), equalTo(target))
			back, okB, _ := tryiter.RPosition(tryiter.Rev[int](tryiter.FromSlice(xs)), equalTo(target))
			if !okF {
				return !okB
			}
			return okB && back == len(xs)-1-fwd
		},
		gen.SliceOf(gen.IntRange(0, 9)),
		gen.IntRange(0, 9),
	))

	properties.TestingRun(t)
}

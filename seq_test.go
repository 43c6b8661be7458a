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

	"github.com/nutsdb/tryiter"
	"github.com/nutsdb/tryiter/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllSeq(t *testing.T) {
	ok, err := tryiter.AllSeq(slices.Values(testutils.Items("foo", "foo")), testutils.Equals("foo"))
	require.NoError(t, err)
	assert.True(t, ok)

	rec := &testutils.Recorder[Item]{}
	ok, err = tryiter.AllSeq(slices.Values(testutils.Items("foo", testutils.Code(4444), "foo")), rec.Wrap(testutils.Equals("foo")))
	assert.Equal(t, testutils.Code(4444), err)
	assert.False(t, ok)
	assert.Len(t, rec.Seen, 2)

	ok, err = tryiter.AllSeq(slices.Values([]Item{}), testutils.Never[Item](t))
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestAnySeq(t *testing.T) {
	rec := &testutils.Recorder[Item]{}
	ok, err := tryiter.AnySeq(slices.Values(testutils.Items("bar", testutils.Code(1))), rec.Wrap(testutils.Equals("bar")))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Len(t, rec.Seen, 1)

	ok, err = tryiter.AnySeq(slices.Values(testutils.Items("foo", testutils.Code(7777), "bar")), testutils.Equals("bar"))
	assert.Equal(t, testutils.Code(7777), err)
	assert.False(t, ok)

	ok, err = tryiter.AnySeq(slices.Values([]Item{}), testutils.Never[Item](t))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPositionSeq(t *testing.T) {
	idx, ok, err := tryiter.PositionSeq(slices.Values(testutils.Items("foo", "ayy", "bar")), testutils.Equals("bar"))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 2, idx)

	rec := &testutils.Recorder[Item]{}
	idx, ok, err = tryiter.PositionSeq(slices.Values(testutils.Items("foo", testutils.Code(8888), "bar")), rec.Wrap(testutils.Equals("bar")))
	assert.Equal(t, testutils.Code(8888), err)
	assert.False(t, ok)
	assert.Equal(t, -1, idx)
	assert.Len(t, rec.Seen, 2)

	idx, ok, err = tryiter.PositionSeq(slices.Values(testutils.Labels("k", 3)), equalTo("x"))
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, -1, idx)
}

func TestRPositionSlice(t *testing.T) {
	idx, ok, err := tryiter.RPositionSlice([]string{"a", "b", "a"}, equalTo("a"))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 2, idx)

	idx, ok, err = tryiter.RPositionSlice([]string{"a", "b", "c"}, equalTo("a"))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 0, idx)
}

func TestSeq(t *testing.T) {
	it := tryiter.Of(1, 2, 3, 4)
	var got []int
	for v := range tryiter.Seq[int](it) {
		got = append(got, v)
		if v == 2 {
			break
		}
	}
	assert.Equal(t, []int{1, 2}, got)
	assert.Equal(t, []int{3, 4}, it.Remaining())

	assert.Equal(t, []int{0, 1, 2}, slices.Collect(tryiter.Seq[int](ints(0, 3))))
}

func TestFromSeq(t *testing.T) {
	p := tryiter.FromSeq(slices.Values([]int{1, 2, 3}))
	defer p.Stop()

	idx, ok, err := tryiter.Position[int](p, equalTo(2))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 1, idx)

	v, ok := p.Next()
	require.True(t, ok)
	assert.Equal(t, 3, v)
	_, ok = p.Next()
	assert.False(t, ok)
}

func TestFromSeq_StopEarly(t *testing.T) {
	produced := 0
	seq := func(yield func(int) bool) {
		for i := 0; ; i++ {
			produced++
			if !yield(i) {
				return
			}
		}
	}

	p := tryiter.FromSeq(seq)
	ok, err := tryiter.Any[int](p, equalTo(4))
	require.NoError(t, err)
	require.True(t, ok)
	p.Stop()
	p.Stop()
	assert.Equal(t, 5, produced)
}

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

package testutils

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"github.com/xujiajun/utils/strconv2"
)

// Item is a scanned element that makes the predicate fail when Err is set.
type Item struct {
	Value string
	Err   error
}

// Code is a comparable error carrying a number, used to check that the exact
// failure a predicate produced reaches the caller.
type Code int

func (c Code) Error() string {
	return "code " + strconv2.IntToStr(int(c))
}

// Items builds a slice of Item: strings become values, errors become failures.
func Items(values ...any) []Item {
	items := make([]Item, 0, len(values))
	for _, v := range values {
		switch v := v.(type) {
		case string:
			items = append(items, Item{Value: v})
		case error:
			items = append(items, Item{Err: v})
		default:
			panic(errors.Errorf("unsupported item %T", v))
		}
	}
	return items
}

// Labels returns n distinct strings "<prefix>0" .. "<prefix>n-1".
func Labels(prefix string, n int) []string {
	labels := make([]string, n)
	for i := range labels {
		labels[i] = prefix + strconv2.IntToStr(i)
	}
	return labels
}

// Equals is a predicate matching items whose value is target. It fails with
// the item's own error.
func Equals(target string) func(Item) (bool, error) {
	return func(item Item) (bool, error) {
		if item.Err != nil {
			return false, item.Err
		}
		return item.Value == target, nil
	}
}

// Recorder remembers every value a predicate was called with.
type Recorder[T any] struct {
	Seen []T
}

// Wrap returns pred recording its argument before evaluating it.
func (r *Recorder[T]) Wrap(pred func(T) (bool, error)) func(T) (bool, error) {
	return func(v T) (bool, error) {
		r.Seen = append(r.Seen, v)
		return pred(v)
	}
}

// Never is a predicate that fails the test if it is ever called.
func Never[T any](t testing.TB) func(T) (bool, error) {
	return func(v T) (bool, error) {
		t.Helper()
		t.Fatalf("predicate called with %v", v)
		return false, nil
	}
}

func AssertErr(t *testing.T, err error, expectErr error) {
	if expectErr != nil {
		require.Equal(t, expectErr, err)
	} else {
		require.NoError(t, err)
	}
}

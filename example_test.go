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
	"errors"
	"fmt"

	"github.com/nutsdb/tryiter"
)

type result struct {
	value string
	err   error
}

func value(v string) result   { return result{value: v} }
func failure(code int) result { return result{err: fmt.Errorf("code %d", code)} }
func equals(target string) func(result) (bool, error) {
	return func(r result) (bool, error) {
		if r.err != nil {
			return false, r.err
		}
		return r.value == target, nil
	}
}

func ExampleAll() {
	items := tryiter.Of(value("foo"), value("foo"), value("foo"))
	res, err := tryiter.All[result](items, equals("foo"))
	fmt.Println(res, err)

	items = tryiter.Of(value("foo"), failure(4444), value("foo"))
	res, err = tryiter.All[result](items, equals("foo"))
	fmt.Println(res, err)
	// Output:
	// true <nil>
	// false code 4444
}

func ExampleAny() {
	items := tryiter.Of(value("foo"), value("ayy"), value("bar"))
	res, err := tryiter.Any[result](items, equals("bar"))
	fmt.Println(res, err)

	items = tryiter.Of(value("foo"), failure(7777), value("bar"))
	res, err = tryiter.Any[result](items, equals("bar"))
	fmt.Println(res, err)
	// Output:
	// true <nil>
	// false code 7777
}

func ExamplePosition() {
	items := tryiter.Of(value("foo"), value("ayy"), value("bar"))
	fmt.Println(tryiter.Position[result](items, equals("bar")))

	items = tryiter.Of(value("foo"), failure(8888), value("bar"))
	fmt.Println(tryiter.Position[result](items, equals("bar")))
	// Output:
	// 2 true <nil>
	// -1 false code 8888
}

func ExampleRPosition() {
	items := tryiter.Of(value("foo"), value("ayy"), value("bar"))
	fmt.Println(tryiter.RPosition[result](items, equals("foo")))

	// Scanning from the back reaches the failure before "foo".
	items = tryiter.Of(value("foo"), failure(9999), value("bar"))
	fmt.Println(tryiter.RPosition[result](items, equals("foo")))
	// Output:
	// 0 true <nil>
	// -1 false code 9999
}

func ExampleAllSeq() {
	errNegative := errors.New("negative")
	positive := func(v int) (bool, error) {
		if v < 0 {
			return false, errNegative
		}
		return v > 0, nil
	}

	fmt.Println(tryiter.AllSeq(tryiter.Seq[int](ints(1, 5)), positive))
	fmt.Println(tryiter.AllSeq(tryiter.Seq[int](ints(-1, 5)), positive))
	// Output:
	// true <nil>
	// false negative
}

func ExampleTrace() {
	tryiter.SetLogger(&testLogger{})
	defer tryiter.SetLogger(nil)

	it := tryiter.Trace[string](tryiter.Of("foo", "ayy", "bar"), "scan")
	fmt.Println(tryiter.Any(it, func(s string) (bool, error) { return s == "ayy", nil }))
	// Output:
	// testlogger:scan: foo
	// testlogger:scan: ayy
	// true <nil>
}

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

package zset

type SCORE float64

// SortedSetNode is a member of a SortedSet.
type SortedSetNode struct {
	key   string // unique key of this node
	Value []byte // associated data
	score SCORE  // score to determine the order of this node in the set
}

func (ssn *SortedSetNode) Key() string {
	return ssn.key
}

func (ssn *SortedSetNode) Score() SCORE {
	return ssn.score
}

func byScoreThenKey(a, b *SortedSetNode) bool {
	if a.score != b.score {
		return a.score < b.score
	}
	return a.key < b.key
}

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

import (
	"github.com/nutsdb/tryiter"
	"github.com/tidwall/btree"
)

// SortedSet keeps unique keys ordered by score, ties broken by key.
type SortedSet struct {
	tree *btree.BTreeG[*SortedSetNode]
	Dict map[string]*SortedSetNode
}

// Create a new SortedSet
func New() *SortedSet {
	return &SortedSet{
		tree: btree.NewBTreeGOptions(byScoreThenKey, btree.Options{NoLocks: true}),
		Dict: make(map[string]*SortedSetNode),
	}
}

// Get the number of elements
func (ss *SortedSet) Size() int {
	return ss.tree.Len()
}

// get the element with minimum score, nil if the set is empty
func (ss *SortedSet) PeekMin() *SortedSetNode {
	n, _ := ss.tree.Min()
	return n
}

// get and remove the element with minimal score, nil if the set is empty
func (ss *SortedSet) PopMin() *SortedSetNode {
	n, ok := ss.tree.PopMin()
	if ok {
		delete(ss.Dict, n.key)
	}
	return n
}

// get the element with maximum score, nil if the set is empty
func (ss *SortedSet) PeekMax() *SortedSetNode {
	n, _ := ss.tree.Max()
	return n
}

// get and remove the element with maximum score, nil if the set is empty
func (ss *SortedSet) PopMax() *SortedSetNode {
	n, ok := ss.tree.PopMax()
	if ok {
		delete(ss.Dict, n.key)
	}
	return n
}

// Put adds an element with specific key / value / score, or updates the
// existing one.
//
// Time complexity of this method is : O(log(N))
func (ss *SortedSet) Put(key string, score SCORE, value []byte) {
	if n, ok := ss.Dict[key]; ok {
		if n.score == score {
			n.Value = value
			return
		}
		ss.tree.Delete(n)
	}
	n := &SortedSetNode{key: key, score: score, Value: value}
	ss.tree.Set(n)
	ss.Dict[key] = n
}

// Remove deletes the element specified by key and returns it, or nil.
func (ss *SortedSet) Remove(key string) *SortedSetNode {
	n, ok := ss.Dict[key]
	if !ok {
		return nil
	}
	ss.tree.Delete(n)
	delete(ss.Dict, key)
	return n
}

// Get node by key
//
// If node is not found, nil is returned
// Time complexity : O(1)
func (ss *SortedSet) GetByKey(key string) *SortedSetNode {
	return ss.Dict[key]
}

type GetByScoreRangeOptions struct {
	Limit        int  // limit the max nodes to return
	ExcludeStart bool // exclude start value, so it search in interval (start, end] or (start, end)
	ExcludeEnd   bool // exclude end value, so it search in interval [start, end) or (start, end)
}

// GetByScoreRange returns the nodes whose score is within [start, end].
// If start is greater than end the nodes are returned highest score first.
// A nil options searches the closed interval without any limit.
func (ss *SortedSet) GetByScoreRange(start, end SCORE, options *GetByScoreRangeOptions) []*SortedSetNode {
	limit := ss.Size()
	if options != nil && options.Limit > 0 {
		limit = options.Limit
	}

	excludeStart := options != nil && options.ExcludeStart
	excludeEnd := options != nil && options.ExcludeEnd
	reverse := start > end
	if reverse {
		start, end = end, start
		excludeStart, excludeEnd = excludeEnd, excludeStart
	}

	inRange := func(n *SortedSetNode) bool {
		if n.score < start || (excludeStart && n.score == start) {
			return false
		}
		return n.score < end || (!excludeEnd && n.score == end)
	}

	var it tryiter.Iterator[*SortedSetNode] = ss.Iter()
	if reverse {
		it = tryiter.Rev(ss.Iter())
	}
	return tryiter.Collect(tryiter.Take(tryiter.Filter(it, inRange), limit))
}

// GetByRankRange returns the nodes within rank range [start, end].
// Note that the rank is 1-based integer. Rank 1 means the first node; Rank -1 means the last node;
//
// If start is greater than end, the returned array is in reversed order.
// If remove is true, the returned nodes are removed.
func (ss *SortedSet) GetByRankRange(start, end int, remove bool) []*SortedSetNode {
	size := ss.Size()
	if start < 0 {
		start = size + start + 1
	}
	if end < 0 {
		end = size + end + 1
	}
	start, end = max(start, 1), max(end, 1)

	reverse := start > end
	if reverse {
		start, end = end, start
	}

	it := tryiter.TakeReversible(tryiter.SkipReversible(ss.Iter(), start-1), end-start+1)
	if reverse {
		it = tryiter.Rev(it)
	}
	nodes := tryiter.Collect[*SortedSetNode](it)

	if remove {
		for _, n := range nodes {
			ss.Remove(n.key)
		}
	}
	return nodes
}

// GetByRank returns the node at rank, or nil.
// Note that the rank is 1-based integer. Rank 1 means the first node; Rank -1 means the last node;
func (ss *SortedSet) GetByRank(rank int, remove bool) *SortedSetNode {
	nodes := ss.GetByRankRange(rank, rank, remove)
	if len(nodes) == 1 {
		return nodes[0]
	}
	return nil
}

// FindRank returns the 1-based rank of key with the scores ordered from low
// to high, or 0 if the key is not a member.
func (ss *SortedSet) FindRank(key string) int {
	if _, ok := ss.Dict[key]; !ok {
		return 0
	}
	idx, found, err := tryiter.Position[*SortedSetNode](ss.Iter(), ss.hasKey(key))
	if err != nil || !found {
		return 0
	}
	return idx + 1
}

// FindRevRank returns the 1-based rank of key with the scores ordered from
// high to low, or 0 if the key is not a member.
func (ss *SortedSet) FindRevRank(key string) int {
	if _, ok := ss.Dict[key]; !ok {
		return 0
	}
	idx, found, err := tryiter.RPosition(ss.Iter(), ss.hasKey(key))
	if err != nil || !found {
		return 0
	}
	return ss.Size() - idx
}

func (ss *SortedSet) hasKey(key string) tryiter.Predicate[*SortedSetNode] {
	return func(n *SortedSetNode) (bool, error) {
		return n.key == key, nil
	}
}

// Iter returns an iterator over the nodes ordered by score. The set must not
// be modified while the iterator is in use.
func (ss *SortedSet) Iter() tryiter.Reversible[*SortedSetNode] {
	return tryiter.FromBTree(ss.tree)
}

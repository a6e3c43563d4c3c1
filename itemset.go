// Copyright 2022 Molecula Corp. (DBA FeatureBase).
// SPDX-License-Identifier: Apache-2.0
package analyzer

import (
	"fmt"
	"math/bits"
	"strconv"
	"strings"
)

// OneHotWidth is the number of items of layout version 1: the sum of the
// widths of the encoded fields.
const OneHotWidth = 34

const itemSetWords = (OneHotWidth + 63) / 64

// ItemSet is a set of items, each item being one bit of the one-hot layout.
// It is both the encoding of a single record and the representation of a
// mined pattern. The zero value is the empty set.
type ItemSet [itemSetWords]uint64

// FullItemSet returns the set of all OneHotWidth items. It is only used to
// display the item vocabulary.
func FullItemSet() ItemSet {
	var s ItemSet
	for i := 0; i < OneHotWidth; i++ {
		s.Set(i)
	}
	return s
}

// NewItemSet returns the set holding the given items.
func NewItemSet(items ...int) ItemSet {
	var s ItemSet
	for _, i := range items {
		s.Set(i)
	}
	return s
}

// Set adds item i to the set. It panics if i is outside the layout.
func (s *ItemSet) Set(i int) {
	if i < 0 || i >= OneHotWidth {
		panic(fmt.Sprintf("item %d out of range [0, %d)", i, OneHotWidth))
	}
	s[i/64] |= 1 << uint(i%64)
}

// Has reports whether item i is in the set.
func (s ItemSet) Has(i int) bool {
	if i < 0 || i >= OneHotWidth {
		return false
	}
	return s[i/64]&(1<<uint(i%64)) != 0
}

// Len returns the number of items in the set.
func (s ItemSet) Len() int {
	n := 0
	for _, w := range s {
		n += bits.OnesCount64(w)
	}
	return n
}

// IsEmpty reports whether the set has no items.
func (s ItemSet) IsEmpty() bool {
	return s == ItemSet{}
}

// Union returns the items in s or o.
func (s ItemSet) Union(o ItemSet) ItemSet {
	for i := range s {
		s[i] |= o[i]
	}
	return s
}

// IsSubset reports whether every item of s is in o.
func (s ItemSet) IsSubset(o ItemSet) bool {
	for i := range s {
		if s[i]&^o[i] != 0 {
			return false
		}
	}
	return true
}

// Iterator returns an iterator over the items in ascending order. Every call
// starts a new iteration.
func (s ItemSet) Iterator() *ItemIterator {
	return &ItemIterator{set: s, cur: s[0]}
}

// Items returns the items in ascending order.
func (s ItemSet) Items() []int {
	a := make([]int, 0, s.Len())
	for it := s.Iterator(); ; {
		i, ok := it.Next()
		if !ok {
			return a
		}
		a = append(a, i)
	}
}

// String returns the item indexes as "{0, 5, 12}".
func (s ItemSet) String() string {
	return s.format(strconv.Itoa)
}

func (s ItemSet) format(label func(int) string) string {
	var b strings.Builder
	b.WriteByte('{')
	for it, first := s.Iterator(), true; ; first = false {
		i, ok := it.Next()
		if !ok {
			break
		}
		if !first {
			b.WriteString(", ")
		}
		b.WriteString(label(i))
	}
	b.WriteByte('}')
	return b.String()
}

// ItemIterator walks the items of an ItemSet in ascending order.
type ItemIterator struct {
	set  ItemSet
	word int
	cur  uint64
}

// Next returns the next item, or false once the set is exhausted.
func (it *ItemIterator) Next() (int, bool) {
	for it.cur == 0 {
		it.word++
		if it.word >= len(it.set) {
			return 0, false
		}
		it.cur = it.set[it.word]
	}
	tz := bits.TrailingZeros64(it.cur)
	it.cur &= it.cur - 1
	return it.word*64 + tz, true
}

// Copyright 2022 Molecula Corp. (DBA FeatureBase).
// SPDX-License-Identifier: Apache-2.0

// Package dci mines the closed itemsets of a transposed matrix using the
// DCI-Closed divide and conquer search over item tidsets.
//
// Every node of the search holds a closed itemset C and its tidset T. A
// generator C+i is extended into its closure by adding every later item whose
// row covers T(C+i). A generator whose tidset is covered by the row of an item
// already explored at the same level (the pre-set) is a duplicate and is
// pruned; no closed itemset is visited twice, so no result set has to be kept
// around for duplicate checks.
package dci

import (
	"context"
	"runtime"

	"github.com/RoaringBitmap/roaring"
	"github.com/molecula/analyzer"
	"github.com/molecula/analyzer/errors"
	"github.com/molecula/analyzer/logger"
	"golang.org/x/sync/errgroup"
)

var _ analyzer.Miner = (*Miner)(nil)

// Miner finds closed itemsets. The branches of the top level of the search
// run concurrently, at most Workers at a time.
type Miner struct {
	Workers int
	Logger  logger.Logger
}

// New returns a Miner running at most workers branches at once. A
// non-positive count means GOMAXPROCS.
func New(workers int) *Miner {
	return &Miner{Workers: workers, Logger: logger.NopLogger}
}

// Closed returns every closed itemset of m whose support is at least minSup,
// in search order. A threshold of 0 is treated as 1: itemsets held by no
// transaction are not reported.
func (mn *Miner) Closed(ctx context.Context, m *analyzer.Matrix, minSup uint64) ([]analyzer.Result, error) {
	if m.Height() > analyzer.OneHotWidth {
		return nil, errors.Newf(errors.ErrConfiguration, "matrix has %d items, at most %d are supported", m.Height(), analyzer.OneHotWidth)
	}
	if minSup == 0 {
		minSup = 1
	}
	log := mn.Logger
	if log == nil {
		log = logger.NopLogger
	}
	workers := mn.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	width := uint64(m.Width())
	if width < minSup {
		return nil, nil
	}

	// The closure of the empty set holds the items present in every
	// transaction; the frequent remaining items seed the search.
	var root analyzer.ItemSet
	post := make([]int, 0, m.Height())
	for i := 0; i < m.Height(); i++ {
		switch card := m.Row(i).GetCardinality(); {
		case card == width:
			root.Set(i)
		case card >= minSup:
			post = append(post, i)
		}
	}

	var results []analyzer.Result
	if !root.IsEmpty() {
		results = append(results, analyzer.Result{Items: root, Support: width})
	}
	rootTids := m.Transactions(root)

	branches := make([][]analyzer.Result, len(post))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for k := range post {
		k := k
		g.Go(func() error {
			s := &search{ctx: ctx, m: m, minSup: minSup}
			// Items earlier in the order form the pre-set of this branch.
			s.branch(root, rootTids, post[:k], post[k], post[k+1:])
			branches[k] = s.results
			return s.err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, b := range branches {
		results = append(results, b...)
	}
	log.Debugf("found %d closed itemsets in %d branches with minsup %d", len(results), len(post), minSup)
	return results, nil
}

// search is the state of one top level branch.
type search struct {
	ctx    context.Context
	m      *analyzer.Matrix
	minSup uint64

	results []analyzer.Result
	err     error
}

// expand explores every generator closed+i for i in post, in order.
func (s *search) expand(closed analyzer.ItemSet, tids *roaring.Bitmap, pre, post []int) {
	// pre is extended below; copy it so sibling calls keep their own view.
	pre = append(make([]int, 0, len(pre)+len(post)), pre...)
	for k, i := range post {
		if s.err != nil {
			return
		}
		if s.branch(closed, tids, pre, i, post[k+1:]) {
			pre = append(pre, i)
		}
	}
}

// branch explores the generator closed+i. It reports whether the generator
// was frequent.
func (s *search) branch(closed analyzer.ItemSet, tids *roaring.Bitmap, pre []int, i int, post []int) bool {
	if err := s.ctx.Err(); err != nil {
		s.err = err
		return false
	}

	gen := roaring.And(tids, s.m.Row(i))
	support := gen.GetCardinality()
	if support < s.minSup {
		return false
	}
	for _, j := range pre {
		if covers(s.m.Row(j), gen, support) {
			return true
		}
	}

	closure := closed
	closure.Set(i)
	next := make([]int, 0, len(post))
	for _, j := range post {
		if covers(s.m.Row(j), gen, support) {
			closure.Set(j)
		} else {
			next = append(next, j)
		}
	}
	s.results = append(s.results, analyzer.Result{Items: closure, Support: support})
	s.expand(closure, gen, pre, next)
	return true
}

// covers reports whether row holds every transaction of tids, whose
// cardinality is card.
func covers(row, tids *roaring.Bitmap, card uint64) bool {
	return row.AndCardinality(tids) == card
}

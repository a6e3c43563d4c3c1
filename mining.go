// Copyright 2022 Molecula Corp. (DBA FeatureBase).
// SPDX-License-Identifier: Apache-2.0
package analyzer

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math"
	"sort"

	"github.com/molecula/analyzer/errors"
)

// Result is a closed itemset and the number of transactions holding it.
type Result struct {
	Items   ItemSet
	Support uint64
}

// Miner finds the closed itemsets of a matrix whose support is at least
// minSup.
type Miner interface {
	Closed(ctx context.Context, m *Matrix, minSup uint64) ([]Result, error)
}

// ValidateMinSupportRatio returns an errors.ErrConfiguration error unless
// ratio is in [0, 1].
func ValidateMinSupportRatio(ratio float64) error {
	if !(ratio >= 0 && ratio <= 1) {
		return errors.Newf(errors.ErrConfiguration, "invalid minimum support: %v", ratio)
	}
	return nil
}

// MinSupport converts a support ratio to an absolute transaction count,
// rounding down.
func MinSupport(transactions int, ratio float64) uint64 {
	return uint64(math.Floor(float64(transactions) * ratio))
}

// SortResults orders results by descending support. Results of equal support
// keep their relative order.
func SortResults(results []Result) {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Support > results[j].Support
	})
}

// Mine computes the absolute threshold from ratio, runs miner and returns its
// results sorted by descending support.
func Mine(ctx context.Context, miner Miner, m *Matrix, ratio float64) (uint64, []Result, error) {
	if err := ValidateMinSupportRatio(ratio); err != nil {
		return 0, nil, err
	}
	minSup := MinSupport(m.Width(), ratio)
	results, err := miner.Closed(ctx, m, minSup)
	if err != nil {
		return minSup, nil, errors.Wrap(err, "mining closed itemsets")
	}
	SortResults(results)
	return minSup, results, nil
}

// WriteReport writes the mining report: the transaction count, the item
// vocabulary, the threshold, then one line per result.
func WriteReport(w io.Writer, m *Matrix, enc *Encoder, ratio float64, minSup uint64, results []Result) error {
	bw := bufio.NewWriter(w)
	transactions := m.Width()

	fmt.Fprintf(bw, "Transactions: %d\n", transactions)
	fmt.Fprintf(bw, "Items (%d): %s\n", enc.Width(), enc.Format(FullItemSet()))
	fmt.Fprintf(bw, "minsup: %d (%.1f%%)\n", minSup, 100*ratio)

	for _, r := range results {
		pct := 0.0
		if transactions > 0 {
			pct = float64(r.Support) * 100 / float64(transactions)
		}
		fmt.Fprintf(bw, "%d (%.1f%%): %s\n", r.Support, pct, enc.Format(r.Items))
	}
	return bw.Flush()
}

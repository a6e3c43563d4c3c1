// Copyright 2022 Molecula Corp. (DBA FeatureBase).
// SPDX-License-Identifier: Apache-2.0
package analyzer_test

import (
	"math/rand"
	"testing"

	"github.com/RoaringBitmap/roaring"
	"github.com/molecula/analyzer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssemble(t *testing.T) {
	enc := analyzer.NewEncoder()
	rng := rand.New(rand.NewSource(21))
	records := make([]analyzer.Record, 50)
	for j := range records {
		records[j] = decode(t, randomLine(rng))
	}
	before := append([]analyzer.Record(nil), records...)

	m := analyzer.Assemble(records, enc)
	assert.Equal(t, before, records)
	assert.Equal(t, analyzer.OneHotWidth, m.Height())
	assert.Equal(t, len(records), m.Width())

	for j := range records {
		s := enc.Encode(&records[j])
		for i := 0; i < m.Height(); i++ {
			assert.Equal(t, s.Has(i), m.Bit(i, j), "bit (%d, %d)", i, j)
		}
		assert.Equal(t, uint64(1), m.Transactions(s).GetCardinality()-countEqual(records, enc, s, j))
	}
}

// countEqual counts the records other than skip encoding to exactly s.
func countEqual(records []analyzer.Record, enc *analyzer.Encoder, s analyzer.ItemSet, skip int) uint64 {
	var n uint64
	for j := range records {
		if j != skip && enc.Encode(&records[j]) == s {
			n++
		}
	}
	return n
}

func TestAssemble_Empty(t *testing.T) {
	m := analyzer.Assemble(nil, analyzer.NewEncoder())
	assert.Equal(t, analyzer.OneHotWidth, m.Height())
	assert.Zero(t, m.Width())
	assert.Zero(t, m.Support(analyzer.ItemSet{}))
}

func TestMatrix_Support(t *testing.T) {
	// Transactions: {0,1}, {0,1,2}, {0,2}, {}
	m := analyzer.NewMatrix(3, 4)
	m.Set(0, 0)
	m.Set(1, 0)
	m.Set(0, 1)
	m.Set(1, 1)
	m.Set(2, 1)
	m.Set(0, 2)
	m.Set(2, 2)

	assert.Equal(t, uint64(4), m.Support(analyzer.ItemSet{}))
	assert.Equal(t, uint64(3), m.Support(analyzer.NewItemSet(0)))
	assert.Equal(t, uint64(2), m.Support(analyzer.NewItemSet(0, 1)))
	assert.Equal(t, uint64(1), m.Support(analyzer.NewItemSet(0, 1, 2)))
	assert.Equal(t, uint64(0), m.Support(analyzer.NewItemSet(5)))
	assert.Equal(t, []uint32{0, 1}, m.Transactions(analyzer.NewItemSet(1)).ToArray())

	// The returned bitmap is a copy.
	m.Transactions(analyzer.NewItemSet(1)).Add(3)
	assert.False(t, m.Bit(1, 3))

	assert.False(t, m.Bit(0, 4))
	assert.Panics(t, func() { m.Set(0, 4) })
}

func TestMatrix_Equal(t *testing.T) {
	a := analyzer.NewMatrix(2, 3)
	b := analyzer.NewMatrix(2, 3)
	assert.True(t, a.Equal(b))

	a.Set(1, 2)
	assert.False(t, a.Equal(b))
	b.Set(1, 2)
	assert.True(t, a.Equal(b))

	assert.False(t, a.Equal(analyzer.NewMatrix(2, 4)))
	assert.False(t, a.Equal(analyzer.NewMatrix(3, 3)))
}

func TestNewMatrixFromRows(t *testing.T) {
	m, err := analyzer.NewMatrixFromRows([]*roaring.Bitmap{roaring.BitmapOf(0, 4), roaring.New()}, 5)
	require.NoError(t, err)
	assert.True(t, m.Bit(0, 4))

	_, err = analyzer.NewMatrixFromRows([]*roaring.Bitmap{roaring.BitmapOf(5)}, 5)
	assert.Error(t, err)
	_, err = analyzer.NewMatrixFromRows([]*roaring.Bitmap{nil}, 5)
	assert.Error(t, err)
	_, err = analyzer.NewMatrixFromRows(nil, -1)
	assert.Error(t, err)
}

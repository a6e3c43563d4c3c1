// Copyright 2022 Molecula Corp. (DBA FeatureBase).
// SPDX-License-Identifier: Apache-2.0
package analyzer

import (
	"fmt"
	"math"

	"github.com/RoaringBitmap/roaring"
)

// Matrix is the transposed (vertical) bit matrix of a dataset: one row per
// item, one column per transaction. Row i holds the set of transactions
// containing item i, so the support of an itemset is the cardinality of the
// intersection of its rows.
//
// A Matrix is immutable once assembled or loaded and may then be read
// concurrently.
type Matrix struct {
	rows  []*roaring.Bitmap
	width int
}

// NewMatrix returns an all-zero matrix of height items and width
// transactions.
func NewMatrix(height, width int) *Matrix {
	if height < 0 || width < 0 || int64(width) > math.MaxUint32 {
		panic(fmt.Sprintf("invalid matrix dimensions %dx%d", height, width))
	}
	m := &Matrix{
		rows:  make([]*roaring.Bitmap, height),
		width: width,
	}
	for i := range m.rows {
		m.rows[i] = roaring.New()
	}
	return m
}

// NewMatrixFromRows returns a matrix made of the given rows. It fails when a
// row holds a transaction outside [0, width).
func NewMatrixFromRows(rows []*roaring.Bitmap, width int) (*Matrix, error) {
	if width < 0 || int64(width) > math.MaxUint32 {
		return nil, fmt.Errorf("invalid matrix width %d", width)
	}
	for i, row := range rows {
		if row == nil {
			return nil, fmt.Errorf("row %d is nil", i)
		}
		if !row.IsEmpty() && int64(row.Maximum()) >= int64(width) {
			return nil, fmt.Errorf("row %d holds transaction %d beyond width %d", i, row.Maximum(), width)
		}
	}
	return &Matrix{rows: rows, width: width}, nil
}

// Assemble transposes the one-hot encodings of records into a Matrix of
// enc.Width() items by len(records) transactions: bit (i, j) is set iff
// record j has item i. records is not modified.
func Assemble(records []Record, enc *Encoder) *Matrix {
	m := NewMatrix(enc.Width(), len(records))
	for j := range records {
		s := enc.Encode(&records[j])
		for it := s.Iterator(); ; {
			i, ok := it.Next()
			if !ok {
				break
			}
			m.rows[i].Add(uint32(j))
		}
	}
	for _, row := range m.rows {
		row.RunOptimize()
	}
	return m
}

// Height returns the number of items.
func (m *Matrix) Height() int { return len(m.rows) }

// Width returns the number of transactions.
func (m *Matrix) Width() int { return m.width }

// Row returns the transactions holding item i. The bitmap must not be
// modified.
func (m *Matrix) Row(i int) *roaring.Bitmap { return m.rows[i] }

// Set sets bit (i, j). It is only meant for building matrices.
func (m *Matrix) Set(i, j int) {
	if j < 0 || j >= m.width {
		panic(fmt.Sprintf("transaction %d out of range [0, %d)", j, m.width))
	}
	m.rows[i].Add(uint32(j))
}

// Bit reports whether transaction j holds item i.
func (m *Matrix) Bit(i, j int) bool {
	if j < 0 || j >= m.width {
		return false
	}
	return m.rows[i].Contains(uint32(j))
}

// Transactions returns the transactions holding every item of s. The empty
// set is held by every transaction.
func (m *Matrix) Transactions(s ItemSet) *roaring.Bitmap {
	items := s.Items()
	if len(items) == 0 {
		all := roaring.New()
		all.AddRange(0, uint64(m.width))
		return all
	}
	rows := make([]*roaring.Bitmap, 0, len(items))
	for _, i := range items {
		if i >= len(m.rows) {
			return roaring.New()
		}
		rows = append(rows, m.rows[i])
	}
	if len(rows) == 1 {
		return rows[0].Clone()
	}
	return roaring.FastAnd(rows...)
}

// Support returns the number of transactions holding every item of s.
func (m *Matrix) Support(s ItemSet) uint64 {
	return m.Transactions(s).GetCardinality()
}

// Equal reports whether m and o have the same dimensions and bits.
func (m *Matrix) Equal(o *Matrix) bool {
	if m.width != o.width || len(m.rows) != len(o.rows) {
		return false
	}
	for i := range m.rows {
		if !m.rows[i].Equals(o.rows[i]) {
			return false
		}
	}
	return true
}

// Copyright 2022 Molecula Corp. (DBA FeatureBase).
// SPDX-License-Identifier: Apache-2.0
package analyzer

import (
	"bytes"
	"fmt"
	"io"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Distribution keeps, for every field, the number of accepted records holding
// each value. Counts only ever grow.
type Distribution struct {
	total  int
	counts []map[uint16]int // parallel to Fields
}

// NewDistribution returns a new, empty Distribution.
func NewDistribution() *Distribution {
	d := &Distribution{
		counts: make([]map[uint16]int, len(Fields)),
	}
	for i := range d.counts {
		d.counts[i] = make(map[uint16]int)
	}
	return d
}

// Insert counts every field value of rec.
func (d *Distribution) Insert(rec *Record) {
	for i := range Fields {
		d.counts[i][Fields[i].Value(rec)]++
	}
	d.total++
}

// Total returns the number of records inserted.
func (d *Distribution) Total() int {
	return d.total
}

// Counts returns the count of every observed value of the named field, keyed
// by display form. It returns nil for an unknown field.
func (d *Distribution) Counts(field string) map[string]int {
	for i := range Fields {
		if Fields[i].Name != field {
			continue
		}
		m := make(map[string]int, len(d.counts[i]))
		for v, n := range d.counts[i] {
			m[Fields[i].Format(v)] = n
		}
		return m
	}
	return nil
}

// WriteTo writes the textual report: the record total, then for every field
// each observed value with its count and percentage, values in ascending
// order.
func (d *Distribution) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	total := float64(d.total)

	fmt.Fprintf(&buf, "records: %d\n", d.total)
	for i := range Fields {
		f := &Fields[i]
		fmt.Fprintf(&buf, "%s:\n", f.Name)

		values := maps.Keys(d.counts[i])
		slices.Sort(values)

		for _, v := range values {
			n := d.counts[i][v]
			fmt.Fprintf(&buf, "\t%s: %d (%.1f%%)\n", f.Format(v), n, float64(n)*100/total)
		}
	}
	return buf.WriteTo(w)
}

func (d *Distribution) String() string {
	var buf bytes.Buffer
	_, _ = d.WriteTo(&buf)
	return buf.String()
}

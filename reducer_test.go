// Copyright 2022 Molecula Corp. (DBA FeatureBase).
// SPDX-License-Identifier: Apache-2.0
package analyzer_test

import (
	"sort"
	"testing"

	"github.com/molecula/analyzer"
	"github.com/stretchr/testify/assert"
)

func permutations(a []uint16) [][]uint16 {
	if len(a) <= 1 {
		return [][]uint16{append([]uint16(nil), a...)}
	}
	var out [][]uint16
	for i := range a {
		rest := make([]uint16, 0, len(a)-1)
		rest = append(rest, a[:i]...)
		rest = append(rest, a[i+1:]...)
		for _, p := range permutations(rest) {
			out = append(out, append([]uint16{a[i]}, p...))
		}
	}
	return out
}

func TestRecidivistReducer(t *testing.T) {
	for _, years := range permutations([]uint16{2005, 2001, 2009}) {
		r := analyzer.NewRecidivistReducer()
		var emitted []uint16
		for _, y := range years {
			if rec, ok := r.Reduce([]byte("subject"), analyzer.Record{AdmissionYear: y}); ok {
				emitted = append(emitted, rec.AdmissionYear)
			}
		}
		sort.Slice(emitted, func(i, j int) bool { return emitted[i] < emitted[j] })
		assert.Equal(t, []uint16{2005, 2009}, emitted, "input order %v", years)
		assert.Equal(t, 1, r.Subjects())
	}
}

func TestRecidivistReducer_Subjects(t *testing.T) {
	r := analyzer.NewRecidivistReducer()
	id := []byte("a")
	_, ok := r.Reduce(id, analyzer.Record{AdmissionYear: 2000})
	assert.False(t, ok)

	// The identifier buffer may be reused by the caller.
	id[0] = 'b'
	_, ok = r.Reduce(id, analyzer.Record{AdmissionYear: 2000})
	assert.False(t, ok)
	assert.Equal(t, 2, r.Subjects())

	rec, ok := r.Reduce([]byte("a"), analyzer.Record{AdmissionYear: 2000})
	assert.True(t, ok)
	assert.Equal(t, uint16(2000), rec.AdmissionYear)
}

// Copyright 2022 Molecula Corp. (DBA FeatureBase).
// SPDX-License-Identifier: Apache-2.0
package analyzer_test

import (
	"math/rand"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/molecula/analyzer"
	"github.com/molecula/analyzer/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistribution_Counts(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	d := analyzer.NewDistribution()
	var records []analyzer.Record
	for n := 0; n < 300; n++ {
		rec := decode(t, randomLine(rng).Year(1990+rng.Intn(20)))
		records = append(records, rec)
		d.Insert(&rec)
	}
	assert.Equal(t, len(records), d.Total())

	for i := range analyzer.Fields {
		f := &analyzer.Fields[i]
		want := make(map[string]int)
		for j := range records {
			want[f.Format(f.Value(&records[j]))]++
		}
		assert.Equal(t, want, d.Counts(f.Name), f.Name)
	}
	assert.Nil(t, d.Counts("shoe_size"))
}

var reportValue = regexp.MustCompile(`^\t.+: (\d+) \((\d+\.\d)%\)$`)

func TestDistribution_Report(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	d := analyzer.NewDistribution()
	for n := 0; n < 7; n++ {
		rec := decode(t, randomLine(rng))
		d.Insert(&rec)
	}

	lines := strings.Split(strings.TrimSuffix(d.String(), "\n"), "\n")
	require.Equal(t, "records: 7", lines[0])

	// Every field section sums to the total, and its percentages to 100.
	var field string
	var count int
	var pct float64
	check := func() {
		if field == "" {
			return
		}
		assert.Equal(t, 7, count, field)
		assert.InDelta(t, 100.0, pct, 0.05*float64(len(analyzer.Fields)), field)
	}
	sections := 0
	for _, line := range lines[1:] {
		if m := reportValue.FindStringSubmatch(line); m != nil {
			n, _ := strconv.Atoi(m[1])
			p, _ := strconv.ParseFloat(m[2], 64)
			count += n
			pct += p
			continue
		}
		check()
		require.True(t, strings.HasSuffix(line, ":"), line)
		field, count, pct = strings.TrimSuffix(line, ":"), 0, 0
		sections++
	}
	check()
	assert.Equal(t, len(analyzer.Fields), sections)
}

func TestDistribution_Format(t *testing.T) {
	d := analyzer.NewDistribution()
	a := decode(t, test.NewLine("a"))
	b := decode(t, test.NewLine("b").With("sex", "2"))
	c := decode(t, test.NewLine("c").With("sex", "2"))
	for _, rec := range []*analyzer.Record{&a, &b, &c} {
		d.Insert(rec)
	}
	out := d.String()
	assert.True(t, strings.HasPrefix(out, "records: 3\nsex:\n\tmale: 1 (33.3%)\n\tfemale: 2 (66.7%)\nadmission_type:\n\tnew: 3 (100.0%)\n"), out)
	assert.Contains(t, out, "admission_year:\n\t2005: 3 (100.0%)\n")
	assert.Contains(t, out, "state:\n\tCA: 3 (100.0%)\n")

	var sb strings.Builder
	n, err := d.WriteTo(&sb)
	require.NoError(t, err)
	assert.Equal(t, int64(len(out)), n)
}

// Copyright 2022 Molecula Corp. (DBA FeatureBase).
// SPDX-License-Identifier: Apache-2.0
package analyzer_test

import (
	"testing"

	"github.com/molecula/analyzer"
	"github.com/molecula/analyzer/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, l test.Line) analyzer.Record {
	t.Helper()
	rec, err := analyzer.DecodeRecord(l.Fields())
	require.NoError(t, err)
	return rec
}

func TestFilter_MissingRace(t *testing.T) {
	var none analyzer.Filter
	white := analyzer.RaceWhite
	female := analyzer.SexFemale

	for _, l := range []test.Line{
		test.NewLine("a"),
		test.NewLine("a").With("sex", "2"),
		test.NewLine("a").With("offense_type", "3").With("sentence", "0"),
		test.NewLine("a").With("education", "2").With("state", "99"),
	} {
		rec := decode(t, l)
		assert.True(t, none.Accept(&rec))

		rec = decode(t, l.With("race", "9"))
		assert.False(t, analyzer.IsComplete(&rec))
		assert.False(t, none.Accept(&rec))
		assert.False(t, (&analyzer.Filter{Race: &white}).Accept(&rec))
		assert.False(t, (&analyzer.Filter{Sex: &female}).Accept(&rec))
	}
}

func TestFilter_Required(t *testing.T) {
	for _, tc := range []struct {
		column, missing string
		required        bool
	}{
		{"admission_type", "9", true},
		{"offense_type", "9", true},
		{"sentence", "9", true},
		{"race", "9", true},
		{"age_admission", "9", true},
		{"time_served", "9", true},
		{"release_type", " ", true},
		{"education", "9", false},
		{"offense_detail", "99", false},
		{"age_release", "9", false},
		{"state", "99", false},
		{"admission_year", " ", false},
	} {
		rec := decode(t, test.NewLine("a").With(tc.column, tc.missing))
		assert.Equal(t, !tc.required, analyzer.IsComplete(&rec), tc.column)
	}
}

func TestFilter_Attributes(t *testing.T) {
	rec := decode(t, test.NewLine("a").With("sex", "2").With("admission_type", "2").With("race", "3").With("offense_type", "3"))

	female, male := analyzer.SexFemale, analyzer.SexMale
	parole, newAdm := analyzer.AdmissionParole, analyzer.AdmissionNew
	hispanic, black := analyzer.RaceHispanic, analyzer.RaceBlack
	drugs, violent := analyzer.OffenseDrugs, analyzer.OffenseViolent

	assert.True(t, (&analyzer.Filter{Sex: &female, AdmissionType: &parole, Race: &hispanic, OffenseType: &drugs}).Accept(&rec))
	assert.True(t, (&analyzer.Filter{Race: &hispanic}).Accept(&rec))
	assert.False(t, (&analyzer.Filter{Sex: &male}).Accept(&rec))
	assert.False(t, (&analyzer.Filter{AdmissionType: &newAdm}).Accept(&rec))
	assert.False(t, (&analyzer.Filter{Race: &black}).Accept(&rec))
	assert.False(t, (&analyzer.Filter{OffenseType: &violent}).Accept(&rec))
	assert.False(t, (&analyzer.Filter{Sex: &female, Race: &black}).Accept(&rec))
}

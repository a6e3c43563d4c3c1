// Copyright 2022 Molecula Corp. (DBA FeatureBase).
// SPDX-License-Identifier: Apache-2.0
package analyzer_test

import (
	"testing"

	"github.com/molecula/analyzer"
	"github.com/molecula/analyzer/errors"
	"github.com/molecula/analyzer/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeRecord(t *testing.T) {
	line := test.NewLine("X").
		With("sex", "2").
		With("sentence", "6").
		With("mandatory_release_year", "2031").
		With("release_type", " ").
		With("state", "36")

	rec, err := analyzer.DecodeRecord(line.Fields())
	require.NoError(t, err)
	assert.Equal(t, analyzer.Record{
		Sex:                   analyzer.SexFemale,
		AdmissionType:         analyzer.AdmissionNew,
		OffenseType:           analyzer.OffenseViolent,
		Education:             analyzer.EducationMissing,
		AdmissionYear:         2005,
		ReleaseYear:           2007,
		MandatoryReleaseYear:  2031,
		ProjectedReleaseYear:  0,
		ParoleEligibilityYear: 0,
		Sentence:              analyzer.SentenceLife,
		OffenseDetail:         rec.OffenseDetail,
		Race:                  analyzer.RaceWhite,
		AgeAdmission:          analyzer.Age25To34,
		AgeRelease:            analyzer.Age25To34,
		TimeServed:            analyzer.TimeServed1To2,
		ReleaseType:           analyzer.ReleaseMissing,
		State:                 rec.State,
	}, rec)
	assert.Equal(t, "1", rec.OffenseDetail.Code())
	assert.Equal(t, "NY", rec.State.String())
	assert.Equal(t, 17, analyzer.ColumnCount)
}

func TestDecodeRecord_Invalid(t *testing.T) {
	for _, tc := range []struct {
		column, raw string
	}{
		{"sex", "0"},
		{"admission_type", "4"},
		{"offense_type", ""},
		{"education", "4"},
		{"admission_year", "twenty"},
		{"release_year", "70000"},
		{"parole_eligibility_year", "-1"},
		{"sentence", "7"},
		{"offense_detail", "15"},
		{"race", "5"},
		{"age_admission", "0"},
		{"age_release", "6"},
		{"time_served", "5"},
		{"release_type", "9"},
		{"state", "3"},
	} {
		_, err := analyzer.DecodeRecord(test.NewLine("X").With(tc.column, tc.raw).Fields())
		require.Error(t, err, tc.column)

		var de *analyzer.DecodeError
		require.ErrorAs(t, err, &de, tc.column)
		assert.Equal(t, tc.column, de.Field)
		assert.Equal(t, tc.raw, string(de.Raw))
		assert.True(t, errors.Is(err, errors.ErrFieldDecode))
	}
}

func TestDecodeRecord_FieldCount(t *testing.T) {
	fields := test.NewLine("X").Fields()

	_, err := analyzer.DecodeRecord(fields[:15])
	var de *analyzer.DecodeError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "release_type", de.Field)
	assert.Contains(t, err.Error(), "missing field")

	_, err = analyzer.DecodeRecord(append(fields, []byte("extra")))
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "record", de.Field)
	assert.Equal(t, "extra", string(de.Raw))
}

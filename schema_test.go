// Copyright 2022 Molecula Corp. (DBA FeatureBase).
// SPDX-License-Identifier: Apache-2.0
package analyzer_test

import (
	"testing"

	"github.com/molecula/analyzer"
	"github.com/molecula/analyzer/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	sex, err := analyzer.ParseSex([]byte("2"))
	require.NoError(t, err)
	assert.Equal(t, analyzer.SexFemale, sex)
	assert.Equal(t, "2", sex.Code())
	assert.Equal(t, "female", sex.String())
	assert.False(t, sex.IsMissing())

	race, err := analyzer.ParseRace([]byte("9"))
	require.NoError(t, err)
	assert.Equal(t, analyzer.RaceMissing, race)
	assert.True(t, race.IsMissing())

	rt, err := analyzer.ParseReleaseType([]byte(" "))
	require.NoError(t, err)
	assert.Equal(t, analyzer.ReleaseMissing, rt)
	assert.True(t, rt.IsMissing())

	st, err := analyzer.ParseState([]byte("99"))
	require.NoError(t, err)
	assert.Equal(t, analyzer.StateMissing, st)
	st, err = analyzer.ParseState([]byte("48"))
	require.NoError(t, err)
	assert.Equal(t, "TX", st.String())
	assert.Equal(t, "48", st.Code())
}

func TestParseInvalid(t *testing.T) {
	_, err := analyzer.ParseRace([]byte("7"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrFieldDecode))
	assert.Equal(t, `race: invalid race: "7"`, err.Error())

	// Sex has no missing code.
	_, err = analyzer.ParseSex([]byte("9"))
	assert.Error(t, err)

	// Release type uses a blank, not 9.
	_, err = analyzer.ParseReleaseType([]byte("9"))
	assert.Error(t, err)
}

func TestCategorical(t *testing.T) {
	for _, c := range []analyzer.Categorical{
		analyzer.SexMale,
		analyzer.AdmissionParole,
		analyzer.RaceBlack,
		analyzer.Age55Plus,
	} {
		assert.NotEmpty(t, c.Code())
		assert.NotEmpty(t, c.String())
		assert.False(t, c.IsMissing())
	}
}

// Copyright 2022 Molecula Corp. (DBA FeatureBase).
// SPDX-License-Identifier: Apache-2.0
package analyzer_test

import (
	"strings"
	"testing"
	"testing/iotest"

	"github.com/molecula/analyzer"
	"github.com/molecula/analyzer/errors"
	"github.com/molecula/analyzer/logger"
	"github.com/molecula/analyzer/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIngest_UnknownRace(t *testing.T) {
	input := test.Input(
		test.NewLine("1"),
		test.NewLine("2").With("race", "7"),
		test.NewLine("3").With("sex", "2"),
	)
	log := logger.NewBufferLogger()

	ing, err := analyzer.Ingest(strings.NewReader(input), analyzer.IngestOptions{Logger: log})
	require.NoError(t, err)
	assert.Len(t, ing.Records, 2)
	assert.Equal(t, 3, ing.Lines)
	assert.Equal(t, 1, ing.Skipped)
	assert.Equal(t, 2, ing.Distribution.Total())
	assert.True(t, strings.HasPrefix(ing.Distribution.String(), "records: 2\n"))

	buf, err := log.ReadAll()
	require.NoError(t, err)
	var warnings []string
	for _, line := range strings.Split(string(buf), "\n") {
		if strings.HasPrefix(line, logger.LevelPrefix(logger.LevelWarn)) {
			warnings = append(warnings, line)
		}
	}
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], `invalid record at line 2: race: invalid race: "7"`)
	assert.Contains(t, string(buf), `"2\t1\t1\t1\t9`)
	assert.Contains(t, string(buf), "Importing dataset took")
}

func TestIngest_Filters(t *testing.T) {
	input := test.Input(
		test.NewLine("a").Year(2001),
		test.NewLine("a").Year(2003),
		test.NewLine("b").Year(2002).With("race", "9"),
		test.NewLine("b").Year(2000),
		test.NewLine("c").Year(2004).With("sex", "2"),
		test.NewLine("c").Year(2008).With("sex", "2"),
	)

	ing, err := analyzer.Ingest(strings.NewReader(input), analyzer.IngestOptions{})
	require.NoError(t, err)
	assert.Len(t, ing.Records, 5)
	assert.Equal(t, 1, ing.Rejected)

	ing, err = analyzer.Ingest(strings.NewReader(input), analyzer.IngestOptions{Recidivists: true})
	require.NoError(t, err)
	assert.Equal(t, 3, ing.Withheld)
	// b's later record has a missing race and is the one emitted.
	assert.Equal(t, 1, ing.Rejected)
	require.Len(t, ing.Records, 2)
	assert.Equal(t, uint16(2003), ing.Records[0].AdmissionYear)
	assert.Equal(t, uint16(2008), ing.Records[1].AdmissionYear)

	female := analyzer.SexFemale
	ing, err = analyzer.Ingest(strings.NewReader(input), analyzer.IngestOptions{
		Recidivists: true,
		Filter:      analyzer.Filter{Sex: &female},
	})
	require.NoError(t, err)
	require.Len(t, ing.Records, 1)
	assert.Equal(t, analyzer.SexFemale, ing.Records[0].Sex)
}

func TestIngest_LineEndings(t *testing.T) {
	input := test.Header + "\r\n" + test.NewLine("a").String() + "\r\n" + test.NewLine("b").String()
	ing, err := analyzer.Ingest(strings.NewReader(input), analyzer.IngestOptions{})
	require.NoError(t, err)
	assert.Equal(t, 2, ing.Lines)
	assert.Len(t, ing.Records, 2)
}

func TestIngest_Empty(t *testing.T) {
	for _, input := range []string{"", test.Header, test.Header + "\n"} {
		ing, err := analyzer.Ingest(strings.NewReader(input), analyzer.IngestOptions{})
		require.NoError(t, err)
		assert.Empty(t, ing.Records)
		assert.Zero(t, ing.Distribution.Total())
	}
}

func TestIngest_NegativeSizeHint(t *testing.T) {
	ing, err := analyzer.Ingest(strings.NewReader(test.Input(test.NewLine("1"))), analyzer.IngestOptions{SizeHint: -5})
	require.NoError(t, err)
	assert.Len(t, ing.Records, 1)
}

func TestIngest_LongLine(t *testing.T) {
	long := test.NewLine(strings.Repeat("x", 3<<20))
	ing, err := analyzer.Ingest(strings.NewReader(test.Input(long, test.NewLine("y"))), analyzer.IngestOptions{})
	require.NoError(t, err)
	assert.Len(t, ing.Records, 2)
}

func TestIngest_ReadFailure(t *testing.T) {
	r := iotest.TimeoutReader(strings.NewReader(test.Input(test.NewLine("a"))))
	_, err := analyzer.Ingest(iotest.OneByteReader(r), analyzer.IngestOptions{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrStream))
}

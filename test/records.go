// Copyright 2022 Molecula Corp. (DBA FeatureBase).
// SPDX-License-Identifier: Apache-2.0

// Package test holds fixtures for tests that feed term records through the
// pipeline.
package test

import (
	"fmt"
	"strings"
)

// Header is the header line of a term record file.
const Header = "ABT_INMATE_ID\tSEX\tADMTYPE\tOFFGENERAL\tEDUCATION\tADMITYR\tRELEASEYR\t" +
	"MAND_PRISREL_YEAR\tPROJ_PRISREL_YEAR\tPARELIG_YEAR\tSENTLGTH\tOFFDETAIL\tRACE\t" +
	"AGEADMIT\tAGERELEASE\tTIMESRVD\tRELTYPE\tSTATE"

var columns = []string{
	"sex",
	"admission_type",
	"offense_type",
	"education",
	"admission_year",
	"release_year",
	"mandatory_release_year",
	"projected_release_year",
	"parole_eligibility_year",
	"sentence",
	"offense_detail",
	"race",
	"age_admission",
	"age_release",
	"time_served",
	"release_type",
	"state",
}

// defaults is a complete record: male, new admission, violent offense,
// 2-4.9y sentence, white, 25-34 at admission, 1-1.9y served, conditional
// release, California.
var defaults = []string{
	"1", "1", "1", "9", "2005", "2007", " ", " ", " ", "2", "1", "1", "2", "2", "1", "1", "6",
}

// Line is one input line: a subject identifier and its raw columns.
type Line struct {
	ID      string
	Columns []string
}

// NewLine returns a line holding a complete record for subject id.
func NewLine(id string) Line {
	return Line{ID: id, Columns: append([]string(nil), defaults...)}
}

// With returns a copy of l with the named column set to raw.
func (l Line) With(column, raw string) Line {
	for i, name := range columns {
		if name == column {
			cols := append([]string(nil), l.Columns...)
			cols[i] = raw
			return Line{ID: l.ID, Columns: cols}
		}
	}
	panic(fmt.Sprintf("unknown column %q", column))
}

// Year returns a copy of l admitted in year.
func (l Line) Year(year int) Line {
	return l.With("admission_year", fmt.Sprint(year))
}

// Fields returns the raw columns as byte slices, identifier excluded.
func (l Line) Fields() [][]byte {
	a := make([][]byte, len(l.Columns))
	for i, c := range l.Columns {
		a[i] = []byte(c)
	}
	return a
}

func (l Line) String() string {
	return l.ID + "\t" + strings.Join(l.Columns, "\t")
}

// Input returns a term record file made of a header and lines.
func Input(lines ...Line) string {
	var sb strings.Builder
	sb.WriteString(Header)
	sb.WriteByte('\n')
	for _, l := range lines {
		sb.WriteString(l.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

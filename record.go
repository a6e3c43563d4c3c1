// Copyright 2022 Molecula Corp. (DBA FeatureBase).
// SPDX-License-Identifier: Apache-2.0
package analyzer

import (
	"fmt"
	"strconv"

	"github.com/molecula/analyzer/errors"
)

// Record is a single prison term record. Fields are declared in input column
// order, which is also the order used to lay out the one-hot encoding. The
// subject identifier is not part of the record.
type Record struct {
	Sex                   Sex
	AdmissionType         AdmissionType
	OffenseType           OffenseType
	Education             Education
	AdmissionYear         uint16
	ReleaseYear           uint16
	MandatoryReleaseYear  uint16
	ProjectedReleaseYear  uint16
	ParoleEligibilityYear uint16
	Sentence              Sentence
	OffenseDetail         OffenseDetail
	Race                  Race
	AgeAdmission          Age
	AgeRelease            Age
	TimeServed            TimeServed
	ReleaseType           ReleaseType
	State                 State
}

// DecodeError is returned when a raw field cannot be decoded.
type DecodeError struct {
	Field  string
	Raw    []byte
	Reason string
}

func newDecodeError(field string, raw []byte, reason string) *DecodeError {
	return &DecodeError{
		Field:  field,
		Raw:    append([]byte(nil), raw...),
		Reason: reason,
	}
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: %s: %q", e.Field, e.Reason, e.Raw)
}

// Is makes a DecodeError match errors.ErrFieldDecode.
func (e *DecodeError) Is(target error) bool {
	return errors.CodeOf(target) == errors.ErrFieldDecode
}

// blankYear is the raw value of an unknown year.
const blankYear = " "

func parseYear(field string, raw []byte) (uint16, error) {
	if string(raw) == blankYear {
		return 0, nil
	}
	v, err := strconv.ParseUint(string(raw), 10, 16)
	if err != nil {
		return 0, newDecodeError(field, raw, "invalid year")
	}
	return uint16(v), nil
}

// fieldDecoder decodes one raw column into the record.
type fieldDecoder struct {
	name   string
	decode func(r *Record, raw []byte) error
}

func categoricalDecoder[T ~uint8](name string, t *codeTable[T], set func(r *Record, v T)) fieldDecoder {
	return fieldDecoder{
		name: name,
		decode: func(r *Record, raw []byte) error {
			v, err := t.parse(name, raw)
			if err != nil {
				return err
			}
			set(r, v)
			return nil
		},
	}
}

func yearDecoder(name string, set func(r *Record, v uint16)) fieldDecoder {
	return fieldDecoder{
		name: name,
		decode: func(r *Record, raw []byte) error {
			v, err := parseYear(name, raw)
			if err != nil {
				return err
			}
			set(r, v)
			return nil
		},
	}
}

// decoders lists one decoder per input column, in column order.
var decoders = []fieldDecoder{
	categoricalDecoder("sex", sexTable, func(r *Record, v Sex) { r.Sex = v }),
	categoricalDecoder("admission_type", admissionTypeTable, func(r *Record, v AdmissionType) { r.AdmissionType = v }),
	categoricalDecoder("offense_type", offenseTypeTable, func(r *Record, v OffenseType) { r.OffenseType = v }),
	categoricalDecoder("education", educationTable, func(r *Record, v Education) { r.Education = v }),
	yearDecoder("admission_year", func(r *Record, v uint16) { r.AdmissionYear = v }),
	yearDecoder("release_year", func(r *Record, v uint16) { r.ReleaseYear = v }),
	yearDecoder("mandatory_release_year", func(r *Record, v uint16) { r.MandatoryReleaseYear = v }),
	yearDecoder("projected_release_year", func(r *Record, v uint16) { r.ProjectedReleaseYear = v }),
	yearDecoder("parole_eligibility_year", func(r *Record, v uint16) { r.ParoleEligibilityYear = v }),
	categoricalDecoder("sentence", sentenceTable, func(r *Record, v Sentence) { r.Sentence = v }),
	categoricalDecoder("offense_detail", offenseDetailTable, func(r *Record, v OffenseDetail) { r.OffenseDetail = v }),
	categoricalDecoder("race", raceTable, func(r *Record, v Race) { r.Race = v }),
	categoricalDecoder("age_admission", ageTable, func(r *Record, v Age) { r.AgeAdmission = v }),
	categoricalDecoder("age_release", ageTable, func(r *Record, v Age) { r.AgeRelease = v }),
	categoricalDecoder("time_served", timeServedTable, func(r *Record, v TimeServed) { r.TimeServed = v }),
	categoricalDecoder("release_type", releaseTypeTable, func(r *Record, v ReleaseType) { r.ReleaseType = v }),
	categoricalDecoder("state", stateTable, func(r *Record, v State) { r.State = v }),
}

// ColumnCount is the number of columns of an input line after the subject
// identifier.
var ColumnCount = len(decoders)

// DecodeRecord decodes the raw columns of one input line, subject identifier
// excluded. Either every field is decoded or a *DecodeError is returned.
func DecodeRecord(fields [][]byte) (Record, error) {
	var rec Record
	for i, d := range decoders {
		if i >= len(fields) {
			return Record{}, newDecodeError(d.name, nil, "missing field")
		}
		if err := d.decode(&rec, fields[i]); err != nil {
			return Record{}, err
		}
	}
	if len(fields) > len(decoders) {
		return Record{}, newDecodeError("record", fields[len(decoders)],
			fmt.Sprintf("expected %d fields, got %d", len(decoders), len(fields)))
	}
	return rec, nil
}

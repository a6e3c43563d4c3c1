// Copyright 2022 Molecula Corp. (DBA FeatureBase).
// SPDX-License-Identifier: Apache-2.0
package analyzer

import (
	"strconv"
)

// LayoutVersion identifies the one-hot layout defined by Fields. It must be
// bumped whenever a field is added, removed, reordered, or changes whether it
// is encoded, since persisted matrices depend on it.
//
// Version 1 excludes from the encoding:
//   - education: every record of the source data has it missing.
//   - the five year fields: numeric, kept for filtering and reporting.
//   - offense_detail: highly skewed towards a few values.
//   - age_release: redundant with age_admission and time_served.
//   - state: heavily imbalanced between states.
const LayoutVersion = 1

// Field describes one Record field: how to read it, how to display its
// values, and its role in validation and encoding.
type Field struct {
	Name string

	// Encoded fields participate in the one-hot encoding.
	Encoded bool

	// Required fields make a record invalid when they hold the missing
	// sentinel.
	Required bool

	// Labels of the non-missing variants, in ordinal order. Nil for
	// numeric fields.
	Labels []string

	value   func(r *Record) uint16
	format  func(v uint16) string
	missing func(v uint16) bool
}

// Categorical reports whether the field holds a categorical value.
func (f *Field) Categorical() bool { return f.Labels != nil }

// Width is the number of one-hot bits of the field.
func (f *Field) Width() int {
	if !f.Encoded {
		return 0
	}
	return len(f.Labels)
}

// Value returns the ordinal of a categorical field, or the number held by a
// numeric one.
func (f *Field) Value(r *Record) uint16 { return f.value(r) }

// Format returns the display form of a value returned by Value.
func (f *Field) Format(v uint16) string { return f.format(v) }

// IsMissing reports whether v is the field's missing sentinel.
func (f *Field) IsMissing(v uint16) bool { return f.missing(v) }

func categoricalField[T ~uint8](name string, t *codeTable[T], encoded, required bool, get func(r *Record) T) Field {
	return Field{
		Name:     name,
		Encoded:  encoded,
		Required: required,
		Labels:   t.choices(),
		value:    func(r *Record) uint16 { return uint16(get(r)) },
		format:   func(v uint16) string { return t.label(T(v)) },
		missing:  func(v uint16) bool { return t.isMissing(T(v)) },
	}
}

func yearField(name string, get func(r *Record) uint16) Field {
	return Field{
		Name:    name,
		value:   get,
		format:  func(v uint16) string { return strconv.Itoa(int(v)) },
		missing: func(uint16) bool { return false },
	}
}

// Fields lists every Record field in declaration order.
var Fields = []Field{
	categoricalField("sex", sexTable, true, true, func(r *Record) Sex { return r.Sex }),
	categoricalField("admission_type", admissionTypeTable, true, true, func(r *Record) AdmissionType { return r.AdmissionType }),
	categoricalField("offense_type", offenseTypeTable, true, true, func(r *Record) OffenseType { return r.OffenseType }),
	categoricalField("education", educationTable, false, false, func(r *Record) Education { return r.Education }),
	yearField("admission_year", func(r *Record) uint16 { return r.AdmissionYear }),
	yearField("release_year", func(r *Record) uint16 { return r.ReleaseYear }),
	yearField("mandatory_release_year", func(r *Record) uint16 { return r.MandatoryReleaseYear }),
	yearField("projected_release_year", func(r *Record) uint16 { return r.ProjectedReleaseYear }),
	yearField("parole_eligibility_year", func(r *Record) uint16 { return r.ParoleEligibilityYear }),
	categoricalField("sentence", sentenceTable, true, true, func(r *Record) Sentence { return r.Sentence }),
	categoricalField("offense_detail", offenseDetailTable, false, false, func(r *Record) OffenseDetail { return r.OffenseDetail }),
	categoricalField("race", raceTable, true, true, func(r *Record) Race { return r.Race }),
	categoricalField("age_admission", ageTable, true, true, func(r *Record) Age { return r.AgeAdmission }),
	categoricalField("age_release", ageTable, false, false, func(r *Record) Age { return r.AgeRelease }),
	categoricalField("time_served", timeServedTable, true, true, func(r *Record) TimeServed { return r.TimeServed }),
	categoricalField("release_type", releaseTypeTable, true, true, func(r *Record) ReleaseType { return r.ReleaseType }),
	categoricalField("state", stateTable, false, false, func(r *Record) State { return r.State }),
}

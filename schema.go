// Copyright 2022 Molecula Corp. (DBA FeatureBase).
// SPDX-License-Identifier: Apache-2.0
package analyzer

import (
	"fmt"
)

// Categorical is implemented by every categorical field type of a Record.
type Categorical interface {
	// Code returns the raw byte code the value is decoded from.
	Code() string
	// String returns the human readable label of the value.
	String() string
	// IsMissing reports whether the value is the type's missing sentinel.
	IsMissing() bool
}

// variant is one entry of a code table: the raw code and its display label.
type variant struct {
	code  string
	label string
}

// codeTable maps the raw byte codes of a categorical type to its variants.
// Variants are indexed by their ordinal; when the type has a missing
// sentinel it is always the last variant.
type codeTable[T ~uint8] struct {
	name       string
	variants   []variant
	hasMissing bool
	byCode     map[string]T
	byLabel    map[string]T
}

func newCodeTable[T ~uint8](name string, hasMissing bool, variants ...variant) *codeTable[T] {
	t := &codeTable[T]{
		name:       name,
		variants:   variants,
		hasMissing: hasMissing,
		byCode:     make(map[string]T, len(variants)),
		byLabel:    make(map[string]T, len(variants)),
	}
	for i, v := range variants {
		if _, ok := t.byCode[v.code]; ok {
			panic(fmt.Sprintf("duplicate %s code %q", name, v.code))
		}
		t.byCode[v.code] = T(i)
		t.byLabel[v.label] = T(i)
	}
	return t
}

// parse decodes raw as a variant. The lookup does not allocate.
func (t *codeTable[T]) parse(field string, raw []byte) (T, error) {
	if v, ok := t.byCode[string(raw)]; ok {
		return v, nil
	}
	return 0, newDecodeError(field, raw, "invalid "+t.name)
}

// lookup resolves a display label, as used on the command line.
func (t *codeTable[T]) lookup(label string) (T, error) {
	if v, ok := t.byLabel[label]; ok && !t.isMissing(v) {
		return v, nil
	}
	return 0, fmt.Errorf("invalid %s: %q (expected one of %v)", t.name, label, t.choices())
}

func (t *codeTable[T]) code(v T) string {
	if int(v) >= len(t.variants) {
		return ""
	}
	return t.variants[v].code
}

func (t *codeTable[T]) label(v T) string {
	if int(v) >= len(t.variants) {
		return fmt.Sprintf("%s(%d)", t.name, v)
	}
	return t.variants[v].label
}

func (t *codeTable[T]) isMissing(v T) bool {
	return t.hasMissing && int(v) == len(t.variants)-1
}

// width is the number of non-missing variants.
func (t *codeTable[T]) width() int {
	if t.hasMissing {
		return len(t.variants) - 1
	}
	return len(t.variants)
}

// choices returns the labels of the non-missing variants in ordinal order.
func (t *codeTable[T]) choices() []string {
	a := make([]string, 0, t.width())
	for _, v := range t.variants[:t.width()] {
		a = append(a, v.label)
	}
	return a
}

// Sex of the inmate. The source data has no missing sex.
type Sex uint8

const (
	SexMale Sex = iota
	SexFemale
)

var sexTable = newCodeTable[Sex]("sex", false,
	variant{"1", "male"},
	variant{"2", "female"},
)

func ParseSex(raw []byte) (Sex, error)    { return sexTable.parse("sex", raw) }
func LookupSex(label string) (Sex, error) { return sexTable.lookup(label) }
func SexChoices() []string                { return sexTable.choices() }
func (v Sex) Code() string                { return sexTable.code(v) }
func (v Sex) String() string              { return sexTable.label(v) }
func (v Sex) IsMissing() bool             { return sexTable.isMissing(v) }

// AdmissionType of the prison term.
type AdmissionType uint8

const (
	AdmissionNew AdmissionType = iota
	AdmissionParole
	AdmissionOther
	AdmissionMissing
)

var admissionTypeTable = newCodeTable[AdmissionType]("admission type", true,
	variant{"1", "new"},
	variant{"2", "parole"},
	variant{"3", "other"},
	variant{"9", "missing"},
)

func ParseAdmissionType(raw []byte) (AdmissionType, error) {
	return admissionTypeTable.parse("admission_type", raw)
}
func LookupAdmissionType(label string) (AdmissionType, error) { return admissionTypeTable.lookup(label) }
func AdmissionTypeChoices() []string                          { return admissionTypeTable.choices() }
func (v AdmissionType) Code() string                          { return admissionTypeTable.code(v) }
func (v AdmissionType) String() string                        { return admissionTypeTable.label(v) }
func (v AdmissionType) IsMissing() bool                       { return admissionTypeTable.isMissing(v) }

// OffenseType is the general category of the most serious offense.
type OffenseType uint8

const (
	OffenseViolent OffenseType = iota
	OffenseProperty
	OffenseDrugs
	OffensePublicOrder
	OffenseOther
	OffenseMissing
)

var offenseTypeTable = newCodeTable[OffenseType]("offense type", true,
	variant{"1", "violent"},
	variant{"2", "property"},
	variant{"3", "drugs"},
	variant{"4", "public-order"},
	variant{"5", "other"},
	variant{"9", "missing"},
)

func ParseOffenseType(raw []byte) (OffenseType, error) {
	return offenseTypeTable.parse("offense_type", raw)
}
func LookupOffenseType(label string) (OffenseType, error) { return offenseTypeTable.lookup(label) }
func OffenseTypeChoices() []string                        { return offenseTypeTable.choices() }
func (v OffenseType) Code() string                        { return offenseTypeTable.code(v) }
func (v OffenseType) String() string                      { return offenseTypeTable.label(v) }
func (v OffenseType) IsMissing() bool                     { return offenseTypeTable.isMissing(v) }

// Education level at admission.
type Education uint8

const (
	EducationNoHighSchool Education = iota
	EducationHighSchool
	EducationCollege
	EducationMissing
)

var educationTable = newCodeTable[Education]("education", true,
	variant{"1", "no-high-school"},
	variant{"2", "high-school"},
	variant{"3", "college"},
	variant{"9", "missing"},
)

func ParseEducation(raw []byte) (Education, error) { return educationTable.parse("education", raw) }
func (v Education) Code() string                   { return educationTable.code(v) }
func (v Education) String() string                 { return educationTable.label(v) }
func (v Education) IsMissing() bool                { return educationTable.isMissing(v) }

// Sentence length bracket.
type Sentence uint8

const (
	SentenceLessThan1 Sentence = iota
	Sentence1To2
	Sentence2To5
	Sentence5To10
	Sentence10To25
	Sentence25Plus
	SentenceLife
	SentenceMissing
)

var sentenceTable = newCodeTable[Sentence]("sentence", true,
	variant{"0", "<1y"},
	variant{"1", "1-2y"},
	variant{"2", "2-5y"},
	variant{"3", "5-10y"},
	variant{"4", "10-25y"},
	variant{"5", ">=25y"},
	variant{"6", "life"},
	variant{"9", "missing"},
)

func ParseSentence(raw []byte) (Sentence, error) { return sentenceTable.parse("sentence", raw) }
func (v Sentence) Code() string                  { return sentenceTable.code(v) }
func (v Sentence) String() string                { return sentenceTable.label(v) }
func (v Sentence) IsMissing() bool               { return sentenceTable.isMissing(v) }

// OffenseDetail is the detailed category of the most serious offense.
type OffenseDetail uint8

const (
	OffenseDetailMurder OffenseDetail = iota
	OffenseDetailManslaughter
	OffenseDetailRape
	OffenseDetailRobbery
	OffenseDetailAssault
	OffenseDetailOtherViolent
	OffenseDetailBurglary
	OffenseDetailLarceny
	OffenseDetailMotorVehicleTheft
	OffenseDetailFraud
	OffenseDetailOtherProperty
	OffenseDetailDrugs
	OffenseDetailPublicOrder
	OffenseDetailOther
	OffenseDetailMissing
)

var offenseDetailTable = newCodeTable[OffenseDetail]("offense detail", true,
	variant{"1", "murder"},
	variant{"2", "manslaughter"},
	variant{"3", "rape"},
	variant{"4", "robbery"},
	variant{"5", "assault"},
	variant{"6", "other-violent"},
	variant{"7", "burglary"},
	variant{"8", "larceny"},
	variant{"9", "motor-vehicle-theft"},
	variant{"10", "fraud"},
	variant{"11", "other-property"},
	variant{"12", "drugs"},
	variant{"13", "public-order"},
	variant{"14", "other"},
	variant{"99", "missing"},
)

func ParseOffenseDetail(raw []byte) (OffenseDetail, error) {
	return offenseDetailTable.parse("offense_detail", raw)
}
func (v OffenseDetail) Code() string    { return offenseDetailTable.code(v) }
func (v OffenseDetail) String() string  { return offenseDetailTable.label(v) }
func (v OffenseDetail) IsMissing() bool { return offenseDetailTable.isMissing(v) }

// Race and Hispanic origin.
type Race uint8

const (
	RaceWhite Race = iota
	RaceBlack
	RaceHispanic
	RaceOther
	RaceMissing
)

var raceTable = newCodeTable[Race]("race", true,
	variant{"1", "white"},
	variant{"2", "black"},
	variant{"3", "hispanic"},
	variant{"4", "other"},
	variant{"9", "missing"},
)

func ParseRace(raw []byte) (Race, error)    { return raceTable.parse("race", raw) }
func LookupRace(label string) (Race, error) { return raceTable.lookup(label) }
func RaceChoices() []string                 { return raceTable.choices() }
func (v Race) Code() string                 { return raceTable.code(v) }
func (v Race) String() string               { return raceTable.label(v) }
func (v Race) IsMissing() bool              { return raceTable.isMissing(v) }

// Age bracket, used both at admission and at release.
type Age uint8

const (
	Age18To24 Age = iota
	Age25To34
	Age35To44
	Age45To54
	Age55Plus
	AgeMissing
)

var ageTable = newCodeTable[Age]("age", true,
	variant{"1", "18-24"},
	variant{"2", "25-34"},
	variant{"3", "35-44"},
	variant{"4", "45-54"},
	variant{"5", "55+"},
	variant{"9", "missing"},
)

func ParseAge(raw []byte) (Age, error) { return ageTable.parse("age", raw) }
func (v Age) Code() string             { return ageTable.code(v) }
func (v Age) String() string           { return ageTable.label(v) }
func (v Age) IsMissing() bool          { return ageTable.isMissing(v) }

// TimeServed bracket.
type TimeServed uint8

const (
	TimeServedLessThan1 TimeServed = iota
	TimeServed1To2
	TimeServed2To5
	TimeServed5To10
	TimeServed10Plus
	TimeServedMissing
)

var timeServedTable = newCodeTable[TimeServed]("time served", true,
	variant{"0", "<1y"},
	variant{"1", "1-2y"},
	variant{"2", "2-5y"},
	variant{"3", "5-10y"},
	variant{"4", ">=10y"},
	variant{"9", "missing"},
)

func ParseTimeServed(raw []byte) (TimeServed, error) { return timeServedTable.parse("time_served", raw) }
func (v TimeServed) Code() string                    { return timeServedTable.code(v) }
func (v TimeServed) String() string                  { return timeServedTable.label(v) }
func (v TimeServed) IsMissing() bool                 { return timeServedTable.isMissing(v) }

// ReleaseType of the prison term.
type ReleaseType uint8

const (
	ReleaseConditional ReleaseType = iota
	ReleaseUnconditional
	ReleaseOther
	ReleaseMissing
)

// In the published files the missing release type is a single space, not 9.
var releaseTypeTable = newCodeTable[ReleaseType]("release type", true,
	variant{"1", "conditional"},
	variant{"2", "unconditional"},
	variant{"3", "other"},
	variant{" ", "missing"},
)

func ParseReleaseType(raw []byte) (ReleaseType, error) {
	return releaseTypeTable.parse("release_type", raw)
}
func (v ReleaseType) Code() string    { return releaseTypeTable.code(v) }
func (v ReleaseType) String() string  { return releaseTypeTable.label(v) }
func (v ReleaseType) IsMissing() bool { return releaseTypeTable.isMissing(v) }

// State reporting the record, by FIPS code.
type State uint8

var stateTable = newCodeTable[State]("state", true,
	variant{"1", "AL"}, variant{"2", "AK"}, variant{"4", "AZ"}, variant{"5", "AR"},
	variant{"6", "CA"}, variant{"8", "CO"}, variant{"9", "CT"}, variant{"10", "DE"},
	variant{"11", "DC"}, variant{"12", "FL"}, variant{"13", "GA"}, variant{"15", "HI"},
	variant{"16", "ID"}, variant{"17", "IL"}, variant{"18", "IN"}, variant{"19", "IA"},
	variant{"20", "KS"}, variant{"21", "KY"}, variant{"22", "LA"}, variant{"23", "ME"},
	variant{"24", "MD"}, variant{"25", "MA"}, variant{"26", "MI"}, variant{"27", "MN"},
	variant{"28", "MS"}, variant{"29", "MO"}, variant{"30", "MT"}, variant{"31", "NE"},
	variant{"32", "NV"}, variant{"33", "NH"}, variant{"34", "NJ"}, variant{"35", "NM"},
	variant{"36", "NY"}, variant{"37", "NC"}, variant{"38", "ND"}, variant{"39", "OH"},
	variant{"40", "OK"}, variant{"41", "OR"}, variant{"42", "PA"}, variant{"44", "RI"},
	variant{"45", "SC"}, variant{"46", "SD"}, variant{"47", "TN"}, variant{"48", "TX"},
	variant{"49", "UT"}, variant{"50", "VT"}, variant{"51", "VA"}, variant{"53", "WA"},
	variant{"54", "WV"}, variant{"55", "WI"}, variant{"56", "WY"},
	variant{"99", "missing"},
)

// StateMissing is the missing sentinel of State.
var StateMissing = State(len(stateTable.variants) - 1)

func ParseState(raw []byte) (State, error) { return stateTable.parse("state", raw) }
func (v State) Code() string               { return stateTable.code(v) }
func (v State) String() string             { return stateTable.label(v) }
func (v State) IsMissing() bool            { return stateTable.isMissing(v) }

// Copyright 2022 Molecula Corp. (DBA FeatureBase).
// SPDX-License-Identifier: Apache-2.0
package analyzer

// Filter holds the optional exact-match attribute filters. A nil filter
// imposes no constraint; set filters combine with AND.
type Filter struct {
	Sex           *Sex
	AdmissionType *AdmissionType
	OffenseType   *OffenseType
	Race          *Race
}

// IsComplete reports whether none of the required fields of rec holds its
// missing sentinel.
func IsComplete(rec *Record) bool {
	for i := range Fields {
		f := &Fields[i]
		if f.Required && f.IsMissing(f.Value(rec)) {
			return false
		}
	}
	return true
}

// Accept reports whether rec is complete and matches every set filter.
func (f *Filter) Accept(rec *Record) bool {
	if !IsComplete(rec) {
		return false
	}
	if f.Sex != nil && rec.Sex != *f.Sex {
		return false
	}
	if f.AdmissionType != nil && rec.AdmissionType != *f.AdmissionType {
		return false
	}
	if f.OffenseType != nil && rec.OffenseType != *f.OffenseType {
		return false
	}
	if f.Race != nil && rec.Race != *f.Race {
		return false
	}
	return true
}

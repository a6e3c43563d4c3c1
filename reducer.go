// Copyright 2022 Molecula Corp. (DBA FeatureBase).
// SPDX-License-Identifier: Apache-2.0
package analyzer

// RecidivistReducer withholds the earliest admission of every subject and
// lets through all the others, in a single pass over unsorted input.
//
// It keeps one record per distinct subject: the earliest seen so far. Every
// occurrence of a subject after its first emits exactly one record, either
// the incoming one or the one it supersedes as earliest, so after the pass
// the records withheld are exactly the per-subject minimums by admission year.
//
// RecidivistReducer is not safe for concurrent use.
type RecidivistReducer struct {
	earliest map[string]Record
}

// NewRecidivistReducer returns a new instance of RecidivistReducer.
func NewRecidivistReducer() *RecidivistReducer {
	return &RecidivistReducer{
		earliest: make(map[string]Record),
	}
}

// Reduce takes the next record of subject id and returns the record to emit,
// if any. id is copied when retained.
func (r *RecidivistReducer) Reduce(id []byte, rec Record) (Record, bool) {
	early, ok := r.earliest[string(id)]
	if !ok {
		r.earliest[string(id)] = rec
		return Record{}, false
	}
	if early.AdmissionYear > rec.AdmissionYear {
		r.earliest[string(id)] = rec
		return early, true
	}
	return rec, true
}

// Subjects returns the number of distinct subjects seen.
func (r *RecidivistReducer) Subjects() int {
	return len(r.earliest)
}

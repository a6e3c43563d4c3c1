// Copyright 2022 Molecula Corp. (DBA FeatureBase).
// SPDX-License-Identifier: Apache-2.0
package analyzer

import (
	"fmt"
	"sync"
)

// Encoder maps records to their one-hot ItemSet and names items.
//
// An encoded field occupies the bits [offset, offset+width), where offset is
// the sum of the widths of the encoded fields declared before it, and the bit
// of a value is offset plus its ordinal. A missing value sets no bit; records
// reaching the encoder are expected to be complete.
type Encoder struct {
	fields  []Field
	offsets []int // parallel to fields, -1 when not encoded
	width   int

	labelsOnce sync.Once
	labels     []string
}

// NewEncoder returns an Encoder for the layout described by Fields.
func NewEncoder() *Encoder {
	return newEncoder(Fields)
}

func newEncoder(fields []Field) *Encoder {
	e := &Encoder{
		fields:  fields,
		offsets: make([]int, len(fields)),
	}
	for i := range fields {
		if !fields[i].Encoded {
			e.offsets[i] = -1
			continue
		}
		e.offsets[i] = e.width
		e.width += fields[i].Width()
	}
	if e.width > OneHotWidth {
		panic(fmt.Sprintf("one-hot width %d exceeds ItemSet capacity %d", e.width, OneHotWidth))
	}
	return e
}

// Width returns the number of items of the layout.
func (e *Encoder) Width() int {
	return e.width
}

// FieldRange returns the first bit and the width of the named field. ok is
// false for unknown fields; width is zero for fields that are not encoded.
func (e *Encoder) FieldRange(name string) (offset, width int, ok bool) {
	for i := range e.fields {
		if e.fields[i].Name == name {
			return e.offsets[i], e.fields[i].Width(), true
		}
	}
	return 0, 0, false
}

// Encode returns the one-hot encoding of rec.
func (e *Encoder) Encode(rec *Record) ItemSet {
	var s ItemSet
	for i := range e.fields {
		f := &e.fields[i]
		if !f.Encoded {
			continue
		}
		v := f.Value(rec)
		if f.IsMissing(v) {
			continue
		}
		s.Set(e.offsets[i] + int(v))
	}
	return s
}

// Labels returns the "field=value" names of every item, indexed by item. The
// table is built on first use and shared afterwards; callers must not modify
// it.
func (e *Encoder) Labels() []string {
	e.labelsOnce.Do(func() {
		e.labels = make([]string, 0, e.width)
		for i := range e.fields {
			f := &e.fields[i]
			if !f.Encoded {
				continue
			}
			for _, l := range f.Labels {
				e.labels = append(e.labels, f.Name+"="+l)
			}
		}
	})
	return e.labels
}

// Label returns the name of item i.
func (e *Encoder) Label(i int) string {
	labels := e.Labels()
	if i < 0 || i >= len(labels) {
		return fmt.Sprintf("item(%d)", i)
	}
	return labels[i]
}

// Format returns s as "{label, label, ...}" in ascending item order.
func (e *Encoder) Format(s ItemSet) string {
	return s.format(e.Label)
}

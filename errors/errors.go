// Copyright 2022 Molecula Corp. (DBA FeatureBase).
// SPDX-License-Identifier: Apache-2.0

// Package errors wraps pkg/errors and includes error codes, so that the
// kind of a failure (a bad input field, a broken stream, a corrupt persisted
// matrix, a bad parameter) survives any amount of wrapping.
package errors

import (
	"github.com/pkg/errors"
)

// Code is an error code which can be used to check against a given error. For
// example, see the Is() method.
type Code string

const (
	ErrUncoded Code = "Uncoded"

	// ErrFieldDecode is returned when a raw input field does not match any
	// known code of its categorical type or fails numeric parsing. The
	// owning record is skipped; the run continues.
	ErrFieldDecode Code = "FieldDecode"

	// ErrStream is returned when the input stream cannot be read.
	ErrStream Code = "Stream"

	// ErrPersistence is returned when a persisted matrix is truncated,
	// malformed or otherwise not decodable.
	ErrPersistence Code = "Persistence"

	// ErrConfiguration is returned for invalid parameters, before any I/O.
	ErrConfiguration Code = "Configuration"
)

func New(code Code, message string) error {
	return errors.WithStack(codedError{
		Code:    code,
		Message: message,
	})
}

// Newf is like New but formats its message.
func Newf(code Code, format string, args ...interface{}) error {
	return New(code, errors.Errorf(format, args...).Error())
}

// Is is a fork of the Is() method from `pkg/errors` which takes as its target
// an error Code instead of an error.
func Is(err error, target Code) bool {
	match := codedError{
		Code: target,
	}
	return errors.Is(err, match)
}

// CodeOf returns the code carried by err, or the empty code if err was not
// created by New.
func CodeOf(err error) Code {
	var ce codedError
	if errors.As(err, &ce) {
		return ce.Code
	}
	return ""
}

func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

func Wrapf(err error, fmt string, args ...interface{}) error {
	return errors.Wrapf(err, fmt, args...)
}

// WithCode wraps err so that Is(err, code) holds, keeping err's text and
// making it reachable through Unwrap.
func WithCode(err error, code Code) error {
	if err == nil {
		return nil
	}
	return errors.WithStack(codedError{
		Code:    code,
		Message: err.Error(),
		cause:   err,
	})
}

// codedError is the fundamental type used by this package to provide coded
// errors.
type codedError struct {
	Code    Code
	Message string

	cause error
}

func (ce codedError) Error() string {
	return ce.Message
}

func (ce codedError) Unwrap() error {
	return ce.cause
}

func (ce codedError) Is(err error) bool {
	if e, ok := err.(codedError); ok && ce.Code == e.Code {
		return true
	}
	return false
}

// Copyright 2025 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

// Package errors provides the structured error taxonomy for the light
// client core: decoding errors, hash-length errors, validation rejections,
// and proof mismatches (see spec section 7).
package errors

import (
	"errors"
	"fmt"
)

// Code identifies one of the core's error kinds.
type Code string

const (
	// CodeDecoding marks a byte sequence that is not a valid encoding of
	// the expected type: truncation, a bad discriminant, an oversize
	// length prefix.
	CodeDecoding Code = "DECODING"
	// CodeHashLength marks a digest output or field that cannot be
	// coerced to a fixed-size Hash.
	CodeHashLength Code = "HASH_LENGTH"
	// CodeValidationRejection marks a failure of one of the six block
	// acceptance rules. The failing rule is carried in Context["rule"].
	CodeValidationRejection Code = "VALIDATION_REJECTION"
	// CodeProofMismatch marks a Merkle fold that did not reach the
	// expected root.
	CodeProofMismatch Code = "PROOF_MISMATCH"
)

// Error is a structured error with a code, an optional wrapped cause, and
// free-form context for debugging.
type Error struct {
	Code    Code
	Message string
	Cause   error
	Context map[string]any
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the wrapped cause, if any.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates an Error with no cause.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf creates an Error with a formatted message.
func Newf(code Code, format string, args ...any) *Error {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap wraps cause with code and message.
func Wrap(cause error, code Code, message string) *Error {
	return &Error{Code: code, Message: message, Cause: cause}
}

// Wrapf wraps cause with a formatted message.
func Wrapf(cause error, code Code, format string, args ...any) *Error {
	return Wrap(cause, code, fmt.Sprintf(format, args...))
}

// WithContext attaches a key/value pair of debugging context to e and
// returns it for chaining.
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}

// Is reports whether err carries the given code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// As extracts an *Error from err, if present.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

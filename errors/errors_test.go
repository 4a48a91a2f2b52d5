// Copyright 2025 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package errors

import (
	"errors"
	"testing"
)

func TestNewfFormatsMessage(t *testing.T) {
	err := Newf(CodeDecoding, "bad value %d", 42)
	if err.Code != CodeDecoding {
		t.Fatalf("expected CodeDecoding, got %s", err.Code)
	}
	if err.Message != "bad value 42" {
		t.Fatalf("unexpected message: %s", err.Message)
	}
}

func TestWrapPreservesCauseAndUnwraps(t *testing.T) {
	cause := errors.New("root cause")
	wrapped := Wrap(cause, CodeProofMismatch, "folding failed")
	if !errors.Is(wrapped, cause) {
		t.Fatal("expected errors.Is to find the wrapped cause")
	}
	if wrapped.Unwrap() != cause {
		t.Fatal("Unwrap should return the original cause")
	}
}

func TestIsMatchesByCode(t *testing.T) {
	err := New(CodeHashLength, "bad length")
	if !Is(err, CodeHashLength) {
		t.Fatal("expected Is to match CodeHashLength")
	}
	if Is(err, CodeDecoding) {
		t.Fatal("expected Is to reject a mismatched code")
	}
	if Is(errors.New("plain error"), CodeHashLength) {
		t.Fatal("expected Is to reject a non-*Error")
	}
}

func TestAsExtractsStructuredError(t *testing.T) {
	err := New(CodeValidationRejection, "rejected").WithContext("rule", "height")
	extracted, ok := As(err)
	if !ok {
		t.Fatal("expected As to succeed")
	}
	if extracted.Context["rule"] != "height" {
		t.Fatalf("expected context to survive, got %+v", extracted.Context)
	}

	if _, ok := As(errors.New("plain error")); ok {
		t.Fatal("expected As to fail for a non-*Error")
	}
}

func TestErrorStringIncludesCauseWhenPresent(t *testing.T) {
	cause := errors.New("underlying")
	withCause := Wrap(cause, CodeDecoding, "outer")
	if got := withCause.Error(); got == "" {
		t.Fatal("expected a non-empty error string")
	}

	withoutCause := New(CodeDecoding, "outer")
	if withoutCause.Error() == withCause.Error() {
		t.Fatal("presence of a cause should change the rendered error string")
	}
}

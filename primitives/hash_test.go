// Copyright 2025 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package primitives

import (
	"testing"

	lcerrors "github.com/certen/near-lite-client/errors"
)

func TestParseHashRoundTrip(t *testing.T) {
	raw := make([]byte, HashSize)
	for i := range raw {
		raw[i] = byte(i)
	}
	h, err := ParseHash(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(h.Bytes()) != string(raw) {
		t.Fatalf("bytes mismatch: got %x want %x", h.Bytes(), raw)
	}
}

func TestParseHashRejectsWrongLength(t *testing.T) {
	_, err := ParseHash(make([]byte, HashSize-1))
	if err == nil {
		t.Fatal("expected error on short input")
	}
	if !lcerrors.Is(err, lcerrors.CodeHashLength) {
		t.Fatalf("expected CodeHashLength, got %v", err)
	}

	_, err = ParseHash(make([]byte, HashSize+1))
	if err == nil {
		t.Fatal("expected error on long input")
	}
}

func TestHashStringIsLowercaseHex(t *testing.T) {
	var h Hash
	h[0] = 0xAB
	h[1] = 0xCD
	got := h.String()
	if got[:4] != "abcd" {
		t.Fatalf("expected lowercase hex prefix abcd, got %s", got[:4])
	}
}

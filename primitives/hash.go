// Copyright 2025 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

// Package primitives provides the cryptographic building blocks the light
// client core is built on: a fixed-size hash, a pluggable digest, and
// Ed25519 signature verification.
package primitives

import (
	"fmt"

	lcerrors "github.com/certen/near-lite-client/errors"
)

// HashSize is the fixed width of every hash in the protocol.
const HashSize = 32

// Hash is a 32-byte digest. Equality and ordering are byte-wise.
type Hash [HashSize]byte

// ZeroHash is the all-zero hash.
var ZeroHash Hash

// Bytes returns the raw bytes of h.
func (h Hash) Bytes() []byte {
	return h[:]
}

// String renders h as lowercase hex, for logging.
func (h Hash) String() string {
	return fmt.Sprintf("%x", h[:])
}

// ParseHash converts a byte slice to a Hash, checking its length. It never
// panics: any input-derived slice-to-array conversion in this module must
// go through this helper or its equivalent.
func ParseHash(b []byte) (Hash, error) {
	var h Hash
	if len(b) != HashSize {
		return h, lcerrors.Newf(lcerrors.CodeHashLength,
			"expected %d-byte hash, got %d", HashSize, len(b))
	}
	copy(h[:], b)
	return h, nil
}

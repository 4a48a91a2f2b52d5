// Copyright 2025 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

// Package encoding implements the canonical binary encoding every hash and
// signature in the light client core is computed over: little-endian fixed
// width integers, one-byte optionals, u32-length-prefixed sequences and
// strings, single-byte discriminants for tagged variants, and fields
// concatenated in declared struct order. The format must match the chain's
// wire encoding byte for byte; there is no tolerance for "close enough".
package encoding

import (
	"encoding/binary"
	"math/big"

	lcerrors "github.com/certen/near-lite-client/errors"
)

// Encoder accumulates a canonically-encoded byte buffer. Methods that can
// fail on out-of-range input record the first error on err instead of
// panicking; callers that encode attacker-derived values must check Err
// after building the buffer.
type Encoder struct {
	buf []byte
	err error
}

// NewEncoder returns an empty Encoder.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// Bytes returns the accumulated buffer.
func (e *Encoder) Bytes() []byte {
	return e.buf
}

// Err returns the first error recorded while building the buffer, if any.
func (e *Encoder) Err() error {
	return e.err
}

// PutUint8 appends a single byte.
func (e *Encoder) PutUint8(v uint8) {
	e.buf = append(e.buf, v)
}

// PutUint32 appends a little-endian u32.
func (e *Encoder) PutUint32(v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	e.buf = append(e.buf, b[:]...)
}

// PutUint64 appends a little-endian u64.
func (e *Encoder) PutUint64(v uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	e.buf = append(e.buf, b[:]...)
}

// PutUint128 appends a little-endian, fixed-width 16-byte encoding of v. v
// must be non-negative and fit in 128 bits. A value outside that range does
// not panic: it records a sticky CodeDecoding error on e (see Err) and
// leaves the buffer unchanged. Decoders of attacker-controlled data (e.g.
// the checkpoint loader's decimal stake strings) must still range-check
// before ever constructing a ValidatorStake or ExecutionOutcome; this is
// the last line of defense, not the primary one.
func (e *Encoder) PutUint128(v *big.Int) {
	if e.err != nil {
		return
	}
	if v.Sign() < 0 || v.BitLen() > 128 {
		e.err = lcerrors.Newf(lcerrors.CodeDecoding, "u128 value out of range: %s", v.String())
		return
	}
	var b [16]byte
	// big.Int is big-endian; Bytes() omits leading zeros, so write into
	// the tail of a big-endian buffer and then reverse into LE.
	be := v.Bytes()
	copy(b[16-len(be):], be)
	for i, j := 0, 15; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	e.buf = append(e.buf, b[:]...)
}

// PutFixed appends raw bytes with no length prefix, for fixed-width fields
// such as hashes that are concatenated directly.
func (e *Encoder) PutFixed(b []byte) {
	e.buf = append(e.buf, b...)
}

// PutBytes appends a u32 length prefix followed by b.
func (e *Encoder) PutBytes(b []byte) {
	e.PutUint32(uint32(len(b)))
	e.buf = append(e.buf, b...)
}

// PutString appends a u32 length prefix followed by the UTF-8 bytes of s.
func (e *Encoder) PutString(s string) {
	e.PutBytes([]byte(s))
}

// PutOptional appends the one-byte presence flag and, if present, runs fn
// to append the payload.
func (e *Encoder) PutOptional(present bool, fn func()) {
	if present {
		e.PutUint8(1)
		fn()
	} else {
		e.PutUint8(0)
	}
}

// PutDiscriminant appends a single tagged-variant discriminant byte.
func (e *Encoder) PutDiscriminant(tag uint8) {
	e.PutUint8(tag)
}

// PutSeq encodes a u32 length prefix followed by n calls to fn, one per
// element.
func PutSeq[T any](e *Encoder, items []T, fn func(*Encoder, T)) {
	e.PutUint32(uint32(len(items)))
	for _, item := range items {
		fn(e, item)
	}
}

// Copyright 2025 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package encoding

import (
	"encoding/binary"
	"math/big"

	lcerrors "github.com/certen/near-lite-client/errors"
)

// Decoder reads a canonically-encoded byte buffer, returning a structured
// decoding error on truncation or an invalid discriminant rather than
// panicking. The fixed-width reads advance the internal cursor only on
// success; the prefixed reads (GetBytes, GetString, GetOptional, GetSeq)
// may leave it past the prefix or partial payload when they fail.
type Decoder struct {
	buf []byte
	pos int
}

// NewDecoder wraps b for decoding.
func NewDecoder(b []byte) *Decoder {
	return &Decoder{buf: b}
}

// Remaining returns the number of unconsumed bytes.
func (d *Decoder) Remaining() int {
	return len(d.buf) - d.pos
}

func (d *Decoder) take(n int) ([]byte, error) {
	if n < 0 || d.Remaining() < n {
		return nil, lcerrors.Newf(lcerrors.CodeDecoding,
			"truncated input: need %d bytes, have %d", n, d.Remaining())
	}
	b := d.buf[d.pos : d.pos+n]
	d.pos += n
	return b, nil
}

// GetUint8 reads a single byte.
func (d *Decoder) GetUint8() (uint8, error) {
	b, err := d.take(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// GetUint32 reads a little-endian u32.
func (d *Decoder) GetUint32() (uint32, error) {
	b, err := d.take(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// GetUint64 reads a little-endian u64.
func (d *Decoder) GetUint64() (uint64, error) {
	b, err := d.take(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

// GetUint128 reads a fixed 16-byte little-endian unsigned integer.
func (d *Decoder) GetUint128() (*big.Int, error) {
	b, err := d.take(16)
	if err != nil {
		return nil, err
	}
	be := make([]byte, 16)
	for i := 0; i < 16; i++ {
		be[i] = b[15-i]
	}
	return new(big.Int).SetBytes(be), nil
}

// GetFixed reads n raw bytes with no length prefix.
func (d *Decoder) GetFixed(n int) ([]byte, error) {
	return d.take(n)
}

// GetBytes reads a u32 length prefix followed by that many bytes. A length
// prefix larger than the remaining input is a decoding error, not a panic
// or an unbounded allocation.
func (d *Decoder) GetBytes() ([]byte, error) {
	n, err := d.GetUint32()
	if err != nil {
		return nil, err
	}
	if int(n) > d.Remaining() {
		return nil, lcerrors.Newf(lcerrors.CodeDecoding,
			"oversize length prefix: %d exceeds remaining %d", n, d.Remaining())
	}
	return d.take(int(n))
}

// GetString reads a u32-length-prefixed UTF-8 string.
func (d *Decoder) GetString() (string, error) {
	b, err := d.GetBytes()
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// GetOptional reads the one-byte presence flag, running fn to decode the
// payload when present.
func (d *Decoder) GetOptional(fn func(*Decoder) error) (bool, error) {
	tag, err := d.GetUint8()
	if err != nil {
		return false, err
	}
	switch tag {
	case 0:
		return false, nil
	case 1:
		if err := fn(d); err != nil {
			return false, err
		}
		return true, nil
	default:
		return false, lcerrors.Newf(lcerrors.CodeDecoding,
			"invalid optional discriminant: %d", tag)
	}
}

// GetDiscriminant reads a single tagged-variant discriminant byte.
func (d *Decoder) GetDiscriminant() (uint8, error) {
	return d.GetUint8()
}

// GetSeq reads a u32 length prefix followed by n elements decoded by fn.
func GetSeq[T any](d *Decoder, fn func(*Decoder) (T, error)) ([]T, error) {
	n, err := d.GetUint32()
	if err != nil {
		return nil, err
	}
	if int(n) > d.Remaining() {
		return nil, lcerrors.Newf(lcerrors.CodeDecoding,
			"oversize sequence length: %d exceeds remaining %d", n, d.Remaining())
	}
	items := make([]T, 0, n)
	for i := uint32(0); i < n; i++ {
		item, err := fn(d)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

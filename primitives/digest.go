// Copyright 2025 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package primitives

import (
	"crypto/sha256"

	simd "github.com/minio/sha256-simd"
)

// Digest is the hashing capability the light client core is parameterised
// over. Only SHA256Digest matches a live NEAR-family chain; alternative
// implementations exist for hosts without a fast SHA-256 syscall.
type Digest interface {
	Sum(data []byte) Hash
}

// SHA256Digest is the default digest, backed by the standard library. This
// is the implementation that matches the chain.
type SHA256Digest struct{}

// Sum implements Digest.
func (SHA256Digest) Sum(data []byte) Hash {
	return sha256.Sum256(data)
}

// FastSHA256Digest is a drop-in replacement backed by an assembly-optimised
// SHA-256 implementation, for hosts where the stdlib implementation is a
// bottleneck (e.g. validating large validator sets on constrained
// hardware). It produces byte-identical output to SHA256Digest.
type FastSHA256Digest struct{}

// Sum implements Digest.
func (FastSHA256Digest) Sum(data []byte) Hash {
	return simd.Sum256(data)
}

var (
	_ Digest = SHA256Digest{}
	_ Digest = FastSHA256Digest{}
)

// Copyright 2025 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package primitives

import (
	cmted25519 "github.com/cometbft/cometbft/crypto/ed25519"
)

// PublicKeySize and SignatureSize are the fixed Ed25519 widths used
// throughout the encoding and validation layers.
const (
	PublicKeySize = cmted25519.PubKeySize
	SignatureSize = cmted25519.SignatureSize
)

// PublicKey is a raw 32-byte Ed25519 public key.
type PublicKey [PublicKeySize]byte

// Signature is a raw 64-byte Ed25519 signature.
type Signature [SignatureSize]byte

// SignatureVerifier verifies a signature against a message under any one
// of a set of candidate public keys, returning a boolean rather than an
// error: verification failure at this layer is not exceptional.
type SignatureVerifier interface {
	Verify(sig Signature, message []byte, keys []PublicKey) bool
}

// Ed25519Verifier is the default SignatureVerifier, backed by cometbft's
// Ed25519 wrapper around the standard library implementation.
type Ed25519Verifier struct{}

// Verify implements SignatureVerifier.
func (Ed25519Verifier) Verify(sig Signature, message []byte, keys []PublicKey) bool {
	for _, key := range keys {
		pub := cmted25519.PubKey(key[:])
		if pub.VerifySignature(message, sig[:]) {
			return true
		}
	}
	return false
}

var _ SignatureVerifier = Ed25519Verifier{}

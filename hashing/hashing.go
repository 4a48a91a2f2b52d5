// Copyright 2025 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

// Package hashing reconstructs the fields the chain itself never sends on
// the wire: the current and next block hash, and the approval message body
// validator signatures are computed over. All three exist only because
// whoever is validating a block must derive them independently rather than
// trust a value supplied by the peer handing over the block.
package hashing

import (
	"github.com/certen/near-lite-client/encoding"
	"github.com/certen/near-lite-client/primitives"
	"github.com/certen/near-lite-client/types"
)

// CurrentBlockHash computes the block hash of view:
//
//	digest(digest(encode(InnerLiteForHashing)) || inner_rest_hash) || prev_block_hash
//
// wrapped in one more digest call, per the chain's three-stage construction.
func CurrentBlockHash(d primitives.Digest, view types.LightClientBlockView) types.Hash {
	innerLiteEnc := encoding.NewEncoder()
	view.InnerLite.ForHashing().Encode(innerLiteEnc)
	innerLiteHash := d.Sum(innerLiteEnc.Bytes())

	combined := make([]byte, 0, 2*primitives.HashSize)
	combined = append(combined, innerLiteHash.Bytes()...)
	combined = append(combined, view.InnerRestHash.Bytes()...)
	innerHash := d.Sum(combined)

	final := make([]byte, 0, 2*primitives.HashSize)
	final = append(final, innerHash.Bytes()...)
	final = append(final, view.PrevBlockHash.Bytes()...)
	return d.Sum(final)
}

// NextBlockHash computes digest(next_block_inner_hash || current_block_hash).
func NextBlockHash(d primitives.Digest, nextBlockInnerHash, currentBlockHash types.Hash) types.Hash {
	buf := make([]byte, 0, 2*primitives.HashSize)
	buf = append(buf, nextBlockInnerHash.Bytes()...)
	buf = append(buf, currentBlockHash.Bytes()...)
	return d.Sum(buf)
}

// ApprovalMessage builds the byte string block producers sign to approve
// the block two heights ahead of view: the canonical encoding of
// ApprovalInner::Endorsement(nextBlockHash), followed by the little-endian
// u64 encoding of view.Height+2.
func ApprovalMessage(nextBlockHash types.Hash, height types.BlockHeight) []byte {
	e := encoding.NewEncoder()
	inner := types.ApprovalInner{Kind: types.ApprovalEndorsement, EndorsedHash: nextBlockHash}
	inner.Encode(e)
	e.PutUint64(height + 2)
	return e.Bytes()
}

// ReconstructedFields bundles the three values a validator must derive
// independently before it can check a block's approvals.
type ReconstructedFields struct {
	CurrentBlockHash types.Hash
	NextBlockHash    types.Hash
	ApprovalMessage  []byte
}

// Reconstruct derives CurrentBlockHash, NextBlockHash, and ApprovalMessage
// for view in one call, mirroring the chain's own reconstruction sequence.
func Reconstruct(d primitives.Digest, view types.LightClientBlockView) ReconstructedFields {
	current := CurrentBlockHash(d, view)
	next := NextBlockHash(d, view.NextBlockInnerHash, current)
	return ReconstructedFields{
		CurrentBlockHash: current,
		NextBlockHash:    next,
		ApprovalMessage:  ApprovalMessage(next, view.InnerLite.Height),
	}
}

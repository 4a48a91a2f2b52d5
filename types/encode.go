// Copyright 2025 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package types

import (
	"github.com/certen/near-lite-client/encoding"
	"github.com/certen/near-lite-client/primitives"
)

func putHash(e *encoding.Encoder, h Hash) {
	e.PutFixed(h[:])
}

// Encode writes the full InnerLite (including TimestampNanosec) in
// declared field order.
func (i InnerLite) Encode(e *encoding.Encoder) {
	e.PutUint64(i.Height)
	putHash(e, i.EpochID)
	putHash(e, i.NextEpochID)
	putHash(e, i.PrevStateRoot)
	putHash(e, i.OutcomeRoot)
	e.PutUint64(i.Timestamp)
	e.PutUint64(i.TimestampNanosec)
	putHash(e, i.NextBPHash)
	putHash(e, i.BlockMerkleRoot)
}

// Encode writes InnerLiteForHashing — the same fields as InnerLite, minus
// TimestampNanosec. This is the form the canonical block hash is computed
// over (see the hashing package).
func (i InnerLiteForHashing) Encode(e *encoding.Encoder) {
	e.PutUint64(i.Height)
	putHash(e, i.EpochID)
	putHash(e, i.NextEpochID)
	putHash(e, i.PrevStateRoot)
	putHash(e, i.OutcomeRoot)
	e.PutUint64(i.Timestamp)
	putHash(e, i.NextBPHash)
	putHash(e, i.BlockMerkleRoot)
}

// Encode writes the tag byte followed by the V1 payload. The tag byte is
// preserved even though only V1 exists today, so a future V2 stays forward
// compatible with this encoder.
func (v ValidatorStake) Encode(e *encoding.Encoder) {
	e.PutDiscriminant(uint8(v.Tag))
	e.PutString(v.AccountID)
	e.PutFixed(v.PublicKey[:])
	e.PutUint128(v.Stake)
}

// Encode writes the Endorsement/Skip discriminant followed by its payload.
func (a ApprovalInner) Encode(e *encoding.Encoder) {
	e.PutDiscriminant(uint8(a.Kind))
	switch a.Kind {
	case ApprovalEndorsement:
		putHash(e, a.EndorsedHash)
	case ApprovalSkip:
		e.PutUint64(a.SkippedHeight)
	}
}

// Encode writes the sibling hash followed by the direction byte.
func (m MerklePathItem) Encode(e *encoding.Encoder) {
	putHash(e, m.Hash)
	e.PutDiscriminant(uint8(m.Direction))
}

// Encode writes the u32-length-prefixed sequence of path items.
func (p MerklePath) Encode(e *encoding.Encoder) {
	encoding.PutSeq(e, p, func(e *encoding.Encoder, item MerklePathItem) {
		item.Encode(e)
	})
}

// Encode writes the full LightClientBlockView in declared field order.
func (v LightClientBlockView) Encode(e *encoding.Encoder) {
	putHash(e, v.PrevBlockHash)
	putHash(e, v.NextBlockInnerHash)
	v.InnerLite.Encode(e)
	putHash(e, v.InnerRestHash)
	e.PutOptional(v.HasNextBPs, func() {
		encoding.PutSeq(e, v.NextBPs, func(e *encoding.Encoder, vs ValidatorStake) {
			vs.Encode(e)
		})
	})
	encoding.PutSeq(e, v.ApprovalsAfterNext, func(e *encoding.Encoder, sig *primitives.Signature) {
		e.PutOptional(sig != nil, func() {
			e.PutFixed(sig[:])
		})
	})
}

// Encode writes the execution outcome in declared field order.
func (o ExecutionOutcome) Encode(e *encoding.Encoder) {
	encoding.PutSeq(e, o.Logs, func(e *encoding.Encoder, s string) { e.PutString(s) })
	encoding.PutSeq(e, o.ReceiptIDs, func(e *encoding.Encoder, h Hash) { putHash(e, h) })
	e.PutUint64(o.GasBurnt)
	e.PutUint128(o.TokensBurnt)
	e.PutString(o.ExecutorID)
	e.PutBytes(o.Status)
}

// Encode writes the outcome proof in declared field order.
func (p OutcomeProof) Encode(e *encoding.Encoder) {
	p.Proof.Encode(e)
	putHash(e, p.BlockHash)
	putHash(e, p.ID)
	p.Outcome.Encode(e)
}

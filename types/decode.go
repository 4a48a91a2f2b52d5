// Copyright 2025 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package types

import (
	"github.com/certen/near-lite-client/encoding"
	lcerrors "github.com/certen/near-lite-client/errors"
	"github.com/certen/near-lite-client/primitives"
)

func getHash(d *encoding.Decoder) (Hash, error) {
	b, err := d.GetFixed(primitives.HashSize)
	if err != nil {
		return Hash{}, err
	}
	return primitives.ParseHash(b)
}

// DecodeInnerLite reads a full InnerLite (including TimestampNanosec).
func DecodeInnerLite(d *encoding.Decoder) (InnerLite, error) {
	var i InnerLite
	var err error
	if i.Height, err = d.GetUint64(); err != nil {
		return i, err
	}
	if i.EpochID, err = getHash(d); err != nil {
		return i, err
	}
	if i.NextEpochID, err = getHash(d); err != nil {
		return i, err
	}
	if i.PrevStateRoot, err = getHash(d); err != nil {
		return i, err
	}
	if i.OutcomeRoot, err = getHash(d); err != nil {
		return i, err
	}
	if i.Timestamp, err = d.GetUint64(); err != nil {
		return i, err
	}
	if i.TimestampNanosec, err = d.GetUint64(); err != nil {
		return i, err
	}
	if i.NextBPHash, err = getHash(d); err != nil {
		return i, err
	}
	if i.BlockMerkleRoot, err = getHash(d); err != nil {
		return i, err
	}
	return i, nil
}

// DecodeInnerLiteForHashing reads InnerLiteForHashing (no TimestampNanosec).
func DecodeInnerLiteForHashing(d *encoding.Decoder) (InnerLiteForHashing, error) {
	var i InnerLiteForHashing
	var err error
	if i.Height, err = d.GetUint64(); err != nil {
		return i, err
	}
	if i.EpochID, err = getHash(d); err != nil {
		return i, err
	}
	if i.NextEpochID, err = getHash(d); err != nil {
		return i, err
	}
	if i.PrevStateRoot, err = getHash(d); err != nil {
		return i, err
	}
	if i.OutcomeRoot, err = getHash(d); err != nil {
		return i, err
	}
	if i.Timestamp, err = d.GetUint64(); err != nil {
		return i, err
	}
	if i.NextBPHash, err = getHash(d); err != nil {
		return i, err
	}
	if i.BlockMerkleRoot, err = getHash(d); err != nil {
		return i, err
	}
	return i, nil
}

// DecodeValidatorStake reads the tag byte and V1 payload. An unknown tag is
// a decoding error rather than a silently-misinterpreted payload.
func DecodeValidatorStake(d *encoding.Decoder) (ValidatorStake, error) {
	var v ValidatorStake
	tag, err := d.GetDiscriminant()
	if err != nil {
		return v, err
	}
	if ValidatorStakeTag(tag) != ValidatorStakeV1 {
		return v, lcerrors.Newf(lcerrors.CodeDecoding, "unknown validator stake tag: %d", tag)
	}
	v.Tag = ValidatorStakeTag(tag)
	if v.AccountID, err = d.GetString(); err != nil {
		return v, err
	}
	keyBytes, err := d.GetFixed(primitives.PublicKeySize)
	if err != nil {
		return v, err
	}
	copy(v.PublicKey[:], keyBytes)
	if v.Stake, err = d.GetUint128(); err != nil {
		return v, err
	}
	return v, nil
}

// DecodeApprovalInner reads the Endorsement/Skip discriminant and payload.
func DecodeApprovalInner(d *encoding.Decoder) (ApprovalInner, error) {
	var a ApprovalInner
	tag, err := d.GetDiscriminant()
	if err != nil {
		return a, err
	}
	a.Kind = ApprovalInnerKind(tag)
	switch a.Kind {
	case ApprovalEndorsement:
		if a.EndorsedHash, err = getHash(d); err != nil {
			return a, err
		}
	case ApprovalSkip:
		if a.SkippedHeight, err = d.GetUint64(); err != nil {
			return a, err
		}
	default:
		return a, lcerrors.Newf(lcerrors.CodeDecoding, "unknown approval inner tag: %d", tag)
	}
	return a, nil
}

// DecodeMerklePathItem reads a sibling hash and its direction byte.
func DecodeMerklePathItem(d *encoding.Decoder) (MerklePathItem, error) {
	var m MerklePathItem
	hash, err := getHash(d)
	if err != nil {
		return m, err
	}
	dir, err := d.GetDiscriminant()
	if err != nil {
		return m, err
	}
	if Direction(dir) != Left && Direction(dir) != Right {
		return m, lcerrors.Newf(lcerrors.CodeDecoding, "unknown merkle direction: %d", dir)
	}
	m.Hash = hash
	m.Direction = Direction(dir)
	return m, nil
}

// DecodeMerklePath reads a u32-length-prefixed sequence of path items.
func DecodeMerklePath(d *encoding.Decoder) (MerklePath, error) {
	items, err := encoding.GetSeq(d, DecodeMerklePathItem)
	if err != nil {
		return nil, err
	}
	return MerklePath(items), nil
}

// DecodeLightClientBlockView reads a full LightClientBlockView.
func DecodeLightClientBlockView(d *encoding.Decoder) (LightClientBlockView, error) {
	var v LightClientBlockView
	var err error
	if v.PrevBlockHash, err = getHash(d); err != nil {
		return v, err
	}
	if v.NextBlockInnerHash, err = getHash(d); err != nil {
		return v, err
	}
	if v.InnerLite, err = DecodeInnerLite(d); err != nil {
		return v, err
	}
	if v.InnerRestHash, err = getHash(d); err != nil {
		return v, err
	}
	present, err := d.GetOptional(func(d *encoding.Decoder) error {
		bps, err := encoding.GetSeq(d, DecodeValidatorStake)
		if err != nil {
			return err
		}
		v.NextBPs = bps
		return nil
	})
	if err != nil {
		return v, err
	}
	v.HasNextBPs = present

	sigs, err := encoding.GetSeq(d, func(d *encoding.Decoder) (*primitives.Signature, error) {
		var sig *primitives.Signature
		_, err := d.GetOptional(func(d *encoding.Decoder) error {
			b, err := d.GetFixed(primitives.SignatureSize)
			if err != nil {
				return err
			}
			var s primitives.Signature
			copy(s[:], b)
			sig = &s
			return nil
		})
		return sig, err
	})
	if err != nil {
		return v, err
	}
	v.ApprovalsAfterNext = sigs
	return v, nil
}

// DecodeExecutionOutcome reads an ExecutionOutcome.
func DecodeExecutionOutcome(d *encoding.Decoder) (ExecutionOutcome, error) {
	var o ExecutionOutcome
	var err error
	if o.Logs, err = encoding.GetSeq(d, func(d *encoding.Decoder) (string, error) { return d.GetString() }); err != nil {
		return o, err
	}
	if o.ReceiptIDs, err = encoding.GetSeq(d, getHash); err != nil {
		return o, err
	}
	if o.GasBurnt, err = d.GetUint64(); err != nil {
		return o, err
	}
	if o.TokensBurnt, err = d.GetUint128(); err != nil {
		return o, err
	}
	if o.ExecutorID, err = d.GetString(); err != nil {
		return o, err
	}
	if o.Status, err = d.GetBytes(); err != nil {
		return o, err
	}
	return o, nil
}

// DecodeOutcomeProof reads a full OutcomeProof.
func DecodeOutcomeProof(d *encoding.Decoder) (OutcomeProof, error) {
	var p OutcomeProof
	var err error
	if p.Proof, err = DecodeMerklePath(d); err != nil {
		return p, err
	}
	if p.BlockHash, err = getHash(d); err != nil {
		return p, err
	}
	if p.ID, err = getHash(d); err != nil {
		return p, err
	}
	if p.Outcome, err = DecodeExecutionOutcome(d); err != nil {
		return p, err
	}
	return p, nil
}

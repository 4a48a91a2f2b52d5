// Copyright 2025 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

// Package types holds the domain model of the light client core: block
// header views, validator stake records, approval tags, Merkle path
// items, and transaction outcome proofs.
package types

import (
	"math/big"

	"github.com/certen/near-lite-client/primitives"
)

// Hash aliases primitives.Hash so callers only need to import one package
// for the common case.
type Hash = primitives.Hash

// BlockHeight is a NEAR block height.
type BlockHeight = uint64

// InnerLite is the "light" part of a block header.
type InnerLite struct {
	Height           BlockHeight
	EpochID          Hash
	NextEpochID      Hash
	PrevStateRoot    Hash
	OutcomeRoot      Hash
	Timestamp        uint64
	TimestampNanosec uint64
	NextBPHash       Hash
	BlockMerkleRoot  Hash
}

// InnerLiteForHashing is InnerLite minus TimestampNanosec: the form the
// chain actually hashes. Never constructed directly by callers; the
// hashing package derives it from InnerLite.
type InnerLiteForHashing struct {
	Height          BlockHeight
	EpochID         Hash
	NextEpochID     Hash
	PrevStateRoot   Hash
	OutcomeRoot     Hash
	Timestamp       uint64
	NextBPHash      Hash
	BlockMerkleRoot Hash
}

// ForHashing drops TimestampNanosec from i, producing the struct the
// canonical block hash is actually computed over.
func (i InnerLite) ForHashing() InnerLiteForHashing {
	return InnerLiteForHashing{
		Height:          i.Height,
		EpochID:         i.EpochID,
		NextEpochID:     i.NextEpochID,
		PrevStateRoot:   i.PrevStateRoot,
		OutcomeRoot:     i.OutcomeRoot,
		Timestamp:       i.Timestamp,
		NextBPHash:      i.NextBPHash,
		BlockMerkleRoot: i.BlockMerkleRoot,
	}
}

// ValidatorStakeTag is the discriminant byte preserved across encode/decode
// so a future V2 variant stays forward compatible.
type ValidatorStakeTag uint8

// ValidatorStakeV1 is the only variant that currently exists.
const ValidatorStakeV1 ValidatorStakeTag = 0

// ValidatorStake is a tagged validator stake record. Only V1 exists today.
type ValidatorStake struct {
	Tag       ValidatorStakeTag
	AccountID string
	PublicKey primitives.PublicKey
	Stake     *big.Int
}

// ApprovalInnerKind tags the two ApprovalInner variants.
type ApprovalInnerKind uint8

const (
	ApprovalEndorsement ApprovalInnerKind = 0
	ApprovalSkip        ApprovalInnerKind = 1
)

// ApprovalInner is the tagged payload signed by block producer approvals.
// Head advancement always uses the Endorsement variant; Skip exists only
// for completeness of the encoding.
type ApprovalInner struct {
	Kind          ApprovalInnerKind
	EndorsedHash  Hash        // valid when Kind == ApprovalEndorsement
	SkippedHeight BlockHeight // valid when Kind == ApprovalSkip
}

// Direction is the side a Merkle sibling sits on relative to the running
// hash.
type Direction uint8

const (
	Left  Direction = 0
	Right Direction = 1
)

// MerklePathItem is one step of a Merkle path: a sibling hash and the side
// it sits on.
type MerklePathItem struct {
	Hash      Hash
	Direction Direction
}

// MerklePath is an ordered list of items walked from leaf toward root.
type MerklePath []MerklePathItem

// LightClientBlockView is the wire view of a block the light client
// validates and, on acceptance, adopts as its new head.
type LightClientBlockView struct {
	PrevBlockHash      Hash
	NextBlockInnerHash Hash
	InnerLite          InnerLite
	InnerRestHash      Hash
	NextBPs            []ValidatorStake // nil when absent
	HasNextBPs         bool
	ApprovalsAfterNext []*primitives.Signature // nil element means absent
}

// ExecutionOutcome carries the observable result of a transaction or
// receipt's execution.
type ExecutionOutcome struct {
	Logs        []string
	ReceiptIDs  []Hash
	GasBurnt    uint64
	TokensBurnt *big.Int
	ExecutorID  string
	Status      []byte // opaque status payload
}

// OutcomeProof proves that an ExecutionOutcome is included under a shard
// outcome root.
type OutcomeProof struct {
	Proof     MerklePath
	BlockHash Hash
	ID        Hash
	Outcome   ExecutionOutcome
}

// Copyright 2025 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package client

import (
	"math/big"
	"testing"

	"github.com/certen/near-lite-client/checkpoint"
	"github.com/certen/near-lite-client/encoding"
	"github.com/certen/near-lite-client/merkle"
	"github.com/certen/near-lite-client/primitives"
	"github.com/certen/near-lite-client/types"
	"github.com/certen/near-lite-client/validation"
)

type allowAllVerifier struct{}

func (allowAllVerifier) Verify(sig primitives.Signature, message []byte, keys []primitives.PublicKey) bool {
	return true
}

func fill(b byte) types.Hash {
	var h types.Hash
	for i := range h {
		h[i] = b
	}
	return h
}

func testCheckpoint() checkpoint.TrustedCheckpoint {
	return checkpoint.TrustedCheckpoint{
		Head: types.LightClientBlockView{
			PrevBlockHash: fill(0x01),
			InnerLite: types.InnerLite{
				Height:      100,
				EpochID:     fill(0xE1),
				NextEpochID: fill(0xE2),
			},
		},
		Validators: []types.ValidatorStake{
			{Tag: types.ValidatorStakeV1, AccountID: "v0", Stake: big.NewInt(100)},
			{Tag: types.ValidatorStakeV1, AccountID: "v1", Stake: big.NewInt(100)},
			{Tag: types.ValidatorStakeV1, AccountID: "v2", Stake: big.NewInt(100)},
		},
	}
}

func testOptions() Options {
	opts := DefaultOptions()
	opts.Verifier = allowAllVerifier{}
	return opts
}

func TestValidateAndUpdateHeadAcceptsAndAdvances(t *testing.T) {
	cp := testCheckpoint()
	lc := NewLightClient(cp, testOptions())

	candidate := types.LightClientBlockView{
		PrevBlockHash:      fill(0x02),
		NextBlockInnerHash: fill(0x03),
		InnerRestHash:      fill(0x04),
		InnerLite: types.InnerLite{
			Height:  101,
			EpochID: cp.Head.InnerLite.EpochID,
		},
		ApprovalsAfterNext: []*primitives.Signature{
			new(primitives.Signature), new(primitives.Signature), new(primitives.Signature),
		},
	}

	if err := lc.ValidateAndUpdateHead(candidate); err != nil {
		t.Fatalf("expected accept, got %v", err)
	}
	if lc.Head().InnerLite.Height != 101 {
		t.Fatalf("head did not advance: %+v", lc.Head())
	}
	if len(lc.CurrentValidators()) != 3 {
		t.Fatalf("validator set should not rotate within the same epoch")
	}
}

func TestValidateAndUpdateHeadRejectsLeavesStateUnchanged(t *testing.T) {
	cp := testCheckpoint()
	lc := NewLightClient(cp, testOptions())

	stale := types.LightClientBlockView{
		InnerLite: types.InnerLite{Height: 50, EpochID: cp.Head.InnerLite.EpochID},
	}
	err := lc.ValidateAndUpdateHead(stale)
	if err == nil {
		t.Fatal("expected rejection for a stale height")
	}
	var rej *validation.RejectionError
	if e, ok := err.(*validation.RejectionError); ok {
		rej = e
	}
	if rej == nil || rej.Kind != validation.RejectionHeight {
		t.Fatalf("expected height rejection, got %v", err)
	}
	if lc.Head().InnerLite.Height != 100 {
		t.Fatalf("head must not change on rejection, got height %d", lc.Head().InnerLite.Height)
	}
}

func TestValidateAndUpdateHeadRotatesValidatorsAtEpochBoundary(t *testing.T) {
	cp := testCheckpoint()
	d := primitives.SHA256Digest{}

	nextBPs := []types.ValidatorStake{
		{Tag: types.ValidatorStakeV1, AccountID: "w0", Stake: big.NewInt(50)},
		{Tag: types.ValidatorStakeV1, AccountID: "w1", Stake: big.NewInt(50)},
	}
	e := encoding.NewEncoder()
	encoding.PutSeq(e, nextBPs, func(e *encoding.Encoder, vs types.ValidatorStake) { vs.Encode(e) })
	nextBPHash := d.Sum(e.Bytes())

	candidate := types.LightClientBlockView{
		PrevBlockHash:      fill(0x05),
		NextBlockInnerHash: fill(0x06),
		InnerRestHash:      fill(0x07),
		InnerLite: types.InnerLite{
			Height:     500,
			EpochID:    cp.Head.InnerLite.NextEpochID,
			NextBPHash: nextBPHash,
		},
		HasNextBPs: true,
		NextBPs:    nextBPs,
		ApprovalsAfterNext: []*primitives.Signature{
			new(primitives.Signature), new(primitives.Signature), new(primitives.Signature),
		},
	}

	lc := NewLightClient(cp, testOptions())
	if err := lc.ValidateAndUpdateHead(candidate); err != nil {
		t.Fatalf("expected accept, got %v", err)
	}
	if len(lc.CurrentValidators()) != 2 || lc.CurrentValidators()[0].AccountID != "w0" {
		t.Fatalf("validator set should have rotated to next_bps, got %+v", lc.CurrentValidators())
	}
}

func TestValidateTransactionAcceptsMatchingRoot(t *testing.T) {
	cp := testCheckpoint()
	lc := NewLightClient(cp, testOptions())
	lc.opts.CrossCheckBlockHash = false

	d := primitives.SHA256Digest{}
	outcome := types.ExecutionOutcome{
		ExecutorID:  "contract.near",
		GasBurnt:    100,
		TokensBurnt: big.NewInt(0),
	}
	outcomeEnc := encoding.NewEncoder()
	outcome.Encode(outcomeEnc)
	leafHash := d.Sum(outcomeEnc.Bytes())

	sibling1 := fill(0x11)
	proof := types.MerklePath{{Hash: sibling1, Direction: types.Right}}
	shardRoot, err := merkle.ComputeRootFromPath(d, proof, leafHash)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sibling2 := fill(0x22)
	rootProof := types.MerklePath{{Hash: sibling2, Direction: types.Left}}
	blockRoot, err := merkle.ComputeRootFromPath(d, rootProof, shardRoot)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	outcomeProof := types.OutcomeProof{
		Proof:     proof,
		BlockHash: fill(0x99),
		Outcome:   outcome,
	}

	if err := lc.ValidateTransaction(outcomeProof, rootProof, blockRoot); err != nil {
		t.Fatalf("expected accept, got %v", err)
	}
}

func TestValidateTransactionRejectsWrongRoot(t *testing.T) {
	cp := testCheckpoint()
	lc := NewLightClient(cp, testOptions())
	lc.opts.CrossCheckBlockHash = false

	outcomeProof := types.OutcomeProof{
		BlockHash: fill(0x99),
		Outcome:   types.ExecutionOutcome{TokensBurnt: big.NewInt(0)},
	}
	if err := lc.ValidateTransaction(outcomeProof, nil, fill(0xAB)); err == nil {
		t.Fatal("expected rejection for a non-matching expected root")
	}
}

func TestValidateTransactionCrossChecksBlockHash(t *testing.T) {
	cp := testCheckpoint()
	lc := NewLightClient(cp, testOptions())
	// CrossCheckBlockHash stays on (the default).

	outcomeProof := types.OutcomeProof{
		BlockHash: fill(0xDE), // does not match the checkpoint head's current_block_hash
		Outcome:   types.ExecutionOutcome{TokensBurnt: big.NewInt(0)},
	}
	if err := lc.ValidateTransaction(outcomeProof, nil, fill(0)); err == nil {
		t.Fatal("expected rejection from the block hash cross-check")
	}
}

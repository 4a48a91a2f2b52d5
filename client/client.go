// Copyright 2025 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

// Package client exposes the light client facade: a small amount of state
// (head block, current validator set) and two operations — validating a
// candidate block, which moves the head forward on acceptance, and
// validating a transaction's inclusion under an already-trusted block,
// which reads state only. Nothing here does I/O; callers
// own fetching block views and outcome proofs from wherever they come from.
package client

import (
	"github.com/certen/near-lite-client/checkpoint"
	"github.com/certen/near-lite-client/encoding"
	lcerrors "github.com/certen/near-lite-client/errors"
	"github.com/certen/near-lite-client/hashing"
	"github.com/certen/near-lite-client/merkle"
	"github.com/certen/near-lite-client/primitives"
	"github.com/certen/near-lite-client/types"
	"github.com/certen/near-lite-client/validation"
)

// Options configures the capabilities and policy a LightClient runs with.
type Options struct {
	Digest   primitives.Digest
	Verifier primitives.SignatureVerifier

	Validation validation.Options

	// CrossCheckBlockHash additionally verifies an outcome proof's
	// BlockHash against the current_block_hash of the LightClient's head,
	// before trusting the outcome root it proves inclusion under.
	// Cheap, and recommended by the design notes; on by default.
	CrossCheckBlockHash bool
}

// DefaultOptions returns the chain-matching digest (SHA-256), Ed25519
// signature verification, the chain's documented zip-to-shorter validator
// tie-break, and the block-hash cross-check enabled.
func DefaultOptions() Options {
	return Options{
		Digest:              primitives.SHA256Digest{},
		Verifier:            primitives.Ed25519Verifier{},
		Validation:          validation.Options{},
		CrossCheckBlockHash: true,
	}
}

// LightClient is single-threaded and synchronous: ValidateAndUpdateHead is
// the only method that mutates state, and it commits only on acceptance.
// Callers sharing a LightClient across goroutines must provide their own
// exclusion; it takes no internal lock.
type LightClient struct {
	head       types.LightClientBlockView
	validators []types.ValidatorStake
	opts       Options
}

// NewLightClient constructs a LightClient from a trusted checkpoint under
// opts.
func NewLightClient(cp checkpoint.TrustedCheckpoint, opts Options) *LightClient {
	return &LightClient{
		head:       cp.Head,
		validators: cp.Validators,
		opts:       opts,
	}
}

// WithCheckpoint constructs a LightClient from cp using DefaultOptions.
func WithCheckpoint(cp checkpoint.TrustedCheckpoint) *LightClient {
	return NewLightClient(cp, DefaultOptions())
}

// Head returns the current head block view.
func (c *LightClient) Head() types.LightClientBlockView {
	return c.head
}

// CurrentValidators returns the validator set active for the current head's
// epoch.
func (c *LightClient) CurrentValidators() []types.ValidatorStake {
	return c.validators
}

// ValidateAndUpdateHead runs the six block acceptance rules against
// candidate and, on acceptance, replaces Head with it. If candidate crosses
// into the head's next epoch, CurrentValidators is replaced by candidate's
// next_bps. On rejection, state is left unchanged and the returned error is
// a *validation.RejectionError.
func (c *LightClient) ValidateAndUpdateHead(candidate types.LightClientBlockView) error {
	if err := validation.ValidateLightBlock(
		c.opts.Digest, c.opts.Verifier, c.head, candidate, c.validators, c.opts.Validation,
	); err != nil {
		return err
	}

	if candidate.InnerLite.EpochID == c.head.InnerLite.NextEpochID {
		c.validators = candidate.NextBPs
	}
	c.head = candidate
	return nil
}

// ValidateTransaction proves that outcomeProof.Outcome is included under
// expectedBlockOutcomeRoot, following the chain's two-stage outcome-proof
// scheme: fold outcomeProof.Proof from the outcome's leaf hash to obtain
// the shard outcome root, then fold outcomeRootProof from that root to
// obtain the block outcome root, and compare.
//
// When opts.CrossCheckBlockHash is set, outcomeProof.BlockHash must also
// equal the current_block_hash of the LightClient's head — guarding
// against a caller supplying expectedBlockOutcomeRoot for a block whose
// hash doesn't actually match the proof's claimed block.
func (c *LightClient) ValidateTransaction(
	outcomeProof types.OutcomeProof,
	outcomeRootProof types.MerklePath,
	expectedBlockOutcomeRoot types.Hash,
) error {
	if c.opts.CrossCheckBlockHash {
		headHash := hashing.CurrentBlockHash(c.opts.Digest, c.head)
		if outcomeProof.BlockHash != headHash {
			return lcerrors.Newf(lcerrors.CodeProofMismatch,
				"outcome proof block hash %s does not match head block hash %s",
				outcomeProof.BlockHash, headHash)
		}
	}

	outcomeEnc := encoding.NewEncoder()
	outcomeProof.Outcome.Encode(outcomeEnc)
	leafHash := c.opts.Digest.Sum(outcomeEnc.Bytes())

	shardRoot, err := merkle.ComputeRootFromPath(c.opts.Digest, outcomeProof.Proof, leafHash)
	if err != nil {
		return err
	}
	blockRoot, err := merkle.ComputeRootFromPath(c.opts.Digest, outcomeRootProof, shardRoot)
	if err != nil {
		return err
	}

	if blockRoot != expectedBlockOutcomeRoot {
		return lcerrors.Newf(lcerrors.CodeProofMismatch,
			"folded block outcome root %s does not match expected %s", blockRoot, expectedBlockOutcomeRoot)
	}
	return nil
}

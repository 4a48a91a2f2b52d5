// Copyright 2025 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

// Package checkpoint loads a trusted starting point for a light client: a
// block view the caller has verified out of band (social consensus, a
// hardcoded release value, a prior session) together with the validator
// set active at that block. The light client never bootstraps trust on
// its own; it always starts from one of these.
package checkpoint

import (
	"encoding/hex"
	"encoding/json"
	"io"
	"math/big"
	"os"

	lcerrors "github.com/certen/near-lite-client/errors"
	"github.com/certen/near-lite-client/primitives"
	"github.com/certen/near-lite-client/types"
)

// TrustedCheckpoint is the initial (head, validators) pair a LightClient is
// constructed from.
type TrustedCheckpoint struct {
	Head       types.LightClientBlockView
	Validators []types.ValidatorStake
}

type jsonValidatorStake struct {
	AccountID string `json:"account_id"`
	PublicKey string `json:"public_key"`
	Stake     string `json:"stake"`
}

type jsonInnerLite struct {
	Height           types.BlockHeight `json:"height"`
	EpochID          string            `json:"epoch_id"`
	NextEpochID      string            `json:"next_epoch_id"`
	PrevStateRoot    string            `json:"prev_state_root"`
	OutcomeRoot      string            `json:"outcome_root"`
	Timestamp        uint64            `json:"timestamp"`
	TimestampNanosec uint64            `json:"timestamp_nanosec"`
	NextBPHash       string            `json:"next_bp_hash"`
	BlockMerkleRoot  string            `json:"block_merkle_root"`
}

type jsonBlockView struct {
	PrevBlockHash      string               `json:"prev_block_hash"`
	NextBlockInnerHash string               `json:"next_block_inner_hash"`
	InnerLite          jsonInnerLite        `json:"inner_lite"`
	InnerRestHash      string               `json:"inner_rest_hash"`
	NextBPs            []jsonValidatorStake `json:"next_bps,omitempty"`
}

type jsonCheckpoint struct {
	Head       jsonBlockView        `json:"head"`
	Validators []jsonValidatorStake `json:"validators"`
}

func decodeHash(field, value string) (types.Hash, error) {
	b, err := hex.DecodeString(value)
	if err != nil {
		return types.Hash{}, lcerrors.Wrapf(err, lcerrors.CodeDecoding, "checkpoint: bad hex in %s", field)
	}
	return primitives.ParseHash(b)
}

func decodeValidator(v jsonValidatorStake) (types.ValidatorStake, error) {
	keyBytes, err := hex.DecodeString(v.PublicKey)
	if err != nil {
		return types.ValidatorStake{}, lcerrors.Wrapf(err, lcerrors.CodeDecoding,
			"checkpoint: bad hex public key for validator %q", v.AccountID)
	}
	if len(keyBytes) != primitives.PublicKeySize {
		return types.ValidatorStake{}, lcerrors.Newf(lcerrors.CodeHashLength,
			"checkpoint: public key for validator %q has %d bytes, want %d",
			v.AccountID, len(keyBytes), primitives.PublicKeySize)
	}
	stake, ok := new(big.Int).SetString(v.Stake, 10)
	if !ok {
		return types.ValidatorStake{}, lcerrors.Newf(lcerrors.CodeDecoding,
			"checkpoint: bad decimal stake %q for validator %q", v.Stake, v.AccountID)
	}
	if stake.Sign() < 0 || stake.BitLen() > 128 {
		return types.ValidatorStake{}, lcerrors.Newf(lcerrors.CodeDecoding,
			"checkpoint: stake %q for validator %q does not fit in 128 bits", v.Stake, v.AccountID)
	}
	var pk primitives.PublicKey
	copy(pk[:], keyBytes)
	return types.ValidatorStake{
		Tag:       types.ValidatorStakeV1,
		AccountID: v.AccountID,
		PublicKey: pk,
		Stake:     stake,
	}, nil
}

func decodeBlockView(b jsonBlockView) (types.LightClientBlockView, error) {
	var view types.LightClientBlockView
	var err error
	if view.PrevBlockHash, err = decodeHash("prev_block_hash", b.PrevBlockHash); err != nil {
		return view, err
	}
	if view.NextBlockInnerHash, err = decodeHash("next_block_inner_hash", b.NextBlockInnerHash); err != nil {
		return view, err
	}
	if view.InnerRestHash, err = decodeHash("inner_rest_hash", b.InnerRestHash); err != nil {
		return view, err
	}

	il := types.InnerLite{
		Height:           b.InnerLite.Height,
		Timestamp:        b.InnerLite.Timestamp,
		TimestampNanosec: b.InnerLite.TimestampNanosec,
	}
	if il.EpochID, err = decodeHash("inner_lite.epoch_id", b.InnerLite.EpochID); err != nil {
		return view, err
	}
	if il.NextEpochID, err = decodeHash("inner_lite.next_epoch_id", b.InnerLite.NextEpochID); err != nil {
		return view, err
	}
	if il.PrevStateRoot, err = decodeHash("inner_lite.prev_state_root", b.InnerLite.PrevStateRoot); err != nil {
		return view, err
	}
	if il.OutcomeRoot, err = decodeHash("inner_lite.outcome_root", b.InnerLite.OutcomeRoot); err != nil {
		return view, err
	}
	if il.NextBPHash, err = decodeHash("inner_lite.next_bp_hash", b.InnerLite.NextBPHash); err != nil {
		return view, err
	}
	if il.BlockMerkleRoot, err = decodeHash("inner_lite.block_merkle_root", b.InnerLite.BlockMerkleRoot); err != nil {
		return view, err
	}
	view.InnerLite = il

	if b.NextBPs != nil {
		view.HasNextBPs = true
		view.NextBPs = make([]types.ValidatorStake, len(b.NextBPs))
		for i, jv := range b.NextBPs {
			if view.NextBPs[i], err = decodeValidator(jv); err != nil {
				return view, err
			}
		}
	}
	return view, nil
}

// Load parses a checkpoint from r. The on-disk shape mirrors NEAR's own RPC
// block-view JSON closely enough to be hand-edited from a `view_client` or
// `next_light_client_block` RPC response: hashes and public keys are hex,
// stake is a decimal string (u128 does not fit a JSON number safely).
func Load(r io.Reader) (TrustedCheckpoint, error) {
	var raw jsonCheckpoint
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return TrustedCheckpoint{}, lcerrors.Wrap(err, lcerrors.CodeDecoding, "checkpoint: invalid JSON")
	}

	head, err := decodeBlockView(raw.Head)
	if err != nil {
		return TrustedCheckpoint{}, err
	}

	validators := make([]types.ValidatorStake, len(raw.Validators))
	for i, jv := range raw.Validators {
		if validators[i], err = decodeValidator(jv); err != nil {
			return TrustedCheckpoint{}, err
		}
	}

	return TrustedCheckpoint{Head: head, Validators: validators}, nil
}

// LoadFile opens path and loads a checkpoint from it.
func LoadFile(path string) (TrustedCheckpoint, error) {
	f, err := os.Open(path)
	if err != nil {
		return TrustedCheckpoint{}, lcerrors.Wrapf(err, lcerrors.CodeDecoding, "checkpoint: cannot open %s", path)
	}
	defer f.Close()
	return Load(f)
}

// LoadBlockView parses a single candidate block view in the same JSON shape
// as a checkpoint's "head" field. Callers use this to feed successive
// candidates to client.LightClient.ValidateAndUpdateHead. The JSON shape
// has no approvals_after_next field, so a view loaded here carries no
// approvals and fails the stake quorum rule.
func LoadBlockView(r io.Reader) (types.LightClientBlockView, error) {
	var raw jsonBlockView
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return types.LightClientBlockView{}, lcerrors.Wrap(err, lcerrors.CodeDecoding, "block view: invalid JSON")
	}
	return decodeBlockView(raw)
}

// LoadBlockViewFile opens path and loads a block view from it.
func LoadBlockViewFile(path string) (types.LightClientBlockView, error) {
	f, err := os.Open(path)
	if err != nil {
		return types.LightClientBlockView{}, lcerrors.Wrapf(err, lcerrors.CodeDecoding, "block view: cannot open %s", path)
	}
	defer f.Close()
	return LoadBlockView(f)
}

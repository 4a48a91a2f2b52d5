// Copyright 2025 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

// Package validation implements the block acceptance rules: the six checks
// a candidate block must pass before a light client adopts it as its new
// head. All six must hold; the first failure stops evaluation and returns
// the rule that failed rather than a bare boolean.
package validation

import (
	"math/big"

	"github.com/certen/near-lite-client/encoding"
	lcerrors "github.com/certen/near-lite-client/errors"
	"github.com/certen/near-lite-client/hashing"
	"github.com/certen/near-lite-client/primitives"
	"github.com/certen/near-lite-client/types"
)

// RejectionKind names which acceptance rule failed: one of the six
// mandatory rules, or the optional StrictLengths check.
type RejectionKind string

const (
	RejectionHeight                  RejectionKind = "height"
	RejectionEpoch                   RejectionKind = "epoch"
	RejectionMissingNextBPs          RejectionKind = "missing_next_bps"
	RejectionBadSignature            RejectionKind = "bad_signature"
	RejectionInsufficientStake       RejectionKind = "insufficient_stake"
	RejectionNextBPHashMismatch      RejectionKind = "next_bp_hash_mismatch"
	RejectionValidatorLengthMismatch RejectionKind = "validator_length_mismatch"
)

// RejectionError is returned when a candidate block fails validation. It
// carries the discriminated Kind rather than collapsing to a bare boolean.
type RejectionError struct {
	Kind RejectionKind
	err  *lcerrors.Error
}

func (r *RejectionError) Error() string { return r.err.Error() }
func (r *RejectionError) Unwrap() error { return r.err }

func reject(kind RejectionKind, format string, args ...any) *RejectionError {
	return &RejectionError{
		Kind: kind,
		err: lcerrors.Newf(lcerrors.CodeValidationRejection, format, args...).
			WithContext("rule", string(kind)),
	}
}

// Options tunes validation behaviour beyond the six mandatory rules.
type Options struct {
	// StrictLengths rejects a candidate whose approvals_after_next length
	// differs from the validator set length, instead of the chain's own
	// behaviour of silently truncating to the shorter of the two.
	StrictLengths bool
}

// ValidateLightBlock checks candidate against head and validators under the
// six acceptance rules, using d to reconstruct hashes and verifier to check
// approval signatures. It returns nil when candidate is accepted, or a
// *RejectionError naming the failing rule.
func ValidateLightBlock(
	d primitives.Digest,
	verifier primitives.SignatureVerifier,
	head types.LightClientBlockView,
	candidate types.LightClientBlockView,
	validators []types.ValidatorStake,
	opts Options,
) error {
	// (1) Height monotonicity.
	if candidate.InnerLite.Height <= head.InnerLite.Height {
		return reject(RejectionHeight,
			"candidate height %d is not greater than head height %d",
			candidate.InnerLite.Height, head.InnerLite.Height)
	}

	// (2) Epoch linkage.
	epoch := candidate.InnerLite.EpochID
	if epoch != head.InnerLite.EpochID && epoch != head.InnerLite.NextEpochID {
		return reject(RejectionEpoch,
			"candidate epoch %s is neither the head epoch nor its next epoch", epoch)
	}

	// (3) Epoch-boundary completeness.
	atEpochBoundary := epoch == head.InnerLite.NextEpochID
	if atEpochBoundary && !candidate.HasNextBPs {
		return reject(RejectionMissingNextBPs,
			"candidate crosses into the head's next epoch but carries no next_bps")
	}

	fields := hashing.Reconstruct(d, candidate)

	// (4) and (5): approval signatures and stake quorum.
	n := len(candidate.ApprovalsAfterNext)
	if len(validators) < n {
		n = len(validators)
	}
	if opts.StrictLengths && len(candidate.ApprovalsAfterNext) != len(validators) {
		return reject(RejectionValidatorLengthMismatch,
			"approvals_after_next has %d entries but the validator set has %d",
			len(candidate.ApprovalsAfterNext), len(validators))
	}

	total := new(big.Int)
	approved := new(big.Int)
	for i := 0; i < n; i++ {
		v := validators[i]
		total.Add(total, v.Stake)

		sig := candidate.ApprovalsAfterNext[i]
		if sig == nil {
			continue
		}
		if !verifier.Verify(*sig, fields.ApprovalMessage, []primitives.PublicKey{v.PublicKey}) {
			return reject(RejectionBadSignature,
				"approval signature at position %d does not verify for validator %q",
				i, v.AccountID)
		}
		approved.Add(approved, v.Stake)
	}

	// approved*3 > total*2, i.e. strictly more than two-thirds.
	lhs := new(big.Int).Mul(approved, big.NewInt(3))
	rhs := new(big.Int).Mul(total, big.NewInt(2))
	if lhs.Cmp(rhs) <= 0 {
		return reject(RejectionInsufficientStake,
			"approved stake %s does not exceed two-thirds of total stake %s", approved, total)
	}

	// (6) Next validator-set commitment.
	if candidate.HasNextBPs {
		e := encoding.NewEncoder()
		encoding.PutSeq(e, candidate.NextBPs, func(e *encoding.Encoder, vs types.ValidatorStake) {
			vs.Encode(e)
		})
		got := d.Sum(e.Bytes())
		if got != candidate.InnerLite.NextBPHash {
			return reject(RejectionNextBPHashMismatch,
				"digest of next_bps %s does not match next_bp_hash %s", got, candidate.InnerLite.NextBPHash)
		}
	}

	return nil
}

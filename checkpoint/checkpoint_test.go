// Copyright 2025 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package checkpoint

import (
	"strings"
	"testing"
)

func TestLoadRejectsMalformedJSON(t *testing.T) {
	_, err := Load(strings.NewReader("{not json"))
	if err == nil {
		t.Fatal("expected an error for malformed JSON")
	}
}

func TestLoadRejectsBadHexHash(t *testing.T) {
	const doc = `{
		"head": {
			"prev_block_hash": "zz",
			"next_block_inner_hash": "",
			"inner_lite": {},
			"inner_rest_hash": ""
		},
		"validators": []
	}`
	_, err := Load(strings.NewReader(doc))
	if err == nil {
		t.Fatal("expected an error for invalid hex in prev_block_hash")
	}
}

func TestLoadRejectsStakeOutOfRange(t *testing.T) {
	hash := strings.Repeat("00", 32)
	// 2^128, one past the largest value the u128 wire encoding can hold.
	const tooBig = "340282366920938463463374607431768211456"
	doc := `{
		"head": {
			"prev_block_hash": "` + hash + `",
			"next_block_inner_hash": "` + hash + `",
			"inner_lite": {
				"epoch_id": "` + hash + `",
				"next_epoch_id": "` + hash + `",
				"prev_state_root": "` + hash + `",
				"outcome_root": "` + hash + `",
				"next_bp_hash": "` + hash + `",
				"block_merkle_root": "` + hash + `"
			},
			"inner_rest_hash": "` + hash + `"
		},
		"validators": [{"account_id": "v.near", "public_key": "` + strings.Repeat("00", 32) + `", "stake": "` + tooBig + `"}]
	}`
	_, err := Load(strings.NewReader(doc))
	if err == nil {
		t.Fatal("expected an error for a stake value that does not fit in 128 bits")
	}
}

func TestLoadRejectsBadStakeString(t *testing.T) {
	hash := strings.Repeat("00", 32)
	doc := `{
		"head": {
			"prev_block_hash": "` + hash + `",
			"next_block_inner_hash": "` + hash + `",
			"inner_lite": {
				"epoch_id": "` + hash + `",
				"next_epoch_id": "` + hash + `",
				"prev_state_root": "` + hash + `",
				"outcome_root": "` + hash + `",
				"next_bp_hash": "` + hash + `",
				"block_merkle_root": "` + hash + `"
			},
			"inner_rest_hash": "` + hash + `"
		},
		"validators": [{"account_id": "v.near", "public_key": "` + strings.Repeat("00", 32) + `", "stake": "not-a-number"}]
	}`
	_, err := Load(strings.NewReader(doc))
	if err == nil {
		t.Fatal("expected an error for a non-decimal stake string")
	}
}

func TestLoadRoundTripsHashesAndStake(t *testing.T) {
	hash := strings.Repeat("ab", 32)
	key := strings.Repeat("cd", 32)
	doc := `{
		"head": {
			"prev_block_hash": "` + hash + `",
			"next_block_inner_hash": "` + hash + `",
			"inner_lite": {
				"height": 42,
				"epoch_id": "` + hash + `",
				"next_epoch_id": "` + hash + `",
				"prev_state_root": "` + hash + `",
				"outcome_root": "` + hash + `",
				"timestamp": 7,
				"timestamp_nanosec": 8,
				"next_bp_hash": "` + hash + `",
				"block_merkle_root": "` + hash + `"
			},
			"inner_rest_hash": "` + hash + `"
		},
		"validators": [{"account_id": "v.near", "public_key": "` + key + `", "stake": "123456789012345678901234567890"}]
	}`
	cp, err := Load(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cp.Head.InnerLite.Height != 42 {
		t.Fatalf("unexpected height: %d", cp.Head.InnerLite.Height)
	}
	if len(cp.Validators) != 1 {
		t.Fatalf("expected 1 validator, got %d", len(cp.Validators))
	}
	if cp.Validators[0].Stake.String() != "123456789012345678901234567890" {
		t.Fatalf("unexpected stake: %s", cp.Validators[0].Stake.String())
	}
	if cp.Head.HasNextBPs {
		t.Fatal("expected HasNextBPs false when next_bps is absent")
	}
}

func TestLoadBlockViewRejectsOutOfRangeStakeInNextBPs(t *testing.T) {
	hash := strings.Repeat("11", 32)
	const tooBig = "340282366920938463463374607431768211456" // 2^128
	doc := `{
		"prev_block_hash": "` + hash + `",
		"next_block_inner_hash": "` + hash + `",
		"inner_lite": {
			"height": 5,
			"epoch_id": "` + hash + `",
			"next_epoch_id": "` + hash + `",
			"prev_state_root": "` + hash + `",
			"outcome_root": "` + hash + `",
			"next_bp_hash": "` + hash + `",
			"block_merkle_root": "` + hash + `"
		},
		"inner_rest_hash": "` + hash + `",
		"next_bps": [{"account_id": "v.near", "public_key": "` + strings.Repeat("22", 32) + `", "stake": "` + tooBig + `"}]
	}`
	if _, err := LoadBlockView(strings.NewReader(doc)); err == nil {
		t.Fatal("expected an error for an out-of-range stake in next_bps, not a silently accepted candidate")
	}
}

func TestLoadBlockViewParsesHeadShape(t *testing.T) {
	hash := strings.Repeat("11", 32)
	doc := `{
		"prev_block_hash": "` + hash + `",
		"next_block_inner_hash": "` + hash + `",
		"inner_lite": {
			"height": 5,
			"epoch_id": "` + hash + `",
			"next_epoch_id": "` + hash + `",
			"prev_state_root": "` + hash + `",
			"outcome_root": "` + hash + `",
			"next_bp_hash": "` + hash + `",
			"block_merkle_root": "` + hash + `"
		},
		"inner_rest_hash": "` + hash + `"
	}`
	view, err := LoadBlockView(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if view.InnerLite.Height != 5 {
		t.Fatalf("unexpected height: %d", view.InnerLite.Height)
	}
}

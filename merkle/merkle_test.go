// Copyright 2025 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package merkle

import (
	"testing"

	"github.com/certen/near-lite-client/primitives"
	"github.com/certen/near-lite-client/types"
)

func TestComputeRootFromPathEmptyPathIsIdentity(t *testing.T) {
	d := primitives.SHA256Digest{}
	leaf := d.Sum([]byte("leaf"))
	root, err := ComputeRootFromPath(d, nil, leaf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if root != leaf {
		t.Fatalf("empty path must return the leaf unchanged")
	}
}

func TestComputeRootFromPathDirectionMatters(t *testing.T) {
	d := primitives.SHA256Digest{}
	leaf := d.Sum([]byte("leaf"))
	sibling := d.Sum([]byte("sibling"))

	leftPath := types.MerklePath{{Hash: sibling, Direction: types.Left}}
	rightPath := types.MerklePath{{Hash: sibling, Direction: types.Right}}

	leftRoot, err := ComputeRootFromPath(d, leftPath, leaf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rightRoot, err := ComputeRootFromPath(d, rightPath, leaf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if leftRoot == rightRoot {
		t.Fatal("combining in different orders must produce different roots")
	}

	wantLeft := CombineHash(d, sibling, leaf)
	wantRight := CombineHash(d, leaf, sibling)
	if leftRoot != wantLeft {
		t.Errorf("Left direction: want combine(sibling, leaf)")
	}
	if rightRoot != wantRight {
		t.Errorf("Right direction: want combine(leaf, sibling)")
	}
}

func TestComputeRootFromPathMultiStep(t *testing.T) {
	d := primitives.SHA256Digest{}
	leaf := d.Sum([]byte("leaf"))
	s1 := d.Sum([]byte("s1"))
	s2 := d.Sum([]byte("s2"))

	path := types.MerklePath{
		{Hash: s1, Direction: types.Left},
		{Hash: s2, Direction: types.Right},
	}
	got, err := ComputeRootFromPath(d, path, leaf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	step1 := CombineHash(d, s1, leaf)
	want := CombineHash(d, step1, s2)
	if got != want {
		t.Fatal("multi-step fold did not match manual composition")
	}
}

func TestComputeRootFromPathInvalidDirection(t *testing.T) {
	d := primitives.SHA256Digest{}
	leaf := d.Sum([]byte("leaf"))
	path := types.MerklePath{{Hash: leaf, Direction: types.Direction(9)}}
	if _, err := ComputeRootFromPath(d, path, leaf); err == nil {
		t.Fatal("expected error on invalid direction")
	}
}

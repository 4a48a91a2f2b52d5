// Copyright 2025 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

// Package merkle folds a Merkle inclusion path into a root hash. A path
// item's Direction says which side the running hash sits on: Left means the
// sibling comes first (combine(sibling, running)), Right means the running
// hash comes first (combine(running, sibling)). Getting this backwards
// produces a root that never matches, with no other symptom.
package merkle

import (
	lcerrors "github.com/certen/near-lite-client/errors"
	"github.com/certen/near-lite-client/primitives"
	"github.com/certen/near-lite-client/types"
)

// CombineHash concatenates the two hashes and digests the result. The
// concatenation order matters and is not symmetric.
func CombineHash(d primitives.Digest, h1, h2 types.Hash) types.Hash {
	buf := make([]byte, 0, 2*primitives.HashSize)
	buf = append(buf, h1.Bytes()...)
	buf = append(buf, h2.Bytes()...)
	return d.Sum(buf)
}

// ComputeRootFromPath folds path onto itemHash, left to right, returning the
// resulting root. An empty path returns itemHash unchanged — a single leaf
// is its own root.
func ComputeRootFromPath(d primitives.Digest, path types.MerklePath, itemHash types.Hash) (types.Hash, error) {
	res := itemHash
	for i, item := range path {
		switch item.Direction {
		case types.Left:
			res = CombineHash(d, item.Hash, res)
		case types.Right:
			res = CombineHash(d, res, item.Hash)
		default:
			return types.Hash{}, lcerrors.Newf(lcerrors.CodeDecoding,
				"merkle path item %d: invalid direction %d", i, item.Direction)
		}
	}
	return res, nil
}

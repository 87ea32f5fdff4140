// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package common

import (
	"hash"
	"sync"

	"golang.org/x/crypto/sha3"
)

var keccakHasherPool = sync.Pool{New: func() any { return sha3.NewLegacyKeccak256() }}

// Keccak256 computes the Keccak256 hash of the concatenation of the given parts.
func Keccak256(parts ...[]byte) Hash {
	hasher := keccakHasherPool.Get().(hash.Hash)
	hasher.Reset()
	for _, part := range parts {
		hasher.Write(part)
	}
	var res Hash
	hasher.Sum(res[:0])
	keccakHasherPool.Put(hasher)
	return res
}

// NewKeccak256 returns a streaming Keccak256 hasher; Sum appends 32 bytes.
func NewKeccak256() hash.Hash {
	return sha3.NewLegacyKeccak256()
}

// GetHash finalises a streaming hasher into a Hash.
func GetHash(h hash.Hash) Hash {
	var res Hash
	h.Sum(res[:0])
	return res
}

// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package keys provides the fixed-width unsigned integer types used as
// Morton codes and hash keys, behind the KeyCodec abstraction. Codes and keys
// never exceed the width of their type, so choosing a wider type is the way
// to support deeper trees or more dimensions.
package keys

import "github.com/Hanan-ElNaghy/DGtal/common"

// KeyCodec implements the bit level operations on a key type K. Bit
// positions are counted from the least significant bit, starting at zero.
type KeyCodec[K comparable] interface {
	// Width is the number of bits of the key type.
	Width() int
	// Zero returns the key with no bits set.
	Zero() K
	// SetBit returns the key with the bit at the given position set.
	SetBit(key K, pos int) K
	// Bit reports whether the bit at the given position is set.
	Bit(key K, pos int) bool
	// Mask returns the key with all bits at positions >= width cleared.
	Mask(key K, width int) K
	// Format renders the key as hexadecimal number.
	Format(key K) string

	// Keys are hashed into the buckets of hash tables ...
	common.Hasher[K]
	// ... ordered for stable iteration ...
	common.Comparator[K]
	// ... and serialized, big-endian, for byte-ordered stores.
	common.Serializer[K]
}

// mix is the splitmix64 finalizer. Morton codes place the root levels of a
// cell path in their low-order bits, so the raw code is a poor bucket selector.
func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}

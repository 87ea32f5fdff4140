// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package keys

import "github.com/holiman/uint256"

// Uint256 is the KeyCodec of 256-bit keys, for configurations whose Morton
// codes exceed 64 bits, e.g. a depth of 80 in two dimensions.
type Uint256 struct{}

func (Uint256) Width() int {
	return 256
}

func (Uint256) Zero() uint256.Int {
	return uint256.Int{}
}

func (Uint256) SetBit(key uint256.Int, pos int) uint256.Int {
	key[pos/64] |= 1 << (pos % 64)
	return key
}

func (Uint256) Bit(key uint256.Int, pos int) bool {
	return (key[pos/64]>>(pos%64))&1 == 1
}

func (Uint256) Mask(key uint256.Int, width int) uint256.Int {
	if width >= 256 {
		return key
	}
	word := width / 64
	key[word] &= 1<<(width%64) - 1
	for i := word + 1; i < len(key); i++ {
		key[i] = 0
	}
	return key
}

func (Uint256) Format(key uint256.Int) string {
	return key.Hex()
}

func (Uint256) Hash(key *uint256.Int) uint64 {
	return mix(key[0] ^ mix(key[1]^mix(key[2]^mix(key[3]))))
}

func (Uint256) Compare(a, b *uint256.Int) int {
	return a.Cmp(b)
}

func (Uint256) ToBytes(key uint256.Int) []byte {
	res := key.Bytes32()
	return res[:]
}

func (Uint256) FromBytes(bytes []byte) uint256.Int {
	var res uint256.Int
	res.SetBytes32(bytes[:32])
	return res
}

func (Uint256) Size() int {
	return 32
}

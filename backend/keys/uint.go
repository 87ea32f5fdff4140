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

import (
	"encoding/binary"
	"fmt"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Uint is the KeyCodec of the built-in unsigned integer types.
type Uint[K constraints.Unsigned] struct{}

func (Uint[K]) Width() int {
	var zero K
	return int(unsafe.Sizeof(zero)) * 8
}

func (Uint[K]) Zero() K {
	return 0
}

func (Uint[K]) SetBit(key K, pos int) K {
	return key | K(1)<<pos
}

func (Uint[K]) Bit(key K, pos int) bool {
	return (key>>pos)&1 == 1
}

func (c Uint[K]) Mask(key K, width int) K {
	if width >= c.Width() {
		return key
	}
	return key & (K(1)<<width - 1)
}

func (c Uint[K]) Format(key K) string {
	return fmt.Sprintf("0x%0*x", c.Width()/4, uint64(key))
}

func (Uint[K]) Hash(key *K) uint64 {
	return mix(uint64(*key))
}

func (Uint[K]) Compare(a, b *K) int {
	switch {
	case *a < *b:
		return -1
	case *a > *b:
		return 1
	}
	return 0
}

func (c Uint[K]) ToBytes(key K) []byte {
	res := binary.BigEndian.AppendUint64(nil, uint64(key))
	return res[8-c.Size():]
}

func (c Uint[K]) FromBytes(bytes []byte) K {
	var buffer [8]byte
	copy(buffer[8-c.Size():], bytes[:c.Size()])
	return K(binary.BigEndian.Uint64(buffer[:]))
}

func (c Uint[K]) Size() int {
	return c.Width() / 8
}

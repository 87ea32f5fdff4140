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
	"encoding/binary"
	"math"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// IntegerSerializer serializes integers of any width in big-endian order
// using exactly the size of the type, e.g. 4 bytes for an int32.
type IntegerSerializer[V constraints.Integer] struct{}

func (IntegerSerializer[V]) ToBytes(value V) []byte {
	var zero V
	size := int(unsafe.Sizeof(zero))
	res := make([]byte, 8)
	binary.BigEndian.PutUint64(res, uint64(value))
	return res[8-size:]
}

func (IntegerSerializer[V]) FromBytes(bytes []byte) V {
	var zero V
	size := int(unsafe.Sizeof(zero))
	buffer := make([]byte, 8)
	copy(buffer[8-size:], bytes[:size])
	return V(binary.BigEndian.Uint64(buffer))
}

func (IntegerSerializer[V]) Size() int {
	var zero V
	return int(unsafe.Sizeof(zero))
}

// Float64Serializer serializes float64 values through their IEEE 754 bits.
type Float64Serializer struct{}

func (Float64Serializer) ToBytes(value float64) []byte {
	return binary.BigEndian.AppendUint64(nil, math.Float64bits(value))
}

func (Float64Serializer) FromBytes(bytes []byte) float64 {
	return math.Float64frombits(binary.BigEndian.Uint64(bytes))
}

func (Float64Serializer) Size() int {
	return 8
}

// Float32Serializer serializes float32 values through their IEEE 754 bits.
type Float32Serializer struct{}

func (Float32Serializer) ToBytes(value float32) []byte {
	return binary.BigEndian.AppendUint32(nil, math.Float32bits(value))
}

func (Float32Serializer) FromBytes(bytes []byte) float32 {
	return math.Float32frombits(binary.BigEndian.Uint32(bytes))
}

func (Float32Serializer) Size() int {
	return 4
}

// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package nodestore

import (
	"encoding/binary"

	"github.com/Hanan-ElNaghy/DGtal/common"
)

// NodeSerializer serializes node records as the big-endian depth followed
// by the value serialized by the Values serializer.
type NodeSerializer[V any] struct {
	Values common.Serializer[V]
}

func (s NodeSerializer[V]) ToBytes(node Node[V]) []byte {
	res := binary.BigEndian.AppendUint16(make([]byte, 0, s.Size()), node.Depth)
	return append(res, s.Values.ToBytes(node.Value)...)
}

func (s NodeSerializer[V]) FromBytes(bytes []byte) Node[V] {
	return Node[V]{
		Depth: binary.BigEndian.Uint16(bytes[:2]),
		Value: s.Values.FromBytes(bytes[2:]),
	}
}

func (s NodeSerializer[V]) Size() int {
	return 2 + s.Values.Size()
}

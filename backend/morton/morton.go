// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package morton encodes subdivision paths of an N-dimensional tree into
// Morton (Z-order) codes and back.
//
// A path lists, root level first, the child selected at each level. A child
// index has one bit per axis; the bit of axis a is set if the upper half of
// that axis was chosen. In the code, the bit of axis a at level l is stored at
// position l*dim + a, so the code of an ancestor is a prefix of the code of
// its descendants in the low-order bits.
package morton

import (
	"fmt"

	"github.com/Hanan-ElNaghy/DGtal/backend/keys"
)

// MaxDim is the maximal number of axes a child index can address.
const MaxDim = 32

// Child is the index of a child cell, one bit per axis.
type Child uint32

// Upper reports whether the child lies in the upper half of the given axis.
func (c Child) Upper(axis int) bool {
	return c&(1<<axis) != 0
}

// Path is a sequence of child indices from the root down to a cell. Its
// length is the depth of the cell.
type Path []Child

// Depth returns the number of levels of the path.
func (p Path) Depth() int {
	return len(p)
}

// Equal reports whether both paths select the same children.
func (p Path) Equal(other Path) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}
	return true
}

func (p Path) String() string {
	return fmt.Sprintf("%v", []Child(p))
}

// CodeWidth returns the number of bits of the code of a path of the given depth.
func CodeWidth(depth, dim int) int {
	return depth * dim
}

// Encode interleaves the path into a code. The code must fit into the key
// type, i.e. CodeWidth(path.Depth(), dim) <= codec.Width(); the empty path
// is encoded to zero.
func Encode[K comparable](codec keys.KeyCodec[K], path Path, dim int) K {
	code := codec.Zero()
	for level, child := range path {
		for axis := 0; axis < dim; axis++ {
			if child.Upper(axis) {
				code = codec.SetBit(code, level*dim+axis)
			}
		}
	}
	return code
}

// Decode restores the path of the given depth from a code.
func Decode[K comparable](codec keys.KeyCodec[K], code K, depth, dim int) Path {
	path := make(Path, depth)
	for level := range path {
		var child Child
		for axis := 0; axis < dim; axis++ {
			if codec.Bit(code, level*dim+axis) {
				child |= 1 << axis
			}
		}
		path[level] = child
	}
	return path
}

// Truncate returns the code of the ancestor at the given depth.
func Truncate[K comparable](codec keys.KeyCodec[K], code K, depth, dim int) K {
	return codec.Mask(code, CodeWidth(depth, dim))
}

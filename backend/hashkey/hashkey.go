// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package hashkey derives the keys of the node table from Morton codes.
//
// The code of a cell at depth d occupies the low d*dim bits of the key. Keys
// of a tree storing all cells at its maximal depth are the zero-extended
// codes. Trees storing cells at any depth additionally keep the depth in a
// reserved bit range above the deepest code, since a cell and its descendants
// along child 0 share the same code.
package hashkey

import (
	"fmt"
	"math/bits"

	"github.com/Hanan-ElNaghy/DGtal/backend/keys"
	"github.com/Hanan-ElNaghy/DGtal/backend/morton"
)

// Layout describes the bit ranges of a key.
type Layout struct {
	Dim           int  // number of axes
	MaxDepth      int  // depth of the deepest cells
	VariableDepth bool // whether the depth is stored in the key
}

// CodeWidth is the number of bits of the code of a deepest cell.
func (l Layout) CodeWidth() int {
	return morton.CodeWidth(l.MaxDepth, l.Dim)
}

// DepthWidth is the number of bits reserved for the depth, zero if the
// depth is not stored.
func (l Layout) DepthWidth() int {
	if !l.VariableDepth {
		return 0
	}
	return bits.Len(uint(l.MaxDepth))
}

// Width is the total number of bits used by keys of this layout.
func (l Layout) Width() int {
	return l.CodeWidth() + l.DepthWidth()
}

// Deriver folds (code, depth) pairs into keys of width keyBitWidth.
type Deriver[K comparable] struct {
	codec       keys.KeyCodec[K]
	layout      Layout
	keyBitWidth int
}

// NewDeriver creates a deriver for the given layout. It fails if the key
// type or the configured key width cannot hold all keys of the layout.
func NewDeriver[K comparable](codec keys.KeyCodec[K], layout Layout, keyBitWidth int) (*Deriver[K], error) {
	if layout.Dim < 1 || layout.MaxDepth < 0 {
		return nil, fmt.Errorf("invalid layout with %d axes and maximal depth %d", layout.Dim, layout.MaxDepth)
	}
	// Checked before any width is computed, MaxDepth*Dim may overflow otherwise.
	if layout.MaxDepth > codec.Width()/layout.Dim {
		return nil, fmt.Errorf("maximal depth %d in dimension %d does not fit into the %d bits of the key type", layout.MaxDepth, layout.Dim, codec.Width())
	}
	if keyBitWidth > codec.Width() {
		return nil, fmt.Errorf("key width of %d bits exceeds the %d bits of the key type", keyBitWidth, codec.Width())
	}
	if layout.Width() > keyBitWidth {
		return nil, fmt.Errorf("keys need %d bits but the key width is %d bits", layout.Width(), keyBitWidth)
	}
	return &Deriver[K]{codec: codec, layout: layout, keyBitWidth: keyBitWidth}, nil
}

// Layout returns the bit layout of the derived keys.
func (d *Deriver[K]) Layout() Layout {
	return d.layout
}

// KeyBitWidth returns the configured width of keys.
func (d *Deriver[K]) KeyBitWidth() int {
	return d.keyBitWidth
}

// Key derives the key of the cell with the given code at the given depth.
// In fixed-depth layouts the depth is ignored.
func (d *Deriver[K]) Key(code K, depth int) K {
	if !d.layout.VariableDepth {
		return code
	}
	offset := d.layout.CodeWidth()
	for i := 0; i < d.layout.DepthWidth(); i++ {
		if depth&(1<<i) != 0 {
			code = d.codec.SetBit(code, offset+i)
		}
	}
	return code
}

// Split restores the code and depth of a key produced by Key.
func (d *Deriver[K]) Split(key K) (code K, depth int) {
	if !d.layout.VariableDepth {
		return key, d.layout.MaxDepth
	}
	offset := d.layout.CodeWidth()
	for i := 0; i < d.layout.DepthWidth(); i++ {
		if d.codec.Bit(key, offset+i) {
			depth |= 1 << i
		}
	}
	return d.codec.Mask(key, offset), depth
}

// KeyOf derives the key of the cell selected by a path.
func (d *Deriver[K]) KeyOf(path morton.Path) K {
	return d.Key(morton.Encode(d.codec, path, d.layout.Dim), len(path))
}

// PathOf restores the path of the cell identified by a key.
func (d *Deriver[K]) PathOf(key K) morton.Path {
	code, depth := d.Split(key)
	return morton.Decode(d.codec, code, depth, d.layout.Dim)
}

// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package image provides HashTree, a sparse image container storing a value
// for every point of an N-dimensional integer domain. The domain is
// recursively halved along all axes, and only the cells written to are
// stored, in a hash table keyed by their Morton codes.
package image

import (
	"encoding/binary"
	"errors"
	"fmt"
	"sort"
	"unsafe"

	"github.com/Hanan-ElNaghy/DGtal/backend/geometry"
	"github.com/Hanan-ElNaghy/DGtal/backend/hashkey"
	"github.com/Hanan-ElNaghy/DGtal/backend/keys"
	"github.com/Hanan-ElNaghy/DGtal/backend/morton"
	"github.com/Hanan-ElNaghy/DGtal/backend/nodestore"
	"github.com/Hanan-ElNaghy/DGtal/backend/nodestore/linearhash"
	"github.com/Hanan-ElNaghy/DGtal/common"
	"github.com/Hanan-ElNaghy/DGtal/common/space"
)

// HashTree is a sparse image over a domain. Points resolve to the cell at
// the configured maximal depth containing them; cells never written to
// resolve to the default value.
//
// The type V is the value type, the type K the type of the hash keys. Use a
// wider key type for deeper trees or more dimensions.
//
// A HashTree is not safe for concurrent use. Concurrent reads are fine as
// long as no write is in progress.
type HashTree[V any, K comparable] struct {
	config       Config
	domain       space.Domain
	defaultValue V
	codec        keys.KeyCodec[K]
	keys         *hashkey.Deriver[K]
	store        nodestore.NodeStore[K, nodestore.Node[V]]
}

// Cell is a populated cell of a HashTree as reported by VisitCells.
type Cell[V any] struct {
	Bounds space.Domain
	Depth  int
	Value  V
}

// New creates an empty HashTree backed by the default in-memory store. It
// fails with an error wrapping ErrConfiguration if the configuration is
// invalid for the domain or the key type.
func New[V any, K comparable](codec keys.KeyCodec[K], config Config, defaultValue V, domain space.Domain) (*HashTree[V, K], error) {
	return NewWithStore(codec, config, defaultValue, domain, linearhash.NewStore[K, nodestore.Node[V]](codec, codec))
}

// NewWithStore is like New but uses the given store. On success the HashTree
// owns the store and closes it on Close; the store should be empty. On
// failure the store is left untouched.
func NewWithStore[V any, K comparable](
	codec keys.KeyCodec[K],
	config Config,
	defaultValue V,
	domain space.Domain,
	store nodestore.NodeStore[K, nodestore.Node[V]],
) (*HashTree[V, K], error) {
	if err := Validate(config, codec, domain); err != nil {
		return nil, err
	}
	deriver, err := hashkey.NewDeriver(codec, config.Layout(domain.Dim()), config.KeyBitWidth)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfiguration, err)
	}
	return &HashTree[V, K]{
		config:       config,
		domain:       domain,
		defaultValue: defaultValue,
		codec:        codec,
		keys:         deriver,
		store:        store,
	}, nil
}

func (t *HashTree[V, K]) Config() Config {
	return t.config
}

func (t *HashTree[V, K]) Domain() space.Domain {
	return t.domain
}

func (t *HashTree[V, K]) DefaultValue() V {
	return t.defaultValue
}

// Contains reports whether the point is inside the domain.
func (t *HashTree[V, K]) Contains(p space.Point) bool {
	return t.domain.Contains(p)
}

// Size returns the number of populated cells.
func (t *HashTree[V, K]) Size() int {
	return t.store.Size()
}

func (t *HashTree[V, K]) checkPoint(p space.Point) error {
	if !t.domain.Contains(p) {
		return fmt.Errorf("%w: %v not in %v", ErrDomain, p, t.domain)
	}
	return nil
}

// SetValue stores the value for the cell of maximal depth containing the
// point, replacing any previous value of that cell.
func (t *HashTree[V, K]) SetValue(p space.Point, value V) error {
	return t.SetValueAtDepth(p, t.config.MaxDepth, value)
}

// SetValueAtDepth stores the value for the cell of the given depth containing
// the point. Depths other than the maximal depth require VariableDepth.
func (t *HashTree[V, K]) SetValueAtDepth(p space.Point, depth int, value V) error {
	if err := t.checkPoint(p); err != nil {
		return err
	}
	if err := t.checkDepth(depth); err != nil {
		return err
	}
	key := t.keys.KeyOf(geometry.CellPath(t.domain, p, depth))
	return t.store.Set(key, nodestore.Node[V]{Value: value, Depth: uint16(depth)})
}

func (t *HashTree[V, K]) checkDepth(depth int) error {
	if depth == t.config.MaxDepth {
		return nil
	}
	if !t.config.VariableDepth {
		return fmt.Errorf("%w: depth %d requested, only %d is supported", ErrDepth, depth, t.config.MaxDepth)
	}
	if depth < 0 || depth > t.config.MaxDepth {
		return fmt.Errorf("%w: depth %d is not in [0, %d]", ErrDepth, depth, t.config.MaxDepth)
	}
	return nil
}

// GetValue returns the value of the cell containing the point, or the
// default value if the cell was never written. With VariableDepth, the
// deepest populated cell containing the point is used.
func (t *HashTree[V, K]) GetValue(p space.Point) (V, error) {
	_, node, found, err := t.find(p)
	if err != nil || !found {
		return t.defaultValue, err
	}
	return node.Value, nil
}

// At is like GetValue but panics with an error wrapping ErrDomain for points
// outside the domain.
func (t *HashTree[V, K]) At(p space.Point) V {
	res, err := t.GetValue(p)
	if err != nil {
		panic(err)
	}
	return res
}

// Remove deletes the cell GetValue would resolve the point to, so the point
// falls back to a coarser cell or the default value. It reports whether a
// cell was removed.
func (t *HashTree[V, K]) Remove(p space.Point) (bool, error) {
	key, _, found, err := t.find(p)
	if err != nil || !found {
		return false, err
	}
	return t.store.Remove(key)
}

// find locates the deepest populated cell containing the point.
func (t *HashTree[V, K]) find(p space.Point) (key K, node nodestore.Node[V], found bool, err error) {
	if err = t.checkPoint(p); err != nil {
		return
	}
	dim := t.domain.Dim()
	code := morton.Encode(t.codec, geometry.CellPath(t.domain, p, t.config.MaxDepth), dim)
	if !t.config.VariableDepth {
		key = t.keys.Key(code, t.config.MaxDepth)
		node, found, err = t.store.Get(key)
		return
	}
	for depth := t.config.MaxDepth; depth >= 0; depth-- {
		key = t.keys.Key(morton.Truncate(t.codec, code, depth, dim), depth)
		if node, found, err = t.store.Get(key); err != nil || found {
			return
		}
	}
	return
}

// VisitCells calls the visitor for every populated cell, in the iteration
// order of the store, until the visitor returns false.
func (t *HashTree[V, K]) VisitCells(visit func(Cell[V]) bool) error {
	var cellErr error
	err := t.store.ForEach(func(key K, node nodestore.Node[V]) bool {
		path := t.keys.PathOf(key)
		bounds, err := geometry.Cell(t.domain, path)
		if err != nil {
			cellErr = fmt.Errorf("invalid cell %s stored: %w", t.codec.Format(key), err)
			return false
		}
		return visit(Cell[V]{Bounds: bounds, Depth: len(path), Value: node.Value})
	})
	return errors.Join(err, cellErr)
}

// GetStateHash computes a keccak256 hash of the populated cells, visited in
// key order, with the values serialized by the given serializer. Trees with
// the same configuration and content have the same hash, independently of
// their stores. The hash of an empty tree is zero.
func (t *HashTree[V, K]) GetStateHash(serializer common.Serializer[V]) (common.Hash, error) {
	entries := make([]common.MapEntry[K, nodestore.Node[V]], 0, t.store.Size())
	if err := t.store.ForEach(func(key K, node nodestore.Node[V]) bool {
		entries = append(entries, common.MapEntry[K, nodestore.Node[V]]{Key: key, Val: node})
		return true
	}); err != nil {
		return common.Hash{}, err
	}
	if len(entries) == 0 {
		return common.Hash{}, nil
	}
	sort.Slice(entries, func(i, j int) bool {
		return t.codec.Compare(&entries[i].Key, &entries[j].Key) < 0
	})
	hasher := common.NewKeccak256()
	for _, entry := range entries {
		hasher.Write(t.codec.ToBytes(entry.Key))
		hasher.Write(binary.BigEndian.AppendUint16(nil, entry.Val.Depth))
		hasher.Write(serializer.ToBytes(entry.Val.Value))
	}
	return common.GetHash(hasher), nil
}

// Describe summarizes the configuration and the number of populated cells.
func (t *HashTree[V, K]) Describe() string {
	mode := "fixed"
	if t.config.VariableDepth {
		mode = "variable"
	}
	return fmt.Sprintf(
		"[HashTree domain=%v depth=%d (%s) keyBits=%d/%d usedBits=%d default=%v cells=%d]",
		t.domain, t.config.MaxDepth, mode, t.config.KeyBitWidth, t.codec.Width(),
		t.keys.Layout().Width(), t.defaultValue, t.store.Size(),
	)
}

func (t *HashTree[V, K]) String() string {
	return t.Describe()
}

func (t *HashTree[V, K]) GetMemoryFootprint() *common.MemoryFootprint {
	mf := common.NewMemoryFootprint(unsafe.Sizeof(*t))
	mf.AddChild("store", t.store.GetMemoryFootprint())
	return mf
}

// Close releases the store of the tree. The tree must not be used afterwards.
func (t *HashTree[V, K]) Close() error {
	return t.store.Close()
}

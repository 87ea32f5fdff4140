// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package ldb provides a node store kept in a LevelDB instance on top of an
// in-memory storage. Nothing is written to disk.
package ldb

import (
	"bytes"
	"errors"
	"unsafe"

	"github.com/Hanan-ElNaghy/DGtal/backend/nodestore"
	"github.com/Hanan-ElNaghy/DGtal/common"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/opt"
	"github.com/syndtr/goleveldb/leveldb/storage"
	"github.com/syndtr/goleveldb/leveldb/util"
)

// Store is a nodestore.NodeStore implementation keeping serialized records
// in LevelDB. Keys are serialized big-endian, so records are visited in
// ascending key order.
type Store[K comparable, V any] struct {
	db              *leveldb.DB
	keySerializer   common.Serializer[K]
	valueSerializer common.Serializer[V]
	size            int
}

// NewStore opens a fresh database over a new in-memory storage.
func NewStore[K comparable, V any](keySerializer common.Serializer[K], valueSerializer common.Serializer[V]) (*Store[K, V], error) {
	db, err := leveldb.Open(storage.NewMemStorage(), &opt.Options{
		Compression: opt.NoCompression,
	})
	if err != nil {
		return nil, err
	}
	return &Store[K, V]{
		db:              db,
		keySerializer:   keySerializer,
		valueSerializer: valueSerializer,
	}, nil
}

func (m *Store[K, V]) Get(key K) (v V, exists bool, err error) {
	val, err := m.db.Get(m.keySerializer.ToBytes(key), nil)
	if err != nil {
		if errors.Is(err, leveldb.ErrNotFound) {
			return v, false, nil
		}
		return v, false, err
	}
	return m.valueSerializer.FromBytes(val), true, nil
}

func (m *Store[K, V]) Set(key K, value V) error {
	dbKey := m.keySerializer.ToBytes(key)
	exists, err := m.db.Has(dbKey, nil)
	if err != nil {
		return err
	}
	if err := m.db.Put(dbKey, m.valueSerializer.ToBytes(value), nil); err != nil {
		return err
	}
	if !exists {
		m.size++
	}
	return nil
}

func (m *Store[K, V]) Remove(key K) (bool, error) {
	dbKey := m.keySerializer.ToBytes(key)
	exists, err := m.db.Has(dbKey, nil)
	if err != nil || !exists {
		return false, err
	}
	if err := m.db.Delete(dbKey, nil); err != nil {
		return false, err
	}
	m.size--
	return true, nil
}

func (m *Store[K, V]) ForEach(visit func(K, V) bool) error {
	iter := m.db.NewIterator(nil, nil)
	defer iter.Release()
	for iter.Next() {
		if !visit(m.keySerializer.FromBytes(iter.Key()), m.valueSerializer.FromBytes(iter.Value())) {
			break
		}
	}
	return iter.Error()
}

func (m *Store[K, V]) Size() int {
	return m.size
}

// GetMemoryFootprint approximates the memory usage by the raw size of the
// records plus the size of the flushed tables reported by LevelDB.
func (m *Store[K, V]) GetMemoryFootprint() *common.MemoryFootprint {
	mf := common.NewMemoryFootprint(unsafe.Sizeof(*m))
	recordSize := m.keySerializer.Size() + m.valueSerializer.Size()
	mf.AddChild("records", common.NewMemoryFootprint(uintptr(m.size*recordSize)))
	limit := bytes.Repeat([]byte{0xff}, m.keySerializer.Size()+1)
	if sizes, err := m.db.SizeOf([]util.Range{{Start: nil, Limit: limit}}); err == nil {
		mf.AddChild("tables", common.NewMemoryFootprint(uintptr(sizes.Sum())))
	}
	return mf
}

func (m *Store[K, V]) Close() error {
	return m.db.Close()
}

var _ nodestore.NodeStore[uint32, int] = (*Store[uint32, int])(nil)

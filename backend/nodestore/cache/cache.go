// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package cache provides a node store decorator keeping recently used
// records in an LRU cache.
package cache

import (
	"unsafe"

	"github.com/Hanan-ElNaghy/DGtal/backend/nodestore"
	"github.com/Hanan-ElNaghy/DGtal/common"
)

// Store wraps a node store and caches the records read or written through it.
// Absent keys are not cached.
type Store[K comparable, V any] struct {
	store nodestore.NodeStore[K, V]
	cache *common.LruCache[K, V]
}

// NewStore creates a new store wrapping the input one, with a cache of the
// given capacity.
func NewStore[K comparable, V any](store nodestore.NodeStore[K, V], cacheCapacity int) *Store[K, V] {
	return &Store[K, V]{store, common.NewLruCache[K, V](cacheCapacity)}
}

func (m *Store[K, V]) Get(key K) (V, bool, error) {
	if val, exists := m.cache.Get(key); exists {
		return val, true, nil
	}
	val, exists, err := m.store.Get(key)
	if err == nil && exists {
		m.cache.Set(key, val)
	}
	return val, exists, err
}

func (m *Store[K, V]) Set(key K, value V) error {
	// write through cache
	if err := m.store.Set(key, value); err != nil {
		m.cache.Remove(key)
		return err
	}
	m.cache.Set(key, value)
	return nil
}

func (m *Store[K, V]) Remove(key K) (bool, error) {
	m.cache.Remove(key)
	return m.store.Remove(key)
}

func (m *Store[K, V]) ForEach(visit func(K, V) bool) error {
	return m.store.ForEach(visit)
}

func (m *Store[K, V]) Size() int {
	return m.store.Size()
}

func (m *Store[K, V]) GetMemoryFootprint() *common.MemoryFootprint {
	mf := common.NewMemoryFootprint(unsafe.Sizeof(*m))
	mf.AddChild("cache", m.cache.GetMemoryFootprint())
	mf.AddChild("store", m.store.GetMemoryFootprint())
	return mf
}

func (m *Store[K, V]) Close() error {
	m.cache.Clear()
	return m.store.Close()
}

var _ nodestore.NodeStore[uint32, int] = (*Store[uint32, int])(nil)

// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package linearhash provides the default node store, a linear hash table
// growing one bucket at a time.
package linearhash

import (
	"unsafe"

	"github.com/Hanan-ElNaghy/DGtal/backend/nodestore"
	"github.com/Hanan-ElNaghy/DGtal/common"
)

const (
	// DefaultBuckets is the initial number of buckets of NewStore.
	DefaultBuckets = 1 << 4
	pageSize       = 1 << 12 // about 4kB per block
)

// Store is an in-memory nodestore.NodeStore implementation backed by
// common.LinearHashMap. Records are visited in bucket order.
type Store[K comparable, V any] struct {
	table *common.LinearHashMap[K, V]
}

// NewStore creates a store with DefaultBuckets initial buckets.
func NewStore[K comparable, V any](hasher common.Hasher[K], comparator common.Comparator[K]) *Store[K, V] {
	return NewParamsStore[K, V](DefaultBuckets, hasher, comparator)
}

// NewParamsStore creates a store with the given number of initial buckets.
func NewParamsStore[K comparable, V any](numBuckets int, hasher common.Hasher[K], comparator common.Comparator[K]) *Store[K, V] {
	var k K
	var v V
	blockItems := pageSize / int(unsafe.Sizeof(k)+unsafe.Sizeof(v)+1)
	if blockItems < 2 {
		blockItems = 2
	}
	return &Store[K, V]{
		table: common.NewLinearHashMap[K, V](blockItems, numBuckets, hasher, comparator),
	}
}

func (m *Store[K, V]) Get(key K) (V, bool, error) {
	val, exists := m.table.Get(key)
	return val, exists, nil
}

func (m *Store[K, V]) Set(key K, value V) error {
	m.table.Put(key, value)
	return nil
}

func (m *Store[K, V]) Remove(key K) (bool, error) {
	return m.table.Remove(key), nil
}

func (m *Store[K, V]) ForEach(visit func(K, V) bool) error {
	m.table.ForEach(visit)
	return nil
}

func (m *Store[K, V]) Size() int {
	return m.table.Size()
}

// Buckets returns the current number of buckets of the table.
func (m *Store[K, V]) Buckets() int {
	return m.table.GetBuckets()
}

// BucketSizes returns the number of records of each bucket.
func (m *Store[K, V]) BucketSizes() []int {
	return m.table.GetBucketSizes()
}

func (m *Store[K, V]) GetMemoryFootprint() *common.MemoryFootprint {
	mf := common.NewMemoryFootprint(unsafe.Sizeof(*m))
	mf.AddChild("linearHash", m.table.GetMemoryFootprint())
	return mf
}

func (m *Store[K, V]) Close() error {
	m.table.Clear()
	return nil
}

var _ nodestore.NodeStore[uint32, int] = (*Store[uint32, int])(nil)

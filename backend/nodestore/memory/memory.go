// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package memory

import (
	"sort"
	"unsafe"

	"github.com/Hanan-ElNaghy/DGtal/backend/nodestore"
	"github.com/Hanan-ElNaghy/DGtal/common"
	"golang.org/x/exp/maps"
)

// Store is an in-memory nodestore.NodeStore implementation based on the
// built-in map. Records are visited in ascending key order.
type Store[K comparable, V any] struct {
	data       map[K]V
	comparator common.Comparator[K]
}

// NewStore constructs a new empty store ordering its keys by the comparator.
func NewStore[K comparable, V any](comparator common.Comparator[K]) *Store[K, V] {
	return &Store[K, V]{
		data:       map[K]V{},
		comparator: comparator,
	}
}

func (m *Store[K, V]) Get(key K) (V, bool, error) {
	val, exists := m.data[key]
	return val, exists, nil
}

func (m *Store[K, V]) Set(key K, value V) error {
	m.data[key] = value
	return nil
}

func (m *Store[K, V]) Remove(key K) (bool, error) {
	_, exists := m.data[key]
	delete(m.data, key)
	return exists, nil
}

func (m *Store[K, V]) ForEach(visit func(K, V) bool) error {
	keys := maps.Keys(m.data)
	sort.Slice(keys, func(i, j int) bool {
		return m.comparator.Compare(&keys[i], &keys[j]) < 0
	})
	for _, key := range keys {
		if !visit(key, m.data[key]) {
			return nil
		}
	}
	return nil
}

func (m *Store[K, V]) Size() int {
	return len(m.data)
}

func (m *Store[K, V]) GetMemoryFootprint() *common.MemoryFootprint {
	var k K
	var v V
	entrySize := unsafe.Sizeof(k) + unsafe.Sizeof(v)
	return common.NewMemoryFootprint(unsafe.Sizeof(*m) + uintptr(len(m.data))*entrySize)
}

// Close drops all records, there are no other resources to release.
func (m *Store[K, V]) Close() error {
	m.data = map[K]V{}
	return nil
}

var _ nodestore.NodeStore[uint32, int] = (*Store[uint32, int])(nil)

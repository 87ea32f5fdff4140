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
	"sort"
	"unsafe"
)

// SortedMap is a small map keeping its entries in a slice ordered by key.
// Lookups use binary search, insertions shift the tail of the slice.
type SortedMap[K comparable, V any] struct {
	list       []MapEntry[K, V]
	comparator Comparator[K]
}

// NewSortedMap creates a new instance with the given initial capacity.
func NewSortedMap[K comparable, V any](capacity int, comparator Comparator[K]) *SortedMap[K, V] {
	return &SortedMap[K, V]{
		list:       make([]MapEntry[K, V], 0, capacity),
		comparator: comparator,
	}
}

// ForEach calls the callback for each entry in key order until it returns false.
func (m *SortedMap[K, V]) ForEach(callback func(K, V) bool) {
	for _, entry := range m.list {
		if !callback(entry.Key, entry.Val) {
			return
		}
	}
}

// Get returns a value from the map or false.
func (m *SortedMap[K, V]) Get(key K) (val V, exists bool) {
	if index, exists := m.find(key); exists {
		return m.list[index].Val, true
	}
	return
}

// Put associates a key to a value, replacing the value of an existing key.
func (m *SortedMap[K, V]) Put(key K, val V) {
	index, exists := m.find(key)
	if exists {
		m.list[index].Val = val
		return
	}
	m.list = append(m.list, MapEntry[K, V]{})
	copy(m.list[index+1:], m.list[index:])
	m.list[index] = MapEntry[K, V]{Key: key, Val: val}
}

// Remove deletes the key from the map and returns whether an element was removed.
func (m *SortedMap[K, V]) Remove(key K) bool {
	index, exists := m.find(key)
	if !exists {
		return false
	}
	copy(m.list[index:], m.list[index+1:])
	m.list[len(m.list)-1] = MapEntry[K, V]{}
	m.list = m.list[:len(m.list)-1]
	return true
}

// BulkInsert appends entries which must be sorted and greater than any
// key already present.
func (m *SortedMap[K, V]) BulkInsert(data []MapEntry[K, V]) {
	m.list = append(m.list, data...)
}

// GetAll returns the entries of this map in key order. The slice is shared
// with the map and must not be modified.
func (m *SortedMap[K, V]) GetAll() []MapEntry[K, V] {
	return m.list
}

func (m *SortedMap[K, V]) Size() int {
	return len(m.list)
}

func (m *SortedMap[K, V]) Clear() {
	m.list = m.list[:0]
}

// find locates a key using binary search. If the key is missing, the returned
// index is the position the key would have to be inserted at.
func (m *SortedMap[K, V]) find(key K) (int, bool) {
	index := sort.Search(len(m.list), func(i int) bool {
		return m.comparator.Compare(&m.list[i].Key, &key) >= 0
	})
	return index, index < len(m.list) && m.comparator.Compare(&m.list[index].Key, &key) == 0
}

func (m *SortedMap[K, V]) GetMemoryFootprint() *MemoryFootprint {
	selfSize := unsafe.Sizeof(*m)
	entrySize := unsafe.Sizeof(MapEntry[K, V]{})
	return NewMemoryFootprint(selfSize + uintptr(cap(m.list))*entrySize)
}

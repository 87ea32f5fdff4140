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

import "unsafe"

// BlockList is a bucket of a hash map holding its entries in a list of
// blocks. Each block is a SortedMap of a fixed maximal capacity; a new block
// is appended once the tail block is full.
type BlockList[K comparable, V any] struct {
	list          []*SortedMap[K, V]
	comparator    Comparator[K]
	blockCapacity int
	size          int
}

// NewBlockList creates an empty list whose blocks hold at most blockCapacity entries.
func NewBlockList[K comparable, V any](blockCapacity int, comparator Comparator[K]) *BlockList[K, V] {
	return &BlockList[K, V]{
		blockCapacity: blockCapacity,
		comparator:    comparator,
	}
}

// ForEach calls the callback for each entry until it returns false.
// It reports whether the iteration ran to completion.
func (m *BlockList[K, V]) ForEach(callback func(K, V) bool) bool {
	complete := true
	for _, block := range m.list {
		block.ForEach(func(k K, v V) bool {
			complete = callback(k, v)
			return complete
		})
		if !complete {
			return false
		}
	}
	return true
}

// BulkInsert appends the sorted input entries, filling up the tail block first.
func (m *BlockList[K, V]) BulkInsert(data []MapEntry[K, V]) {
	for len(data) > 0 {
		if len(m.list) == 0 || m.list[len(m.list)-1].Size() == m.blockCapacity {
			m.list = append(m.list, NewSortedMap[K, V](m.blockCapacity, m.comparator))
		}
		tail := m.list[len(m.list)-1]
		n := m.blockCapacity - tail.Size()
		if n > len(data) {
			n = len(data)
		}
		tail.BulkInsert(data[:n])
		m.size += n
		data = data[n:]
	}
}

// GetAll collects the entries of all blocks.
func (m *BlockList[K, V]) GetAll() []MapEntry[K, V] {
	data := make([]MapEntry[K, V], 0, m.size)
	for _, block := range m.list {
		data = append(data, block.GetAll()...)
	}
	return data
}

// Get returns a value from the list or false.
func (m *BlockList[K, V]) Get(key K) (val V, exists bool) {
	for _, block := range m.list {
		if val, exists = block.Get(key); exists {
			return
		}
	}
	return
}

// Put associates a key to a value. If the key is already present, the value
// is updated in its block. Otherwise the key is added to the tail block.
func (m *BlockList[K, V]) Put(key K, val V) {
	for _, block := range m.list {
		if _, exists := block.Get(key); exists {
			block.Put(key, val)
			return
		}
	}
	if len(m.list) == 0 || m.list[len(m.list)-1].Size() == m.blockCapacity {
		m.list = append(m.list, NewSortedMap[K, V](m.blockCapacity, m.comparator))
	}
	m.list[len(m.list)-1].Put(key, val)
	m.size++
}

// Remove deletes the key from the list. The gap is filled with an entry
// taken from the tail block so that only the tail may be partially filled.
func (m *BlockList[K, V]) Remove(key K) bool {
	for _, block := range m.list {
		if block.Remove(key) {
			m.size--
			m.fillFromTail(block)
			return true
		}
	}
	return false
}

func (m *BlockList[K, V]) fillFromTail(block *SortedMap[K, V]) {
	tail := m.list[len(m.list)-1]
	if tail != block && tail.Size() > 0 {
		entries := tail.GetAll()
		last := entries[len(entries)-1]
		block.Put(last.Key, last.Val)
		tail.Remove(last.Key)
	}
	if tail.Size() == 0 {
		m.list[len(m.list)-1] = nil
		m.list = m.list[:len(m.list)-1]
	}
}

func (m *BlockList[K, V]) Size() int {
	return m.size
}

func (m *BlockList[K, V]) Clear() {
	for i := range m.list {
		m.list[i] = nil
	}
	m.list = m.list[:0]
	m.size = 0
}

func (m *BlockList[K, V]) GetMemoryFootprint() *MemoryFootprint {
	var blocks uintptr
	for _, block := range m.list {
		blocks += unsafe.Sizeof(block) + block.GetMemoryFootprint().Value()
	}
	footprint := NewMemoryFootprint(unsafe.Sizeof(*m))
	footprint.AddChild("blocks", NewMemoryFootprint(blocks))
	return footprint
}

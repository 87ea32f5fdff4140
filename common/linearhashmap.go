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
	"math"
	"sort"
	"unsafe"
)

// LinearHashMap is a structure mapping a list of key/value pairs.
// It stores keys in buckets based on the hash computed out of the keys.
// The number of buckets increases on insert when the number of stored keys
// overflows the capacity of this map. In contrast to simple hash maps, this
// structure grows by splitting one bucket into two when the capacity is
// exceeded, so the map does never have to be fully copied to a bigger structure.
// It is inspired by: https://hackthology.com/linear-hashing.html#fn-5
//
// Iteration visits buckets in order and the blocks of each bucket in order,
// so the order is stable for a given content and insertion history.
type LinearHashMap[K comparable, V any] struct {
	list []*BlockList[K, V]

	records       uint // current total number of records in the whole table
	bits          uint // number of bits in current hash mask
	blockCapacity int  // maximal number of elements per block

	hasher     Hasher[K]
	comparator Comparator[K]
}

// NewLinearHashMap creates a new instance with the initial number of buckets
// and constant block size. The number of buckets grows with the table.
func NewLinearHashMap[K comparable, V any](blockItems, numBuckets int, hasher Hasher[K], comparator Comparator[K]) *LinearHashMap[K, V] {
	if numBuckets < 1 {
		numBuckets = 1
	}
	if blockItems < 1 {
		blockItems = 1
	}
	list := make([]*BlockList[K, V], numBuckets)
	for i := range list {
		list[i] = NewBlockList[K, V](blockItems, comparator)
	}
	return &LinearHashMap[K, V]{
		list:          list,
		bits:          IntLog2(numBuckets),
		blockCapacity: blockItems,
		hasher:        hasher,
		comparator:    comparator,
	}
}

// Put assigns the value to the input key.
func (h *LinearHashMap[K, V]) Put(key K, value V) {
	bucket := h.list[h.bucket(&key, uint(len(h.list)))]
	before := bucket.Size()
	bucket.Put(key, value)
	if before < bucket.Size() {
		h.records++
		h.checkSplit()
	}
}

// Get returns value associated to the input key
func (h *LinearHashMap[K, V]) Get(key K) (V, bool) {
	return h.list[h.bucket(&key, uint(len(h.list)))].Get(key)
}

// ForEach iterates all stored key/value pairs until the callback returns false.
func (h *LinearHashMap[K, V]) ForEach(callback func(K, V) bool) {
	for _, bucket := range h.list {
		if !bucket.ForEach(callback) {
			return
		}
	}
}

// Remove deletes the key from the map and returns whether an element was removed.
// Buckets are never merged again.
func (h *LinearHashMap[K, V]) Remove(key K) bool {
	if h.list[h.bucket(&key, uint(len(h.list)))].Remove(key) {
		h.records--
		return true
	}
	return false
}

func (h *LinearHashMap[K, V]) Size() int {
	return int(h.records)
}

func (h *LinearHashMap[K, V]) Clear() {
	h.records = 0
	for _, bucket := range h.list {
		bucket.Clear()
	}
}

// GetBuckets returns the number of buckets
func (h *LinearHashMap[K, V]) GetBuckets() int {
	return len(h.list)
}

// GetBucketSizes returns the number of entries of each bucket.
func (h *LinearHashMap[K, V]) GetBucketSizes() []int {
	res := make([]int, len(h.list))
	for i, bucket := range h.list {
		res[i] = bucket.Size()
	}
	return res
}

func (h *LinearHashMap[K, V]) bucket(key *K, numBuckets uint) uint {
	// get last bits of hash
	m := uint(h.hasher.Hash(key) & ((1 << h.bits) - 1))
	if m < numBuckets {
		return m
	}
	// unset the top bit when buckets overflow, i.e. do modulo
	return m ^ (1 << (h.bits - 1))
}

func (h *LinearHashMap[K, V]) checkSplit() {
	if h.records > uint(len(h.list))*uint(h.blockCapacity) {
		h.split()
	}
}

// split appends a new bucket and moves into it those entries of its image
// bucket that the extended bit mask addresses to the new bucket.
func (h *LinearHashMap[K, V]) split() {
	numBuckets := uint(len(h.list))
	if numBuckets+1 > 1<<h.bits {
		h.bits++
	}
	bucketId := numBuckets - 1<<(h.bits-1)

	entries := h.list[bucketId].GetAll()
	entriesA := make([]MapEntry[K, V], 0, len(entries))
	entriesB := make([]MapEntry[K, V], 0, len(entries))
	for _, entry := range entries {
		if h.bucket(&entry.Key, numBuckets+1) == bucketId {
			entriesA = append(entriesA, entry)
		} else {
			entriesB = append(entriesB, entry)
		}
	}
	sort.Slice(entriesA, func(i, j int) bool { return h.comparator.Compare(&entriesA[i].Key, &entriesA[j].Key) < 0 })
	sort.Slice(entriesB, func(i, j int) bool { return h.comparator.Compare(&entriesB[i].Key, &entriesB[j].Key) < 0 })

	bucketA := NewBlockList[K, V](h.blockCapacity, h.comparator)
	bucketA.BulkInsert(entriesA)
	bucketB := NewBlockList[K, V](h.blockCapacity, h.comparator)
	bucketB.BulkInsert(entriesB)

	h.list[bucketId] = bucketA
	h.list = append(h.list, bucketB)
}

func (h *LinearHashMap[K, V]) GetMemoryFootprint() *MemoryFootprint {
	var buckets uintptr
	for _, bucket := range h.list {
		buckets += unsafe.Sizeof(bucket) + bucket.GetMemoryFootprint().Total()
	}
	footprint := NewMemoryFootprint(unsafe.Sizeof(*h))
	footprint.AddChild("buckets", NewMemoryFootprint(buckets))
	return footprint
}

// IntLog2 returns the number of bits needed to address x distinct values.
func IntLog2(x int) uint {
	return uint(math.Ceil(math.Log2(float64(x))))
}

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

import "fmt"

// MemoryFootprintProvider is any type that can report its memory usage.
type MemoryFootprintProvider interface {
	GetMemoryFootprint() *MemoryFootprint
}

// Hasher computes a 64-bit hash of a key. Hash tables use the low-order
// bits of the result to select buckets.
type Hasher[K any] interface {
	Hash(*K) uint64
}

// Comparator defines a total order on keys. Compare returns a negative
// number if a < b, zero if a == b, and a positive number otherwise.
type Comparator[K any] interface {
	Compare(a, b *K) int
}

// Serializer converts values of a fixed-size type to and from bytes.
type Serializer[T any] interface {
	// ToBytes serializes the value. The result has exactly Size() bytes.
	ToBytes(T) []byte
	// FromBytes deserializes the value from a slice of at least Size() bytes.
	FromBytes([]byte) T
	// Size is the size of the serialized value in bytes.
	Size() int
}

// Map associates keys to values
type Map[K comparable, V any] interface {

	// Get returns a value associated with the key
	Get(key K) (val V, exists bool)

	// Put associates a new value to the key.
	Put(key K, val V)

	// Remove deletes a key from the map, returning whether it was present
	Remove(key K) (exists bool)

	// ForEach iterates all stored key/value pairs until the callback
	// returns false.
	ForEach(callback func(K, V) bool)

	// Size returns number of elements
	Size() int

	// Clear removes all data from the map
	Clear()
}

// MapEntry wraps a map key-value par
type MapEntry[K comparable, V any] struct {
	Key K
	Val V
}

func (e MapEntry[K, V]) String() string {
	return fmt.Sprintf("Entry: %v -> %v", e.Key, e.Val)
}

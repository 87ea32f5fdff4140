// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package nodestore defines the sparse table holding the populated cells of
// an image container, keyed by the hash keys of the cells.
package nodestore

import (
	"io"

	"github.com/Hanan-ElNaghy/DGtal/common"
)

//go:generate mockgen -source nodestore.go -destination nodestore_mocks.go -package nodestore

// NodeStore maps hash keys to node records. Absent keys are a regular state,
// resolving them to a default value is up to the user of the store.
//
// The type K is the key type, the type V the record type.
type NodeStore[K comparable, V any] interface {

	// Get returns the record stored under the key, or false if there is none.
	Get(key K) (V, bool, error)

	// Set inserts a record or overwrites the existing one.
	Set(key K, value V) error

	// Remove deletes the record of the key and reports whether there was one.
	Remove(key K) (bool, error)

	// ForEach visits all records until the visitor returns false. The order
	// is unspecified but stable as long as the store is not modified.
	ForEach(visit func(K, V) bool) error

	// Size returns the number of records.
	Size() int

	common.MemoryFootprintProvider

	// Close releases the resources of the store.
	io.Closer
}

// Node is the record of a populated cell.
type Node[V any] struct {
	Value V
	Depth uint16
}

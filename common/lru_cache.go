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
	"fmt"
	"unsafe"
)

// LruCache is a fixed-capacity key/value cache evicting the least recently
// used entry when a new key is added to a full cache.
type LruCache[K comparable, V any] struct {
	cache    map[K]*entry[K, V]
	capacity int
	head     *entry[K, V] // most recently used
	tail     *entry[K, V] // least recently used
}

// NewLruCache returns a new instance holding up to capacity entries.
func NewLruCache[K comparable, V any](capacity int) *LruCache[K, V] {
	if capacity < 1 {
		capacity = 1
	}
	return &LruCache[K, V]{
		cache:    make(map[K]*entry[K, V], capacity),
		capacity: capacity,
	}
}

// Get returns a value from the cache or false. A hit marks the entry as used.
func (c *LruCache[K, V]) Get(key K) (V, bool) {
	item, exists := c.cache[key]
	if !exists {
		var zero V
		return zero, false
	}
	c.touch(item)
	return item.val, true
}

// Set associates a value to the key and marks the key as used. Adding a new
// key to a full cache evicts the least recently used entry, which is returned.
func (c *LruCache[K, V]) Set(key K, val V) (evictedKey K, evictedValue V, evicted bool) {
	if item, exists := c.cache[key]; exists {
		item.val = val
		c.touch(item)
		return
	}

	var item *entry[K, V]
	if len(c.cache) >= c.capacity {
		item = c.dropLast() // reuse evicted object for the new entry
		evictedKey, evictedValue, evicted = item.key, item.val, true
	} else {
		item = new(entry[K, V])
	}
	item.key, item.val = key, val
	c.cache[key] = item

	item.prev = nil
	item.next = c.head
	if c.head != nil {
		c.head.prev = item
	}
	c.head = item
	if c.tail == nil {
		c.tail = item
	}
	return
}

// Remove deletes the key from the cache and returns the removed value.
func (c *LruCache[K, V]) Remove(key K) (original V, exists bool) {
	item, exists := c.cache[key]
	if !exists {
		return
	}
	delete(c.cache, key)
	c.unlink(item)
	return item.val, true
}

// Size returns the number of cached entries.
func (c *LruCache[K, V]) Size() int {
	return len(c.cache)
}

func (c *LruCache[K, V]) Clear() {
	if len(c.cache) > 0 {
		c.cache = make(map[K]*entry[K, V], c.capacity)
	}
	c.head = nil
	c.tail = nil
}

// touch moves the entry to the head of the queue.
func (c *LruCache[K, V]) touch(item *entry[K, V]) {
	if item == c.head {
		return
	}
	c.unlink(item)
	item.next = c.head
	if c.head != nil {
		c.head.prev = item
	}
	c.head = item
	if c.tail == nil {
		c.tail = item
	}
}

func (c *LruCache[K, V]) unlink(item *entry[K, V]) {
	if item.prev != nil {
		item.prev.next = item.next
	} else {
		c.head = item.next
	}
	if item.next != nil {
		item.next.prev = item.prev
	} else {
		c.tail = item.prev
	}
	item.prev = nil
	item.next = nil
}

func (c *LruCache[K, V]) dropLast() *entry[K, V] {
	dropped := c.tail
	delete(c.cache, dropped.key)
	c.unlink(dropped)
	return dropped
}

// GetMemoryFootprint provides the size of the cache in memory in bytes,
// assuming it is filled to its capacity.
func (c *LruCache[K, V]) GetMemoryFootprint() *MemoryFootprint {
	entrySize := unsafe.Sizeof(entry[K, V]{})
	return NewMemoryFootprint(unsafe.Sizeof(*c) + uintptr(c.capacity)*entrySize)
}

// entry is a cache item holding a key, its value and its queue neighbours.
type entry[K comparable, V any] struct {
	key  K
	val  V
	prev *entry[K, V]
	next *entry[K, V]
}

func (e entry[K, V]) String() string {
	return fmt.Sprintf("Entry: %v -> %v", e.key, e.val)
}

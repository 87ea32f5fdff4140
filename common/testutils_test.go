package common

import "testing"

// uint32Hasher deliberately returns the key itself so that tests can steer
// keys into particular buckets.
type uint32Hasher struct{}

func (uint32Hasher) Hash(key *uint32) uint64 {
	return uint64(*key)
}

type uint32Comparator struct{}

func (uint32Comparator) Compare(a, b *uint32) int {
	switch {
	case *a < *b:
		return -1
	case *a > *b:
		return 1
	}
	return 0
}

func collect[K comparable, V any](forEach func(func(K, V) bool)) []MapEntry[K, V] {
	var res []MapEntry[K, V]
	forEach(func(k K, v V) bool {
		res = append(res, MapEntry[K, V]{k, v})
		return true
	})
	return res
}

func assertEntries[K comparable, V comparable](t *testing.T, got, want []MapEntry[K, V]) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("unexpected number of entries, wanted %d, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("unexpected entry at %d, wanted %v, got %v", i, want[i], got[i])
		}
	}
}

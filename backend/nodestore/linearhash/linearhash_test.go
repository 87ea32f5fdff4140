package linearhash

import (
	"testing"

	"github.com/Hanan-ElNaghy/DGtal/backend/keys"
)

func TestStore_BucketsGrowWithRecords(t *testing.T) {
	codec := keys.Uint[uint64]{}
	store := NewParamsStore[uint64, int](2, codec, codec)
	if got := store.Buckets(); got != 2 {
		t.Fatalf("unexpected initial number of buckets: %d", got)
	}
	const N = 100_000
	for i := 0; i < N; i++ {
		if err := store.Set(uint64(i), i); err != nil {
			t.Fatalf("failed to set; %s", err)
		}
	}
	if store.Buckets() <= 2 {
		t.Errorf("buckets did not grow: %d", store.Buckets())
	}
	total := 0
	for _, size := range store.BucketSizes() {
		total += size
	}
	if total != N || store.Size() != N {
		t.Errorf("unexpected number of records: buckets hold %d, size %d, wanted %d", total, store.Size(), N)
	}
	for i := 0; i < N; i += 997 {
		if got, exists, _ := store.Get(uint64(i)); !exists || got != i {
			t.Errorf("unexpected record for %d: %d, %t", i, got, exists)
		}
	}
}

func TestStore_CloseDropsRecords(t *testing.T) {
	codec := keys.Uint[uint16]{}
	store := NewStore[uint16, int](codec, codec)
	_ = store.Set(1, 1)
	if err := store.Close(); err != nil {
		t.Fatalf("failed to close; %s", err)
	}
	if got := store.Size(); got != 0 {
		t.Errorf("records survived close: %d", got)
	}
}

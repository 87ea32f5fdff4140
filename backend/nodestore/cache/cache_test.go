package cache

import (
	"errors"
	"testing"

	"github.com/Hanan-ElNaghy/DGtal/backend/nodestore"
	"go.uber.org/mock/gomock"
)

func TestStore_CachedRecordsAreNotReadAgain(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := nodestore.NewMockNodeStore[uint32, int](ctrl)
	inner.EXPECT().Get(uint32(1)).Return(12, true, nil)

	store := NewStore[uint32, int](inner, 10)
	for i := 0; i < 3; i++ {
		got, exists, err := store.Get(1)
		if err != nil || !exists || got != 12 {
			t.Errorf("unexpected result: %d, %t, %v", got, exists, err)
		}
	}
}

func TestStore_AbsentRecordsAreNotCached(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := nodestore.NewMockNodeStore[uint32, int](ctrl)
	inner.EXPECT().Get(uint32(1)).Return(0, false, nil).Times(2)

	store := NewStore[uint32, int](inner, 10)
	for i := 0; i < 2; i++ {
		if _, exists, err := store.Get(1); err != nil || exists {
			t.Errorf("unexpected result: %t, %v", exists, err)
		}
	}
}

func TestStore_WritesGoThroughToTheStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := nodestore.NewMockNodeStore[uint32, int](ctrl)
	inner.EXPECT().Set(uint32(1), 5).Return(nil)

	store := NewStore[uint32, int](inner, 10)
	if err := store.Set(1, 5); err != nil {
		t.Fatalf("failed to set; %s", err)
	}
	if got, exists, err := store.Get(1); err != nil || !exists || got != 5 {
		t.Errorf("unexpected result: %d, %t, %v", got, exists, err)
	}
}

func TestStore_FailedWritesAreNotCached(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := nodestore.NewMockNodeStore[uint32, int](ctrl)
	injectedErr := errors.New("injected error")
	gomock.InOrder(
		inner.EXPECT().Set(uint32(1), 5).Return(nil),
		inner.EXPECT().Set(uint32(1), 6).Return(injectedErr),
		inner.EXPECT().Get(uint32(1)).Return(5, true, nil),
	)

	store := NewStore[uint32, int](inner, 10)
	if err := store.Set(1, 5); err != nil {
		t.Fatalf("failed to set; %s", err)
	}
	if err := store.Set(1, 6); !errors.Is(err, injectedErr) {
		t.Fatalf("expected injected error, got %v", err)
	}
	if got, _, _ := store.Get(1); got != 5 {
		t.Errorf("unexpected value: got %d, wanted 5", got)
	}
}

func TestStore_RemoveDropsCachedRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := nodestore.NewMockNodeStore[uint32, int](ctrl)
	gomock.InOrder(
		inner.EXPECT().Set(uint32(1), 5).Return(nil),
		inner.EXPECT().Remove(uint32(1)).Return(true, nil),
		inner.EXPECT().Get(uint32(1)).Return(0, false, nil),
	)

	store := NewStore[uint32, int](inner, 10)
	if err := store.Set(1, 5); err != nil {
		t.Fatalf("failed to set; %s", err)
	}
	if removed, err := store.Remove(1); err != nil || !removed {
		t.Fatalf("failed to remove: %t, %v", removed, err)
	}
	if _, exists, _ := store.Get(1); exists {
		t.Errorf("removed record still present")
	}
}

func TestStore_EvictedRecordsAreReadFromTheStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := nodestore.NewMockNodeStore[uint32, int](ctrl)
	inner.EXPECT().Set(gomock.Any(), gomock.Any()).Return(nil).Times(3)
	inner.EXPECT().Get(uint32(1)).Return(1, true, nil)

	store := NewStore[uint32, int](inner, 2)
	for i := uint32(1); i <= 3; i++ {
		if err := store.Set(i, int(i)); err != nil {
			t.Fatalf("failed to set; %s", err)
		}
	}
	for i := uint32(3); i >= 1; i-- {
		if got, exists, err := store.Get(i); err != nil || !exists || got != int(i) {
			t.Errorf("unexpected result for %d: %d, %t, %v", i, got, exists, err)
		}
	}
}

func TestStore_CloseClosesWrappedStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := nodestore.NewMockNodeStore[uint32, int](ctrl)
	inner.EXPECT().Close().Return(nil)

	if err := NewStore[uint32, int](inner, 2).Close(); err != nil {
		t.Errorf("failed to close; %s", err)
	}
}

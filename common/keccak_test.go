package common

import (
	"fmt"
	"testing"
)

func TestKeccak256_KnownHashes(t *testing.T) {
	tests := map[string]string{
		"":    "c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470",
		"abc": "4e03657aea45a94fc7d47ba826c8d667c0d1e6e33a64a036ec44f58fa12d6c45",
	}
	for input, want := range tests {
		if got := Keccak256([]byte(input)).String(); got != want {
			t.Errorf("unexpected hash of %q, wanted %s, got %s", input, want, got)
		}
	}
}

func TestKeccak256_PartsAreConcatenated(t *testing.T) {
	whole := Keccak256([]byte("hash tree"))
	parts := Keccak256([]byte("hash"), []byte(" "), []byte("tree"))
	if whole != parts {
		t.Errorf("hash of parts differs: %v != %v", whole, parts)
	}

	h := NewKeccak256()
	fmt.Fprint(h, "hash tree")
	if streamed := GetHash(h); streamed != whole {
		t.Errorf("streamed hash differs: %v != %v", streamed, whole)
	}
}

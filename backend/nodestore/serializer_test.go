package nodestore

import (
	"testing"

	"github.com/Hanan-ElNaghy/DGtal/common"
)

func TestNodeSerializer_LayoutIsDepthFollowedByValue(t *testing.T) {
	serializer := NodeSerializer[uint16]{Values: common.IntegerSerializer[uint16]{}}
	if got := serializer.Size(); got != 4 {
		t.Fatalf("unexpected size: got %d, wanted 4", got)
	}
	bytes := serializer.ToBytes(Node[uint16]{Value: 0x0A0B, Depth: 0x0102})
	want := []byte{0x01, 0x02, 0x0A, 0x0B}
	if len(bytes) != len(want) {
		t.Fatalf("unexpected encoding: got %x, wanted %x", bytes, want)
	}
	for i := range want {
		if bytes[i] != want[i] {
			t.Fatalf("unexpected encoding: got %x, wanted %x", bytes, want)
		}
	}
}

func TestNodeSerializer_DecodesEncodedNodes(t *testing.T) {
	serializer := NodeSerializer[float64]{Values: common.Float64Serializer{}}
	for _, node := range []Node[float64]{{}, {Value: -1.5, Depth: 3}, {Value: 1e300, Depth: 0xFFFF}} {
		if got := serializer.FromBytes(serializer.ToBytes(node)); got != node {
			t.Errorf("unexpected node: got %v, wanted %v", got, node)
		}
	}
}

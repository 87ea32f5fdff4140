package hashkey

import (
	"testing"

	"github.com/Hanan-ElNaghy/DGtal/backend/keys"
	"github.com/Hanan-ElNaghy/DGtal/backend/morton"
	"github.com/holiman/uint256"
)

func TestLayout_Widths(t *testing.T) {
	tests := []struct {
		layout              Layout
		code, depth, totals int
	}{
		{Layout{Dim: 2, MaxDepth: 3}, 6, 0, 6},
		{Layout{Dim: 2, MaxDepth: 8}, 16, 0, 16},
		{Layout{Dim: 2, MaxDepth: 8, VariableDepth: true}, 16, 4, 20},
		{Layout{Dim: 3, MaxDepth: 7, VariableDepth: true}, 21, 3, 24},
		{Layout{Dim: 4, MaxDepth: 0, VariableDepth: true}, 0, 0, 0},
	}
	for _, test := range tests {
		if got := test.layout.CodeWidth(); got != test.code {
			t.Errorf("%+v: unexpected code width, wanted %d, got %d", test.layout, test.code, got)
		}
		if got := test.layout.DepthWidth(); got != test.depth {
			t.Errorf("%+v: unexpected depth width, wanted %d, got %d", test.layout, test.depth, got)
		}
		if got := test.layout.Width(); got != test.totals {
			t.Errorf("%+v: unexpected width, wanted %d, got %d", test.layout, test.totals, got)
		}
	}
}

func TestNewDeriver_RejectsNarrowKeys(t *testing.T) {
	codec := keys.Uint[uint8]{}
	if _, err := NewDeriver[uint8](codec, Layout{Dim: 2, MaxDepth: 3}, 9); err == nil {
		t.Errorf("key width exceeding the key type should be rejected")
	}
	if _, err := NewDeriver[uint8](codec, Layout{Dim: 2, MaxDepth: 3}, 5); err == nil {
		t.Errorf("key width below the code width should be rejected")
	}
	if _, err := NewDeriver[uint8](codec, Layout{Dim: 2, MaxDepth: 3, VariableDepth: true}, 7); err == nil {
		t.Errorf("key width below code and depth width should be rejected")
	}
	if _, err := NewDeriver[uint8](codec, Layout{Dim: 2, MaxDepth: 3, VariableDepth: true}, 8); err != nil {
		t.Errorf("valid configuration rejected: %v", err)
	}
}

func TestNewDeriver_RejectsDepthsOverflowingTheCodeWidth(t *testing.T) {
	codec := keys.Uint[uint8]{}
	for _, layout := range []Layout{
		{Dim: 4, MaxDepth: 1 << 62},
		{Dim: 2, MaxDepth: 1<<63 - 1},
		{Dim: 1 << 40, MaxDepth: 1 << 30},
		{Dim: 0, MaxDepth: 1},
		{Dim: 2, MaxDepth: -1},
	} {
		if _, err := NewDeriver[uint8](codec, layout, 8); err == nil {
			t.Errorf("layout %+v should be rejected", layout)
		}
	}
}

func TestDeriver_FixedDepthKeysAreCodes(t *testing.T) {
	codec := keys.Uint[uint16]{}
	d, err := NewDeriver[uint16](codec, Layout{Dim: 2, MaxDepth: 3}, 6)
	if err != nil {
		t.Fatalf("failed to create deriver: %v", err)
	}
	path := morton.Path{1, 2, 3}
	key := d.KeyOf(path)
	if want := morton.Encode[uint16](codec, path, 2); key != want {
		t.Errorf("key should equal the code, wanted %b, got %b", want, key)
	}
	if restored := d.PathOf(key); !restored.Equal(path) {
		t.Errorf("path not restored: %v", restored)
	}
}

// forEachPath enumerates all paths of depth 0..maxDepth.
func forEachPath(maxDepth, dim int, visit func(morton.Path)) {
	var rec func(path morton.Path)
	rec = func(path morton.Path) {
		visit(path)
		if len(path) == maxDepth {
			return
		}
		for c := 0; c < 1<<dim; c++ {
			rec(append(path[:len(path):len(path)], morton.Child(c)))
		}
	}
	rec(nil)
}

func TestDeriver_KeysAreInjective(t *testing.T) {
	for dim := 1; dim <= 3; dim++ {
		for maxDepth := 0; maxDepth*dim <= 9; maxDepth++ {
			layout := Layout{Dim: dim, MaxDepth: maxDepth, VariableDepth: true}
			d, err := NewDeriver[uint16](keys.Uint[uint16]{}, layout, layout.Width())
			if err != nil {
				t.Fatalf("failed to create deriver for %+v: %v", layout, err)
			}
			seen := map[uint16]morton.Path{}
			forEachPath(maxDepth, dim, func(path morton.Path) {
				key := d.KeyOf(path)
				if other, found := seen[key]; found {
					t.Fatalf("%+v: paths %v and %v share key %b", layout, other, path, key)
				}
				seen[key] = append(morton.Path(nil), path...)
				if key >= 1<<layout.Width() {
					t.Fatalf("%+v: key %b exceeds %d bits", layout, key, layout.Width())
				}
				if restored := d.PathOf(key); !restored.Equal(path) {
					t.Fatalf("%+v: path %v not restored, got %v", layout, path, restored)
				}
			})
		}
	}
}

func TestDeriver_WideKeys(t *testing.T) {
	layout := Layout{Dim: 2, MaxDepth: 80, VariableDepth: true}
	d, err := NewDeriver[uint256.Int](keys.Uint256{}, layout, 256)
	if err != nil {
		t.Fatalf("failed to create deriver: %v", err)
	}
	path := make(morton.Path, 57)
	for i := range path {
		path[i] = morton.Child(3 - i%4)
	}
	key := d.KeyOf(path)
	code, depth := d.Split(key)
	if depth != 57 {
		t.Errorf("unexpected depth, wanted 57, got %d", depth)
	}
	if want := morton.Encode[uint256.Int](keys.Uint256{}, path, 2); code != want {
		t.Errorf("unexpected code")
	}
}

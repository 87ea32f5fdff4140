package common

import (
	"fmt"
	"regexp"
	"strings"
	"testing"
)

func expectSubstr(t *testing.T, str, substring string) {
	t.Helper()
	if !strings.Contains(str, substring) {
		t.Errorf("expected %v to contain substring %v", str, substring)
	}
}

func TestMemoryFootprintIsFormatable(t *testing.T) {
	fp := NewMemoryFootprint(12)
	fp.AddChild("store", NewMemoryFootprint(50*1024))
	fp.AddChild("cache", NewMemoryFootprint(10*1024*1024+200*1024))

	print := fmt.Sprintf("%v", fp)
	expectSubstr(t, print, "10.2 MB .")
	expectSubstr(t, print, "50.0 KB ./store")
	expectSubstr(t, print, "10.2 MB ./cache")
}

func TestMemoryFootprintValue(t *testing.T) {
	fp := NewMemoryFootprint(12)
	fp.AddChild("x", NewMemoryFootprint(30))

	if got, want := fp.Value(), 12; got != uintptr(want) {
		t.Errorf("value does not match: %d != %d", got, want)
	}
	if got, want := fp.Total(), 42; got != uintptr(want) {
		t.Errorf("total does not match: %d != %d", got, want)
	}
	if got := fp.GetChild("x"); got == nil || got.Value() != 30 {
		t.Errorf("child not registered: %v", got)
	}
}

func TestMemoryFootprint_SharedChildIsCountedOnce(t *testing.T) {
	shared := NewMemoryFootprint(100)
	fp := NewMemoryFootprint(1)
	fp.AddChild("a", shared)
	fp.AddChild("b", shared)

	if got, want := fp.Total(), 101; got != uintptr(want) {
		t.Errorf("value does not match: %d != %d", got, want)
	}
}

func TestMemoryFootprint_Recursive(t *testing.T) {
	fp := NewMemoryFootprint(12)
	fp.AddChild("x", fp)

	if got, want := fp.Total(), 12; got != uintptr(want) {
		t.Errorf("value does not match: %d != %d", got, want)
	}
}

func TestMemoryFootprint_ChildNil(t *testing.T) {
	fp := NewMemoryFootprint(12)
	fp.AddChild("x", nil)

	if got, want := fp.Total(), 12; got != uintptr(want) {
		t.Errorf("value does not match: %d != %d", got, want)
	}
	if strings.Contains(fp.String(), "./x") {
		t.Errorf("nil child should not be printed: %v", fp)
	}
}

func TestMemoryFootprintPrintsComponentsInOrder(t *testing.T) {
	fp := NewMemoryFootprint(4)
	fp.AddChild("b", NewMemoryFootprint(5))
	fp.AddChild("a", NewMemoryFootprint(6))
	fp.AddChild("c", NewMemoryFootprint(7))

	match, err := regexp.MatchString(`6 B \./a[\S\s]*5 B \./b[\S\s]*7 B \./c`, fp.String())
	if err != nil {
		t.Fatalf("failed to match: %v", err)
	}
	if !match {
		t.Errorf("components not printed in order:\n%v", fp)
	}
}

func TestFormatMemory(t *testing.T) {
	tests := []struct {
		bytes uintptr
		want  string
	}{
		{0, "0 B"},
		{1023, "1023 B"},
		{1024, "1.0 KB"},
		{1536, "1.5 KB"},
		{3 * 1024 * 1024, "3.0 MB"},
	}
	for _, test := range tests {
		if got := FormatMemory(test.bytes); got != test.want {
			t.Errorf("unexpected format of %d, wanted %q, got %q", test.bytes, test.want, got)
		}
	}
}

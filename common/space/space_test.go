package space

import (
	"math"
	"testing"
)

func TestPoint_Basics(t *testing.T) {
	p := NewPoint(1, 2, 3)
	if got, want := p.Dim(), 3; got != want {
		t.Errorf("unexpected dimension, wanted %d, got %d", want, got)
	}
	if got, want := p.String(), "(1,2,3)"; got != want {
		t.Errorf("unexpected string, wanted %s, got %s", want, got)
	}
	c := p.Clone()
	c[0] = 5
	if p[0] != 1 {
		t.Errorf("clone shares storage with original")
	}
	if !p.Equal(NewPoint(1, 2, 3)) || p.Equal(NewPoint(1, 2)) || p.Equal(c) {
		t.Errorf("unexpected equality")
	}
	if !Diagonal(4, 7).Equal(NewPoint(7, 7, 7, 7)) {
		t.Errorf("unexpected diagonal point %v", Diagonal(4, 7))
	}
}

func TestPoint_CompareStartsWithLastAxis(t *testing.T) {
	tests := []struct {
		a, b Point
		want int
	}{
		{NewPoint(1, 1), NewPoint(1, 1), 0},
		{NewPoint(2, 1), NewPoint(1, 2), -1},
		{NewPoint(1, 2), NewPoint(2, 1), 1},
		{NewPoint(1, 5), NewPoint(2, 5), -1},
	}
	for _, test := range tests {
		if got := test.a.Compare(test.b); got != test.want {
			t.Errorf("compare %v with %v: wanted %d, got %d", test.a, test.b, test.want, got)
		}
	}
}

func TestNewDomain_RejectsMalformedCorners(t *testing.T) {
	tests := []struct {
		lower, upper Point
	}{
		{NewPoint(), NewPoint()},
		{NewPoint(0, 0), NewPoint(1)},
		{NewPoint(0, 5), NewPoint(3, 4)},
	}
	for _, test := range tests {
		if _, err := NewDomain(test.lower, test.upper); err == nil {
			t.Errorf("domain %v..%v should have been rejected", test.lower, test.upper)
		}
	}
}

func TestDomain_Contains(t *testing.T) {
	d := MustNewDomain(NewPoint(-2, 0), NewPoint(3, 10))
	tests := []struct {
		p    Point
		want bool
	}{
		{NewPoint(-2, 0), true},
		{NewPoint(3, 10), true},
		{NewPoint(0, 5), true},
		{NewPoint(-3, 5), false},
		{NewPoint(0, 11), false},
		{NewPoint(0), false},
		{NewPoint(0, 0, 0), false},
	}
	for _, test := range tests {
		if got := d.Contains(test.p); got != test.want {
			t.Errorf("contains %v: wanted %t, got %t", test.p, test.want, got)
		}
	}
}

func TestDomain_CornersAreCopies(t *testing.T) {
	lower := NewPoint(0, 0)
	d := MustNewDomain(lower, NewPoint(4, 4))
	lower[0] = 3
	d.Lower()[1] = 3
	if !d.Lower().Equal(NewPoint(0, 0)) {
		t.Errorf("domain corner was modified: %v", d)
	}
}

func TestDomain_SizeAndExtent(t *testing.T) {
	d := MustNewDomain(NewPoint(0, 0), NewPoint(255, 255))
	if got, want := d.Extent(0), uint64(256); got != want {
		t.Errorf("unexpected extent, wanted %d, got %d", want, got)
	}
	if got, want := d.Size().Int64(), int64(65536); got != want {
		t.Errorf("unexpected size, wanted %d, got %d", want, got)
	}
	huge := MustNewDomain(NewPoint(math.MinInt64, math.MinInt64), NewPoint(math.MaxInt64, math.MaxInt64))
	if got, want := huge.Size().BitLen(), 129; got != want {
		t.Errorf("unexpected size bit length, wanted %d, got %d", want, got)
	}
	if got := (Domain{}).Size().Sign(); got != 0 {
		t.Errorf("empty domain should have size 0")
	}
}

func TestDomain_ForEachVisitsAllPointsInOrder(t *testing.T) {
	d := MustNewDomain(NewPoint(1, -1), NewPoint(3, 1))
	var visited []Point
	d.ForEach(func(p Point) bool {
		visited = append(visited, p.Clone())
		return true
	})
	if got, want := len(visited), 9; got != want {
		t.Fatalf("unexpected number of points, wanted %d, got %d", want, got)
	}
	for i := 1; i < len(visited); i++ {
		if visited[i-1].Compare(visited[i]) >= 0 {
			t.Errorf("points not visited in order: %v, %v", visited[i-1], visited[i])
		}
	}
	if !visited[0].Equal(NewPoint(1, -1)) || !visited[8].Equal(NewPoint(3, 1)) {
		t.Errorf("unexpected first/last points %v, %v", visited[0], visited[8])
	}

	count := 0
	d.ForEach(func(Point) bool {
		count++
		return count < 4
	})
	if count != 4 {
		t.Errorf("iteration did not stop, visited %d", count)
	}
}

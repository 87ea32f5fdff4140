// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package space provides the integer points and axis-aligned boxes used to
// address the cells of an image container.
package space

import (
	"fmt"
	"strings"
)

// Point is a point of the N-dimensional integer grid. The dimension of a
// point is its length; all points used with one container share it.
type Point []int64

// NewPoint creates a point from its coordinates.
func NewPoint(coordinates ...int64) Point {
	return Point(coordinates)
}

// Diagonal creates a point of the given dimension with all coordinates set to value.
func Diagonal(dim int, value int64) Point {
	p := make(Point, dim)
	for i := range p {
		p[i] = value
	}
	return p
}

// Dim returns the dimension of the point.
func (p Point) Dim() int {
	return len(p)
}

// Clone returns a copy of the point not sharing storage with the original.
func (p Point) Clone() Point {
	return append(Point(nil), p...)
}

// Equal reports whether both points have the same dimension and coordinates.
func (p Point) Equal(other Point) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}
	return true
}

// Compare orders points lexicographically, starting with the last axis. It
// is the order in which Domain.ForEach visits points.
func (p Point) Compare(other Point) int {
	for i := len(p) - 1; i >= 0; i-- {
		switch {
		case p[i] < other[i]:
			return -1
		case p[i] > other[i]:
			return 1
		}
	}
	return 0
}

// IsLowerOrEqual reports whether every coordinate of p is at most the one of other.
func (p Point) IsLowerOrEqual(other Point) bool {
	for i := range p {
		if p[i] > other[i] {
			return false
		}
	}
	return true
}

func (p Point) String() string {
	var sb strings.Builder
	sb.WriteRune('(')
	for i, c := range p {
		if i > 0 {
			sb.WriteRune(',')
		}
		fmt.Fprintf(&sb, "%d", c)
	}
	sb.WriteRune(')')
	return sb.String()
}

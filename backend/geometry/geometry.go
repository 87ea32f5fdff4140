// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package geometry subdivides a domain into cells. At every level each axis
// of the current cell is halved; a coordinate equal to the midpoint belongs
// to the lower half. Subdividing beyond the resolution of the domain yields
// cells of a single point whose upper halves are empty.
package geometry

import (
	"github.com/Hanan-ElNaghy/DGtal/backend/morton"
	"github.com/Hanan-ElNaghy/DGtal/common/space"
)

// Midpoint returns the last coordinate of the lower half of [lo, hi]. The
// lower half is [lo, mid], the upper half [mid+1, hi]. lo must not exceed hi.
func Midpoint(lo, hi int64) int64 {
	return lo + int64((uint64(hi)-uint64(lo))/2)
}

// CellPath computes the path of the cell at the given depth containing the
// point, which must be inside the domain.
func CellPath(domain space.Domain, p space.Point, depth int) morton.Path {
	lo, hi := domain.Lower(), domain.Upper()
	path := make(morton.Path, depth)
	for level := range path {
		var child morton.Child
		for axis := range p {
			mid := Midpoint(lo[axis], hi[axis])
			if p[axis] <= mid {
				hi[axis] = mid
			} else {
				child |= 1 << axis
				lo[axis] = mid + 1
			}
		}
		path[level] = child
	}
	return path
}

// CellBounds computes the corners of the cell selected by a path. The cell
// of a path not produced by CellPath may be empty, i.e. lower > upper on
// some axis.
func CellBounds(domain space.Domain, path morton.Path) (lower, upper space.Point) {
	lower, upper = domain.Lower(), domain.Upper()
	for _, child := range path {
		for axis := range lower {
			if lower[axis] > upper[axis] {
				continue
			}
			mid := Midpoint(lower[axis], upper[axis])
			if child.Upper(axis) {
				lower[axis] = mid + 1
			} else {
				upper[axis] = mid
			}
		}
	}
	return lower, upper
}

// Cell returns the cell selected by a path as domain. It fails for empty
// cells, which CellPath never produces.
func Cell(domain space.Domain, path morton.Path) (space.Domain, error) {
	return space.NewDomain(CellBounds(domain, path))
}

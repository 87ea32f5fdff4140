// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package space

import (
	"fmt"
	"math/big"
)

// Domain is an axis-aligned box of the integer grid including both corners.
// Domains are values; they are never modified after creation.
type Domain struct {
	lower, upper Point
}

// NewDomain creates the domain spanned by the lower and upper corners. Both
// corners must have the same, non-zero dimension and lower must not exceed
// upper on any axis.
func NewDomain(lower, upper Point) (Domain, error) {
	if len(lower) == 0 {
		return Domain{}, fmt.Errorf("domain must have at least one dimension")
	}
	if len(lower) != len(upper) {
		return Domain{}, fmt.Errorf("corner dimensions differ: %d != %d", len(lower), len(upper))
	}
	if !lower.IsLowerOrEqual(upper) {
		return Domain{}, fmt.Errorf("lower corner %v exceeds upper corner %v", lower, upper)
	}
	return Domain{lower: lower.Clone(), upper: upper.Clone()}, nil
}

// MustNewDomain is like NewDomain but panics on invalid corners.
func MustNewDomain(lower, upper Point) Domain {
	d, err := NewDomain(lower, upper)
	if err != nil {
		panic(err)
	}
	return d
}

// Lower returns a copy of the lower corner.
func (d Domain) Lower() Point {
	return d.lower.Clone()
}

// Upper returns a copy of the upper corner.
func (d Domain) Upper() Point {
	return d.upper.Clone()
}

// LowerAt returns the lower bound of the given axis.
func (d Domain) LowerAt(axis int) int64 {
	return d.lower[axis]
}

// UpperAt returns the upper bound of the given axis.
func (d Domain) UpperAt(axis int) int64 {
	return d.upper[axis]
}

// Dim returns the dimension of the domain; zero for the zero Domain value.
func (d Domain) Dim() int {
	return len(d.lower)
}

// IsEmpty reports whether the domain is the zero value or has an empty axis.
func (d Domain) IsEmpty() bool {
	return len(d.lower) == 0 || !d.lower.IsLowerOrEqual(d.upper)
}

// Contains reports whether the point has the dimension of the domain and
// lies within its bounds.
func (d Domain) Contains(p Point) bool {
	if len(p) != len(d.lower) {
		return false
	}
	for i := range p {
		if p[i] < d.lower[i] || p[i] > d.upper[i] {
			return false
		}
	}
	return true
}

// Equal reports whether both domains have the same corners.
func (d Domain) Equal(other Domain) bool {
	return d.lower.Equal(other.lower) && d.upper.Equal(other.upper)
}

// Extent returns the number of grid points along the given axis.
func (d Domain) Extent(axis int) uint64 {
	return uint64(d.upper[axis]) - uint64(d.lower[axis]) + 1
}

// Size returns the number of grid points in the domain. The result may
// exceed 64 bits, hence the big integer.
func (d Domain) Size() *big.Int {
	res := big.NewInt(1)
	if d.IsEmpty() {
		return res.SetInt64(0)
	}
	for i := range d.lower {
		extent := new(big.Int).SetUint64(uint64(d.upper[i]) - uint64(d.lower[i]))
		res.Mul(res, extent.Add(extent, big.NewInt(1)))
	}
	return res
}

// ForEach visits all points of the domain, the first axis varying fastest,
// until the visitor returns false. The visited point is reused between
// calls and must be cloned to be retained.
func (d Domain) ForEach(visit func(Point) bool) {
	if d.IsEmpty() {
		return
	}
	p := d.lower.Clone()
	for {
		if !visit(p) {
			return
		}
		axis := 0
		for ; axis < len(p); axis++ {
			if p[axis] < d.upper[axis] {
				p[axis]++
				break
			}
			p[axis] = d.lower[axis]
		}
		if axis == len(p) {
			return
		}
	}
}

func (d Domain) String() string {
	return fmt.Sprintf("[%v..%v]", d.lower, d.upper)
}

// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package common

import (
	"fmt"
	"math"
	"math/rand"
)

// Distribution selects how sampled values spread over [0, size).
type Distribution int

const (
	Sequential  Distribution = 0
	Uniform     Distribution = 1
	Exponential Distribution = 2
)

var distributionLabels = []string{"Sequential", "Uniform", "Exponential"}

func (d Distribution) String() string {
	if d < 0 || int(d) >= len(distributionLabels) {
		return fmt.Sprintf("Distribution(%d)", int(d))
	}
	return distributionLabels[d]
}

// Sampler returns a function producing values in [0, size) following the
// distribution. Random values are drawn from the given source, so samplers
// sharing a seed produce the same sequence. The size must be positive.
func (d Distribution) Sampler(size uint64, random *rand.Rand) func() uint64 {
	switch d {
	case Sequential:
		var it uint64
		return func() uint64 {
			res := it
			it = (it + 1) % size
			return res
		}
	case Exponential:
		expRate := float64(10) / float64(size)
		return func() uint64 {
			return uint64(random.ExpFloat64()/expRate) % size
		}
	default:
		if size <= math.MaxInt64 {
			return func() uint64 {
				return uint64(random.Int63n(int64(size)))
			}
		}
		return func() uint64 {
			return random.Uint64() % size
		}
	}
}

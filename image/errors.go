// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package image

import "github.com/Hanan-ElNaghy/DGtal/common"

const (
	// ErrConfiguration is reported when a HashTree is created with a
	// configuration that would lead to colliding cells.
	ErrConfiguration = common.ConstError("invalid configuration")

	// ErrDomain is reported for points outside of the domain of a HashTree.
	ErrDomain = common.ConstError("point outside of domain")

	// ErrDepth is reported for cell depths not supported by a HashTree.
	ErrDepth = common.ConstError("unsupported cell depth")
)

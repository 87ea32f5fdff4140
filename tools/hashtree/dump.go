// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package main

import (
	"fmt"

	"github.com/Hanan-ElNaghy/DGtal/image"
	"github.com/urfave/cli/v2"
)

var limitFlag = cli.IntFlag{
	Name:  "limit",
	Usage: "the maximal number of printed cells, 0 for all",
	Value: 100,
}

var dumpCommand = cli.Command{
	Action: dump,
	Name:   "dump",
	Usage:  "fills a tree with a pattern and prints its populated cells",
	Flags:  append(append([]cli.Flag{&limitFlag}, treeFlags...), fillFlags...),
}

func dump(ctx *cli.Context) error {
	log := NewLog()
	limit := ctx.Int(limitFlag.Name)
	return withTree(ctx, func(tree valueTree) error {
		if _, err := fillFromFlags(ctx, tree, log); err != nil {
			return err
		}
		printed := 0
		err := tree.VisitCells(func(cell image.Cell[value]) bool {
			fmt.Printf("%v depth=%d value=%d\n", cell.Bounds, cell.Depth, cell.Value)
			printed++
			return limit <= 0 || printed < limit
		})
		if err != nil {
			return err
		}
		if printed < tree.Size() {
			fmt.Printf("... %d more cells\n", tree.Size()-printed)
		}
		return nil
	})
}

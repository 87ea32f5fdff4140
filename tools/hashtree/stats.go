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
	"math/big"
	"os"

	"github.com/Hanan-ElNaghy/DGtal/image"
	"github.com/jayloop/table"
	"github.com/urfave/cli/v2"
)

var statsCommand = cli.Command{
	Action: stats,
	Name:   "stats",
	Usage:  "fills a tree with a pattern and prints cell and memory statistics",
	Flags:  append(append([]cli.Flag{}, treeFlags...), fillFlags...),
}

type cellStats struct {
	cells  int
	points *big.Int
}

func (s *cellStats) add(cell image.Cell[value]) {
	if s.points == nil {
		s.points = new(big.Int)
	}
	s.cells++
	s.points.Add(s.points, cell.Bounds.Size())
}

func collectStats(tree valueTree) (byDepth map[int]*cellStats, byValue map[value]*cellStats, err error) {
	byDepth = map[int]*cellStats{}
	byValue = map[value]*cellStats{}
	err = tree.VisitCells(func(cell image.Cell[value]) bool {
		if byDepth[cell.Depth] == nil {
			byDepth[cell.Depth] = &cellStats{}
		}
		byDepth[cell.Depth].add(cell)
		if byValue[cell.Value] == nil {
			byValue[cell.Value] = &cellStats{}
		}
		byValue[cell.Value].add(cell)
		return true
	})
	return
}

func stats(ctx *cli.Context) error {
	log := NewLog()
	return withTree(ctx, func(tree valueTree) error {
		if _, err := fillFromFlags(ctx, tree, log); err != nil {
			return err
		}
		byDepth, byValue, err := collectStats(tree)
		if err != nil {
			return err
		}

		fmt.Println(tree.Describe())
		t := table.New("DEPTH", "CELLS", "POINTS")
		for depth, s := range byDepth {
			t.Row(depth, s.cells, s.points.String())
		}
		t.Sort(0)
		t.Print(os.Stdout)

		t = table.New("VALUE", "CELLS", "POINTS")
		t.FormatHeader(table.Format(table.Yellow))
		for v, s := range byValue {
			t.Row(v, s.cells, s.points.String())
		}
		t.Sort(0)
		t.Print(os.Stdout)

		fmt.Printf("Memory usage:\n%v", tree.GetMemoryFootprint())
		return nil
	})
}

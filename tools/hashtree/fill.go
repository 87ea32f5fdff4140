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

	"github.com/Hanan-ElNaghy/DGtal/common"
	"github.com/urfave/cli/v2"
)

var verifyFlag = cli.BoolFlag{
	Name:  "verify",
	Usage: "reads back every point of the domain after filling",
}

var fillCommand = cli.Command{
	Action: fill,
	Name:   "fill",
	Usage:  "fills a tree with a pattern and prints its state hash",
	Flags:  append(append([]cli.Flag{&verifyFlag, &cpuProfileFlag}, treeFlags...), fillFlags...),
}

func fill(ctx *cli.Context) error {
	if cpuProfileFile := ctx.String(cpuProfileFlag.Name); cpuProfileFile != "" {
		if err := startCPUProfile(cpuProfileFile); err != nil {
			return err
		}
		defer stopCPUProfile()
	}

	log := NewLog()
	return withTree(ctx, func(tree valueTree) error {
		log.Printf("Filling %s ...", tree.Describe())
		expected, err := fillFromFlags(ctx, tree, log)
		if err != nil {
			return err
		}
		log.Printf("Filled %d cells", tree.Size())

		hash, err := tree.GetStateHash(valueSerializer)
		if err != nil {
			return err
		}
		fmt.Printf("State hash: %v\n", hash)
		fmt.Printf("Memory usage: %s\n", common.FormatMemory(tree.GetMemoryFootprint().Total()))

		if ctx.Bool(verifyFlag.Name) {
			log.Print("Verifying ...")
			mismatches, err := verifyTree(tree, expected, log)
			if err != nil {
				return err
			}
			if mismatches > 0 {
				return fmt.Errorf("found %d mismatching points", mismatches)
			}
			log.Print("All points match")
		}
		return nil
	})
}

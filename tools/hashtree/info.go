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
	"errors"
	"fmt"
	"os"

	"github.com/Hanan-ElNaghy/DGtal/image"
	"github.com/jayloop/table"
	"github.com/urfave/cli/v2"
)

var listFlag = cli.BoolFlag{
	Name:  "list",
	Usage: "lists the predefined configurations",
}

var infoCommand = cli.Command{
	Action: getInfo,
	Name:   "info",
	Usage:  "prints the key layout of a configuration and whether it is valid",
	Flags:  append([]cli.Flag{&listFlag}, treeFlags...),
}

func getInfo(ctx *cli.Context) error {
	if ctx.Bool(listFlag.Name) {
		t := table.New("NAME", "KEY BITS", "MAX DEPTH", "VARIABLE DEPTH")
		for _, name := range image.GetConfigNames() {
			config, _ := image.GetConfigByName(name)
			t.Row(config.Name, config.KeyBitWidth, config.MaxDepth, config.VariableDepth)
		}
		t.Print(os.Stdout)
		return nil
	}

	params, err := parseTreeParameters(ctx)
	if err != nil {
		return err
	}
	config := params.config
	layout := config.Layout(params.domain.Dim())

	t := table.New("NAME", "VALUE")
	t.Row("configuration", config.Name)
	t.Row("domain", params.domain.String())
	t.Row("domain points", params.domain.Size().String())
	t.Row("max depth", config.MaxDepth)
	t.Row("variable depth", config.VariableDepth)
	t.Row("key type", keyTypeName(config.KeyBitWidth))
	t.Row("key bits", config.KeyBitWidth)
	t.Row("morton code bits", layout.CodeWidth())
	t.Row("depth bits", layout.DepthWidth())
	t.Print(os.Stdout)

	tree, err := createTree(params)
	if err != nil {
		if errors.Is(err, image.ErrConfiguration) {
			fmt.Printf("Configuration is invalid:\n%v\n", err)
			return nil
		}
		return err
	}
	fmt.Printf("Configuration is valid: %s\n", tree.Describe())
	return tree.Close()
}

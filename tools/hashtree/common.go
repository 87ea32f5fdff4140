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
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"runtime/pprof"
	"strings"

	"github.com/Hanan-ElNaghy/DGtal/backend/keys"
	"github.com/Hanan-ElNaghy/DGtal/backend/nodestore"
	"github.com/Hanan-ElNaghy/DGtal/backend/nodestore/cache"
	"github.com/Hanan-ElNaghy/DGtal/backend/nodestore/ldb"
	"github.com/Hanan-ElNaghy/DGtal/backend/nodestore/linearhash"
	"github.com/Hanan-ElNaghy/DGtal/backend/nodestore/memory"
	"github.com/Hanan-ElNaghy/DGtal/common"
	"github.com/Hanan-ElNaghy/DGtal/common/interrupt"
	"github.com/Hanan-ElNaghy/DGtal/common/space"
	"github.com/Hanan-ElNaghy/DGtal/image"
	"github.com/holiman/uint256"
	"github.com/urfave/cli/v2"
)

// Values stored by the tool.
type value = int64

var valueSerializer = common.IntegerSerializer[value]{}

var (
	configFlag = cli.StringFlag{
		Name:  "config",
		Usage: "predefined configuration, one of " + strings.Join(image.GetConfigNames(), ", "),
	}
	dimensionFlag = cli.IntFlag{
		Name:  "dim",
		Usage: "the number of axes of the domain",
		Value: 2,
	}
	originFlag = cli.Int64Flag{
		Name:  "origin",
		Usage: "the lower bound of every axis of the domain",
		Value: 0,
	}
	sizeFlag = cli.Int64Flag{
		Name:  "size",
		Usage: "the number of points along every axis of the domain",
		Value: 256,
	}
	depthFlag = cli.IntFlag{
		Name:  "depth",
		Usage: "the maximal subdivision depth",
		Value: 3,
	}
	keyWidthFlag = cli.IntFlag{
		Name:  "key-width",
		Usage: "the number of bits of hash keys, 0 for the minimum required",
	}
	variableDepthFlag = cli.BoolFlag{
		Name:  "variable-depth",
		Usage: "store the cell depth in the hash keys",
	}
	storeFlag = cli.StringFlag{
		Name:  "store",
		Usage: "the node store, one of linearhash, memory, ldb, cached",
		Value: "linearhash",
	}
	cacheSizeFlag = cli.IntFlag{
		Name:  "cache-size",
		Usage: "the number of records cached by the cached store",
		Value: 1024,
	}
	patternFlag = cli.StringFlag{
		Name:  "pattern",
		Usage: "the fill pattern, one of " + strings.Join(patternNames, ", "),
		Value: "cubic",
	}
	pointsFlag = cli.IntFlag{
		Name:  "points",
		Usage: "the number of points written by the random and clustered patterns",
		Value: 1000,
	}
	seedFlag = cli.Int64Flag{
		Name:  "seed",
		Usage: "the seed of the random pattern",
		Value: 1,
	}
	cpuProfileFlag = cli.StringFlag{
		Name:  "cpuprofile",
		Usage: "sets the target file for storing CPU profiles to",
	}
)

var treeFlags = []cli.Flag{
	&configFlag,
	&dimensionFlag,
	&originFlag,
	&sizeFlag,
	&depthFlag,
	&keyWidthFlag,
	&variableDepthFlag,
	&storeFlag,
	&cacheSizeFlag,
}

var fillFlags = []cli.Flag{
	&patternFlag,
	&pointsFlag,
	&seedFlag,
}

// treeParameters collects everything needed to create a tree.
type treeParameters struct {
	config    image.Config
	domain    space.Domain
	store     string
	cacheSize int
}

func parseTreeParameters(ctx *cli.Context) (treeParameters, error) {
	var res treeParameters
	config := image.Config{
		Name:     "custom",
		MaxDepth: ctx.Int(depthFlag.Name),
	}
	if name := ctx.String(configFlag.Name); name != "" {
		preset, found := image.GetConfigByName(name)
		if !found {
			return res, fmt.Errorf("unknown configuration %q, supported: %v", name, image.GetConfigNames())
		}
		config = preset
		if ctx.IsSet(depthFlag.Name) {
			config.MaxDepth = ctx.Int(depthFlag.Name)
		}
	}
	if ctx.IsSet(keyWidthFlag.Name) || config.KeyBitWidth == 0 {
		config.KeyBitWidth = ctx.Int(keyWidthFlag.Name)
	}
	if ctx.IsSet(variableDepthFlag.Name) {
		config.VariableDepth = ctx.Bool(variableDepthFlag.Name)
	}

	dim := ctx.Int(dimensionFlag.Name)
	size := ctx.Int64(sizeFlag.Name)
	if dim < 1 || size < 1 {
		return res, fmt.Errorf("dimension and size must be positive, got %d and %d", dim, size)
	}
	origin := ctx.Int64(originFlag.Name)
	upper := origin + size - 1
	if upper < origin {
		return res, fmt.Errorf("domain of size %d starting at %d overflows", size, origin)
	}
	domain, err := space.NewDomain(space.Diagonal(dim, origin), space.Diagonal(dim, upper))
	if err != nil {
		return res, err
	}
	if config.KeyBitWidth == 0 {
		config.KeyBitWidth = max(config.Layout(dim).Width(), 1)
	}

	res.config = config
	res.domain = domain
	res.store = ctx.String(storeFlag.Name)
	res.cacheSize = ctx.Int(cacheSizeFlag.Name)
	return res, nil
}

// valueTree is the part of image.HashTree used by the tool, independent of
// the key type.
type valueTree interface {
	SetValue(space.Point, value) error
	GetValue(space.Point) (value, error)
	VisitCells(func(image.Cell[value]) bool) error
	GetStateHash(common.Serializer[value]) (common.Hash, error)
	Describe() string
	Size() int
	Domain() space.Domain
	GetMemoryFootprint() *common.MemoryFootprint
	Close() error
}

// keyTypeName names the narrowest key type holding keys of the given width.
func keyTypeName(keyBitWidth int) string {
	switch {
	case keyBitWidth <= 8:
		return "uint8"
	case keyBitWidth <= 16:
		return "uint16"
	case keyBitWidth <= 32:
		return "uint32"
	case keyBitWidth <= 64:
		return "uint64"
	default:
		return "uint256"
	}
}

// createTree creates an empty tree using the narrowest key type holding
// keys of the configured width.
func createTree(params treeParameters) (valueTree, error) {
	switch keyTypeName(params.config.KeyBitWidth) {
	case "uint8":
		return openTree[uint8](keys.Uint[uint8]{}, params)
	case "uint16":
		return openTree[uint16](keys.Uint[uint16]{}, params)
	case "uint32":
		return openTree[uint32](keys.Uint[uint32]{}, params)
	case "uint64":
		return openTree[uint64](keys.Uint[uint64]{}, params)
	default:
		return openTree[uint256.Int](keys.Uint256{}, params)
	}
}

func openTree[K comparable](codec keys.KeyCodec[K], params treeParameters) (valueTree, error) {
	if err := image.Validate(params.config, codec, params.domain); err != nil {
		return nil, err
	}
	store, err := newStore[K](codec, params.store, params.cacheSize)
	if err != nil {
		return nil, err
	}
	tree, err := image.NewWithStore[value](codec, params.config, 0, params.domain, store)
	if err != nil {
		return nil, errors.Join(err, store.Close())
	}
	return tree, nil
}

func newStore[K comparable](codec keys.KeyCodec[K], kind string, cacheSize int) (nodestore.NodeStore[K, nodestore.Node[value]], error) {
	switch kind {
	case "linearhash":
		return linearhash.NewStore[K, nodestore.Node[value]](codec, codec), nil
	case "memory":
		return memory.NewStore[K, nodestore.Node[value]](codec), nil
	case "ldb":
		store, err := ldb.NewStore[K, nodestore.Node[value]](codec, nodestore.NodeSerializer[value]{Values: valueSerializer})
		if err != nil {
			return nil, err
		}
		return store, nil
	case "cached":
		return cache.NewStore[K, nodestore.Node[value]](memory.NewStore[K, nodestore.Node[value]](codec), cacheSize), nil
	}
	return nil, fmt.Errorf("unknown store %q, supported: linearhash, memory, ldb, cached", kind)
}

// withTree creates a tree from the command line flags, runs the action and
// closes the tree.
func withTree(ctx *cli.Context, action func(valueTree) error) (err error) {
	params, err := parseTreeParameters(ctx)
	if err != nil {
		return err
	}
	tree, err := createTree(params)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, tree.Close())
	}()
	return action(tree)
}

var patternNames = []string{"cubic", "checker", "random", "clustered"}

// maxPatternPoints limits the domains the dense patterns iterate over.
const maxPatternPoints = 1 << 24

// cubicValue is the value of the cubic pattern at a point. It compares the
// difference of the cubed offsets of the first two axes from the center of
// the domain with the cubes of an eighth and a quarter of the domain size.
func cubicValue(domain space.Domain, p space.Point) (value, bool) {
	offset := func(axis int) int64 {
		if axis >= len(p) {
			return 0
		}
		return p[axis] - (domain.LowerAt(axis) + int64(domain.Extent(axis)/2))
	}
	x, y := offset(0), offset(1)
	inner := int64(domain.Extent(0) / 8)
	outer := int64(domain.Extent(0) / 4)
	f := x*x*x - y*y*y
	if f < inner*inner*inner {
		return 30, true
	}
	if f < outer*outer*outer {
		return 10, true
	}
	return 0, false
}

func checkerValue(domain space.Domain, p space.Point) (value, bool) {
	var sum int64
	for axis := range p {
		sum += p[axis] - domain.LowerAt(axis)
	}
	if sum%2 != 0 {
		return 0, false
	}
	return 1, true
}

// fillTree writes the pattern into the tree and returns the expected content
// as a function resolving every point of the domain. It stops with
// interrupt.ErrCanceled once the context is cancelled.
func fillTree(ctx context.Context, tree valueTree, pattern string, points int, seed int64, log *Log) (func(space.Point) value, error) {
	domain := tree.Domain()
	var rule func(space.Domain, space.Point) (value, bool)
	switch pattern {
	case "cubic":
		rule = cubicValue
	case "checker":
		rule = checkerValue
	case "random":
		return fillRandom(ctx, tree, common.Uniform, points, seed, log)
	case "clustered":
		return fillRandom(ctx, tree, common.Exponential, points, seed, log)
	default:
		return nil, fmt.Errorf("unknown pattern %q, supported: %v", pattern, patternNames)
	}
	if size := domain.Size(); !size.IsInt64() || size.Int64() > maxPatternPoints {
		return nil, fmt.Errorf("domain of %v points too large for pattern %s, use the random pattern", size, pattern)
	}

	progress := log.NewProgressTracker("visited %d points, %.2f points/s", 1<<20)
	var err error
	domain.ForEach(func(p space.Point) bool {
		if interrupt.IsCancelled(ctx) {
			err = interrupt.ErrCanceled
			return false
		}
		if v, ok := rule(domain, p); ok {
			err = tree.SetValue(p, v)
		}
		progress.Step(1)
		return err == nil
	})
	if err != nil {
		return nil, err
	}
	return func(p space.Point) value {
		res, _ := rule(domain, p)
		return res
	}, nil
}

// fillFromFlags fills the tree with the pattern selected by the command line
// flags. The fill stops early on SIGINT or SIGTERM.
func fillFromFlags(ctx *cli.Context, tree valueTree, log *Log) (func(space.Point) value, error) {
	fillCtx, release := interrupt.Register(ctx.Context)
	defer release()
	return fillTree(fillCtx, tree, ctx.String(patternFlag.Name), ctx.Int(pointsFlag.Name), ctx.Int64(seedFlag.Name), log)
}

// fillRandom writes random values to points whose coordinates follow the
// distribution, relative to the lower corner of the domain.
func fillRandom(ctx context.Context, tree valueTree, distribution common.Distribution, points int, seed int64, log *Log) (func(space.Point) value, error) {
	domain := tree.Domain()
	random := rand.New(rand.NewSource(seed))
	samplers := make([]func() uint64, domain.Dim())
	for axis := range samplers {
		samplers[axis] = distribution.Sampler(domain.Extent(axis), random)
	}
	written := map[string]value{}
	progress := log.NewProgressTracker("written %d points, %.2f points/s", 1<<16)
	for i := 0; i < points; i++ {
		if interrupt.IsCancelled(ctx) {
			return nil, interrupt.ErrCanceled
		}
		p := make(space.Point, domain.Dim())
		for axis := range p {
			p[axis] = domain.LowerAt(axis) + int64(samplers[axis]())
		}
		v := random.Int63()
		if err := tree.SetValue(p, v); err != nil {
			return nil, err
		}
		written[p.String()] = v
		progress.Step(1)
	}
	return func(p space.Point) value {
		return written[p.String()]
	}, nil
}

// verifyTree checks the content of the tree against the expected values.
// The check is only exact if every cell holds a single point.
func verifyTree(tree valueTree, expected func(space.Point) value, log *Log) (mismatches int, err error) {
	domain := tree.Domain()
	if size := domain.Size(); !size.IsInt64() || size.Int64() > maxPatternPoints {
		return 0, fmt.Errorf("domain of %v points too large for verification", size)
	}
	progress := log.NewProgressTracker("verified %d points, %.2f points/s", 1<<20)
	domain.ForEach(func(p space.Point) bool {
		var got value
		if got, err = tree.GetValue(p); err != nil {
			return false
		}
		if want := expected(p); got != want {
			if mismatches < 10 {
				log.Printf("mismatch at %v: got %d, wanted %d", p, got, want)
			}
			mismatches++
		}
		progress.Step(1)
		return true
	})
	return mismatches, err
}

func startCPUProfile(profileName string) error {
	f, err := os.Create(profileName)
	if err != nil {
		return fmt.Errorf("could not create CPU profile: %s", err)
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		return fmt.Errorf("could not start CPU profile: %s", err)
	}
	return nil
}

func stopCPUProfile() {
	pprof.StopCPUProfile()
}

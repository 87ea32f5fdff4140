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

import (
	"errors"
	"fmt"

	"github.com/Hanan-ElNaghy/DGtal/backend/hashkey"
	"github.com/Hanan-ElNaghy/DGtal/backend/keys"
	"github.com/Hanan-ElNaghy/DGtal/backend/morton"
	"github.com/Hanan-ElNaghy/DGtal/common/space"
)

// Config describes the subdivision and key layout of a HashTree.
type Config struct {
	// A descriptive name for this configuration. It has no effect except for
	// logging and debugging purposes.
	Name string

	// The number of bits of the hash keys. It must not exceed the width of
	// the key type and must be large enough to hold the Morton code of the
	// deepest cells, plus the depth bits if VariableDepth is enabled.
	KeyBitWidth int

	// The number of halving steps from the domain to the cells values are
	// stored in. Each step adds one bit per axis to the Morton code.
	MaxDepth int

	// If enabled, values may be stored in cells of any depth up to MaxDepth
	// and the depth is folded into the hash key. Reads resolve to the
	// deepest populated cell containing the point. If disabled, all cells
	// are at MaxDepth.
	VariableDepth bool
}

var SmallConfig = Config{
	Name:        "Small",
	KeyBitWidth: 8,
	MaxDepth:    3,
}

var Grid256Config = Config{
	Name:        "Grid256",
	KeyBitWidth: 16,
	MaxDepth:    8, // single point cells for a 256x256 domain
}

var Adaptive256Config = Config{
	Name:          "Adaptive256",
	KeyBitWidth:   32,
	MaxDepth:      8,
	VariableDepth: true,
}

var DeepConfig = Config{
	Name:        "Deep",
	KeyBitWidth: 256,
	MaxDepth:    80,
}

var allConfigs = []Config{
	SmallConfig, Grid256Config, Adaptive256Config, DeepConfig,
}

// GetConfigByName returns one of the predefined configurations.
func GetConfigByName(name string) (Config, bool) {
	for _, config := range allConfigs {
		if config.Name == name {
			return config, true
		}
	}
	return Config{}, false
}

// GetConfigNames returns the names of all predefined configurations.
func GetConfigNames() []string {
	res := make([]string, 0, len(allConfigs))
	for _, config := range allConfigs {
		res = append(res, config.Name)
	}
	return res
}

// Layout returns the key layout of this configuration in the given dimension.
func (c Config) Layout(dim int) hashkey.Layout {
	return hashkey.Layout{
		Dim:           dim,
		MaxDepth:      c.MaxDepth,
		VariableDepth: c.VariableDepth,
	}
}

// Validate checks the configuration for a domain and a key type. All
// violated rules are reported, each wrapping ErrConfiguration.
func Validate[K comparable](config Config, codec keys.KeyCodec[K], domain space.Domain) error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: %s", ErrConfiguration, fmt.Sprintf(format, args...)))
	}

	dim := domain.Dim()
	if domain.IsEmpty() {
		fail("domain %v is empty", domain)
	}
	if dim > morton.MaxDim {
		fail("dimension %d exceeds the maximum of %d", dim, morton.MaxDim)
	}
	if config.MaxDepth < 0 {
		fail("maximal depth must not be negative, got %d", config.MaxDepth)
	}
	if config.KeyBitWidth < 1 {
		fail("key width must be at least 1 bit, got %d", config.KeyBitWidth)
	}
	if config.KeyBitWidth > codec.Width() {
		fail("key width of %d bits exceeds the %d bits of the key type", config.KeyBitWidth, codec.Width())
	}
	// Bounds MaxDepth*dim before any width is computed from it.
	if dim >= 1 && dim <= morton.MaxDim && config.MaxDepth > codec.Width()/dim {
		fail("maximal depth %d in dimension %d needs more than the %d bits of the key type for Morton codes",
			config.MaxDepth, dim, codec.Width())
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	layout := config.Layout(dim)
	if layout.Width() > config.KeyBitWidth {
		if config.VariableDepth {
			fail("keys need %d bits (%d code bits, %d depth bits) but the key width is %d bits",
				layout.Width(), layout.CodeWidth(), layout.DepthWidth(), config.KeyBitWidth)
		} else {
			fail("Morton codes need %d bits but the key width is %d bits", layout.CodeWidth(), config.KeyBitWidth)
		}
	}
	return errors.Join(errs...)
}

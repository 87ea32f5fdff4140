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
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// MemoryFootprint describes the memory consumption of a container or one of
// its components. Footprints form a tree; shared components are only counted
// once by Total.
type MemoryFootprint struct {
	value    uintptr
	children map[string]*MemoryFootprint
}

// NewMemoryFootprint creates a footprint for a component consuming the given
// number of bytes, not counting its children.
func NewMemoryFootprint(value uintptr) *MemoryFootprint {
	return &MemoryFootprint{
		value:    value,
		children: make(map[string]*MemoryFootprint),
	}
}

// AddChild attaches the footprint of a sub-component under the given name.
func (mf *MemoryFootprint) AddChild(name string, child *MemoryFootprint) {
	mf.children[name] = child
}

// GetChild returns the sub-component footprint registered under the name, or nil.
func (mf *MemoryFootprint) GetChild(name string) *MemoryFootprint {
	return mf.children[name]
}

// Value provides the amount of bytes consumed by the component excluding its children.
func (mf *MemoryFootprint) Value() uintptr {
	return mf.value
}

// Total provides the amount of bytes consumed by the component including all its children.
func (mf *MemoryFootprint) Total() uintptr {
	return mf.total(make(map[*MemoryFootprint]bool))
}

func (mf *MemoryFootprint) total(seen map[*MemoryFootprint]bool) uintptr {
	if mf == nil || seen[mf] {
		return 0
	}
	seen[mf] = true
	total := mf.value
	for _, child := range mf.children {
		total += child.total(seen)
	}
	return total
}

// String renders the footprint as a tree, one line per component, children
// sorted by name.
func (mf *MemoryFootprint) String() string {
	var sb strings.Builder
	mf.write(&sb, ".")
	return sb.String()
}

func (mf *MemoryFootprint) write(sb *strings.Builder, path string) {
	sb.WriteString(FormatMemory(mf.Total()))
	sb.WriteRune(' ')
	sb.WriteString(path)
	sb.WriteRune('\n')
	names := maps.Keys(mf.children)
	slices.Sort(names)
	for _, name := range names {
		if child := mf.children[name]; child != nil {
			child.write(sb, path+"/"+name)
		}
	}
}

// FormatMemory prints a byte count using binary unit prefixes, e.g. "1.5 KB".
func FormatMemory(bytes uintptr) string {
	const unit = 1024
	const prefixes = "KMGTPE"
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := uintptr(unit), 0
	for n := bytes / unit; n >= unit && exp+1 < len(prefixes); n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), prefixes[exp])
}

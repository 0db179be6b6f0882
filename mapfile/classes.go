package mapfile

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/jumppoint/grid"
)

// Traversal classes carried by map glyphs.
const (
	ClassTree  grid.Mask = 1 << 0
	ClassSwamp grid.Mask = 1 << 1
	ClassWater grid.Mask = 1 << 2
)

var classes = map[string]grid.Mask{
	"tree":  ClassTree,
	"swamp": ClassSwamp,
	"water": ClassWater,
}

// ClassMask ORs the named classes into a query mask. Names are
// case-insensitive; empty names are ignored.
func ClassMask(names ...string) (grid.Mask, error) {
	var m grid.Mask
	for _, name := range names {
		key := strings.ToLower(strings.TrimSpace(name))
		if key == "" {
			continue
		}
		c, ok := classes[key]
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrUnknownClass, name)
		}
		m |= c
	}
	return m, nil
}

// ClassNames returns the known class names, sorted.
func ClassNames() []string {
	out := make([]string, 0, len(classes))
	for name := range classes {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// glyphMask decodes one map glyph.
func glyphMask(r byte) (grid.Mask, bool) {
	switch r {
	case '.', 'G':
		return 0, true
	case '@', 'O':
		return grid.Solid, true
	case 'T':
		return ClassTree, true
	case 'S':
		return ClassSwamp, true
	case 'W':
		return ClassWater, true
	}
	return 0, false
}

// maskGlyph encodes a cell mask; the canonical glyph is used when several exist.
func maskGlyph(m grid.Mask) (byte, bool) {
	switch m {
	case 0:
		return '.', true
	case grid.Solid:
		return '@', true
	case ClassTree:
		return 'T', true
	case ClassSwamp:
		return 'S', true
	case ClassWater:
		return 'W', true
	}
	return 0, false
}

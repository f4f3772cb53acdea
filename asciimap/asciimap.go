// Package asciimap parses character grids into the flattened row-major
// weight slices that gridmap construction expects.
//
// Symbols:
//
//   - '.'        — passable, terrain weight 1
//   - '#' or 'x' — impassable (weight −1)
//   - '1'…'9'    — passable with that terrain weight
//
// Lines are rows; blank leading and trailing lines are ignored; every
// remaining line must have the same length. Input is ASCII only.
//
// Errors:
//
//   - ErrEmptyMap  — no rows remain after trimming blank lines.
//   - ErrRaggedMap — rows of differing lengths.
//   - ErrBadSymbol — a character outside the symbol set.
package asciimap

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for asciimap parsing.
var (
	// ErrEmptyMap indicates the input contains no map rows.
	ErrEmptyMap = errors.New("asciimap: map has no rows")
	// ErrRaggedMap indicates rows of differing lengths.
	ErrRaggedMap = errors.New("asciimap: all rows must have the same length")
	// ErrBadSymbol indicates an unrecognized map character.
	ErrBadSymbol = errors.New("asciimap: unrecognized map symbol")
)

// Parse decodes a character grid into width, height, and a row-major
// weight slice suitable for gridmap.NewGridMap.
// Complexity: O(W×H).
func Parse(s string) (width, height int, weights []float64, err error) {
	lines := strings.Split(s, "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 || len(lines[0]) == 0 {
		return 0, 0, nil, ErrEmptyMap
	}

	width, height = len(lines[0]), len(lines)
	weights = make([]float64, 0, width*height)
	for y, line := range lines {
		if len(line) != width {
			return 0, 0, nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrRaggedMap, y, len(line), width)
		}
		for x := 0; x < width; x++ {
			switch ch := line[x]; {
			case ch == '.':
				weights = append(weights, 1)
			case ch == '#' || ch == 'x':
				weights = append(weights, -1)
			case ch >= '1' && ch <= '9':
				weights = append(weights, float64(ch-'0'))
			default:
				return 0, 0, nil, fmt.Errorf("%w: %q at (%d,%d)", ErrBadSymbol, ch, x, y)
			}
		}
	}

	return width, height, weights, nil
}

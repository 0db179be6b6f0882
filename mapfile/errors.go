package mapfile

import "errors"

var (
	// ErrBadHeader indicates a missing or malformed map header line.
	ErrBadHeader = errors.New("mapfile: malformed map header")
	// ErrBadRow indicates a map row whose length differs from the declared width,
	// or a missing row.
	ErrBadRow = errors.New("mapfile: malformed map row")
	// ErrBadScenario indicates a malformed scenario line.
	ErrBadScenario = errors.New("mapfile: malformed scenario")
	// ErrUnencodable indicates a cell mask with no glyph.
	ErrUnencodable = errors.New("mapfile: cell mask has no glyph")
	// ErrUnknownClass indicates an unknown traversal class name.
	ErrUnknownClass = errors.New("mapfile: unknown traversal class")
)

package grid

import "errors"

var (
	// ErrEmptyGrid indicates the input 2D slice is empty.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrBadDimensions indicates a non-positive width or height.
	ErrBadDimensions = errors.New("grid: width and height must be positive")
	// ErrBadGlyph indicates an unknown character in a textual grid.
	ErrBadGlyph = errors.New("grid: unknown cell glyph")
)

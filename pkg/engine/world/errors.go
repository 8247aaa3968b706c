package world

import "errors"

var (
	// ErrInvalidDimensions is returned when a grid is requested with an even
	// or too small width or height.
	ErrInvalidDimensions = errors.New("invalid grid dimensions")

	// ErrOutOfBounds is returned by checked cell access outside the grid.
	ErrOutOfBounds = errors.New("position out of bounds")

	// ErrInvalidGrid is returned by Validate when a finished grid breaks
	// the border or start/end rules.
	ErrInvalidGrid = errors.New("invalid grid")
)

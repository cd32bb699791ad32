package model

import "github.com/pkg/errors"

var (
	// ErrInvalidDimensions is returned when a universe is requested with a non-positive width or height
	ErrInvalidDimensions = errors.New("invalid dimensions")

	// ErrOutOfBounds is returned when a coordinate falls outside [0,width)x[0,height)
	ErrOutOfBounds = errors.New("coordinate out of bounds")
)

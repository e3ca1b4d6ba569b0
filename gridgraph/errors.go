package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates the input 2D slice is empty.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrNonPositiveCost indicates a cell cost that is zero, negative, or NaN.
	ErrNonPositiveCost = errors.New("gridgraph: cell costs must be positive")
)

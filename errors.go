package loosequad

import "errors"

var (
	// ErrInvalidWorld is returned when the world side is not a positive finite number.
	ErrInvalidWorld = errors.New("loosequad: world side must be positive")
	// ErrInvalidMinSize is returned when the minimum object side is not positive.
	ErrInvalidMinSize = errors.New("loosequad: minimum object side must be positive")
	// ErrTooDeep is returned when world side / minimum side needs more than MaxDepth levels.
	ErrTooDeep = errors.New("loosequad: pyramid would be too deep")

	ErrItemTooLarge    = errors.New("loosequad: item is larger than the world")
	ErrOutsideWorld    = errors.New("loosequad: item center is outside the world")
	ErrCellMismatch    = errors.New("loosequad: resolved cell does not contain the item center")
	ErrInvalidSize     = errors.New("loosequad: item size is negative or not a number")
	ErrAlreadyInserted = errors.New("loosequad: item is already in a tree")
	ErrNotInserted     = errors.New("loosequad: item is not in this tree")
)

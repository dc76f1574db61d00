package mines

import (
	"errors"
	"fmt"
)

var ErrInvalidArgument = errors.New("invalid argument")

// OutOfRangeError reports a coordinate that lies outside the board.
type OutOfRangeError struct {
	X, Y          int
	Width, Height int
}

// [OutOfRangeError] implements [error]
func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf(
		"point (%d, %d) is out of range for %dx%d board",
		e.X, e.Y, e.Width, e.Height,
	)
}

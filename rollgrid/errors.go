package rollgrid

import "errors"

var (
	ErrZeroSize         = errors.New("rollgrid: size cannot be 0 on any axis")
	ErrSizeTooLarge     = errors.New("rollgrid: size is too large")
	ErrOffsetOutOfRange = errors.New("rollgrid: offset is too close to the coordinate limits")
	ErrOutOfBounds      = errors.New("rollgrid: coordinate out of bounds")
)

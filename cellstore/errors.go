package cellstore

import "errors"

var (
	ErrNotFound         = errors.New("cellstore: object not found")
	ErrBadCellPath      = errors.New("cellstore: path is not a cell path")
	ErrBadGridID        = errors.New("cellstore: path does not carry a valid grid id")
	ErrCoordMismatch    = errors.New("cellstore: stored cell belongs to a different coordinate")
	ErrStoreNotProvided = errors.New("cellstore: an object store was required but not provided")
)

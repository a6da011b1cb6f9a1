package fixedarray

import (
	"errors"
	"math"
)

const (
	// MaxCapacity is the largest number of slots an Array can hold. Indices
	// must remain representable as a signed 32 bit integer.
	MaxCapacity = math.MaxInt32
)

var (
	ErrZeroCapacity     = errors.New("fixedarray: capacity cannot be 0")
	ErrCapacityTooLarge = errors.New("fixedarray: capacity is too large")
	ErrIndexOutOfRange  = errors.New("fixedarray: index out of range")
	ErrSlotVacant       = errors.New("fixedarray: slot is vacant")
	ErrSlotOccupied     = errors.New("fixedarray: slot is occupied")
	ErrSameArray        = errors.New("fixedarray: transplant source and destination are the same array")
)

// Dropper is implemented by values that need teardown when the array discards
// them.
type Dropper interface {
	Drop()
}

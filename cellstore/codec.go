package cellstore

import (
	dtcbor "github.com/datatrails/go-datatrails-common/cbor"
)

// NewCellCodec returns the codec cells are stored with. Encoding is
// deterministic, so an unchanged cell always produces the same bytes.
func NewCellCodec() (dtcbor.CBORCodec, error) {
	codec, err := dtcbor.NewCBORCodec(
		dtcbor.NewDeterministicEncOpts(),
		dtcbor.NewDeterministicDecOpts(),
	)
	if err != nil {
		return dtcbor.CBORCodec{}, err
	}
	return codec, nil
}

// cellRecord is the stored form of a cell. The coordinate is recorded so a
// cell found under the wrong path is detected rather than silently loaded.
type cellRecord[T any] struct {
	Coord []int32 `cbor:"1,keyasint"`
	Value T       `cbor:"2,keyasint"`
}

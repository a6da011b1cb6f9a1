package cellstore

import (
	"github.com/datatrails/go-datatrails-common/logger"

	dtcbor "github.com/datatrails/go-datatrails-common/cbor"
)

type Options struct {
	Log       logger.Logger
	CBORCodec *dtcbor.CBORCodec
}

// Option is a generic option type used for cell stores. Implementations type
// assert to the Options target record and ignore the option if that fails.
type Option func(any)

func WithLogger(log logger.Logger) Option {
	return func(opts any) {
		if o, ok := opts.(*Options); ok {
			o.Log = log
		}
	}
}

func WithCBORCodec(codec *dtcbor.CBORCodec) Option {
	return func(opts any) {
		if o, ok := opts.(*Options); ok {
			o.CBORCodec = codec
		}
	}
}

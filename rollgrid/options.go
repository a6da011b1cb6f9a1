package rollgrid

import "github.com/datatrails/go-datatrails-common/logger"

type Options struct {
	// Log receives a debug summary of each mutating operation. Nothing is
	// logged when it is nil.
	Log logger.Logger
}

// Option is a generic option type. Implementations type assert to the
// Options target record and ignore the option if that fails.
type Option func(any)

func WithLogger(log logger.Logger) Option {
	return func(opts any) {
		if o, ok := opts.(*Options); ok {
			o.Log = log
		}
	}
}

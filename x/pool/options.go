package pool

import (
	"github.com/NKaty/cpp-simple-vector/x/instrument"
)

const defaultPoolSize = 4096

// Options provide a set of options for a value pool.
type Options struct {
	instrumentOpts      *instrument.Options
	size                int
	refillLowWatermark  float64
	refillHighWatermark float64
}

// NewOptions create a new set of pool options.
func NewOptions() *Options {
	return &Options{
		instrumentOpts: instrument.NewOptions(),
		size:           defaultPoolSize,
	}
}

// SetInstrumentOptions sets the instrument options.
func (o *Options) SetInstrumentOptions(v *instrument.Options) *Options {
	opts := *o
	opts.instrumentOpts = v
	return &opts
}

// InstrumentOptions returns the instrument options.
func (o *Options) InstrumentOptions() *instrument.Options {
	return o.instrumentOpts
}

// SetSize sets the pool size.
func (o *Options) SetSize(v int) *Options {
	opts := *o
	opts.size = v
	return &opts
}

// Size returns the pool size.
func (o *Options) Size() int { return o.size }

// SetRefillLowWatermark sets the low watermark for refilling the pool.
func (o *Options) SetRefillLowWatermark(v float64) *Options {
	opts := *o
	opts.refillLowWatermark = v
	return &opts
}

// RefillLowWatermark returns the low watermark for refilling the pool.
func (o *Options) RefillLowWatermark() float64 { return o.refillLowWatermark }

// SetRefillHighWatermark sets the high watermark for stop refilling the pool.
func (o *Options) SetRefillHighWatermark(v float64) *Options {
	opts := *o
	opts.refillHighWatermark = v
	return &opts
}

// RefillHighWatermark returns the high watermark for stop refilling the pool.
func (o *Options) RefillHighWatermark() float64 { return o.refillHighWatermark }

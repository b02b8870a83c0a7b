package pool

import (
	"gopkg.in/validator.v2"

	"github.com/NKaty/cpp-simple-vector/x/instrument"
)

// WatermarkConfiguration contains watermark configuration for pools.
type WatermarkConfiguration struct {
	// The low watermark to start refilling the pool, if zero none.
	RefillLowWatermark float64 `yaml:"low" validate:"min=0.0,max=1.0"`

	// The high watermark to stop refilling the pool, if zero none.
	RefillHighWatermark float64 `yaml:"high" validate:"min=0.0,max=1.0"`
}

// Validate validates the watermark configuration.
func (c *WatermarkConfiguration) Validate() error {
	return validator.Validate(c)
}

// Configuration contains pool configuration.
type Configuration struct {
	// The size of the pool.
	Size *int `yaml:"size"`

	// The watermark configuration.
	Watermark WatermarkConfiguration `yaml:"watermark"`
}

// NewPoolOptions creates a new set of pool options.
func (c *Configuration) NewPoolOptions(
	instrumentOpts *instrument.Options,
) *Options {
	if instrumentOpts == nil {
		instrumentOpts = instrument.NewOptions()
	}
	opts := NewOptions().
		SetInstrumentOptions(instrumentOpts).
		SetRefillLowWatermark(c.Watermark.RefillLowWatermark).
		SetRefillHighWatermark(c.Watermark.RefillHighWatermark)
	if c.Size != nil {
		opts = opts.SetSize(*c.Size)
	}
	return opts
}

// BucketConfiguration contains configuration for a pool bucket.
type BucketConfiguration struct {
	// The count of the items in the bucket.
	Count int `yaml:"count" validate:"min=0"`

	// The capacity of each item in the bucket.
	Capacity int `yaml:"capacity" validate:"min=0"`
}

// NewBucket creates a new bucket.
func (c *BucketConfiguration) NewBucket() Bucket {
	return Bucket{
		Capacity: c.Capacity,
		Count:    c.Count,
	}
}

// BucketizedConfiguration contains configuration for bucketized pools.
type BucketizedConfiguration struct {
	// The pool bucket configuration.
	Buckets []BucketConfiguration `yaml:"buckets"`

	// The watermark configuration.
	Watermark WatermarkConfiguration `yaml:"watermark"`
}

// Validate validates the bucketized pool configuration.
func (c *BucketizedConfiguration) Validate() error {
	return validator.Validate(c)
}

// NewPoolOptions creates a new set of pool options.
func (c *BucketizedConfiguration) NewPoolOptions(
	instrumentOpts *instrument.Options,
) *Options {
	if instrumentOpts == nil {
		instrumentOpts = instrument.NewOptions()
	}
	return NewOptions().
		SetInstrumentOptions(instrumentOpts).
		SetRefillLowWatermark(c.Watermark.RefillLowWatermark).
		SetRefillHighWatermark(c.Watermark.RefillHighWatermark)
}

// NewBuckets create a new list of buckets.
func (c *BucketizedConfiguration) NewBuckets() []Bucket {
	buckets := make([]Bucket, 0, len(c.Buckets))
	for _, bconfig := range c.Buckets {
		bucket := bconfig.NewBucket()
		buckets = append(buckets, bucket)
	}
	return buckets
}

// Package instrument bundles the logger and metrics scope handed to
// components that emit telemetry.
package instrument

import (
	"github.com/uber-go/tally"
	"go.uber.org/zap"
)

// Options provide a set of instrument options.
type Options struct {
	logger       *zap.Logger
	metricsScope tally.Scope
}

// NewOptions creates a new set of instrument options.
func NewOptions() *Options {
	return &Options{
		logger:       zap.NewNop(),
		metricsScope: tally.NoopScope,
	}
}

// SetLogger sets the logger.
func (o *Options) SetLogger(v *zap.Logger) *Options {
	opts := *o
	opts.logger = v
	return &opts
}

// Logger returns the logger.
func (o *Options) Logger() *zap.Logger { return o.logger }

// SetMetricsScope sets the metrics scope.
func (o *Options) SetMetricsScope(v tally.Scope) *Options {
	opts := *o
	opts.metricsScope = v
	return &opts
}

// MetricsScope returns the metrics scope.
func (o *Options) MetricsScope() tally.Scope { return o.metricsScope }

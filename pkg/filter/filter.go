// Package filter provides O(1)-memory streaming smoothers for fixed-point
// temperature values: an exponential moving average and a recursive
// approximation of a simple moving average. Both carry a single scalar of
// state and are meant to be owned by one reader
package filter

import "github.com/fako1024/ntctherm/pkg/sensor"

// Option denotes a functional option applicable to any filter in this package
type Option func(*config)

type config struct {
	logger sensor.Logger
}

// WithLogger sets the logger used for configuration fallback warnings
func WithLogger(logger sensor.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

func newConfig(options []Option) config {
	c := config{logger: &sensor.NullLogger{}}
	for _, option := range options {
		option(&c)
	}
	return c
}

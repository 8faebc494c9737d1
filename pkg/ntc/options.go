package ntc

import "github.com/fako1024/ntctherm/pkg/sensor"

// WithTable sets a custom calibration table
func WithTable(table Table) func(*Converter) {
	return func(c *Converter) {
		c.table = table
	}
}

// WithLogger sets the logger used for diagnostics
func WithLogger(logger sensor.Logger) func(*Converter) {
	return func(c *Converter) {
		if logger != nil {
			c.logger = logger
		}
	}
}

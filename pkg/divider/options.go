package divider

import "github.com/fako1024/ntctherm/pkg/sensor"

// WithPullupOhms sets the fixed divider resistor value in Ω
func WithPullupOhms(pullupOhms uint16) func(*Converter) {
	return func(c *Converter) {
		c.pullupOhms = pullupOhms
	}
}

// WithADCBits sets the ADC resolution in bits, determining the full-scale
// code. Resolutions outside [1, 16] fall back to the default with a warning
func WithADCBits(bits uint8) func(*Converter) {
	return func(c *Converter) {
		if bits == 0 || bits > maxADCBits {
			c.logger.Warnf("invalid ADC resolution %d bit, falling back to default %d bit", bits, DefaultADCBits)
			bits = DefaultADCBits
		}
		c.maxCode = (1 << bits) - 1
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

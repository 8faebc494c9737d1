// Package divider converts raw ADC codes of a pullup voltage divider into the
// NTC leg resistance in 0.1 Ω resolution, using integer arithmetic only
package divider

import "github.com/fako1024/ntctherm/pkg/sensor"

const (

	// DefaultPullupOhms denotes the default fixed divider resistor of 12.7 kΩ
	DefaultPullupOhms = 12700

	// DefaultADCBits denotes the default ADC resolution of 10 bit (full scale 1023)
	DefaultADCBits = 10

	maxADCBits = 16
)

// Converter denotes a voltage divider resistance converter for the sensing
// circuit V_ref -> pullup -> junction (ADC reads here) -> NTC -> GND. It is a
// pure function of its input, carrying only fixed configuration
type Converter struct {
	pullupOhms uint16
	maxCode    uint16

	logger sensor.Logger
}

// New instantiates a new Converter, executing functional options, if any.
// Invalid configuration (zero pullup, unusable ADC resolution) falls back to
// the defaults with a warning rather than failing
func New(options ...func(*Converter)) *Converter {

	c := &Converter{
		pullupOhms: DefaultPullupOhms,
		maxCode:    (1 << DefaultADCBits) - 1,
		logger:     &sensor.NullLogger{},
	}

	// Execute functional options (if any), see options.go for implementation
	for _, option := range options {
		option(c)
	}

	if c.pullupOhms == 0 {
		c.logger.Warnf("invalid pullup resistor value 0 Ω, falling back to default %d Ω", DefaultPullupOhms)
		c.pullupOhms = DefaultPullupOhms
	}

	return c
}

// ConvertToResistanceX10 converts a raw ADC code into the NTC resistance in
// 0.1 Ω resolution. From the divider relation
//
//	V_junction = V_ref * adcRaw/maxCode = V_ref * R_ntc/(R_ntc + pullup)
//
// follows
//
//	R_ntc_x10 = adcRaw * pullup * 10 / (maxCode - adcRaw)
//
// Codes at or outside (0, maxCode) are physically degenerate for the divider
// (shorted or open leg) and yield the sentinel 0
func (c *Converter) ConvertToResistanceX10(adcRaw uint16) uint32 {

	if adcRaw == 0 || adcRaw >= c.maxCode {
		c.logger.Debugf("ADC code %d outside usable divider range (0, %d)", adcRaw, c.maxCode)
		return 0
	}

	// Widened intermediate: worst case 65534 * 65535 * 10 exceeds 32 bit
	return uint32(uint64(adcRaw) * uint64(c.pullupOhms) * 10 / uint64(c.maxCode-adcRaw))
}

// MaxCode returns the full-scale ADC code the converter is configured for
func (c *Converter) MaxCode() uint16 {
	return c.maxCode
}

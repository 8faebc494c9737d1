// Package ntc maps an NTC thermistor resistance to a calibrated temperature
// via binary search and fixed-point linear interpolation over a lookup table
package ntc

import (
	"fmt"

	"github.com/fako1024/ntctherm/pkg/lut"
	"github.com/fako1024/ntctherm/pkg/sensor"
)

// Converter denotes a lookup-table based resistance to temperature converter.
// It is stateless after construction and never fails at read time: every
// input maps to either a fixed-point temperature or the sentinel
type Converter struct {
	table      Table
	minTempX10 int16
	maxTempX10 int16

	logger sensor.Logger
}

// New instantiates a new Converter, executing functional options, if any. The
// calibration table (DefaultTable unless overridden) is validated once here,
// not per conversion
func New(options ...func(*Converter)) (*Converter, error) {

	c := &Converter{
		table:  DefaultTable,
		logger: &sensor.NullLogger{},
	}

	// Execute functional options (if any), see options.go for implementation
	for _, option := range options {
		option(c)
	}

	if err := c.table.Validate(); err != nil {
		return nil, fmt.Errorf("invalid calibration table: %w", err)
	}
	c.minTempX10, c.maxTempX10 = c.table.TemperatureRange()

	return c, nil
}

// ConvertToTemperatureX10 converts a resistance in 0.1 Ω resolution to a
// temperature in 0.1 °C resolution. A zero resistance yields the sentinel.
// Resistances beyond the calibrated range saturate to the temperature at the
// nearest table edge instead of extrapolating; everything else is
// interpolated between the two bracketing calibration points
func (c *Converter) ConvertToTemperatureX10(resistanceX10 uint32) int16 {

	if resistanceX10 == 0 {
		c.logger.Error("invalid resistance value 0")
		return sensor.InvalidTemperatureX10
	}

	bracket := lut.Search(c.table, resistanceX10, func(e Entry) uint32 { return e.ResistanceX10 }, lut.OrderAuto)

	if bracket.Found {
		c.logger.Debugf("exact calibration match at index %d", bracket.Exact)
		return c.table[bracket.Exact].TemperatureX10
	}

	if bracket.Clamped {
		nearest := c.nearestEdge(resistanceX10, bracket)
		c.logger.Debugf("resistance (x10) %d outside calibrated range, saturating to %d (x10 °C)",
			resistanceX10, nearest.TemperatureX10)
		return nearest.TemperatureX10
	}

	low, high := c.table[bracket.Lower], c.table[bracket.Upper]
	c.logger.Debugf("interpolating resistance (x10) %d between [%d Ω @ %d] and [%d Ω @ %d]",
		resistanceX10, low.ResistanceX10, low.TemperatureX10, high.ResistanceX10, high.TemperatureX10)

	temperatureX10 := lut.Interpolate(resistanceX10,
		low.ResistanceX10, high.ResistanceX10,
		low.TemperatureX10, high.TemperatureX10)

	// Safety net against accumulated rounding: never leave the range spanned
	// by the full table
	return lut.Clamp(temperatureX10, c.minTempX10, c.maxTempX10)
}

////////////////////////////////////////////////////////////////////////////////

func (c *Converter) nearestEdge(resistanceX10 uint32, bracket lut.Bracket) Entry {

	low, high := c.table[bracket.Lower], c.table[bracket.Upper]
	if absDiff(resistanceX10, high.ResistanceX10) < absDiff(resistanceX10, low.ResistanceX10) {
		return high
	}

	return low
}

func absDiff(a, b uint32) uint32 {
	if a > b {
		return a - b
	}
	return b - a
}

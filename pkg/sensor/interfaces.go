package sensor

// Sampler denotes a source of raw ADC codes. Implementations are expected to
// already take care of signal settling, discarding of initial conversions and
// multi-sample averaging; the pipeline treats the returned code as an opaque
// value in [0, full scale]
type Sampler interface {

	// Sample returns the current raw ADC code
	Sample() uint16
}

// ResistanceConverter denotes the capability to convert a raw ADC code into a
// resistance in 0.1 Ω resolution. A return value of 0 signals an invalid /
// degenerate input code
type ResistanceConverter interface {

	// ConvertToResistanceX10 converts a raw ADC code to a resistance scaled
	// by 10 (e.g. 127000 denotes 12.7 kΩ)
	ConvertToResistanceX10(adcRaw uint16) uint32
}

// TemperatureConverter denotes the capability to convert a resistance into a
// temperature in 0.1 °C resolution. The sentinel InvalidTemperatureX10 signals
// an invalid input
type TemperatureConverter interface {

	// ConvertToTemperatureX10 converts a resistance scaled by 10 to a
	// temperature in Celsius scaled by 10 (e.g. 250 denotes 25.0 °C)
	ConvertToTemperatureX10(resistanceX10 uint32) int16
}

// Filter denotes a streaming smoothing filter over fixed-point temperature
// values. Implementations carry their own state and are not safe for
// concurrent use
type Filter interface {

	// Apply feeds a new value into the filter and returns the filtered result
	Apply(value int16) int16
}

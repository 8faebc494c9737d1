package sensor

import "time"

// Unit denotes the unit of the temperature measurement
type Unit string

const (

	// UnitUnknown denotes an unknown / invalid unit
	UnitUnknown = "--"

	// UnitCelsius denotes metric units
	UnitCelsius = "°C"

	// UnitFahrenheit denotes imperial units
	UnitFahrenheit = "°F"

	// UnitKelvin denotes absolute units
	UnitKelvin = "K"
)

const (

	// InvalidTemperatureX10 denotes the fixed-point sentinel returned when no
	// valid reading could be produced (unconfigured pipeline or invalid input)
	InvalidTemperatureX10 int16 = -32768

	// InvalidTemperature denotes the floating-point sentinel returned by the
	// unit-converting read methods; it lies outside any physically plausible
	// reading in any supported unit
	InvalidTemperature = -999.9
)

// State denotes a connection state
type State int

const (

	// StateScanning is active while scanning for a probe device
	StateScanning State = iota

	// StateConnected is active while being connected to the probe
	StateConnected

	// StateDisconnected is active after being disconnected from the probe
	StateDisconnected
)

// ConnectionStatus denotes the current status of a remote probe device
type ConnectionStatus struct {
	Error error
	State
}

// DataPoint denotes a temperature measurement at a certain point in time,
// already converted to the unit it was read in
type DataPoint struct {
	TimeStamp   time.Time
	Unit        Unit
	Temperature float64
}

// Value provides a method to retrieve the current value (for interface use)
func (d DataPoint) Value() float64 {
	return d.Temperature
}

// DataPoints denotes a set of data points (usually part of a monitoring session)
type DataPoints []DataPoint

package sensor

import "time"

// Sensor denotes a high-level NTC temperature sensing pipeline, composing a
// sampler, a resistance converter, a temperature converter and an optional
// smoothing filter into a single read operation:
//
//	raw ADC code -> resistance -> temperature -> (optional) filtered temperature
//
// The pipeline is configured via a fluent surface:
//
//	s := sensor.New().
//		AddSampler(probe).
//		AddResistanceConverter(div).
//		AddTemperatureConverter(conv).
//		AddFilter(ema).
//		SetUnit(sensor.UnitCelsius).
//		Build()
//
//	temperatureX10 := s.ReadTemperatureX10()
//
// The pipeline holds non-owning references to its components; whoever wires
// them up is responsible for keeping them alive for the lifetime of the
// pipeline. A Sensor is meant to be owned and read by a single goroutine, it
// performs no locking of its own
type Sensor struct {
	sampler              Sampler
	resistanceConverter  ResistanceConverter
	temperatureConverter TemperatureConverter
	filter               Filter
	unit                 Unit

	dataHandler func(data DataPoint)
	dataChan    chan DataPoint

	logger Logger
}

// New instantiates a new Sensor pipeline with no components attached and
// Celsius output
func New() *Sensor {
	return &Sensor{
		unit:   UnitCelsius,
		logger: &NullLogger{},
	}
}

// AddSampler sets the raw ADC sampler
func (s *Sensor) AddSampler(sampler Sampler) *Sensor {
	s.sampler = sampler
	return s
}

// AddResistanceConverter sets the ADC code to resistance converter
func (s *Sensor) AddResistanceConverter(converter ResistanceConverter) *Sensor {
	s.resistanceConverter = converter
	return s
}

// AddTemperatureConverter sets the resistance to temperature converter
func (s *Sensor) AddTemperatureConverter(converter TemperatureConverter) *Sensor {
	s.temperatureConverter = converter
	return s
}

// AddFilter sets an optional smoothing filter applied to the fixed-point
// temperature after conversion
func (s *Sensor) AddFilter(filter Filter) *Sensor {
	s.filter = filter
	return s
}

// SetUnit sets the output unit of the unit-converting read methods
func (s *Sensor) SetUnit(unit Unit) *Sensor {
	s.unit = unit
	return s
}

// SetLogger sets the logger used for diagnostics
func (s *Sensor) SetLogger(logger Logger) *Sensor {
	if logger != nil {
		s.logger = logger
	}
	return s
}

// SetDataHandler defines a handler function that is called upon retrieval of
// a valid unit-converted reading
func (s *Sensor) SetDataHandler(fn func(data DataPoint)) {
	s.dataHandler = fn
}

// SetDataChannel defines a channel that valid unit-converted readings are put
// on (non-blocking, readings are dropped if the channel is full)
func (s *Sensor) SetDataChannel(ch chan DataPoint) {
	s.dataChan = ch
}

// Unit returns the currently configured output unit
func (s *Sensor) Unit() Unit {
	return s.unit
}

// Build finalizes the configuration. It performs no structural validation
// beyond an informational log line; missing required components are only
// detected (and signalled via sentinel) at read time
func (s *Sensor) Build() *Sensor {
	s.logger.Infof("sensor pipeline built (sampler: %v, resistance converter: %v, temperature converter: %v, filter: %v, unit: %s)",
		s.sampler != nil, s.resistanceConverter != nil, s.temperatureConverter != nil, s.filter != nil, s.unit)
	return s
}

// ReadTemperatureX10 performs a full pipeline read and returns the temperature
// in Celsius scaled by 10 (e.g. 250 denotes 25.0 °C). The sentinel
// InvalidTemperatureX10 is returned if the pipeline is missing a required
// component or any stage yields an invalid result
func (s *Sensor) ReadTemperatureX10() int16 {

	// Sampler, resistance converter and temperature converter are mandatory;
	// the filter is optional
	if s.sampler == nil || s.resistanceConverter == nil || s.temperatureConverter == nil {
		s.logger.Error("sensor pipeline not properly configured")
		return InvalidTemperatureX10
	}

	adcRaw := s.sampler.Sample()
	s.logger.Debugf("sampled raw ADC code: %d", adcRaw)

	resistanceX10 := s.resistanceConverter.ConvertToResistanceX10(adcRaw)
	if resistanceX10 == 0 {
		s.logger.Errorf("invalid resistance for ADC code %d", adcRaw)
		return InvalidTemperatureX10
	}
	s.logger.Debugf("converted resistance (x10): %d", resistanceX10)

	temperatureX10 := s.temperatureConverter.ConvertToTemperatureX10(resistanceX10)
	if temperatureX10 == InvalidTemperatureX10 {
		s.logger.Errorf("invalid temperature for resistance (x10) %d", resistanceX10)
		return InvalidTemperatureX10
	}

	if s.filter != nil {
		temperatureX10 = s.filter.Apply(temperatureX10)
		s.logger.Debugf("filtered temperature (x10): %d", temperatureX10)
	}

	return temperatureX10
}

// ReadTemperature performs a full pipeline read and returns the temperature as
// a floating-point value in the configured unit. The sentinel
// InvalidTemperature is returned if the underlying fixed-point read failed
func (s *Sensor) ReadTemperature() float64 {

	tempX10 := s.ReadTemperatureX10()
	if tempX10 == InvalidTemperatureX10 {
		return InvalidTemperature
	}

	tempCelsius := float64(tempX10) / 10.

	var temp float64
	switch s.unit {
	case UnitFahrenheit:
		temp = tempCelsius*9./5. + 32.
	case UnitKelvin:
		temp = tempCelsius + 273.15
	default:
		temp = tempCelsius
	}

	dataPoint := DataPoint{
		TimeStamp:   time.Now(),
		Unit:        s.unit,
		Temperature: temp,
	}

	// Call handler function, if any
	if s.dataHandler != nil {
		s.dataHandler(dataPoint)
	}

	// Put data point on channel, if any
	if s.dataChan != nil {
		select {
		case s.dataChan <- dataPoint:
		default:
		}
	}

	return temp
}

// ReadTemperatureC reads the temperature in Celsius without modifying the
// configured unit
func (s *Sensor) ReadTemperatureC() float64 {
	return s.readTemperatureAs(UnitCelsius)
}

// ReadTemperatureF reads the temperature in Fahrenheit without modifying the
// configured unit
func (s *Sensor) ReadTemperatureF() float64 {
	return s.readTemperatureAs(UnitFahrenheit)
}

// ReadTemperatureK reads the temperature in Kelvin without modifying the
// configured unit
func (s *Sensor) ReadTemperatureK() float64 {
	return s.readTemperatureAs(UnitKelvin)
}

////////////////////////////////////////////////////////////////////////////////

// readTemperatureAs temporarily pins the output unit for a single read. The
// previous unit is restored on all paths, including failed reads
func (s *Sensor) readTemperatureAs(unit Unit) float64 {
	prevUnit := s.unit
	s.unit = unit
	defer func() {
		s.unit = prevUnit
	}()

	return s.ReadTemperature()
}

package ntc

import "fmt"

// Entry denotes a single calibration point of an NTC thermistor: a resistance
// and the temperature it was measured at, both in 0.1 resolution fixed-point
type Entry struct {
	ResistanceX10  uint32 // resistance in 0.1 Ω (e.g. 127000 denotes 12.7 kΩ)
	TemperatureX10 int16  // temperature in 0.1 °C (e.g. 250 denotes 25.0 °C)
}

// Table denotes an ordered NTC calibration table. It is an externally supplied
// calibration artifact: the converter depends on its keys being strictly
// monotonic (increasing or decreasing) and unique, with at least two entries
type Table []Entry

// Validate checks the calibration invariants
func (t Table) Validate() error {

	if len(t) < 2 {
		return fmt.Errorf("calibration table requires at least 2 entries, got %d", len(t))
	}

	increasing := t[0].ResistanceX10 < t[1].ResistanceX10
	for i := 1; i < len(t); i++ {
		prev, cur := t[i-1].ResistanceX10, t[i].ResistanceX10
		if prev == cur {
			return fmt.Errorf("duplicate resistance key %d at index %d", cur, i)
		}
		if increasing != (prev < cur) {
			return fmt.Errorf("resistance keys are not strictly monotonic at index %d", i)
		}
	}

	return nil
}

// TemperatureRange returns the smallest and largest tabulated temperature
func (t Table) TemperatureRange() (min, max int16) {

	min, max = t[0].TemperatureX10, t[0].TemperatureX10
	for _, entry := range t[1:] {
		if entry.TemperatureX10 < min {
			min = entry.TemperatureX10
		}
		if entry.TemperatureX10 > max {
			max = entry.TemperatureX10
		}
	}

	return
}

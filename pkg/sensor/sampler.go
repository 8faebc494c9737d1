package sensor

// AveragingSampler wraps another Sampler, discarding a number of initial
// conversions per reading (to flush multiplexer / settling artifacts) and
// averaging several consecutive codes to reduce noise
type AveragingSampler struct {
	source  Sampler
	samples uint8
	discard uint8
}

// NewAveragingSampler instantiates a new AveragingSampler taking the mean of
// samples consecutive codes after discarding the first discard codes. A
// samples count of 0 is normalized to 1
func NewAveragingSampler(source Sampler, samples, discard uint8) *AveragingSampler {
	if samples == 0 {
		samples = 1
	}

	return &AveragingSampler{
		source:  source,
		samples: samples,
		discard: discard,
	}
}

// Sample returns the rounded mean of the configured number of source codes
func (a *AveragingSampler) Sample() uint16 {

	for i := uint8(0); i < a.discard; i++ {
		a.source.Sample()
	}

	var accumulated uint32
	for i := uint8(0); i < a.samples; i++ {
		accumulated += uint32(a.source.Sample())
	}

	if a.samples == 1 {
		return uint16(accumulated)
	}

	// Round instead of truncate for non power-of-two sample counts
	return uint16((accumulated + uint32(a.samples>>1)) / uint32(a.samples))
}

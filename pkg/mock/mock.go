// Package mock provides an in-memory sensor.Sampler replaying a programmable
// sequence of ADC codes, optionally disturbed by pseudo-random jitter. It
// serves testing and demo setups without probe hardware
package mock

import "math/rand"

const defaultCode = 512

// Sampler denotes a mock ADC sampler
type Sampler struct {
	codes  []uint16
	pos    int
	jitter uint16
	rng    *rand.Rand
}

// New instantiates a new mock Sampler cycling through the given codes. With
// no codes given, a constant mid-scale code of 512 is returned
func New(codes ...uint16) *Sampler {

	if len(codes) == 0 {
		codes = []uint16{defaultCode}
	}

	return &Sampler{
		codes: codes,
		rng:   rand.New(rand.NewSource(1)),
	}
}

// WithJitter configures a uniform pseudo-random disturbance of up to ±jitter
// counts per sample and returns the sampler for chaining
func (s *Sampler) WithJitter(jitter uint16) *Sampler {
	s.jitter = jitter
	return s
}

// Sample returns the next code of the sequence, wrapping around at the end
func (s *Sampler) Sample() uint16 {

	code := s.codes[s.pos]
	s.pos = (s.pos + 1) % len(s.codes)

	if s.jitter > 0 {
		delta := s.rng.Intn(2*int(s.jitter)+1) - int(s.jitter)
		shifted := int(code) + delta
		if shifted < 0 {
			shifted = 0
		}
		code = uint16(shifted)
	}

	return code
}

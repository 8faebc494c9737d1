package filter

// EMA denotes an exponential moving average, a first-order IIR low-pass
// filter:
//
//	y = (1-alpha)*prev + alpha*new
//
// Unlike a windowed mean it has no finite memory horizon; every past value
// contributes with exponentially decaying weight. Alpha close to 0 smooths
// aggressively, alpha close to 1 follows the input closely.
//
// The first Apply call works off the seed supplied at construction; callers
// wanting the first reading to pass through unfiltered must seed with that
// first raw reading themselves
type EMA struct {
	config

	alpha float64
	prev  int16
}

// NewEMA instantiates a new EMA filter with the given smoothing factor and
// seed value, executing functional options, if any. An alpha outside (0, 1)
// is clamped to 0.5 with a warning; this validation happens once here, never
// per call
func NewEMA(alpha float64, seed int16, options ...Option) *EMA {

	f := &EMA{
		config: newConfig(options),
		alpha:  alpha,
		prev:   seed,
	}

	if f.alpha <= 0 || f.alpha >= 1 {
		f.logger.Warnf("invalid EMA alpha %.2f, clamping to 0.5", f.alpha)
		f.alpha = 0.5
	}

	return f
}

// Apply feeds a new value into the filter, updating and returning the
// smoothed value
func (f *EMA) Apply(value int16) int16 {
	f.prev = int16((1-f.alpha)*float64(f.prev) + f.alpha*float64(value))
	return f.prev
}

package filter

// SMA denotes a recursive approximation of a simple moving average:
//
//	avg = prev + (new - prev) / window
//
// Note that this is an approximation, not an exact N-sample mean: it stores
// no history and is effectively a one-pole recursive filter with time
// constant window. The trade-off buys O(1) memory, which is the point on
// constrained targets
type SMA struct {
	config

	window uint8
	prev   int16
}

// NewSMA instantiates a new SMA filter with the given window length and seed
// value, executing functional options, if any. A window of 0 is invalid and
// clamped to 1 with a warning at construction time
func NewSMA(window uint8, seed int16, options ...Option) *SMA {

	f := &SMA{
		config: newConfig(options),
		window: window,
		prev:   seed,
	}

	if f.window == 0 {
		f.logger.Warn("invalid SMA window size 0, clamping to 1")
		f.window = 1
	}

	return f
}

// Apply feeds a new value into the filter, updating and returning the
// approximated average
func (f *SMA) Apply(value int16) int16 {
	f.prev += (value - f.prev) / int16(f.window)
	return f.prev
}

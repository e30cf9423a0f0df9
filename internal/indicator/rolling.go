package indicator

import "math"

// rollingMean computes the trailing arithmetic mean over a full window.
// The first window-1 positions are nil.
func rollingMean(values []float64, window int) []*float64 {
	out := make([]*float64, len(values))
	if window <= 0 || len(values) < window {
		return out
	}

	var sum float64
	for i, v := range values {
		sum += v
		if i >= window {
			sum -= values[i-window]
		}
		if i >= window-1 {
			mean := sum / float64(window)
			out[i] = &mean
		}
	}
	return out
}

// rollingStd computes the trailing sample standard deviation (n-1 divisor,
// matching pandas' rolling .std) over a full window.
func rollingStd(values []float64, window int) []*float64 {
	out := make([]*float64, len(values))
	if window <= 1 || len(values) < window {
		return out
	}

	for i := window - 1; i < len(values); i++ {
		start := i - window + 1
		var sum float64
		for _, v := range values[start : i+1] {
			sum += v
		}
		mean := sum / float64(window)

		var sq float64
		for _, v := range values[start : i+1] {
			d := v - mean
			sq += d * d
		}
		std := math.Sqrt(sq / float64(window-1))
		out[i] = &std
	}
	return out
}

// ema computes an exponential moving average with smoothing factor
// k = 2/(span+1), seeded with the first value, so it is defined for every
// position from index 0.
func ema(values []float64, span int) []float64 {
	out := make([]float64, len(values))
	if len(values) == 0 {
		return out
	}

	k := 2.0 / float64(span+1)
	out[0] = values[0]
	for i := 1; i < len(values); i++ {
		out[i] = values[i]*k + out[i-1]*(1-k)
	}
	return out
}

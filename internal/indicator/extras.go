package indicator

import "math"

// computeExtras fills the advanced indicator set: stochastic oscillator, ATR,
// volume ratio and momentum. None of these feed the composite score.
func computeExtras(series []PriceBar, closes []float64, rows []Row) {
	n := len(series)

	// Stochastic %K over the trailing window, %D as a 3-bar SMA of %K.
	kValues := make([]*float64, n)
	for i := StochasticKPeriod - 1; i < n; i++ {
		hi := math.Inf(-1)
		lo := math.Inf(1)
		for j := i - StochasticKPeriod + 1; j <= i; j++ {
			if series[j].High > hi {
				hi = series[j].High
			}
			if series[j].Low < lo {
				lo = series[j].Low
			}
		}
		var k float64
		if hi == lo {
			k = 50.0
		} else {
			k = (closes[i] - lo) / (hi - lo) * 100.0
		}
		kValues[i] = &k
		rows[i].StochasticK = &k
	}
	for i := StochasticKPeriod + StochasticDPeriod - 2; i < n; i++ {
		var sum float64
		defined := true
		for j := i - StochasticDPeriod + 1; j <= i; j++ {
			if kValues[j] == nil {
				defined = false
				break
			}
			sum += *kValues[j]
		}
		if defined {
			d := sum / float64(StochasticDPeriod)
			rows[i].StochasticD = &d
		}
	}

	// ATR with Wilder smoothing over true ranges.
	if n >= ATRPeriod+1 {
		tr := make([]float64, n)
		tr[0] = series[0].High - series[0].Low
		for i := 1; i < n; i++ {
			hl := series[i].High - series[i].Low
			hc := math.Abs(series[i].High - closes[i-1])
			lc := math.Abs(series[i].Low - closes[i-1])
			tr[i] = math.Max(hl, math.Max(hc, lc))
		}

		var atr float64
		for i := 1; i <= ATRPeriod; i++ {
			atr += tr[i]
		}
		atr /= float64(ATRPeriod)
		v := atr
		rows[ATRPeriod].ATR = &v
		for i := ATRPeriod + 1; i < n; i++ {
			atr = (atr*float64(ATRPeriod-1) + tr[i]) / float64(ATRPeriod)
			v := atr
			rows[i].ATR = &v
		}
	}

	// Volume ratio: current volume over its trailing mean.
	volumes := make([]float64, n)
	for i, bar := range series {
		volumes[i] = float64(bar.Volume)
	}
	volMean := rollingMean(volumes, VolumeRatioPeriod)
	for i := range rows {
		if volMean[i] == nil || *volMean[i] == 0 {
			continue
		}
		ratio := volumes[i] / *volMean[i]
		rows[i].VolumeRatio = &ratio
	}

	// Momentum as rate of change against the close MomentumPeriod bars back.
	for i := MomentumPeriod; i < n; i++ {
		prev := closes[i-MomentumPeriod]
		if prev == 0 {
			continue
		}
		roc := (closes[i]/prev - 1) * 100.0
		rows[i].Momentum = &roc
	}
}

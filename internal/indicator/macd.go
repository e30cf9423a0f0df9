package indicator

// macdLines computes MACD (EMA12-EMA26), its 9-span signal line, and the
// histogram (MACD minus signal). The EMAs are seeded with the first close, so
// all three lines are defined for every bar and Histogram == MACD - Signal
// holds exactly row by row.
func macdLines(closes []float64) (macd, signal, histogram []*float64) {
	n := len(closes)
	macd = make([]*float64, n)
	signal = make([]*float64, n)
	histogram = make([]*float64, n)
	if n == 0 {
		return macd, signal, histogram
	}

	fast := ema(closes, MACDFastSpan)
	slow := ema(closes, MACDSlowSpan)

	line := make([]float64, n)
	for i := range closes {
		line[i] = fast[i] - slow[i]
	}
	sig := ema(line, MACDSignalSpan)

	for i := range closes {
		m := line[i]
		s := sig[i]
		h := m - s
		macd[i] = &m
		signal[i] = &s
		histogram[i] = &h
	}
	return macd, signal, histogram
}

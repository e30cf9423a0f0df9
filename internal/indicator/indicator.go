package indicator

import "time"

// Standard indicator windows. The SMA windows come from Config; everything
// else uses the fixed textbook parameters below.
const (
	RSIPeriod       = 14
	MACDFastSpan    = 12
	MACDSlowSpan    = 26
	MACDSignalSpan  = 9
	BollingerPeriod = 20
	BollingerWidth  = 2.0

	StochasticKPeriod = 14
	StochasticDPeriod = 3
	ATRPeriod         = 14
	VolumeRatioPeriod = 20
	MomentumPeriod    = 10
)

// Moving-average presets. ShortTermPeriods suits swing-trade horizons,
// LongTermPeriods suits position-trade horizons.
var (
	ShortTermPeriods = []int{9, 20, 50}
	LongTermPeriods  = []int{100, 150, 200}
)

// PriceBar is a single OHLCV bar. Series passed to Compute must be ordered by
// strictly ascending Timestamp; the engine does not deduplicate or reorder.
type PriceBar struct {
	Timestamp time.Time `json:"timestamp"`
	Open      float64   `json:"open"`
	High      float64   `json:"high"`
	Low       float64   `json:"low"`
	Close     float64   `json:"close"`
	Volume    int64     `json:"volume"`
}

// Config selects which simple moving averages to compute.
type Config struct {
	Periods []int
}

// Row is a PriceBar enriched with computed indicator values. A nil field means
// the underlying window did not yet have enough history at that bar; callers
// must treat nil as "insufficient data" and skip, never substitute a guess.
type Row struct {
	PriceBar

	SMA           map[int]*float64
	RSI           *float64
	MACD          *float64
	MACDSignal    *float64
	MACDHistogram *float64
	BBUpper       *float64
	BBMid         *float64
	BBLower       *float64

	StochasticK *float64
	StochasticD *float64
	ATR         *float64
	VolumeRatio *float64
	Momentum    *float64
}

// Compute derives all indicators for the series, one output row per input bar,
// in input order. Every rolling indicator uses the strict full-window policy:
// a window-w value is nil for the first w-1 bars. Series shorter than a window
// simply leave that indicator nil on every row.
func Compute(series []PriceBar, cfg Config) []Row {
	periods := cfg.Periods
	if len(periods) == 0 {
		periods = ShortTermPeriods
	}

	rows := make([]Row, len(series))
	if len(series) == 0 {
		return rows
	}

	closes := make([]float64, len(series))
	for i, bar := range series {
		closes[i] = bar.Close
		rows[i].PriceBar = bar
		rows[i].SMA = make(map[int]*float64, len(periods))
	}

	for _, p := range periods {
		sma := rollingMean(closes, p)
		for i := range rows {
			rows[i].SMA[p] = sma[i]
		}
	}

	rsi := wilderRSI(closes, RSIPeriod)
	for i := range rows {
		rows[i].RSI = rsi[i]
	}

	macd, signal, histogram := macdLines(closes)
	for i := range rows {
		rows[i].MACD = macd[i]
		rows[i].MACDSignal = signal[i]
		rows[i].MACDHistogram = histogram[i]
	}

	mid := rollingMean(closes, BollingerPeriod)
	std := rollingStd(closes, BollingerPeriod)
	for i := range rows {
		if mid[i] == nil || std[i] == nil {
			continue
		}
		m, s := *mid[i], *std[i]
		upper := m + BollingerWidth*s
		lower := m - BollingerWidth*s
		rows[i].BBMid = &m
		rows[i].BBUpper = &upper
		rows[i].BBLower = &lower
	}

	computeExtras(series, closes, rows)

	return rows
}

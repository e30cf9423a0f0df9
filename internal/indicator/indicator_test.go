package indicator

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func barsFromCloses(closes ...float64) []PriceBar {
	start := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	bars := make([]PriceBar, len(closes))
	for i, c := range closes {
		bars[i] = PriceBar{
			Timestamp: start.AddDate(0, 0, i),
			Open:      c,
			High:      c + 1,
			Low:       c - 1,
			Close:     c,
			Volume:    1000,
		}
	}
	return bars
}

// linearCloses returns n closes rising by one per bar starting at first.
func linearCloses(first float64, n int) []float64 {
	closes := make([]float64, n)
	for i := range closes {
		closes[i] = first + float64(i)
	}
	return closes
}

func TestComputeSMAFullWindow(t *testing.T) {
	bars := barsFromCloses(1, 2, 3, 4, 5)
	rows := Compute(bars, Config{Periods: []int{3}})
	require.Len(t, rows, 5)

	assert.Nil(t, rows[0].SMA[3])
	assert.Nil(t, rows[1].SMA[3])
	require.NotNil(t, rows[2].SMA[3])
	assert.InDelta(t, 2.0, *rows[2].SMA[3], 1e-9)
	require.NotNil(t, rows[3].SMA[3])
	assert.InDelta(t, 3.0, *rows[3].SMA[3], 1e-9)
	require.NotNil(t, rows[4].SMA[3])
	assert.InDelta(t, 4.0, *rows[4].SMA[3], 1e-9)
}

func TestComputeSMAWindowLongerThanSeries(t *testing.T) {
	bars := barsFromCloses(10, 11, 12)
	rows := Compute(bars, Config{Periods: []int{50}})
	for i, row := range rows {
		assert.Nilf(t, row.SMA[50], "bar %d should have no SMA50", i)
	}
}

func TestComputeDefaultsToShortTermPeriods(t *testing.T) {
	bars := barsFromCloses(linearCloses(100, 60)...)
	rows := Compute(bars, Config{})
	last := rows[len(rows)-1]
	for _, p := range ShortTermPeriods {
		assert.Contains(t, last.SMA, p)
	}
}

func TestComputeEmptySeries(t *testing.T) {
	rows := Compute(nil, Config{Periods: []int{9}})
	assert.Empty(t, rows)
}

func TestRSIWarmupAndMonotonicRise(t *testing.T) {
	// A strictly rising series has no losses, so RSI is 100 once defined.
	bars := barsFromCloses(linearCloses(100, 30)...)
	rows := Compute(bars, Config{Periods: []int{9}})

	for i := 0; i < RSIPeriod; i++ {
		assert.Nilf(t, rows[i].RSI, "bar %d should have no RSI", i)
	}
	for i := RSIPeriod; i < len(rows); i++ {
		require.NotNilf(t, rows[i].RSI, "bar %d should have RSI", i)
		assert.InDelta(t, 100.0, *rows[i].RSI, 1e-9)
	}
}

func TestRSIMonotonicFall(t *testing.T) {
	closes := make([]float64, 30)
	for i := range closes {
		closes[i] = 200 - float64(i)
	}
	rows := Compute(barsFromCloses(closes...), Config{Periods: []int{9}})
	last := rows[len(rows)-1]
	require.NotNil(t, last.RSI)
	assert.InDelta(t, 0.0, *last.RSI, 1e-9)
}

func TestRSIStaysInRange(t *testing.T) {
	closes := []float64{
		100, 103, 99, 104, 98, 105, 97, 106, 102, 101,
		108, 95, 110, 94, 112, 93, 111, 96, 109, 100,
		107, 99, 113, 92, 114,
	}
	rows := Compute(barsFromCloses(closes...), Config{Periods: []int{9}})
	for i, row := range rows {
		if row.RSI == nil {
			continue
		}
		assert.GreaterOrEqualf(t, *row.RSI, 0.0, "bar %d", i)
		assert.LessOrEqualf(t, *row.RSI, 100.0, "bar %d", i)
	}
}

func TestMACDDefinedFromFirstBarAndHistogramIdentity(t *testing.T) {
	closes := []float64{
		100, 103, 99, 104, 98, 105, 97, 106, 102, 101,
		108, 95, 110, 94, 112, 93, 111, 96, 109, 100,
	}
	rows := Compute(barsFromCloses(closes...), Config{Periods: []int{9}})

	for i, row := range rows {
		require.NotNilf(t, row.MACD, "bar %d", i)
		require.NotNilf(t, row.MACDSignal, "bar %d", i)
		require.NotNilf(t, row.MACDHistogram, "bar %d", i)
		assert.InDeltaf(t, *row.MACD-*row.MACDSignal, *row.MACDHistogram, 1e-12, "bar %d", i)
	}

	// With EMAs seeded on the first close, the very first bar nets out to zero.
	assert.InDelta(t, 0.0, *rows[0].MACD, 1e-12)
	assert.InDelta(t, 0.0, *rows[0].MACDSignal, 1e-12)
}

func TestMACDRisingSeriesIsPositive(t *testing.T) {
	rows := Compute(barsFromCloses(linearCloses(100, 60)...), Config{Periods: []int{9}})
	last := rows[len(rows)-1]
	require.NotNil(t, last.MACD)
	require.NotNil(t, last.MACDSignal)
	assert.Greater(t, *last.MACD, 0.0)
	assert.Greater(t, *last.MACD, *last.MACDSignal)
}

func TestBollingerConstantSeries(t *testing.T) {
	closes := make([]float64, 25)
	for i := range closes {
		closes[i] = 50
	}
	rows := Compute(barsFromCloses(closes...), Config{Periods: []int{9}})

	for i := 0; i < BollingerPeriod-1; i++ {
		assert.Nilf(t, rows[i].BBMid, "bar %d", i)
	}
	last := rows[len(rows)-1]
	require.NotNil(t, last.BBMid)
	require.NotNil(t, last.BBUpper)
	require.NotNil(t, last.BBLower)
	assert.InDelta(t, 50.0, *last.BBMid, 1e-9)
	assert.InDelta(t, 50.0, *last.BBUpper, 1e-9)
	assert.InDelta(t, 50.0, *last.BBLower, 1e-9)
}

func TestBollingerLinearSeries(t *testing.T) {
	// Last window is 140..159: mean 149.5, sample std sqrt(665/19).
	rows := Compute(barsFromCloses(linearCloses(100, 60)...), Config{Periods: []int{9}})
	last := rows[len(rows)-1]
	require.NotNil(t, last.BBMid)

	wantStd := math.Sqrt(665.0 / 19.0)
	assert.InDelta(t, 149.5, *last.BBMid, 1e-9)
	assert.InDelta(t, 149.5+2*wantStd, *last.BBUpper, 1e-9)
	assert.InDelta(t, 149.5-2*wantStd, *last.BBLower, 1e-9)

	// The final close sits inside the upper band for this ramp.
	assert.Less(t, last.Close, *last.BBUpper)
}

func TestStochasticFlatWindowIsNeutral(t *testing.T) {
	bars := make([]PriceBar, 20)
	start := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	for i := range bars {
		bars[i] = PriceBar{Timestamp: start.AddDate(0, 0, i), Open: 50, High: 50, Low: 50, Close: 50, Volume: 100}
	}
	rows := Compute(bars, Config{Periods: []int{9}})
	last := rows[len(rows)-1]
	require.NotNil(t, last.StochasticK)
	assert.InDelta(t, 50.0, *last.StochasticK, 1e-9)
}

func TestATRWilderSmoothing(t *testing.T) {
	// With High=Close+1 and Low=Close-1 on a rise of one per bar, every true
	// range is exactly 2, so the smoothed ATR is 2 as well.
	rows := Compute(barsFromCloses(linearCloses(100, 20)...), Config{Periods: []int{9}})

	for i := 0; i < ATRPeriod; i++ {
		assert.Nilf(t, rows[i].ATR, "bar %d should have no ATR", i)
	}
	for i := ATRPeriod; i < len(rows); i++ {
		require.NotNilf(t, rows[i].ATR, "bar %d", i)
		assert.InDeltaf(t, 2.0, *rows[i].ATR, 1e-9, "bar %d", i)
	}
}

func TestVolumeRatioAgainstAverage(t *testing.T) {
	bars := barsFromCloses(linearCloses(100, 25)...)
	for i := range bars {
		bars[i].Volume = 1000
	}
	bars[len(bars)-1].Volume = 2000
	rows := Compute(bars, Config{Periods: []int{9}})

	last := rows[len(rows)-1]
	require.NotNil(t, last.VolumeRatio)
	// Window mean is (19*1000 + 2000) / 20 = 1050.
	assert.InDelta(t, 2000.0/1050.0, *last.VolumeRatio, 1e-9)
}

func TestMomentumRateOfChange(t *testing.T) {
	rows := Compute(barsFromCloses(linearCloses(100, 15)...), Config{Periods: []int{9}})
	last := rows[len(rows)-1]
	require.NotNil(t, last.Momentum)
	// Close 114 vs close 104 ten bars earlier.
	assert.InDelta(t, (114.0-104.0)/104.0*100.0, *last.Momentum, 1e-9)
}

package service

import (
	"context"
	"testing"
	"time"

	"golang-stock-insight/internal/indicator"
	"golang-stock-insight/internal/insight/config"
	"golang-stock-insight/internal/insight/dto"
	"golang-stock-insight/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// risingMarketData serves a synthetic series rising one point per day.
type risingMarketData struct {
	bars int
}

func (s *risingMarketData) Get(_ context.Context, param dto.GetStockDataParam) (*dto.StockData, error) {
	start := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	bars := make([]indicator.PriceBar, s.bars)
	for i := range bars {
		c := 100.0 + float64(i)
		bars[i] = indicator.PriceBar{
			Timestamp: start.AddDate(0, 0, i),
			Open:      c,
			High:      c + 1,
			Low:       c - 1,
			Close:     c,
			Volume:    1000,
		}
	}
	return &dto.StockData{
		Symbol:      param.Symbol,
		CompanyName: "Test Corp",
		Currency:    "USD",
		Bars:        bars,
	}, nil
}

func newTestAnalysisService(t *testing.T) AnalysisService {
	t.Helper()
	log, err := logger.New("error", "console")
	require.NoError(t, err)
	cfg := &config.Config{}
	return NewAnalysisService(cfg, log, nil, &risingMarketData{bars: 60}, nil, nil, nil)
}

func TestAnalyzeRisingSeries(t *testing.T) {
	svc := newTestAnalysisService(t)

	resp, err := svc.Analyze(context.Background(), dto.GetStockDataParam{Symbol: "AAPL"}, "")
	require.NoError(t, err)

	assert.Equal(t, "AAPL", resp.Symbol)
	assert.Equal(t, "Test Corp", resp.CompanyName)
	assert.Equal(t, HorizonShort, resp.Horizon)
	assert.Equal(t, "1d", resp.Interval)
	assert.Equal(t, "1y", resp.Range)
	assert.Equal(t, 159.0, resp.Close)
	assert.Equal(t, 60, resp.Score)
	assert.Equal(t, "BUY", resp.Label)
	assert.Len(t, resp.Explanations, 3)
	assert.Empty(t, resp.Commentary)

	require.NotNil(t, resp.Indicators.RSI)
	assert.InDelta(t, 100.0, *resp.Indicators.RSI, 1e-9)
	require.Contains(t, resp.Indicators.SMA, 50)
	require.NotNil(t, resp.Indicators.SMA[50])
}

func TestAnalyzeLongHorizonLacksHistory(t *testing.T) {
	svc := newTestAnalysisService(t)

	// Sixty bars cannot fill a 200-day window, so the trend adjustment is
	// skipped and only the RSI and MACD signals fire.
	resp, err := svc.Analyze(context.Background(), dto.GetStockDataParam{Symbol: "AAPL"}, HorizonLong)
	require.NoError(t, err)

	assert.Equal(t, HorizonLong, resp.Horizon)
	assert.Equal(t, 50, resp.Score)
	assert.Equal(t, "HOLD", resp.Label)
}

func TestAnalyzeRejectsUnknownHorizon(t *testing.T) {
	svc := newTestAnalysisService(t)
	_, err := svc.Analyze(context.Background(), dto.GetStockDataParam{Symbol: "AAPL"}, "weekly")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestGetChartPassesBarsThrough(t *testing.T) {
	svc := newTestAnalysisService(t)

	resp, err := svc.GetChart(context.Background(), dto.GetStockDataParam{Symbol: "AAPL"})
	require.NoError(t, err)
	assert.Equal(t, "AAPL", resp.Symbol)
	require.Len(t, resp.Bars, 60)
	assert.Equal(t, 100.0, resp.Bars[0].Close)
	assert.Equal(t, 159.0, resp.Bars[59].Close)
}

func TestPeriodsForHorizon(t *testing.T) {
	short, err := PeriodsForHorizon("")
	require.NoError(t, err)
	assert.Equal(t, indicator.ShortTermPeriods, short)

	long, err := PeriodsForHorizon(HorizonLong)
	require.NoError(t, err)
	assert.Equal(t, indicator.LongTermPeriods, long)

	_, err = PeriodsForHorizon("medium")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

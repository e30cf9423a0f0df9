package repository

import (
	"encoding/json"
	"fmt"
	"testing"

	"golang-stock-insight/internal/insight/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chartResponse(t *testing.T, timestamps, open, high, low, closeSeries, volume string) dto.YahooChartResponse {
	t.Helper()
	payload := fmt.Sprintf(`{"chart":{"result":[{
		"meta":{"symbol":"AAPL","currency":"USD","longName":"Apple Inc."},
		"timestamp":%s,
		"indicators":{"quote":[{"open":%s,"high":%s,"low":%s,"close":%s,"volume":%s}]}
	}],"error":null}}`, timestamps, open, high, low, closeSeries, volume)

	var response dto.YahooChartResponse
	require.NoError(t, json.Unmarshal([]byte(payload), &response))
	return response
}

func TestMapStockData_RaggedQuoteArrays(t *testing.T) {
	repo := &yahooFinanceRepository{}

	response := chartResponse(t,
		"[1700000000,1700086400]",
		"[]", "[]", "[]",
		"[100.0,101.0]",
		"[1000,1000]")

	data, err := repo.mapStockData("AAPL", response)
	require.Error(t, err)
	assert.Nil(t, data)
	assert.Contains(t, err.Error(), "empty price history")
}

func TestMapStockData_KeepsOnlyFullyCoveredBars(t *testing.T) {
	repo := &yahooFinanceRepository{}

	// Open covers one bar fewer than close; only the first bar survives.
	response := chartResponse(t,
		"[1700000000,1700086400]",
		"[100.0]",
		"[102.0,103.0]",
		"[99.0,100.0]",
		"[101.0,102.0]",
		"[1000,2000]")

	data, err := repo.mapStockData("AAPL", response)
	require.NoError(t, err)
	require.Len(t, data.Bars, 1)
	assert.Equal(t, 100.0, data.Bars[0].Open)
	assert.Equal(t, 101.0, data.Bars[0].Close)
	assert.Equal(t, int64(1000), data.Bars[0].Volume)
}

func TestMapStockData_SkipsNullQuotes(t *testing.T) {
	repo := &yahooFinanceRepository{}

	response := chartResponse(t,
		"[1700000000,1700086400,1700172800]",
		"[100.0,null,102.0]",
		"[101.0,102.0,103.0]",
		"[99.0,100.0,101.0]",
		"[100.5,101.5,102.5]",
		"[1000,null,3000]")

	data, err := repo.mapStockData("AAPL", response)
	require.NoError(t, err)
	require.Len(t, data.Bars, 2)
	assert.Equal(t, 100.5, data.Bars[0].Close)
	assert.Equal(t, 102.5, data.Bars[1].Close)
	assert.Equal(t, "Apple Inc.", data.CompanyName)
}
